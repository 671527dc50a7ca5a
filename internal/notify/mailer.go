package notify

import "context"

const TemplateBookingCancelled = "booking_cancelled"

type MailMessage struct {
	To         string         `json:"to"`
	TemplateID string         `json:"template_id"`
	Params     map[string]any `json:"params"`
}

type Publisher interface {
	Publish(ctx context.Context, topic string, payload any) error
}

// TemplateMailer hands templated emails to the mail worker through the
// notification queue.
type TemplateMailer struct {
	pub Publisher
}

func NewTemplateMailer(pub Publisher) *TemplateMailer {
	return &TemplateMailer{pub: pub}
}

func (m *TemplateMailer) SendTemplateEmail(
	ctx context.Context,
	to string,
	templateID string,
	params map[string]any,
) error {
	return m.pub.Publish(ctx, TopicMailSend, MailMessage{
		To:         to,
		TemplateID: templateID,
		Params:     params,
	})
}
