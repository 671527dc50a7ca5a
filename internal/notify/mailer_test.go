package notify

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type publishCall struct {
	topic   string
	payload any
}

type fakePublisher struct {
	calls []publishCall
}

func (p *fakePublisher) Publish(_ context.Context, topic string, payload any) error {
	p.calls = append(p.calls, publishCall{topic, payload})
	return nil
}

func TestTemplateMailer_PublishesOnMailTopic(t *testing.T) {
	pub := &fakePublisher{}
	m := NewTemplateMailer(pub)

	err := m.SendTemplateEmail(context.Background(), "ann@example.com", TemplateBookingCancelled, map[string]any{
		"reason": "closed",
	})
	require.NoError(t, err)

	require.Len(t, pub.calls, 1)
	assert.Equal(t, TopicMailSend, pub.calls[0].topic)
	assert.Equal(t, MailMessage{
		To:         "ann@example.com",
		TemplateID: TemplateBookingCancelled,
		Params:     map[string]any{"reason": "closed"},
	}, pub.calls[0].payload)
}

func TestRedisQueue_Key(t *testing.T) {
	q := NewRedisQueue(nil, "booking")
	assert.Equal(t, "booking:booking.created", q.Key(TopicBookingCreated))
}
