package notify

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	TopicBookingCreated   = "booking.created"
	TopicBookingCancelled = "booking.cancelled"
	TopicMailSend         = "mail.send"
)

const (
	DefaultAttempts = 3
)

// Job is the envelope handed to a Queue. Consumers read Attempts and
// RemoveOnComplete as their own retry and retention policy.
type Job struct {
	ID               string          `json:"id"`
	Topic            string          `json:"topic"`
	Payload          json.RawMessage `json:"payload"`
	Attempts         int             `json:"attempts"`
	RemoveOnComplete bool            `json:"removeOnComplete"`
	CreatedAt        time.Time       `json:"createdAt"`
}

func NewJob(topic string, payload any) (Job, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Job{}, fmt.Errorf("marshal %s payload: %w", topic, err)
	}

	return Job{
		ID:               uuid.NewString(),
		Topic:            topic,
		Payload:          raw,
		Attempts:         DefaultAttempts,
		RemoveOnComplete: true,
		CreatedAt:        time.Now().UTC(),
	}, nil
}
