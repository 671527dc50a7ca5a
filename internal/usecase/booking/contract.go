package booking

import (
	"context"

	"github.com/BruksfildServices01/slot-booking/internal/integrations/profile"
)

// Publisher enqueues a fire-and-forget event.
type Publisher interface {
	Publish(ctx context.Context, topic string, payload any) error
}

type Mailer interface {
	SendTemplateEmail(ctx context.Context, to string, templateID string, params map[string]any) error
}

type ProfileClient interface {
	GetProfile(ctx context.Context, email string) (*profile.Profile, error)
}
