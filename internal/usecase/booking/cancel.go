package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	domain "github.com/BruksfildServices01/slot-booking/internal/domain/booking"
	"github.com/BruksfildServices01/slot-booking/internal/domain/caller"
	"github.com/BruksfildServices01/slot-booking/internal/httperr"
	"github.com/BruksfildServices01/slot-booking/internal/metrics"
	"github.com/BruksfildServices01/slot-booking/internal/models"
	"github.com/BruksfildServices01/slot-booking/internal/notify"
)

type CancelBooking struct {
	repo    domain.Repository
	mailer  Mailer
	events  Publisher
	log     logrus.FieldLogger
	metrics *metrics.Metrics
}

func NewCancelBooking(
	repo domain.Repository,
	mailer Mailer,
	events Publisher,
	log logrus.FieldLogger,
	m *metrics.Metrics,
) *CancelBooking {
	return &CancelBooking{
		repo:    repo,
		mailer:  mailer,
		events:  events,
		log:     log,
		metrics: m,
	}
}

func (uc *CancelBooking) Execute(
	ctx context.Context,
	c caller.Caller,
	id string,
	note string,
) (*models.Booking, error) {

	scope := domain.BookingScope{ID: id, Domain: c.Domain}
	switch {
	case c.IsTenant():
	case c.IsCustomer():
		scope.Customer = c.Email
	default:
		return nil, domain.ErrBookingNotFound()
	}

	b, err := uc.repo.FindBooking(ctx, scope)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrBookingNotFound()
		}
		return nil, fmt.Errorf("find booking: %w", err)
	}

	if err := domain.Cancel(b, note); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBookingStatus(ctx, b, domain.StatusPending); err != nil {
		if errors.Is(err, domain.ErrStaleStatus) {
			return nil, httperr.ErrPermissionDenied(domain.CodeCannotDelete)
		}
		return nil, err
	}

	uc.metrics.Transition(b.Status)

	entry := uc.log.WithFields(logrus.Fields{
		"booking_id": b.ID,
		"domain":     c.Domain,
		"by":         string(c.Role),
	})
	entry.Info("booking cancelled")

	if c.IsTenant() {
		uc.notifyCustomer(ctx, entry, b, c, note)
	}

	return b, nil
}

// notifyCustomer never fails the cancellation.
func (uc *CancelBooking) notifyCustomer(
	ctx context.Context,
	entry logrus.FieldLogger,
	b *models.Booking,
	c caller.Caller,
	note string,
) {
	params := map[string]any{
		"service_name":  b.Service.Name,
		"employee_name": b.Employee.FirstName + " " + b.Employee.LastName,
		"start_time":    b.StartTime.UTC().Format(time.RFC3339),
		"reason":        note,
	}
	if err := uc.mailer.SendTemplateEmail(ctx, b.Customer, notify.TemplateBookingCancelled, params); err != nil {
		entry.WithError(err).Warn("cancellation email not enqueued")
	}

	ev := BookingCancelledEvent{
		BookingID:   b.ID,
		Customer:    b.Customer,
		Domain:      c.Domain,
		CancelledBy: c.Email,
		Reason:      note,
		StartTime:   b.StartTime,
	}
	if err := uc.events.Publish(ctx, notify.TopicBookingCancelled, ev); err != nil {
		entry.WithError(err).Warn("booking cancelled event not enqueued")
	}
}
