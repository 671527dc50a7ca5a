package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	domain "github.com/BruksfildServices01/slot-booking/internal/domain/booking"
	"github.com/BruksfildServices01/slot-booking/internal/domain/caller"
	"github.com/BruksfildServices01/slot-booking/internal/httperr"
	"github.com/BruksfildServices01/slot-booking/internal/metrics"
	"github.com/BruksfildServices01/slot-booking/internal/models"
)

// UpdateStatus moves a PENDING booking of the caller's domain to any status.
type UpdateStatus struct {
	repo    domain.Repository
	log     logrus.FieldLogger
	metrics *metrics.Metrics
}

func NewUpdateStatus(
	repo domain.Repository,
	log logrus.FieldLogger,
	m *metrics.Metrics,
) *UpdateStatus {
	return &UpdateStatus{repo: repo, log: log, metrics: m}
}

func (uc *UpdateStatus) Execute(
	ctx context.Context,
	c caller.Caller,
	id string,
	status string,
) (*models.Booking, error) {

	b, err := uc.repo.FindBooking(ctx, domain.BookingScope{ID: id, Domain: c.Domain})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrBookingNotFound()
		}
		return nil, fmt.Errorf("find booking: %w", err)
	}

	to, err := domain.ParseStatus(status)
	if err != nil {
		return nil, err
	}

	if err := domain.Transition(b, to); err != nil {
		return nil, err
	}
	if to == domain.StatusPending {
		// PENDING to PENDING changes nothing
		return b, nil
	}

	if err := uc.repo.UpdateBookingStatus(ctx, b, domain.StatusPending); err != nil {
		if errors.Is(err, domain.ErrStaleStatus) {
			return nil, httperr.ErrPermissionDenied(domain.CodeCannotUpdateStatus)
		}
		return nil, err
	}

	uc.metrics.Transition(b.Status)
	uc.log.WithFields(logrus.Fields{
		"booking_id": b.ID,
		"domain":     c.Domain,
		"status":     b.Status,
	}).Info("booking status updated")

	return b, nil
}
