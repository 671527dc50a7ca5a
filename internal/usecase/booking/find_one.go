package booking

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/BruksfildServices01/slot-booking/internal/domain/booking"
	"github.com/BruksfildServices01/slot-booking/internal/domain/caller"
	"github.com/BruksfildServices01/slot-booking/internal/models"
)

type FindBooking struct {
	repo domain.Repository
}

func NewFindBooking(repo domain.Repository) *FindBooking {
	return &FindBooking{repo: repo}
}

func (uc *FindBooking) Execute(
	ctx context.Context,
	c caller.Caller,
	id string,
) (*models.Booking, error) {

	scope, err := readScope(c)
	if err != nil {
		return nil, err
	}
	scope.ID = id

	b, err := uc.repo.FindBooking(ctx, scope)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrBookingNotFound()
		}
		return nil, fmt.Errorf("find booking: %w", err)
	}
	return b, nil
}

// readScope limits tenants to their domain and customers to their own
// bookings within it.
func readScope(c caller.Caller) (domain.BookingScope, error) {
	switch {
	case c.IsTenant():
		return domain.BookingScope{Domain: c.Domain}, nil
	case c.IsCustomer():
		return domain.BookingScope{Domain: c.Domain, Customer: c.Email}, nil
	default:
		return domain.BookingScope{}, domain.ErrPermissionDenied()
	}
}
