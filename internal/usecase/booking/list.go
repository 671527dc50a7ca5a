package booking

import (
	"context"
	"fmt"

	domain "github.com/BruksfildServices01/slot-booking/internal/domain/booking"
	"github.com/BruksfildServices01/slot-booking/internal/domain/caller"
	"github.com/BruksfildServices01/slot-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/slot-booking/internal/models"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

type ListBookingsInput struct {
	ServiceIDs []string

	// Inclusive; either may be zero. Swapped when From is after To.
	From schedule.Date
	To   schedule.Date

	Statuses []domain.Status
	Page     int
	Limit    int
}

type ListBookingsOutput struct {
	Items []models.Booking
	Total int64
	Page  int
	Limit int
}

type ListBookings struct {
	repo domain.Repository
}

func NewListBookings(repo domain.Repository) *ListBookings {
	return &ListBookings{repo: repo}
}

func (uc *ListBookings) Execute(
	ctx context.Context,
	c caller.Caller,
	in ListBookingsInput,
) (*ListBookingsOutput, error) {

	scope, err := readScope(c)
	if err != nil {
		return nil, err
	}

	page, limit := in.Page, in.Limit
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	filter := domain.ListFilter{
		Domain:     scope.Domain,
		Customer:   scope.Customer,
		ServiceIDs: in.ServiceIDs,
		Statuses:   in.Statuses,
		Offset:     (page - 1) * limit,
		Limit:      limit,
	}

	from, to := in.From, in.To
	if !from.IsZero() && !to.IsZero() && from.After(to) {
		from, to = to, from
	}
	if !from.IsZero() {
		start := from.Start()
		filter.From = &start
	}
	if !to.IsZero() {
		end := to.End()
		filter.To = &end
	}

	items, total, err := uc.repo.ListBookings(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	return &ListBookingsOutput{
		Items: items,
		Total: total,
		Page:  page,
		Limit: limit,
	}, nil
}
