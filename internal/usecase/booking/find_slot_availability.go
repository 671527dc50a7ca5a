package booking

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/BruksfildServices01/slot-booking/internal/domain/booking"
	"github.com/BruksfildServices01/slot-booking/internal/domain/caller"
	"github.com/BruksfildServices01/slot-booking/internal/domain/schedule"
)

// ======================================================
// USE CASE
// ======================================================

// FindSlotAvailability lists every slot of a service on a date with the
// employees free to take it. The result is advisory; CreateBooking re-checks.
type FindSlotAvailability struct {
	repo domain.Repository
}

func NewFindSlotAvailability(repo domain.Repository) *FindSlotAvailability {
	return &FindSlotAvailability{repo: repo}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *FindSlotAvailability) Execute(
	ctx context.Context,
	c caller.Caller,
	in domain.AvailabilityInput,
) ([]domain.SlotAvailability, error) {

	// --------------------------------------------------
	// 1. Service + effective window
	// --------------------------------------------------
	svc, err := uc.repo.FindService(ctx, in.ServiceID, c.Domain)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrServiceNotFound()
		}
		return nil, fmt.Errorf("find service: %w", err)
	}

	window, err := domain.ServiceWindow(svc)
	if err != nil {
		return nil, err
	}
	if in.StartTime != nil {
		window.Start = *in.StartTime
	}
	if in.EndTime != nil {
		window.End = *in.EndTime
	}

	// --------------------------------------------------
	// 2. Grid
	// --------------------------------------------------
	slots := schedule.GenerateSlots(window, in.Date)
	if len(slots) == 0 {
		return []domain.SlotAvailability{}, nil
	}

	// --------------------------------------------------
	// 3. Employees working that weekday on this service
	// --------------------------------------------------
	employees, err := uc.repo.FindEmployees(ctx, domain.EmployeeFilter{
		Domain:    c.Domain,
		ServiceID: svc.ID,
		WorkDay:   schedule.WorkDayOf(in.Date.Weekday()),
	})
	if err != nil {
		return nil, fmt.Errorf("find employees: %w", err)
	}

	// --------------------------------------------------
	// 4-6. Per slot: shift coverage, then no active booking
	// --------------------------------------------------
	out := make([]domain.SlotAvailability, 0, len(slots))
	for _, start := range slots {
		free := []domain.EmployeeSummary{}

		for _, emp := range domain.EligibleAt(employees, start) {
			n, err := uc.repo.CountActiveBookingsAt(ctx, emp.ID, start)
			if err != nil {
				return nil, fmt.Errorf("count bookings: %w", err)
			}
			if n == 0 {
				free = append(free, domain.SummaryOf(emp))
			}
		}

		out = append(out, domain.SlotAvailability{
			Date:      in.Date.String(),
			StartTime: start,
			EndTime:   start.Add(window.Duration()),
			ServiceID: svc.ID,
			Employees: free,
		})
	}

	return out, nil
}
