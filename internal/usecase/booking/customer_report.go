package booking

import (
	"context"
	"fmt"
	"strings"

	domain "github.com/BruksfildServices01/slot-booking/internal/domain/booking"
	"github.com/BruksfildServices01/slot-booking/internal/domain/caller"
)

// CustomerReport counts SUCCESS bookings of the tenant's services per
// customer. Every requested email is reported, zero included.
type CustomerReport struct {
	repo domain.Repository
}

func NewCustomerReport(repo domain.Repository) *CustomerReport {
	return &CustomerReport{repo: repo}
}

func (uc *CustomerReport) Execute(
	ctx context.Context,
	c caller.Caller,
	emails []string,
) ([]domain.CustomerBookingCount, error) {

	if !c.IsTenant() {
		return nil, domain.ErrPermissionDenied()
	}

	seen := make(map[string]struct{}, len(emails))
	unique := make([]string, 0, len(emails))
	for _, e := range emails {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		if _, ok := seen[e]; ok {
			continue
		}
		seen[e] = struct{}{}
		unique = append(unique, e)
	}

	out := make([]domain.CustomerBookingCount, 0, len(unique))
	if len(unique) == 0 {
		return out, nil
	}

	counts, err := uc.repo.CountSuccessfulByCustomers(ctx, c.Domain, unique)
	if err != nil {
		return nil, fmt.Errorf("count bookings by customer: %w", err)
	}

	byEmail := make(map[string]int64, len(counts))
	for _, row := range counts {
		byEmail[row.Email] = row.Total
	}
	for _, e := range unique {
		out = append(out, domain.CustomerBookingCount{Email: e, Total: byEmail[e]})
	}
	return out, nil
}
