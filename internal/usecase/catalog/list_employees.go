package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/BruksfildServices01/slot-booking/internal/domain/caller"
	"github.com/BruksfildServices01/slot-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/slot-booking/internal/httperr"
	"github.com/BruksfildServices01/slot-booking/internal/models"
)

type ListEmployeesInput struct {
	Name       string
	WorkDays   []string
	WorkShifts []string
	ServiceIDs []string
}

type ListEmployees struct {
	repo Repository
}

func NewListEmployees(repo Repository) *ListEmployees {
	return &ListEmployees{repo: repo}
}

func (uc *ListEmployees) Execute(
	ctx context.Context,
	c caller.Caller,
	in ListEmployeesInput,
) ([]models.Employee, error) {

	days, err := schedule.ParseWorkDays(dedupeFold(in.WorkDays))
	if err != nil {
		return nil, httperr.ErrBusiness(CodeInvalidWorkDays)
	}
	shifts, err := schedule.ParseShiftSet(dedupeFold(in.WorkShifts))
	if err != nil {
		return nil, httperr.ErrBusiness(CodeInvalidWorkShifts)
	}

	filter := EmployeeFilter{
		Domain:     c.Domain,
		Name:       strings.TrimSpace(in.Name),
		WorkShifts: shifts.Strings(),
		ServiceIDs: dedupe(in.ServiceIDs),
	}
	for _, d := range days {
		filter.WorkDays = append(filter.WorkDays, string(d))
	}

	employees, err := uc.repo.ListEmployees(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	return employees, nil
}

// dedupeFold drops repeated filter values regardless of case; a repeated
// filter value is not an error.
func dedupeFold(values []string) []string {
	upper := make([]string, len(values))
	for i, v := range values {
		upper[i] = strings.ToUpper(v)
	}
	return dedupe(upper)
}
