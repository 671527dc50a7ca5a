package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"

	domain "github.com/BruksfildServices01/slot-booking/internal/domain/booking"
	"github.com/BruksfildServices01/slot-booking/internal/domain/caller"
	"github.com/BruksfildServices01/slot-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/slot-booking/internal/httperr"
	"github.com/BruksfildServices01/slot-booking/internal/models"
	"github.com/BruksfildServices01/slot-booking/internal/validators"
)

type CreateEmployeeInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Image     string

	WorkDays   []string
	WorkShifts []string
	ServiceIDs []string
}

type CreateEmployee struct {
	repo Repository
	log  logrus.FieldLogger
}

func NewCreateEmployee(repo Repository, log logrus.FieldLogger) *CreateEmployee {
	return &CreateEmployee{repo: repo, log: log}
}

func (uc *CreateEmployee) Execute(
	ctx context.Context,
	c caller.Caller,
	in CreateEmployeeInput,
) (*models.Employee, error) {

	if !c.IsTenant() {
		return nil, domain.ErrPermissionDenied()
	}

	emp, serviceIDs, err := newEmployee(ctx, uc.repo, c.Domain, in)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.CreateEmployee(ctx, emp, serviceIDs); err != nil {
		return nil, err
	}

	uc.log.WithFields(logrus.Fields{
		"employee_id": emp.ID,
		"domain":      c.Domain,
		"services":    len(serviceIDs),
	}).Info("employee created")

	return emp, nil
}

// newEmployee validates in and builds the unsaved model plus the
// deduplicated service ids to link.
func newEmployee(
	ctx context.Context,
	repo Repository,
	tenant string,
	in CreateEmployeeInput,
) (*models.Employee, []string, error) {

	if strings.TrimSpace(in.FirstName) == "" {
		return nil, nil, httperr.ErrBusiness(CodeInvalidName)
	}
	if email := strings.TrimSpace(in.Email); email != "" && !validators.IsEmail(email) {
		return nil, nil, httperr.ErrBusiness(CodeInvalidEmail)
	}

	days, err := schedule.ParseWorkDays(in.WorkDays)
	if err != nil {
		if errors.Is(err, schedule.ErrDuplicateWorkDay) {
			return nil, nil, httperr.ErrBusiness(CodeDuplicateWorkDays)
		}
		return nil, nil, httperr.ErrBusiness(CodeInvalidWorkDays)
	}

	shifts, err := schedule.ParseShiftSet(in.WorkShifts)
	if err != nil {
		if errors.Is(err, schedule.ErrDuplicateShift) {
			return nil, nil, httperr.ErrBusiness(CodeDuplicateWorkShifts)
		}
		return nil, nil, httperr.ErrBusiness(CodeInvalidWorkShifts)
	}

	serviceIDs := dedupe(in.ServiceIDs)
	if len(serviceIDs) > 0 {
		n, err := repo.CountServices(ctx, tenant, serviceIDs)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, nil, fmt.Errorf("count services: %w", err)
		}
		if err != nil || n != int64(len(serviceIDs)) {
			return nil, nil, httperr.ErrNotFound(CodeServicesNotFound)
		}
	}

	dayNames := make(pq.StringArray, len(days))
	for i, d := range days {
		dayNames[i] = string(d)
	}

	return &models.Employee{
		Domain:     tenant,
		FirstName:  strings.TrimSpace(in.FirstName),
		LastName:   strings.TrimSpace(in.LastName),
		Email:      strings.TrimSpace(in.Email),
		Phone:      strings.TrimSpace(in.Phone),
		Image:      in.Image,
		WorkDays:   dayNames,
		WorkShifts: pq.StringArray(shifts.Strings()),
	}, serviceIDs, nil
}

func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
