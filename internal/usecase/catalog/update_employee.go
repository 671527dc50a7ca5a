package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	domain "github.com/BruksfildServices01/slot-booking/internal/domain/booking"
	"github.com/BruksfildServices01/slot-booking/internal/domain/caller"
	"github.com/BruksfildServices01/slot-booking/internal/models"
)

// UpdateEmployee replaces an employee's fields, schedule and service links.
// Bookings already made stay with the employee.
type UpdateEmployee struct {
	repo Repository
	log  logrus.FieldLogger
}

func NewUpdateEmployee(repo Repository, log logrus.FieldLogger) *UpdateEmployee {
	return &UpdateEmployee{repo: repo, log: log}
}

func (uc *UpdateEmployee) Execute(
	ctx context.Context,
	c caller.Caller,
	id string,
	in CreateEmployeeInput,
) (*models.Employee, error) {

	if !c.IsTenant() {
		return nil, domain.ErrPermissionDenied()
	}

	current, err := uc.repo.FindEmployee(ctx, id, c.Domain)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrEmployeeNotFound()
		}
		return nil, fmt.Errorf("find employee: %w", err)
	}

	emp, serviceIDs, err := newEmployee(ctx, uc.repo, c.Domain, in)
	if err != nil {
		return nil, err
	}
	emp.ID = current.ID
	emp.CreatedAt = current.CreatedAt

	if err := uc.repo.UpdateEmployee(ctx, emp, serviceIDs); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrEmployeeNotFound()
		}
		return nil, fmt.Errorf("update employee: %w", err)
	}

	uc.log.WithFields(logrus.Fields{
		"employee_id": emp.ID,
		"domain":      c.Domain,
		"services":    len(serviceIDs),
	}).Info("employee updated")

	return emp, nil
}
