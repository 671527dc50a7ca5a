package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	domain "github.com/BruksfildServices01/slot-booking/internal/domain/booking"
	"github.com/BruksfildServices01/slot-booking/internal/domain/caller"
)

// DeleteEmployee soft-deletes and unlinks the employee. They stop being
// offered for new bookings; existing bookings still show them.
type DeleteEmployee struct {
	repo Repository
	log  logrus.FieldLogger
}

func NewDeleteEmployee(repo Repository, log logrus.FieldLogger) *DeleteEmployee {
	return &DeleteEmployee{repo: repo, log: log}
}

func (uc *DeleteEmployee) Execute(
	ctx context.Context,
	c caller.Caller,
	id string,
) error {

	if !c.IsTenant() {
		return domain.ErrPermissionDenied()
	}

	if err := uc.repo.DeleteEmployee(ctx, id, c.Domain); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrEmployeeNotFound()
		}
		return fmt.Errorf("delete employee: %w", err)
	}

	uc.log.WithFields(logrus.Fields{
		"employee_id": id,
		"domain":      c.Domain,
	}).Info("employee deleted")
	return nil
}
