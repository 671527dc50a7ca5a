package catalog

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/BruksfildServices01/slot-booking/internal/domain/booking"
	"github.com/BruksfildServices01/slot-booking/internal/domain/caller"
	"github.com/BruksfildServices01/slot-booking/internal/models"
)

// FindEmployee reads one employee of the caller's domain with the services
// they are linked to.
type FindEmployee struct {
	repo Repository
}

func NewFindEmployee(repo Repository) *FindEmployee {
	return &FindEmployee{repo: repo}
}

func (uc *FindEmployee) Execute(
	ctx context.Context,
	c caller.Caller,
	id string,
) (*models.Employee, error) {

	emp, err := uc.repo.FindEmployee(ctx, id, c.Domain)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrEmployeeNotFound()
		}
		return nil, fmt.Errorf("find employee: %w", err)
	}
	return emp, nil
}
