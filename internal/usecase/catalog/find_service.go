package catalog

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/BruksfildServices01/slot-booking/internal/domain/booking"
	"github.com/BruksfildServices01/slot-booking/internal/domain/caller"
	"github.com/BruksfildServices01/slot-booking/internal/models"
)

// FindService reads one live service of the caller's domain.
type FindService struct {
	repo Repository
}

func NewFindService(repo Repository) *FindService {
	return &FindService{repo: repo}
}

func (uc *FindService) Execute(
	ctx context.Context,
	c caller.Caller,
	id string,
) (*models.Service, error) {

	svc, err := uc.repo.FindService(ctx, id, c.Domain)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrServiceNotFound()
		}
		return nil, fmt.Errorf("find service: %w", err)
	}
	return svc, nil
}
