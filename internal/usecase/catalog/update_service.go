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

// UpdateService replaces a service's fields and operating window. Existing
// bookings keep the times they were made for.
type UpdateService struct {
	repo Repository
	log  logrus.FieldLogger
}

func NewUpdateService(repo Repository, log logrus.FieldLogger) *UpdateService {
	return &UpdateService{repo: repo, log: log}
}

func (uc *UpdateService) Execute(
	ctx context.Context,
	c caller.Caller,
	id string,
	in CreateServiceInput,
) (*models.Service, error) {

	if !c.IsTenant() {
		return nil, domain.ErrPermissionDenied()
	}

	current, err := uc.repo.FindService(ctx, id, c.Domain)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrServiceNotFound()
		}
		return nil, fmt.Errorf("find service: %w", err)
	}

	svc, err := newService(c.Domain, in)
	if err != nil {
		return nil, err
	}
	svc.ID = current.ID
	svc.CreatedAt = current.CreatedAt
	svc.Hours.ID = current.Hours.ID
	svc.Hours.ServiceID = current.ID

	if err := checkServiceName(ctx, uc.repo, svc); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateService(ctx, svc); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrServiceNotFound()
		}
		return nil, fmt.Errorf("update service: %w", err)
	}

	uc.log.WithFields(logrus.Fields{
		"service_id": svc.ID,
		"domain":     c.Domain,
	}).Info("service updated")

	return svc, nil
}
