package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	domain "github.com/BruksfildServices01/slot-booking/internal/domain/booking"
	"github.com/BruksfildServices01/slot-booking/internal/domain/caller"
)

// DeleteService soft-deletes: the service stops accepting bookings while its
// history stays readable.
type DeleteService struct {
	repo Repository
	log  logrus.FieldLogger
}

func NewDeleteService(repo Repository, log logrus.FieldLogger) *DeleteService {
	return &DeleteService{repo: repo, log: log}
}

func (uc *DeleteService) Execute(
	ctx context.Context,
	c caller.Caller,
	id string,
) error {

	if !c.IsTenant() {
		return domain.ErrPermissionDenied()
	}

	if err := uc.repo.DeleteService(ctx, id, c.Domain); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrServiceNotFound()
		}
		return fmt.Errorf("delete service: %w", err)
	}

	uc.log.WithFields(logrus.Fields{
		"service_id": id,
		"domain":     c.Domain,
	}).Info("service deleted")
	return nil
}
