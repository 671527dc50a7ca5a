package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	domain "github.com/BruksfildServices01/slot-booking/internal/domain/booking"
	"github.com/BruksfildServices01/slot-booking/internal/domain/caller"
	"github.com/BruksfildServices01/slot-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/slot-booking/internal/httperr"
	"github.com/BruksfildServices01/slot-booking/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateServiceInput struct {
	Name        string
	Description string
	Price       decimal.Decimal

	StartTime  string
	EndTime    string
	BreakStart string // optional, with BreakEnd
	BreakEnd   string
	Duration   int
}

// ======================================================
// USE CASE
// ======================================================

type CreateService struct {
	repo Repository
	log  logrus.FieldLogger
}

func NewCreateService(repo Repository, log logrus.FieldLogger) *CreateService {
	return &CreateService{repo: repo, log: log}
}

func (uc *CreateService) Execute(
	ctx context.Context,
	c caller.Caller,
	in CreateServiceInput,
) (*models.Service, error) {

	if !c.IsTenant() {
		return nil, domain.ErrPermissionDenied()
	}

	svc, err := newService(c.Domain, in)
	if err != nil {
		return nil, err
	}

	if err := checkServiceName(ctx, uc.repo, svc); err != nil {
		return nil, err
	}

	if err := uc.repo.CreateService(ctx, svc); err != nil {
		return nil, err
	}

	uc.log.WithFields(logrus.Fields{
		"service_id": svc.ID,
		"domain":     c.Domain,
	}).Info("service created")

	return svc, nil
}

// checkServiceName keeps names unique per domain, ignoring svc itself.
func checkServiceName(ctx context.Context, repo Repository, svc *models.Service) error {
	exists, err := repo.ServiceNameExists(ctx, svc.Domain, svc.Name, svc.ID)
	if err != nil {
		return fmt.Errorf("check service name: %w", err)
	}
	if exists {
		return httperr.ErrAlreadyExists(CodeServiceExist)
	}
	return nil
}

// newService validates in and builds the unsaved model.
func newService(tenant string, in CreateServiceInput) (*models.Service, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, httperr.ErrBusiness(CodeInvalidName)
	}
	if in.Price.IsNegative() {
		return nil, httperr.ErrBusiness(CodeInvalidPrice)
	}

	window, err := parseWindow(in)
	if err != nil {
		return nil, httperr.ErrBusiness(CodeInvalidServiceHours)
	}

	svc := &models.Service{
		Domain:      tenant,
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		Price:       in.Price,
		Hours: models.ServiceHours{
			StartTime:   window.Start.String(),
			EndTime:     window.End.String(),
			DurationMin: window.DurationMinutes,
		},
	}
	if window.BreakStart.Before(window.BreakEnd) {
		svc.Hours.BreakStart = window.BreakStart.String()
		svc.Hours.BreakEnd = window.BreakEnd.String()
	}
	return svc, nil
}

// parseWindow requires both break bounds or neither.
func parseWindow(in CreateServiceInput) (schedule.Window, error) {
	start, err := schedule.ParseTimeOfDay(in.StartTime)
	if err != nil {
		return schedule.Window{}, err
	}
	end, err := schedule.ParseTimeOfDay(in.EndTime)
	if err != nil {
		return schedule.Window{}, err
	}

	w := schedule.Window{
		Start:           start,
		End:             end,
		BreakStart:      start,
		BreakEnd:        start,
		DurationMinutes: in.Duration,
	}

	switch {
	case in.BreakStart == "" && in.BreakEnd == "":
	case in.BreakStart == "" || in.BreakEnd == "":
		return schedule.Window{}, schedule.ErrInvalidBreak
	default:
		if w.BreakStart, err = schedule.ParseTimeOfDay(in.BreakStart); err != nil {
			return schedule.Window{}, err
		}
		if w.BreakEnd, err = schedule.ParseTimeOfDay(in.BreakEnd); err != nil {
			return schedule.Window{}, err
		}
	}

	return w, w.Validate()
}
