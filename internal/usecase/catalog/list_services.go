package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/slot-booking/internal/domain/caller"
	"github.com/BruksfildServices01/slot-booking/internal/httperr"
	"github.com/BruksfildServices01/slot-booking/internal/models"
)

type ListServicesInput struct {
	Name     string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
}

type ListServices struct {
	repo Repository
}

func NewListServices(repo Repository) *ListServices {
	return &ListServices{repo: repo}
}

func (uc *ListServices) Execute(
	ctx context.Context,
	c caller.Caller,
	in ListServicesInput,
) ([]models.Service, error) {

	if in.MinPrice != nil && in.MaxPrice != nil && in.MinPrice.GreaterThan(*in.MaxPrice) {
		return nil, httperr.ErrBusiness(CodeInvalidData)
	}

	services, err := uc.repo.ListServices(ctx, ServiceFilter{
		Domain:   c.Domain,
		Name:     strings.TrimSpace(in.Name),
		MinPrice: in.MinPrice,
		MaxPrice: in.MaxPrice,
	})
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	return services, nil
}
