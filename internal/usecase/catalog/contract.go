package catalog

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/slot-booking/internal/models"
)

// ServiceFilter narrows a tenant's live services. Nil bounds are open.
type ServiceFilter struct {
	Domain   string
	Name     string // case-insensitive substring
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
}

// EmployeeFilter narrows a tenant's employees. WorkDays and WorkShifts must
// all be present on a match; ServiceIDs matches any linked service.
type EmployeeFilter struct {
	Domain     string
	Name       string
	WorkDays   []string
	WorkShifts []string
	ServiceIDs []string
}

type Repository interface {
	// ServiceNameExists ignores the service excludeID, if set.
	ServiceNameExists(ctx context.Context, domain string, name string, excludeID string) (bool, error)
	CreateService(ctx context.Context, svc *models.Service) error
	FindService(ctx context.Context, id string, domain string) (*models.Service, error)
	ListServices(ctx context.Context, filter ServiceFilter) ([]models.Service, error)
	UpdateService(ctx context.Context, svc *models.Service) error
	DeleteService(ctx context.Context, id string, domain string) error

	// CountServices counts live services of domain among ids.
	CountServices(ctx context.Context, domain string, ids []string) (int64, error)

	CreateEmployee(ctx context.Context, emp *models.Employee, serviceIDs []string) error
	FindEmployee(ctx context.Context, id string, domain string) (*models.Employee, error)
	ListEmployees(ctx context.Context, filter EmployeeFilter) ([]models.Employee, error)
	// UpdateEmployee replaces the employee's fields and service links.
	UpdateEmployee(ctx context.Context, emp *models.Employee, serviceIDs []string) error
	DeleteEmployee(ctx context.Context, id string, domain string) error
}
