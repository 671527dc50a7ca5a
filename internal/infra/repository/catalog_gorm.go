package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/slot-booking/internal/domain/booking"
	"github.com/BruksfildServices01/slot-booking/internal/models"
	"github.com/BruksfildServices01/slot-booking/internal/usecase/catalog"
)

type CatalogGormRepository struct {
	db *gorm.DB
}

var _ catalog.Repository = (*CatalogGormRepository)(nil)

func NewCatalogGormRepository(db *gorm.DB) *CatalogGormRepository {
	return &CatalogGormRepository{db: db}
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *CatalogGormRepository) ServiceNameExists(
	ctx context.Context,
	tenant string,
	name string,
	excludeID string,
) (bool, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Service{}).
		Where("domain = ? AND LOWER(name) = LOWER(?)", tenant, name)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, classify(err)
	}
	return count > 0, nil
}

func (r *CatalogGormRepository) CreateService(
	ctx context.Context,
	svc *models.Service,
) error {
	if err := r.db.WithContext(ctx).Create(svc).Error; err != nil {
		return fmt.Errorf("create service: %w", err)
	}
	return nil
}

func (r *CatalogGormRepository) FindService(
	ctx context.Context,
	id string,
	tenant string,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).
		Preload("Hours").
		Where("id = ? AND domain = ?", id, tenant).
		Take(&svc).Error; err != nil {
		return nil, classify(err)
	}
	return &svc, nil
}

func (r *CatalogGormRepository) ListServices(
	ctx context.Context,
	f catalog.ServiceFilter,
) ([]models.Service, error) {

	q := r.db.WithContext(ctx).
		Preload("Hours").
		Where("domain = ?", f.Domain)

	if f.Name != "" {
		q = q.Where("name ILIKE ?", "%"+escapeLike(f.Name)+"%")
	}
	if f.MinPrice != nil {
		q = q.Where("price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("price <= ?", *f.MaxPrice)
	}

	var services []models.Service
	if err := q.Order("name ASC, id ASC").Find(&services).Error; err != nil {
		return nil, classify(err)
	}
	return services, nil
}

// UpdateService rewrites the service row and its hours in one transaction.
func (r *CatalogGormRepository) UpdateService(
	ctx context.Context,
	svc *models.Service,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Service{}).
			Where("id = ? AND domain = ?", svc.ID, svc.Domain).
			Updates(map[string]any{
				"name":        svc.Name,
				"description": svc.Description,
				"price":       svc.Price,
			})
		if res.Error != nil {
			return classify(res.Error)
		}
		if res.RowsAffected == 0 {
			return domain.ErrNotFound
		}

		if err := tx.Model(&models.ServiceHours{}).
			Where("service_id = ?", svc.ID).
			Updates(map[string]any{
				"start_time":   svc.Hours.StartTime,
				"end_time":     svc.Hours.EndTime,
				"break_start":  svc.Hours.BreakStart,
				"break_end":    svc.Hours.BreakEnd,
				"duration_min": svc.Hours.DurationMin,
			}).Error; err != nil {
			return fmt.Errorf("update service hours: %w", err)
		}
		return nil
	})
}

// DeleteService soft-deletes; bookings keep their service_id.
func (r *CatalogGormRepository) DeleteService(
	ctx context.Context,
	id string,
	tenant string,
) error {

	res := r.db.WithContext(ctx).
		Where("id = ? AND domain = ?", id, tenant).
		Delete(&models.Service{})
	if res.Error != nil {
		return classify(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *CatalogGormRepository) CountServices(
	ctx context.Context,
	tenant string,
	ids []string,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Service{}).
		Where("domain = ? AND id IN ?", tenant, ids).
		Count(&count).Error; err != nil {
		return 0, classify(err)
	}
	return count, nil
}

// --------------------------------------------------
// Employee
// --------------------------------------------------

func (r *CatalogGormRepository) CreateEmployee(
	ctx context.Context,
	emp *models.Employee,
	serviceIDs []string,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(emp).Error; err != nil {
			return fmt.Errorf("create employee: %w", err)
		}

		links := make([]models.EmployeeService, len(serviceIDs))
		for i, sid := range serviceIDs {
			links[i] = models.EmployeeService{EmployeeID: emp.ID, ServiceID: sid}
		}
		if len(links) == 0 {
			return nil
		}
		if err := tx.Omit(clause.Associations).Create(&links).Error; err != nil {
			return fmt.Errorf("link employee services: %w", err)
		}
		emp.Services = links
		return nil
	})
}

func (r *CatalogGormRepository) FindEmployee(
	ctx context.Context,
	id string,
	tenant string,
) (*models.Employee, error) {

	var emp models.Employee
	if err := r.db.WithContext(ctx).
		Preload("Services.Service").
		Where("id = ? AND domain = ?", id, tenant).
		Take(&emp).Error; err != nil {
		return nil, classify(err)
	}
	return &emp, nil
}

func (r *CatalogGormRepository) ListEmployees(
	ctx context.Context,
	f catalog.EmployeeFilter,
) ([]models.Employee, error) {

	q := r.db.WithContext(ctx).
		Preload("Services.Service").
		Where("employees.domain = ?", f.Domain)

	if f.Name != "" {
		like := "%" + escapeLike(f.Name) + "%"
		q = q.Where("(first_name ILIKE ? OR last_name ILIKE ?)", like, like)
	}
	if len(f.WorkDays) > 0 {
		q = q.Where("work_days @> ?", pq.StringArray(f.WorkDays))
	}
	if len(f.WorkShifts) > 0 {
		q = q.Where("work_shifts @> ?", pq.StringArray(f.WorkShifts))
	}
	if len(f.ServiceIDs) > 0 {
		q = q.Where(
			"EXISTS (SELECT 1 FROM employee_services es WHERE es.employee_id = employees.id AND es.service_id IN ?)",
			f.ServiceIDs,
		)
	}

	var employees []models.Employee
	if err := q.Order("employees.created_at DESC, employees.id ASC").
		Find(&employees).Error; err != nil {
		return nil, classify(err)
	}
	return employees, nil
}

// UpdateEmployee rewrites the row and replaces every service link.
func (r *CatalogGormRepository) UpdateEmployee(
	ctx context.Context,
	emp *models.Employee,
	serviceIDs []string,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Employee{}).
			Where("id = ? AND domain = ?", emp.ID, emp.Domain).
			Updates(map[string]any{
				"first_name":  emp.FirstName,
				"last_name":   emp.LastName,
				"email":       emp.Email,
				"phone":       emp.Phone,
				"image":       emp.Image,
				"work_days":   emp.WorkDays,
				"work_shifts": emp.WorkShifts,
			})
		if res.Error != nil {
			return classify(res.Error)
		}
		if res.RowsAffected == 0 {
			return domain.ErrNotFound
		}

		if err := tx.Where("employee_id = ?", emp.ID).
			Delete(&models.EmployeeService{}).Error; err != nil {
			return fmt.Errorf("unlink employee services: %w", err)
		}

		links := make([]models.EmployeeService, len(serviceIDs))
		for i, sid := range serviceIDs {
			links[i] = models.EmployeeService{EmployeeID: emp.ID, ServiceID: sid}
		}
		if len(links) == 0 {
			emp.Services = nil
			return nil
		}
		if err := tx.Omit(clause.Associations).Create(&links).Error; err != nil {
			return fmt.Errorf("link employee services: %w", err)
		}
		emp.Services = links
		return nil
	})
}

// DeleteEmployee soft-deletes the employee and drops its service links.
func (r *CatalogGormRepository) DeleteEmployee(
	ctx context.Context,
	id string,
	tenant string,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND domain = ?", id, tenant).
			Delete(&models.Employee{})
		if res.Error != nil {
			return classify(res.Error)
		}
		if res.RowsAffected == 0 {
			return domain.ErrNotFound
		}

		if err := tx.Where("employee_id = ?", id).
			Delete(&models.EmployeeService{}).Error; err != nil {
			return fmt.Errorf("unlink employee services: %w", err)
		}
		return nil
	})
}

// escapeLike makes s match literally inside a LIKE pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
