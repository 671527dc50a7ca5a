package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/slot-booking/internal/domain/booking"
	"github.com/BruksfildServices01/slot-booking/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

var _ domain.Repository = (*BookingGormRepository)(nil)

// --------------------------------------------------
// Service / Voucher
// --------------------------------------------------

func (r *BookingGormRepository) FindService(
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

func (r *BookingGormRepository) FindVoucher(
	ctx context.Context,
	id string,
	serviceID string,
) (*models.Voucher, error) {

	var v models.Voucher
	if err := r.db.WithContext(ctx).
		Where("id = ? AND service_id = ?", id, serviceID).
		Take(&v).Error; err != nil {
		return nil, classify(err)
	}
	return &v, nil
}

// --------------------------------------------------
// Employee
// --------------------------------------------------

func (r *BookingGormRepository) FindEmployees(
	ctx context.Context,
	f domain.EmployeeFilter,
) ([]models.Employee, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Employee{}).
		Where("employees.domain = ?", f.Domain).
		Where("? = ANY(employees.work_days)", string(f.WorkDay)).
		Where(
			"EXISTS (SELECT 1 FROM employee_services es WHERE es.employee_id = employees.id AND es.service_id = ?)",
			f.ServiceID,
		)

	if f.EmployeeID != "" {
		q = q.Where("employees.id = ?", f.EmployeeID)
	}

	if f.FreeAt != nil {
		q = q.Where(
			"NOT EXISTS (SELECT 1 FROM bookings b WHERE b.employee_id = employees.id AND b.start_time = ? AND b.status <> ?)",
			*f.FreeAt,
			string(domain.StatusCancel),
		)
	}

	var employees []models.Employee
	if err := q.Order("employees.first_name ASC, employees.id ASC").
		Find(&employees).Error; err != nil {
		return nil, classify(err)
	}
	return employees, nil
}

func (r *BookingGormRepository) CountActiveBookingsAt(
	ctx context.Context,
	employeeID string,
	start time.Time,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("employee_id = ? AND start_time = ? AND status <> ?",
			employeeID, start.UTC(), string(domain.StatusCancel)).
		Count(&count).Error; err != nil {
		return 0, classify(err)
	}
	return count, nil
}

// --------------------------------------------------
// Booking (create)
// --------------------------------------------------

// CreateBooking serialises creates per employee by locking the employee row,
// re-checks the slot, then inserts. The partial unique index on
// (employee_id, start_time) catches anything the lock does not.
func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var emp models.Employee
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").
			Where("id = ?", b.EmployeeID).
			Take(&emp).Error; err != nil {
			return err
		}

		var taken int64
		if err := tx.
			Model(&models.Booking{}).
			Where("employee_id = ? AND start_time = ? AND status <> ?",
				b.EmployeeID, b.StartTime, string(domain.StatusCancel)).
			Count(&taken).Error; err != nil {
			return err
		}
		if taken > 0 {
			return domain.ErrSlotTaken
		}

		return tx.Omit(clause.Associations).Create(b).Error
	})
	if err == nil {
		return nil
	}

	err = classify(err)
	if errors.Is(err, domain.ErrSlotTaken) || errors.Is(err, domain.ErrNotFound) {
		return err
	}
	return fmt.Errorf("create booking: %w", err)
}

// --------------------------------------------------
// Booking (read)
// --------------------------------------------------

// scoped joins services with a plain string so the soft-delete predicate is
// not applied: bookings of deleted services stay readable.
func (r *BookingGormRepository) scoped(ctx context.Context, tenant string) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Joins("JOIN services ON services.id = bookings.service_id").
		Where("services.domain = ?", tenant)
}

func withRelations(q *gorm.DB) *gorm.DB {
	return q.
		Preload("Service", func(tx *gorm.DB) *gorm.DB { return tx.Unscoped() }).
		Preload("Service.Hours").
		Preload("Employee", func(tx *gorm.DB) *gorm.DB { return tx.Unscoped() })
}

func (r *BookingGormRepository) FindBooking(
	ctx context.Context,
	scope domain.BookingScope,
) (*models.Booking, error) {

	q := r.scoped(ctx, scope.Domain).
		Select("bookings.*").
		Where("bookings.id = ?", scope.ID)

	if scope.Customer != "" {
		q = q.Where("bookings.customer = ?", scope.Customer)
	}

	var b models.Booking
	if err := withRelations(q).Take(&b).Error; err != nil {
		return nil, classify(err)
	}
	return &b, nil
}

func (r *BookingGormRepository) ListBookings(
	ctx context.Context,
	f domain.ListFilter,
) ([]models.Booking, int64, error) {

	q := r.scoped(ctx, f.Domain)

	if f.Customer != "" {
		q = q.Where("bookings.customer = ?", f.Customer)
	}
	if len(f.ServiceIDs) > 0 {
		q = q.Where("bookings.service_id IN ?", f.ServiceIDs)
	}
	if f.From != nil {
		q = q.Where("bookings.start_time >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("bookings.start_time <= ?", *f.To)
	}
	if len(f.Statuses) > 0 {
		statuses := make([]string, len(f.Statuses))
		for i, s := range f.Statuses {
			statuses[i] = string(s)
		}
		q = q.Where("bookings.status IN ?", statuses)
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, classify(err)
	}

	var items []models.Booking
	if err := withRelations(q.Session(&gorm.Session{})).
		Select("bookings.*").
		Order("bookings.created_at DESC").
		Offset(f.Offset).
		Limit(f.Limit).
		Find(&items).Error; err != nil {
		return nil, 0, classify(err)
	}

	return items, total, nil
}

func (r *BookingGormRepository) CountSuccessfulByCustomers(
	ctx context.Context,
	tenant string,
	emails []string,
) ([]domain.CustomerBookingCount, error) {

	var rows []domain.CustomerBookingCount
	if err := r.scoped(ctx, tenant).
		Select("bookings.customer AS email, COUNT(*) AS total").
		Where("bookings.status = ? AND bookings.customer IN ?", string(domain.StatusSuccess), emails).
		Group("bookings.customer").
		Order("bookings.customer ASC").
		Scan(&rows).Error; err != nil {
		return nil, classify(err)
	}
	return rows, nil
}

// --------------------------------------------------
// Booking (state change)
// --------------------------------------------------

// UpdateBookingStatus leaves updated_at untouched.
func (r *BookingGormRepository) UpdateBookingStatus(
	ctx context.Context,
	b *models.Booking,
	expected domain.Status,
) error {

	cols := map[string]any{"status": b.Status}
	if b.NoteCancel != nil {
		cols["note_cancel"] = *b.NoteCancel
	}

	res := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ? AND status = ?", b.ID, string(expected)).
		UpdateColumns(cols)
	if res.Error != nil {
		return fmt.Errorf("update booking status: %w", classify(res.Error))
	}
	if res.RowsAffected == 0 {
		return domain.ErrStaleStatus
	}
	return nil
}
