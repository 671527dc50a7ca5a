package booking

import (
	"context"
	"time"

	"github.com/BruksfildServices01/slot-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/slot-booking/internal/models"
)

// EmployeeFilter selects employees of a tenant who work WorkDay and are
// linked to ServiceID.
type EmployeeFilter struct {
	Domain    string
	ServiceID string
	WorkDay   schedule.WorkDay

	// FreeAt drops employees holding an active booking starting exactly then.
	FreeAt *time.Time

	// EmployeeID restricts the result to one employee when set.
	EmployeeID string
}

// BookingScope locates a single booking. Customer, when set, additionally
// requires the booking to belong to that customer.
type BookingScope struct {
	ID       string
	Domain   string
	Customer string
}

type ListFilter struct {
	Domain     string
	Customer   string
	ServiceIDs []string
	From       *time.Time
	To         *time.Time
	Statuses   []Status
	Offset     int
	Limit      int
}

type CustomerBookingCount struct {
	Email string `json:"email"`
	Total int64  `json:"total_booking"`
}

type Repository interface {
	// -------- Service / Voucher --------
	FindService(
		ctx context.Context,
		id string,
		domain string,
	) (*models.Service, error)

	FindVoucher(
		ctx context.Context,
		id string,
		serviceID string,
	) (*models.Voucher, error)

	// -------- Employee --------
	FindEmployees(
		ctx context.Context,
		filter EmployeeFilter,
	) ([]models.Employee, error)

	CountActiveBookingsAt(
		ctx context.Context,
		employeeID string,
		start time.Time,
	) (int64, error)

	// -------- Booking (create) --------

	// CreateBooking commits b atomically and returns ErrSlotTaken when the
	// employee already holds an active booking at b.StartTime.
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Booking (read) --------
	FindBooking(
		ctx context.Context,
		scope BookingScope,
	) (*models.Booking, error)

	ListBookings(
		ctx context.Context,
		filter ListFilter,
	) ([]models.Booking, int64, error)

	CountSuccessfulByCustomers(
		ctx context.Context,
		domain string,
		emails []string,
	) ([]CustomerBookingCount, error)

	// -------- Booking (state change) --------

	// UpdateBookingStatus writes b.Status and b.NoteCancel only if the stored
	// status still equals expected, returning ErrStaleStatus otherwise.
	UpdateBookingStatus(
		ctx context.Context,
		b *models.Booking,
		expected Status,
	) error
}
