package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/slot-booking/internal/models"
)

type BookingEmployeeDTO struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Image     string `json:"image,omitempty"`
}

type BookingServiceDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type BookingDTO struct {
	ID         string             `json:"id"`
	Date       string             `json:"date"`
	StartTime  time.Time          `json:"start_time"`
	EndTime    time.Time          `json:"end_time"`
	Status     string             `json:"status"`
	Customer   string             `json:"customer"`
	Phone      string             `json:"phone"`
	Note       string             `json:"note"`
	NoteCancel *string            `json:"note_cancel"`
	VoucherID  *string            `json:"voucher_id"`
	TotalPrice decimal.Decimal    `json:"total_price"`
	Employee   BookingEmployeeDTO `json:"employee"`
	Service    BookingServiceDTO  `json:"service"`
	CreatedAt  time.Time          `json:"created_at"`
}

func FromBooking(b models.Booking) BookingDTO {
	return BookingDTO{
		ID:         b.ID,
		Date:       b.StartTime.UTC().Format("2006-01-02"),
		StartTime:  b.StartTime.UTC(),
		EndTime:    b.EndTime.UTC(),
		Status:     b.Status,
		Customer:   b.Customer,
		Phone:      b.Phone,
		Note:       b.Note,
		NoteCancel: b.NoteCancel,
		VoucherID:  b.VoucherID,
		TotalPrice: b.TotalPrice,
		Employee: BookingEmployeeDTO{
			ID:        b.Employee.ID,
			FirstName: b.Employee.FirstName,
			LastName:  b.Employee.LastName,
			Email:     b.Employee.Email,
			Image:     b.Employee.Image,
		},
		Service: BookingServiceDTO{
			ID:   b.ServiceID,
			Name: b.Service.Name,
		},
		CreatedAt: b.CreatedAt.UTC(),
	}
}

func FromBookings(items []models.Booking) []BookingDTO {
	out := make([]BookingDTO, len(items))
	for i, b := range items {
		out[i] = FromBooking(b)
	}
	return out
}
