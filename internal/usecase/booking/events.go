package booking

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/slot-booking/internal/models"
)

type BookingCreatedEvent struct {
	BookingID  string          `json:"booking_id"`
	Customer   string          `json:"customer"`
	Domain     string          `json:"domain"`
	ServiceID  string          `json:"service_id"`
	EmployeeID string          `json:"employee_id"`
	StartTime  time.Time       `json:"start_time"`
	EndTime    time.Time       `json:"end_time"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

type BookingCancelledEvent struct {
	BookingID   string    `json:"booking_id"`
	Customer    string    `json:"customer"`
	Domain      string    `json:"domain"`
	CancelledBy string    `json:"cancelled_by"`
	Reason      string    `json:"reason"`
	StartTime   time.Time `json:"start_time"`
}

func createdEvent(b *models.Booking, domain string) BookingCreatedEvent {
	return BookingCreatedEvent{
		BookingID:  b.ID,
		Customer:   b.Customer,
		Domain:     domain,
		ServiceID:  b.ServiceID,
		EmployeeID: b.EmployeeID,
		StartTime:  b.StartTime,
		EndTime:    b.EndTime,
		TotalPrice: b.TotalPrice,
	}
}
