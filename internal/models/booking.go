package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Booking is one reserved slot. At most one non-cancelled row may exist per
// (employee_id, start_time); see db.Migrate for the partial unique index.
type Booking struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Customer string `gorm:"size:150;not null;index" json:"customer"`
	Phone    string `gorm:"size:20" json:"phone"`

	ServiceID string  `gorm:"type:uuid;not null;index" json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"service"`

	EmployeeID string   `gorm:"type:uuid;not null" json:"employee_id"`
	Employee   Employee `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"employee"`

	VoucherID *string  `gorm:"type:uuid" json:"voucher_id"`
	Voucher   *Voucher `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	StartTime  time.Time       `gorm:"not null" json:"start_time"`
	EndTime    time.Time       `gorm:"not null" json:"end_time"`
	TotalPrice decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"total_price"`

	Status     string  `gorm:"size:20;not null;default:'PENDING'" json:"status"`
	Note       string  `gorm:"size:500" json:"note"`
	NoteCancel *string `gorm:"size:500" json:"note_cancel"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Booking) BeforeCreate(*gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
