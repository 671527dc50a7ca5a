package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Voucher is a discount scoped to exactly one service.
type Voucher struct {
	ID        string `gorm:"type:uuid;primaryKey" json:"id"`
	ServiceID string `gorm:"type:uuid;not null;uniqueIndex:uq_vouchers_service_code" json:"service_id"`
	Code      string `gorm:"size:50;not null;uniqueIndex:uq_vouchers_service_code" json:"code"`

	DiscountPercent decimal.Decimal `gorm:"type:numeric(5,4);not null" json:"discount_percent"`
	MaxDiscount     decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"max_discount"`
	MinAppValue     decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"min_app_value"`

	StartAt  time.Time `json:"start_at"`
	ExpireAt time.Time `json:"expire_at"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (v *Voucher) BeforeCreate(*gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}
