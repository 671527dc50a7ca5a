package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Service is a tenant-scoped offering. Deleting it is always a soft delete
// so bookings keep pointing at a readable row.
type Service struct {
	ID     string `gorm:"type:uuid;primaryKey" json:"id"`
	Domain string `gorm:"size:100;not null;index" json:"domain"`

	Name        string          `gorm:"size:150;not null" json:"name"`
	Description string          `gorm:"size:500" json:"description"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price"`

	Hours ServiceHours `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"hours"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (s *Service) BeforeCreate(*gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// ServiceHours is the operating window owned by a Service, stored as HH:MM.
type ServiceHours struct {
	ID        uint   `gorm:"primaryKey" json:"-"`
	ServiceID string `gorm:"type:uuid;uniqueIndex;not null" json:"-"`

	StartTime   string `gorm:"size:5;not null" json:"start_time"`
	EndTime     string `gorm:"size:5;not null" json:"end_time"`
	BreakStart  string `gorm:"size:5" json:"break_start"`
	BreakEnd    string `gorm:"size:5" json:"break_end"`
	DurationMin int    `gorm:"not null" json:"duration"`
}
