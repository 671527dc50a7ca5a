package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Employee is soft-deleted so past bookings keep a readable assignee.
type Employee struct {
	ID     string `gorm:"type:uuid;primaryKey" json:"id"`
	Domain string `gorm:"size:100;not null;index" json:"domain"`

	FirstName string `gorm:"size:100;not null" json:"first_name"`
	LastName  string `gorm:"size:100" json:"last_name"`
	Email     string `gorm:"size:150" json:"email"`
	Phone     string `gorm:"size:20" json:"phone"`
	Image     string `gorm:"size:255" json:"image"`

	WorkDays   pq.StringArray `gorm:"type:text[];not null" json:"work_days"`
	WorkShifts pq.StringArray `gorm:"type:text[];not null" json:"work_shifts"`

	Services []EmployeeService `gorm:"constraint:OnDelete:CASCADE;" json:"-"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (e *Employee) BeforeCreate(*gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}

// EmployeeService links an employee to a service they can perform.
type EmployeeService struct {
	EmployeeID string `gorm:"type:uuid;primaryKey"`
	ServiceID  string `gorm:"type:uuid;primaryKey;index"`

	Service Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`

	CreatedAt time.Time
}
