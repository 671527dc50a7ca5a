package dto

import (
	"time"

	"github.com/BruksfildServices01/slot-booking/internal/models"
)

type ServiceRefDTO struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

type EmployeeDTO struct {
	ID         string          `json:"id"`
	FirstName  string          `json:"first_name"`
	LastName   string          `json:"last_name"`
	Email      string          `json:"email"`
	Phone      string          `json:"phone"`
	Image      string          `json:"image,omitempty"`
	WorkDays   []string        `json:"work_days"`
	WorkShifts []string        `json:"work_shifts"`
	Services   []ServiceRefDTO `json:"services"`
	CreatedAt  time.Time       `json:"created_at"`
}

func FromEmployee(e models.Employee) EmployeeDTO {
	out := EmployeeDTO{
		ID:         e.ID,
		FirstName:  e.FirstName,
		LastName:   e.LastName,
		Email:      e.Email,
		Phone:      e.Phone,
		Image:      e.Image,
		WorkDays:   []string(e.WorkDays),
		WorkShifts: []string(e.WorkShifts),
		Services:   make([]ServiceRefDTO, len(e.Services)),
		CreatedAt:  e.CreatedAt.UTC(),
	}
	for i, link := range e.Services {
		out.Services[i] = ServiceRefDTO{ID: link.ServiceID, Name: link.Service.Name}
	}
	return out
}

func FromEmployees(items []models.Employee) []EmployeeDTO {
	out := make([]EmployeeDTO, len(items))
	for i, e := range items {
		out[i] = FromEmployee(e)
	}
	return out
}
