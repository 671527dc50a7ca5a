package booking

import (
	"fmt"
	"time"

	"github.com/BruksfildServices01/slot-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/slot-booking/internal/models"
)

type AvailabilityInput struct {
	ServiceID string
	Date      schedule.Date

	// Optional overrides of the service's operating start/end.
	StartTime *schedule.TimeOfDay
	EndTime   *schedule.TimeOfDay
}

type EmployeeSummary struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Image     string `json:"image,omitempty"`
}

type SlotAvailability struct {
	Date      string            `json:"date"`
	StartTime time.Time         `json:"start_time"`
	EndTime   time.Time         `json:"end_time"`
	ServiceID string            `json:"service_id"`
	Employees []EmployeeSummary `json:"employees"`
}

func SummaryOf(e models.Employee) EmployeeSummary {
	return EmployeeSummary{
		ID:        e.ID,
		FirstName: e.FirstName,
		LastName:  e.LastName,
		Email:     e.Email,
		Image:     e.Image,
	}
}

// ServiceWindow reads the stored HH:MM strings of a service into a window.
// Empty break fields mean no break.
func ServiceWindow(s *models.Service) (schedule.Window, error) {
	h := s.Hours

	start, err := schedule.ParseTimeOfDay(h.StartTime)
	if err != nil {
		return schedule.Window{}, fmt.Errorf("service %s start: %w", s.ID, err)
	}
	end, err := schedule.ParseTimeOfDay(h.EndTime)
	if err != nil {
		return schedule.Window{}, fmt.Errorf("service %s end: %w", s.ID, err)
	}

	breakStart, breakEnd := start, start
	if h.BreakStart != "" && h.BreakEnd != "" {
		if breakStart, err = schedule.ParseTimeOfDay(h.BreakStart); err != nil {
			return schedule.Window{}, fmt.Errorf("service %s break start: %w", s.ID, err)
		}
		if breakEnd, err = schedule.ParseTimeOfDay(h.BreakEnd); err != nil {
			return schedule.Window{}, fmt.Errorf("service %s break end: %w", s.ID, err)
		}
	}

	return schedule.Window{
		Start:           start,
		End:             end,
		BreakStart:      breakStart,
		BreakEnd:        breakEnd,
		DurationMinutes: h.DurationMin,
	}, nil
}

// EmployeeShifts reads the stored shift names. Values are validated when the
// employee is created, so unknown entries are skipped here.
func EmployeeShifts(e models.Employee) schedule.ShiftSet {
	set := make(schedule.ShiftSet, 0, len(e.WorkShifts))
	for _, raw := range e.WorkShifts {
		if ws, err := schedule.ParseWorkShift(raw); err == nil {
			set = append(set, ws)
		}
	}
	return set
}

// EligibleAt keeps the employees whose shifts cover t.
func EligibleAt(employees []models.Employee, t time.Time) []models.Employee {
	out := make([]models.Employee, 0, len(employees))
	for _, e := range employees {
		if EmployeeShifts(e).Covers(t) {
			out = append(out, e)
		}
	}
	return out
}
