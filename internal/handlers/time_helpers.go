package handlers

import (
	"strings"
	"time"

	domain "github.com/BruksfildServices01/slot-booking/internal/domain/booking"
	"github.com/BruksfildServices01/slot-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/slot-booking/internal/httperr"
)

// --------------------------------------------------
// Calendar values arrive as UTC strings
// --------------------------------------------------

func invalidDateOrTime() error {
	return httperr.ErrBusiness(domain.CodeInvalidDateOrTime)
}

func parseDate(s string) (schedule.Date, error) {
	d, err := schedule.ParseDate(strings.TrimSpace(s))
	if err != nil {
		return schedule.Date{}, invalidDateOrTime()
	}
	return d, nil
}

// parseOptionalDate returns the zero Date for an empty value.
func parseOptionalDate(s string) (schedule.Date, error) {
	if strings.TrimSpace(s) == "" {
		return schedule.Date{}, nil
	}
	return parseDate(s)
}

func parseOptionalTimeOfDay(s string) (*schedule.TimeOfDay, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	tod, err := schedule.ParseTimeOfDay(s)
	if err != nil {
		return nil, invalidDateOrTime()
	}
	return &tod, nil
}

// parseStartTime accepts either "HH:MM" on the given date or a full
// RFC3339 instant.
func parseStartTime(date schedule.Date, s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if tod, err := schedule.ParseTimeOfDay(s); err == nil {
		return date.At(tod), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, invalidDateOrTime()
	}
	return t.UTC(), nil
}

// splitList reads comma separated and repeated query values alike.
func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
