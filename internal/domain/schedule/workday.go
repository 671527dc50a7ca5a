package schedule

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

type WorkDay string

const (
	Sunday    WorkDay = "SUNDAY"
	Monday    WorkDay = "MONDAY"
	Tuesday   WorkDay = "TUESDAY"
	Wednesday WorkDay = "WEDNESDAY"
	Thursday  WorkDay = "THURSDAY"
	Friday    WorkDay = "FRIDAY"
	Saturday  WorkDay = "SATURDAY"
)

// indexed by time.Weekday
var weekdays = [...]WorkDay{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

var (
	ErrUnknownWorkDay   = errors.New("unknown work day")
	ErrDuplicateWorkDay = errors.New("duplicate work day")
)

func WorkDayOf(wd time.Weekday) WorkDay {
	return weekdays[wd]
}

func ParseWorkDay(s string) (WorkDay, error) {
	wd := WorkDay(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range weekdays {
		if wd == known {
			return wd, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownWorkDay, s)
}

// ParseWorkDays rejects unknown values and duplicates.
func ParseWorkDays(values []string) ([]WorkDay, error) {
	seen := make(map[WorkDay]struct{}, len(values))
	days := make([]WorkDay, 0, len(values))
	for _, v := range values {
		wd, err := ParseWorkDay(v)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[wd]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateWorkDay, wd)
		}
		seen[wd] = struct{}{}
		days = append(days, wd)
	}
	return days, nil
}
