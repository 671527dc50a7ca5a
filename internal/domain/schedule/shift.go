package schedule

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

type WorkShift string

const (
	ShiftMorning   WorkShift = "MORNING"
	ShiftAfternoon WorkShift = "AFTERNOON"
	ShiftEvening   WorkShift = "EVENING"
	ShiftNight     WorkShift = "NIGHT"
)

var AllShifts = []WorkShift{ShiftMorning, ShiftAfternoon, ShiftEvening, ShiftNight}

var (
	ErrUnknownShift   = errors.New("unknown work shift")
	ErrDuplicateShift = errors.New("duplicate work shift")
)

// ClassifyShift buckets the UTC hour of t:
// [6,12) morning, [12,18) afternoon, [18,22) evening, anything else night.
func ClassifyShift(t time.Time) WorkShift {
	switch h := t.UTC().Hour(); {
	case h >= 6 && h < 12:
		return ShiftMorning
	case h >= 12 && h < 18:
		return ShiftAfternoon
	case h >= 18 && h < 22:
		return ShiftEvening
	default:
		return ShiftNight
	}
}

func ParseWorkShift(s string) (WorkShift, error) {
	ws := WorkShift(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range AllShifts {
		if ws == known {
			return ws, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownShift, s)
}

// ShiftSet is a duplicate-free set of shifts an employee works.
type ShiftSet []WorkShift

// ParseShiftSet rejects unknown values and duplicates.
func ParseShiftSet(values []string) (ShiftSet, error) {
	seen := make(map[WorkShift]struct{}, len(values))
	set := make(ShiftSet, 0, len(values))
	for _, v := range values {
		ws, err := ParseWorkShift(v)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[ws]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateShift, ws)
		}
		seen[ws] = struct{}{}
		set = append(set, ws)
	}
	return set, nil
}

func (s ShiftSet) Contains(ws WorkShift) bool {
	for _, v := range s {
		if v == ws {
			return true
		}
	}
	return false
}

// Covers reports whether the shift of t is one of the set.
func (s ShiftSet) Covers(t time.Time) bool {
	return s.Contains(ClassifyShift(t))
}

func (s ShiftSet) Strings() []string {
	out := make([]string, len(s))
	for i, v := range s {
		out[i] = string(v)
	}
	return out
}
