package schedule

import (
	"errors"
	"time"
)

var (
	ErrInvalidWindow   = errors.New("operating window start must be before end")
	ErrInvalidBreak    = errors.New("break window must lie inside the operating window")
	ErrInvalidDuration = errors.New("slot duration must be positive")
)

// MaxSlotDurationMinutes caps a single slot at one day.
const MaxSlotDurationMinutes = 24 * 60

// Window describes a service's bookable day: operating hours, an optional
// break and the fixed slot length. A zero-length break means no break.
type Window struct {
	Start           TimeOfDay
	End             TimeOfDay
	BreakStart      TimeOfDay
	BreakEnd        TimeOfDay
	DurationMinutes int
}

func (w Window) Duration() time.Duration {
	return time.Duration(w.DurationMinutes) * time.Minute
}

// Validate checks start < end, break ⊆ window and 0 < duration <= one day.
func (w Window) Validate() error {
	if !w.Start.Before(w.End) {
		return ErrInvalidWindow
	}
	if w.BreakEnd.Before(w.BreakStart) ||
		w.BreakStart.Before(w.Start) ||
		w.End.Before(w.BreakEnd) {
		return ErrInvalidBreak
	}
	if w.DurationMinutes <= 0 || w.DurationMinutes > MaxSlotDurationMinutes {
		return ErrInvalidDuration
	}
	return nil
}

// GenerateSlots returns the ordered slot start instants of the window on the
// given date. A cursor landing in [BreakStart, BreakEnd) jumps to BreakEnd
// without emitting; the last slot may run past End.
func GenerateSlots(w Window, date Date) []time.Time {
	if w.DurationMinutes <= 0 {
		return nil
	}

	step := w.Duration()
	end := date.At(w.End)
	breakStart := date.At(w.BreakStart)
	breakEnd := date.At(w.BreakEnd)

	var slots []time.Time
	for cur := date.At(w.Start); cur.Before(end); {
		if !cur.Before(breakStart) && cur.Before(breakEnd) {
			cur = breakEnd
			continue
		}
		slots = append(slots, cur)
		cur = cur.Add(step)
	}

	return slots
}
