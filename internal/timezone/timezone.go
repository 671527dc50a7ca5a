package timezone

import "time"

// All instants handled by the engine are UTC.

type Clock interface {
	Now() time.Time
}

type UTCClock struct{}

func (UTCClock) Now() time.Time {
	return time.Now().UTC()
}

// FixedClock always reports the same instant.
type FixedClock time.Time

func (c FixedClock) Now() time.Time {
	return time.Time(c).UTC()
}

func Now() time.Time {
	return UTCClock{}.Now()
}
