package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyShift_CoversEveryHour(t *testing.T) {
	want := map[int]WorkShift{}
	for h := 0; h < 24; h++ {
		switch {
		case h >= 6 && h < 12:
			want[h] = ShiftMorning
		case h >= 12 && h < 18:
			want[h] = ShiftAfternoon
		case h >= 18 && h < 22:
			want[h] = ShiftEvening
		default:
			want[h] = ShiftNight
		}
	}

	for h := 0; h < 24; h++ {
		at := time.Date(2024, 6, 10, h, 59, 0, 0, time.UTC)
		got := ClassifyShift(at)
		assert.Contains(t, AllShifts, got)
		assert.Equal(t, want[h], got, "hour %d", h)
	}
}

func TestClassifyShift_UsesUTCHour(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*60*60)
	// 05:00 local is 22:00 UTC of the previous day
	at := time.Date(2024, 6, 10, 5, 0, 0, 0, loc)

	assert.Equal(t, ShiftNight, ClassifyShift(at))
}

func TestShiftSet_Covers(t *testing.T) {
	set := ShiftSet{ShiftMorning}
	date := Date{Year: 2024, Month: time.June, Day: 10}

	assert.True(t, set.Covers(date.At(MustTimeOfDay("09:00"))))
	assert.True(t, set.Covers(date.At(MustTimeOfDay("11:59"))))
	assert.False(t, set.Covers(date.At(MustTimeOfDay("12:00"))))
	assert.False(t, set.Covers(date.At(MustTimeOfDay("05:59"))))
	assert.False(t, ShiftSet{}.Covers(date.At(MustTimeOfDay("09:00"))))
}

func TestParseShiftSet(t *testing.T) {
	set, err := ParseShiftSet([]string{"morning", " Evening "})
	require.NoError(t, err)
	assert.Equal(t, ShiftSet{ShiftMorning, ShiftEvening}, set)
	assert.Equal(t, []string{"MORNING", "EVENING"}, set.Strings())

	_, err = ParseShiftSet([]string{"MORNING", "LUNCH"})
	assert.ErrorIs(t, err, ErrUnknownShift)

	_, err = ParseShiftSet([]string{"NIGHT", "night"})
	assert.ErrorIs(t, err, ErrDuplicateShift)
}

func TestWorkDays(t *testing.T) {
	assert.Equal(t, Monday, WorkDayOf(time.Monday))
	assert.Equal(t, Sunday, WorkDayOf(time.Sunday))

	days, err := ParseWorkDays([]string{"monday", "FRIDAY"})
	require.NoError(t, err)
	assert.Equal(t, []WorkDay{Monday, Friday}, days)

	_, err = ParseWorkDays([]string{"MON"})
	assert.ErrorIs(t, err, ErrUnknownWorkDay)

	_, err = ParseWorkDays([]string{"TUESDAY", "tuesday"})
	assert.ErrorIs(t, err, ErrDuplicateWorkDay)
}
