package booking

import (
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/slot-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/slot-booking/internal/models"
)

func TestServiceWindow(t *testing.T) {
	svc := &models.Service{
		ID: "svc",
		Hours: models.ServiceHours{
			StartTime:   "09:00",
			EndTime:     "17:00",
			BreakStart:  "12:00",
			BreakEnd:    "13:00",
			DurationMin: 60,
		},
	}

	w, err := ServiceWindow(svc)
	require.NoError(t, err)
	assert.Equal(t, schedule.MustTimeOfDay("12:00"), w.BreakStart)
	assert.Equal(t, time.Hour, w.Duration())

	svc.Hours.BreakStart, svc.Hours.BreakEnd = "", ""
	w, err = ServiceWindow(svc)
	require.NoError(t, err)
	assert.Equal(t, w.Start, w.BreakStart)
	assert.Equal(t, w.Start, w.BreakEnd)

	svc.Hours.EndTime = "5pm"
	_, err = ServiceWindow(svc)
	assert.ErrorIs(t, err, schedule.ErrInvalidTimeOfDay)
}

func TestEligibleAt_MorningOnlyEmployee(t *testing.T) {
	date := schedule.Date{Year: 2024, Month: time.June, Day: 10}
	emps := []models.Employee{
		{ID: "morning", WorkShifts: pq.StringArray{"MORNING"}},
		{ID: "late", WorkShifts: pq.StringArray{"AFTERNOON", "EVENING"}},
	}

	at9 := EligibleAt(emps, date.At(schedule.MustTimeOfDay("09:00")))
	require.Len(t, at9, 1)
	assert.Equal(t, "morning", at9[0].ID)

	at13 := EligibleAt(emps, date.At(schedule.MustTimeOfDay("13:00")))
	require.Len(t, at13, 1)
	assert.Equal(t, "late", at13[0].ID)

	assert.Empty(t, EligibleAt(emps, date.At(schedule.MustTimeOfDay("23:00"))))
}
