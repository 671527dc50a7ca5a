package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/slot-booking/internal/domain/caller"
	"github.com/BruksfildServices01/slot-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/slot-booking/internal/httperr"
	"github.com/BruksfildServices01/slot-booking/internal/models"
	"github.com/BruksfildServices01/slot-booking/internal/timezone"
)

const (
	tenantA = "spa-a.example"
	tenantB = "spa-b.example"
)

var (
	monday = schedule.Date{Year: 2024, Month: time.June, Day: 10}
	now    = time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)

	ann   = caller.Caller{Role: caller.RoleCustomer, Domain: tenantA, Email: "ann@example.com"}
	bob   = caller.Caller{Role: caller.RoleCustomer, Domain: tenantA, Email: "bob@example.com"}
	owner = caller.Caller{Role: caller.RoleTenant, Domain: tenantA, Email: "owner@spa-a.example"}
	admin = caller.Caller{Role: caller.RoleAdmin, Domain: tenantA, Email: "root@example.com"}
)

type fixture struct {
	repo   *memRepo
	svc    *models.Service
	emp    models.Employee
	pub    *fakePublisher
	mailer *fakeMailer
}

// newFixture seeds a 09:00-17:00 service with a 12:00-13:00 break, 60 minute
// slots, price 200000, and one employee working Monday mornings.
func newFixture() *fixture {
	repo := newMemRepo()
	svc := repo.addService(tenantA, "09:00", "17:00", "12:00", "13:00", 60, "200000")
	emp := repo.addEmployee(tenantA, "Mali", []string{"MONDAY"}, []string{"MORNING"}, svc.ID)

	return &fixture{
		repo:   repo,
		svc:    svc,
		emp:    emp,
		pub:    &fakePublisher{},
		mailer: &fakeMailer{},
	}
}

func (f *fixture) creator(opts ...CreateOption) *CreateBooking {
	opts = append([]CreateOption{WithPicker(firstPicker), WithClock(timezone.FixedClock(now))}, opts...)
	profiles := fakeProfiles{"ann@example.com": "+66 81 234 5678"}
	return NewCreateBooking(f.repo, profiles, f.pub, quietLogger(), nil, opts...)
}

func (f *fixture) book(t *testing.T, c caller.Caller, at string) *models.Booking {
	t.Helper()
	b, err := f.creator().Execute(context.Background(), c, CreateBookingInput{
		ServiceID: f.svc.ID,
		Date:      monday,
		StartTime: monday.At(schedule.MustTimeOfDay(at)),
	})
	require.NoError(t, err)
	return b
}

func requireCode(t *testing.T, err error, kind httperr.Kind, code string) {
	t.Helper()
	be, ok := httperr.AsBusiness(err)
	require.True(t, ok, "expected business error, got %v", err)
	require.Equal(t, kind, be.Kind)
	require.Equal(t, code, be.Code)
}
