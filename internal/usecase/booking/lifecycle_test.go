package booking

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/slot-booking/internal/domain/booking"
	"github.com/BruksfildServices01/slot-booking/internal/domain/caller"
	"github.com/BruksfildServices01/slot-booking/internal/httperr"
	"github.com/BruksfildServices01/slot-booking/internal/metrics"
	"github.com/BruksfildServices01/slot-booking/internal/models"
	"github.com/BruksfildServices01/slot-booking/internal/notify"
)

// ======================================================
// Cancel
// ======================================================

func (f *fixture) canceller() *CancelBooking {
	return NewCancelBooking(f.repo, f.mailer, f.pub, quietLogger(), nil)
}

func TestCancel_ByCustomer(t *testing.T) {
	f := newFixture()
	b := f.book(t, ann, "09:00")
	f.pub.sent = nil

	got, err := f.canceller().Execute(context.Background(), ann, b.ID, "changed plans")
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCancel), got.Status)
	stored := f.repo.bookings[b.ID]
	assert.Equal(t, string(domain.StatusCancel), stored.Status)
	require.NotNil(t, stored.NoteCancel)
	assert.Equal(t, "changed plans", *stored.NoteCancel)
	assert.Equal(t, b.UpdatedAt, stored.UpdatedAt)

	assert.Empty(t, f.mailer.sent)
	assert.Empty(t, f.pub.topics())
}

func TestCancel_ByTenantNotifiesCustomer(t *testing.T) {
	f := newFixture()
	b := f.book(t, ann, "09:00")
	f.pub.sent = nil

	_, err := f.canceller().Execute(context.Background(), owner, b.ID, "therapist sick")
	require.NoError(t, err)

	require.Len(t, f.mailer.sent, 1)
	mail := f.mailer.sent[0]
	assert.Equal(t, "ann@example.com", mail.to)
	assert.Equal(t, notify.TemplateBookingCancelled, mail.template)
	assert.Equal(t, "Massage", mail.params["service_name"])
	assert.Equal(t, "Mali Doe", mail.params["employee_name"])
	assert.Equal(t, "2024-06-10T09:00:00Z", mail.params["start_time"])
	assert.Equal(t, "therapist sick", mail.params["reason"])

	assert.Equal(t, []string{notify.TopicBookingCancelled}, f.pub.topics())
}

func TestCancel_NotificationFailureKeepsCancellation(t *testing.T) {
	f := newFixture()
	b := f.book(t, ann, "09:00")
	f.mailer.err = errors.New("smtp down")
	f.pub.err = errors.New("queue down")

	_, err := f.canceller().Execute(context.Background(), owner, b.ID, "closed")
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancel), f.repo.bookings[b.ID].Status)
}

func TestCancel_Scope(t *testing.T) {
	f := newFixture()
	b := f.book(t, ann, "09:00")
	ctx := context.Background()
	uc := f.canceller()

	otherTenant := caller.Caller{Role: caller.RoleTenant, Domain: tenantB, Email: "owner@spa-b.example"}
	for name, c := range map[string]caller.Caller{
		"other customer": bob,
		"other tenant":   otherTenant,
		"admin":          admin,
	} {
		_, err := uc.Execute(ctx, c, b.ID, "x")
		requireCode(t, err, httperr.KindNotFound, domain.CodeBookingNotFound)
		assert.Equal(t, string(domain.StatusPending), f.repo.bookings[b.ID].Status, name)
	}

	_, err := uc.Execute(ctx, ann, "does-not-exist", "x")
	requireCode(t, err, httperr.KindNotFound, domain.CodeBookingNotFound)
}

func TestCancel_OnlyPending(t *testing.T) {
	f := newFixture()
	b := f.book(t, ann, "09:00")
	ctx := context.Background()

	_, err := NewUpdateStatus(f.repo, quietLogger(), nil).Execute(ctx, owner, b.ID, "SUCCESS")
	require.NoError(t, err)

	_, err = f.canceller().Execute(ctx, ann, b.ID, "too late")
	requireCode(t, err, httperr.KindPermissionDenied, domain.CodeCannotDelete)
	assert.Nil(t, f.repo.bookings[b.ID].NoteCancel)
}

func TestCancel_LosesRaceAgainstStatusUpdate(t *testing.T) {
	f := newFixture()
	b := f.book(t, ann, "09:00")
	f.repo.beforeUpdate = func(stored *models.Booking) {
		stored.Status = string(domain.StatusSuccess)
	}

	_, err := f.canceller().Execute(context.Background(), ann, b.ID, "x")
	requireCode(t, err, httperr.KindPermissionDenied, domain.CodeCannotDelete)
	assert.Equal(t, string(domain.StatusSuccess), f.repo.bookings[b.ID].Status)
}

// ======================================================
// UpdateStatus
// ======================================================

func TestUpdateStatus(t *testing.T) {
	f := newFixture()
	b := f.book(t, ann, "09:00")
	ctx := context.Background()
	uc := NewUpdateStatus(f.repo, quietLogger(), nil)

	_, err := uc.Execute(ctx, owner, b.ID, "finished")
	requireCode(t, err, httperr.KindInvalidArgument, domain.CodeInvalidStatus)

	got, err := uc.Execute(ctx, owner, b.ID, "success")
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusSuccess), got.Status)
	assert.Equal(t, string(domain.StatusSuccess), f.repo.bookings[b.ID].Status)

	for _, next := range []string{"PENDING", "CANCEL", "SUCCESS"} {
		_, err = uc.Execute(ctx, owner, b.ID, next)
		requireCode(t, err, httperr.KindPermissionDenied, domain.CodeCannotUpdateStatus)
	}
	assert.Equal(t, string(domain.StatusSuccess), f.repo.bookings[b.ID].Status)
}

func TestUpdateStatus_CancelFromPending(t *testing.T) {
	f := newFixture()
	b := f.book(t, ann, "09:00")

	got, err := NewUpdateStatus(f.repo, quietLogger(), nil).Execute(context.Background(), owner, b.ID, "Cancel")
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancel), got.Status)
}

func TestUpdateStatus_PendingToPendingWritesNothing(t *testing.T) {
	f := newFixture()
	b := f.book(t, ann, "09:00")
	writes := 0
	f.repo.beforeUpdate = func(*models.Booking) { writes++ }

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	got, err := NewUpdateStatus(f.repo, quietLogger(), m).Execute(context.Background(), owner, b.ID, "pending")
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPending), got.Status)
	assert.Zero(t, writes)
	assert.Zero(t, testutil.ToFloat64(m.BookingTransition.WithLabelValues(string(domain.StatusPending))))
}

func TestUpdateStatus_OtherDomain(t *testing.T) {
	f := newFixture()
	b := f.book(t, ann, "09:00")
	otherTenant := caller.Caller{Role: caller.RoleTenant, Domain: tenantB}

	_, err := NewUpdateStatus(f.repo, quietLogger(), nil).Execute(context.Background(), otherTenant, b.ID, "SUCCESS")
	requireCode(t, err, httperr.KindNotFound, domain.CodeBookingNotFound)
}

func TestUpdateStatus_ConcurrentTransitionLoses(t *testing.T) {
	f := newFixture()
	b := f.book(t, ann, "09:00")
	f.repo.beforeUpdate = func(stored *models.Booking) {
		stored.Status = string(domain.StatusCancel)
	}

	_, err := NewUpdateStatus(f.repo, quietLogger(), nil).Execute(context.Background(), owner, b.ID, "SUCCESS")
	requireCode(t, err, httperr.KindPermissionDenied, domain.CodeCannotUpdateStatus)
	assert.Equal(t, string(domain.StatusCancel), f.repo.bookings[b.ID].Status)
}

// ======================================================
// FindOne
// ======================================================

func TestFindBooking_Scope(t *testing.T) {
	f := newFixture()
	b := f.book(t, ann, "09:00")
	ctx := context.Background()
	uc := NewFindBooking(f.repo)

	got, err := uc.Execute(ctx, ann, b.ID)
	require.NoError(t, err)
	assert.Equal(t, b.ID, got.ID)
	assert.Equal(t, "Massage", got.Service.Name)
	assert.Equal(t, "Mali", got.Employee.FirstName)

	_, err = uc.Execute(ctx, owner, b.ID)
	require.NoError(t, err)

	_, err = uc.Execute(ctx, bob, b.ID)
	requireCode(t, err, httperr.KindNotFound, domain.CodeBookingNotFound)

	_, err = uc.Execute(ctx, admin, b.ID)
	requireCode(t, err, httperr.KindPermissionDenied, domain.CodePermissionDenied)
}

func TestFindBooking_TenantIsolation(t *testing.T) {
	f := newFixture()
	svcB := f.repo.addService(tenantB, "09:00", "17:00", "", "", 60, "100")
	f.repo.addEmployee(tenantB, "Kanya", []string{"MONDAY"}, []string{"MORNING"}, svcB.ID)

	annInB := caller.Caller{Role: caller.RoleCustomer, Domain: tenantB, Email: "ann@example.com"}
	bookingB, err := f.creator().Execute(context.Background(), annInB, CreateBookingInput{
		ServiceID: svcB.ID,
		Date:      monday,
		StartTime: at("09:00"),
	})
	require.NoError(t, err)

	// same customer email, guessed id, wrong domain
	_, err = NewFindBooking(f.repo).Execute(context.Background(), ann, bookingB.ID)
	requireCode(t, err, httperr.KindNotFound, domain.CodeBookingNotFound)

	out, err := NewListBookings(f.repo).Execute(context.Background(), ann, ListBookingsInput{})
	require.NoError(t, err)
	assert.Empty(t, out.Items)
	assert.Zero(t, out.Total)
}

func TestFindBooking_SurvivesServiceSoftDelete(t *testing.T) {
	f := newFixture()
	b := f.book(t, ann, "09:00")
	f.repo.softDelete(f.svc.ID)

	got, err := NewFindBooking(f.repo).Execute(context.Background(), ann, b.ID)
	require.NoError(t, err)
	assert.Equal(t, f.svc.ID, got.ServiceID)
}
