package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	domain "github.com/BruksfildServices01/slot-booking/internal/domain/booking"
	"github.com/BruksfildServices01/slot-booking/internal/domain/caller"
	"github.com/BruksfildServices01/slot-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/slot-booking/internal/httperr"
	"github.com/BruksfildServices01/slot-booking/internal/integrations/profile"
	"github.com/BruksfildServices01/slot-booking/internal/metrics"
	"github.com/BruksfildServices01/slot-booking/internal/models"
	"github.com/BruksfildServices01/slot-booking/internal/notify"
	"github.com/BruksfildServices01/slot-booking/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	ServiceID string
	Date      schedule.Date
	StartTime time.Time

	// Optional.
	EmployeeID string
	VoucherID  string
	Note       string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo     domain.Repository
	profiles ProfileClient
	events   Publisher
	log      logrus.FieldLogger
	metrics  *metrics.Metrics

	picker domain.Picker
	clock  timezone.Clock
}

type CreateOption func(*CreateBooking)

func WithPicker(p domain.Picker) CreateOption {
	return func(uc *CreateBooking) { uc.picker = p }
}

func WithClock(c timezone.Clock) CreateOption {
	return func(uc *CreateBooking) { uc.clock = c }
}

// NewCreateBooking accepts a nil profiles client, in which case no phone is
// captured.
func NewCreateBooking(
	repo domain.Repository,
	profiles ProfileClient,
	events Publisher,
	log logrus.FieldLogger,
	m *metrics.Metrics,
	opts ...CreateOption,
) *CreateBooking {
	uc := &CreateBooking{
		repo:     repo,
		profiles: profiles,
		events:   events,
		log:      log,
		metrics:  m,
		picker:   domain.RandomPicker{},
		clock:    timezone.UTCClock{},
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	c caller.Caller,
	in CreateBookingInput,
) (*models.Booking, error) {

	// --------------------------------------------------
	// 1. Only customers book
	// --------------------------------------------------
	if !c.IsCustomer() {
		return nil, domain.ErrPermissionDenied()
	}

	start := in.StartTime.UTC()
	if schedule.DateOf(start) != in.Date {
		return nil, httperr.ErrBusiness(domain.CodeInvalidDateOrTime)
	}

	// --------------------------------------------------
	// 2. Service
	// --------------------------------------------------
	svc, err := uc.repo.FindService(ctx, in.ServiceID, c.Domain)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrServiceNotFound()
		}
		return nil, fmt.Errorf("find service: %w", err)
	}

	// --------------------------------------------------
	// 3. Voucher
	// --------------------------------------------------
	var voucher *models.Voucher
	if in.VoucherID != "" {
		voucher, err = uc.repo.FindVoucher(ctx, in.VoucherID, svc.ID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, domain.ErrVoucherNotFound()
			}
			return nil, fmt.Errorf("find voucher: %w", err)
		}
		if voucher.ExpireAt.Before(uc.clock.Now()) {
			return nil, domain.ErrVoucherNotFound()
		}
	}

	// --------------------------------------------------
	// 4-5. Candidates, then shift coverage
	// --------------------------------------------------
	candidates, err := uc.repo.FindEmployees(ctx, domain.EmployeeFilter{
		Domain:     c.Domain,
		ServiceID:  svc.ID,
		WorkDay:    schedule.WorkDayOf(in.Date.Weekday()),
		FreeAt:     &start,
		EmployeeID: in.EmployeeID,
	})
	if err != nil {
		// a malformed employee hint reads as no match
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNoEmployee()
		}
		return nil, fmt.Errorf("find employees: %w", err)
	}

	eligible := domain.EligibleAt(candidates, start)
	if len(eligible) == 0 {
		return nil, domain.ErrNoEmployee()
	}

	// --------------------------------------------------
	// 6. Assignment
	// --------------------------------------------------
	emp := uc.picker.Pick(eligible)

	// --------------------------------------------------
	// 7. End time + price
	// --------------------------------------------------
	end := start.Add(time.Duration(svc.Hours.DurationMin) * time.Minute)

	price := svc.Price
	var voucherID *string
	if voucher != nil {
		price = domain.EffectivePrice(svc.Price, voucher.DiscountPercent, voucher.MaxDiscount, voucher.MinAppValue)
		voucherID = &voucher.ID
	}

	// --------------------------------------------------
	// 8. Phone (best effort)
	// --------------------------------------------------
	phone := uc.lookupPhone(ctx, c.Email)

	// --------------------------------------------------
	// 9. Commit
	// --------------------------------------------------
	b := &models.Booking{
		Customer:   c.Email,
		Phone:      phone,
		ServiceID:  svc.ID,
		EmployeeID: emp.ID,
		VoucherID:  voucherID,
		StartTime:  start,
		EndTime:    end,
		TotalPrice: price,
		Status:     string(domain.InitialStatus()),
		Note:       in.Note,
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		if errors.Is(err, domain.ErrSlotTaken) || errors.Is(err, domain.ErrNotFound) {
			uc.metrics.BookingConflict()
			return nil, domain.ErrNoEmployee()
		}
		return nil, err
	}

	b.Service = *svc
	b.Employee = emp
	uc.metrics.BookingCreated()

	entry := uc.log.WithFields(logrus.Fields{
		"booking_id":  b.ID,
		"service_id":  svc.ID,
		"employee_id": emp.ID,
		"domain":      c.Domain,
	})
	entry.Info("booking created")

	// --------------------------------------------------
	// 10. Notification
	// --------------------------------------------------
	if err := uc.events.Publish(ctx, notify.TopicBookingCreated, createdEvent(b, c.Domain)); err != nil {
		entry.WithError(err).Warn("booking created notification not enqueued")
	}

	return b, nil
}

func (uc *CreateBooking) lookupPhone(ctx context.Context, email string) string {
	if uc.profiles == nil {
		return ""
	}

	p, err := uc.profiles.GetProfile(ctx, email)
	switch {
	case err == nil:
		return p.Phone
	case errors.Is(err, profile.ErrProfileNotFound):
		return ""
	default:
		uc.log.WithError(err).WithField("customer", email).Warn("profile lookup failed")
		return ""
	}
}
