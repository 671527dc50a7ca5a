package booking

import (
	"context"
	"errors"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/slot-booking/internal/domain/booking"
	"github.com/BruksfildServices01/slot-booking/internal/integrations/profile"
	"github.com/BruksfildServices01/slot-booking/internal/models"
)

// ======================================================
// Repository
// ======================================================

// memRepo keeps everything in maps and enforces the active-slot uniqueness
// the same way the partial unique index does.
type memRepo struct {
	mu sync.Mutex

	services  map[string]*models.Service
	vouchers  map[string]*models.Voucher
	employees []models.Employee
	links     map[string][]string // employee id -> service ids
	bookings  map[string]*models.Booking
	seq       int

	// beforeUpdate runs inside UpdateBookingStatus before the status check.
	beforeUpdate func(b *models.Booking)
}

func newMemRepo() *memRepo {
	return &memRepo{
		services: map[string]*models.Service{},
		vouchers: map[string]*models.Voucher{},
		links:    map[string][]string{},
		bookings: map[string]*models.Booking{},
	}
}

func (r *memRepo) addService(tenant, start, end, breakStart, breakEnd string, duration int, price string) *models.Service {
	svc := &models.Service{
		ID:     uuid.NewString(),
		Domain: tenant,
		Name:   "Massage",
		Price:  decimal.RequireFromString(price),
		Hours: models.ServiceHours{
			StartTime:   start,
			EndTime:     end,
			BreakStart:  breakStart,
			BreakEnd:    breakEnd,
			DurationMin: duration,
		},
	}
	r.services[svc.ID] = svc
	return svc
}

func (r *memRepo) addEmployee(tenant, name string, days, shifts []string, serviceIDs ...string) models.Employee {
	emp := models.Employee{
		ID:         uuid.NewString(),
		Domain:     tenant,
		FirstName:  name,
		LastName:   "Doe",
		WorkDays:   pq.StringArray(days),
		WorkShifts: pq.StringArray(shifts),
	}
	r.employees = append(r.employees, emp)
	r.links[emp.ID] = serviceIDs
	return emp
}

func (r *memRepo) addVoucher(serviceID string, pct, maxD, minApp string, expire time.Time) *models.Voucher {
	v := &models.Voucher{
		ID:              uuid.NewString(),
		ServiceID:       serviceID,
		Code:            "PROMO",
		DiscountPercent: decimal.RequireFromString(pct),
		MaxDiscount:     decimal.RequireFromString(maxD),
		MinAppValue:     decimal.RequireFromString(minApp),
		ExpireAt:        expire,
	}
	r.vouchers[v.ID] = v
	return v
}

func (r *memRepo) FindService(_ context.Context, id, tenant string) (*models.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	svc, ok := r.services[id]
	if !ok || svc.Domain != tenant || svc.DeletedAt.Valid {
		return nil, domain.ErrNotFound
	}
	cp := *svc
	return &cp, nil
}

func (r *memRepo) FindVoucher(_ context.Context, id, serviceID string) (*models.Voucher, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	v, ok := r.vouchers[id]
	if !ok || v.ServiceID != serviceID || v.DeletedAt.Valid {
		return nil, domain.ErrNotFound
	}
	cp := *v
	return &cp, nil
}

func (r *memRepo) FindEmployees(_ context.Context, f domain.EmployeeFilter) ([]models.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Employee
	for _, e := range r.employees {
		if e.Domain != f.Domain || !contains(e.WorkDays, string(f.WorkDay)) || !contains(r.links[e.ID], f.ServiceID) {
			continue
		}
		if f.EmployeeID != "" && e.ID != f.EmployeeID {
			continue
		}
		if f.FreeAt != nil && r.activeAt(e.ID, *f.FreeAt) > 0 {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (r *memRepo) CountActiveBookingsAt(_ context.Context, employeeID string, start time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.activeAt(employeeID, start), nil
}

func (r *memRepo) activeAt(employeeID string, start time.Time) int64 {
	var n int64
	for _, b := range r.bookings {
		if b.EmployeeID == employeeID && b.StartTime.Equal(start) && b.Status != string(domain.StatusCancel) {
			n++
		}
	}
	return n
}

func (r *memRepo) CreateBooking(_ context.Context, b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.activeAt(b.EmployeeID, b.StartTime) > 0 {
		return domain.ErrSlotTaken
	}

	r.seq++
	b.ID = uuid.NewString()
	b.CreatedAt = time.Date(2024, 1, 1, 0, 0, r.seq, 0, time.UTC)
	b.UpdatedAt = b.CreatedAt

	cp := *b
	r.bookings[b.ID] = &cp
	return nil
}

func (r *memRepo) withRelations(b models.Booking) models.Booking {
	if svc, ok := r.services[b.ServiceID]; ok {
		b.Service = *svc
	}
	for _, e := range r.employees {
		if e.ID == b.EmployeeID {
			b.Employee = e
		}
	}
	return b
}

func (r *memRepo) inScope(b *models.Booking, tenant, customer string) bool {
	svc, ok := r.services[b.ServiceID]
	if !ok || svc.Domain != tenant {
		return false
	}
	return customer == "" || b.Customer == customer
}

func (r *memRepo) FindBooking(_ context.Context, scope domain.BookingScope) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[scope.ID]
	if !ok || !r.inScope(b, scope.Domain, scope.Customer) {
		return nil, domain.ErrNotFound
	}
	cp := r.withRelations(*b)
	return &cp, nil
}

func (r *memRepo) ListBookings(_ context.Context, f domain.ListFilter) ([]models.Booking, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []models.Booking
	for _, b := range r.bookings {
		if !r.inScope(b, f.Domain, f.Customer) {
			continue
		}
		if len(f.ServiceIDs) > 0 && !contains(f.ServiceIDs, b.ServiceID) {
			continue
		}
		if f.From != nil && b.StartTime.Before(*f.From) {
			continue
		}
		if f.To != nil && b.StartTime.After(*f.To) {
			continue
		}
		if len(f.Statuses) > 0 && !containsStatus(f.Statuses, b.Status) {
			continue
		}
		matched = append(matched, r.withRelations(*b))
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	if f.Offset >= len(matched) {
		return []models.Booking{}, total, nil
	}
	end := f.Offset + f.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[f.Offset:end], total, nil
}

func (r *memRepo) CountSuccessfulByCustomers(_ context.Context, tenant string, emails []string) ([]domain.CustomerBookingCount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	counts := map[string]int64{}
	for _, b := range r.bookings {
		if r.inScope(b, tenant, "") && b.Status == string(domain.StatusSuccess) && contains(emails, b.Customer) {
			counts[b.Customer]++
		}
	}

	out := make([]domain.CustomerBookingCount, 0, len(counts))
	for email, n := range counts {
		out = append(out, domain.CustomerBookingCount{Email: email, Total: n})
	}
	return out, nil
}

func (r *memRepo) UpdateBookingStatus(_ context.Context, b *models.Booking, expected domain.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.bookings[b.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if r.beforeUpdate != nil {
		r.beforeUpdate(stored)
	}
	if stored.Status != string(expected) {
		return domain.ErrStaleStatus
	}

	stored.Status = b.Status
	if b.NoteCancel != nil {
		note := *b.NoteCancel
		stored.NoteCancel = &note
	}
	return nil
}

func (r *memRepo) softDelete(serviceID string) {
	r.services[serviceID].DeletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
}

func contains(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}

func containsStatus(values []domain.Status, v string) bool {
	for _, x := range values {
		if string(x) == v {
			return true
		}
	}
	return false
}

// ======================================================
// Collaborators
// ======================================================

type published struct {
	topic   string
	payload any
}

type fakePublisher struct {
	mu   sync.Mutex
	sent []published
	err  error
}

func (p *fakePublisher) Publish(_ context.Context, topic string, payload any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.sent = append(p.sent, published{topic, payload})
	return nil
}

func (p *fakePublisher) topics() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.sent))
	for i, s := range p.sent {
		out[i] = s.topic
	}
	return out
}

type sentMail struct {
	to       string
	template string
	params   map[string]any
}

type fakeMailer struct {
	sent []sentMail
	err  error
}

func (m *fakeMailer) SendTemplateEmail(_ context.Context, to, templateID string, params map[string]any) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMail{to, templateID, params})
	return nil
}

type fakeProfiles map[string]string

func (f fakeProfiles) GetProfile(_ context.Context, email string) (*profile.Profile, error) {
	if email == "down@example.com" {
		return nil, errors.New("connection refused")
	}
	phone, ok := f[email]
	if !ok {
		return nil, profile.ErrProfileNotFound
	}
	return &profile.Profile{Email: email, Phone: phone}, nil
}

func quietLogger() logrus.FieldLogger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// firstPicker always takes the first candidate.
var firstPicker = domain.PickerFunc(func(c []models.Employee) models.Employee { return c[0] })
