package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics groups the collectors of the booking engine. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	HTTPRequests      *prometheus.CounterVec
	HTTPDuration      *prometheus.HistogramVec
	BookingsCreated   prometheus.Counter
	BookingConflicts  prometheus.Counter
	BookingTransition *prometheus.CounterVec
	Notifications     *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		HTTPRequests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),

		HTTPDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency by route and method.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method"}),

		BookingsCreated: f.NewCounter(prometheus.CounterOpts{
			Name: "bookings_created_total",
			Help: "Bookings committed.",
		}),

		BookingConflicts: f.NewCounter(prometheus.CounterOpts{
			Name: "booking_conflicts_total",
			Help: "Booking attempts rejected because the slot was taken at commit.",
		}),

		BookingTransition: f.NewCounterVec(prometheus.CounterOpts{
			Name: "booking_transitions_total",
			Help: "Booking status transitions by target status.",
		}, []string{"to"}),

		Notifications: f.NewCounterVec(prometheus.CounterOpts{
			Name: "notifications_total",
			Help: "Notification jobs by topic and outcome.",
		}, []string{"topic", "result"}),
	}
}

func (m *Metrics) BookingCreated() {
	if m == nil {
		return
	}
	m.BookingsCreated.Inc()
}

func (m *Metrics) BookingConflict() {
	if m == nil {
		return
	}
	m.BookingConflicts.Inc()
}

func (m *Metrics) Transition(to string) {
	if m == nil {
		return
	}
	m.BookingTransition.WithLabelValues(to).Inc()
}

// Notification results: enqueued, failed, dropped.
func (m *Metrics) Notification(topic, result string) {
	if m == nil {
		return
	}
	m.Notifications.WithLabelValues(topic, result).Inc()
}
