package utils

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics collects the booking-engine counters exposed on /metrics.
type Metrics struct {
	bookingsCreated   prometheus.Counter
	bookingConflicts  prometheus.Counter
	statusTransitions *prometheus.CounterVec
	bookingsDeleted   prometheus.Counter
}

// NewMetrics creates the collector and registers it on the given registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		bookingsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "skillbridge_bookings_created_total",
			Help: "Total number of bookings created.",
		}),
		bookingConflicts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "skillbridge_booking_conflicts_total",
			Help: "Total number of booking attempts rejected due to an overlapping reservation.",
		}),
		statusTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "skillbridge_booking_status_transitions_total",
			Help: "Booking status transitions by target status.",
		}, []string{"status"}),
		bookingsDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "skillbridge_bookings_deleted_total",
			Help: "Total number of bookings deleted.",
		}),
	}

	reg.MustRegister(
		m.bookingsCreated,
		m.bookingConflicts,
		m.statusTransitions,
		m.bookingsDeleted,
	)

	return m
}

func (m *Metrics) RecordBookingCreated() {
	m.bookingsCreated.Inc()
}

func (m *Metrics) RecordBookingConflict() {
	m.bookingConflicts.Inc()
}

func (m *Metrics) RecordStatusTransition(status string) {
	m.statusTransitions.WithLabelValues(status).Inc()
}

func (m *Metrics) RecordBookingDeleted() {
	m.bookingsDeleted.Inc()
}

// MetricsHandler returns the HTTP handler serving the Prometheus scrape endpoint.
func MetricsHandler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
