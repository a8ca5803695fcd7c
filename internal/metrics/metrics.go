package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sportcenter_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sportcenter_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	RegistrationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sportcenter_registrations_total",
			Help: "Total number of customer registrations",
		},
	)

	BookingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sportcenter_bookings_total",
			Help: "Total number of slot bookings",
		},
		[]string{"sport"},
	)

	BookingCancellationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sportcenter_booking_cancellations_total",
			Help: "Total number of booking cancellations",
		},
	)

	CustomerDeletionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sportcenter_customer_deletions_total",
			Help: "Total number of customer deletions",
		},
	)

	CascadeRemovedBookingsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sportcenter_cascade_removed_bookings_total",
			Help: "Total number of bookings removed by customer deletion",
		},
	)

	ActiveCustomers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "sportcenter_active_customers",
			Help: "Number of currently registered customers",
		},
	)

	ActiveBookings = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "sportcenter_active_bookings",
			Help: "Number of currently active bookings",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordRegistration() {
	RegistrationsTotal.Inc()
	ActiveCustomers.Inc()
}

func RecordBooking(sport string) {
	BookingsTotal.WithLabelValues(sport).Inc()
	ActiveBookings.Inc()
}

func RecordCancellation() {
	BookingCancellationsTotal.Inc()
	ActiveBookings.Dec()
}

func RecordCustomerDeletion(removedBookings int) {
	CustomerDeletionsTotal.Inc()
	CascadeRemovedBookingsTotal.Add(float64(removedBookings))
	ActiveCustomers.Dec()
	ActiveBookings.Sub(float64(removedBookings))
}
