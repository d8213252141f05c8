package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "reservation_api"

const (
	OutcomeCreated  = "created"
	OutcomeConflict = "conflict"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

var (
	once sync.Once

	reservationCreate = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reservation_create_total",
			Help:      "Reservation create attempts by outcome.",
		},
		[]string{"outcome"},
	)

	reservationCancelled = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reservation_cancelled_total",
			Help:      "Reservations cancelled by customers.",
		},
	)

	reservationUpdated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reservation_updated_total",
			Help:      "Reservations updated by customers.",
		},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route and status.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(reservationCreate, reservationCancelled, reservationUpdated, httpDuration)
	})
}

func IncReservationCreate(outcome string) {
	reservationCreate.WithLabelValues(outcome).Inc()
}

func IncReservationCancelled() {
	reservationCancelled.Inc()
}

func IncReservationUpdated() {
	reservationUpdated.Inc()
}

func ObserveHTTP(method, route, status string, seconds float64) {
	httpDuration.WithLabelValues(method, route, status).Observe(seconds)
}
