package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "room_reservation"

var (
	once sync.Once

	reservationOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reservation_operations_total",
			Help:      "Reservation commands by operation and outcome.",
		},
		[]string{"operation", "outcome"},
	)

	refundCents = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "refund_cents_total",
			Help:      "Sum of refunds granted on cancellation, in cents.",
		},
	)

	txRetries = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transaction_retries_total",
			Help:      "Transactions retried after serialization failure or deadlock.",
		},
	)

	notificationsPublished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_published_total",
			Help:      "Outbox jobs handed to the broker by result.",
		},
		[]string{"result"},
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

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(reservationOps, refundCents, txRetries, notificationsPublished, httpDuration)
	})
}

func IncTxRetry() {
	txRetries.Inc()
}

func IncNotification(result string) {
	notificationsPublished.WithLabelValues(result).Inc()
}

func ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	httpDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}

// Recorder exposes the reservation counters to the use case layer.
type Recorder struct{}

func NewRecorder() *Recorder {
	Register()
	return &Recorder{}
}

func (Recorder) ReservationOutcome(operation, outcome string) {
	reservationOps.WithLabelValues(operation, outcome).Inc()
}

func (Recorder) RefundIssued(cents int64) {
	if cents > 0 {
		refundCents.Add(float64(cents))
	}
}
