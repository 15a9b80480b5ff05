package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	AuthorizeAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "afterpay",
			Subsystem: "payment",
			Name:      "authorize_attempts_total",
			Help:      "Total number of authorize calls by payment method and result",
		},
		[]string{"method", "result"},
	)

	CaptureAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "afterpay",
			Subsystem: "payment",
			Name:      "capture_attempts_total",
			Help:      "Total number of capture calls by result",
		},
		[]string{"result"},
	)

	SweepDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "afterpay",
			Subsystem: "sweep",
			Name:      "duration_seconds",
			Help:      "Capture sweep duration in seconds",
			Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60},
		},
	)

	SweepEligibleOrders = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "afterpay",
			Subsystem: "sweep",
			Name:      "eligible_orders",
			Help:      "Number of capture-eligible orders per sweep run",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250, 500},
		},
	)
)

func init() {
	Registry.MustRegister(AuthorizeAttempts, CaptureAttempts, SweepDuration, SweepEligibleOrders)
}
