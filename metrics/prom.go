package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PromRecorder records conversions in Prometheus metrics.
type PromRecorder struct {
	conversions *prometheus.CounterVec
	duration    prometheus.Histogram
	rows        prometheus.Histogram
	groups      prometheus.Histogram
}

// NewPromRecorder registers the conversion metrics on reg. A nil registerer
// defaults to the global Prometheus registerer. Registering twice on the
// same registerer reuses the existing collectors.
func NewPromRecorder(reg prometheus.Registerer) (*PromRecorder, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	conversions, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "shiftsheet_conversions_total",
		Help: "Schedule conversions by result",
	}, []string{"result"}))
	if err != nil {
		return nil, err
	}
	duration, err := register(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "shiftsheet_conversion_duration_seconds",
		Help:    "Time spent converting one schedule",
		Buckets: prometheus.DefBuckets,
	}))
	if err != nil {
		return nil, err
	}
	rows, err := register(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "shiftsheet_rows_emitted",
		Help:    "Rows in each converted table",
		Buckets: prometheus.ExponentialBuckets(1, 2, 10),
	}))
	if err != nil {
		return nil, err
	}
	groups, err := register(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "shiftsheet_groups_detected",
		Help:    "Employee groups found in each converted table",
		Buckets: prometheus.LinearBuckets(1, 5, 10),
	}))
	if err != nil {
		return nil, err
	}

	return &PromRecorder{conversions: conversions, duration: duration, rows: rows, groups: groups}, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// ConversionCompleted increments the result counter and observes the duration.
func (r *PromRecorder) ConversionCompleted(result string, elapsed time.Duration) {
	r.conversions.WithLabelValues(result).Inc()
	r.duration.Observe(elapsed.Seconds())
}

// TableEmitted observes the table size.
func (r *PromRecorder) TableEmitted(rows, groups int) {
	r.rows.Observe(float64(rows))
	r.groups.Observe(float64(groups))
}
