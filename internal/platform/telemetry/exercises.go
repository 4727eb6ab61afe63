package telemetry

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels for exercise evaluations.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// ExerciseMetrics counts and times exercise evaluations. The collectors are
// exposed by the /-/metrics endpoint.
type ExerciseMetrics struct {
	evaluations *prometheus.CounterVec
	duration    *prometheus.HistogramVec
}

// NewExerciseMetrics registers the exercise collectors with reg. If the
// collectors are already registered the existing ones are reused.
func NewExerciseMetrics(reg prometheus.Registerer) (*ExerciseMetrics, error) {
	evaluations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "exercises",
		Name:      "evaluations_total",
		Help:      "Exercise evaluations by exercise and outcome.",
	}, []string{"exercise", "outcome"})

	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "exercises",
		Name:      "evaluation_duration_seconds",
		Help:      "Exercise evaluation latency.",
		Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
	}, []string{"exercise"})

	var err error
	if evaluations, err = register(reg, evaluations); err != nil {
		return nil, err
	}
	if duration, err = register(reg, duration); err != nil {
		return nil, err
	}

	return &ExerciseMetrics{evaluations: evaluations, duration: duration}, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			if existing, ok := already.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// Observe records one evaluation of exercise. A nil receiver is a no-op.
func (m *ExerciseMetrics) Observe(exercise string, started time.Time, err error) {
	if m == nil {
		return
	}
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeError
	}
	m.evaluations.WithLabelValues(exercise, outcome).Inc()
	m.duration.WithLabelValues(exercise).Observe(time.Since(started).Seconds())
}
