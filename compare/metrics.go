// SPDX-License-Identifier: MIT
//
// File: metrics.go
// Role: prometheus collectors for trial outcomes, search durations and Pósa
// attempt counts.
// Policy:
//   - Collectors are registered on the Registerer handed to NewMetrics; an
//     AlreadyRegisteredError reuses the existing collector.
//   - A nil *Metrics is valid and records nothing.

package compare

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// ErrMetricsRegistration wraps a collector that could not be registered.
var ErrMetricsRegistration = errors.New("compare: metrics registration failed")

const metricsNamespace = "hamcycle"

// Metrics holds the harness collectors.
type Metrics struct {
	trials       *prometheus.CounterVec
	duration     *prometheus.HistogramVec
	posaAttempts prometheus.Histogram
}

// NewMetrics creates the collectors and registers them on reg.
// A nil reg falls back to prometheus.DefaultRegisterer.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		trials: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "trials_total",
			Help:      "Search runs by algorithm and outcome (found, not_found, timeout).",
		}, []string{"algorithm", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "search_duration_seconds",
			Help:      "Wall-clock time of one search run.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"algorithm"}),
		posaAttempts: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "posa_attempts",
			Help:      "Pósa attempts spent per trial.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		}),
	}

	var err error
	if m.trials, err = registerOrReuse(reg, m.trials); err != nil {
		return nil, err
	}
	if m.duration, err = registerOrReuse(reg, m.duration); err != nil {
		return nil, err
	}
	if m.posaAttempts, err = registerOrReuse(reg, m.posaAttempts); err != nil {
		return nil, err
	}

	return m, nil
}

func registerOrReuse[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			if existing, ok := already.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, fmt.Errorf("%w: %w", ErrMetricsRegistration, err)
	}

	return c, nil
}

func (m *Metrics) observe(r AlgorithmResult) {
	if m == nil {
		return
	}
	m.trials.WithLabelValues(r.Algorithm, r.outcomeLabel()).Inc()
	m.duration.WithLabelValues(r.Algorithm).Observe(r.Duration.Seconds())
	if r.Algorithm == AlgorithmPosa {
		m.posaAttempts.Observe(float64(r.Attempts))
	}
}
