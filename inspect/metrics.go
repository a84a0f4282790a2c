// SPDX-License-Identifier: MIT

package inspect

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "symbolic_inspect"

// metrics records stage durations and schedule sizes. A nil *metrics is a
// valid no-op recorder.
type metrics struct {
	stageDuration *prometheus.HistogramVec
	levels        *prometheus.GaugeVec
	supernodes    prometheus.Gauge
	factorNNZ     prometheus.Gauge
}

func newMetrics(reg prometheus.Registerer) *metrics {
	if reg == nil {
		return nil
	}
	m := &metrics{
		stageDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "stage_duration_seconds",
			Help:      "Duration of each analysis stage.",
			Buckets:   prometheus.ExponentialBuckets(1e-5, 4, 10),
		}, []string{"stage"}),
		levels: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "levels",
			Help:      "Number of levels of the last computed schedule, by schedule.",
		}, []string{"schedule"}),
		supernodes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "supernodes",
			Help:      "Number of supernodes of the last analyzed factor.",
		}),
		factorNNZ: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "factor_nonzeros",
			Help:      "Structural nonzeros of the last analyzed factor.",
		}),
	}
	m.stageDuration = register(reg, m.stageDuration)
	m.levels = register(reg, m.levels)
	m.supernodes = register(reg, m.supernodes)
	m.factorNNZ = register(reg, m.factorNNZ)

	return m
}

// register adds c to reg, reusing a collector that an earlier Run already
// registered under the same descriptor.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing
			}
		}
		// a conflicting collector keeps ours unregistered; recording still works
	}

	return c
}

func (m *metrics) observeStage(stage string, d time.Duration) {
	if m == nil {
		return
	}
	m.stageDuration.WithLabelValues(stage).Observe(d.Seconds())
}

func (m *metrics) setLevels(schedule string, n int) {
	if m == nil {
		return
	}
	m.levels.WithLabelValues(schedule).Set(float64(n))
}

func (m *metrics) setFactor(nnz, supernodes int) {
	if m == nil {
		return
	}
	m.factorNNZ.Set(float64(nnz))
	m.supernodes.Set(float64(supernodes))
}
