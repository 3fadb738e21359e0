// SPDX-License-Identifier: MIT
// Package env: Prometheus collectors.
//
// Every Env owns one Metrics value. Collectors are registered on the Env's
// registerer at construction; registers update them through the exported
// methods below. All methods are safe for concurrent use and nil-safe.

package env

import (
	"fmt"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// Register kinds used as the "kind" label.
const (
	KindStateVector   = "statevector"
	KindDensityMatrix = "density"
)

// Metrics groups the environment collectors.
type Metrics struct {
	registersCreated *prometheus.CounterVec
	registersLive    prometheus.Gauge
	amplitudes       prometheus.Gauge
	operations       *prometheus.CounterVec
	measurements     *prometheus.CounterVec
}

// newMetrics builds the collectors and registers them on r.
func newMetrics(r prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		registersCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "qsim_registers_created_total",
			Help: "Registers created, by kind.",
		}, []string{"kind"}),
		registersLive: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "qsim_registers_live",
			Help: "Registers created and not yet closed.",
		}),
		amplitudes: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "qsim_amplitudes_allocated",
			Help: "Complex amplitudes held by live registers.",
		}),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "qsim_operations_total",
			Help: "Successfully applied register operations, by operation.",
		}, []string{"op"}),
		measurements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "qsim_measurements_total",
			Help: "Measurement outcomes, by outcome.",
		}, []string{"outcome"}),
	}
	for _, c := range []prometheus.Collector{
		m.registersCreated, m.registersLive, m.amplitudes, m.operations, m.measurements,
	} {
		if err := r.Register(c); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMetrics, err)
		}
	}

	return m, nil
}

// RegisterCreated records a new register of the given kind and size.
func (m *Metrics) RegisterCreated(kind string, amps int) {
	if m == nil {
		return
	}
	m.registersCreated.WithLabelValues(kind).Inc()
	m.registersLive.Inc()
	m.amplitudes.Add(float64(amps))
}

// RegisterClosed records the release of a register of the given size.
func (m *Metrics) RegisterClosed(amps int) {
	if m == nil {
		return
	}
	m.registersLive.Dec()
	m.amplitudes.Sub(float64(amps))
}

// Operation counts one applied operation.
func (m *Metrics) Operation(op string) {
	if m == nil {
		return
	}
	m.operations.WithLabelValues(op).Inc()
}

// Measurement counts one measurement outcome (0 or 1).
func (m *Metrics) Measurement(outcome int) {
	if m == nil {
		return
	}
	m.measurements.WithLabelValues(strconv.Itoa(outcome)).Inc()
}
