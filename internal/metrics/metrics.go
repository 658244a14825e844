// Copyright 2026 NetScope ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package metrics exposes prometheus counters for the HTTP shell.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Observer is the process-wide metrics sink.
var Observer = &Metrics{prometheus: newPrometheus()}

func init() {
	prometheus.MustRegister(
		Observer.prometheus.Requests,
		Observer.prometheus.LayerOps,
	)
}

// Metrics wraps the registered prometheus collectors.
type Metrics struct {
	prometheus Prometheus
}

// Prometheus holds the collector set.
type Prometheus struct {
	Requests *prometheus.CounterVec
	LayerOps *prometheus.CounterVec
}

func newPrometheus() Prometheus {
	return Prometheus{
		Requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "netscope",
				Name:      "requests",
			}, []string{"route", "status"}),
		LayerOps: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "netscope",
				Name:      "layer_ops",
			}, []string{"op"}),
	}
}

// Request counts one handled HTTP request.
func (m *Metrics) Request(route, status string) {
	m.prometheus.Requests.WithLabelValues(route, status).Inc()
}

// LayerOp counts one analyzer mutation (add, remove, clear, reshape).
func (m *Metrics) LayerOp(op string) {
	m.prometheus.LayerOps.WithLabelValues(op).Inc()
}
