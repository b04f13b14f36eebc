// Package server: Prometheus collectors for the HTTP service.

package server

import (
	"github.com/prometheus/client_golang/prometheus"
)

// metrics bundles the service's Prometheus collectors.
type metrics struct {
	registry *prometheus.Registry

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	searchesTotal   *prometheus.CounterVec
	graphNodes      prometheus.Gauge
	graphEdges      prometheus.Gauge
}

// newMetrics creates and registers the collectors on a fresh registry.
func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dijkstar_http_requests_total",
				Help: "Total HTTP requests by route, method, and status code",
			},
			[]string{"route", "method", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "dijkstar_http_request_duration_seconds",
				Help:    "HTTP request latency by route",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route"},
		),
		searchesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dijkstar_searches_total",
				Help: "Path searches by outcome (found, no_path, error)",
			},
			[]string{"outcome"},
		),
		graphNodes: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "dijkstar_graph_nodes",
			Help: "Nodes in the currently loaded graph",
		}),
		graphEdges: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "dijkstar_graph_edges",
			Help: "Edges in the currently loaded graph",
		}),
	}

	m.registry.MustRegister(
		m.requestsTotal,
		m.requestDuration,
		m.searchesTotal,
		m.graphNodes,
		m.graphEdges,
	)

	return m
}
