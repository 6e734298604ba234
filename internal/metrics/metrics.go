// Package metrics exposes Prometheus instrumentation for the prediction
// service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels for PredictionsTotal.
const (
	OutcomeOK           = "ok"
	OutcomeInvalidInput = "invalid_input"
	OutcomeNotFound     = "not_found"
)

var (
	// PredictionsTotal counts individual predictions by outcome, batch
	// elements included.
	PredictionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "composite_predictions_total",
		Help: "Predictions computed, by outcome.",
	}, []string{"outcome"})

	// BatchSize observes the number of samples per batch request.
	BatchSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "composite_batch_size",
		Help:    "Samples per batch prediction request.",
		Buckets: prometheus.ExponentialBuckets(1, 2, 10),
	})

	// RequestsTotal counts HTTP requests by route and status class.
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "composite_http_requests_total",
		Help: "HTTP requests served, by route and status class.",
	}, []string{"route", "class"})
)

// Handler returns the /metrics endpoint handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
