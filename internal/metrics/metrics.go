package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry groups the collectors exposed on /metrics.
type Registry struct {
	reg *prometheus.Registry

	LoadsTotal    prometheus.Counter
	LoadFailures  prometheus.Counter
	RecordsLoaded prometheus.Gauge
	LoadSeconds   prometheus.Histogram

	QueriesTotal prometheus.Counter
	QuerySeconds prometheus.Histogram
}

// NewRegistry constructs and registers all collectors.
func NewRegistry() *Registry {
	r := prometheus.NewRegistry()

	loads := prometheus.NewCounter(prometheus.CounterOpts{Name: "retailscope_dataset_loads_total"})
	loadFailures := prometheus.NewCounter(prometheus.CounterOpts{Name: "retailscope_dataset_load_failures_total"})
	recordsLoaded := prometheus.NewGauge(prometheus.GaugeOpts{Name: "retailscope_dataset_records"})
	loadSeconds := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "retailscope_dataset_load_seconds",
		Buckets: prometheus.ExponentialBuckets(0.1, 2, 10),
	})

	queries := prometheus.NewCounter(prometheus.CounterOpts{Name: "retailscope_queries_total"})
	querySeconds := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "retailscope_query_seconds",
		Buckets: prometheus.DefBuckets,
	})

	r.MustRegister(loads, loadFailures, recordsLoaded, loadSeconds, queries, querySeconds)
	return &Registry{
		reg:           r,
		LoadsTotal:    loads,
		LoadFailures:  loadFailures,
		RecordsLoaded: recordsLoaded,
		LoadSeconds:   loadSeconds,
		QueriesTotal:  queries,
		QuerySeconds:  querySeconds,
	}
}

// Handler exposes the registry over HTTP.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}
