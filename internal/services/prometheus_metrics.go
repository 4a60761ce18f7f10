package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric names accepted by PrometheusMetrics
const (
	MetricFilterApplied       = "view.filter.applied"
	MetricPageChanged         = "view.page.changed"
	MetricViewBuilt           = "view.built"
	MetricViewBuildFailed     = "view.build.failed"
	MetricViewBuildDuration   = "view.build"
	MetricViewRows            = "view.rows"
	MetricTransactionMutation = "transaction.mutation"
	MetricReportGenerated     = "report.generated"
	MetricReportDuration      = "report.duration"
)

type PrometheusMetrics struct {
	filterApplies        *prometheus.CounterVec
	pageChanges          *prometheus.CounterVec
	viewBuilds           *prometheus.CounterVec
	viewBuildDuration    prometheus.Histogram
	viewRows             *prometheus.GaugeVec
	transactionMutations *prometheus.CounterVec
	reportsGenerated     *prometheus.CounterVec
	reportDuration       prometheus.Histogram
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return NewPrometheusMetricsWith(prometheus.DefaultRegisterer)
}

// NewPrometheusMetricsWith registers the collectors with reg
func NewPrometheusMetricsWith(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		filterApplies: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "view_filter_applies_total",
				Help: "Total number of filter applications by date selector",
			},
			[]string{"date"},
		),
		pageChanges: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "view_page_changes_total",
				Help: "Total number of pagination actions",
			},
			[]string{"action"},
		),
		viewBuilds: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "view_builds_total",
				Help: "Total number of session view builds",
			},
			[]string{"reason", "status"},
		),
		viewBuildDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "view_build_duration_milliseconds",
				Help:    "Session view build duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		viewRows: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "view_rows",
				Help: "Row counts of the most recently updated view",
			},
			[]string{"kind"},
		),
		transactionMutations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transaction_mutations_total",
				Help: "Total number of transaction mutations",
			},
			[]string{"operation", "status"},
		),
		reportsGenerated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reports_generated_total",
				Help: "Total number of generated totals reports",
			},
			[]string{"kind"},
		),
		reportDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "report_duration_seconds",
				Help:    "Totals report generation duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case MetricFilterApplied:
		m.filterApplies.WithLabelValues(tags["date"]).Inc()
	case MetricPageChanged:
		m.pageChanges.WithLabelValues(tags["action"]).Inc()
	case MetricViewBuilt:
		m.viewBuilds.WithLabelValues(tags["reason"], "success").Inc()
	case MetricViewBuildFailed:
		m.viewBuilds.WithLabelValues(tags["reason"], "failed").Inc()
	case MetricTransactionMutation:
		if status := tags["status"]; status != "" {
			m.transactionMutations.WithLabelValues(tags["operation"], status).Inc()
		}
	case MetricReportGenerated:
		m.reportsGenerated.WithLabelValues(tags["kind"]).Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case MetricViewBuildDuration:
		m.viewBuildDuration.Observe(float64(duration.Milliseconds()))
	case MetricReportDuration:
		m.reportDuration.Observe(duration.Seconds())
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case MetricViewRows:
		if kind := tags["kind"]; kind != "" {
			m.viewRows.WithLabelValues(kind).Set(value)
		}
	}
}

// noopMetrics is used when no recorder is configured
type noopMetrics struct{}

func (noopMetrics) IncrementCounter(string, map[string]string) {}
func (noopMetrics) RecordProcessingTime(string, time.Duration) {}
func (noopMetrics) RecordGauge(string, float64, map[string]string) {}
