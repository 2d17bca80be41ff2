package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Business Metrics
var (
	SearchesPerformed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSearchesPerformed,
			Help: HelpTextSearchesPerformed,
		},
	)

	PortfolioAnalyses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePortfolioAnalyses,
			Help: HelpTextPortfolioAnalyses,
		},
	)

	SlugResolutions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSlugResolutions,
			Help: HelpTextSlugResolutions,
		},
	)

	BoxesImported = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBoxesImported,
			Help: HelpTextBoxesImported,
		},
		[]string{LabelProvider},
	)

	ImportRowsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameImportRowsRejected,
			Help: HelpTextImportRowsRejected,
		},
		[]string{LabelProvider},
	)

	OperatorsPublished = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameOperatorsPublished,
			Help: HelpTextOperatorsPublished,
		},
	)

	CacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCacheHits,
			Help: HelpTextCacheHits,
		},
	)

	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCacheMisses,
			Help: HelpTextCacheMisses,
		},
	)
)
