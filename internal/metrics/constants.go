package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Business metric names
const (
	MetricNameSearchesPerformed  = "searches_performed_total"
	MetricNamePortfolioAnalyses  = "portfolio_analyses_total"
	MetricNameSlugResolutions    = "slug_resolutions_total"
	MetricNameBoxesImported      = "boxes_imported_total"
	MetricNameImportRowsRejected = "import_rows_rejected_total"
	MetricNameOperatorsPublished = "operators_published_total"
	MetricNameCacheHits          = "catalog_cache_hits_total"
	MetricNameCacheMisses        = "catalog_cache_misses_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Business metric help text
const (
	HelpTextSearchesPerformed  = "Total number of catalog searches performed"
	HelpTextPortfolioAnalyses  = "Total number of portfolio outcome analyses"
	HelpTextSlugResolutions    = "Total number of fuzzy slug resolutions"
	HelpTextBoxesImported      = "Total number of boxes imported from provider feeds"
	HelpTextImportRowsRejected = "Total number of provider feed rows rejected during import"
	HelpTextOperatorsPublished = "Total number of operator pages published"
	HelpTextCacheHits          = "Total number of catalog cache hits"
	HelpTextCacheMisses        = "Total number of catalog cache misses"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelProvider = "provider"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
