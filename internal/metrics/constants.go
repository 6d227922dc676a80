package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
	MetricNameSecurityEvents       = "http_security_events_total"
)

// Economy metric names
const (
	MetricNameEconomyOperations = "economy_operations_total"
	MetricNameCreditsMinted     = "economy_credits_minted_total"
	MetricNameCreditsBurned     = "economy_credits_burned_total"
	MetricNameItemsBought       = "items_bought_total"
	MetricNameItemsSold         = "items_sold_total"
	MetricNameTradesResolved    = "trades_resolved_total"
)

// Market metric names
const (
	MetricNameStockPrice         = "stock_price"
	MetricNameMarketTicks        = "market_ticks_total"
	MetricNamePriceSamplesPruned = "price_samples_pruned_total"
	MetricNameSharesTraded       = "stock_shares_traded_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
	HelpTextSecurityEvents       = "Rejected requests by reason"
)

// Economy metric help text
const (
	HelpTextEconomyOperations = "Economy operations by outcome"
	HelpTextCreditsMinted     = "Credits created by daily claims, payouts, sales, digs and robberies"
	HelpTextCreditsBurned     = "Credits destroyed by purchases and fines"
	HelpTextItemsBought       = "Total number of items bought from the shop"
	HelpTextItemsSold         = "Total number of items sold to the shop"
	HelpTextTradesResolved    = "Trades moved to a terminal status"
)

// Market metric help text
const (
	HelpTextStockPrice         = "Current stock price"
	HelpTextMarketTicks        = "Completed background price fluctuation passes"
	HelpTextPriceSamplesPruned = "Price history samples deleted by retention pruning"
	HelpTextSharesTraded       = "Shares bought or sold by users"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelOperation = "operation"
	LabelOutcome   = "outcome"
	LabelSource    = "source"
	LabelItem      = "item"
	LabelStock     = "stock"
	LabelSide      = "side"
	LabelEvent     = "event"
)

// Security event label values
const (
	EventAuthFailed  = "auth_failed"
	EventRateLimited = "rate_limited"
)

// Outcome label values
const (
	OutcomeSuccess = "success"
	OutcomeFault   = "fault"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
