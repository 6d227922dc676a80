package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/osse101/SpaceBot_Go/internal/domain"
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

	SecurityEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSecurityEvents,
			Help: HelpTextSecurityEvents,
		},
		[]string{LabelEvent},
	)
)

// Economy Metrics
var (
	EconomyOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEconomyOperations,
			Help: HelpTextEconomyOperations,
		},
		[]string{LabelOperation, LabelOutcome},
	)

	CreditsMinted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCreditsMinted,
			Help: HelpTextCreditsMinted,
		},
		[]string{LabelSource},
	)

	CreditsBurned = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCreditsBurned,
			Help: HelpTextCreditsBurned,
		},
		[]string{LabelSource},
	)

	ItemsBought = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsBought,
			Help: HelpTextItemsBought,
		},
		[]string{LabelItem},
	)

	ItemsSold = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsSold,
			Help: HelpTextItemsSold,
		},
		[]string{LabelItem},
	)

	TradesResolved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameTradesResolved,
			Help: HelpTextTradesResolved,
		},
		[]string{LabelStatus},
	)
)

// Market Metrics
var (
	StockPrice = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameStockPrice,
			Help: HelpTextStockPrice,
		},
		[]string{LabelStock},
	)

	MarketTicks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMarketTicks,
			Help: HelpTextMarketTicks,
		},
	)

	PriceSamplesPruned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePriceSamplesPruned,
			Help: HelpTextPriceSamplesPruned,
		},
	)

	SharesTraded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSharesTraded,
			Help: HelpTextSharesTraded,
		},
		[]string{LabelStock, LabelSide},
	)
)

// RecordOperation counts one economy operation, labelled by its error kind
func RecordOperation(operation string, err error) {
	outcome := OutcomeSuccess
	if err != nil {
		outcome = string(domain.KindOf(err))
	}
	EconomyOperations.WithLabelValues(operation, outcome).Inc()
}

// RecordMint counts credits entering the economy
func RecordMint(source string, amount int64) {
	if amount > 0 {
		CreditsMinted.WithLabelValues(source).Add(float64(amount))
	}
}

// RecordBurn counts credits leaving the economy
func RecordBurn(source string, amount int64) {
	if amount > 0 {
		CreditsBurned.WithLabelValues(source).Add(float64(amount))
	}
}
