// Package observability holds the Prometheus collectors exported on /metrics.
//
// Collectors are registered on the default registry at init via promauto, so
// every package shares the same series.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "firmos"

// ─── HTTP ───────────────────────────────────────────────────────────────────

// HTTPRequests counts served requests by route pattern and status code.
var HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "http",
	Name:      "requests_total",
	Help:      "Total HTTP requests by method, route and status.",
}, []string{"method", "route", "status"})

// HTTPDuration tracks request latency by route pattern.
var HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: namespace,
	Subsystem: "http",
	Name:      "request_duration_seconds",
	Help:      "HTTP request latency in seconds.",
	Buckets:   prometheus.DefBuckets,
}, []string{"method", "route"})

// ─── Record Store ───────────────────────────────────────────────────────────

// Mutations counts successful writes by collection and operation.
var Mutations = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "store",
	Name:      "mutations_total",
	Help:      "Total successful record mutations by collection and op.",
}, []string{"collection", "op"})

// SnapshotLoads counts snapshot loads by source (store or cache) and outcome.
var SnapshotLoads = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "store",
	Name:      "snapshot_loads_total",
	Help:      "Total snapshot loads by source and outcome.",
}, []string{"source", "outcome"})

// ─── Change Feed ────────────────────────────────────────────────────────────

// FeedSubscribers is the number of live change feed subscriptions.
var FeedSubscribers = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: namespace,
	Subsystem: "feed",
	Name:      "subscribers",
	Help:      "Current number of change feed subscribers.",
})

// FeedDropped counts events dropped for slow subscribers.
var FeedDropped = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "feed",
	Name:      "dropped_events_total",
	Help:      "Total change events dropped because a subscriber was full.",
})

// CacheWrites counts local cache rewrites by outcome.
var CacheWrites = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "cache",
	Name:      "writes_total",
	Help:      "Total local cache rewrites by outcome.",
}, []string{"outcome"})

// ─── Advisor ────────────────────────────────────────────────────────────────

// AdvisorRequests counts chat requests by outcome.
var AdvisorRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "advisor",
	Name:      "requests_total",
	Help:      "Total advisory chat requests by outcome.",
}, []string{"outcome"})

// ─── Firm Metrics ───────────────────────────────────────────────────────────

// CashOnHand is the last observed cash on hand.
var CashOnHand = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: namespace,
	Subsystem: "firm",
	Name:      "cash_on_hand",
	Help:      "Cash on hand at the last metrics read.",
})

// DailyBurn is the last observed total daily burn.
var DailyBurn = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: namespace,
	Subsystem: "firm",
	Name:      "daily_burn",
	Help:      "Total daily burn (payroll plus fixed overhead) at the last metrics read.",
})

// RunwayDays is the last observed runway. Unbounded runway reports -1.
var RunwayDays = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: namespace,
	Subsystem: "firm",
	Name:      "runway_days",
	Help:      "Days of runway at the last metrics read, -1 when unbounded.",
})

// HourlyOverhead is the last observed fixed overhead per staff hour.
var HourlyOverhead = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: namespace,
	Subsystem: "firm",
	Name:      "hourly_overhead",
	Help:      "Fixed overhead per staff hour at the last metrics read.",
})

// CashboxBalance is the last observed stored cashbox balance.
var CashboxBalance = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: namespace,
	Subsystem: "firm",
	Name:      "cashbox_balance",
	Help:      "Stored cashbox balance at the last metrics read.",
})
