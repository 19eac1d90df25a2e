package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var RiskRefreshAmount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "postureguard_risk_refresh_amount",
	Help: "The total number of container risk score refreshes triggered by issue writes",
})

var RiskRefreshFailedAmount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "postureguard_risk_refresh_failed_amount",
	Help: "The total number of container risk score refreshes that failed",
})

var RiskRecalculationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "postureguard_risk_recalculation_duration_seconds",
	Help:    "Duration of full container risk recalculation runs in seconds",
	Buckets: prometheus.DefBuckets,
})
