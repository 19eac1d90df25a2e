package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var DocumentAnalysisAmount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "postureguard_document_analysis_amount",
	Help: "The total number of review documents run through the classifier",
})

var DocumentAnalysisFailedAmount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "postureguard_document_analysis_failed_amount",
	Help: "The total number of review document analyses that failed to persist",
})
