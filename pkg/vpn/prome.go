package vpn

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	metrics      = prometheus.NewRegistry()
	phase1Metric = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "pfsec_phase1_entries",
		Help: "The number of phase1 entries",
	})
	commitMetric = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pfsec_commits_total",
		Help: "The total committed change sets",
	})
	invalidMetric = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pfsec_invalid_requests_total",
		Help: "The total rejected phase1 requests",
	})
)

func init() {
	metrics.MustRegister(phase1Metric, commitMetric, invalidMetric)
}
