package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the report-serving HTTP handlers
	ReportLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "fairmed_report_latency_seconds",
		Help:    "Latency of analyze and mitigate handlers",
		Buckets: prometheus.DefBuckets,
	})

	// Total number of baseline analyses served
	AnalyzeRequests = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "fairmed_analyze_requests_total",
		Help: "Total number of analyze requests",
	})

	// Total number of mitigated reports served
	MitigateRequests = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "fairmed_mitigate_requests_total",
		Help: "Total number of mitigate requests",
	})

	// Requests rejected for an unknown scenario identifier
	InvalidScenario = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "fairmed_invalid_scenario_total",
		Help: "Requests rejected because the scenario was not recognized",
	})
)

func Init() {
	prometheus.MustRegister(
		ReportLatency,
		AnalyzeRequests,
		MitigateRequests,
		InvalidScenario,
	)
}
