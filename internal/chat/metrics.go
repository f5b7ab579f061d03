package chat

import "github.com/prometheus/client_golang/prometheus"

const (
	outcomeOK    = "ok"
	outcomeError = "error"
)

var (
	upstreamAttemptsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mentord",
			Subsystem: "upstream",
			Name:      "attempts_total",
			Help:      "Upstream chat attempts by model and outcome",
		},
		[]string{"model", "outcome"},
	)

	upstreamExhaustedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mentord",
			Subsystem: "upstream",
			Name:      "exhausted_total",
			Help:      "Chat requests that failed after every retry",
		},
		[]string{"model"},
	)
)

func init() {
	prometheus.MustRegister(upstreamAttemptsTotal, upstreamExhaustedTotal)
}

func observeAttempt(model, outcome string) {
	upstreamAttemptsTotal.WithLabelValues(model, outcome).Inc()
}

func observeExhausted(model string) {
	upstreamExhaustedTotal.WithLabelValues(model).Inc()
}
