package resolver

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metrics struct {
	plansResolved   prometheus.Counter
	resolveFailures prometheus.Counter
}

func newMetrics(reg prometheus.Registerer) *metrics {
	return &metrics{
		plansResolved: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "driftlake_planner_resolved_plans_total",
			Help: "Total number of successfully resolved query plans.",
		}),
		resolveFailures: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "driftlake_planner_resolve_failures_total",
			Help: "Total number of failed plan resolutions.",
		}),
	}
}
