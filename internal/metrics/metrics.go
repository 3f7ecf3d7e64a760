package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the notifier's Prometheus collectors.
	Registry = prometheus.NewRegistry()

	// RunsTotal counts workflow runs by mode and outcome.
	RunsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "expiry_notifier",
			Subsystem: "runs",
			Name:      "total",
			Help:      "Total number of notification runs.",
		},
		[]string{"mode", "status"},
	)

	// ItemsFetched counts expiring items returned by the item query.
	ItemsFetched = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "expiry_notifier",
			Subsystem: "items",
			Name:      "fetched_total",
			Help:      "Total number of expiring items fetched.",
		},
	)

	// ItemsSkipped counts items dropped because their household had no
	// resolvable push targets.
	ItemsSkipped = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "expiry_notifier",
			Subsystem: "items",
			Name:      "skipped_total",
			Help:      "Total number of items skipped for lack of push targets.",
		},
	)

	// PushesSent counts successful push dispatches by run mode.
	PushesSent = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "expiry_notifier",
			Subsystem: "pushes",
			Name:      "sent_total",
			Help:      "Total number of push notifications sent.",
		},
		[]string{"mode"},
	)

	// PushesFailed counts failed push dispatches by run mode.
	PushesFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "expiry_notifier",
			Subsystem: "pushes",
			Name:      "failed_total",
			Help:      "Total number of push notifications that failed to send.",
		},
		[]string{"mode"},
	)
)

func init() {
	Registry.MustRegister(
		RunsTotal,
		ItemsFetched,
		ItemsSkipped,
		PushesSent,
		PushesFailed,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// Handler serves the registry for scraping.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}
