package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// CommandsHandled counts Telegram commands processed, by command name.
	CommandsHandled = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "erasmusbot_commands_handled_total",
		Help: "Number of Telegram commands processed.",
	}, []string{"command"})

	// SyncRefills counts pantry refills triggered by checking off a
	// shopping item with a matching name.
	SyncRefills = promauto.NewCounter(prometheus.CounterOpts{
		Name: "erasmusbot_pantry_sync_refills_total",
		Help: "Pantry refills triggered by the shopping list sync rule.",
	})

	// SnapshotExports counts full data exports.
	SnapshotExports = promauto.NewCounter(prometheus.CounterOpts{
		Name: "erasmusbot_snapshot_exports_total",
		Help: "Number of data snapshot exports.",
	})

	// PersistFailures counts failed writes of a domain collection.
	PersistFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "erasmusbot_persist_failures_total",
		Help: "Failed persistence writes, by storage key.",
	}, []string{"key"})
)

// Handler returns the HTTP handler serving the metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
