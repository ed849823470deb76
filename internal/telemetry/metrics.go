package telemetry

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	recordsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pixmill_telemetry_records_total",
		Help: "Conversion records added to the telemetry cache, by kind.",
	}, []string{"kind"})

	evictionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pixmill_telemetry_evictions_total",
		Help: "Records evicted by the bounded retention policy.",
	})
)

// Expose serves /metrics on the given port. Only wired up when the
// metrics port is configured; the tool is otherwise network-free.
func Expose(port int) {
	go func() {
		http.Handle("/metrics", promhttp.Handler())
		_ = http.ListenAndServe(fmt.Sprintf(":%d", port), nil)
	}()
}
