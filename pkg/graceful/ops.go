package graceful

import (
	"encoding/json"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/raolabs/raobot/pkg/logger"
)

// HealthReporter reports overall process health for the /healthz probe.
type HealthReporter interface {
	Healthy(r *http.Request) (bool, map[string]string)
}

// NewOpsHandler builds the ops mux: /healthz backed by the reporter and
// /metrics served by Prometheus. Every request gets a correlation id.
func NewOpsHandler(reporter HealthReporter) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		ok := true
		details := map[string]string{}
		if reporter != nil {
			ok, details = reporter.Healthy(r)
		}

		w.Header().Set("Content-Type", "application/json")
		if !ok {
			w.WriteHeader(http.StatusServiceUnavailable)
		}

		status := "ok"
		if !ok {
			status = "degraded"
		}

		_ = json.NewEncoder(w).Encode(map[string]any{
			"status":  status,
			"details": details,
		})
	})

	mux.Handle("/metrics", promhttp.Handler())

	return logger.Middleware(mux)
}
