// Package httptransport assembles the public HTTP surface. Feature handlers
// register their own routes; this package only adds the operational
// endpoints that sit outside authentication.
package httptransport

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"kleingarten/internal/transport/http/shared"
)

// Registrar mounts a feature's routes on the router.
type Registrar interface {
	Register(r chi.Router)
}

// HealthCheck probes a dependency. A non-nil error marks the service
// unhealthy.
type HealthCheck func(ctx context.Context) error

// NewRouter wires the operational endpoints and the given feature handler.
func NewRouter(feature Registrar, checks map[string]HealthCheck) http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", handleHealth(checks))
	r.Handle("/metrics", promhttp.Handler())

	feature.Register(r)
	return r
}

func handleHealth(checks map[string]HealthCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		status := http.StatusOK
		report := map[string]string{"status": "ok"}
		for name, check := range checks {
			if err := check(ctx); err != nil {
				status = http.StatusServiceUnavailable
				report["status"] = "degraded"
				report[name] = err.Error()
			} else {
				report[name] = "ok"
			}
		}

		shared.WriteJSON(w, status, report)
	}
}
