package handler

import (
	"net/http"

	"github.com/avastudio/avatar-api/internal/api/response"
	"github.com/avastudio/avatar-api/internal/provider"
	"github.com/avastudio/avatar-api/internal/repository/postgres"
)

// HealthCheck returns a simple health check response
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	response.OK(w, map[string]string{
		"status": "ok",
	})
}

// ReadyCheck returns readiness status including database connectivity.
// A nil db means the service runs store-less; that is still ready.
func ReadyCheck(db *postgres.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store := "ok"
		if db == nil {
			store = "not_configured"
		} else if err := db.Ping(r.Context()); err != nil {
			response.Unavailable(w, "database not ready")
			return
		}

		response.OK(w, map[string]string{
			"status": "ready",
			"store":  store,
		})
	}
}

// ListProviders returns the registered generation providers
func ListProviders(registry *provider.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		infos := registry.List()
		if infos == nil {
			infos = []provider.Info{}
		}

		response.OK(w, map[string]any{
			"providers": infos,
			"default":   registry.Default(),
		})
	}
}
