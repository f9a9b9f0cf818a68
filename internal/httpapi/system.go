package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/spendwise/spendwise/internal/store"
	"github.com/spendwise/spendwise/pkg/httpx"
)

// WelcomeHandler answers the API root with an endpoint index.
//
//	@Summary	API welcome page
//	@Tags		System
//	@Produce	json
//	@Success	200	{object}	httpx.Response
//	@Router		/ [get].
func WelcomeHandler(version string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"message": "Welcome to SpendWise API",
			"version": version,
			"endpoints": map[string]string{
				"health":     "/health",
				"auth":       "/api/auth",
				"expenses":   "/api/expenses",
				"categories": "/api/categories",
				"statistics": "/api/stats",
				"docs":       "/swagger/index.html",
			},
		})
	})
}

// HealthHandler reports liveness and pings the database.
//
//	@Summary	Health check
//	@Tags		System
//	@Produce	json
//	@Success	200	{object}	httpx.Response
//	@Failure	503	{object}	httpx.Response
//	@Router		/health [get].
func HealthHandler(st store.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := st.Ping(ctx); err != nil {
			httpx.WriteError(w, http.StatusServiceUnavailable, "Database unavailable")
			return
		}

		httpx.WriteJSON(w, http.StatusOK, map[string]any{
			"success":   true,
			"message":   "SpendWise API is running",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})
}

// notFoundHandler is the JSON fallback for unmatched routes.
func notFoundHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteError(w, http.StatusNotFound, "Endpoint not found")
	})
}
