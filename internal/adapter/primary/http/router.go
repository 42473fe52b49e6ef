package http

import (
	"net/http"

	"fhirpub/internal/port/secondary"
)

// NewRouter creates an HTTP mux with all application routes registered.
func NewRouter(healthChecks []secondary.HealthChecker) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint
	healthHandler := NewHealthHandler(healthChecks)
	mux.Handle("/health", healthHandler)

	return mux
}
