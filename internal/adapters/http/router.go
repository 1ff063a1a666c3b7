// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/goalkeeper/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(
	goalHandler *handlers.GoalHandler,
	coherenceHandler *handlers.CoherenceHandler,
	contextHandler *handlers.ContextHandler,
	moduleHandler *handlers.ModuleHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	// API v1 routes.
	r.Route("/api/v1", func(r chi.Router) {
		// Goal CRUD.
		r.Get("/goals", goalHandler.ListGoals)
		r.Post("/goals", goalHandler.CreateGoal)
		r.Get("/goals/{id}", goalHandler.GetGoal)
		r.Patch("/goals/{id}", goalHandler.UpdateGoal)
		r.Delete("/goals/{id}", goalHandler.DeleteGoal)

		// Derived constraints, scoped by domain.
		r.Get("/constraints", goalHandler.ListConstraints)

		// Coherence checks and the planning context snapshot.
		r.Post("/coherence/check", coherenceHandler.Check)
		r.Get("/context", contextHandler.GetContext)

		// Domain module registration.
		r.Get("/modules", moduleHandler.ListModules)
		r.Post("/modules", moduleHandler.RegisterModule)
		r.Delete("/modules/{name}", moduleHandler.UnregisterModule)
	})

	return r
}
