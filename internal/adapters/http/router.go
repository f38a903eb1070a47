// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/phonebook/internal/adapters/http/dto"
	"github.com/jsamuelsen11/phonebook/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/phonebook/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/phonebook/internal/domain"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middlewares wrap every route, first outermost. Unknown routes and methods
// answer with problem JSON like every other error.
func NewRouter(
	contactHandler *handlers.ContactHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	if len(middlewares) > 0 {
		r.Use(middleware.Chain(middlewares...))
	}

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteErrorResponse(w, req, domain.ErrNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteProblem(w, req, http.StatusMethodNotAllowed, req.Method+" is not supported on "+req.URL.Path)
	})

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/contacts", contactHandler.ListContacts)
		r.Post("/contacts", contactHandler.CreateContact)
		r.Get("/contacts/{handle}", contactHandler.GetContact)
		r.Delete("/contacts/{handle}", contactHandler.DeleteContact)

		// Whole-directory operations.
		r.Post("/contacts/sort", contactHandler.SortContacts)
		r.Post("/contacts/save", contactHandler.SaveContacts)
	})

	return r
}
