// internal/app/features/work/routes.go
package work

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter that serves the work endpoints.
// Mounted under /api/work.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.ServeCreate)
	r.Get("/", h.ServeList)
	return r
}
