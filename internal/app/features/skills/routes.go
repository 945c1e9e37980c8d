// internal/app/features/skills/routes.go
package skills

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter that serves the skill endpoints.
// Mounted under /api/skills. The fixed /top route is registered before
// the {id} routes so it is never captured as an id.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.ServeCreate)
	r.Get("/", h.ServeList)
	r.Get("/top", h.ServeListTop)
	r.Delete("/{id}", h.ServeDelete)
	return r
}
