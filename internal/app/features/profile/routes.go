// internal/app/features/profile/routes.go
package profile

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter that serves the profile endpoints.
// Mounted under /api/profile.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeGet)
	r.Post("/", h.ServeUpsert)
	return r
}
