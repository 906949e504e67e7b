package user

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes mounts the user directory. adminOnly guards every mutation.
func Routes(h *Handler, adminOnly func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Get("/{id}", h.Get)

	r.Group(func(r chi.Router) {
		r.Use(adminOnly)
		r.Put("/{id}", h.UpdateRole)
		r.Put("/{id}/status", h.UpdateStatus)
		r.Delete("/{id}", h.Delete)
	})

	return r
}

func ProfileRoutes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.GetProfile)
	r.Post("/", h.UpdateProfile)
	r.Put("/", h.UpdateProfile)

	return r
}
