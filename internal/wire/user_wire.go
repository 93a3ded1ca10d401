package wire

import (
	"todo-app/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireUser configures user management routes. All of them require a
// session; the self-or-admin checks live in the handlers. Registration
// (POST /api/users) is wired with the auth routes since it is public.
func wireUser(r chi.Router, h *adaptor.UserHandler, auth authMiddleware) {
	r.With(auth).Get("/api/users", h.Query) // ?email= lookup or admin listing
	r.With(auth).Get("/api/users/{id}", h.Get)
	r.With(auth).Put("/api/users/{id}", h.Update)
	r.With(auth).Delete("/api/users/{id}", h.Delete)
}
