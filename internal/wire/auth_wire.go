package wire

import (
	"todo-app/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireAuth configures registration, login and session routes.
func wireAuth(r chi.Router, h *adaptor.AuthHandler, auth authMiddleware) {
	// ==================== PUBLIC ROUTES ====================
	r.Post("/api/users", h.Register)
	r.Post("/api/login", h.Login)
	r.Get("/api/session-check", h.SessionCheck)

	// ==================== PROTECTED ROUTES ====================
	r.With(auth).Post("/api/logout", h.Logout)
}
