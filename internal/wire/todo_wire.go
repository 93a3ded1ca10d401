package wire

import (
	"todo-app/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireTodo configures todo CRUD routes, all session protected.
func wireTodo(r chi.Router, h *adaptor.TodoHandler, auth authMiddleware) {
	r.With(auth).Route("/api/todos", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Get("/", h.List)
		r.Get("/{id}", h.Get)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}
