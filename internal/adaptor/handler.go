package adaptor

import (
	"todo-app/internal/usecase"
	"todo-app/pkg/database"
	"todo-app/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth         *AuthHandler
	User         *UserHandler
	Todo         *TodoHandler
	Verification *VerificationHandler
	Health       *HealthHandler
}

func NewHandler(service *usecase.Service, db database.PgxIface, config *utils.Config, log *zap.Logger) *Handler {
	return &Handler{
		Auth:         NewAuthHandler(service.Auth, config.Session.CookieName, log),
		User:         NewUserHandler(service.User, log),
		Todo:         NewTodoHandler(service.Todo, log),
		Verification: NewVerificationHandler(service.Verification, log),
		Health:       NewHealthHandler(db, log),
	}
}
