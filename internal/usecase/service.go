package usecase

import (
	"todo-app/internal/data/repository"
	"todo-app/pkg/mailer"
	"todo-app/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth         AuthService
	User         UserService
	Todo         TodoService
	Verification VerificationService
}

func NewService(repo *repository.Repository, mail mailer.Mailer, config *utils.Config, log *zap.Logger) *Service {
	verification := NewVerificationService(repo, mail, config, log)

	return &Service{
		Auth:         NewAuthService(repo, verification, config, log),
		User:         NewUserService(repo, log),
		Todo:         NewTodoService(repo.Todo, log),
		Verification: verification,
	}
}
