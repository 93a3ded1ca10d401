package repository

import (
	"errors"

	"todo-app/pkg/database"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

type Repository struct {
	User    UserRepository
	Todo    TodoRepository
	Session SessionRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:    NewUserRepository(db, log),
		Todo:    NewTodoRepository(db, log),
		Session: NewSessionRepository(db, log),
	}
}

// isUniqueViolation reports whether err is a unique-constraint violation,
// which the services surface as a distinguishable duplicate error.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
