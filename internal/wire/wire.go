package wire

import (
	"net/http"

	"todo-app/internal/adaptor"
	"todo-app/internal/data/repository"
	"todo-app/internal/usecase"
	"todo-app/pkg/database"
	"todo-app/pkg/mailer"
	"todo-app/pkg/middleware"
	"todo-app/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired application dependencies.
type App struct {
	Router *chi.Mux
}

// Wiring initializes services, handlers and the HTTP router.
func Wiring(
	repo *repository.Repository,
	db database.PgxIface,
	mail mailer.Mailer,
	config *utils.Config,
	logger *zap.Logger,
) *App {
	service := usecase.NewService(repo, mail, config, logger)
	handler := adaptor.NewHandler(service, db, config, logger)

	router := setupRouter(handler, repo, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// One auth middleware instance shared by every protected route.
	authMW := middleware.AuthSession(repo.Session, repo.User, config.Session.CookieName, logger)

	wireAuth(r, handler.Auth, authMW)
	wireUser(r, handler.User, authMW)
	wireTodo(r, handler.Todo, authMW)
	wireVerification(r, handler.Verification, authMW)

	// Health endpoints stay public.
	r.Get("/health-check", handler.Health.HealthCheck)
	r.Get("/heartbeat", handler.Health.Heartbeat)

	return r
}

type authMiddleware = func(http.Handler) http.Handler
