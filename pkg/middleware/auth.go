package middleware

import (
	"net/http"

	"todo-app/internal/data/repository"
	"todo-app/pkg/utils"

	"go.uber.org/zap"
)

// AuthSession validates the session token (cookie or Bearer header), resolves
// the owning user for its live role, and binds the principal into the request
// context.
func AuthSession(
	sessionRepo repository.SessionRepository,
	userRepo repository.UserRepository,
	cookieName string,
	logger *zap.Logger,
) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := utils.SessionTokenFromRequest(r, cookieName)
			if token == "" {
				utils.ResponseUnauthorized(w, "Missing session token")
				return
			}

			session, err := sessionRepo.FindValidSession(r.Context(), token)
			if err != nil {
				logger.Error("Failed to validate session", zap.Error(err))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if session == nil {
				logger.Warn("Invalid or expired session",
					zap.String("path", r.URL.Path))
				utils.ResponseUnauthorized(w, "Invalid or expired session")
				return
			}

			user, err := userRepo.FindByID(r.Context(), session.UserID)
			if err != nil {
				logger.Error("Failed to load session user",
					zap.Error(err),
					zap.String("user_id", session.UserID.String()))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if user == nil {
				// Session survived its user; treat as unauthenticated.
				utils.ResponseUnauthorized(w, "Invalid or expired session")
				return
			}

			ctx := utils.SetUserContext(r.Context(), user.ID, string(user.Role))
			ctx = utils.SetTokenContext(ctx, token)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
