package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"todo-app/internal/data/entity"
	"todo-app/internal/data/repository"
	"todo-app/pkg/apperr"
	"todo-app/pkg/mailer"
	"todo-app/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// VerificationService manages the three single-use token lifecycles (email
// verification, password reset, email change) and their notifications.
// Every operation loads the user fresh, mutates in memory and persists with
// one update; redemption updates are guarded on the consumed token.
type VerificationService interface {
	SendVerificationEmail(ctx context.Context, userID uuid.UUID) error
	VerifyEmail(ctx context.Context, token string) error
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
	RequestEmailChange(ctx context.Context, userID uuid.UUID, newEmail string) error
	UpdateEmail(ctx context.Context, token string) error

	// NotifyVerification dispatches the verification mail for an already
	// issued token. Fire and forget.
	NotifyVerification(email, token string)
}

type verificationService struct {
	users    repository.UserRepository
	sessions repository.SessionRepository
	mail     mailer.Mailer
	config   *utils.Config
	log      *zap.Logger
}

func NewVerificationService(
	repo *repository.Repository,
	mail mailer.Mailer,
	config *utils.Config,
	log *zap.Logger,
) VerificationService {
	return &verificationService{
		users:    repo.User,
		sessions: repo.Session,
		mail:     mail,
		config:   config,
		log:      log,
	}
}

func (s *verificationService) tokenTTL() time.Duration {
	return time.Duration(s.config.Token.ExpiryMinutes) * time.Minute
}

func (s *verificationService) SendVerificationEmail(ctx context.Context, userID uuid.UUID) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("send verification email: %w", err)
	}
	if user == nil {
		return fmt.Errorf("user %s: %w", userID.String(), apperr.ErrNotFound)
	}

	token := utils.GenerateToken()
	user.EmailVerification = entity.NewTokenRecord(token, s.tokenTTL())
	user.UpdatedAt = time.Now()

	if err := s.users.Update(ctx, user); err != nil {
		return fmt.Errorf("send verification email: %w", err)
	}

	s.log.Info("Verification token issued",
		zap.String("user_id", user.ID.String()))

	s.NotifyVerification(user.Email, token)
	return nil
}

func (s *verificationService) VerifyEmail(ctx context.Context, token string) error {
	user, err := s.users.FindByToken(ctx, repository.TokenColumnEmailVerification, token)
	if err != nil {
		return fmt.Errorf("verify email: %w", err)
	}
	if user == nil {
		return fmt.Errorf("verification token: %w", apperr.ErrNotFound)
	}

	if user.EmailVerification.IsExpired(time.Now()) {
		return fmt.Errorf("verification token: %w", apperr.ErrTokenExpired)
	}

	user.IsVerified = true
	user.EmailVerification.Clear()
	user.UpdatedAt = time.Now()

	if err := s.users.UpdateGuarded(ctx, user, repository.TokenColumnEmailVerification, token); err != nil {
		return fmt.Errorf("verify email: %w", err)
	}

	s.log.Info("Email verified", zap.String("user_id", user.ID.String()))
	return nil
}

// RequestPasswordReset never reveals whether the email belongs to an account:
// an unknown address is logged and swallowed.
func (s *verificationService) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("request password reset: %w", err)
	}
	if user == nil {
		s.log.Info("Password reset requested for unknown email",
			zap.String("email", email))
		return nil
	}

	token := utils.GenerateToken()
	user.PasswordReset = entity.NewTokenRecord(token, s.tokenTTL())
	user.UpdatedAt = time.Now()

	if err := s.users.Update(ctx, user); err != nil {
		return fmt.Errorf("request password reset: %w", err)
	}

	s.log.Info("Password reset token issued",
		zap.String("user_id", user.ID.String()))

	resetURL := fmt.Sprintf("%s/reset-password?token=%s", s.config.App.BaseURL, token)
	s.dispatch(user.Email, "Reset your password",
		fmt.Sprintf(`<p>A password reset was requested for your account.</p>
<p><a href="%s">Reset your password</a></p>
<p>The link expires in one hour. If you did not request this, ignore this email.</p>`, resetURL))

	return nil
}

func (s *verificationService) ResetPassword(ctx context.Context, token, newPassword string) error {
	user, err := s.users.FindByToken(ctx, repository.TokenColumnPasswordReset, token)
	if err != nil {
		return fmt.Errorf("reset password: %w", err)
	}
	if user == nil {
		return fmt.Errorf("password reset token: %w", apperr.ErrNotFound)
	}

	if user.PasswordReset.IsExpired(time.Now()) {
		return fmt.Errorf("password reset token: %w", apperr.ErrTokenExpired)
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return fmt.Errorf("reset password: %w", err)
	}

	user.PasswordHash = hash
	user.PasswordReset.Clear()
	user.UpdatedAt = time.Now()

	if err := s.users.UpdateGuarded(ctx, user, repository.TokenColumnPasswordReset, token); err != nil {
		return fmt.Errorf("reset password: %w", err)
	}

	// Existing sessions die with the old password.
	if err := s.sessions.RevokeAllUserSessions(ctx, user.ID); err != nil {
		s.log.Warn("Failed to revoke sessions after password reset",
			zap.Error(err),
			zap.String("user_id", user.ID.String()))
	}

	s.log.Info("Password reset", zap.String("user_id", user.ID.String()))
	return nil
}

func (s *verificationService) RequestEmailChange(ctx context.Context, userID uuid.UUID, newEmail string) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("request email change: %w", err)
	}
	if user == nil {
		return fmt.Errorf("user %s: %w", userID.String(), apperr.ErrNotFound)
	}

	token := utils.GenerateToken()
	user.EmailUpdate = entity.NewTokenRecord(token, s.tokenTTL())
	user.PendingEmail = &newEmail
	user.UpdatedAt = time.Now()

	if err := s.users.Update(ctx, user); err != nil {
		return fmt.Errorf("request email change: %w", err)
	}

	s.log.Info("Email change token issued",
		zap.String("user_id", user.ID.String()))

	// Confirmation goes to the pending address, not the current one.
	confirmURL := fmt.Sprintf("%s/api/update-email?token=%s", s.config.App.BaseURL, token)
	s.dispatch(newEmail, "Confirm your new email address",
		fmt.Sprintf(`<p>A request was made to use this address for your account.</p>
<p><a href="%s">Confirm email change</a></p>
<p>The link expires in one hour. If you did not request this, ignore this email.</p>`, confirmURL))

	return nil
}

func (s *verificationService) UpdateEmail(ctx context.Context, token string) error {
	user, err := s.users.FindByToken(ctx, repository.TokenColumnEmailUpdate, token)
	if err != nil {
		return fmt.Errorf("update email: %w", err)
	}
	if user == nil {
		return fmt.Errorf("email update token: %w", apperr.ErrNotFound)
	}

	if user.EmailUpdate.IsExpired(time.Now()) {
		return fmt.Errorf("email update token: %w", apperr.ErrTokenExpired)
	}

	if user.PendingEmail == nil || *user.PendingEmail == "" {
		return fmt.Errorf("no pending email for user %s: %w", user.ID.String(), apperr.ErrBadRequest)
	}

	user.Email = *user.PendingEmail
	user.IsVerified = true
	user.PendingEmail = nil
	user.EmailUpdate.Clear()
	user.UpdatedAt = time.Now()

	if err := s.users.UpdateGuarded(ctx, user, repository.TokenColumnEmailUpdate, token); err != nil {
		return fmt.Errorf("update email: %w", err)
	}

	s.log.Info("Email updated",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))
	return nil
}

func (s *verificationService) NotifyVerification(email, token string) {
	verifyURL := fmt.Sprintf("%s/api/verify-email?token=%s", s.config.App.BaseURL, token)
	s.dispatch(email, "Verify your email address",
		fmt.Sprintf(`<p>Welcome! Confirm your email address to activate your account.</p>
<p><a href="%s">Verify email</a></p>
<p>The link expires in one hour.</p>`, verifyURL))
}

// dispatch sends a notification asynchronously. Failures are logged, never
// propagated to the enclosing request. Recipients under the configured
// exclude domain are skipped entirely.
func (s *verificationService) dispatch(to, subject, body string) {
	if s.excludedRecipient(to) {
		s.log.Info("Skipping notification for excluded domain",
			zap.String("email", to))
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := s.mail.Send(ctx, to, subject, body); err != nil {
			s.log.Error("Failed to send notification",
				zap.Error(err),
				zap.String("email", to),
				zap.String("subject", subject))
		}
	}()
}

func (s *verificationService) excludedRecipient(email string) bool {
	domain := s.config.Mail.ExcludeDomain
	if domain == "" {
		return false
	}
	return strings.HasSuffix(strings.ToLower(email), "@"+strings.ToLower(domain))
}
