package usecase

import (
	"context"
	"fmt"
	"time"

	"todo-app/internal/data/entity"
	"todo-app/internal/data/repository"
	"todo-app/internal/dto/request"
	"todo-app/internal/dto/response"
	"todo-app/pkg/apperr"
	"todo-app/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error)
	Login(ctx context.Context, req *request.LoginRequest, userAgent, ipAddress string) (*response.AuthResponse, error)
	Logout(ctx context.Context, token string) error
	SessionCheck(ctx context.Context, token string) (bool, error)
}

type authService struct {
	users        repository.UserRepository
	sessions     repository.SessionRepository
	verification VerificationService
	config       *utils.Config
	log          *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	verification VerificationService,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		users:        repo.User,
		sessions:     repo.Session,
		verification: verification,
		config:       config,
		log:          log,
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error) {
	existing, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("email %s already registered: %w", req.Email, apperr.ErrDuplicate)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("register: %w", err)
	}

	// The initial verification token is issued with the account itself, so
	// a registered user always carries an active emailVerification record.
	token := utils.GenerateToken()
	ttl := time.Duration(s.config.Token.ExpiryMinutes) * time.Minute

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Email:             req.Email,
		PasswordHash:      hash,
		IsVerified:        false,
		Role:              entity.RoleUser,
		EmailVerification: entity.NewTokenRecord(token, ttl),
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	s.verification.NotifyVerification(user.Email, token)

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	return response.UserToResponse(user), nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest, userAgent, ipAddress string) (*response.AuthResponse, error) {
	user, err := s.users.FindByEmail(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if user == nil {
		s.log.Warn("Login for unknown email", zap.String("email", req.Username))
		return nil, fmt.Errorf("invalid credentials: %w", apperr.ErrUnauthorized)
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("invalid credentials: %w", apperr.ErrUnauthorized)
	}

	session := &entity.Session{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:    user.ID,
		Token:     utils.GenerateSessionToken(),
		ExpiresAt: time.Now().Add(time.Duration(s.config.Session.ExpiryHours) * time.Hour),
	}
	if userAgent != "" {
		session.UserAgent = &userAgent
	}
	if ipAddress != "" {
		session.IPAddress = &ipAddress
	}

	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()))

	return response.AuthToResponse(user, session), nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	tokenUUID, err := uuid.Parse(token)
	if err != nil {
		return fmt.Errorf("invalid session token: %w", apperr.ErrBadRequest)
	}

	if err := s.sessions.Revoke(ctx, tokenUUID.String()); err != nil {
		return fmt.Errorf("logout: %w", err)
	}

	s.log.Info("User logged out")
	return nil
}

func (s *authService) SessionCheck(ctx context.Context, token string) (bool, error) {
	if token == "" {
		return false, nil
	}

	if _, err := uuid.Parse(token); err != nil {
		return false, nil
	}

	session, err := s.sessions.FindValidSession(ctx, token)
	if err != nil {
		return false, fmt.Errorf("session check: %w", err)
	}

	return session != nil, nil
}
