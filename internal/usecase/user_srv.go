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

// UserService is policy free: the self-or-admin rules live in the handlers,
// which also choose the projection (redacted vs full).
type UserService interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserFullResponse], error)
	Update(ctx context.Context, id uuid.UUID, req *request.UpdateUserRequest, adminFields bool) (*entity.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type userService struct {
	users    repository.UserRepository
	sessions repository.SessionRepository
	log      *zap.Logger
}

func NewUserService(repo *repository.Repository, log *zap.Logger) UserService {
	return &userService{
		users:    repo.User,
		sessions: repo.Session,
		log:      log,
	}
}

func (us *userService) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := us.users.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %s: %w", id.String(), apperr.ErrNotFound)
	}

	return user, nil
}

func (us *userService) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	user, err := us.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %s: %w", email, apperr.ErrNotFound)
	}

	return user, nil
}

func (us *userService) List(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserFullResponse], error) {
	if req.Page < 1 {
		req.Page = 1
	}

	users, err := us.users.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	total, err := us.users.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	userResponses := make([]response.UserFullResponse, len(users))
	for i, user := range users {
		userResponses[i] = *response.UserToFullResponse(user)
	}

	return response.NewPaginatedResponse(userResponses, req.Page, req.Limit(), total), nil
}

func (us *userService) Update(ctx context.Context, id uuid.UUID, req *request.UpdateUserRequest, adminFields bool) (*entity.User, error) {
	user, err := us.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Email != "" {
		user.Email = req.Email
	}

	if req.Password != "" {
		hash, err := utils.HashPassword(req.Password)
		if err != nil {
			us.log.Error("Failed to hash password", zap.Error(err))
			return nil, fmt.Errorf("update user: %w", err)
		}
		user.PasswordHash = hash
	}

	if adminFields {
		if req.Role != "" {
			user.Role = entity.UserRole(req.Role)
		}
		if req.IsVerified != nil {
			user.IsVerified = *req.IsVerified
		}
	}

	user.UpdatedAt = time.Now()

	if err := us.users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	us.log.Info("User updated", zap.String("user_id", user.ID.String()))
	return user, nil
}

func (us *userService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := us.GetByID(ctx, id); err != nil {
		return err
	}

	// Sessions cascade with the user row, but revoke first so concurrent
	// requests on the same session stop authenticating immediately.
	if err := us.sessions.RevokeAllUserSessions(ctx, id); err != nil {
		us.log.Warn("Failed to revoke sessions before delete",
			zap.Error(err),
			zap.String("user_id", id.String()))
	}

	if err := us.users.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	return nil
}
