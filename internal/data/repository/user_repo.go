package repository

import (
	"context"
	"fmt"

	"todo-app/internal/data/entity"
	"todo-app/pkg/apperr"
	"todo-app/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// Token columns carrying the three verification flows on the users table.
const (
	TokenColumnEmailVerification = "email_verification"
	TokenColumnPasswordReset     = "password_reset"
	TokenColumnEmailUpdate       = "email_update"
)

var tokenColumns = map[string]bool{
	TokenColumnEmailVerification: true,
	TokenColumnPasswordReset:     true,
	TokenColumnEmailUpdate:       true,
}

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	// FindByToken locates the user holding the given token in one of the
	// three token columns. Expiry is not filtered here; it is service policy.
	FindByToken(ctx context.Context, column, token string) (*entity.User, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.User, error)
	CountAll(ctx context.Context) (int64, error)
	Update(ctx context.Context, user *entity.User) error
	// UpdateGuarded persists the user only while the given token column still
	// holds the redeemed token. Zero rows affected means a concurrent request
	// already consumed the token and surfaces as NotFound.
	UpdateGuarded(ctx context.Context, user *entity.User, column, token string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type userRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewUserRepository(db database.PgxIface, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log.With(zap.String("repository", "user")),
	}
}

const userColumns = `id, email, password, is_verified, role, pending_email,
	       email_verification, password_reset, email_update,
	       created_at, updated_at`

func (ur *userRepository) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (id, email, password, is_verified, role, pending_email,
		                  email_verification, password_reset, email_update,
		                  created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := ur.db.Exec(ctx, query,
		user.ID,
		user.Email,
		user.PasswordHash,
		user.IsVerified,
		user.Role,
		user.PendingEmail,
		user.EmailVerification,
		user.PasswordReset,
		user.EmailUpdate,
		user.CreatedAt,
		user.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("email %s already registered: %w", user.Email, apperr.ErrDuplicate)
		}
		ur.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("email", user.Email),
		)
		return fmt.Errorf("create user %s: %w", user.Email, err)
	}

	return nil
}

func (ur *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1`, userColumns)

	user, err := ur.scanUser(ur.db.QueryRow(ctx, query, id))
	if err != nil {
		ur.log.Error("Failed to find user by ID",
			zap.Error(err),
			zap.String("user_id", id.String()),
		)
		return nil, fmt.Errorf("find user by ID %s: %w", id.String(), err)
	}

	return user, nil
}

func (ur *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE email = $1`, userColumns)

	user, err := ur.scanUser(ur.db.QueryRow(ctx, query, email))
	if err != nil {
		ur.log.Error("Failed to find user by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find user by email %s: %w", email, err)
	}

	return user, nil
}

func (ur *userRepository) FindByToken(ctx context.Context, column, token string) (*entity.User, error) {
	if !tokenColumns[column] {
		return nil, fmt.Errorf("unknown token column %q", column)
	}

	query := fmt.Sprintf(`SELECT %s FROM users WHERE %s->>'token' = $1`, userColumns, column)

	user, err := ur.scanUser(ur.db.QueryRow(ctx, query, token))
	if err != nil {
		ur.log.Error("Failed to find user by token",
			zap.Error(err),
			zap.String("column", column),
		)
		return nil, fmt.Errorf("find user by %s token: %w", column, err)
	}

	return user, nil
}

func (ur *userRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.User, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM users
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, userColumns)

	rows, err := ur.db.Query(ctx, query, limit, offset)
	if err != nil {
		ur.log.Error("Failed to get all users",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find all users limit %d offset %d: %w", limit, offset, err)
	}
	defer rows.Close()

	var users []*entity.User
	for rows.Next() {
		var user entity.User
		err := rows.Scan(
			&user.ID,
			&user.Email,
			&user.PasswordHash,
			&user.IsVerified,
			&user.Role,
			&user.PendingEmail,
			&user.EmailVerification,
			&user.PasswordReset,
			&user.EmailUpdate,
			&user.CreatedAt,
			&user.UpdatedAt,
		)
		if err != nil {
			ur.log.Error("Failed to scan user row", zap.Error(err))
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		users = append(users, &user)
	}

	if err := rows.Err(); err != nil {
		ur.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate users rows: %w", err)
	}

	return users, nil
}

func (ur *userRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM users`

	var count int64
	err := ur.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		ur.log.Error("Database error counting users", zap.Error(err))
		return 0, fmt.Errorf("count all users: %w", err)
	}

	return count, nil
}

const userUpdateSet = `email = $2, password = $3, is_verified = $4, role = $5,
		    pending_email = $6, email_verification = $7, password_reset = $8,
		    email_update = $9, updated_at = $10`

func (ur *userRepository) Update(ctx context.Context, user *entity.User) error {
	query := fmt.Sprintf(`UPDATE users SET %s WHERE id = $1`, userUpdateSet)

	result, err := ur.db.Exec(ctx, query, ur.updateArgs(user)...)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("email %s already registered: %w", user.Email, apperr.ErrDuplicate)
		}
		ur.log.Error("Failed to update user",
			zap.Error(err),
			zap.String("user_id", user.ID.String()),
		)
		return fmt.Errorf("update user %s: %w", user.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", user.ID.String(), apperr.ErrNotFound)
	}

	return nil
}

func (ur *userRepository) UpdateGuarded(ctx context.Context, user *entity.User, column, token string) error {
	if !tokenColumns[column] {
		return fmt.Errorf("unknown token column %q", column)
	}

	query := fmt.Sprintf(`UPDATE users SET %s WHERE id = $1 AND %s->>'token' = $11`,
		userUpdateSet, column)

	args := append(ur.updateArgs(user), token)
	result, err := ur.db.Exec(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("email %s already registered: %w", user.Email, apperr.ErrDuplicate)
		}
		ur.log.Error("Failed to update user with token guard",
			zap.Error(err),
			zap.String("user_id", user.ID.String()),
			zap.String("column", column),
		)
		return fmt.Errorf("guarded update user %s: %w", user.ID.String(), err)
	}

	// The token was consumed by a concurrent request between our read and
	// this write.
	if result.RowsAffected() == 0 {
		return fmt.Errorf("token no longer valid: %w", apperr.ErrNotFound)
	}

	return nil
}

func (ur *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM users WHERE id = $1`

	result, err := ur.db.Exec(ctx, query, id)
	if err != nil {
		ur.log.Error("Failed to delete user",
			zap.Error(err),
			zap.String("id", id.String()),
		)
		return fmt.Errorf("delete user %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", id.String(), apperr.ErrNotFound)
	}

	ur.log.Info("User deleted", zap.String("id", id.String()))
	return nil
}

func (ur *userRepository) updateArgs(user *entity.User) []any {
	return []any{
		user.ID,
		user.Email,
		user.PasswordHash,
		user.IsVerified,
		user.Role,
		user.PendingEmail,
		user.EmailVerification,
		user.PasswordReset,
		user.EmailUpdate,
		user.UpdatedAt,
	}
}

func (ur *userRepository) scanUser(row pgx.Row) (*entity.User, error) {
	var user entity.User
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.IsVerified,
		&user.Role,
		&user.PendingEmail,
		&user.EmailVerification,
		&user.PasswordReset,
		&user.EmailUpdate,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}
