package repository

import (
	"context"
	"testing"
	"time"

	"todo-app/internal/data/entity"
	"todo-app/pkg/apperr"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var userRowColumns = []string{
	"id", "email", "password", "is_verified", "role", "pending_email",
	"email_verification", "password_reset", "email_update",
	"created_at", "updated_at",
}

func newUserRepoTest(t *testing.T) (UserRepository, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return NewUserRepository(mock, zap.NewNop()), mock
}

func userRow(user *entity.User) *pgxmock.Rows {
	return pgxmock.NewRows(userRowColumns).AddRow(
		user.ID, user.Email, user.PasswordHash, user.IsVerified, user.Role,
		user.PendingEmail, user.EmailVerification, user.PasswordReset,
		user.EmailUpdate, user.CreatedAt, user.UpdatedAt,
	)
}

func fixtureUser() *entity.User {
	now := time.Now()
	return &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Email:        "alice@example.com",
		PasswordHash: "$2a$10$hash",
		IsVerified:   true,
		Role:         entity.RoleUser,
	}
}

func TestUserRepository_FindByID(t *testing.T) {
	repo, mock := newUserRepoTest(t)

	user := fixtureUser()

	mock.ExpectQuery(`SELECT (.+) FROM users WHERE id = \$1`).
		WithArgs(user.ID).
		WillReturnRows(userRow(user))

	got, err := repo.FindByID(context.Background(), user.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, user.Email, got.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByEmail_NoRows(t *testing.T) {
	repo, mock := newUserRepoTest(t)

	mock.ExpectQuery(`SELECT (.+) FROM users WHERE email = \$1`).
		WithArgs("ghost@example.com").
		WillReturnRows(pgxmock.NewRows(userRowColumns))

	got, err := repo.FindByEmail(context.Background(), "ghost@example.com")
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByToken(t *testing.T) {
	repo, mock := newUserRepoTest(t)

	user := fixtureUser()
	user.PasswordReset = entity.NewTokenRecord("tok-reset", time.Hour)

	mock.ExpectQuery(`SELECT (.+) FROM users WHERE password_reset->>'token' = \$1`).
		WithArgs("tok-reset").
		WillReturnRows(userRow(user))

	got, err := repo.FindByToken(context.Background(), TokenColumnPasswordReset, "tok-reset")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "tok-reset", got.PasswordReset.Token)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByToken_UnknownColumn(t *testing.T) {
	repo, _ := newUserRepoTest(t)

	// Column names are interpolated into SQL, so anything outside the
	// whitelist is rejected before touching the database.
	_, err := repo.FindByToken(context.Background(), "role", "tok")
	assert.Error(t, err)
}

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	repo, mock := newUserRepoTest(t)

	user := fixtureUser()

	mock.ExpectExec(`INSERT INTO users`).
		WithArgs(user.ID, user.Email, user.PasswordHash, user.IsVerified,
			user.Role, user.PendingEmail, user.EmailVerification,
			user.PasswordReset, user.EmailUpdate, user.CreatedAt, user.UpdatedAt).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	err := repo.Create(context.Background(), user)
	assert.ErrorIs(t, err, apperr.ErrDuplicate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_UpdateGuarded_TokenConsumed(t *testing.T) {
	repo, mock := newUserRepoTest(t)

	user := fixtureUser()

	// Zero rows affected: the guard column no longer holds the token.
	mock.ExpectExec(`UPDATE users SET (.+) WHERE id = \$1 AND email_verification->>'token' = \$11`).
		WithArgs(user.ID, user.Email, user.PasswordHash, user.IsVerified,
			user.Role, user.PendingEmail, user.EmailVerification,
			user.PasswordReset, user.EmailUpdate, user.UpdatedAt, "tok-gone").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.UpdateGuarded(context.Background(), user, TokenColumnEmailVerification, "tok-gone")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Delete_NotFound(t *testing.T) {
	repo, mock := newUserRepoTest(t)

	id := uuid.New()

	mock.ExpectExec(`DELETE FROM users WHERE id = \$1`).
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := repo.Delete(context.Background(), id)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
