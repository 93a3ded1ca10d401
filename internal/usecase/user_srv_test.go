package usecase_test

import (
	"context"
	"testing"

	"todo-app/internal/data/entity"
	"todo-app/internal/data/repository"
	"todo-app/internal/dto/request"
	"todo-app/internal/usecase"
	"todo-app/pkg/apperr"
	"todo-app/pkg/utils"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newUserService(t *testing.T) (usecase.UserService, *repository.MockUserRepository, *repository.MockSessionRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo, users, _, sessions := newTestRepository(ctrl)
	return usecase.NewUserService(repo, zap.NewNop()), users, sessions
}

func TestUserService_GetByID_NotFound(t *testing.T) {
	svc, users, _ := newUserService(t)

	id := uuid.New()
	users.EXPECT().FindByID(gomock.Any(), id).Return(nil, nil)

	_, err := svc.GetByID(context.Background(), id)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestUserService_GetByEmail(t *testing.T) {
	svc, users, _ := newUserService(t)

	user := testUser("alice@example.com")
	users.EXPECT().FindByEmail(gomock.Any(), "alice@example.com").Return(user, nil)

	got, err := svc.GetByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
}

func TestUserService_List(t *testing.T) {
	svc, users, _ := newUserService(t)

	all := []*entity.User{testUser("a@example.com"), testUser("b@example.com")}

	users.EXPECT().FindAll(gomock.Any(), 10, 0).Return(all, nil)
	users.EXPECT().CountAll(gomock.Any()).Return(int64(2), nil)

	resp, err := svc.List(context.Background(), &request.PaginatedRequest{Page: 1, PerPage: 10})
	require.NoError(t, err)
	assert.Len(t, resp.Data, 2)
	assert.Equal(t, int64(2), resp.Pagination.Total)
	assert.Equal(t, 1, resp.Pagination.TotalPages)
}

func TestUserService_Update(t *testing.T) {
	tests := []struct {
		name        string
		req         request.UpdateUserRequest
		adminFields bool
		wantRole    entity.UserRole
		wantVerify  bool
	}{
		{
			name:        "admin can change role and verified flag",
			req:         request.UpdateUserRequest{Role: "admin", IsVerified: boolPtr(true)},
			adminFields: true,
			wantRole:    entity.RoleAdmin,
			wantVerify:  true,
		},
		{
			name:        "non-admin role change is ignored",
			req:         request.UpdateUserRequest{Role: "admin", IsVerified: boolPtr(true)},
			adminFields: false,
			wantRole:    entity.RoleUser,
			wantVerify:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, users, _ := newUserService(t)

			user := testUser("alice@example.com")

			users.EXPECT().FindByID(gomock.Any(), user.ID).Return(user, nil)
			users.EXPECT().Update(gomock.Any(), user).Return(nil)

			got, err := svc.Update(context.Background(), user.ID, &tt.req, tt.adminFields)
			require.NoError(t, err)
			assert.Equal(t, tt.wantRole, got.Role)
			assert.Equal(t, tt.wantVerify, got.IsVerified)
		})
	}
}

func TestUserService_Update_Password(t *testing.T) {
	svc, users, _ := newUserService(t)

	user := testUser("alice@example.com")

	users.EXPECT().FindByID(gomock.Any(), user.ID).Return(user, nil)
	users.EXPECT().Update(gomock.Any(), user).Return(nil)

	got, err := svc.Update(context.Background(), user.ID,
		&request.UpdateUserRequest{Password: "newSecret123"}, false)
	require.NoError(t, err)
	assert.True(t, utils.CheckPasswordHash("newSecret123", got.PasswordHash))
}

func TestUserService_Delete(t *testing.T) {
	svc, users, sessions := newUserService(t)

	user := testUser("alice@example.com")

	users.EXPECT().FindByID(gomock.Any(), user.ID).Return(user, nil)
	sessions.EXPECT().RevokeAllUserSessions(gomock.Any(), user.ID).Return(nil)
	users.EXPECT().Delete(gomock.Any(), user.ID).Return(nil)

	assert.NoError(t, svc.Delete(context.Background(), user.ID))
}

func TestUserService_Delete_NotFound(t *testing.T) {
	svc, users, _ := newUserService(t)

	id := uuid.New()
	users.EXPECT().FindByID(gomock.Any(), id).Return(nil, nil)

	err := svc.Delete(context.Background(), id)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func boolPtr(b bool) *bool { return &b }
