package adaptor_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"todo-app/internal/data/entity"
	"todo-app/internal/data/repository"
	"todo-app/pkg/utils"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type mailerStub struct{}

func (mailerStub) Send(context.Context, string, string, string) error { return nil }

func testConfig() *utils.Config {
	return &utils.Config{
		App: utils.AppConfig{BaseURL: "http://localhost:8080"},
		Mail: utils.MailConfig{
			ExcludeDomain: "expresswebapptemplate.com",
		},
		Token:   utils.TokenConfig{ExpiryMinutes: 60},
		Session: utils.SessionConfig{ExpiryHours: 24, CookieName: "session_token"},
	}
}

func mockRepos(t *testing.T) (*repository.Repository, *repository.MockUserRepository, *repository.MockTodoRepository, *repository.MockSessionRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	users := repository.NewMockUserRepository(ctrl)
	todos := repository.NewMockTodoRepository(ctrl)
	sessions := repository.NewMockSessionRepository(ctrl)

	return &repository.Repository{User: users, Todo: todos, Session: sessions}, users, todos, sessions
}

// asPrincipal binds an authenticated caller into the request context the same
// way the session middleware does.
func asPrincipal(req *http.Request, userID uuid.UUID, role entity.UserRole) *http.Request {
	ctx := utils.SetUserContext(req.Context(), userID, string(role))
	return req.WithContext(ctx)
}

func newID() uuid.UUID {
	return uuid.New()
}

func storedUser(email string, role entity.UserRole) *entity.User {
	now := time.Now()
	return &entity.User{
		Base:         entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Email:        email,
		PasswordHash: "$2a$10$hash",
		IsVerified:   true,
		Role:         role,
	}
}

func storedTodo(ownerID uuid.UUID, task string) *entity.Todo {
	now := time.Now()
	return &entity.Todo{
		Base:      entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Task:      task,
		CreatedBy: ownerID,
	}
}

// decodeBody unwraps the response envelope's data into target.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, target any) {
	t.Helper()

	var envelope struct {
		Status  bool            `json:"status"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.True(t, envelope.Status)
	if target != nil {
		require.NoError(t, json.Unmarshal(envelope.Data, target))
	}
}
