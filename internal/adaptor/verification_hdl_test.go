package adaptor_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"todo-app/internal/adaptor"
	"todo-app/internal/data/entity"
	"todo-app/internal/data/repository"
	"todo-app/internal/usecase"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newVerificationHandler(t *testing.T) (*adaptor.VerificationHandler, *repository.MockUserRepository, *repository.MockSessionRepository) {
	t.Helper()

	repo, users, _, sessions := mockRepos(t)
	svc := usecase.NewVerificationService(repo, mailerStub{}, testConfig(), zap.NewNop())
	return adaptor.NewVerificationHandler(svc, zap.NewNop()), users, sessions
}

func TestVerificationHandler_VerifyEmail(t *testing.T) {
	h, users, _ := newVerificationHandler(t)

	user := storedUser("alice@example.com", entity.RoleUser)
	user.IsVerified = false
	user.EmailVerification = entity.NewTokenRecord("tok-ok", time.Hour)

	users.EXPECT().
		FindByToken(gomock.Any(), repository.TokenColumnEmailVerification, "tok-ok").
		Return(user, nil)
	users.EXPECT().
		UpdateGuarded(gomock.Any(), gomock.Any(), repository.TokenColumnEmailVerification, "tok-ok").
		Return(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/verify-email?token=tok-ok", nil)
	rec := httptest.NewRecorder()

	h.VerifyEmail(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestVerificationHandler_VerifyEmail_TokenStates(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		setup    func(users *repository.MockUserRepository)
		wantCode int
	}{
		{
			name:     "missing token",
			url:      "/api/verify-email",
			setup:    func(*repository.MockUserRepository) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "unknown token",
			url:  "/api/verify-email?token=tok-unknown",
			setup: func(users *repository.MockUserRepository) {
				users.EXPECT().
					FindByToken(gomock.Any(), repository.TokenColumnEmailVerification, "tok-unknown").
					Return(nil, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "expired token",
			url:  "/api/verify-email?token=tok-expired",
			setup: func(users *repository.MockUserRepository) {
				user := storedUser("alice@example.com", entity.RoleUser)
				past := time.Now().Add(-time.Minute)
				user.EmailVerification = entity.TokenRecord{Token: "tok-expired", ExpiresAt: &past}
				users.EXPECT().
					FindByToken(gomock.Any(), repository.TokenColumnEmailVerification, "tok-expired").
					Return(user, nil)
			},
			wantCode: http.StatusGone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, users, _ := newVerificationHandler(t)
			tt.setup(users)

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			rec := httptest.NewRecorder()

			h.VerifyEmail(rec, req)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestVerificationHandler_SendPasswordResetEmail_AlwaysCreated(t *testing.T) {
	h, users, _ := newVerificationHandler(t)

	// Unknown address still gets the same response as a known one.
	users.EXPECT().FindByEmail(gomock.Any(), "ghost@example.com").Return(nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/send-password-reset-email",
		strings.NewReader(`{"email":"ghost@example.com"}`))
	rec := httptest.NewRecorder()

	h.SendPasswordResetEmail(rec, req)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "If the email is registered")
}

func TestVerificationHandler_ResetPassword(t *testing.T) {
	h, users, sessions := newVerificationHandler(t)

	user := storedUser("alice@example.com", entity.RoleUser)
	user.PasswordReset = entity.NewTokenRecord("tok-reset", time.Hour)

	users.EXPECT().
		FindByToken(gomock.Any(), repository.TokenColumnPasswordReset, "tok-reset").
		Return(user, nil)
	users.EXPECT().
		UpdateGuarded(gomock.Any(), gomock.Any(), repository.TokenColumnPasswordReset, "tok-reset").
		Return(nil)
	sessions.EXPECT().RevokeAllUserSessions(gomock.Any(), user.ID).Return(nil)

	req := httptest.NewRequest(http.MethodPut, "/api/reset-password?token=tok-reset",
		strings.NewReader(`{"password":"newSecret123","confirmPassword":"newSecret123"}`))
	rec := httptest.NewRecorder()

	h.ResetPassword(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestVerificationHandler_ResetPassword_ConfirmMismatch(t *testing.T) {
	h, _, _ := newVerificationHandler(t)

	req := httptest.NewRequest(http.MethodPut, "/api/reset-password?token=tok-reset",
		strings.NewReader(`{"password":"newSecret123","confirmPassword":"other"}`))
	rec := httptest.NewRecorder()

	h.ResetPassword(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Must match Password")
}

func TestVerificationHandler_RequestEmailChange(t *testing.T) {
	h, users, _ := newVerificationHandler(t)

	user := storedUser("alice@example.com", entity.RoleUser)

	users.EXPECT().FindByID(gomock.Any(), user.ID).Return(user, nil)
	users.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/request-email-change",
		strings.NewReader(`{"email":"alice.new@example.com"}`))
	req = asPrincipal(req, user.ID, entity.RoleUser)
	rec := httptest.NewRecorder()

	h.RequestEmailChange(rec, req)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestVerificationHandler_RequestEmailChange_Unauthenticated(t *testing.T) {
	h, _, _ := newVerificationHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/request-email-change",
		strings.NewReader(`{"email":"alice.new@example.com"}`))
	rec := httptest.NewRecorder()

	h.RequestEmailChange(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestVerificationHandler_UpdateEmail(t *testing.T) {
	h, users, _ := newVerificationHandler(t)

	pending := "alice.new@example.com"
	user := storedUser("alice@example.com", entity.RoleUser)
	user.EmailUpdate = entity.NewTokenRecord("tok-change", time.Hour)
	user.PendingEmail = &pending

	users.EXPECT().
		FindByToken(gomock.Any(), repository.TokenColumnEmailUpdate, "tok-change").
		Return(user, nil)
	users.EXPECT().
		UpdateGuarded(gomock.Any(), gomock.Any(), repository.TokenColumnEmailUpdate, "tok-change").
		Return(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/update-email?token=tok-change", nil)
	rec := httptest.NewRecorder()

	h.UpdateEmail(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
