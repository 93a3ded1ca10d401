package usecase_test

import (
	"context"

	"todo-app/internal/data/repository"
	"todo-app/pkg/utils"

	"github.com/golang/mock/gomock"
)

// stubMailer records sends on a channel so async dispatches can be awaited.
type stubMailer struct {
	sends chan sentMail
	err   error
}

type sentMail struct {
	To      string
	Subject string
	Body    string
}

func newStubMailer() *stubMailer {
	return &stubMailer{sends: make(chan sentMail, 16)}
}

func (m *stubMailer) Send(_ context.Context, to, subject, body string) error {
	m.sends <- sentMail{To: to, Subject: subject, Body: body}
	return m.err
}

func newTestConfig() *utils.Config {
	return &utils.Config{
		App: utils.AppConfig{
			Name:    "todo-app",
			Port:    "8080",
			BaseURL: "http://localhost:8080",
		},
		Mail: utils.MailConfig{
			From:          "noreply@example.com",
			ExcludeDomain: "expresswebapptemplate.com",
		},
		Token: utils.TokenConfig{
			ExpiryMinutes: 60,
		},
		Session: utils.SessionConfig{
			ExpiryHours: 24,
			CookieName:  "session_token",
		},
	}
}

func newTestRepository(ctrl *gomock.Controller) (
	*repository.Repository,
	*repository.MockUserRepository,
	*repository.MockTodoRepository,
	*repository.MockSessionRepository,
) {
	users := repository.NewMockUserRepository(ctrl)
	todos := repository.NewMockTodoRepository(ctrl)
	sessions := repository.NewMockSessionRepository(ctrl)

	repo := &repository.Repository{
		User:    users,
		Todo:    todos,
		Session: sessions,
	}

	return repo, users, todos, sessions
}
