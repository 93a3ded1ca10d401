package mailer

import (
	"context"
	"fmt"

	"todo-app/pkg/utils"

	mail "github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

// Mailer is the notification gateway: deliver one transactional message.
// Callers treat delivery as best effort; failures are logged, never
// propagated to the enclosing request.
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

type smtpMailer struct {
	config utils.MailConfig
	log    *zap.Logger
}

func NewSMTPMailer(config utils.MailConfig, log *zap.Logger) Mailer {
	return &smtpMailer{
		config: config,
		log:    log.With(zap.String("component", "mailer")),
	}
}

func (m *smtpMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	msg := mail.NewMsg()
	if err := msg.From(m.config.From); err != nil {
		return fmt.Errorf("set sender %s: %w", m.config.From, err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("set recipient %s: %w", to, err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)

	client, err := mail.NewClient(m.config.Host,
		mail.WithPort(m.config.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.config.User),
		mail.WithPassword(m.config.Password),
	)
	if err != nil {
		return fmt.Errorf("create mail client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}

	m.log.Info("Mail sent",
		zap.String("to", to),
		zap.String("subject", subject),
	)

	return nil
}
