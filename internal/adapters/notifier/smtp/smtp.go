package smtp

import (
	"context"
	"file-processor/internal/config"
	"fmt"
	"log/slog"
	"strings"

	"github.com/wneessen/go-mail"
)

type sendFunc func(ctx context.Context, msg *mail.Msg) error

// Mailer sends plain text emails through an SMTP relay. It implements port.Notifier.
type Mailer struct {
	config config.MailConfig
	logger *slog.Logger
	send   sendFunc
}

// NewMailer returns Mailer
func NewMailer(cfg config.MailConfig, logger *slog.Logger) *Mailer {
	m := &Mailer{config: cfg, logger: logger}
	m.send = m.dialAndSend
	return m
}

// Send delivers one message to a single recipient
func (m *Mailer) Send(ctx context.Context, to string, subject string, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg, err := m.newMessage(to, subject, body)
	if err != nil {
		return err
	}

	if err := m.send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", to, err)
	}

	m.logger.Info("mail sent", "to", to, "subject", subject)
	return nil
}

func (m *Mailer) newMessage(to, subject, body string) (*mail.Msg, error) {
	if strings.ContainsAny(subject, "\r\n") {
		return nil, fmt.Errorf("invalid mail subject")
	}

	msg := mail.NewMsg()
	if err := msg.From(m.config.From); err != nil {
		return nil, fmt.Errorf("invalid sender %q: %w", m.config.From, err)
	}
	if err := msg.To(to); err != nil {
		return nil, fmt.Errorf("invalid recipient: %w", err)
	}
	msg.Subject(subject)
	msg.SetDate()
	msg.SetMessageID()
	msg.SetBodyString(mail.TypeTextPlain, body)
	return msg, nil
}

func (m *Mailer) newClient() (*mail.Client, error) {
	opts := []mail.Option{
		mail.WithPort(m.config.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if m.config.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(m.config.Username),
			mail.WithPassword(m.config.Password),
		)
	}
	return mail.NewClient(m.config.Host, opts...)
}

func (m *Mailer) dialAndSend(ctx context.Context, msg *mail.Msg) error {
	client, err := m.newClient()
	if err != nil {
		return fmt.Errorf("failed to create mail client: %w", err)
	}
	return client.DialAndSendWithContext(ctx, msg)
}
