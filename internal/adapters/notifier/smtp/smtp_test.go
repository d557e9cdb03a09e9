package smtp

import (
	"bytes"
	"context"
	"file-processor/internal/config"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wneessen/go-mail"
)

func newTestMailer(cfg config.MailConfig, captured **mail.Msg, sendErr error) *Mailer {
	m := NewMailer(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	m.send = func(_ context.Context, msg *mail.Msg) error {
		*captured = msg
		return sendErr
	}
	return m
}

func TestMailer_Send(t *testing.T) {
	cfg := config.MailConfig{Host: "mail.local", Port: 2525, From: "noreply@file-processor.local"}

	t.Run("Success", func(t *testing.T) {
		// Arrange
		var captured *mail.Msg
		mailer := newTestMailer(cfg, &captured, nil)

		// Act
		err := mailer.Send(context.Background(), "alice@example.com", "Your file has been processed", "Hello alice,\n\nDone.")

		// Assert
		require.NoError(t, err)
		require.NotNil(t, captured)
		require.Len(t, captured.GetFrom(), 1)
		assert.Equal(t, cfg.From, captured.GetFrom()[0].Address)
		require.Len(t, captured.GetTo(), 1)
		assert.Equal(t, "alice@example.com", captured.GetTo()[0].Address)
		assert.Equal(t, []string{"Your file has been processed"}, captured.GetGenHeader(mail.HeaderSubject))
		assert.NotEmpty(t, captured.GetGenHeader(mail.HeaderDate))

		var rendered bytes.Buffer
		_, err = captured.WriteTo(&rendered)
		require.NoError(t, err)
		assert.Contains(t, rendered.String(), "text/plain")
		assert.Contains(t, rendered.String(), "Hello alice,")
	})

	t.Run("Relay error is returned", func(t *testing.T) {
		// Arrange
		var captured *mail.Msg
		mailer := newTestMailer(cfg, &captured, assert.AnError)

		// Act
		err := mailer.Send(context.Background(), "alice@example.com", "s", "b")

		// Assert
		require.ErrorIs(t, err, assert.AnError)
	})

	t.Run("Header injection in recipient is rejected", func(t *testing.T) {
		// Arrange
		var captured *mail.Msg
		mailer := newTestMailer(cfg, &captured, nil)

		// Act
		err := mailer.Send(context.Background(), "alice@example.com\r\nBcc: eve@example.com", "s", "b")

		// Assert
		require.Error(t, err)
		assert.Nil(t, captured)
	})

	t.Run("Header injection in subject is rejected", func(t *testing.T) {
		// Arrange
		var captured *mail.Msg
		mailer := newTestMailer(cfg, &captured, nil)

		// Act
		err := mailer.Send(context.Background(), "alice@example.com", "s\r\nBcc: eve@example.com", "b")

		// Assert
		require.Error(t, err)
		assert.Nil(t, captured)
	})

	t.Run("Cancelled context sends nothing", func(t *testing.T) {
		// Arrange
		var captured *mail.Msg
		mailer := newTestMailer(cfg, &captured, nil)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		// Act
		err := mailer.Send(ctx, "alice@example.com", "s", "b")

		// Assert
		require.ErrorIs(t, err, context.Canceled)
		assert.Nil(t, captured)
	})
}

func TestMailer_NewClient(t *testing.T) {
	t.Run("Anonymous relay", func(t *testing.T) {
		mailer := NewMailer(config.MailConfig{Host: "mail.local", Port: 2525}, slog.New(slog.NewTextHandler(io.Discard, nil)))

		client, err := mailer.newClient()

		require.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("Plain auth", func(t *testing.T) {
		mailer := NewMailer(config.MailConfig{Host: "mail.local", Port: 587, Username: "user", Password: "pass"},
			slog.New(slog.NewTextHandler(io.Discard, nil)))

		client, err := mailer.newClient()

		require.NoError(t, err)
		assert.NotNil(t, client)
	})
}
