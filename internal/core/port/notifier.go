package port

import "context"

// Notifier sends a message to a user
type Notifier interface {
	Send(ctx context.Context, to string, subject string, body string) error
}
