package services

import "context"

// Notifier dispatches user-facing notifications. Implementations are
// best-effort: callers log failures but never propagate them to the
// business flow that triggered the notification.
type Notifier interface {
	// Notify publishes a notification with a title and content body.
	Notify(ctx context.Context, title string, content string) error
}
