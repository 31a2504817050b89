package notification

import (
	"context"

	portssvc "github.com/pjfinancas/financas_backend/internal/core/ports/services"
)

// NopNotifier discards notifications. Used when no AMQP broker is configured.
type NopNotifier struct{}

// Ensure NopNotifier implements the Notifier port
var _ portssvc.Notifier = (*NopNotifier)(nil)

func (NopNotifier) Notify(ctx context.Context, title string, content string) error {
	return nil
}
