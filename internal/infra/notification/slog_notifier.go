package notification

import (
	"log/slog"

	"larder/internal/domain/service"
)

type slogNotifier struct {
	logger *slog.Logger
}

// NewSlogNotifier creates a notification sink that surfaces user-facing
// notifications on the structured log. The presentation layer is free to
// replace this with a push channel; callers never block on delivery.
func NewSlogNotifier(logger *slog.Logger) service.Notifier {
	return &slogNotifier{logger: logger}
}

func (n *slogNotifier) Notify(kind service.NotificationKind, title, detail string) {
	switch kind {
	case service.NotificationError:
		n.logger.Warn("user notification",
			slog.String("kind", string(kind)),
			slog.String("title", title),
			slog.String("detail", detail),
		)
	default:
		n.logger.Info("user notification",
			slog.String("kind", string(kind)),
			slog.String("title", title),
			slog.String("detail", detail),
		)
	}
}
