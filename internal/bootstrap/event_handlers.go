package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/CateringPlanner_Go/internal/booking"
	"github.com/osse101/CateringPlanner_Go/internal/config"
	"github.com/osse101/CateringPlanner_Go/internal/event"
	"github.com/osse101/CateringPlanner_Go/internal/metrics"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus event.Bus
	Config   *config.Config
	// Notifier overrides the Discord notifier built from Config. Tests use it.
	Notifier *booking.Notifier
}

// RegisterEventHandlers sets up the event subscribers:
// the metrics collector always, and the Discord notifier when webhook
// credentials are configured.
func RegisterEventHandlers(deps EventHandlerDependencies) error {
	metrics.NewEventMetricsCollector().Register(deps.EventBus)
	slog.Info(LogMsgMetricsCollectorRegistered)

	notifier := deps.Notifier
	if notifier == nil && deps.Config != nil && deps.Config.NotificationsEnabled() {
		n, err := booking.NewDiscordNotifier(deps.Config.DiscordWebhookID, deps.Config.DiscordWebhookToken)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedCreateNotifier, err)
		}
		notifier = n
	}

	if notifier == nil {
		slog.Info(LogMsgNotifierDisabled)
		return nil
	}

	notifier.Register(deps.EventBus)
	slog.Info(LogMsgNotifierRegistered)
	return nil
}
