package booking

import (
	"context"
	"fmt"
	"strconv"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/CateringPlanner_Go/internal/event"
	"github.com/osse101/CateringPlanner_Go/internal/logger"
	"github.com/osse101/CateringPlanner_Go/internal/metrics"
)

// WebhookExecutor posts a message to a Discord webhook. *discordgo.Session satisfies it.
type WebhookExecutor interface {
	WebhookExecute(webhookID, token string, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Notifier announces new bookings and status changes on a Discord channel
type Notifier struct {
	client    WebhookExecutor
	webhookID string
	token     string
}

// NewDiscordNotifier creates a notifier backed by a token-less discordgo session
func NewDiscordNotifier(webhookID, token string) (*Notifier, error) {
	session, err := discordgo.New("")
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}
	return NewNotifier(session, webhookID, token), nil
}

// NewNotifier creates a notifier using client
func NewNotifier(client WebhookExecutor, webhookID, token string) *Notifier {
	return &Notifier{client: client, webhookID: webhookID, token: token}
}

// Register subscribes the notifier to booking events
func (n *Notifier) Register(bus event.Bus) {
	bus.Subscribe(event.BookingCreated, n.HandleEvent)
	bus.Subscribe(event.BookingStatusChanged, n.HandleEvent)
}

// HandleEvent sends one webhook message. Failures are logged and never returned,
// so a Discord outage cannot fail a booking.
func (n *Notifier) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	embed, err := n.embedFor(evt)
	if err != nil {
		log.Warn(LogMsgNotificationPayload, "type", evt.Type, "error", err)
		return nil
	}
	if embed == nil {
		return nil
	}

	_, err = n.client.WebhookExecute(n.webhookID, n.token, false, &discordgo.WebhookParams{
		Username: NotifierUsername,
		Embeds:   []*discordgo.MessageEmbed{embed},
	})
	if err != nil {
		metrics.NotificationsSent.WithLabelValues(metrics.ResultFailure).Inc()
		log.Warn(LogMsgNotificationFailed, "type", evt.Type, "error", err)
		return nil
	}

	metrics.NotificationsSent.WithLabelValues(metrics.ResultSuccess).Inc()
	log.Debug(LogMsgNotificationSent, "type", evt.Type)
	return nil
}

func (n *Notifier) embedFor(evt event.Event) (*discordgo.MessageEmbed, error) {
	switch evt.Type {
	case event.BookingCreated:
		p, err := event.DecodePayload[event.BookingPayloadV1](evt.Payload)
		if err != nil {
			return nil, err
		}
		return &discordgo.MessageEmbed{
			Title: NotifyCreatedTitle,
			Color: NotifyCreatedColor,
			Fields: []*discordgo.MessageEmbedField{
				{Name: "Customer", Value: p.CustomerName, Inline: true},
				{Name: "Type", Value: p.EventType, Inline: true},
				{Name: "Delivery", Value: p.DeliveryDate, Inline: true},
				{Name: "Guests", Value: strconv.Itoa(p.GuestCount), Inline: true},
				{Name: "Total", Value: strconv.FormatFloat(p.TotalAmount, 'f', 2, 64), Inline: true},
			},
		}, nil

	case event.BookingStatusChanged:
		p, err := event.DecodePayload[event.StatusChangedPayloadV1](evt.Payload)
		if err != nil {
			return nil, err
		}
		return &discordgo.MessageEmbed{
			Title:       fmt.Sprintf(NotifyStatusTitleFormat, p.NewStatus),
			Description: fmt.Sprintf("%s: %s -> %s", p.CustomerName, p.OldStatus, p.NewStatus),
			Color:       NotifyStatusColor,
		}, nil
	}

	return nil, nil
}
