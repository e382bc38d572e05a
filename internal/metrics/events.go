package metrics

import (
	"context"

	"github.com/osse101/CateringPlanner_Go/internal/event"
	"github.com/osse101/CateringPlanner_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) {
	eventTypes := []event.Type{
		event.BookingCreated,
		event.BookingUpdated,
		event.BookingStatusChanged,
		event.BookingDeleted,
		event.ShoppingListGenerated,
		event.CatalogSynced,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.BookingCreated:
		payload, err := event.DecodePayload[event.BookingPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgEventPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}
		BookingsCreated.WithLabelValues(payload.EventType).Inc()
		BookedGuests.Add(float64(payload.GuestCount))

	case event.BookingStatusChanged:
		payload, err := event.DecodePayload[event.StatusChangedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgEventPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}
		BookingStatusChanges.WithLabelValues(payload.OldStatus, payload.NewStatus).Inc()

	case event.ShoppingListGenerated:
		payload, err := event.DecodePayload[event.ShoppingListPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgEventPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}
		source := SourceAdHoc
		if payload.EventID != "" {
			source = SourceEvent
		}
		ShoppingListsGenerated.WithLabelValues(source).Inc()
		ShoppingListLines.Observe(float64(payload.LineCount))

	case event.CatalogSynced:
		payload, err := event.DecodePayload[event.CatalogSyncedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgEventPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}
		CatalogSyncRecords.WithLabelValues(OutcomeInserted).Add(float64(payload.Inserted))
		CatalogSyncRecords.WithLabelValues(OutcomeUpdated).Add(float64(payload.Updated))
		CatalogSyncRecords.WithLabelValues(OutcomeSkipped).Add(float64(payload.Skipped))
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
