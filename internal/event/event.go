package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/CateringPlanner_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Booking and catalog event types
const (
	BookingCreated        Type = "booking.created"
	BookingUpdated        Type = "booking.updated"
	BookingStatusChanged  Type = "booking.status_changed"
	BookingDeleted        Type = "booking.deleted"
	ShoppingListGenerated Type = "shopping_list.generated"
	CatalogSynced         Type = "catalog.synced"
)

// BookingPayloadV1 is the typed payload for booking lifecycle events
type BookingPayloadV1 struct {
	EventID      string  `json:"event_id"`
	CustomerName string  `json:"customer_name"`
	EventType    string  `json:"event_type"`
	DeliveryDate string  `json:"delivery_date"`
	GuestCount   int     `json:"guest_count"`
	Status       string  `json:"status"`
	TotalAmount  float64 `json:"total_amount"`
	Timestamp    int64   `json:"timestamp"`
}

// StatusChangedPayloadV1 is the typed payload for status transitions
type StatusChangedPayloadV1 struct {
	EventID      string `json:"event_id"`
	CustomerName string `json:"customer_name"`
	OldStatus    string `json:"old_status"`
	NewStatus    string `json:"new_status"`
	Timestamp    int64  `json:"timestamp"`
}

// ShoppingListPayloadV1 is the typed payload for generated shopping lists
type ShoppingListPayloadV1 struct {
	EventID     string `json:"event_id,omitempty"`
	Filename    string `json:"filename,omitempty"`
	GuestCount  int    `json:"guest_count"`
	RecipeCount int    `json:"recipe_count"`
	LineCount   int    `json:"line_count"`
	Timestamp   int64  `json:"timestamp"`
}

// CatalogSyncedPayloadV1 is the typed payload for catalog seed runs
type CatalogSyncedPayloadV1 struct {
	Source    string `json:"source"`
	Inserted  int    `json:"inserted"`
	Updated   int    `json:"updated"`
	Skipped   int    `json:"skipped"`
	Timestamp int64  `json:"timestamp"`
}

func bookingPayload(e domain.Event) BookingPayloadV1 {
	return BookingPayloadV1{
		EventID:      e.ID,
		CustomerName: e.Customer.FullName,
		EventType:    string(e.EventType),
		DeliveryDate: e.Delivery.DeliveryDate,
		GuestCount:   e.GuestCount,
		Status:       string(e.Status),
		TotalAmount:  e.TotalAmount,
		Timestamp:    time.Now().Unix(),
	}
}

// NewBookingEvent creates a lifecycle event for a catering booking
func NewBookingEvent(eventType Type, e domain.Event) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    eventType,
		Payload: bookingPayload(e),
		Metadata: map[string]interface{}{
			"event_id": e.ID,
		},
	}
}

// NewStatusChangedEvent creates a status transition event
func NewStatusChangedEvent(e domain.Event, oldStatus domain.EventStatus) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    BookingStatusChanged,
		Payload: StatusChangedPayloadV1{
			EventID:      e.ID,
			CustomerName: e.Customer.FullName,
			OldStatus:    string(oldStatus),
			NewStatus:    string(e.Status),
			Timestamp:    time.Now().Unix(),
		},
		Metadata: map[string]interface{}{
			"event_id": e.ID,
		},
	}
}

// NewShoppingListEvent creates a shopping list generated event
func NewShoppingListEvent(eventID, filename string, guestCount, recipeCount, lineCount int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ShoppingListGenerated,
		Payload: ShoppingListPayloadV1{
			EventID:     eventID,
			Filename:    filename,
			GuestCount:  guestCount,
			RecipeCount: recipeCount,
			LineCount:   lineCount,
			Timestamp:   time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewCatalogSyncedEvent creates a catalog sync event
func NewCatalogSyncedEvent(source string, inserted, updated, skipped int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    CatalogSynced,
		Payload: CatalogSyncedPayloadV1{
			Source:    source,
			Inserted:  inserted,
			Updated:   updated,
			Skipped:   skipped,
			Timestamp: time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers.
// Handlers run synchronously in subscription order.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
