package event

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CateringPlanner_Go/internal/domain"
)

func sampleBooking() domain.Event {
	return domain.Event{
		ID:         "evt-1",
		Customer:   domain.CustomerInfo{FullName: "Asha Rao"},
		Delivery:   domain.DeliveryInfo{DeliveryDate: "2026-11-02"},
		EventType:  domain.EventTypeWedding,
		GuestCount: 150,
		Status:     domain.EventStatusPending,
	}
}

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	var got Event

	bus.Subscribe(BookingCreated, func(ctx context.Context, e Event) error {
		got = e
		return nil
	})

	err := bus.Publish(context.Background(), NewBookingEvent(BookingCreated, sampleBooking()))
	require.NoError(t, err)

	assert.Equal(t, BookingCreated, got.Type)
	assert.Equal(t, EventSchemaVersion, got.Version)
	assert.Equal(t, "evt-1", got.GetMetadataValue("event_id"))

	payload, err := DecodePayload[BookingPayloadV1](got.Payload)
	require.NoError(t, err)
	assert.Equal(t, "Asha Rao", payload.CustomerName)
	assert.Equal(t, 150, payload.GuestCount)
	assert.Equal(t, "pending", payload.Status)
}

func TestMemoryBus_PublishMultipleHandlers(t *testing.T) {
	bus := NewMemoryBus()
	count := 0

	handler := func(ctx context.Context, e Event) error {
		count++
		return nil
	}

	bus.Subscribe(BookingDeleted, handler)
	bus.Subscribe(BookingDeleted, handler)

	require.NoError(t, bus.Publish(context.Background(), Event{Version: EventSchemaVersion, Type: BookingDeleted}))
	assert.Equal(t, 2, count)
}

func TestMemoryBus_NoSubscribers(t *testing.T) {
	bus := NewMemoryBus()
	assert.NoError(t, bus.Publish(context.Background(), Event{Type: CatalogSynced}))
}

func TestMemoryBus_PublishError(t *testing.T) {
	bus := NewMemoryBus()

	bus.Subscribe(BookingUpdated, func(ctx context.Context, e Event) error {
		return errors.New("handler error")
	})

	err := bus.Publish(context.Background(), Event{Version: EventSchemaVersion, Type: BookingUpdated})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), string(BookingUpdated))
}

func TestNewStatusChangedEvent(t *testing.T) {
	b := sampleBooking()
	b.Status = domain.EventStatusConfirmed

	e := NewStatusChangedEvent(b, domain.EventStatusPending)

	payload, ok := e.Payload.(StatusChangedPayloadV1)
	require.True(t, ok)
	assert.Equal(t, "pending", payload.OldStatus)
	assert.Equal(t, "confirmed", payload.NewStatus)
}

func TestDecodePayload_FromMap(t *testing.T) {
	raw := map[string]interface{}{
		"source":   "configs/catalog.yaml",
		"inserted": 3,
		"skipped":  1,
	}

	payload, err := DecodePayload[CatalogSyncedPayloadV1](raw)
	require.NoError(t, err)
	assert.Equal(t, "configs/catalog.yaml", payload.Source)
	assert.Equal(t, 3, payload.Inserted)
	assert.Equal(t, 1, payload.Skipped)
}

func TestGetMetadataValue_Nil(t *testing.T) {
	assert.Nil(t, NewShoppingListEvent("", "", 10, 1, 2).GetMetadataValue("event_id"))
}

func TestCalculateRetryDelay(t *testing.T) {
	base := 2 * time.Second
	assert.Equal(t, 2*time.Second, CalculateRetryDelay(base, 0))
	assert.Equal(t, 2*time.Second, CalculateRetryDelay(base, 1))
	assert.Equal(t, 8*time.Second, CalculateRetryDelay(base, 3))
	assert.Equal(t, 32*time.Second, CalculateRetryDelay(base, 5))
	assert.Equal(t, MaxRetryDelay, CalculateRetryDelay(base, 40))
}
