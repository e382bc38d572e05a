package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CateringPlanner_Go/internal/domain"
)

func newTestEvents() *Events {
	s := NewEvents()
	clock := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	s.now = func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}
	return s
}

func booking(id, date string) *domain.Event {
	return &domain.Event{
		ID:            id,
		Customer:      domain.CustomerInfo{FullName: "Test " + id},
		Delivery:      domain.DeliveryInfo{DeliveryDate: date},
		GuestCount:    10,
		SelectedItems: []domain.SelectedItem{{Type: domain.SelectionIndividual, ItemID: "m1", Quantity: 1}},
		Status:        domain.EventStatusPending,
	}
}

func TestEvents_InsertAndListByDate(t *testing.T) {
	s := newTestEvents()
	ctx := context.Background()

	require.NoError(t, s.InsertEvent(ctx, booking("e1", "2026-11-01")))
	require.NoError(t, s.InsertEvent(ctx, booking("e2", "2026-11-02")))
	require.NoError(t, s.InsertEvent(ctx, booking("e3", "2026-11-01")))

	onDay, err := s.ListEventsByDate(ctx, "2026-11-01")
	require.NoError(t, err)
	require.Len(t, onDay, 2)
	assert.Equal(t, "e1", onDay[0].ID)
	assert.Equal(t, "e3", onDay[1].ID)

	all, err := s.ListEvents(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestEvents_UpdateKeepsCreatedAt(t *testing.T) {
	s := newTestEvents()
	ctx := context.Background()

	e := booking("e1", "2026-11-01")
	require.NoError(t, s.InsertEvent(ctx, e))
	created := e.CreatedAt

	e.GuestCount = 80
	e.CreatedAt = time.Time{}
	require.NoError(t, s.UpdateEvent(ctx, e))

	got, err := s.GetEvent(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, 80, got.GuestCount)
	assert.Equal(t, created, got.CreatedAt)
	assert.True(t, got.UpdatedAt.After(created))
}

func TestEvents_UpdateStatus(t *testing.T) {
	s := newTestEvents()
	ctx := context.Background()

	require.NoError(t, s.InsertEvent(ctx, booking("e1", "2026-11-01")))
	require.NoError(t, s.UpdateEventStatus(ctx, "e1", domain.EventStatusConfirmed))

	got, err := s.GetEvent(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, domain.EventStatusConfirmed, got.Status)
}

func TestEvents_NotFound(t *testing.T) {
	s := newTestEvents()
	ctx := context.Background()

	_, err := s.GetEvent(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
	assert.ErrorIs(t, s.UpdateEvent(ctx, booking("missing", "2026-01-01")), domain.ErrEventNotFound)
	assert.ErrorIs(t, s.UpdateEventStatus(ctx, "missing", domain.EventStatusCompleted), domain.ErrEventNotFound)
	assert.ErrorIs(t, s.DeleteEvent(ctx, "missing"), domain.ErrEventNotFound)
}

func TestEvents_Delete(t *testing.T) {
	s := newTestEvents()
	ctx := context.Background()

	require.NoError(t, s.InsertEvent(ctx, booking("e1", "2026-11-01")))
	require.NoError(t, s.DeleteEvent(ctx, "e1"))

	all, err := s.ListEvents(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
