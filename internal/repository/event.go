package repository

import (
	"context"

	"github.com/osse101/CateringPlanner_Go/internal/domain"
)

// Event defines persistence for catering events
type Event interface {
	ListEvents(ctx context.Context) ([]domain.Event, error)
	// ListEventsByDate returns events whose delivery date is date (YYYY-MM-DD)
	ListEventsByDate(ctx context.Context, date string) ([]domain.Event, error)
	GetEvent(ctx context.Context, id string) (*domain.Event, error)
	InsertEvent(ctx context.Context, event *domain.Event) error
	UpdateEvent(ctx context.Context, event *domain.Event) error
	UpdateEventStatus(ctx context.Context, id string, status domain.EventStatus) error
	DeleteEvent(ctx context.Context, id string) error
}
