package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/osse101/CateringPlanner_Go/internal/domain"
)

// Events is an in-memory repository.Event
type Events struct {
	mu     sync.RWMutex
	events []domain.Event
	now    func() time.Time
}

// NewEvents creates an empty event store
func NewEvents() *Events {
	return &Events{now: time.Now}
}

func (s *Events) ListEvents(_ context.Context) ([]domain.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Event, len(s.events))
	for i, e := range s.events {
		out[i] = cloneEvent(e)
	}
	return out, nil
}

func (s *Events) ListEventsByDate(_ context.Context, date string) ([]domain.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Event, 0)
	for _, e := range s.events {
		if e.Delivery.DeliveryDate == date {
			out = append(out, cloneEvent(e))
		}
	}
	return out, nil
}

func (s *Events) GetEvent(_ context.Context, id string) (*domain.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.index(id)
	if i < 0 {
		return nil, domain.ErrEventNotFound
	}
	e := cloneEvent(s.events[i])
	return &e, nil
}

func (s *Events) InsertEvent(_ context.Context, event *domain.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.index(event.ID) >= 0 {
		return domain.ErrDuplicateID
	}
	now := s.now()
	event.CreatedAt = now
	event.UpdatedAt = now
	s.events = append(s.events, cloneEvent(*event))
	return nil
}

func (s *Events) UpdateEvent(_ context.Context, event *domain.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(event.ID)
	if i < 0 {
		return domain.ErrEventNotFound
	}
	event.CreatedAt = s.events[i].CreatedAt
	event.UpdatedAt = s.now()
	s.events[i] = cloneEvent(*event)
	return nil
}

func (s *Events) UpdateEventStatus(_ context.Context, id string, status domain.EventStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 {
		return domain.ErrEventNotFound
	}
	s.events[i].Status = status
	s.events[i].UpdatedAt = s.now()
	return nil
}

func (s *Events) DeleteEvent(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 {
		return domain.ErrEventNotFound
	}
	s.events = slices.Delete(s.events, i, i+1)
	return nil
}

func (s *Events) index(id string) int {
	return slices.IndexFunc(s.events, func(e domain.Event) bool { return e.ID == id })
}

func cloneEvent(e domain.Event) domain.Event {
	e.SelectedItems = slices.Clone(e.SelectedItems)
	e.DietaryRestrictions = slices.Clone(e.DietaryRestrictions)
	e.AllergenInfo = slices.Clone(e.AllergenInfo)
	return e
}
