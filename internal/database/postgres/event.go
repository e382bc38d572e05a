package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/CateringPlanner_Go/internal/domain"
)

const eventColumns = `id, customer_info, delivery_info, event_type, guest_count, selected_items,
	dietary_restrictions, allergen_info, special_requests, status, total_amount, created_at, updated_at`

// EventRepository implements repository.Event for PostgreSQL
type EventRepository struct {
	db *pgxpool.Pool
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{db: db}
}

func scanEvent(row pgx.Row) (*domain.Event, error) {
	var e domain.Event
	err := row.Scan(&e.ID, &e.Customer, &e.Delivery, &e.EventType, &e.GuestCount, &e.SelectedItems,
		&e.DietaryRestrictions, &e.AllergenInfo, &e.SpecialRequests, &e.Status, &e.TotalAmount,
		&e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EventRepository) queryEvents(ctx context.Context, sql string, args ...any) ([]domain.Event, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	events := make([]domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, *e)
	}
	return events, rows.Err()
}

func (r *EventRepository) ListEvents(ctx context.Context) ([]domain.Event, error) {
	return r.queryEvents(ctx, `SELECT `+eventColumns+` FROM events ORDER BY seq`)
}

func (r *EventRepository) ListEventsByDate(ctx context.Context, date string) ([]domain.Event, error) {
	day, err := time.Parse(domain.DeliveryDateLayout, date)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", domain.ErrInvalidInput)
	}
	return r.queryEvents(ctx, `SELECT `+eventColumns+` FROM events WHERE delivery_date = $1 ORDER BY seq`, day)
}

func (r *EventRepository) GetEvent(ctx context.Context, id string) (*domain.Event, error) {
	e, err := scanEvent(r.db.QueryRow(ctx, `SELECT `+eventColumns+` FROM events WHERE id = $1`, id))
	if err != nil {
		return nil, mapNoRows(err, domain.ErrEventNotFound)
	}
	return e, nil
}

// InsertEvent stores the event and fills in its timestamps
func (r *EventRepository) InsertEvent(ctx context.Context, e *domain.Event) error {
	day, err := e.DeliveryDay()
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}

	err = r.db.QueryRow(ctx, `
		INSERT INTO events (id, customer_info, delivery_info, delivery_date, event_type, guest_count,
			selected_items, dietary_restrictions, allergen_info, special_requests, status, total_amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING created_at, updated_at`,
		e.ID, e.Customer, e.Delivery, day, e.EventType, e.GuestCount,
		nonNil(e.SelectedItems), nonNil(e.DietaryRestrictions), nonNil(e.AllergenInfo),
		e.SpecialRequests, e.Status, e.TotalAmount).
		Scan(&e.CreatedAt, &e.UpdatedAt)
	if isUniqueViolation(err) {
		return domain.ErrDuplicateID
	}
	if err != nil {
		return fmt.Errorf("failed to insert event: %w", err)
	}
	return nil
}

// UpdateEvent replaces every mutable column and bumps updated_at
func (r *EventRepository) UpdateEvent(ctx context.Context, e *domain.Event) error {
	day, err := e.DeliveryDay()
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}

	err = r.db.QueryRow(ctx, `
		UPDATE events
		SET customer_info = $2, delivery_info = $3, delivery_date = $4, event_type = $5,
			guest_count = $6, selected_items = $7, dietary_restrictions = $8, allergen_info = $9,
			special_requests = $10, status = $11, total_amount = $12, updated_at = NOW()
		WHERE id = $1
		RETURNING created_at, updated_at`,
		e.ID, e.Customer, e.Delivery, day, e.EventType, e.GuestCount,
		nonNil(e.SelectedItems), nonNil(e.DietaryRestrictions), nonNil(e.AllergenInfo),
		e.SpecialRequests, e.Status, e.TotalAmount).
		Scan(&e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return mapNoRows(err, domain.ErrEventNotFound)
	}
	return nil
}

func (r *EventRepository) UpdateEventStatus(ctx context.Context, id string, status domain.EventStatus) error {
	tag, err := r.db.Exec(ctx, `UPDATE events SET status = $2, updated_at = NOW() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("failed to update event status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

func (r *EventRepository) DeleteEvent(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}
