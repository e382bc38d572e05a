// Package booking records catering events and produces their shopping lists.
package booking

import (
	"context"
	"fmt"
	"slices"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/osse101/CateringPlanner_Go/internal/domain"
	"github.com/osse101/CateringPlanner_Go/internal/event"
	"github.com/osse101/CateringPlanner_Go/internal/logger"
	"github.com/osse101/CateringPlanner_Go/internal/pricing"
	"github.com/osse101/CateringPlanner_Go/internal/repository"
	"github.com/osse101/CateringPlanner_Go/internal/shopping"
	"github.com/osse101/CateringPlanner_Go/internal/validation"
)

// Catalog is the subset of the catalog service bookings depend on
type Catalog interface {
	ListMenuItems(ctx context.Context) ([]domain.MenuItem, error)
	GetRecipe(ctx context.Context, id string) (*domain.Recipe, error)
	RecipesForMenuItems(ctx context.Context, menuItemIDs []string) ([]domain.Recipe, error)
}

// ShoppingListExport is a rendered list ready to be downloaded
type ShoppingListExport struct {
	Content  string               `json:"content"`
	Filename string               `json:"filename"`
	Groups   []shopping.UnitGroup `json:"groups"`
}

// AdHocRequest asks for a shopping list outside of any event.
// Recipes named by ID are looked up first, inline recipes follow in order.
type AdHocRequest struct {
	GuestCount int            `json:"guest_count" validate:"gte=1"`
	RecipeIDs  []string       `json:"recipe_ids"`
	Recipes    []InlineRecipe `json:"recipes" validate:"dive"`
}

// InlineRecipe is an uncatalogued recipe sent with an ad-hoc request.
// Only the ingredients reach the list; the name is optional.
type InlineRecipe struct {
	Name        string              `json:"name,omitempty" validate:"max=100"`
	Ingredients []domain.Ingredient `json:"ingredients" validate:"dive"`
}

// Service defines the interface for event operations
type Service interface {
	CreateEvent(ctx context.Context, e domain.Event) (*domain.Event, error)
	UpdateEvent(ctx context.Context, id string, e domain.Event) (*domain.Event, error)
	UpdateStatus(ctx context.Context, id string, status domain.EventStatus) (*domain.Event, error)
	GetEvent(ctx context.Context, id string) (*domain.Event, error)
	DeleteEvent(ctx context.Context, id string) error
	ListEvents(ctx context.Context) ([]domain.Event, error)
	// EventsOnDate returns the events delivered on date (YYYY-MM-DD)
	EventsOnDate(ctx context.Context, date string) ([]domain.Event, error)
	ShoppingList(ctx context.Context, id string) (*ShoppingListExport, error)
	AdHocShoppingList(ctx context.Context, req AdHocRequest) (*ShoppingListExport, error)
}

type service struct {
	repo      repository.Event
	catalog   Catalog
	bus       event.Bus
	formatter *shopping.Formatter
	validate  *validator.Validate
}

// NewService creates a new booking service. bus may be nil.
func NewService(repo repository.Event, catalog Catalog, bus event.Bus, formatter *shopping.Formatter) Service {
	if formatter == nil {
		formatter = shopping.NewFormatter(nil)
	}
	return &service{
		repo:      repo,
		catalog:   catalog,
		bus:       bus,
		formatter: formatter,
		validate:  validation.NewStructValidator(),
	}
}

func (s *service) validateStruct(v interface{}) error {
	if err := s.validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}
	return nil
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}

func (s *service) total(ctx context.Context, e *domain.Event) error {
	items, err := s.catalog.ListMenuItems(ctx)
	if err != nil {
		return fmt.Errorf("failed to load menu for pricing: %w", err)
	}
	e.TotalAmount = pricing.EventTotal(e.SelectedItems, pricing.IndexMenu(items), e.GuestCount)
	return nil
}

func (s *service) CreateEvent(ctx context.Context, e domain.Event) (*domain.Event, error) {
	if err := s.validateStruct(e); err != nil {
		return nil, err
	}
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Status == "" {
		e.Status = domain.EventStatusPending
	}
	if err := s.total(ctx, &e); err != nil {
		return nil, err
	}

	if err := s.repo.InsertEvent(ctx, &e); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	logger.FromContext(ctx).Info(LogMsgEventCreated,
		"event_id", e.ID,
		"event_type", e.EventType,
		"guests", e.GuestCount,
		"delivery_date", e.Delivery.DeliveryDate)
	s.publish(ctx, event.NewBookingEvent(event.BookingCreated, e))
	return &e, nil
}

func (s *service) UpdateEvent(ctx context.Context, id string, e domain.Event) (*domain.Event, error) {
	existing, err := s.repo.GetEvent(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	e.ID = id
	if e.Status == "" {
		e.Status = existing.Status
	}
	if err := s.validateStruct(e); err != nil {
		return nil, err
	}
	if err := checkTransition(existing.Status, e.Status); err != nil {
		return nil, err
	}
	if err := s.total(ctx, &e); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateEvent(ctx, &e); err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}

	logger.FromContext(ctx).Info(LogMsgEventUpdated, "event_id", id)
	s.publish(ctx, event.NewBookingEvent(event.BookingUpdated, e))
	if existing.Status != e.Status {
		s.publish(ctx, event.NewStatusChangedEvent(e, existing.Status))
	}
	return &e, nil
}

func (s *service) UpdateStatus(ctx context.Context, id string, status domain.EventStatus) (*domain.Event, error) {
	if !domain.ValidEventStatuses[status] {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, status)
	}

	e, err := s.repo.GetEvent(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	if e.Status == status {
		return e, nil
	}
	if err := checkTransition(e.Status, status); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateEventStatus(ctx, id, status); err != nil {
		return nil, fmt.Errorf("failed to update event status: %w", err)
	}

	old := e.Status
	e.Status = status
	logger.FromContext(ctx).Info(LogMsgStatusChanged, "event_id", id, "from", old, "to", status)
	s.publish(ctx, event.NewStatusChangedEvent(*e, old))
	return e, nil
}

// checkTransition rejects moving a completed event back to an open state
func checkTransition(from, to domain.EventStatus) error {
	if from == domain.EventStatusCompleted && to != domain.EventStatusCompleted {
		return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidStatusChange, from, to)
	}
	return nil
}

func (s *service) GetEvent(ctx context.Context, id string) (*domain.Event, error) {
	e, err := s.repo.GetEvent(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return e, nil
}

func (s *service) DeleteEvent(ctx context.Context, id string) error {
	e, err := s.repo.GetEvent(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get event: %w", err)
	}
	if err := s.repo.DeleteEvent(ctx, id); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	logger.FromContext(ctx).Info(LogMsgEventDeleted, "event_id", id)
	s.publish(ctx, event.NewBookingEvent(event.BookingDeleted, *e))
	return nil
}

func (s *service) ListEvents(ctx context.Context) ([]domain.Event, error) {
	events, err := s.repo.ListEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

func (s *service) EventsOnDate(ctx context.Context, date string) ([]domain.Event, error) {
	if err := s.validate.Var(date, "required,datetime="+domain.DeliveryDateLayout); err != nil {
		return nil, fmt.Errorf("%w: date must be %s", domain.ErrInvalidInput, domain.DeliveryDateLayout)
	}
	events, err := s.repo.ListEventsByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list events on %s: %w", date, err)
	}
	return events, nil
}

func (s *service) ShoppingList(ctx context.Context, id string) (*ShoppingListExport, error) {
	e, err := s.repo.GetEvent(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	recipes, err := s.catalog.RecipesForMenuItems(ctx, selectedMenuItemIDs(e.SelectedItems))
	if err != nil {
		return nil, fmt.Errorf("failed to get recipes: %w", err)
	}
	if len(recipes) == 0 {
		return nil, domain.ErrNoRecipesForEvent
	}

	list := shopping.Aggregate(recipes, float64(e.GuestCount))
	export := &ShoppingListExport{
		Content:  s.formatter.Render(list),
		Filename: ExportFilename(e),
		Groups:   list.Groups(),
	}

	logger.FromContext(ctx).Info(LogMsgShoppingList,
		"event_id", id,
		"recipes", len(recipes),
		"lines", list.Len())
	s.publish(ctx, event.NewShoppingListEvent(id, export.Filename, e.GuestCount, len(recipes), list.Len()))
	return export, nil
}

func (s *service) AdHocShoppingList(ctx context.Context, req AdHocRequest) (*ShoppingListExport, error) {
	if err := s.validateStruct(req); err != nil {
		return nil, err
	}

	recipes := make([]domain.Recipe, 0, len(req.RecipeIDs)+len(req.Recipes))
	for _, id := range req.RecipeIDs {
		r, err := s.catalog.GetRecipe(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to get recipe %s: %w", id, err)
		}
		recipes = append(recipes, *r)
	}
	for _, r := range req.Recipes {
		recipes = append(recipes, domain.Recipe{Name: r.Name, Ingredients: r.Ingredients})
	}

	list := shopping.Aggregate(recipes, float64(req.GuestCount))
	export := &ShoppingListExport{
		Content: s.formatter.Render(list),
		Groups:  list.Groups(),
	}

	s.publish(ctx, event.NewShoppingListEvent("", "", req.GuestCount, len(recipes), list.Len()))
	return export, nil
}

// ExportFilename names the downloadable list for e
func ExportFilename(e *domain.Event) string {
	return fmt.Sprintf(ExportFilenameFormat, e.Customer.FullName, e.Delivery.DeliveryDate)
}

// selectedMenuItemIDs returns the distinct item ids in selection order
func selectedMenuItemIDs(items []domain.SelectedItem) []string {
	ids := make([]string, 0, len(items))
	for _, item := range items {
		if !slices.Contains(ids, item.ItemID) {
			ids = append(ids, item.ItemID)
		}
	}
	return ids
}
