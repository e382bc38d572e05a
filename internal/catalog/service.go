// Package catalog manages menu items and the recipes that feed shopping lists.
package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/osse101/CateringPlanner_Go/internal/domain"
	"github.com/osse101/CateringPlanner_Go/internal/logger"
	"github.com/osse101/CateringPlanner_Go/internal/repository"
	"github.com/osse101/CateringPlanner_Go/internal/validation"
)

// Service defines the interface for catalog operations
type Service interface {
	CreateMenuItem(ctx context.Context, item domain.MenuItem) (*domain.MenuItem, error)
	UpdateMenuItem(ctx context.Context, id string, item domain.MenuItem) (*domain.MenuItem, error)
	DeleteMenuItem(ctx context.Context, id string) error
	GetMenuItem(ctx context.Context, id string) (*domain.MenuItem, error)
	ListMenuItems(ctx context.Context) ([]domain.MenuItem, error)

	CreateRecipe(ctx context.Context, recipe domain.Recipe) (*domain.Recipe, error)
	UpdateRecipe(ctx context.Context, id string, recipe domain.Recipe) (*domain.Recipe, error)
	DeleteRecipe(ctx context.Context, id string) error
	GetRecipe(ctx context.Context, id string) (*domain.Recipe, error)
	// ListRecipes lists every recipe, or only those of menuItemID when it is set
	ListRecipes(ctx context.Context, menuItemID string) ([]domain.Recipe, error)
	// RecipesForMenuItems returns recipes attached to any of the ids, in catalog order
	RecipesForMenuItems(ctx context.Context, menuItemIDs []string) ([]domain.Recipe, error)
}

// CacheConfig sizes the recipe lookup cache
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

type service struct {
	repo     repository.Catalog
	cache    *recipeCache
	validate *validator.Validate
}

// NewService creates a new catalog service
func NewService(repo repository.Catalog, cacheConfig CacheConfig) Service {
	ttl := cacheConfig.TTL
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &service{
		repo:     repo,
		cache:    newRecipeCache(cacheConfig.Size, ttl),
		validate: validation.NewStructValidator(),
	}
}

func (s *service) validateStruct(v interface{}) error {
	if err := s.validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}
	return nil
}

func (s *service) CreateMenuItem(ctx context.Context, item domain.MenuItem) (*domain.MenuItem, error) {
	if err := s.validateStruct(item); err != nil {
		return nil, err
	}
	if item.ID == "" {
		item.ID = uuid.NewString()
	}

	if err := s.repo.InsertMenuItem(ctx, &item); err != nil {
		return nil, fmt.Errorf("failed to create menu item: %w", err)
	}
	s.cache.Clear()

	logger.FromContext(ctx).Info(LogMsgMenuItemCreated, "menu_item_id", item.ID, "name", item.Name)
	return &item, nil
}

func (s *service) UpdateMenuItem(ctx context.Context, id string, item domain.MenuItem) (*domain.MenuItem, error) {
	item.ID = id
	if err := s.validateStruct(item); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateMenuItem(ctx, &item); err != nil {
		return nil, fmt.Errorf("failed to update menu item: %w", err)
	}
	s.cache.Clear()

	logger.FromContext(ctx).Info(LogMsgMenuItemUpdated, "menu_item_id", id)
	return &item, nil
}

func (s *service) DeleteMenuItem(ctx context.Context, id string) error {
	if err := s.repo.DeleteMenuItem(ctx, id); err != nil {
		return fmt.Errorf("failed to delete menu item: %w", err)
	}
	s.cache.Clear()

	logger.FromContext(ctx).Info(LogMsgMenuItemDeleted, "menu_item_id", id)
	return nil
}

func (s *service) GetMenuItem(ctx context.Context, id string) (*domain.MenuItem, error) {
	item, err := s.repo.GetMenuItem(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get menu item: %w", err)
	}
	return item, nil
}

func (s *service) ListMenuItems(ctx context.Context) ([]domain.MenuItem, error) {
	items, err := s.repo.ListMenuItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}
	return items, nil
}

func (s *service) CreateRecipe(ctx context.Context, recipe domain.Recipe) (*domain.Recipe, error) {
	if err := s.validateStruct(recipe); err != nil {
		return nil, err
	}
	if recipe.ID == "" {
		recipe.ID = uuid.NewString()
	}

	if err := s.repo.InsertRecipe(ctx, &recipe); err != nil {
		return nil, fmt.Errorf("failed to create recipe: %w", err)
	}
	s.cache.Clear()

	logger.FromContext(ctx).Info(LogMsgRecipeCreated,
		"recipe_id", recipe.ID,
		"menu_item_id", recipe.MenuItemID,
		"ingredients", recipe.IngredientCount())
	return &recipe, nil
}

func (s *service) UpdateRecipe(ctx context.Context, id string, recipe domain.Recipe) (*domain.Recipe, error) {
	recipe.ID = id
	if err := s.validateStruct(recipe); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateRecipe(ctx, &recipe); err != nil {
		return nil, fmt.Errorf("failed to update recipe: %w", err)
	}
	s.cache.Clear()

	logger.FromContext(ctx).Info(LogMsgRecipeUpdated, "recipe_id", id)
	return &recipe, nil
}

func (s *service) DeleteRecipe(ctx context.Context, id string) error {
	if err := s.repo.DeleteRecipe(ctx, id); err != nil {
		return fmt.Errorf("failed to delete recipe: %w", err)
	}
	s.cache.Clear()

	logger.FromContext(ctx).Info(LogMsgRecipeDeleted, "recipe_id", id)
	return nil
}

func (s *service) GetRecipe(ctx context.Context, id string) (*domain.Recipe, error) {
	recipe, err := s.repo.GetRecipe(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}
	return recipe, nil
}

func (s *service) ListRecipes(ctx context.Context, menuItemID string) ([]domain.Recipe, error) {
	if menuItemID != "" {
		return s.RecipesForMenuItems(ctx, []string{menuItemID})
	}

	recipes, err := s.repo.ListRecipes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	return recipes, nil
}

func (s *service) RecipesForMenuItems(ctx context.Context, menuItemIDs []string) ([]domain.Recipe, error) {
	if len(menuItemIDs) == 0 {
		return []domain.Recipe{}, nil
	}

	if cached, ok := s.cache.Get(menuItemIDs); ok {
		return cached, nil
	}

	gen := s.cache.Generation()
	recipes, err := s.repo.GetRecipesByMenuItemIDs(ctx, menuItemIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get recipes for menu items: %w", err)
	}

	s.cache.Set(gen, menuItemIDs, recipes)
	return recipes, nil
}
