package repository

import (
	"context"

	"github.com/osse101/CateringPlanner_Go/internal/domain"
)

// Catalog defines persistence for menu items and their recipes
type Catalog interface {
	ListMenuItems(ctx context.Context) ([]domain.MenuItem, error)
	GetMenuItem(ctx context.Context, id string) (*domain.MenuItem, error)
	InsertMenuItem(ctx context.Context, item *domain.MenuItem) error
	UpdateMenuItem(ctx context.Context, item *domain.MenuItem) error
	// DeleteMenuItem removes the item and every recipe attached to it
	DeleteMenuItem(ctx context.Context, id string) error

	ListRecipes(ctx context.Context) ([]domain.Recipe, error)
	GetRecipe(ctx context.Context, id string) (*domain.Recipe, error)
	// GetRecipesByMenuItemIDs returns recipes in catalog order
	GetRecipesByMenuItemIDs(ctx context.Context, menuItemIDs []string) ([]domain.Recipe, error)
	InsertRecipe(ctx context.Context, recipe *domain.Recipe) error
	UpdateRecipe(ctx context.Context, recipe *domain.Recipe) error
	DeleteRecipe(ctx context.Context, id string) error

	// GetSyncMetadata returns nil, nil when the config was never synced
	GetSyncMetadata(ctx context.Context, configName string) (*domain.SyncMetadata, error)
	UpsertSyncMetadata(ctx context.Context, meta *domain.SyncMetadata) error
}
