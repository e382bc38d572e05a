package catalog

import (
	"bytes"
	"context"
	"crypto/sha256"
	_ "embed"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/osse101/CateringPlanner_Go/internal/domain"
	"github.com/osse101/CateringPlanner_Go/internal/event"
	"github.com/osse101/CateringPlanner_Go/internal/logger"
	"github.com/osse101/CateringPlanner_Go/internal/repository"
	"github.com/osse101/CateringPlanner_Go/internal/validation"
)

//go:embed catalog.schema.json
var catalogSchema []byte

// Sentinel errors for the catalog loader
var (
	ErrUnsupportedFormat = errors.New("unsupported catalog file format")
	ErrUnknownMenuItem   = errors.New("recipe references unknown menu item")
	ErrInvalidConfig     = errors.New("invalid configuration")
)

// Config is the content of a catalog seed file
type Config struct {
	Version     string            `json:"version" yaml:"version"`
	Description string            `json:"description" yaml:"description"`
	MenuItems   []domain.MenuItem `json:"menu_items" yaml:"menu_items"`
	Recipes     []domain.Recipe   `json:"recipes" yaml:"recipes"`
}

// SyncResult contains the result of syncing a seed file to the repository
type SyncResult struct {
	MenuItemsInserted int  `json:"menu_items_inserted"`
	MenuItemsUpdated  int  `json:"menu_items_updated"`
	MenuItemsSkipped  int  `json:"menu_items_skipped"`
	RecipesInserted   int  `json:"recipes_inserted"`
	RecipesUpdated    int  `json:"recipes_updated"`
	RecipesSkipped    int  `json:"recipes_skipped"`
	Unchanged         bool `json:"unchanged"`
}

// Inserted returns inserted records of both kinds
func (r *SyncResult) Inserted() int { return r.MenuItemsInserted + r.RecipesInserted }

// Updated returns updated records of both kinds
func (r *SyncResult) Updated() int { return r.MenuItemsUpdated + r.RecipesUpdated }

// Skipped returns unchanged records of both kinds
func (r *SyncResult) Skipped() int { return r.MenuItemsSkipped + r.RecipesSkipped }

// Loader reads catalog seed files and upserts them into a repository.
// Run Sync before the catalog Service starts serving; it bypasses the service cache.
type Loader struct {
	repo     repository.Catalog
	bus      event.Bus
	schemas  validation.SchemaValidator
	validate *validator.Validate
}

// NewLoader creates a loader. repo and bus may be nil when only Load is used.
func NewLoader(repo repository.Catalog, bus event.Bus) *Loader {
	schemas := validation.NewSchemaValidator()
	if err := schemas.RegisterSchema(SchemaName, catalogSchema); err != nil {
		panic(fmt.Sprintf("catalog schema does not compile: %v", err))
	}
	return &Loader{
		repo:     repo,
		bus:      bus,
		schemas:  schemas,
		validate: validation.NewStructValidator(),
	}
}

// Load reads, schema-checks and decodes a JSON or YAML seed file
func (l *Loader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return l.Parse(filepath.Ext(path), data)
}

// Parse decodes seed data in the format named by ext
func (l *Loader) Parse(ext string, data []byte) (*Config, error) {
	var cfg Config

	switch strings.ToLower(ext) {
	case ExtJSON:
		if err := l.schemas.ValidateBytes(SchemaName, data); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		dec := json.NewDecoder(bytes.NewReader(data))
		if err := dec.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("failed to parse catalog JSON: %w", err)
		}
	case ExtYAML, ExtYML:
		var doc any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse catalog YAML: %w", err)
		}
		if err := l.schemas.ValidateDocument(SchemaName, doc); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse catalog YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	return &cfg, nil
}

// Validate checks struct tags, duplicate ids and recipe references
func (l *Loader) Validate(cfg *Config) error {
	itemIDs := make(map[string]bool, len(cfg.MenuItems))
	for _, item := range cfg.MenuItems {
		if itemIDs[item.ID] {
			return fmt.Errorf("%w: menu item %s", domain.ErrDuplicateID, item.ID)
		}
		itemIDs[item.ID] = true
		if err := l.validate.Struct(item); err != nil {
			return fmt.Errorf("%w: menu item %s: %w", ErrInvalidConfig, item.ID, err)
		}
	}

	recipeIDs := make(map[string]bool, len(cfg.Recipes))
	for _, recipe := range cfg.Recipes {
		if recipeIDs[recipe.ID] {
			return fmt.Errorf("%w: recipe %s", domain.ErrDuplicateID, recipe.ID)
		}
		recipeIDs[recipe.ID] = true
		if !itemIDs[recipe.MenuItemID] {
			return fmt.Errorf("%w: recipe %s -> %s", ErrUnknownMenuItem, recipe.ID, recipe.MenuItemID)
		}
		if err := l.validate.Struct(recipe); err != nil {
			return fmt.Errorf("%w: recipe %s: %w", ErrInvalidConfig, recipe.ID, err)
		}
	}

	return nil
}

// Sync loads path and upserts its records. Unless force is set, a file whose
// SHA-256 matches the last sync is skipped.
func (l *Loader) Sync(ctx context.Context, path string, force bool) (*SyncResult, error) {
	log := logger.FromContext(ctx)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	fileHash := hashBytes(data)
	metaName := filepath.Base(path)

	if !force {
		meta, err := l.repo.GetSyncMetadata(ctx, metaName)
		if err != nil {
			return nil, fmt.Errorf("failed to get sync metadata: %w", err)
		}
		if meta != nil && meta.FileHash == fileHash {
			log.Info(LogMsgSeedUnchanged, "path", path)
			return &SyncResult{Unchanged: true}, nil
		}
	}

	cfg, err := l.Parse(filepath.Ext(path), data)
	if err != nil {
		return nil, err
	}
	if err := l.Validate(cfg); err != nil {
		return nil, err
	}

	result := &SyncResult{}
	if err := l.syncMenuItems(ctx, cfg.MenuItems, result); err != nil {
		return nil, err
	}
	if err := l.syncRecipes(ctx, cfg.Recipes, result); err != nil {
		return nil, err
	}

	if err := l.repo.UpsertSyncMetadata(ctx, &domain.SyncMetadata{
		ConfigName:   metaName,
		LastSyncTime: time.Now(),
		FileHash:     fileHash,
		FileModTime:  modTime(path),
	}); err != nil {
		log.Warn(LogMsgSyncMetaFailed, "error", err)
	}

	log.Info(LogMsgSeedSyncCompleted,
		"path", path,
		"menu_items_inserted", result.MenuItemsInserted,
		"menu_items_updated", result.MenuItemsUpdated,
		"menu_items_skipped", result.MenuItemsSkipped,
		"recipes_inserted", result.RecipesInserted,
		"recipes_updated", result.RecipesUpdated,
		"recipes_skipped", result.RecipesSkipped)

	if l.bus != nil {
		evt := event.NewCatalogSyncedEvent(metaName, result.Inserted(), result.Updated(), result.Skipped())
		if err := l.bus.Publish(ctx, evt); err != nil {
			log.Warn("Failed to publish catalog sync event", "error", err)
		}
	}

	return result, nil
}

func (l *Loader) syncMenuItems(ctx context.Context, items []domain.MenuItem, result *SyncResult) error {
	for i := range items {
		item := items[i]
		existing, err := l.repo.GetMenuItem(ctx, item.ID)
		switch {
		case errors.Is(err, domain.ErrMenuItemNotFound):
			if err := l.repo.InsertMenuItem(ctx, &item); err != nil {
				return fmt.Errorf("failed to insert menu item %s: %w", item.ID, err)
			}
			result.MenuItemsInserted++
		case err != nil:
			return fmt.Errorf("failed to get menu item %s: %w", item.ID, err)
		case menuItemsEqual(*existing, item):
			result.MenuItemsSkipped++
		default:
			if err := l.repo.UpdateMenuItem(ctx, &item); err != nil {
				return fmt.Errorf("failed to update menu item %s: %w", item.ID, err)
			}
			result.MenuItemsUpdated++
		}
	}
	return nil
}

func (l *Loader) syncRecipes(ctx context.Context, recipes []domain.Recipe, result *SyncResult) error {
	for i := range recipes {
		recipe := recipes[i]
		existing, err := l.repo.GetRecipe(ctx, recipe.ID)
		switch {
		case errors.Is(err, domain.ErrRecipeNotFound):
			if err := l.repo.InsertRecipe(ctx, &recipe); err != nil {
				return fmt.Errorf("failed to insert recipe %s: %w", recipe.ID, err)
			}
			result.RecipesInserted++
		case err != nil:
			return fmt.Errorf("failed to get recipe %s: %w", recipe.ID, err)
		case recipesEqual(*existing, recipe):
			result.RecipesSkipped++
		default:
			if err := l.repo.UpdateRecipe(ctx, &recipe); err != nil {
				return fmt.Errorf("failed to update recipe %s: %w", recipe.ID, err)
			}
			result.RecipesUpdated++
		}
	}
	return nil
}

// Helper functions

func hashBytes(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

func modTime(path string) time.Time {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}
	}
	return info.ModTime()
}

func menuItemsEqual(a, b domain.MenuItem) bool {
	return a.ID == b.ID &&
		a.Name == b.Name &&
		a.Description == b.Description &&
		a.Category == b.Category &&
		a.Price == b.Price &&
		a.IsVegetarian == b.IsVegetarian &&
		slices.Equal(a.Allergens, b.Allergens)
}

func recipesEqual(a, b domain.Recipe) bool {
	return a.ID == b.ID &&
		a.MenuItemID == b.MenuItemID &&
		a.Name == b.Name &&
		a.Instructions == b.Instructions &&
		slices.Equal(a.Ingredients, b.Ingredients)
}
