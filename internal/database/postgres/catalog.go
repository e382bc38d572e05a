package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/CateringPlanner_Go/internal/domain"
)

const (
	menuItemColumns = `id, name, description, category, price, is_vegetarian, allergens`
	recipeColumns   = `id, menu_item_id, name, instructions, ingredients`
)

// CatalogRepository implements repository.Catalog for PostgreSQL
type CatalogRepository struct {
	db *pgxpool.Pool
}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository(db *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func scanMenuItem(row pgx.Row) (*domain.MenuItem, error) {
	var m domain.MenuItem
	if err := row.Scan(&m.ID, &m.Name, &m.Description, &m.Category, &m.Price, &m.IsVegetarian, &m.Allergens); err != nil {
		return nil, err
	}
	return &m, nil
}

func scanRecipe(row pgx.Row) (*domain.Recipe, error) {
	var r domain.Recipe
	if err := row.Scan(&r.ID, &r.MenuItemID, &r.Name, &r.Instructions, &r.Ingredients); err != nil {
		return nil, err
	}
	return &r, nil
}

func (r *CatalogRepository) ListMenuItems(ctx context.Context) ([]domain.MenuItem, error) {
	rows, err := r.db.Query(ctx, `SELECT `+menuItemColumns+` FROM menu_items ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("failed to query menu items: %w", err)
	}
	defer rows.Close()

	items := make([]domain.MenuItem, 0)
	for rows.Next() {
		m, err := scanMenuItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan menu item: %w", err)
		}
		items = append(items, *m)
	}
	return items, rows.Err()
}

func (r *CatalogRepository) GetMenuItem(ctx context.Context, id string) (*domain.MenuItem, error) {
	m, err := scanMenuItem(r.db.QueryRow(ctx, `SELECT `+menuItemColumns+` FROM menu_items WHERE id = $1`, id))
	if err != nil {
		return nil, mapNoRows(err, domain.ErrMenuItemNotFound)
	}
	return m, nil
}

func (r *CatalogRepository) InsertMenuItem(ctx context.Context, item *domain.MenuItem) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO menu_items (`+menuItemColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		item.ID, item.Name, item.Description, item.Category, item.Price, item.IsVegetarian, nonNil(item.Allergens))
	if isUniqueViolation(err) {
		return domain.ErrDuplicateID
	}
	if err != nil {
		return fmt.Errorf("failed to insert menu item: %w", err)
	}
	return nil
}

func (r *CatalogRepository) UpdateMenuItem(ctx context.Context, item *domain.MenuItem) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE menu_items
		SET name = $2, description = $3, category = $4, price = $5, is_vegetarian = $6, allergens = $7
		WHERE id = $1`,
		item.ID, item.Name, item.Description, item.Category, item.Price, item.IsVegetarian, nonNil(item.Allergens))
	if err != nil {
		return fmt.Errorf("failed to update menu item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrMenuItemNotFound
	}
	return nil
}

// DeleteMenuItem relies on ON DELETE CASCADE to drop the item's recipes
func (r *CatalogRepository) DeleteMenuItem(ctx context.Context, id string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer SafeRollback(ctx, tx)

	// Recipes go first so the menu item row is the last thing removed
	if _, err := tx.Exec(ctx, `DELETE FROM recipes WHERE menu_item_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete recipes of menu item: %w", err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM menu_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete menu item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrMenuItemNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (r *CatalogRepository) queryRecipes(ctx context.Context, sql string, args ...any) ([]domain.Recipe, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query recipes: %w", err)
	}
	defer rows.Close()

	recipes := make([]domain.Recipe, 0)
	for rows.Next() {
		rec, err := scanRecipe(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan recipe: %w", err)
		}
		recipes = append(recipes, *rec)
	}
	return recipes, rows.Err()
}

func (r *CatalogRepository) ListRecipes(ctx context.Context) ([]domain.Recipe, error) {
	return r.queryRecipes(ctx, `SELECT `+recipeColumns+` FROM recipes ORDER BY seq`)
}

func (r *CatalogRepository) GetRecipesByMenuItemIDs(ctx context.Context, menuItemIDs []string) ([]domain.Recipe, error) {
	return r.queryRecipes(ctx,
		`SELECT `+recipeColumns+` FROM recipes WHERE menu_item_id = ANY($1) ORDER BY seq`, menuItemIDs)
}

func (r *CatalogRepository) GetRecipe(ctx context.Context, id string) (*domain.Recipe, error) {
	rec, err := scanRecipe(r.db.QueryRow(ctx, `SELECT `+recipeColumns+` FROM recipes WHERE id = $1`, id))
	if err != nil {
		return nil, mapNoRows(err, domain.ErrRecipeNotFound)
	}
	return rec, nil
}

func (r *CatalogRepository) InsertRecipe(ctx context.Context, recipe *domain.Recipe) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO recipes (`+recipeColumns+`)
		VALUES ($1, $2, $3, $4, $5)`,
		recipe.ID, recipe.MenuItemID, recipe.Name, recipe.Instructions, nonNil(recipe.Ingredients))
	switch {
	case isUniqueViolation(err):
		return domain.ErrDuplicateID
	case isForeignKeyViolation(err):
		return domain.ErrMenuItemNotFound
	case err != nil:
		return fmt.Errorf("failed to insert recipe: %w", err)
	}
	return nil
}

func (r *CatalogRepository) UpdateRecipe(ctx context.Context, recipe *domain.Recipe) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE recipes
		SET menu_item_id = $2, name = $3, instructions = $4, ingredients = $5
		WHERE id = $1`,
		recipe.ID, recipe.MenuItemID, recipe.Name, recipe.Instructions, nonNil(recipe.Ingredients))
	if isForeignKeyViolation(err) {
		return domain.ErrMenuItemNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to update recipe: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrRecipeNotFound
	}
	return nil
}

func (r *CatalogRepository) DeleteRecipe(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM recipes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete recipe: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrRecipeNotFound
	}
	return nil
}

func (r *CatalogRepository) GetSyncMetadata(ctx context.Context, configName string) (*domain.SyncMetadata, error) {
	var m domain.SyncMetadata
	err := r.db.QueryRow(ctx, `
		SELECT config_name, last_sync_time, file_hash, file_mod_time
		FROM sync_metadata WHERE config_name = $1`, configName).
		Scan(&m.ConfigName, &m.LastSyncTime, &m.FileHash, &m.FileModTime)
	if err != nil {
		if mapNoRows(err, nil) == nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get sync metadata: %w", err)
	}
	return &m, nil
}

func (r *CatalogRepository) UpsertSyncMetadata(ctx context.Context, meta *domain.SyncMetadata) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO sync_metadata (config_name, last_sync_time, file_hash, file_mod_time)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (config_name) DO UPDATE
		SET last_sync_time = EXCLUDED.last_sync_time,
		    file_hash = EXCLUDED.file_hash,
		    file_mod_time = EXCLUDED.file_mod_time`,
		meta.ConfigName, meta.LastSyncTime, meta.FileHash, meta.FileModTime)
	if err != nil {
		return fmt.Errorf("failed to upsert sync metadata: %w", err)
	}
	return nil
}
