package catalog

import (
	"context"
	"sync"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CateringPlanner_Go/internal/domain"
	"github.com/osse101/CateringPlanner_Go/internal/repository/memory"
)

func newTestService(t *testing.T) (Service, *memory.Catalog) {
	t.Helper()
	repo := memory.NewCatalog()
	return NewService(repo, CacheConfig{Size: 16}), repo
}

func TestCreateMenuItem_AssignsUUID(t *testing.T) {
	svc, _ := newTestService(t)

	item, err := svc.CreateMenuItem(context.Background(), domain.MenuItem{
		Name:     "Paneer Tikka",
		Category: domain.CategoryAppetizer,
		Price:    4.5,
	})
	require.NoError(t, err)
	assert.Len(t, item.ID, 36)

	got, err := svc.GetMenuItem(context.Background(), item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Paneer Tikka", got.Name)
}

func TestCreateMenuItem_Validation(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.CreateMenuItem(context.Background(), domain.MenuItem{Name: "Mystery", Category: "snack"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "menucategory", verrs[0].Tag())
}

func TestCreateRecipe_RejectsNegativeQuantity(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	item, err := svc.CreateMenuItem(ctx, domain.MenuItem{Name: "Dal", Category: domain.CategoryMainCourse})
	require.NoError(t, err)

	_, err = svc.CreateRecipe(ctx, domain.Recipe{
		MenuItemID:  item.ID,
		Name:        "Dal tadka",
		Ingredients: []domain.Ingredient{{Name: "Lentils", Quantity: -1, Unit: "kg"}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateRecipe_UnknownMenuItem(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.CreateRecipe(context.Background(), domain.Recipe{MenuItemID: "ghost", Name: "Nothing"})
	assert.ErrorIs(t, err, domain.ErrMenuItemNotFound)
}

func TestRecipesForMenuItems_CachedAndInvalidated(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	item, err := svc.CreateMenuItem(ctx, domain.MenuItem{Name: "Biryani", Category: domain.CategoryMainCourse})
	require.NoError(t, err)
	_, err = svc.CreateRecipe(ctx, domain.Recipe{MenuItemID: item.ID, Name: "Rice layer",
		Ingredients: []domain.Ingredient{{Name: "Rice", Quantity: 10, Unit: "kg"}}})
	require.NoError(t, err)

	first, err := svc.RecipesForMenuItems(ctx, []string{item.ID})
	require.NoError(t, err)
	require.Len(t, first, 1)

	// mutating the returned slice must not leak into the cache
	first[0].Ingredients[0].Quantity = 0

	second, err := svc.RecipesForMenuItems(ctx, []string{item.ID})
	require.NoError(t, err)
	assert.Equal(t, 10.0, second[0].Ingredients[0].Quantity)

	_, err = svc.CreateRecipe(ctx, domain.Recipe{MenuItemID: item.ID, Name: "Masala layer"})
	require.NoError(t, err)

	third, err := svc.RecipesForMenuItems(ctx, []string{item.ID})
	require.NoError(t, err)
	assert.Len(t, third, 2)
}

// pausingCatalog holds the first recipe lookup open after it has read the store
type pausingCatalog struct {
	*memory.Catalog
	once    sync.Once
	read    chan struct{}
	release chan struct{}
}

func (p *pausingCatalog) GetRecipesByMenuItemIDs(ctx context.Context, ids []string) ([]domain.Recipe, error) {
	recipes, err := p.Catalog.GetRecipesByMenuItemIDs(ctx, ids)
	p.once.Do(func() {
		close(p.read)
		<-p.release
	})
	return recipes, err
}

func TestRecipesForMenuItems_WriteDuringLookupIsNotMasked(t *testing.T) {
	repo := &pausingCatalog{
		Catalog: memory.NewCatalog(),
		read:    make(chan struct{}),
		release: make(chan struct{}),
	}
	svc := NewService(repo, CacheConfig{Size: 16})
	ctx := context.Background()

	item, err := svc.CreateMenuItem(ctx, domain.MenuItem{ID: "m1", Name: "Biryani", Category: domain.CategoryMainCourse})
	require.NoError(t, err)

	done := make(chan []domain.Recipe, 1)
	go func() {
		recipes, _ := svc.RecipesForMenuItems(ctx, []string{item.ID})
		done <- recipes
	}()

	<-repo.read
	_, err = svc.CreateRecipe(ctx, domain.Recipe{MenuItemID: item.ID, Name: "Rice layer"})
	require.NoError(t, err)
	close(repo.release)
	assert.Empty(t, <-done)

	recipes, err := svc.RecipesForMenuItems(ctx, []string{item.ID})
	require.NoError(t, err)
	assert.Len(t, recipes, 1)
}

func TestRecipesForMenuItems_Empty(t *testing.T) {
	svc, _ := newTestService(t)

	recipes, err := svc.RecipesForMenuItems(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, recipes)
}

func TestDeleteMenuItem_RemovesRecipes(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	item, err := svc.CreateMenuItem(ctx, domain.MenuItem{Name: "Kheer", Category: domain.CategoryDessert})
	require.NoError(t, err)
	recipe, err := svc.CreateRecipe(ctx, domain.Recipe{MenuItemID: item.ID, Name: "Kheer"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteMenuItem(ctx, item.ID))

	_, err = svc.GetRecipe(ctx, recipe.ID)
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)

	recipes, err := svc.ListRecipes(ctx, item.ID)
	require.NoError(t, err)
	assert.Empty(t, recipes)
}

func TestUpdateMenuItem(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	item, err := svc.CreateMenuItem(ctx, domain.MenuItem{Name: "Lassi", Category: domain.CategoryBeverage, Price: 2})
	require.NoError(t, err)

	updated, err := svc.UpdateMenuItem(ctx, item.ID, domain.MenuItem{Name: "Mango Lassi", Category: domain.CategoryBeverage, Price: 3})
	require.NoError(t, err)
	assert.Equal(t, item.ID, updated.ID)

	_, err = svc.UpdateMenuItem(ctx, "missing", domain.MenuItem{Name: "X", Category: domain.CategoryBeverage})
	assert.ErrorIs(t, err, domain.ErrMenuItemNotFound)
}

func TestListRecipes_All(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	a, _ := svc.CreateMenuItem(ctx, domain.MenuItem{Name: "A", Category: domain.CategoryCombo})
	b, _ := svc.CreateMenuItem(ctx, domain.MenuItem{Name: "B", Category: domain.CategoryCombo})
	_, err := svc.CreateRecipe(ctx, domain.Recipe{MenuItemID: a.ID, Name: "ra"})
	require.NoError(t, err)
	_, err = svc.CreateRecipe(ctx, domain.Recipe{MenuItemID: b.ID, Name: "rb"})
	require.NoError(t, err)

	all, err := svc.ListRecipes(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	onlyB, err := svc.ListRecipes(ctx, b.ID)
	require.NoError(t, err)
	require.Len(t, onlyB, 1)
	assert.Equal(t, "rb", onlyB[0].Name)
}
