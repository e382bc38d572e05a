package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CateringPlanner_Go/internal/domain"
)

func TestRepositories_Integration(t *testing.T) {
	pool := setupTestPool(t)
	ctx := context.Background()

	catalog := NewCatalogRepository(pool)
	events := NewEventRepository(pool)

	t.Run("menu items and recipes", func(t *testing.T) {
		salad := &domain.MenuItem{ID: "salad", Name: "Salad", Category: domain.CategoryAppetizer, Price: 4.5}
		soup := &domain.MenuItem{ID: "soup", Name: "Soup", Category: domain.CategoryMainCourse, Price: 6, Allergens: []string{"celery"}}
		require.NoError(t, catalog.InsertMenuItem(ctx, salad))
		require.NoError(t, catalog.InsertMenuItem(ctx, soup))
		assert.ErrorIs(t, catalog.InsertMenuItem(ctx, salad), domain.ErrDuplicateID)

		items, err := catalog.ListMenuItems(ctx)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "salad", items[0].ID)
		assert.Empty(t, items[0].Allergens)
		assert.Equal(t, []string{"celery"}, items[1].Allergens)

		r1 := &domain.Recipe{ID: "r1", MenuItemID: "soup", Name: "Tomato Soup",
			Ingredients: []domain.Ingredient{{Name: "Tomato", Quantity: 20, Unit: "kg"}}}
		r2 := &domain.Recipe{ID: "r2", MenuItemID: "salad", Name: "Green Salad",
			Ingredients: []domain.Ingredient{{Name: "Lettuce", Quantity: 8, Unit: "kg"}}}
		require.NoError(t, catalog.InsertRecipe(ctx, r1))
		require.NoError(t, catalog.InsertRecipe(ctx, r2))
		assert.ErrorIs(t, catalog.InsertRecipe(ctx, &domain.Recipe{ID: "r3", MenuItemID: "missing", Name: "X"}),
			domain.ErrMenuItemNotFound)

		got, err := catalog.GetRecipesByMenuItemIDs(ctx, []string{"salad", "soup"})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "r1", got[0].ID, "catalog order, not argument order")
		assert.Equal(t, r1.Ingredients, got[0].Ingredients)

		r1.Name = "Roast Tomato Soup"
		require.NoError(t, catalog.UpdateRecipe(ctx, r1))
		fetched, err := catalog.GetRecipe(ctx, "r1")
		require.NoError(t, err)
		assert.Equal(t, "Roast Tomato Soup", fetched.Name)

		require.NoError(t, catalog.DeleteMenuItem(ctx, "soup"))
		_, err = catalog.GetRecipe(ctx, "r1")
		assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
		_, err = catalog.GetMenuItem(ctx, "soup")
		assert.ErrorIs(t, err, domain.ErrMenuItemNotFound)
		assert.ErrorIs(t, catalog.DeleteRecipe(ctx, "r1"), domain.ErrRecipeNotFound)
	})

	t.Run("sync metadata", func(t *testing.T) {
		meta, err := catalog.GetSyncMetadata(ctx, "catalog.yaml")
		require.NoError(t, err)
		assert.Nil(t, meta)

		require.NoError(t, catalog.UpsertSyncMetadata(ctx, &domain.SyncMetadata{ConfigName: "catalog.yaml", FileHash: "a"}))
		require.NoError(t, catalog.UpsertSyncMetadata(ctx, &domain.SyncMetadata{ConfigName: "catalog.yaml", FileHash: "b"}))

		meta, err = catalog.GetSyncMetadata(ctx, "catalog.yaml")
		require.NoError(t, err)
		require.NotNil(t, meta)
		assert.Equal(t, "b", meta.FileHash)
	})

	t.Run("events", func(t *testing.T) {
		e := &domain.Event{
			ID:            "e1",
			Customer:      domain.CustomerInfo{FullName: "Jane Doe", ContactNumber: "555", Email: "jane@example.com"},
			Delivery:      domain.DeliveryInfo{Address: "1 Main St", DeliveryDate: "2024-06-01", DeliveryTime: "12:00"},
			EventType:     domain.EventTypeWedding,
			GuestCount:    50,
			SelectedItems: []domain.SelectedItem{{Type: domain.SelectionIndividual, ItemID: "salad", Quantity: 1}},
			Status:        domain.EventStatusPending,
			TotalAmount:   225,
		}
		require.NoError(t, events.InsertEvent(ctx, e))
		assert.False(t, e.CreatedAt.IsZero())

		onDay, err := events.ListEventsByDate(ctx, "2024-06-01")
		require.NoError(t, err)
		require.Len(t, onDay, 1)
		assert.Equal(t, e.Customer, onDay[0].Customer)
		assert.Equal(t, e.SelectedItems, onDay[0].SelectedItems)

		none, err := events.ListEventsByDate(ctx, "2024-06-02")
		require.NoError(t, err)
		assert.Empty(t, none)

		require.NoError(t, events.UpdateEventStatus(ctx, "e1", domain.EventStatusConfirmed))
		got, err := events.GetEvent(ctx, "e1")
		require.NoError(t, err)
		assert.Equal(t, domain.EventStatusConfirmed, got.Status)

		got.GuestCount = 80
		require.NoError(t, events.UpdateEvent(ctx, got))
		all, err := events.ListEvents(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, 80, all[0].GuestCount)

		require.NoError(t, events.DeleteEvent(ctx, "e1"))
		_, err = events.GetEvent(ctx, "e1")
		assert.ErrorIs(t, err, domain.ErrEventNotFound)
		assert.ErrorIs(t, events.UpdateEventStatus(ctx, "e1", domain.EventStatusCompleted), domain.ErrEventNotFound)
	})
}

func TestNonNil(t *testing.T) {
	assert.Equal(t, []string{}, nonNil[string](nil))
	assert.Equal(t, []string{"a"}, nonNil([]string{"a"}))
}
