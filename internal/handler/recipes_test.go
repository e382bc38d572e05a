package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/CateringPlanner_Go/internal/domain"
	"github.com/osse101/CateringPlanner_Go/mocks"
)

func TestHandleListRecipes_FiltersByMenuItem(t *testing.T) {
	svc := mocks.NewMockCatalogService(t)
	svc.On("ListRecipes", mock.Anything, "m1").Return([]domain.Recipe{{ID: "r1", MenuItemID: "m1"}}, nil)
	svc.On("ListRecipes", mock.Anything, "").Return([]domain.Recipe{{ID: "r1"}, {ID: "r2"}}, nil)

	w := serve(HandleListRecipes(svc), newRequest(t, http.MethodGet, "/api/v1/recipes?menu_item_id=m1", nil, nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"r1"`)
	assert.NotContains(t, w.Body.String(), `"r2"`)

	w = serve(HandleListRecipes(svc), newRequest(t, http.MethodGet, "/api/v1/recipes", nil, nil))
	assert.Contains(t, w.Body.String(), `"r2"`)
}

func TestHandleCreateRecipe(t *testing.T) {
	InitValidator()

	t.Run("Unknown Menu Item", func(t *testing.T) {
		svc := mocks.NewMockCatalogService(t)
		svc.On("CreateRecipe", mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("failed to create recipe: %w", domain.ErrMenuItemNotFound))

		body := domain.Recipe{MenuItemID: "ghost", Name: "Dal",
			Ingredients: []domain.Ingredient{{Name: "Lentils", Quantity: 10, Unit: "kg"}}}
		w := serve(HandleCreateRecipe(svc), newRequest(t, http.MethodPost, "/api/v1/recipes", body, nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Duplicate ID", func(t *testing.T) {
		svc := mocks.NewMockCatalogService(t)
		svc.On("CreateRecipe", mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("failed to create recipe: %w", domain.ErrDuplicateID))

		body := domain.Recipe{ID: "r1", MenuItemID: "m1", Name: "Dal"}
		w := serve(HandleCreateRecipe(svc), newRequest(t, http.MethodPost, "/api/v1/recipes", body, nil))

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgDuplicateIDError)
	})

	t.Run("Negative Quantity", func(t *testing.T) {
		svc := mocks.NewMockCatalogService(t)
		body := domain.Recipe{MenuItemID: "m1", Name: "Dal",
			Ingredients: []domain.Ingredient{{Name: "Lentils", Quantity: -1, Unit: "kg"}}}
		w := serve(HandleCreateRecipe(svc), newRequest(t, http.MethodPost, "/api/v1/recipes", body, nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "ingredients[0].quantity")
	})
}

func TestHandleDeleteRecipe_NotFound(t *testing.T) {
	svc := mocks.NewMockCatalogService(t)
	svc.On("DeleteRecipe", mock.Anything, "r9").Return(domain.ErrRecipeNotFound)

	w := serve(HandleDeleteRecipe(svc), newRequest(t, http.MethodDelete, "/api/v1/recipes/r9", nil, map[string]string{ParamID: "r9"}))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), ErrMsgRecipeNotFoundError)
}
