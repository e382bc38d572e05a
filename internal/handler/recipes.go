package handler

import (
	"net/http"

	"github.com/osse101/CateringPlanner_Go/internal/catalog"
	"github.com/osse101/CateringPlanner_Go/internal/domain"
)

// HandleListRecipes lists recipes, optionally only those of one menu item
// @Summary List recipes
// @Tags catalog
// @Produce json
// @Param menu_item_id query string false "Only recipes of this menu item"
// @Success 200 {array} domain.Recipe
// @Router /api/v1/recipes [get]
func HandleListRecipes(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		menuItemID := GetOptionalQueryParam(r, QueryMenuItemID, "")
		recipes, err := svc.ListRecipes(r.Context(), menuItemID)
		if err != nil {
			respondServiceError(w, r, ActionListRecipes, err)
			return
		}
		respondJSON(w, http.StatusOK, recipes)
	}
}

// HandleGetRecipe returns one recipe
// @Summary Get a recipe
// @Tags catalog
// @Produce json
// @Param id path string true "Recipe ID"
// @Success 200 {object} domain.Recipe
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/recipes/{id} [get]
func HandleGetRecipe(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetPathParam(r, w, ParamID)
		if !ok {
			return
		}
		recipe, err := svc.GetRecipe(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, ActionGetRecipe, err)
			return
		}
		respondJSON(w, http.StatusOK, recipe)
	}
}

// HandleCreateRecipe adds a recipe to a menu item
// @Summary Create a recipe
// @Tags catalog
// @Accept json
// @Produce json
// @Param recipe body domain.Recipe true "Recipe, quantities per 100 guests"
// @Success 201 {object} domain.Recipe
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/recipes [post]
func HandleCreateRecipe(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.Recipe
		if err := DecodeAndValidateRequest(r, w, &req, ActionCreateRecipe); err != nil {
			return
		}
		recipe, err := svc.CreateRecipe(r.Context(), req)
		if err != nil {
			respondServiceError(w, r, ActionCreateRecipe, err)
			return
		}
		respondJSON(w, http.StatusCreated, recipe)
	}
}

// HandleUpdateRecipe replaces a recipe
// @Summary Update a recipe
// @Tags catalog
// @Accept json
// @Produce json
// @Param id path string true "Recipe ID"
// @Param recipe body domain.Recipe true "Recipe"
// @Success 200 {object} domain.Recipe
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/recipes/{id} [put]
func HandleUpdateRecipe(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetPathParam(r, w, ParamID)
		if !ok {
			return
		}
		var req domain.Recipe
		if err := DecodeAndValidateRequest(r, w, &req, ActionUpdateRecipe); err != nil {
			return
		}
		recipe, err := svc.UpdateRecipe(r.Context(), id, req)
		if err != nil {
			respondServiceError(w, r, ActionUpdateRecipe, err)
			return
		}
		respondJSON(w, http.StatusOK, recipe)
	}
}

// HandleDeleteRecipe removes a recipe
// @Summary Delete a recipe
// @Tags catalog
// @Produce json
// @Param id path string true "Recipe ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/recipes/{id} [delete]
func HandleDeleteRecipe(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetPathParam(r, w, ParamID)
		if !ok {
			return
		}
		if err := svc.DeleteRecipe(r.Context(), id); err != nil {
			respondServiceError(w, r, ActionDeleteRecipe, err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgRecipeDeleted})
	}
}
