package handler

import (
	"mime"
	"net/http"

	"github.com/osse101/CateringPlanner_Go/internal/booking"
	"github.com/osse101/CateringPlanner_Go/internal/shopping"
)

// AdHocShoppingListResponse is the rendered list plus its structured groups
type AdHocShoppingListResponse struct {
	Content string               `json:"content"`
	Lines   int                  `json:"lines"`
	Groups  []shopping.UnitGroup `json:"groups"`
}

// HandleEventShoppingList downloads the shopping list of an event as a text file
// @Summary Download an event's shopping list
// @Tags shopping
// @Produce plain
// @Param id path string true "Event ID"
// @Success 200 {string} string "Shopping list"
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/events/{id}/shopping-list [get]
func HandleEventShoppingList(svc booking.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetPathParam(r, w, ParamID)
		if !ok {
			return
		}
		export, err := svc.ShoppingList(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, ActionShoppingList, err)
			return
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("Content-Disposition",
			mime.FormatMediaType("attachment", map[string]string{"filename": export.Filename}))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(export.Content))
	}
}

// HandleAdHocShoppingList builds a list from recipe ids and inline recipes
// @Summary Build an ad-hoc shopping list
// @Tags shopping
// @Accept json
// @Produce json
// @Param request body booking.AdHocRequest true "Guest count and recipes"
// @Success 200 {object} AdHocShoppingListResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/shopping-list [post]
func HandleAdHocShoppingList(svc booking.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req booking.AdHocRequest
		if err := DecodeAndValidateRequest(r, w, &req, ActionAdHocShopping); err != nil {
			return
		}
		export, err := svc.AdHocShoppingList(r.Context(), req)
		if err != nil {
			respondServiceError(w, r, ActionAdHocShopping, err)
			return
		}

		lines := 0
		for _, g := range export.Groups {
			lines += len(g.Lines)
		}
		respondJSON(w, http.StatusOK, AdHocShoppingListResponse{
			Content: export.Content,
			Lines:   lines,
			Groups:  export.Groups,
		})
	}
}
