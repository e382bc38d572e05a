package handler

import (
	"net/http"

	"github.com/osse101/CateringPlanner_Go/internal/catalog"
	"github.com/osse101/CateringPlanner_Go/internal/domain"
)

// HandleListMenuItems lists the catalog's menu items
// @Summary List menu items
// @Tags catalog
// @Produce json
// @Success 200 {array} domain.MenuItem
// @Router /api/v1/menu-items [get]
func HandleListMenuItems(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListMenuItems(r.Context())
		if err != nil {
			respondServiceError(w, r, ActionListMenuItems, err)
			return
		}
		respondJSON(w, http.StatusOK, items)
	}
}

// HandleGetMenuItem returns one menu item
// @Summary Get a menu item
// @Tags catalog
// @Produce json
// @Param id path string true "Menu item ID"
// @Success 200 {object} domain.MenuItem
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/menu-items/{id} [get]
func HandleGetMenuItem(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetPathParam(r, w, ParamID)
		if !ok {
			return
		}
		item, err := svc.GetMenuItem(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, ActionGetMenuItem, err)
			return
		}
		respondJSON(w, http.StatusOK, item)
	}
}

// HandleCreateMenuItem adds a menu item
// @Summary Create a menu item
// @Tags catalog
// @Accept json
// @Produce json
// @Param item body domain.MenuItem true "Menu item"
// @Success 201 {object} domain.MenuItem
// @Failure 400 {object} ValidationErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/menu-items [post]
func HandleCreateMenuItem(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.MenuItem
		if err := DecodeAndValidateRequest(r, w, &req, ActionCreateMenuItem); err != nil {
			return
		}
		item, err := svc.CreateMenuItem(r.Context(), req)
		if err != nil {
			respondServiceError(w, r, ActionCreateMenuItem, err)
			return
		}
		respondJSON(w, http.StatusCreated, item)
	}
}

// HandleUpdateMenuItem replaces a menu item
// @Summary Update a menu item
// @Tags catalog
// @Accept json
// @Produce json
// @Param id path string true "Menu item ID"
// @Param item body domain.MenuItem true "Menu item"
// @Success 200 {object} domain.MenuItem
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/menu-items/{id} [put]
func HandleUpdateMenuItem(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetPathParam(r, w, ParamID)
		if !ok {
			return
		}
		var req domain.MenuItem
		if err := DecodeAndValidateRequest(r, w, &req, ActionUpdateMenuItem); err != nil {
			return
		}
		item, err := svc.UpdateMenuItem(r.Context(), id, req)
		if err != nil {
			respondServiceError(w, r, ActionUpdateMenuItem, err)
			return
		}
		respondJSON(w, http.StatusOK, item)
	}
}

// HandleDeleteMenuItem removes a menu item together with its recipes
// @Summary Delete a menu item
// @Tags catalog
// @Produce json
// @Param id path string true "Menu item ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/menu-items/{id} [delete]
func HandleDeleteMenuItem(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetPathParam(r, w, ParamID)
		if !ok {
			return
		}
		if err := svc.DeleteMenuItem(r.Context(), id); err != nil {
			respondServiceError(w, r, ActionDeleteMenuItem, err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgMenuItemDeleted})
	}
}
