package handler

import (
	"net/http"

	"github.com/osse101/CateringPlanner_Go/internal/booking"
	"github.com/osse101/CateringPlanner_Go/internal/domain"
	"github.com/osse101/CateringPlanner_Go/internal/logger"
)

// StatusRequest moves an event to a new lifecycle status
type StatusRequest struct {
	Status domain.EventStatus `json:"status" validate:"required,oneof=pending confirmed completed"`
}

// HandleListEvents lists events, or the calendar day given by ?date=YYYY-MM-DD
// @Summary List events
// @Tags events
// @Produce json
// @Param date query string false "Delivery date (YYYY-MM-DD)"
// @Success 200 {array} domain.Event
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/events [get]
func HandleListEvents(svc booking.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var (
			events []domain.Event
			err    error
		)
		if date := GetOptionalQueryParam(r, QueryDate, ""); date != "" {
			events, err = svc.EventsOnDate(r.Context(), date)
		} else {
			events, err = svc.ListEvents(r.Context())
		}
		if err != nil {
			respondServiceError(w, r, ActionListEvents, err)
			return
		}
		respondJSON(w, http.StatusOK, events)
	}
}

// HandleGetEvent returns one event
// @Summary Get an event
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} domain.Event
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/events/{id} [get]
func HandleGetEvent(svc booking.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetPathParam(r, w, ParamID)
		if !ok {
			return
		}
		e, err := svc.GetEvent(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, ActionGetEvent, err)
			return
		}
		respondJSON(w, http.StatusOK, e)
	}
}

// HandleCreateEvent books a catering event. The total is computed server side.
// @Summary Create an event
// @Tags events
// @Accept json
// @Produce json
// @Param event body domain.Event true "Event"
// @Success 201 {object} domain.Event
// @Failure 400 {object} ValidationErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/events [post]
func HandleCreateEvent(svc booking.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.Event
		if err := decodeRequest(r, w, &req, ActionCreateEvent); err != nil {
			return
		}
		LogRequestFields(logger.FromContext(r.Context()),
			"event_type", req.EventType, "guest_count", req.GuestCount, "date", req.Delivery.DeliveryDate)

		e, err := svc.CreateEvent(r.Context(), req)
		if err != nil {
			respondServiceError(w, r, ActionCreateEvent, err)
			return
		}
		respondJSON(w, http.StatusCreated, e)
	}
}

// HandleUpdateEvent replaces an event
// @Summary Update an event
// @Tags events
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param event body domain.Event true "Event"
// @Success 200 {object} domain.Event
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/events/{id} [put]
func HandleUpdateEvent(svc booking.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetPathParam(r, w, ParamID)
		if !ok {
			return
		}
		var req domain.Event
		if err := decodeRequest(r, w, &req, ActionUpdateEvent); err != nil {
			return
		}
		e, err := svc.UpdateEvent(r.Context(), id, req)
		if err != nil {
			respondServiceError(w, r, ActionUpdateEvent, err)
			return
		}
		respondJSON(w, http.StatusOK, e)
	}
}

// HandleUpdateEventStatus changes an event's status
// @Summary Change event status
// @Tags events
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param status body StatusRequest true "New status"
// @Success 200 {object} domain.Event
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/events/{id}/status [patch]
func HandleUpdateEventStatus(svc booking.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetPathParam(r, w, ParamID)
		if !ok {
			return
		}
		var req StatusRequest
		if err := DecodeAndValidateRequest(r, w, &req, ActionUpdateStatus); err != nil {
			return
		}
		LogRequestFields(logger.FromContext(r.Context()), "event_id", id, "status", req.Status)

		e, err := svc.UpdateStatus(r.Context(), id, req.Status)
		if err != nil {
			respondServiceError(w, r, ActionUpdateStatus, err)
			return
		}
		respondJSON(w, http.StatusOK, e)
	}
}

// HandleDeleteEvent removes an event
// @Summary Delete an event
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/events/{id} [delete]
func HandleDeleteEvent(svc booking.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetPathParam(r, w, ParamID)
		if !ok {
			return
		}
		if err := svc.DeleteEvent(r.Context(), id); err != nil {
			respondServiceError(w, r, ActionDeleteEvent, err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgEventDeleted})
	}
}
