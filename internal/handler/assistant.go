package handler

import (
	"net/http"
	"strings"

	"github.com/osse101/CateringPlanner_Go/internal/assistant"
)

// Assistant answers chat widget messages
type Assistant interface {
	Respond(message string) assistant.Response
}

// AssistantRequest is one chat message
type AssistantRequest struct {
	Message string `json:"message" validate:"required,max=1000"`
}

// HandleAssistant replies to a chat message
// @Summary Ask the assistant
// @Tags assistant
// @Accept json
// @Produce json
// @Param request body AssistantRequest true "Message"
// @Success 200 {object} assistant.Response
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/assistant [post]
func HandleAssistant(a Assistant) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AssistantRequest
		if err := DecodeAndValidateRequest(r, w, &req, ActionAssistant); err != nil {
			return
		}
		if strings.TrimSpace(req.Message) == "" {
			respondError(w, http.StatusBadRequest, ErrMsgEmptyMessage)
			return
		}
		respondJSON(w, http.StatusOK, a.Respond(req.Message))
	}
}
