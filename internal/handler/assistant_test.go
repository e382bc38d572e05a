package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/CateringPlanner_Go/internal/assistant"
	"github.com/osse101/CateringPlanner_Go/mocks"
)

func TestHandleAssistant(t *testing.T) {
	InitValidator()

	t.Run("Replies", func(t *testing.T) {
		a := mocks.NewMockAssistant(t)
		a.On("Respond", "where is the calendar?").
			Return(assistant.Response{Text: "Open the calendar tab.", Type: assistant.TypeNavigation})

		w := serve(HandleAssistant(a), newRequest(t, http.MethodPost, "/api/v1/assistant",
			AssistantRequest{Message: "where is the calendar?"}, nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"text":"Open the calendar tab.","type":"navigation"}`, w.Body.String())
	})

	t.Run("Blank Message", func(t *testing.T) {
		a := mocks.NewMockAssistant(t)
		w := serve(HandleAssistant(a), newRequest(t, http.MethodPost, "/api/v1/assistant",
			AssistantRequest{Message: "   "}, nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgEmptyMessage)
	})

	t.Run("Real Responder", func(t *testing.T) {
		w := serve(HandleAssistant(assistant.NewResponder()), newRequest(t, http.MethodPost, "/api/v1/assistant",
			AssistantRequest{Message: "How to make biryani"}, nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"type":"recipe"`)
	})
}
