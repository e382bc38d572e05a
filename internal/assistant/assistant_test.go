package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRespond(t *testing.T) {
	r := NewResponder()

	tests := []struct {
		name         string
		message      string
		expectedType string
		contains     string
	}{
		{"recipe keyword", "Do you have a recipe for dal?", TypeRecipe, `"Do you have a recipe for dal?"`},
		{"how to make beats navigation", "How to make paneer tikka", TypeRecipe, "cooking techniques"},
		{"cook keyword", "what should I COOK", TypeRecipe, "recipes"},
		{"navigation new event", "How do I add a new event?", TypeNavigation, "Fill out customer details"},
		{"navigation calendar", "Where is the calendar", TypeNavigation, "Click on any date"},
		{"navigation food items", "what about food items", TypeNavigation, "Add Food Item"},
		{"navigation download", "How can I download ingredients", TypeNavigation, "scaled based on guest count"},
		{"navigation fallback", "where am I", TypeNavigation, "navigate the application"},
		{"default", "hello there", TypeText, "What would you like to know?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := r.Respond(tt.message)
			assert.Equal(t, tt.expectedType, resp.Type)
			assert.Contains(t, resp.Text, tt.contains)
		})
	}
}

func TestTopics(t *testing.T) {
	assert.Equal(t,
		[]string{"new event", "calendar", "food items", "download ingredients"},
		NewResponder().Topics())
}
