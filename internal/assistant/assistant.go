package assistant

import (
	"fmt"
	"strings"
)

// Response is the assistant's reply to one message
type Response struct {
	Text string `json:"text"`
	Type string `json:"type"`
}

// Guide is a canned navigation answer for a topic
type Guide struct {
	Topic string
	Text  string
}

// Responder answers chat messages from a fixed keyword table
type Responder struct {
	guides []Guide
}

// NewResponder creates a responder with the built-in guides
func NewResponder() *Responder {
	return &Responder{guides: guides}
}

// Respond picks a reply for message. Matching is case-insensitive substring search.
func (r *Responder) Respond(message string) Response {
	lower := strings.ToLower(message)

	if containsAny(lower, RecipeKeywords) {
		return Response{Text: fmt.Sprintf(recipeReplyFormat, message), Type: TypeRecipe}
	}

	if containsAny(lower, NavigationKeywords) {
		return Response{Text: r.navigate(lower), Type: TypeNavigation}
	}

	return Response{Text: defaultReply, Type: TypeText}
}

// Topics lists the navigation topics the responder knows about
func (r *Responder) Topics() []string {
	topics := make([]string, len(r.guides))
	for i, g := range r.guides {
		topics[i] = g.Topic
	}
	return topics
}

func (r *Responder) navigate(lower string) string {
	for _, g := range r.guides {
		if strings.Contains(lower, g.Topic) {
			return g.Text
		}
	}
	return navigationFallback
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
