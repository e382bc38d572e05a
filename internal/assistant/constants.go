package assistant

// Response types
const (
	TypeText       = "text"
	TypeRecipe     = "recipe"
	TypeNavigation = "navigation"
)

// Keywords that route a message. Recipe keywords are checked first.
var (
	RecipeKeywords     = []string{"recipe", "how to make", "cook"}
	NavigationKeywords = []string{"how", "where", "what"}
)

const (
	recipeReplyFormat = "Here's what I found about %q:\n\n" +
		"I can help you find recipes and cooking instructions. " +
		"Would you like me to search for specific recipes or cooking techniques?"

	navigationFallback = "How can I help you navigate the application? You can ask about:\n" +
		"- Creating new events\n" +
		"- Using the calendar\n" +
		"- Managing food items\n" +
		"- Downloading ingredients"

	defaultReply = "I can help you with:\n" +
		"- Finding recipes and cooking instructions\n" +
		"- Navigating the application\n" +
		"- Managing events and food items\n\n" +
		"What would you like to know?"
)

// guides are matched in order; the first topic contained in the message wins
var guides = []Guide{
	{
		Topic: "new event",
		Text: "To create a new event:\n1. Click the \"New Event\" tab\n2. Fill out customer details\n" +
			"3. Select food items\n4. Add delivery information\n5. Review and submit",
	},
	{
		Topic: "calendar",
		Text:  "To view the calendar:\n1. Click the \"Calendar\" tab\n2. Click on any date to view events\n3. Click an event to see details",
	},
	{
		Topic: "food items",
		Text: "To manage food items:\n1. Go to \"Management\" tab\n2. Click \"Add Food Item\" to create new items\n" +
			"3. Use edit/delete buttons to modify existing items",
	},
	{
		Topic: "download ingredients",
		Text: "To download ingredients list:\n1. Open the event in calendar view\n2. Click \"Download Ingredients\"\n" +
			"3. The list will be scaled based on guest count",
	},
}
