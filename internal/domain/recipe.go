package domain

// ReferenceBatchSize is the number of guests every recipe quantity is written for.
const ReferenceBatchSize = 100

// Ingredient is a single recipe line. Quantity is for a reference batch of
// ReferenceBatchSize guests; Unit is free-form and never converted.
type Ingredient struct {
	Name     string  `json:"name" yaml:"name" validate:"required,max=100"`
	Quantity float64 `json:"quantity" yaml:"quantity" validate:"gte=0"`
	Unit     string  `json:"unit" yaml:"unit" validate:"required,max=30"`
}

// Recipe describes how to prepare one menu item
type Recipe struct {
	ID           string       `json:"id" yaml:"id"`
	MenuItemID   string       `json:"menu_item_id" yaml:"menu_item_id" validate:"required"`
	Name         string       `json:"name" yaml:"name" validate:"required,max=100"`
	Instructions string       `json:"instructions" yaml:"instructions"`
	Ingredients  []Ingredient `json:"ingredients" yaml:"ingredients" validate:"dive"`
}

// IngredientCount returns the number of ingredient lines on the recipe
func (r Recipe) IngredientCount() int {
	return len(r.Ingredients)
}
