package domain

// MenuCategory groups menu items on the management screen
type MenuCategory string

const (
	CategoryAppetizer  MenuCategory = "appetizer"
	CategoryMainCourse MenuCategory = "mainCourse"
	CategoryDessert    MenuCategory = "dessert"
	CategoryBeverage   MenuCategory = "beverage"
	CategoryCombo      MenuCategory = "combo"
)

// ValidMenuCategories lists every accepted category
var ValidMenuCategories = map[MenuCategory]bool{
	CategoryAppetizer:  true,
	CategoryMainCourse: true,
	CategoryDessert:    true,
	CategoryBeverage:   true,
	CategoryCombo:      true,
}

// MenuItem is a dish or combo that can be selected for an event
type MenuItem struct {
	ID           string       `json:"id" yaml:"id"`
	Name         string       `json:"name" yaml:"name" validate:"required,max=100"`
	Description  string       `json:"description" yaml:"description" validate:"max=500"`
	Category     MenuCategory `json:"category" yaml:"category" validate:"required,menucategory"`
	Price        float64      `json:"price" yaml:"price" validate:"gte=0"`
	IsVegetarian bool         `json:"is_vegetarian" yaml:"is_vegetarian"`
	Allergens    []string     `json:"allergens" yaml:"allergens"`
}
