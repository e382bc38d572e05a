package shopping

import (
	"math"

	"github.com/osse101/CateringPlanner_Go/internal/domain"
)

// ScaledIngredient is an ingredient whose quantity has been scaled to a guest count
type ScaledIngredient struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// ScaleFactor returns the multiplier that turns a reference batch into guestCount servings
func ScaleFactor(guestCount float64) float64 {
	return guestCount / domain.ReferenceBatchSize
}

// Scale returns the recipe's ingredients scaled to guestCount, in recipe order.
// The recipe is not modified.
func Scale(recipe domain.Recipe, guestCount float64) []ScaledIngredient {
	factor := ScaleFactor(guestCount)

	scaled := make([]ScaledIngredient, 0, len(recipe.Ingredients))
	for _, ing := range recipe.Ingredients {
		scaled = append(scaled, ScaledIngredient{
			Name:     ing.Name,
			Quantity: RoundQuantity(ing.Quantity * factor),
			Unit:     ing.Unit,
		})
	}
	return scaled
}

// RoundQuantity rounds q to QuantityPrecision decimals, half away from zero
func RoundQuantity(q float64) float64 {
	pow := math.Pow10(QuantityPrecision)
	r := math.Round(q*pow) / pow
	if r == 0 {
		// drop negative zero
		return 0
	}
	return r
}
