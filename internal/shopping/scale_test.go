package shopping

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CateringPlanner_Go/internal/domain"
)

func testRecipe() domain.Recipe {
	return domain.Recipe{
		ID:         "r-1",
		MenuItemID: "m-1",
		Name:       "Vegetable Biryani",
		Ingredients: []domain.Ingredient{
			{Name: "Basmati Rice", Quantity: 20, Unit: "kg"},
			{Name: "Ghee", Quantity: 2.5, Unit: "l"},
			{Name: "Saffron", Quantity: 0.03, Unit: "kg"},
			{Name: "Onion", Quantity: 12.346, Unit: "kg"},
		},
	}
}

func TestScale_Linearity(t *testing.T) {
	recipe := testRecipe()

	for _, guests := range []float64{1, 7, 33, 50, 100, 150, 275, 1000} {
		scaled := Scale(recipe, guests)
		require.Len(t, scaled, len(recipe.Ingredients))
		for i, ing := range recipe.Ingredients {
			want := math.Round(ing.Quantity*(guests/100)*100) / 100
			assert.Equal(t, want, scaled[i].Quantity, "guests=%v ingredient=%s", guests, ing.Name)
		}
	}
}

func TestScale_ReferenceBatchIsIdentity(t *testing.T) {
	recipe := testRecipe()

	scaled := Scale(recipe, domain.ReferenceBatchSize)

	assert.Equal(t, 20.0, scaled[0].Quantity)
	assert.Equal(t, 2.5, scaled[1].Quantity)
	assert.Equal(t, 0.03, scaled[2].Quantity)
	assert.Equal(t, 12.35, scaled[3].Quantity, "reference quantities are still rounded to 2 decimals")
}

func TestScale_ZeroGuests(t *testing.T) {
	recipe := testRecipe()

	scaled := Scale(recipe, 0)

	require.Len(t, scaled, len(recipe.Ingredients))
	for i, ing := range recipe.Ingredients {
		assert.Equal(t, ing.Name, scaled[i].Name)
		assert.Equal(t, ing.Unit, scaled[i].Unit)
		assert.Zero(t, scaled[i].Quantity)
		assert.False(t, math.Signbit(scaled[i].Quantity))
	}
}

func TestScale_PreservesOrderAndDoesNotMutate(t *testing.T) {
	recipe := testRecipe()
	before := append([]domain.Ingredient(nil), recipe.Ingredients...)

	scaled := Scale(recipe, 50)

	assert.Equal(t, before, recipe.Ingredients)
	names := make([]string, len(scaled))
	for i, s := range scaled {
		names[i] = s.Name
	}
	assert.Equal(t, []string{"Basmati Rice", "Ghee", "Saffron", "Onion"}, names)
	assert.Equal(t, 10.0, scaled[0].Quantity)
	assert.Equal(t, 1.25, scaled[1].Quantity)
}

func TestScale_EmptyRecipe(t *testing.T) {
	scaled := Scale(domain.Recipe{Name: "Water"}, 80)

	assert.NotNil(t, scaled)
	assert.Empty(t, scaled)
}

func TestScale_MalformedInputPassesThrough(t *testing.T) {
	recipe := domain.Recipe{Ingredients: []domain.Ingredient{
		{Name: "", Quantity: -4, Unit: "kg"},
	}}

	scaled := Scale(recipe, 50)

	require.Len(t, scaled, 1)
	assert.Equal(t, "", scaled[0].Name)
	assert.Equal(t, -2.0, scaled[0].Quantity)
}

func TestRoundQuantity(t *testing.T) {
	tests := []struct {
		name     string
		in       float64
		expected float64
	}{
		{"whole number", 15, 15},
		{"already two decimals", 0.25, 0.25},
		{"rounds down", 2.3449, 2.34},
		{"rounds up", 2.346, 2.35},
		{"half rounds away from zero", 0.125, 0.13},
		{"tiny negative becomes zero", -0.001, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RoundQuantity(tt.in)
			assert.Equal(t, tt.expected, got)
			assert.False(t, math.Signbit(got) && got == 0, "negative zero leaked")
		})
	}
}

func TestScaleFactor(t *testing.T) {
	assert.Equal(t, 0.5, ScaleFactor(50))
	assert.Equal(t, 1.0, ScaleFactor(100))
	assert.Equal(t, 2.5, ScaleFactor(250))
	assert.Equal(t, 0.0, ScaleFactor(0))
}
