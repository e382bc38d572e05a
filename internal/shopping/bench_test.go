package shopping

import (
	"fmt"
	"testing"

	"github.com/osse101/CateringPlanner_Go/internal/domain"
)

func benchRecipes(n, ingredients int) []domain.Recipe {
	units := []string{"kg", "g", "l", "ml", "pcs"}
	recipes := make([]domain.Recipe, n)
	for i := range recipes {
		ings := make([]domain.Ingredient, ingredients)
		for j := range ings {
			ings[j] = domain.Ingredient{
				Name:     fmt.Sprintf("Ingredient %d", j),
				Quantity: float64(j%7) + 0.25,
				Unit:     units[j%len(units)],
			}
		}
		recipes[i] = domain.Recipe{ID: fmt.Sprintf("r-%d", i), Ingredients: ings}
	}
	return recipes
}

func BenchmarkAggregate(b *testing.B) {
	recipes := benchRecipes(20, 15)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Aggregate(recipes, 250)
	}
}

func BenchmarkGenerate(b *testing.B) {
	recipes := benchRecipes(20, 15)
	f := NewFormatter(fixedClock())
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = f.Generate(recipes, 250)
	}
}
