package shopping

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/CateringPlanner_Go/internal/domain"
)

// Clock returns the current time
type Clock func() time.Time

// Formatter renders lists as text. The zero value uses the wall clock.
type Formatter struct {
	Now Clock
}

// NewFormatter creates a formatter that stamps lists with now()
func NewFormatter(now Clock) *Formatter {
	return &Formatter{Now: now}
}

// GenerateShoppingList scales and merges recipes for guestCount guests and
// renders the result, dated today.
func GenerateShoppingList(recipes []domain.Recipe, guestCount float64) string {
	var f Formatter
	return f.Render(Aggregate(recipes, guestCount))
}

// Generate is GenerateShoppingList using the formatter's clock
func (f *Formatter) Generate(recipes []domain.Recipe, guestCount float64) string {
	return f.Render(Aggregate(recipes, guestCount))
}

// Render writes the header, the generation date and one section per unit group.
// An empty list renders the header lines only.
func (f *Formatter) Render(list *List) string {
	var sb strings.Builder
	upper := cases.Upper(language.Und)

	fmt.Fprintf(&sb, HeaderFormat, FormatQuantity(list.GuestCount))
	fmt.Fprintf(&sb, DateLineFormat, f.now().Format(GeneratedLayout))
	sb.WriteString("\n")

	for _, group := range list.Groups() {
		fmt.Fprintf(&sb, SectionFormat, upper.String(group.Unit))
		for _, line := range group.Lines {
			fmt.Fprintf(&sb, LineFormat, line.Name, FormatQuantity(line.Quantity), line.Unit)
		}
	}

	return sb.String()
}

func (f *Formatter) now() time.Time {
	if f == nil || f.Now == nil {
		return time.Now()
	}
	return f.Now()
}

// FormatQuantity prints q in its shortest decimal form: 15, 0.5, 12.25
func FormatQuantity(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}
