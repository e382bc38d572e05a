package shopping

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/CateringPlanner_Go/internal/domain"
)

// Line is the running total for one ingredient within a unit group
type Line struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// UnitGroup is one section of the shopping list
type UnitGroup struct {
	Unit  string `json:"unit"`
	Lines []Line `json:"lines"`
}

type unitGroup struct {
	unit   string
	lines  []Line
	byName map[string]int // lower-cased name -> index into lines
}

// List accumulates scaled ingredients grouped by unit.
// Units keep first-seen order; a List is not safe for concurrent use.
type List struct {
	GuestCount float64

	groups []*unitGroup
	byUnit map[string]*unitGroup
	fold   cases.Caser
}

// NewList creates an empty list for guestCount guests
func NewList(guestCount float64) *List {
	return &List{
		GuestCount: guestCount,
		byUnit:     make(map[string]*unitGroup),
		fold:       cases.Lower(language.Und),
	}
}

// Aggregate scales every recipe to guestCount and merges the results, in input order
func Aggregate(recipes []domain.Recipe, guestCount float64) *List {
	list := NewList(guestCount)
	for _, recipe := range recipes {
		list.AddRecipe(recipe)
	}
	return list
}

// AddRecipe scales recipe to the list's guest count and adds each ingredient
func (l *List) AddRecipe(recipe domain.Recipe) {
	for _, ing := range Scale(recipe, l.GuestCount) {
		l.Add(ing)
	}
}

// Add merges one scaled ingredient into its unit group.
// A name already present in the group (ignoring case) has its quantity
// increased; otherwise a new line keeps the incoming casing.
func (l *List) Add(ing ScaledIngredient) {
	group, ok := l.byUnit[ing.Unit]
	if !ok {
		group = &unitGroup{unit: ing.Unit, byName: make(map[string]int)}
		l.byUnit[ing.Unit] = group
		l.groups = append(l.groups, group)
	}

	key := l.fold.String(ing.Name)
	if idx, found := group.byName[key]; found {
		group.lines[idx].Quantity += ing.Quantity
		return
	}

	group.byName[key] = len(group.lines)
	group.lines = append(group.lines, Line{
		Name:     ing.Name,
		Quantity: ing.Quantity,
		Unit:     ing.Unit,
	})
}

// Groups returns the unit groups in first-seen order with each group's lines
// sorted by name (case-sensitive). The returned slices are copies.
func (l *List) Groups() []UnitGroup {
	out := make([]UnitGroup, 0, len(l.groups))
	for _, g := range l.groups {
		lines := slices.Clone(g.lines)
		slices.SortStableFunc(lines, func(a, b Line) int {
			return strings.Compare(a.Name, b.Name)
		})
		out = append(out, UnitGroup{Unit: g.unit, Lines: lines})
	}
	return out
}

// Len returns the number of aggregated lines across all groups
func (l *List) Len() int {
	n := 0
	for _, g := range l.groups {
		n += len(g.lines)
	}
	return n
}

// Empty reports whether no ingredient has been added
func (l *List) Empty() bool {
	return len(l.groups) == 0
}
