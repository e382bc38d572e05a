package pricing

import "github.com/osse101/CateringPlanner_Go/internal/domain"

// EventTotal returns the price of an event's selections.
// Selection quantity is a per-guest multiplier, so each line costs
// price * quantity * guestCount. Selections whose menu item is unknown are skipped.
func EventTotal(items []domain.SelectedItem, menu map[string]domain.MenuItem, guestCount int) float64 {
	var total float64
	for _, item := range items {
		menuItem, ok := menu[item.ItemID]
		if !ok {
			continue
		}
		total += LineTotal(menuItem.Price, item.Quantity, guestCount)
	}
	return total
}

// LineTotal is the price of one selection
func LineTotal(price float64, quantity, guestCount int) float64 {
	return price * float64(quantity) * float64(guestCount)
}

// IndexMenu builds the lookup EventTotal expects
func IndexMenu(items []domain.MenuItem) map[string]domain.MenuItem {
	menu := make(map[string]domain.MenuItem, len(items))
	for _, item := range items {
		menu[item.ID] = item
	}
	return menu
}
