package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CateringPlanner_Go/internal/domain"
)

func TestStructValidator_MenuItem(t *testing.T) {
	v := NewStructValidator()

	tests := []struct {
		name    string
		item    domain.MenuItem
		wantErr bool
	}{
		{"valid", domain.MenuItem{Name: "Samosa", Category: domain.CategoryAppetizer, Price: 2.5}, false},
		{"unknown category", domain.MenuItem{Name: "Samosa", Category: "snack"}, true},
		{"missing name", domain.MenuItem{Category: domain.CategoryDessert}, true},
		{"negative price", domain.MenuItem{Name: "Kulfi", Category: domain.CategoryDessert, Price: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.item)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestStructValidator_Event(t *testing.T) {
	v := NewStructValidator()

	valid := domain.Event{
		Customer:      domain.CustomerInfo{FullName: "Asha Rao", ContactNumber: "555-0100", Email: "asha@example.com"},
		Delivery:      domain.DeliveryInfo{Address: "1 Main St", DeliveryDate: "2026-11-02", DeliveryTime: "18:00"},
		EventType:     domain.EventTypeWedding,
		GuestCount:    120,
		SelectedItems: []domain.SelectedItem{{Type: domain.SelectionIndividual, ItemID: "m1", Quantity: 1}},
	}
	assert.NoError(t, v.Struct(valid))

	badDate := valid
	badDate.Delivery.DeliveryDate = "11/02/2026"
	assert.Error(t, v.Struct(badDate))

	noGuests := valid
	noGuests.GuestCount = 0
	assert.Error(t, v.Struct(noGuests))

	noItems := valid
	noItems.SelectedItems = nil
	assert.Error(t, v.Struct(noItems))
}

func TestStructValidator_ReportsJSONFieldNames(t *testing.T) {
	v := NewStructValidator()

	err := v.Struct(domain.Recipe{Name: "Dal"})
	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	require.Len(t, errs, 1)
	assert.Equal(t, "menu_item_id", errs[0].Field())
}
