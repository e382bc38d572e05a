package domain

import "time"

// EventType is the occasion being catered
type EventType string

const (
	EventTypeWedding   EventType = "wedding"
	EventTypeBirthday  EventType = "birthday"
	EventTypeCorporate EventType = "corporate"
	EventTypeOther     EventType = "other"
)

// EventStatus tracks an event through its lifecycle
type EventStatus string

const (
	EventStatusPending   EventStatus = "pending"
	EventStatusConfirmed EventStatus = "confirmed"
	EventStatusCompleted EventStatus = "completed"
)

// ValidEventStatuses lists every accepted status
var ValidEventStatuses = map[EventStatus]bool{
	EventStatusPending:   true,
	EventStatusConfirmed: true,
	EventStatusCompleted: true,
}

// SelectionType distinguishes combos from individually chosen items
type SelectionType string

const (
	SelectionCombo      SelectionType = "combo"
	SelectionIndividual SelectionType = "individual"
)

// DeliveryDateLayout is the layout of DeliveryInfo.DeliveryDate
const DeliveryDateLayout = "2006-01-02"

// CustomerInfo holds the contact person of an event
type CustomerInfo struct {
	FullName      string `json:"full_name" validate:"required,max=100"`
	ContactNumber string `json:"contact_number" validate:"required,max=30"`
	Email         string `json:"email" validate:"required,email"`
}

// DeliveryInfo holds where and when the food is delivered
type DeliveryInfo struct {
	Address             string `json:"address" validate:"required,max=300"`
	DeliveryDate        string `json:"delivery_date" validate:"required,datetime=2006-01-02"`
	DeliveryTime        string `json:"delivery_time" validate:"required"`
	SpecialInstructions string `json:"special_instructions,omitempty" validate:"max=1000"`
}

// SelectedItem is a menu item chosen for an event. Quantity is a per-guest multiplier.
type SelectedItem struct {
	Type     SelectionType `json:"type" validate:"required,oneof=combo individual"`
	ItemID   string        `json:"item_id" validate:"required"`
	Quantity int           `json:"quantity" validate:"gte=1"`
}

// Event is a booked catering job
type Event struct {
	ID                  string         `json:"id"`
	Customer            CustomerInfo   `json:"customer_info" validate:"required"`
	Delivery            DeliveryInfo   `json:"delivery_info" validate:"required"`
	EventType           EventType      `json:"event_type" validate:"required,oneof=wedding birthday corporate other"`
	GuestCount          int            `json:"guest_count" validate:"gte=1"`
	SelectedItems       []SelectedItem `json:"selected_items" validate:"required,min=1,dive"`
	DietaryRestrictions []string       `json:"dietary_restrictions"`
	AllergenInfo        []string       `json:"allergen_info"`
	SpecialRequests     string         `json:"special_requests,omitempty" validate:"max=1000"`
	Status              EventStatus    `json:"status" validate:"omitempty,oneof=pending confirmed completed"`
	TotalAmount         float64        `json:"total_amount"`
	CreatedAt           time.Time      `json:"created_at,omitempty"`
	UpdatedAt           time.Time      `json:"updated_at,omitempty"`
}

// DeliveryDay parses the delivery date
func (e *Event) DeliveryDay() (time.Time, error) {
	return time.Parse(DeliveryDateLayout, e.Delivery.DeliveryDate)
}
