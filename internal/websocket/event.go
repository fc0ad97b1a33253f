package websocket

import (
	"encoding/json"
	"fmt"
	"time"
)

// EventType represents the type of event (created, updated, deleted)
type EventType string

const (
	EventTypeCreated EventType = "created"
	EventTypeUpdated EventType = "updated"
	EventTypeDeleted EventType = "deleted"
	EventTypeCleared EventType = "cleared"
)

// EntityType represents the type of entity the event is about
type EntityType string

const (
	EntityTypePaymentRecord  EntityType = "payment_record"
	EntityTypeRecipe         EntityType = "recipe"
	EntityTypeMealAssignment EntityType = "meal_assignment"
)

// Event represents a WebSocket event message sent to clients
// Format: { type, entity, payload, timestamp }
type Event struct {
	Type      string      `json:"type"`      // Combined type e.g. "payment_record.updated"
	Entity    EntityType  `json:"entity"`    // Entity type e.g. "payment_record"
	Payload   interface{} `json:"payload"`   // Full entity data
	Timestamp time.Time   `json:"timestamp"` // Event timestamp
}

// NewEvent creates a new event with the given type, entity, and payload
func NewEvent(eventType EventType, entityType EntityType, payload interface{}) Event {
	return Event{
		Type:      fmt.Sprintf("%s.%s", entityType, eventType),
		Entity:    entityType,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	}
}

// ToJSON serializes the event to JSON bytes
func (e Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// PaymentRecordUpdated creates a payment_record.updated event. Upserts
// and edits both use it; clients recompute the schedule either way.
func PaymentRecordUpdated(payload interface{}) Event {
	return NewEvent(EventTypeUpdated, EntityTypePaymentRecord, payload)
}

// PaymentRecordDeleted creates a payment_record.deleted event
func PaymentRecordDeleted(payload interface{}) Event {
	return NewEvent(EventTypeDeleted, EntityTypePaymentRecord, payload)
}

// PaymentLedgerCleared creates a payment_record.cleared event
func PaymentLedgerCleared(payload interface{}) Event {
	return NewEvent(EventTypeCleared, EntityTypePaymentRecord, payload)
}

// RecipeCreated creates a recipe.created event
func RecipeCreated(payload interface{}) Event {
	return NewEvent(EventTypeCreated, EntityTypeRecipe, payload)
}

// RecipeUpdated creates a recipe.updated event
func RecipeUpdated(payload interface{}) Event {
	return NewEvent(EventTypeUpdated, EntityTypeRecipe, payload)
}

// RecipeDeleted creates a recipe.deleted event
func RecipeDeleted(payload interface{}) Event {
	return NewEvent(EventTypeDeleted, EntityTypeRecipe, payload)
}

// MealAssignmentUpdated creates a meal_assignment.updated event
func MealAssignmentUpdated(payload interface{}) Event {
	return NewEvent(EventTypeUpdated, EntityTypeMealAssignment, payload)
}

// MealAssignmentCleared creates a meal_assignment.cleared event
func MealAssignmentCleared(payload interface{}) Event {
	return NewEvent(EventTypeCleared, EntityTypeMealAssignment, payload)
}
