package websocket

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent_CombinedType(t *testing.T) {
	event := NewEvent(EventTypeUpdated, EntityTypePaymentRecord, nil)

	assert.Equal(t, "payment_record.updated", event.Type)
	assert.Equal(t, EntityTypePaymentRecord, event.Entity)
	assert.False(t, event.Timestamp.IsZero())
}

func TestEvent_ToJSON(t *testing.T) {
	event := RecipeCreated(map[string]string{"name": "Nasi lemak"})

	data, err := event.ToJSON()
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "recipe.created", decoded["type"])
	assert.Equal(t, "recipe", decoded["entity"])

	payload, ok := decoded["payload"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Nasi lemak", payload["name"])
}

func TestEventConstructors(t *testing.T) {
	tests := []struct {
		name     string
		event    Event
		wantType string
	}{
		{"payment record updated", PaymentRecordUpdated(nil), "payment_record.updated"},
		{"payment record deleted", PaymentRecordDeleted(nil), "payment_record.deleted"},
		{"payment ledger cleared", PaymentLedgerCleared(nil), "payment_record.cleared"},
		{"recipe created", RecipeCreated(nil), "recipe.created"},
		{"recipe updated", RecipeUpdated(nil), "recipe.updated"},
		{"recipe deleted", RecipeDeleted(nil), "recipe.deleted"},
		{"meal assignment updated", MealAssignmentUpdated(nil), "meal_assignment.updated"},
		{"meal assignment cleared", MealAssignmentCleared(nil), "meal_assignment.cleared"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantType, tt.event.Type)
		})
	}
}
