package events

import "time"

const (
	TypeShoppingListGenerated = "SHOPPING_LIST_GENERATED"
)

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "SHOPPING_LIST_GENERATED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the plain-data Event used throughout the service.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// NewShoppingListGenerated describes a finished generation: the list id,
// its size and how many items landed in each category.
func NewShoppingListGenerated(listId string, itemCount int, categoryCounts map[string]int, occurredAt time.Time) BaseEvent {
	return BaseEvent{
		Type: TypeShoppingListGenerated,
		Data: map[string]interface{}{
			"list_id":         listId,
			"item_count":      itemCount,
			"category_counts": categoryCounts,
			"occurred_at":     occurredAt.Format(time.RFC3339),
		},
		OccurredAt: occurredAt,
	}
}
