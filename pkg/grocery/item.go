package grocery

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// ShoppingItem is one structured line of a generated shopping list.
type ShoppingItem struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Quantity      float64  `json:"quantity"`
	Unit          string   `json:"unit"`
	Category      Category `json:"category"`
	EstimatedCost float64  `json:"estimatedCost"`
	AlreadyHave   bool     `json:"alreadyHave"`
	Notes         string   `json:"notes"`
}

// NewShoppingItem builds an item with the construction defaults:
// no estimated cost, not already owned, no notes.
func NewShoppingItem(id, name string, quantity float64, unit string, category Category) ShoppingItem {
	return ShoppingItem{
		ID:       id,
		Name:     name,
		Quantity: quantity,
		Unit:     unit,
		Category: category,
	}
}

// IDGenerator hands out item ids. Ids only need to be unique within one generation call.
type IDGenerator interface {
	NextID() string
}

// SequentialIDs produces "<prefix>-1", "<prefix>-2", ... and is safe for concurrent use.
type SequentialIDs struct {
	prefix string
	next   atomic.Uint64
}

func NewSequentialIDs(prefix string) *SequentialIDs {
	if prefix == "" {
		prefix = "item"
	}
	return &SequentialIDs{prefix: prefix}
}

func (s *SequentialIDs) NextID() string {
	return fmt.Sprintf("%s-%d", s.prefix, s.next.Add(1))
}

// UUIDGenerator produces random UUIDv4 ids.
type UUIDGenerator struct{}

func (UUIDGenerator) NextID() string {
	return uuid.NewString()
}
