package entity

import (
	"time"

	"ai-shopping-list-be/pkg/grocery"

	"github.com/google/uuid"
)

// ShoppingList is one generation result kept for later retrieval.
type ShoppingList struct {
	Id        uuid.UUID              `json:"id"`
	Items     []grocery.ShoppingItem `json:"items"`
	Headers   int                    `json:"headers"`
	Skipped   int                    `json:"skipped"`
	CreatedAt time.Time              `json:"created_at"`
}
