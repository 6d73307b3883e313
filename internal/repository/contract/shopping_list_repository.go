package contract

import (
	"context"
	"errors"

	"ai-shopping-list-be/internal/entity"

	"github.com/google/uuid"
)

var ErrShoppingListNotFound = errors.New("shopping list not found")

// ShoppingListRepository keeps generated lists for a limited time so clients can re-fetch them.
type ShoppingListRepository interface {
	Save(ctx context.Context, list *entity.ShoppingList) error
	FindById(ctx context.Context, id uuid.UUID) (*entity.ShoppingList, error)
	Delete(ctx context.Context, id uuid.UUID) error // ErrShoppingListNotFound when absent
}
