package memory

import (
	"context"
	"time"

	"ai-shopping-list-be/internal/entity"
	"ai-shopping-list-be/internal/repository/contract"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

type ShoppingListRepository struct {
	cache *cache.Cache
}

var _ contract.ShoppingListRepository = (*ShoppingListRepository)(nil)

// NewShoppingListRepository keeps lists for ttl and purges expired ones every ttl/6.
func NewShoppingListRepository(ttl time.Duration) *ShoppingListRepository {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &ShoppingListRepository{
		cache: cache.New(ttl, ttl/6),
	}
}

func (r *ShoppingListRepository) Save(ctx context.Context, list *entity.ShoppingList) error {
	r.cache.Set(list.Id.String(), list, cache.DefaultExpiration)
	return nil
}

func (r *ShoppingListRepository) FindById(ctx context.Context, id uuid.UUID) (*entity.ShoppingList, error) {
	if x, found := r.cache.Get(id.String()); found {
		return x.(*entity.ShoppingList), nil
	}
	return nil, contract.ErrShoppingListNotFound
}

func (r *ShoppingListRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, found := r.cache.Get(id.String()); !found {
		return contract.ErrShoppingListNotFound
	}
	r.cache.Delete(id.String())
	return nil
}
