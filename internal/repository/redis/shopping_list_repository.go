package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"ai-shopping-list-be/internal/entity"
	"ai-shopping-list-be/internal/repository/contract"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

const keyPrefix = "shopping_list:"

// ShoppingListRepository shares generated lists between service replicas.
type ShoppingListRepository struct {
	rdb *goredis.Client
	ttl time.Duration
}

var _ contract.ShoppingListRepository = (*ShoppingListRepository)(nil)

func NewShoppingListRepository(rdb *goredis.Client, ttl time.Duration) *ShoppingListRepository {
	return &ShoppingListRepository{rdb: rdb, ttl: ttl}
}

func key(id uuid.UUID) string {
	return keyPrefix + id.String()
}

func (r *ShoppingListRepository) Save(ctx context.Context, list *entity.ShoppingList) error {
	payload, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("marshal shopping list: %w", err)
	}
	if err := r.rdb.Set(ctx, key(list.Id), payload, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (r *ShoppingListRepository) FindById(ctx context.Context, id uuid.UUID) (*entity.ShoppingList, error) {
	raw, err := r.rdb.Get(ctx, key(id)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, contract.ErrShoppingListNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get: %w", err)
	}

	var list entity.ShoppingList
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("unmarshal shopping list: %w", err)
	}
	return &list, nil
}

func (r *ShoppingListRepository) Delete(ctx context.Context, id uuid.UUID) error {
	removed, err := r.rdb.Del(ctx, key(id)).Result()
	if err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	if removed == 0 {
		return contract.ErrShoppingListNotFound
	}
	return nil
}
