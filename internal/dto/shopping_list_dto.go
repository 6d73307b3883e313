package dto

import (
	"time"

	"github.com/google/uuid"
)

// --- Requests ---

type IngredientDTO struct {
	Name   string `json:"name" validate:"required,max=200"`
	Amount string `json:"amount" validate:"max=50"`
	Unit   string `json:"unit" validate:"max=50"`
}

type RecipeDTO struct {
	Title       string          `json:"title" validate:"max=200"`
	Ingredients []IngredientDTO `json:"ingredients" validate:"max=100,dive"`
}

// GenerateShoppingListRequest carries a meal plan: day label -> meal slot -> recipe (null when none picked).
// An empty plan passes request validation and is rejected by the generator itself.
type GenerateShoppingListRequest struct {
	MealPlan map[string]map[string]*RecipeDTO `json:"mealPlan" validate:"max=31,dive,keys,required,max=50,endkeys,dive,keys,oneof=breakfast lunch dinner snacks,endkeys"`
}

type ParseResponseRequest struct {
	Response string `json:"response" validate:"required,max=50000"`
}

// --- Responses ---

type ShoppingItemDTO struct {
	Id            string  `json:"id"`
	Name          string  `json:"name"`
	Quantity      float64 `json:"quantity"`
	Unit          string  `json:"unit"`
	Category      string  `json:"category"`
	EstimatedCost float64 `json:"estimatedCost"`
	AlreadyHave   bool    `json:"alreadyHave"`
	Notes         string  `json:"notes"`
}

type ParseStatsDTO struct {
	Items   int `json:"items"`
	Headers int `json:"headers"`
	Skipped int `json:"skipped"`
}

type ShoppingListResponse struct {
	Id         uuid.UUID         `json:"id"`
	Items      []ShoppingItemDTO `json:"items"`
	Categories []string          `json:"categories"` // Canonical order, only those present
	Stats      ParseStatsDTO     `json:"stats"`
	CreatedAt  time.Time         `json:"created_at"`
}

type CategoriesResponse struct {
	Categories []string `json:"categories"`
	Default    string   `json:"default"`
}

// ShoppingListGeneratedMessage is the in-process event payload.
type ShoppingListGeneratedMessage struct {
	ListId         uuid.UUID      `json:"list_id"`
	ItemCount      int            `json:"item_count"`
	CategoryCounts map[string]int `json:"category_counts"`
	GeneratedAt    time.Time      `json:"generated_at"`
}
