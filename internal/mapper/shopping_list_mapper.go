package mapper

import (
	"ai-shopping-list-be/internal/dto"
	"ai-shopping-list-be/internal/entity"
	"ai-shopping-list-be/pkg/grocery"
)

func ToMealPlan(req *dto.GenerateShoppingListRequest) grocery.MealPlan {
	if req == nil || req.MealPlan == nil {
		return nil
	}

	plan := make(grocery.MealPlan, len(req.MealPlan))
	for day, meals := range req.MealPlan {
		dayPlan := make(grocery.DayPlan, len(meals))
		for slot, recipe := range meals {
			dayPlan[grocery.MealSlot(slot)] = toRecipe(recipe)
		}
		plan[day] = dayPlan
	}
	return plan
}

func toRecipe(r *dto.RecipeDTO) *grocery.Recipe {
	if r == nil {
		return nil
	}

	ingredients := make([]grocery.Ingredient, 0, len(r.Ingredients))
	for _, ing := range r.Ingredients {
		ingredients = append(ingredients, grocery.Ingredient{
			Name:   ing.Name,
			Amount: ing.Amount,
			Unit:   ing.Unit,
		})
	}
	return &grocery.Recipe{Title: r.Title, Ingredients: ingredients}
}

func ToShoppingItemDTO(item grocery.ShoppingItem) dto.ShoppingItemDTO {
	return dto.ShoppingItemDTO{
		Id:            item.ID,
		Name:          item.Name,
		Quantity:      item.Quantity,
		Unit:          item.Unit,
		Category:      string(item.Category),
		EstimatedCost: item.EstimatedCost,
		AlreadyHave:   item.AlreadyHave,
		Notes:         item.Notes,
	}
}

func ToShoppingListResponse(list *entity.ShoppingList) *dto.ShoppingListResponse {
	items := make([]dto.ShoppingItemDTO, 0, len(list.Items))
	for _, item := range list.Items {
		items = append(items, ToShoppingItemDTO(item))
	}

	return &dto.ShoppingListResponse{
		Id:         list.Id,
		Items:      items,
		Categories: PresentCategories(list.Items),
		Stats: dto.ParseStatsDTO{
			Items:   len(list.Items),
			Headers: list.Headers,
			Skipped: list.Skipped,
		},
		CreatedAt: list.CreatedAt,
	}
}

// PresentCategories lists the categories used by items, in canonical order.
func PresentCategories(items []grocery.ShoppingItem) []string {
	seen := make(map[grocery.Category]bool)
	for _, item := range items {
		seen[item.Category] = true
	}

	out := make([]string, 0, len(seen))
	for _, c := range grocery.Categories() {
		if seen[c] {
			out = append(out, string(c))
		}
	}
	return out
}

// CategoryCounts tallies items per category.
func CategoryCounts(items []grocery.ShoppingItem) map[string]int {
	counts := make(map[string]int)
	for _, item := range items {
		counts[string(item.Category)]++
	}
	return counts
}
