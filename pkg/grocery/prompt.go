package grocery

import (
	"fmt"
	"sort"
	"strings"
)

// MealSlot names a meal within a day.
type MealSlot string

const (
	SlotBreakfast MealSlot = "breakfast"
	SlotLunch     MealSlot = "lunch"
	SlotDinner    MealSlot = "dinner"
	SlotSnacks    MealSlot = "snacks"
)

const NoRecipePlaceholder = "No recipe selected"

var slotOrder = []MealSlot{SlotBreakfast, SlotLunch, SlotDinner, SlotSnacks}

var weekdayOrder = map[string]int{
	"monday":    0,
	"tuesday":   1,
	"wednesday": 2,
	"thursday":  3,
	"friday":    4,
	"saturday":  5,
	"sunday":    6,
}

// Ingredient is one ingredient line of a recipe.
type Ingredient struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
	Unit   string `json:"unit"`
}

// Recipe is the part of a recipe the prompt needs.
type Recipe struct {
	Title       string       `json:"title"`
	Ingredients []Ingredient `json:"ingredients"`
}

// DayPlan maps meal slots to the recipe chosen for them. A nil recipe means nothing was picked.
type DayPlan map[MealSlot]*Recipe

// MealPlan maps day labels ("Monday", "Day 1", ...) to that day's meals.
type MealPlan map[string]DayPlan

// SystemInstruction tells the model which categories exist and how to format lines.
func SystemInstruction() string {
	names := make([]string, 0, len(canonicalCategories))
	for _, c := range canonicalCategories {
		names = append(names, string(c))
	}

	return `You are a helpful assistant that creates organized grocery shopping lists from meal plans.

Rules:
- Combine duplicate ingredients across meals and sum their quantities.
- Group items under these categories only: ` + strings.Join(names, ", ") + `.
- Write each category as a header line "Category:" on its own line.
- Write each item on its own line as "- Item name - quantity unit".
- Use a single word for the unit (e.g. "2 lbs", "1 gallon", "3 items").
- NO explanations, NO markdown tables, NO extra text.`
}

// BuildPrompt renders the meal plan in a stable order: weekdays first
// (Monday..Sunday), other day labels alphabetically; canonical slots first,
// other slots alphabetically.
func BuildPrompt(plan MealPlan) string {
	var sb strings.Builder
	sb.WriteString("Create a shopping list for the following meal plan:\n")

	for _, day := range sortedDays(plan) {
		sb.WriteString(fmt.Sprintf("\n%s:\n", day))

		meals := plan[day]
		for _, slot := range sortedSlots(meals) {
			recipe := meals[slot]
			if recipe == nil || strings.TrimSpace(recipe.Title) == "" {
				sb.WriteString(fmt.Sprintf("- %s: %s\n", slot, NoRecipePlaceholder))
				continue
			}

			sb.WriteString(fmt.Sprintf("- %s: %s\n", slot, recipe.Title))
			sb.WriteString(fmt.Sprintf("  Ingredients: %s\n", formatIngredients(recipe.Ingredients)))
		}
	}

	return sb.String()
}

func formatIngredients(ingredients []Ingredient) string {
	if len(ingredients) == 0 {
		return "none listed"
	}

	parts := make([]string, 0, len(ingredients))
	for _, ing := range ingredients {
		fields := make([]string, 0, 3)
		for _, f := range []string{ing.Amount, ing.Unit, ing.Name} {
			if f = strings.TrimSpace(f); f != "" {
				fields = append(fields, f)
			}
		}
		if len(fields) > 0 {
			parts = append(parts, strings.Join(fields, " "))
		}
	}
	if len(parts) == 0 {
		return "none listed"
	}
	return strings.Join(parts, ", ")
}

func sortedDays(plan MealPlan) []string {
	days := make([]string, 0, len(plan))
	for day := range plan {
		days = append(days, day)
	}

	sort.Slice(days, func(i, j int) bool {
		wi, iKnown := weekdayOrder[strings.ToLower(strings.TrimSpace(days[i]))]
		wj, jKnown := weekdayOrder[strings.ToLower(strings.TrimSpace(days[j]))]
		switch {
		case iKnown && jKnown:
			return wi < wj
		case iKnown != jKnown:
			return iKnown
		default:
			return days[i] < days[j]
		}
	})
	return days
}

func sortedSlots(meals DayPlan) []MealSlot {
	slots := make([]MealSlot, 0, len(meals))
	for _, slot := range slotOrder {
		if _, ok := meals[slot]; ok {
			slots = append(slots, slot)
		}
	}

	extra := make([]MealSlot, 0)
	for slot := range meals {
		if !isKnownSlot(slot) {
			extra = append(extra, slot)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })

	return append(slots, extra...)
}

func isKnownSlot(slot MealSlot) bool {
	for _, s := range slotOrder {
		if s == slot {
			return true
		}
	}
	return false
}
