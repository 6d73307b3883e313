package grocery

import (
	"strings"
	"unicode"
)

// Category is one of the canonical grocery sections a shopping item is filed under.
type Category string

const (
	CategoryProduce     Category = "Produce"
	CategoryDairy       Category = "Dairy"
	CategoryMeatSeafood Category = "Meat & Seafood"
	CategoryPantry      Category = "Pantry"
	CategoryFrozen      Category = "Frozen"
	CategoryBeverages   Category = "Beverages"
	CategoryOther       Category = "Other" // Default when no header matched
)

// ORDER MATTERS: this is the order categories are presented to the model and to clients.
var canonicalCategories = []Category{
	CategoryProduce,
	CategoryDairy,
	CategoryMeatSeafood,
	CategoryPantry,
	CategoryFrozen,
	CategoryBeverages,
	CategoryOther,
}

// Categories returns the canonical categories in display order.
func Categories() []Category {
	out := make([]Category, len(canonicalCategories))
	copy(out, canonicalCategories)
	return out
}

// LookupCategory resolves free text to a canonical category.
// Matching is exact and case-insensitive after trimming whitespace and
// punctuation around the candidate ("**Dairy:**" resolves to Dairy).
func LookupCategory(candidate string) (Category, bool) {
	cleaned := strings.TrimFunc(candidate, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '&'
	})
	if cleaned == "" {
		return "", false
	}

	for _, c := range canonicalCategories {
		if strings.EqualFold(cleaned, string(c)) {
			return c, true
		}
	}
	return "", false
}

// IsValid reports whether c is spelled exactly as a canonical category.
func (c Category) IsValid() bool {
	for _, known := range canonicalCategories {
		if c == known {
			return true
		}
	}
	return false
}

func (c Category) String() string {
	return string(c)
}
