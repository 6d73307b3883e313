package grocery

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

const (
	DefaultQuantity = 1.0
	DefaultUnit     = "items"
)

// Item line patterns:
// - Spinach - 2 bags     -> marker, name, quantity segment
// • Milk – 1 gallon      -> bullet marker, en-dash separator
// 3. Flour - 1/2 cup     -> numbered marker, fractional quantity
// - Vitamin B-12         -> no unit after the number: the whole text is the name
// Salt                   -> no marker and no quantity: prose, skipped
// ---                    -> no letter or digit: decoration, skipped
var (
	listMarkerPattern = regexp.MustCompile(`^(?:[-•*]\s*|\d+[.)]\s+)`)

	// Name is matched lazily so the optional trailing "<sep> <number> <unit>" segment wins when present.
	itemPattern = regexp.MustCompile(`^(.+?)(?:\s*[-–]\s*(\d+(?:\.\d+)?(?:/\d+)?)\s+([A-Za-z0-9]+))?\s*$`)
)

// ExtractItem turns a non-header line into a ShoppingItem stamped with category.
// It returns false for lines that carry no item: a name without any letter or
// digit, or bare prose with neither a list marker nor a quantity segment.
func ExtractItem(line string, category Category, ids IDGenerator) (ShoppingItem, bool) {
	trimmed := strings.TrimSpace(line)

	rest := trimmed
	hasMarker := false
	if loc := listMarkerPattern.FindStringIndex(trimmed); loc != nil {
		rest = trimmed[loc[1]:]
		hasMarker = true
	}

	match := itemPattern.FindStringSubmatch(rest)
	if match == nil {
		return ShoppingItem{}, false
	}

	name := strings.TrimSpace(match[1])
	rawQuantity := match[2]
	unit := match[3]

	if !hasLetterOrDigit(name) {
		return ShoppingItem{}, false
	}
	if !hasMarker && rawQuantity == "" {
		return ShoppingItem{}, false
	}

	quantity, ok := parseQuantity(rawQuantity)
	if !ok {
		quantity = DefaultQuantity
		unit = DefaultUnit
	}

	return NewShoppingItem(ids.NextID(), name, quantity, unit, category), true
}

func hasLetterOrDigit(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	}) >= 0
}

// parseQuantity accepts integers, decimals and simple fractions ("1/2" -> 0.5).
// Zero, negative and divide-by-zero values are rejected.
func parseQuantity(raw string) (float64, bool) {
	if raw == "" {
		return 0, false
	}

	if numerator, denominator, isFraction := strings.Cut(raw, "/"); isFraction {
		n, err := strconv.ParseFloat(numerator, 64)
		if err != nil {
			return 0, false
		}
		d, err := strconv.ParseFloat(denominator, 64)
		if err != nil || d == 0 {
			return 0, false
		}
		return positive(n / d)
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return positive(value)
}

func positive(v float64) (float64, bool) {
	if v <= 0 {
		return 0, false
	}
	return v, true
}
