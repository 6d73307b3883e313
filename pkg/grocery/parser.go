package grocery

import (
	"strings"
)

// OutcomeKind tags what a single response line turned into.
type OutcomeKind int

const (
	OutcomeSkipped OutcomeKind = iota // Malformed or empty: dropped silently
	OutcomeHeader                     // Category header: no item
	OutcomeItem                       // One shopping item
)

// LineOutcome is the result of parsing one line.
// Category is set for headers, Item for items.
type LineOutcome struct {
	Kind     OutcomeKind
	Category Category
	Item     ShoppingItem
}

// ParseResult contains the items of one parsing pass plus line diagnostics.
type ParseResult struct {
	Items   []ShoppingItem
	Headers int // Lines consumed as category headers
	Skipped int // Non-blank lines that produced nothing
}

// IsEmpty returns true if no items were produced
func (r *ParseResult) IsEmpty() bool {
	return len(r.Items) == 0
}

// ParseLine classifies one line against state. Header lines update state;
// nothing else does.
func ParseLine(line string, state *ParseState, ids IDGenerator) LineOutcome {
	normalized := normalizeLine(line)
	if normalized == "" {
		return LineOutcome{Kind: OutcomeSkipped}
	}

	if ClassifyLine(normalized, state) {
		return LineOutcome{Kind: OutcomeHeader, Category: state.CurrentCategory}
	}

	item, ok := ExtractItem(normalized, state.CurrentCategory, ids)
	if !ok {
		return LineOutcome{Kind: OutcomeSkipped}
	}
	return LineOutcome{Kind: OutcomeItem, Item: item}
}

// Parser turns a model response into shopping items in one left-to-right pass.
type Parser struct {
	ids IDGenerator
}

// NewParser returns a parser stamping items with ids from ids.
// A nil generator falls back to random UUIDs.
func NewParser(ids IDGenerator) *Parser {
	if ids == nil {
		ids = UUIDGenerator{}
	}
	return &Parser{ids: ids}
}

// ParseDetailed parses text and reports header and skip counts alongside the items.
func (p *Parser) ParseDetailed(text string) *ParseResult {
	result := &ParseResult{
		Items: make([]ShoppingItem, 0),
	}
	state := NewParseState()

	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		outcome := ParseLine(line, state, p.ids)
		switch outcome.Kind {
		case OutcomeHeader:
			result.Headers++
		case OutcomeItem:
			result.Items = append(result.Items, outcome.Item)
		default:
			result.Skipped++
		}
	}

	return result
}

// Parse returns the items of text in line order.
func (p *Parser) Parse(text string) []ShoppingItem {
	return p.ParseDetailed(text).Items
}

// normalizeLine trims the line and peels markdown decoration models like to
// add around headers ("## Produce:", "**Dairy:**", "**Dairy**:").
func normalizeLine(line string) string {
	s := strings.ReplaceAll(line, "**", "")
	s = strings.TrimSpace(s)
	return strings.TrimSpace(strings.TrimLeft(s, "#"))
}
