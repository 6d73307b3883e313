package grocery

import (
	"regexp"
)

// headerPattern matches "<label>:" at the start of a line. Anything may follow the colon.
var headerPattern = regexp.MustCompile(`^([A-Za-z &]+):`)

// ParseState is the state carried across one parsing pass.
type ParseState struct {
	CurrentCategory Category
}

// NewParseState returns a state positioned before the first header.
func NewParseState() *ParseState {
	return &ParseState{CurrentCategory: CategoryOther}
}

// ClassifyLine reports whether line is a category header and, if so,
// moves state to the category it names. Unknown labels still claim the
// slot and reset it to Other. Non-header lines leave state untouched.
func ClassifyLine(line string, state *ParseState) bool {
	label, ok := matchHeader(line)
	if !ok {
		return false
	}

	if category, found := LookupCategory(label); found {
		state.CurrentCategory = category
	} else {
		state.CurrentCategory = CategoryOther
	}
	return true
}

func matchHeader(line string) (string, bool) {
	match := headerPattern.FindStringSubmatch(line)
	if len(match) < 2 {
		return "", false
	}
	return match[1], true
}
