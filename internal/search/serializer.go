package search

import (
	"golang.org/x/exp/slices"
	"strings"
	"unicode"
)

// FilterExpr is a single filter to be written into a query.
type FilterExpr struct {
	Term  Term
	Value string
}

// Apply builds a query string from the given filters.
//
// Filters whose term already occurs in query are written at the position of that occurrence, so
// that editing a filter doesn't reorder the user's search input. All other filters are appended
// in the order they were supplied. Keyword filters whose term isn't supported are dropped.
func Apply(query string, supported []Term, filters []FilterExpr) string {
	pending := slices.Clone(filters)
	expressions := make([]string, 0, len(filters))

	for _, tok := range Tokenize(query, supported) {
		idx := slices.IndexFunc(pending, func(f FilterExpr) bool { return f.Term == tok.Term })
		if idx < 0 {
			continue
		}

		if expr := pending[idx].format(supported); expr != "" {
			expressions = append(expressions, expr)
		}
		pending = slices.Delete(pending, idx, idx+1)
	}

	for _, f := range pending {
		if expr := f.format(supported); expr != "" {
			expressions = append(expressions, expr)
		}
	}

	return strings.Join(expressions, " ")
}

// format renders f as a single query unit. Returns "" if f can't be part of the query.
func (f FilterExpr) format(supported []Term) string {
	switch {
	case f.Term == TermFreeForm:
		return formatWord(f.Value)
	case f.Term == TermFuzzyMatch:
		if f.Value == "" {
			return ""
		}

		return string(FuzzyMarker) + formatValue(f.Value)
	case f.Term.IsKeyword() && slices.Contains(supported, f.Term):
		return f.Term.Keyword() + ":" + formatValue(f.Value)
	default:
		return ""
	}
}

// formatValue quotes v if it wouldn't be read back as a single unit otherwise.
func formatValue(v string) string {
	if v == "" || strings.ContainsFunc(v, unicode.IsSpace) || strings.ContainsRune(v, '"') {
		return quote(v)
	}

	return v
}

// formatWord renders a free-form word. Words that would be read as a filter or a fuzzy
// expression are quoted.
func formatWord(w string) string {
	if w == "" {
		return ""
	}

	if strings.HasPrefix(w, string(FuzzyMarker)) || looksLikeKeyword(w) {
		return quote(w)
	}

	return formatValue(w)
}

func looksLikeKeyword(w string) bool {
	key, _, found := strings.Cut(w, ":")
	if !found {
		return false
	}

	_, ok := TermFromKeyword(key)

	return ok
}

func quote(v string) string {
	var b strings.Builder
	b.Grow(len(v) + 2)

	b.WriteByte('"')
	for _, r := range v {
		if r == '"' || r == '\\' {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	b.WriteByte('"')

	return b.String()
}
