package search

import (
	"strings"
)

// Term identifies the kind of a search token.
type Term int

const (
	TermDataSource Term = 1 + iota
	TermNamespace
	TermGroup
	TermRule
	TermLabel
	TermState
	TermType
	TermHealth

	// TermFreeForm is any bare word not matching the keyword syntax.
	TermFreeForm
	// TermFuzzyMatch is a bare word carrying the fuzzy marker, e.g. "~cpu".
	TermFuzzyMatch
)

// FuzzyMarker prefixes bare words that are meant to be matched approximately.
const FuzzyMarker = '~'

// keywords lists all keyword terms in canonical serialization order.
var keywords = []struct {
	term    Term
	keyword string
}{
	{TermDataSource, "datasource"},
	{TermNamespace, "namespace"},
	{TermGroup, "group"},
	{TermRule, "rule"},
	{TermState, "state"},
	{TermType, "type"},
	{TermHealth, "health"},
	{TermLabel, "label"},
}

var termByKeyword = func() map[string]Term {
	m := make(map[string]Term, len(keywords))
	for _, k := range keywords {
		m[k.keyword] = k.term
	}
	return m
}()

var keywordByTerm = func() map[Term]string {
	m := make(map[Term]string, len(keywords))
	for _, k := range keywords {
		m[k.term] = k.keyword
	}
	return m
}()

// TermFromKeyword looks up the keyword term for the given keyword, ignoring case.
func TermFromKeyword(keyword string) (Term, bool) {
	term, ok := termByKeyword[strings.ToLower(keyword)]
	return term, ok
}

// KeywordTerms returns all keyword terms in canonical order.
func KeywordTerms() []Term {
	terms := make([]Term, 0, len(keywords))
	for _, k := range keywords {
		terms = append(terms, k.term)
	}

	return terms
}

// Keyword returns the query keyword of t, or "" for free-form and fuzzy terms.
func (t Term) Keyword() string {
	return keywordByTerm[t]
}

// IsKeyword reports whether t is written as "keyword:value" in a query.
func (t Term) IsKeyword() bool {
	_, ok := keywordByTerm[t]
	return ok
}

func (t Term) String() string {
	switch t {
	case TermFreeForm:
		return "freeform"
	case TermFuzzyMatch:
		return "fuzzy"
	}

	if keyword, ok := keywordByTerm[t]; ok {
		return keyword
	}

	return "unknown"
}
