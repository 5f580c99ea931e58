package search

import (
	"golang.org/x/exp/slices"
)

// Mapper binds terms to the handlers consuming the values parsed for them.
type Mapper map[Term]func(value string)

// Token is a classified query unit.
type Token struct {
	Term  Term
	Value string
}

// Parse tokenizes the given query and passes every token value to the mapper handler of its term.
//
// Only keyword terms contained in supported are treated as filters, any other "key:value" unit is
// passed on as free-form text. Free-form and fuzzy terms are always accepted. Tokens whose term has
// no handler in the mapper are skipped. Parse never fails, malformed input just degrades to text.
func Parse(query string, supported []Term, mapper Mapper) {
	for _, tok := range Tokenize(query, supported) {
		if handle, ok := mapper[tok.Term]; ok {
			handle(tok.Value)
		}
	}
}

// Tokenize splits the given query into tokens in the order they appear.
func Tokenize(query string, supported []Term) []Token {
	var tokens []Token
	for _, u := range lex(query) {
		if tok, ok := classify(u, supported); ok {
			tokens = append(tokens, tok)
		}
	}

	return tokens
}

// classify determines the term of a single unit. Returns false for units that don't carry any value.
func classify(u unit, supported []Term) (Token, bool) {
	switch u.kind {
	case unitKeyword:
		if term, ok := TermFromKeyword(u.key); ok && slices.Contains(supported, term) {
			return Token{Term: term, Value: u.value}, true
		}

		return Token{Term: TermFreeForm, Value: u.raw}, true
	case unitFuzzy:
		if u.value == "" {
			return Token{}, false
		}

		return Token{Term: TermFuzzyMatch, Value: u.value}, true
	default:
		if u.value == "" {
			return Token{}, false
		}

		return Token{Term: TermFreeForm, Value: u.value}, true
	}
}
