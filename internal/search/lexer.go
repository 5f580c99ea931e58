package search

import (
	"strings"
	"unicode"
)

// eof is returned by the lexer once the whole input has been consumed.
const eof rune = -1

type unitKind int

const (
	unitWord unitKind = iota
	unitKeyword
	unitFuzzy
)

// unit is a single whitespace delimited piece of a query.
type unit struct {
	kind   unitKind
	key    string // key is the keyword as typed, only set for unitKeyword.
	value  string // value is the unquoted and unescaped payload of the unit.
	raw    string // raw is the unit exactly as it appears in the query.
	quoted bool
}

// lexer splits a query string into units.
//
// It works on runes so that positions never point into the middle of a multibyte character.
type lexer struct {
	input        []rune
	position     int  // position of ch in input
	readPosition int  // position of the rune after ch
	ch           rune // ch is the rune under examination or eof
}

func newLexer(input string) *lexer {
	l := &lexer{input: []rune(input)}
	l.readChar()

	return l
}

// lex returns all units of the given query.
func lex(input string) []unit {
	var units []unit
	l := newLexer(input)
	for u, ok := l.next(); ok; u, ok = l.next() {
		units = append(units, u)
	}

	return units
}

// next reads the next unit from the input. Returns false when there are no units left.
func (l *lexer) next() (unit, bool) {
	l.skipWhitespace()
	if l.ch == eof {
		return unit{}, false
	}

	start := l.position

	var u unit
	switch l.ch {
	case '"':
		u = unit{kind: unitWord, quoted: true, value: l.readQuoted()}
	case FuzzyMarker:
		l.readChar()
		u = l.readFuzzy()
	default:
		u = l.readKeywordOrWord()
	}
	u.raw = string(l.input[start:l.position])

	return u, true
}

func (l *lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = eof
		l.position = len(l.input)

		return
	}

	l.ch = l.input[l.readPosition]
	l.position = l.readPosition
	l.readPosition++
}

func (l *lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return eof
	}

	return l.input[l.readPosition]
}

func (l *lexer) skipWhitespace() {
	for l.ch != eof && unicode.IsSpace(l.ch) {
		l.readChar()
	}
}

// readFuzzy reads the value following a fuzzy marker. A marker without a value is an ordinary word.
func (l *lexer) readFuzzy() unit {
	switch {
	case l.ch == eof || unicode.IsSpace(l.ch):
		return unit{kind: unitWord, value: string(FuzzyMarker)}
	case l.ch == '"':
		return unit{kind: unitFuzzy, quoted: true, value: l.readQuoted()}
	default:
		return unit{kind: unitFuzzy, value: l.readBare()}
	}
}

// readKeywordOrWord reads either a "key:value" unit or a bare word.
//
// A key is a non-empty run of ASCII letters directly followed by a colon. Whether the key is
// actually known is decided by the parser, not by the lexer.
func (l *lexer) readKeywordOrWord() unit {
	start := l.position
	for isKeyRune(l.ch) {
		l.readChar()
	}

	if l.position > start && l.ch == ':' {
		key := string(l.input[start:l.position])
		l.readChar() // skip ':'

		switch {
		case l.ch == '"':
			return unit{kind: unitKeyword, key: key, quoted: true, value: l.readQuoted()}
		case l.ch != eof && !unicode.IsSpace(l.ch):
			return unit{kind: unitKeyword, key: key, value: l.readBare()}
		}

		// "key:" followed by nothing isn't a filter, so keep it as plain text.
		return unit{kind: unitWord, value: string(l.input[start:l.position])}
	}

	l.readBare()

	return unit{kind: unitWord, value: string(l.input[start:l.position])}
}

// readBare reads everything up to the next whitespace.
func (l *lexer) readBare() string {
	start := l.position
	for l.ch != eof && !unicode.IsSpace(l.ch) {
		l.readChar()
	}

	return string(l.input[start:l.position])
}

// readQuoted reads a double-quoted string starting at its opening quote and returns the unescaped content.
//
// A backslash escapes the following rune. An unterminated string extends to the end of the input.
func (l *lexer) readQuoted() string {
	var b strings.Builder

	l.readChar() // skip opening quote
	for l.ch != eof {
		switch l.ch {
		case '\\':
			if l.peekChar() != eof {
				l.readChar()
			}
		case '"':
			l.readChar()
			return b.String()
		}

		b.WriteRune(l.ch)
		l.readChar()
	}

	return b.String()
}

func isKeyRune(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}
