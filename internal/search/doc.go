// Package search implements the query language of the rules search box.
//
// # Syntax
//
// A query is a whitespace separated list of units:
//
//	datasource:Mimir        # keyword filter
//	label:team=ops          # keyword filter, the value is passed on verbatim
//	rule:"High CPU usage"   # quoted values may contain spaces, \" and \\ are escapes
//	~cpu                    # fuzzy-match expression
//	"disk full"             # quoted free-form word
//	cpu                     # free-form word
//
// Keywords are matched case-insensitively. A "key:value" unit whose key isn't a supported keyword,
// or which has no value, is treated as a free-form word. An unterminated quote extends to the end
// of the query.
//
// # Parsing and serialization
//
// Parse feeds every token to a caller supplied Mapper, which decides how values are stored.
// Apply is its inverse and writes a list of FilterExpr back into a query.
package search
