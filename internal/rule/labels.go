package rule

import (
	"github.com/pkg/errors"
	"github.com/prometheus/prometheus/model/labels"
	"strings"
)

// matchOperators lists the supported label operators. Longer operators must come first.
var matchOperators = []struct {
	op        string
	matchType labels.MatchType
}{
	{"=~", labels.MatchRegexp},
	{"!~", labels.MatchNotRegexp},
	{"!=", labels.MatchNotEqual},
	{"=", labels.MatchEqual},
}

// ParseLabelMatcher parses a label filter as used by "label:" search terms.
//
// Supported forms are key=value, key!=value, key=~regex and key!~regex. A bare key matches all
// rules carrying that label with a non-empty value. Values may be enclosed in double quotes.
func ParseLabelMatcher(expr string) (*labels.Matcher, error) {
	idx := strings.IndexAny(expr, "=!")
	if idx < 0 {
		name := strings.TrimSpace(expr)
		if name == "" {
			return nil, errors.New("empty label matcher")
		}

		return labels.NewMatcher(labels.MatchRegexp, name, ".+")
	}

	name := strings.TrimSpace(expr[:idx])
	if name == "" {
		return nil, errors.Errorf("label matcher %q has no label name", expr)
	}

	rest := expr[idx:]
	for _, mo := range matchOperators {
		if value, ok := strings.CutPrefix(rest, mo.op); ok {
			m, err := labels.NewMatcher(mo.matchType, name, unquoteLabelValue(strings.TrimSpace(value)))
			if err != nil {
				return nil, errors.Wrapf(err, "invalid label matcher %q", expr)
			}

			return m, nil
		}
	}

	return nil, errors.Errorf("label matcher %q has an invalid operator", expr)
}

// LabelMatchers returns the matchers of all valid label filters. Invalid ones are skipped.
func (f *Filter) LabelMatchers() []*labels.Matcher {
	matchers := make([]*labels.Matcher, 0, len(f.Labels))
	for _, expr := range f.Labels {
		if m, err := ParseLabelMatcher(expr); err == nil {
			matchers = append(matchers, m)
		}
	}

	return matchers
}

func unquoteLabelValue(value string) string {
	if len(value) >= 2 && value[0] == '"' && value[len(value)-1] == '"' {
		return value[1 : len(value)-1]
	}

	return value
}
