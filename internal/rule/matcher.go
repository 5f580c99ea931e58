package rule

import (
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/prometheus/prometheus/model/labels"
	"golang.org/x/exp/slices"
	"strings"
)

// Matches returns true if the given rule satisfies every criterion of this filter.
func (f *Filter) Matches(r *Rule) bool {
	return f.matches(r, f.LabelMatchers())
}

// Apply returns the rules matching this filter, preserving their order.
func (f *Filter) Apply(rules []*Rule) []*Rule {
	matchers := f.LabelMatchers()

	var matched []*Rule
	for _, r := range rules {
		if f.matches(r, matchers) {
			matched = append(matched, r)
		}
	}

	return matched
}

func (f *Filter) matches(r *Rule, matchers []*labels.Matcher) bool {
	if f.DataSourceName != "" && !strings.EqualFold(f.DataSourceName, r.DataSource) {
		return false
	}
	if f.Namespace != "" && !fuzzy.MatchFold(f.Namespace, r.Namespace) {
		return false
	}
	if f.GroupName != "" && !fuzzy.MatchFold(f.GroupName, r.Group) {
		return false
	}
	if f.RuleName != "" && !fuzzy.MatchFold(f.RuleName, r.Name) {
		return false
	}
	if f.RuleState != StateNone && f.RuleState != r.State {
		return false
	}
	if f.RuleType != TypeNone && f.RuleType != r.Type {
		return false
	}
	if f.RuleHealth != HealthNone && f.RuleHealth != r.Health {
		return false
	}

	for _, m := range matchers {
		if !m.Matches(r.Label(m.Name)) {
			return false
		}
	}

	names := []string{r.Name, r.Group, r.Namespace}
	for _, word := range f.FreeFormWords {
		if !slices.ContainsFunc(names, func(name string) bool { return containsFold(name, word) }) {
			return false
		}
	}
	for _, ff := range f.FuzzyFilters {
		if !slices.ContainsFunc(names, func(name string) bool { return fuzzy.MatchFold(ff.Value, name) }) {
			return false
		}
	}

	return true
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
