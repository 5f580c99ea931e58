package rule

import (
	"github.com/icinga/rules-search/internal/search"
	"go.uber.org/zap"
)

// FuzzyFilter is a search term matched approximately against rule, group and namespace names.
type FuzzyFilter struct {
	Value string `yaml:"value" json:"value"`
	Label string `yaml:"label" json:"label"`
}

// Filter is the structured form of a rules search query.
//
// Unset scalar fields hold their zero value. Labels, free-form words and fuzzy filters keep the
// order in which they appeared in the query.
type Filter struct {
	FreeFormWords  []string      `yaml:"freeFormWords" json:"freeFormWords"`
	FuzzyFilters   []FuzzyFilter `yaml:"fuzzyFilters" json:"fuzzyFilters"`
	Namespace      string        `yaml:"namespace,omitempty" json:"namespace,omitempty"`
	GroupName      string        `yaml:"groupName,omitempty" json:"groupName,omitempty"`
	RuleName       string        `yaml:"ruleName,omitempty" json:"ruleName,omitempty"`
	RuleState      State         `yaml:"ruleState,omitempty" json:"ruleState,omitempty"`
	RuleType       Type          `yaml:"ruleType,omitempty" json:"ruleType,omitempty"`
	DataSourceName string        `yaml:"dataSourceName,omitempty" json:"dataSourceName,omitempty"`
	Labels         []string      `yaml:"labels" json:"labels"`
	RuleHealth     Health        `yaml:"ruleHealth,omitempty" json:"ruleHealth,omitempty"`
}

// NewFilter returns an empty Filter.
func NewFilter() *Filter {
	return &Filter{Labels: []string{}, FreeFormWords: []string{}, FuzzyFilters: []FuzzyFilter{}}
}

// IsEmpty reports whether the filter doesn't restrict anything.
func (f *Filter) IsEmpty() bool {
	return len(f.FreeFormWords) == 0 && len(f.FuzzyFilters) == 0 && len(f.Labels) == 0 &&
		f.Namespace == "" && f.GroupName == "" && f.RuleName == "" && f.DataSourceName == "" &&
		f.RuleState == StateNone && f.RuleType == TypeNone && f.RuleHealth == HealthNone
}

// expressions converts the filter into search expressions in canonical order.
func (f *Filter) expressions() []search.FilterExpr {
	var exprs []search.FilterExpr
	add := func(term search.Term, value string) {
		exprs = append(exprs, search.FilterExpr{Term: term, Value: value})
	}

	if f.DataSourceName != "" {
		add(search.TermDataSource, f.DataSourceName)
	}
	if f.Namespace != "" {
		add(search.TermNamespace, f.Namespace)
	}
	if f.GroupName != "" {
		add(search.TermGroup, f.GroupName)
	}
	if f.RuleName != "" {
		add(search.TermRule, f.RuleName)
	}
	if f.RuleState != StateNone {
		add(search.TermState, f.RuleState.String())
	}
	if f.RuleType != TypeNone {
		add(search.TermType, f.RuleType.String())
	}
	if f.RuleHealth != HealthNone {
		add(search.TermHealth, f.RuleHealth.String())
	}
	for _, label := range f.Labels {
		add(search.TermLabel, label)
	}
	for _, word := range f.FreeFormWords {
		add(search.TermFreeForm, word)
	}
	for _, fuzzy := range f.FuzzyFilters {
		add(search.TermFuzzyMatch, fuzzy.Value)
	}

	return exprs
}

// Searcher converts between search queries and Filters.
type Searcher struct {
	// Terms restricts the keywords recognized in queries. All keywords are recognized if it's empty.
	Terms []search.Term

	Logger *zap.SugaredLogger
}

// ParseQuery parses the given search query into a new Filter.
//
// Values that can't be stored in the filter, such as an unknown rule type, are dropped silently
// apart from a debug log message.
func (s *Searcher) ParseQuery(query string) *Filter {
	f := NewFilter()
	logger := s.logger()

	search.Parse(query, s.terms(), search.Mapper{
		search.TermDataSource: func(value string) { f.DataSourceName = value },
		search.TermNamespace:  func(value string) { f.Namespace = value },
		search.TermGroup:      func(value string) { f.GroupName = value },
		search.TermRule:       func(value string) { f.RuleName = value },
		search.TermLabel: func(value string) {
			if _, err := ParseLabelMatcher(value); err != nil {
				logger.Debugw("Label filter won't restrict any rules", zap.String("label", value), zap.Error(err))
			}

			f.Labels = append(f.Labels, value)
		},
		search.TermState: func(value string) {
			f.RuleState = ParseState(value)
			if f.RuleState == StateNone {
				logger.Debugw("Ignoring unknown rule state", zap.String("state", value))
			}
		},
		search.TermType: func(value string) {
			if ruleType, ok := ParseType(value); ok {
				f.RuleType = ruleType
			} else {
				logger.Debugw("Ignoring unknown rule type", zap.String("type", value))
			}
		},
		search.TermHealth:     func(value string) { f.RuleHealth = GetHealth(value) },
		search.TermFreeForm:   func(value string) { f.FreeFormWords = append(f.FreeFormWords, value) },
		search.TermFuzzyMatch: func(value string) { f.FuzzyFilters = append(f.FuzzyFilters, FuzzyFilter{Value: value, Label: value}) },
	})

	return f
}

// ApplyToQuery writes the given filter into a search query.
//
// Filters already contained in query keep their position, see search.Apply.
func (s *Searcher) ApplyToQuery(query string, f *Filter) string {
	return search.Apply(query, s.terms(), f.expressions())
}

func (s *Searcher) terms() []search.Term {
	if len(s.Terms) == 0 {
		return search.KeywordTerms()
	}

	return s.Terms
}

func (s *Searcher) logger() *zap.SugaredLogger {
	if s.Logger == nil {
		return zap.NewNop().Sugar()
	}

	return s.Logger
}

// ParseSearchQuery parses the given query with all keywords enabled.
func ParseSearchQuery(query string) *Filter {
	return new(Searcher).ParseQuery(query)
}

// ApplySearchFilterToQuery writes the given filter into query with all keywords enabled.
func ApplySearchFilterToQuery(query string, f *Filter) string {
	return new(Searcher).ApplyToQuery(query, f)
}
