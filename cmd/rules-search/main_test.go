package main

import (
	"bytes"
	"github.com/icinga/rules-search/internal/config"
	"github.com/icinga/rules-search/internal/rule"
	"github.com/icinga/rules-search/internal/search"
	"github.com/icinga/rules-search/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"testing"
)

const inventory = `
namespaces:
  - name: infra
    data-source: Mimir
    groups:
      - name: node
        rules:
          - name: High CPU usage
            state: firing
            labels:
              team: ops
          - name: Disk almost full
`

func TestRunSearch(t *testing.T) {
	t.Parallel()

	logs := testutils.NewTestLogging(t)
	searcher := &rule.Searcher{Logger: logs.GetChildLogger("search")}

	t.Run("QueryOnly", func(t *testing.T) {
		t.Parallel()

		res, err := runSearch(searcher, "cpu   state:normal", "", logs.GetLogger())
		require.NoError(t, err)
		assert.Equal(t, "cpu state:inactive", res.Query)
		assert.Equal(t, rule.StateInactive, res.Filter.RuleState)
		assert.Nil(t, res.Rules)
	})

	t.Run("WithInventory", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "rules.yml")
		require.NoError(t, os.WriteFile(path, []byte(inventory), 0o600))

		res, err := runSearch(searcher, "label:team=ops", path, logs.GetLogger())
		require.NoError(t, err)
		require.Len(t, res.Rules, 1)
		assert.Equal(t, "High CPU usage", res.Rules[0].Name)

		_, err = runSearch(searcher, "", filepath.Join(t.TempDir(), "missing.yml"), logs.GetLogger())
		assert.Error(t, err)
	})
}

func TestLoadFilter(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "filter.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"ruleName": "High CPU", "ruleState": "firing", "labels": ["team=ops"]}`), 0o600))

	filter, err := loadFilter(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, "High CPU", filter.RuleName)
	assert.Equal(t, rule.StateFiring, filter.RuleState)
	assert.Equal(t, []string{}, filter.FreeFormWords)

	searcher := &rule.Searcher{Terms: []search.Term{search.TermRule, search.TermState}}
	assert.Equal(t, `rule:"High CPU" state:firing`, searcher.ApplyToQuery("", filter))

	yamlPath := filepath.Join(dir, "filter.yml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("ruleType: bogus\n"), 0o600))
	_, err = loadFilter(yamlPath)
	assert.Error(t, err)
}

func TestWrite(t *testing.T) {
	t.Parallel()

	res := &result{Query: "state:firing", Filter: rule.ParseSearchQuery("state:firing")}

	var buf bytes.Buffer
	require.NoError(t, write(&buf, config.OutputJSON, res))
	assert.JSONEq(t, `{
		"query": "state:firing",
		"filter": {"freeFormWords": [], "fuzzyFilters": [], "labels": [], "ruleState": "firing"}
	}`, buf.String())

	buf.Reset()
	require.NoError(t, write(&buf, config.OutputYAML, res))
	assert.Contains(t, buf.String(), "ruleState: firing\n")
}

func TestRun(t *testing.T) {
	t.Parallel()

	logs := testutils.NewTestLogging(t)
	conf := &config.ConfigFile{SupportedTerms: []string{"state", "rule"}, Output: config.OutputJSON}

	t.Run("Search", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, run(&buf, &config.Flags{}, conf, "health:ok state:firing", logs))
		assert.JSONEq(t, `{
			"query": "\"health:ok\" state:firing",
			"filter": {"freeFormWords": ["health:ok"], "fuzzyFilters": [], "labels": [], "ruleState": "firing"}
		}`, buf.String())
	})

	t.Run("FromFilter", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "filter.yml")
		require.NoError(t, os.WriteFile(path, []byte("ruleName: cpu\nruleHealth: ok\nruleState: pending\n"), 0o600))

		var buf bytes.Buffer
		require.NoError(t, run(&buf, &config.Flags{FromFilter: path}, conf, "state:firing", logs))
		assert.Equal(t, "state:pending rule:cpu\n", buf.String())
	})

	t.Run("MissingInventory", func(t *testing.T) {
		t.Parallel()

		withRules := *conf
		withRules.RulesFile = filepath.Join(t.TempDir(), "missing.yml")
		assert.Error(t, run(new(bytes.Buffer), &config.Flags{}, &withRules, "", logs))
	})
}
