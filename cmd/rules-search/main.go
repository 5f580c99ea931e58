package main

import (
	"encoding/json"
	"github.com/goccy/go-yaml"
	"github.com/icinga/rules-search/internal"
	"github.com/icinga/rules-search/internal/config"
	"github.com/icinga/rules-search/internal/logging"
	"github.com/icinga/rules-search/internal/rule"
	"github.com/icinga/rules-search/internal/utils"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"io"
	"os"
	"strings"
)

// result is the document written to stdout for a search query.
type result struct {
	Query  string       `yaml:"query" json:"query"`
	Filter *rule.Filter `yaml:"filter" json:"filter"`
	Rules  []*rule.Rule `yaml:"rules,omitempty" json:"rules,omitempty"`
}

func main() {
	flags, conf, args := config.ParseFlagsAndConfig()

	logs, err := logging.NewLoggingFromConfig("rules-search", conf.Logging)
	if err != nil {
		utils.PrintErrorThenExit(err, config.ExitFailure)
	}

	logger := logs.GetLogger()
	logger.Debugf("Starting Rules Search (%s)", internal.Version.Version)

	err = run(os.Stdout, flags, conf, strings.Join(args, " "), logs)
	_ = logger.Sync()
	if err != nil {
		utils.PrintErrorThenExit(err, config.ExitFailure)
	}
}

// run either converts the filter document given by --from-filter into a query or searches for query,
// writing the outcome to w.
func run(w io.Writer, flags *config.Flags, conf *config.ConfigFile, query string, logs *logging.Logging) error {
	searcher := &rule.Searcher{Terms: conf.Terms(), Logger: logs.GetChildLogger("search")}

	if flags.FromFilter != "" {
		filter, err := loadFilter(flags.FromFilter)
		if err != nil {
			return err
		}

		_, err = io.WriteString(w, searcher.ApplyToQuery(query, filter)+"\n")

		return errors.Wrap(err, "can't write query")
	}

	res, err := runSearch(searcher, query, conf.RulesFile, logs.GetLogger())
	if err != nil {
		return err
	}

	return write(w, conf.Output, res)
}

// runSearch parses query and, if rulesFile is set, applies the resulting filter to the rules of that inventory.
func runSearch(searcher *rule.Searcher, query, rulesFile string, logger *zap.SugaredLogger) (*result, error) {
	filter := searcher.ParseQuery(query)
	res := &result{Query: searcher.ApplyToQuery(query, filter), Filter: filter}

	if rulesFile == "" {
		return res, nil
	}

	rules, err := rule.LoadInventoryFile(rulesFile)
	if err != nil {
		return nil, err
	}

	res.Rules = filter.Apply(rules)
	logger.Debugw("Searched rule inventory",
		zap.String("file", rulesFile),
		zap.Int("rules", len(rules)),
		zap.Int("matches", len(res.Rules)))

	return res, nil
}

// loadFilter reads a filter document. JSON documents are accepted as well, being valid YAML.
func loadFilter(path string) (*rule.Filter, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "can't read filter")
	}

	filter := rule.NewFilter()
	if err := yaml.UnmarshalWithOptions(data, filter, yaml.Strict()); err != nil {
		return nil, errors.Wrapf(err, "can't decode filter %q", path)
	}

	return filter, nil
}

func write(w io.Writer, format string, v any) error {
	switch format {
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return errors.Wrap(enc.Encode(v), "can't encode JSON")
	default:
		return errors.Wrap(yaml.NewEncoder(w).Encode(v), "can't encode YAML")
	}
}
