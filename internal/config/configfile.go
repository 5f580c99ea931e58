package config

import (
	"github.com/creasty/defaults"
	"github.com/goccy/go-yaml"
	"github.com/icinga/rules-search/internal/logging"
	"github.com/icinga/rules-search/internal/search"
	"github.com/pkg/errors"
	"io"
	"os"
	"strings"
)

// EnvPrefix is the prefix of environment variables overriding config file values.
const EnvPrefix = "RULES_SEARCH"

const (
	OutputYAML = "yaml"
	OutputJSON = "json"
)

// Validator is implemented by configuration types that can verify their own consistency.
type Validator interface {
	Validate() error
}

type ConfigFile struct {
	RulesFile      string         `yaml:"rules-file"`
	SupportedTerms []string       `yaml:"supported-terms"`
	Output         string         `yaml:"output" default:"yaml"`
	Logging        logging.Config `yaml:"logging"`
}

// SetDefaults implements the defaults.Setter interface.
func (c *ConfigFile) SetDefaults() {
	if defaults.CanUpdate(c.SupportedTerms) {
		for _, term := range search.KeywordTerms() {
			c.SupportedTerms = append(c.SupportedTerms, term.Keyword())
		}
	}
}

// Validate implements the Validator interface.
func (c *ConfigFile) Validate() error {
	for _, keyword := range c.SupportedTerms {
		if _, ok := search.TermFromKeyword(keyword); !ok {
			return errors.Errorf("unknown search keyword %q in supported-terms", keyword)
		}
	}

	switch c.Output {
	case OutputYAML, OutputJSON:
	default:
		return errors.Errorf("invalid output format %q, expected one of %q or %q", c.Output, OutputYAML, OutputJSON)
	}

	return c.Logging.Validate()
}

// Terms resolves the configured supported-terms into search terms.
//
// Unknown keywords are rejected by Validate and skipped here.
func (c *ConfigFile) Terms() []search.Term {
	terms := make([]search.Term, 0, len(c.SupportedTerms))
	for _, keyword := range c.SupportedTerms {
		if term, ok := search.TermFromKeyword(keyword); ok {
			terms = append(terms, term)
		}
	}

	return terms
}

// Assert interface compliance.
var (
	_ defaults.Setter = (*ConfigFile)(nil)
	_ Validator       = (*ConfigFile)(nil)
	_ Validator       = (*logging.Config)(nil)
)

// FromYAMLFile loads the configuration from the given YAML file, overlaid with the environment.
//
// An empty path skips the file, leaving defaults and environment variables.
func FromYAMLFile(path string) (*ConfigFile, error) {
	if path == "" {
		return loadConfig(strings.NewReader(""), os.Environ())
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "can't open YAML file")
	}
	defer func() { _ = f.Close() }()

	c, err := loadConfig(f, os.Environ())
	if err != nil {
		return nil, errors.Wrapf(err, "can't load config from %q", path)
	}

	return c, nil
}

// loadConfig applies defaults, the YAML document read from r and finally the environment, in this
// order, and validates the result.
func loadConfig(r io.Reader, environ []string) (*ConfigFile, error) {
	c := new(ConfigFile)
	if err := defaults.Set(c); err != nil {
		return nil, errors.Wrap(err, "can't set config defaults")
	}

	if err := yaml.NewDecoder(r, yaml.Strict()).Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, "can't parse YAML config")
	}

	if err := PopulateFromYamlEnvironment(EnvPrefix, c, environ); err != nil {
		return nil, errors.Wrap(err, "can't apply environment variables")
	}

	if err := c.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	return c, nil
}
