package config

import (
	"github.com/goccy/go-yaml"
	"github.com/icinga/rules-search/internal/utils"
	"github.com/pkg/errors"
	"strings"
)

// PopulateFromYamlEnvironment overrides fields of target with environment variables.
//
// A variable is named after the YAML path of a field, upper-cased, with its components joined by
// underscores and prefixed by prefix and an underscore. For example, RULES_SEARCH_LOGGING_LEVEL
// sets logging.level. Values are YAML, so that lists can be passed in flow style, e.g.
// RULES_SEARCH_SUPPORTED-TERMS=[state, label]. Variables not starting with the prefix are ignored.
//
// Since values are parsed as YAML, a value containing " #" or ": " must be quoted, e.g.
// RULES_SEARCH_RULES-FILE='/tmp/rules #1.yml'. Unquoted, " #" starts a comment and ": " a mapping.
func PopulateFromYamlEnvironment(prefix string, target any, environ []string) error {
	root := make(envNode)
	for _, env := range environ {
		name, value, ok := strings.Cut(env, "=")
		if !ok {
			continue
		}

		key, ok := strings.CutPrefix(name, prefix+"_")
		if !ok {
			continue
		}

		if err := root.insert(strings.Split(strings.ToLower(key), "_"), value); err != nil {
			return errors.Wrapf(err, "invalid environment variable %q", name)
		}
	}

	if len(root) == 0 {
		return nil
	}

	var doc strings.Builder
	root.writeTo(&doc, 0)

	if err := yaml.UnmarshalWithOptions([]byte(doc.String()), target, yaml.Strict()); err != nil {
		return errors.Wrap(err, "can't decode environment variables")
	}

	return nil
}

// envNode is a YAML mapping built from environment variables.
// Its values are either raw YAML strings or nested envNodes.
type envNode map[string]any

func (n envNode) insert(path []string, value string) error {
	key := path[0]
	if key == "" {
		return errors.New("empty key component")
	}

	if len(path) == 1 {
		if _, ok := n[key]; ok {
			return errors.Errorf("key %q is set more than once", key)
		}

		n[key] = value

		return nil
	}

	child, ok := n[key]
	if !ok {
		child = make(envNode)
		n[key] = child
	}

	node, ok := child.(envNode)
	if !ok {
		return errors.Errorf("key %q is both a value and a mapping", key)
	}

	return node.insert(path[1:], value)
}

func (n envNode) writeTo(doc *strings.Builder, depth int) {
	indent := strings.Repeat("  ", depth)
	for key, value := range utils.IterateOrderedMap(n) {
		switch v := value.(type) {
		case envNode:
			doc.WriteString(indent + key + ":\n")
			v.writeTo(doc, depth+1)
		case string:
			doc.WriteString(indent + key + ": " + v + "\n")
		}
	}
}
