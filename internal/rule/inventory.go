package rule

import (
	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"
	"io"
	"os"
	"time"
)

// Inventory is the on-disk representation of a set of rules, grouped by namespace and rule group.
type Inventory struct {
	Namespaces []*Namespace `yaml:"namespaces"`
}

// Namespace is a folder of rule groups evaluated against a single data source.
type Namespace struct {
	Name       string   `yaml:"name"`
	DataSource string   `yaml:"data-source"`
	Groups     []*Group `yaml:"groups"`
}

// Group is a set of rules evaluated at the same interval.
type Group struct {
	Name     string        `yaml:"name"`
	Interval time.Duration `yaml:"interval"`
	Rules    []*Rule       `yaml:"rules"`
}

// LoadInventoryFile reads the rule inventory from the given YAML file.
func LoadInventoryFile(path string) ([]*Rule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "can't open rule inventory")
	}
	defer func() { _ = f.Close() }()

	rules, err := LoadInventory(f)
	if err != nil {
		return nil, errors.Wrapf(err, "can't load rule inventory %q", path)
	}

	return rules, nil
}

// LoadInventory decodes a YAML rule inventory and returns all its rules in document order.
//
// Every rule inherits the namespace, group and data source it's defined in and must not set them
// itself. Rules without a type are alerting rules, alerting rules without a state are inactive and
// rules without a health are of unknown health.
func LoadInventory(r io.Reader) ([]*Rule, error) {
	var inventory Inventory
	if err := decodeInventory(r, &inventory); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "can't decode rule inventory")
	}

	var rules []*Rule
	for _, ns := range inventory.Namespaces {
		if ns == nil || ns.Name == "" {
			return nil, errors.New("namespace without a name")
		}

		for _, g := range ns.Groups {
			if g == nil || g.Name == "" {
				return nil, errors.Errorf("rule group without a name in namespace %q", ns.Name)
			}

			for _, r := range g.Rules {
				if r == nil || r.Name == "" {
					return nil, errors.Errorf("rule without a name in group %q of namespace %q", g.Name, ns.Name)
				}

				if r.Namespace != "" || r.Group != "" || r.DataSource != "" {
					return nil, errors.Errorf(
						"rule %q in group %q of namespace %q sets namespace, group or data-source, which are inherited",
						r.Name, g.Name, ns.Name)
				}

				r.Namespace = ns.Name
				r.Group = g.Name
				r.DataSource = ns.DataSource

				if err := r.normalize(); err != nil {
					return nil, errors.Wrapf(err, "invalid rule %q in group %q of namespace %q", r.Name, g.Name, ns.Name)
				}

				rules = append(rules, r)
			}
		}
	}

	return rules, nil
}

func decodeInventory(r io.Reader, inventory *Inventory) error {
	return yaml.NewDecoder(r, yaml.Strict()).Decode(inventory)
}

// normalize fills in the implicit defaults of an inventory rule and validates it.
func (r *Rule) normalize() error {
	if r.Type == TypeNone {
		r.Type = TypeAlerting
	}

	switch r.Type {
	case TypeAlerting:
		if r.State == StateNone {
			r.State = StateInactive
		}
	case TypeRecording:
		if r.State != StateNone {
			return errors.Errorf("recording rules don't have a state, got %q", r.State)
		}
	}

	if r.Health == HealthNone {
		r.Health = HealthUnknown
	}

	return nil
}
