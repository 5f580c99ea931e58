package rule

// Rule is a single alerting or recording rule of the inventory.
//
// Namespace, Group and DataSource are inherited from the enclosing namespace and group when the
// inventory is loaded.
type Rule struct {
	Namespace  string            `yaml:"namespace,omitempty" json:"namespace,omitempty"`
	Group      string            `yaml:"group,omitempty" json:"group,omitempty"`
	DataSource string            `yaml:"data-source,omitempty" json:"dataSource,omitempty"`
	Name       string            `yaml:"name" json:"name"`
	Type       Type              `yaml:"type,omitempty" json:"type,omitempty"`
	State      State             `yaml:"state,omitempty" json:"state,omitempty"`
	Health     Health            `yaml:"health,omitempty" json:"health,omitempty"`
	Labels     map[string]string `yaml:"labels,omitempty" json:"labels,omitempty"`
}

// Label returns the value of the given label or "" if the rule doesn't carry it.
func (r *Rule) Label(name string) string {
	return r.Labels[name]
}
