package rule

import (
	"fmt"
	"strings"
)

// Type is the kind of rule, either an alerting or a recording rule.
type Type int

const (
	TypeNone Type = iota
	TypeAlerting
	TypeRecording
)

var typeByName = map[string]Type{
	"alerting":  TypeAlerting,
	"recording": TypeRecording,
}

var typeToName = func() map[Type]string {
	types := make(map[Type]string)
	for name, ruleType := range typeByName {
		types[ruleType] = name
	}
	return types
}()

// ParseType looks up the rule type by its name, ignoring case.
// Returns false if the name doesn't denote a known rule type.
func ParseType(name string) (Type, bool) {
	t, ok := typeByName[strings.ToLower(name)]
	return t, ok
}

// MarshalText implements the encoding.TextMarshaler interface.
func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (t *Type) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*t = TypeNone
		return nil
	}

	ruleType, ok := ParseType(string(text))
	if !ok {
		return fmt.Errorf("unknown rule type %q", text)
	}

	*t = ruleType

	return nil
}

func (t Type) String() string {
	return typeToName[t]
}
