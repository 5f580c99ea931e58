package rule

import (
	"fmt"
	"strings"
)

// State is the evaluation state of an alerting rule.
type State int

const (
	StateNone State = iota
	StateInactive
	StatePending
	StateFiring
	StateRecovering
)

// stateAliasNormal is accepted in search queries in place of "inactive".
const stateAliasNormal = "normal"

var stateByName = map[string]State{
	"inactive":   StateInactive,
	"pending":    StatePending,
	"firing":     StateFiring,
	"recovering": StateRecovering,
}

var stateToName = func() map[State]string {
	m := make(map[State]string)
	for name, state := range stateByName {
		m[state] = name
	}
	return m
}()

// ParseState parses the given state name, ignoring case.
// Returns StateNone for names that don't denote a known state.
func ParseState(name string) State {
	name = strings.ToLower(name)
	if name == stateAliasNormal {
		return StateInactive
	}

	return stateByName[name]
}

// MarshalText implements the encoding.TextMarshaler interface.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (s *State) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*s = StateNone
		return nil
	}

	state := ParseState(string(text))
	if state == StateNone {
		return fmt.Errorf("unknown rule state %q", text)
	}

	*s = state

	return nil
}

func (s State) String() string {
	return stateToName[s]
}
