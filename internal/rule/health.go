package rule

import (
	"fmt"
	"strings"
)

// Health describes whether the last evaluation of a rule succeeded.
type Health int

const (
	HealthNone Health = iota
	HealthOk
	HealthError
	HealthNoData
	HealthUnknown
)

var healthToName = map[Health]string{
	HealthOk:      "ok",
	HealthError:   "error",
	HealthNoData:  "nodata",
	HealthUnknown: "unknown",
}

var healthByName = func() map[string]Health {
	m := map[string]Health{"err": HealthError}
	for health, name := range healthToName {
		m[name] = health
	}
	return m
}()

// GetHealth maps an arbitrary health string to a Health, ignoring case.
// Anything unrecognized is considered HealthUnknown.
func GetHealth(name string) Health {
	if health, ok := healthByName[strings.ToLower(name)]; ok {
		return health
	}

	return HealthUnknown
}

// MarshalText implements the encoding.TextMarshaler interface.
func (h Health) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
//
// Unlike GetHealth, it rejects unknown names, since those can only be typos in a rule inventory.
func (h *Health) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*h = HealthNone
		return nil
	}

	health, ok := healthByName[strings.ToLower(string(text))]
	if !ok {
		return fmt.Errorf("unknown rule health %q", text)
	}

	*h = health

	return nil
}

func (h Health) String() string {
	return healthToName[h]
}
