package rule

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const testInventory = `
namespaces:
  - name: infra
    data-source: Mimir
    groups:
      - name: node
        interval: 1m
        rules:
          - name: High CPU usage
            state: firing
            health: ok
            labels:
              team: ops
          - name: Disk almost full
  - name: apps
    data-source: Loki
    groups:
      - name: checkout
        rules:
          - name: checkout:requests:rate5m
            type: recording
            health: nodata
`

func TestLoadInventory(t *testing.T) {
	t.Parallel()

	t.Run("Valid", func(t *testing.T) {
		t.Parallel()

		rules, err := LoadInventory(strings.NewReader(testInventory))
		require.NoError(t, err)
		require.Len(t, rules, 3)

		assert.Equal(t, &Rule{
			Namespace:  "infra",
			Group:      "node",
			DataSource: "Mimir",
			Name:       "High CPU usage",
			Type:       TypeAlerting,
			State:      StateFiring,
			Health:     HealthOk,
			Labels:     map[string]string{"team": "ops"},
		}, rules[0])

		assert.Equal(t, "Disk almost full", rules[1].Name)
		assert.Equal(t, TypeAlerting, rules[1].Type)
		assert.Equal(t, StateInactive, rules[1].State)
		assert.Equal(t, HealthUnknown, rules[1].Health)

		assert.Equal(t, "apps", rules[2].Namespace)
		assert.Equal(t, "Loki", rules[2].DataSource)
		assert.Equal(t, TypeRecording, rules[2].Type)
		assert.Equal(t, StateNone, rules[2].State)
		assert.Equal(t, HealthNoData, rules[2].Health)
	})

	t.Run("Empty", func(t *testing.T) {
		t.Parallel()

		rules, err := LoadInventory(strings.NewReader(""))
		require.NoError(t, err)
		assert.Empty(t, rules)
	})

	t.Run("GroupInterval", func(t *testing.T) {
		t.Parallel()

		var inventory Inventory
		require.NoError(t, decodeInventory(strings.NewReader(testInventory), &inventory))
		require.Len(t, inventory.Namespaces, 2)
		assert.Equal(t, time.Minute, inventory.Namespaces[0].Groups[0].Interval)
	})

	t.Run("Invalid", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name string
			yaml string
		}{
			{"UnknownField", "namespaces:\n  - name: a\n    bogus: true\n"},
			{"NamespaceWithoutName", "namespaces:\n  - data-source: Mimir\n"},
			{"GroupWithoutName", "namespaces:\n  - name: a\n    groups:\n      - interval: 1m\n"},
			{"RuleWithoutName", "namespaces:\n  - name: a\n    groups:\n      - name: g\n        rules:\n          - state: firing\n"},
			{"UnknownState", "namespaces:\n  - name: a\n    groups:\n      - name: g\n        rules:\n          - name: r\n            state: bogus\n"},
			{"UnknownType", "namespaces:\n  - name: a\n    groups:\n      - name: g\n        rules:\n          - name: r\n            type: bogus\n"},
			{"RuleWithNamespace", "namespaces:\n  - name: a\n    groups:\n      - name: g\n        rules:\n          - name: r\n            namespace: b\n"},
			{"RuleWithGroup", "namespaces:\n  - name: a\n    groups:\n      - name: g\n        rules:\n          - name: r\n            group: h\n"},
			{"RuleWithDataSource", "namespaces:\n  - name: a\n    groups:\n      - name: g\n        rules:\n          - name: r\n            data-source: Loki\n"},
			{"RecordingWithState", "namespaces:\n  - name: a\n    groups:\n      - name: g\n        rules:\n          - name: r\n            type: recording\n            state: firing\n"},
		}

		for _, tt := range tests {
			tt := tt
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()

				_, err := LoadInventory(strings.NewReader(tt.yaml))
				assert.Error(t, err)
			})
		}
	})
}

func TestLoadInventoryFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "rules.yml")
	require.NoError(t, os.WriteFile(path, []byte(testInventory), 0o600))

	rules, err := LoadInventoryFile(path)
	require.NoError(t, err)
	assert.Len(t, rules, 3)

	_, err = LoadInventoryFile(filepath.Join(t.TempDir(), "missing.yml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
