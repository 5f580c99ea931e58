package logging

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"testing"
)

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, (&Config{Output: CONSOLE}).Validate())
	assert.NoError(t, (&Config{Output: JSON, Level: zapcore.DebugLevel}).Validate())
	assert.Error(t, (&Config{}).Validate())
	assert.Error(t, (&Config{Output: "journald"}).Validate())
}

func TestNewLoggingFromConfig(t *testing.T) {
	t.Parallel()

	logs, err := NewLoggingFromConfig("rules-search", Config{Output: JSON})
	require.NoError(t, err)
	require.NotNil(t, logs.GetLogger())

	_, err = NewLoggingFromConfig("rules-search", Config{Output: "syslog"})
	assert.Error(t, err)
}

func TestLogging(t *testing.T) {
	t.Parallel()

	var observed *observer.ObservedLogs
	logs := NewLoggingWithFactory("root", zapcore.InfoLevel, func(level zap.AtomicLevel) zapcore.Core {
		var core zapcore.Core
		core, observed = observer.New(level)

		return core
	})

	child := logs.GetChildLogger("search")
	child.Debug("Hidden")
	child.Infow("Visible", zap.String("query", "state:firing"))

	logs.SetLevel(zapcore.DebugLevel)
	logs.GetLogger().Debug("Now visible")

	entries := observed.AllUntimed()
	require.Len(t, entries, 2)

	assert.Equal(t, "root.search", entries[0].LoggerName)
	assert.Equal(t, "Visible", entries[0].Message)
	assert.Equal(t, "state:firing", entries[0].ContextMap()["query"])

	assert.Equal(t, "root", entries[1].LoggerName)
	assert.Equal(t, zapcore.DebugLevel, entries[1].Level)
}
