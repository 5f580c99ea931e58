package testutils

import (
	"github.com/icinga/rules-search/internal/logging"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"testing"
)

// NewTestLogging creates a new logging instance for testing purposes.
//
// The logger uses zaptest to integrate with the testing.T instance, so that log output is only
// shown for failing tests or with -v. The logging level is set to Debug.
func NewTestLogging(t *testing.T) *logging.Logging {
	return logging.NewLoggingWithFactory(
		"testing",
		zap.DebugLevel,
		func(level zap.AtomicLevel) zapcore.Core {
			return zaptest.NewLogger(t, zaptest.Level(level)).Core()
		},
	)
}
