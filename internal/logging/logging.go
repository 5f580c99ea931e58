package logging

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"os"
)

const (
	// CONSOLE writes human-readable log lines.
	CONSOLE = "console"
	// JSON writes one JSON object per log entry.
	JSON = "json"
)

// Config defines logger configuration.
type Config struct {
	// zapcore.Level at 0 is for info level.
	Level  zapcore.Level `yaml:"level"`
	Output string        `yaml:"output" default:"console"`
}

// Validate checks constraints in the supplied Config and returns an error if they are violated.
func (c *Config) Validate() error {
	switch c.Output {
	case CONSOLE, JSON:
		return nil
	default:
		return errors.Errorf("invalid logging output %q, expected one of %q or %q", c.Output, CONSOLE, JSON)
	}
}

// Logging manages the root logger of an application and the child loggers derived from it.
type Logging struct {
	logger *zap.SugaredLogger
	level  zap.AtomicLevel
}

// NewLoggingFromConfig returns a new Logging writing to os.Stderr in the format given by the Config.
func NewLoggingFromConfig(name string, c Config) (*Logging, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	if c.Output == JSON {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	} else {
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	}

	return NewLoggingWithFactory(name, c.Level, func(level zap.AtomicLevel) zapcore.Core {
		return zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), level)
	}), nil
}

// NewLoggingWithFactory returns a new Logging whose core is built by the given factory.
//
// The factory receives the atomic level of the Logging, so that the level can be changed later on.
func NewLoggingWithFactory(name string, level zapcore.Level, factory func(zap.AtomicLevel) zapcore.Core) *Logging {
	atom := zap.NewAtomicLevelAt(level)

	return &Logging{
		logger: zap.New(factory(atom), zap.AddCaller()).Named(name).Sugar(),
		level:  atom,
	}
}

// GetLogger returns the root logger.
func (l *Logging) GetLogger() *zap.SugaredLogger {
	return l.logger
}

// GetChildLogger returns a named child logger.
func (l *Logging) GetChildLogger(name string) *zap.SugaredLogger {
	return l.logger.Named(name)
}

// SetLevel changes the level of the root logger and all its children.
func (l *Logging) SetLevel(level zapcore.Level) {
	l.level.SetLevel(level)
}
