package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger creates a zap logger. Verbose mode switches to the
// development config with colored levels and debug output.
func NewLogger(verbose bool) (*zap.Logger, error) {
	var config zap.Config

	if verbose {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		config = zap.NewProductionConfig()
		config.Encoding = "console"
		config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		config.DisableStacktrace = true
	}

	return config.Build()
}

// MustNewLogger creates a logger and panics if it fails.
func MustNewLogger(verbose bool) *zap.Logger {
	logger, err := NewLogger(verbose)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	return logger
}

// NewSugared is a convenience wrapper used across the CLI.
func NewSugared(verbose bool) *zap.SugaredLogger {
	return MustNewLogger(verbose).Sugar()
}

// NewNop returns a no-op sugared logger for tests.
func NewNop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
