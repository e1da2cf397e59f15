// Package logging builds the zap loggers used across the engine.
package logging

import (
	"go.uber.org/zap"

	zerr "github.com/KirkDiggler/zodiac-skill-engine/internal/errors"
)

// Config selects the logger flavor
type Config struct {
	// Level is a zap level name such as debug, info or warn
	Level string

	// Development switches to console output with stack traces on warnings
	Development bool
}

// New builds a logger from cfg. A nil config yields a production info logger.
func New(cfg *Config) (*zap.Logger, error) {
	if cfg == nil {
		cfg = &Config{}
	}

	zc := zap.NewProductionConfig()
	if cfg.Development {
		zc = zap.NewDevelopmentConfig()
	}

	if cfg.Level != "" {
		level, err := zap.ParseAtomicLevel(cfg.Level)
		if err != nil {
			return nil, zerr.WrapWithCode(err, zerr.CodeInvalidArgument, "invalid log level").
				WithMeta("level", cfg.Level)
		}
		zc.Level = level
	}

	logger, err := zc.Build()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to build logger")
	}
	return logger, nil
}
