package app

import (
	"fmt"

	"go.uber.org/zap"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// NewLogger returns a JSON production logger for EnvProduction and a
// console development logger otherwise.
func NewLogger(env string) (*zap.Logger, error) {
	var (
		logger *zap.Logger
		err    error
	)

	switch env {
	case EnvProduction:
		logger, err = zap.NewProduction()
	case EnvDevelopment, "":
		logger, err = zap.NewDevelopment()
	default:
		return nil, fmt.Errorf("unknown environment %q", env)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return logger.With(zap.String("env", envOrDefault(env))), nil
}

func envOrDefault(env string) string {
	if env == "" {
		return EnvDevelopment
	}
	return env
}
