package app

import (
	"fmt"

	"go-ats/internal/candidate"
	"go-ats/internal/shared/apperror"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// NewLogger builds the process logger: JSON in production, coloured console
// output otherwise. LOG_LEVEL overrides the environment's default level.
func NewLogger(cfg Config) (*zap.Logger, error) {
	zc := zap.NewDevelopmentConfig()
	if cfg.AppEnv == "production" {
		zc = zap.NewProductionConfig()
	}
	if cfg.LogLevel != "" {
		level, err := zap.ParseAtomicLevel(cfg.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("LOG_LEVEL: %w", err)
		}
		zc.Level = level
	}
	return zc.Build(zap.Fields(zap.String("service", "go-ats")))
}

// Init is the shared start of every command: .env, config, the global
// logger tagged with component, and the request validators.
func Init(component string) (Config, *zap.Logger, error) {
	_ = godotenv.Load()

	cfg, err := LoadConfig()
	if err != nil {
		return Config{}, nil, err
	}
	logger, err := NewLogger(cfg)
	if err != nil {
		return Config{}, nil, err
	}
	logger = logger.With(zap.String("component", component))
	zap.ReplaceGlobals(logger)

	apperror.Init(candidate.RegisterValidations)
	return cfg, logger, nil
}
