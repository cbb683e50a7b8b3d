// Package logging builds the loggers of the service: zap for the HTTP access log and the
// Kafka writer, slog for application components.
package logging

import (
	"log/slog"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const EnvProduction = "production"

// NewZap returns a JSON logger in production and a colored console logger otherwise.
func NewZap(env string) (*zap.Logger, error) {
	var config zap.Config
	if env == EnvProduction {
		config = zap.NewProductionConfig()
	} else {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	return config.Build()
}

// NewSlog returns the component logger. Components scope it with
// logger.With("component", name).
func NewSlog(env string) *slog.Logger {
	if env == EnvProduction {
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
