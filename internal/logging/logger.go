package logging

import (
	"go.uber.org/zap"
)

// NewLogger builds a production ready structured logger.
func NewLogger() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.TimeKey = "timestamp"
	return cfg.Build()
}

// WithOperation enriches the logger with an operation name and an optional
// reference (request id for handler paths, round version for worker paths).
func WithOperation(logger *zap.Logger, operation, ref string) *zap.Logger {
	fields := []zap.Field{zap.String("operation", operation)}
	if ref != "" {
		fields = append(fields, zap.String("ref", ref))
	}
	return logger.With(fields...)
}
