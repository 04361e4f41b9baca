// Package logger builds the preconfigured zap sugared logger used by the
// command line tools. Library packages stay silent; logging happens at the
// edges.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New constructs a sugared logger tagged with the service name.
// Output is line-delimited JSON on stdout.
func New(service string) *zap.SugaredLogger {
	config := zap.NewProductionConfig()
	config.DisableStacktrace = true
	config.EncoderConfig.TimeKey = "ts"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.InitialFields = map[string]any{
		"service": service,
		"pid":     os.Getpid(),
	}

	log, err := config.Build(zap.WithCaller(true))
	if err != nil {
		panic(err)
	}

	return log.Sugar()
}
