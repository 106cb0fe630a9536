// Package cmd holds the startup plumbing shared by masks binaries: env then
// flag parsing, and a telemetry-wrapped run loop.
package cmd

import (
	"context"
	"errors"
	"flag"
	"strings"
	"time"

	"github.com/louisbranch/masks/internal/platform/config"
	"github.com/louisbranch/masks/internal/platform/otel"
	"github.com/louisbranch/masks/internal/platform/timeouts"
	"go.uber.org/zap"
)

// Service names double as OTel resource names and logger tags.
const (
	ServiceGame    = "game"
	ServiceMaskctl = "maskctl"
)

// RunOptions tunes RunWithTelemetryAndOptions.
type RunOptions struct {
	// ShutdownTimeout bounds the tracer flush. Zero means timeouts.Shutdown.
	ShutdownTimeout time.Duration
	// Logger receives tracer setup and shutdown failures.
	Logger *zap.Logger
}

// ParseConfig loads environment defaults into cfg.
func ParseConfig[T any](cfg *T) error {
	if cfg == nil {
		return errors.New("config target is required")
	}
	return config.ParseEnv(cfg)
}

// ParseArgs parses command-line flags. Flags registered with env-derived
// defaults therefore win over the environment.
func ParseArgs(fs *flag.FlagSet, args []string) error {
	if fs == nil {
		return errors.New("flag parser is required")
	}
	if args == nil {
		args = []string{}
	}
	return fs.Parse(args)
}

// ParseConfigFromArgs is ParseConfig followed by ParseArgs.
func ParseConfigFromArgs[T any](cfg *T, fs *flag.FlagSet, args []string) error {
	if err := ParseConfig(cfg); err != nil {
		return err
	}
	return ParseArgs(fs, args)
}

// RunWithTelemetry runs fn with tracing configured for service.
func RunWithTelemetry(ctx context.Context, service string, run func(context.Context) error) error {
	return RunWithTelemetryAndOptions(ctx, service, RunOptions{}, run)
}

// RunWithTelemetryAndOptions runs fn with tracing configured for service and
// flushes spans when fn returns.
func RunWithTelemetryAndOptions(ctx context.Context, service string, options RunOptions, run func(context.Context) error) error {
	service = strings.TrimSpace(service)
	if service == "" {
		return errors.New("service name is required")
	}
	if run == nil {
		return errors.New("run function is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	logger := options.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	shutdown, err := otel.Setup(ctx, service)
	if err != nil {
		logger.Error("set up tracing", zap.String("service", service), zap.Error(err))
		return err
	}
	defer func() {
		timeout := options.ShutdownTimeout
		if timeout <= 0 {
			timeout = timeouts.Shutdown
		}
		flushCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := shutdown(flushCtx); err != nil {
			logger.Warn("flush traces", zap.String("service", service), zap.Error(err))
		}
	}()
	return run(ctx)
}
