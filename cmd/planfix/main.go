// Package main is the entry point for the planfix CLI. It wires all
// dependencies using samber/do v2 once flags are parsed, runs the selected
// command, and flushes telemetry before exiting.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	"github.com/jsamuelsen11/go-planfix/internal/adapters/cli"
	"github.com/jsamuelsen11/go-planfix/internal/adapters/clients/planfix"
	"github.com/jsamuelsen11/go-planfix/internal/app"
	"github.com/jsamuelsen11/go-planfix/internal/platform/config"
	"github.com/jsamuelsen11/go-planfix/internal/platform/health"
	"github.com/jsamuelsen11/go-planfix/internal/platform/httpclient"
	"github.com/jsamuelsen11/go-planfix/internal/platform/logging"
	"github.com/jsamuelsen11/go-planfix/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-planfix/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	otelShutdownTimeout = 5 * time.Second
	// filesServiceName identifies anonymous downloads in traces and metrics.
	filesServiceName = "planfix-files"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := cli.Run(ctx, os.Args[1:], build, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// build loads the profile and resolves the dependency graph.
func build(ctx context.Context, opts cli.Options) (*cli.App, error) {
	cfg, err := config.Load(opts.Profile, config.WithConfigDir(opts.ConfigDir))
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("initializing telemetry: %w", err)
	}

	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(injector, cfg, logger)

	application, err := do.Invoke[*cli.App](injector)
	if err != nil {
		_ = otel.Shutdown(ctx)
		return nil, fmt.Errorf("resolving dependencies: %w", err)
	}

	// Register health checkers after the graph is wired.
	application.Health.Register(do.MustInvoke[*planfix.Client](injector))

	application.Shutdown = func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, otelShutdownTimeout)
		defer cancel()
		return otel.Shutdown(ctx)
	}
	return application, nil
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp, cfg.Telemetry.ServiceName)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.Planfix, planfix.ServiceName, metrics, logger), nil
	})

	do.ProvideNamed(injector, filesServiceName, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.Planfix, filesServiceName, metrics, logger, httpclient.WithoutPropagation()), nil
	})

	do.Provide(injector, func(i do.Injector) (*planfix.Client, error) {
		hc := do.MustInvoke[*httpclient.Client](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return planfix.New(hc, &cfg.Planfix, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.PlanfixClient, error) {
		return do.MustInvoke[*planfix.Client](i), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.CommentService, error) {
		client := do.MustInvoke[ports.PlanfixClient](i)
		return app.NewCommentService(client, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TaskService, error) {
		client := do.MustInvoke[ports.PlanfixClient](i)
		return app.NewTaskService(client, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (*cli.App, error) {
		return &cli.App{
			Client:   do.MustInvoke[ports.PlanfixClient](i),
			Comments: do.MustInvoke[ports.CommentService](i),
			Tasks:    do.MustInvoke[ports.TaskService](i),
			Health:   do.MustInvoke[ports.HealthRegistry](i),
			Fetcher:  do.MustInvokeNamed[*httpclient.Client](i, filesServiceName),
			Logger:   logger,
		}, nil
	})
}
