// Package api configures and exposes the HTTP server, routes,
// metrics, docs and related middleware of the lint service.
package api

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/riverqueue/river"
	"github.com/swaggest/swgui/v5emb"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/zap/exp/zapslog"
	"riverqueue.com/riverui"

	"pylintd/internal/api/handler/v1handler"
	"pylintd/internal/api/specs/v1specs"
	"pylintd/internal/config"
	"pylintd/pkg/controller"
	"pylintd/pkg/logger"
)

// v1Spec contains the embedded OpenAPI specification for version 1 of the API.
//
//go:embed specs/v1.yaml
var v1Spec []byte

// Options holds configuration for the HTTP server and its dependencies.
// It is typically created from a config.Config via NewOptions.
type Options struct {
	// SecHandlerOptions configures bearer token verification for v1 endpoints.
	SecHandlerOptions *v1handler.SecHandlerOptions
	// HandlerOptions tune the v1 handlers.
	HandlerOptions v1handler.Options

	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// RequestTimeout is the global timeout applied via http.TimeoutHandler for handling requests.
	RequestTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
	// AllowedOrigins restricts CORS; empty allows any origin.
	AllowedOrigins []string
	// Registry receives the HTTP metrics. Nil uses the default registry.
	Registry *prometheus.Registry
}

// NewOptions constructs an Options value from the provided application configuration.
func NewOptions(cfg *config.Config) Options {
	return Options{
		SecHandlerOptions: v1handler.NewSecHandlerOptions(cfg),
		HandlerOptions:    v1handler.NewOptions(cfg),

		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
		AllowedOrigins:    cfg.HTTP.AllowedOrigins,
	}
}

type Deps struct {
	v1handler.Deps

	// RiverClient backs the queue dashboard under /riverui/; nil disables it.
	RiverClient *river.Client[pgx.Tx]
	// HealthChecks are run by /healthz.
	HealthChecks map[string]controller.HealthCheck
}

// NewServer wires up and returns a configured *http.Server using the provided Options.
// It sets up:
// - Prometheus metrics endpoint (MetricsPath)
// - OpenTelemetry metrics exporter (Prometheus) recording request durations
// - Embedded OpenAPI v1 spec and Swagger UI
// - v1 API routes behind bearer authentication
// - the river queue dashboard, health check and pprof endpoints
// It also wraps the mux with CORS, logging and recover middlewares and applies a request timeout.
// ctx bounds the background work of the queue dashboard. Requests inherit its
// values but not its cancellation, so Shutdown can drain them.
func NewServer(ctx context.Context, deps Deps, opts Options) (*http.Server, error) {
	mux := http.NewServeMux()

	// prometheus metrics server
	var registerer prometheus.Registerer = prometheus.DefaultRegisterer
	if opts.Registry != nil {
		registerer = opts.Registry
		mux.Handle(opts.MetricsPath, promhttp.HandlerFor(
			prometheus.Gatherers{prometheus.DefaultGatherer, opts.Registry},
			promhttp.HandlerOpts{},
		))
	} else {
		mux.Handle(opts.MetricsPath, promhttp.Handler())
	}

	// otel
	exp, err := otelprom.New(otelprom.WithRegisterer(registerer))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp))

	// v1 specs file
	mux.HandleFunc("GET /specs/v1.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})
	// v1 api swagger playground
	mux.Handle("/v1/docs/", v5emb.New(
		"Pylint Service",
		"/specs/v1.yaml",
		"/v1/docs/",
	))
	// v1 api
	secHandler, err := v1handler.NewSecHandler(opts.SecHandlerOptions)
	if err != nil {
		return nil, fmt.Errorf("could not create sec handler: %w", err)
	}
	v1Handler := v1handler.New(deps.Deps)
	v1Srv, err := v1specs.NewServer(
		v1Handler,
		secHandler,
		v1specs.WithMeterProvider(mp),
		v1specs.WithErrorHandler(v1Handler.ErrorHandler),
		v1specs.WithPathPrefix("/v1"),
	)
	if err != nil {
		return nil, fmt.Errorf("could not create v1 server: %w", err)
	}
	mux.Handle("/v1/", http.MaxBytesHandler(v1Srv, opts.HandlerOptions.BodyLimit()))

	// river ui
	if deps.RiverClient != nil {
		riverUI, err := riverui.NewHandler(&riverui.HandlerOpts{
			Endpoints: riverui.NewEndpoints(deps.RiverClient, nil),
			Logger:    slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
			Prefix:    "/riverui",
		})
		if err != nil {
			return nil, fmt.Errorf("could not create river ui handler: %w", err)
		}
		if err := riverUI.Start(ctx); err != nil {
			return nil, fmt.Errorf("could not start river ui handler: %w", err)
		}
		mux.Handle("/riverui/", riverUI)
	}

	// health
	mux.Handle("GET /healthz", controller.Healthz(5*time.Second, deps.HealthChecks))

	// pprof
	mux.Handle("/debug/pprof/", controller.PprofMux())

	// metrics
	handler, err := controller.WithMetrics(mux, mp.Meter("pylintd/api"))
	if err != nil {
		return nil, fmt.Errorf("could not create metrics middleware: %w", err)
	}

	// cors
	handler = controller.WithCORS(handler, opts.AllowedOrigins...)

	// recover
	handler = controller.WithRecover(handler)

	// logger
	handler = controller.WithLogger(handler)

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           http.TimeoutHandler(handler, opts.RequestTimeout, `{"code":"TIMEOUT","message":"request timed out"}`),
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
		// ctx is cancelled as soon as shutdown starts; in-flight requests must outlive it
		BaseContext: func(_ net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}, nil
}
