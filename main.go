package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/shubhamnexus/samparkmain-dashboard/config"
	"github.com/shubhamnexus/samparkmain-dashboard/dataset"
	"github.com/shubhamnexus/samparkmain-dashboard/handlers"
	"github.com/shubhamnexus/samparkmain-dashboard/middleware"
	"github.com/shubhamnexus/samparkmain-dashboard/observability"
)

var (
	logger *zap.Logger
	cfg    config.Config

	// Flag overrides
	portFlag      string
	seedFlag      uint64
	referenceFlag string
)

var rootCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Synthetic program dashboard data service",
	Long: `dashboard serves synthetic figures for an education program dashboard:
budget utilization, school and teacher coverage, and a State -> District ->
Block -> School drill-down. Figures are derived from static reference tables
with seeded random variation.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.LoadEnv(nil); err != nil {
			return err
		}
		var err error
		if cfg, err = config.Load(); err != nil {
			return err
		}
		if cmd.Flags().Changed("seed") {
			cfg.Seed, cfg.HasSeed = seedFlag, true
		}
		if cmd.Flags().Changed("reference") {
			cfg.ReferenceFile = referenceFlag
		}
		if cmd.Flags().Changed("port") {
			cfg.Port = portFlag
		}
		if logger, err = config.NewLogger(cfg.LogLevel, cfg.LogFormat); err != nil {
			return err
		}
		zap.ReplaceGlobals(logger)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().Uint64Var(&seedFlag, "seed", 0, "pin the random stream (overrides DASHBOARD_SEED)")
	rootCmd.PersistentFlags().StringVar(&referenceFlag, "reference", "", "reference tables YAML (overrides DASHBOARD_REFERENCE_FILE)")
	serveCmd.Flags().StringVar(&portFlag, "port", "8080", "listen port (overrides PORT)")

	rootCmd.AddCommand(serveCmd, snapshotCmd, drillCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func serve(ctx context.Context) error {
	startTime := time.Now()
	logger.Info("starting server initialization", zap.Time("at", startTime))

	catalog, err := dataset.LoadCatalog(cfg.ReferenceFile)
	if err != nil {
		return fmt.Errorf("loading reference tables: %w", err)
	}
	logger.Info("reference tables loaded",
		zap.Int("partners", catalog.PartnerCount()),
		zap.Int("periods", catalog.PeriodCount()),
		zap.Int("states", catalog.StateCount()),
	)

	shutdownTracing, err := observability.InitTracing(ctx, observability.TracingConfig{
		Enabled:     cfg.TracingEnabled,
		ServiceName: "dashboard",
		SampleRatio: cfg.TracingSampleRatio,
	}, logger)
	if err != nil {
		return err
	}
	defer observability.ShutdownWithTimeout(context.Background(), shutdownTracing, logger)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics, err := observability.NewCollector(reg)
	if err != nil {
		return err
	}

	h := handlers.New(handlers.Options{
		Catalog:  catalog,
		Sessions: config.NewSessionStore(cfg),
		Metrics:  metrics,
		Logger:   logger,
		Seed:     cfg.Seed,
		HasSeed:  cfg.HasSeed,
	})

	srv := &http.Server{
		Handler:           newRouter(h, metrics),
		Addr:              cfg.Addr(),
		WriteTimeout:      cfg.WriteTimeout,
		ReadTimeout:       cfg.ReadTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server listening",
			zap.String("addr", srv.Addr),
			zap.Duration("startup", time.Since(startTime)),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
		logger.Info("server shutdown completed")
		return nil
	})
	return g.Wait()
}

// newRouter wires the middleware chain and every route. CORS wraps the whole
// router so that preflight requests are answered before route matching.
func newRouter(h *handlers.Handler, metrics *observability.Collector) http.Handler {
	r := mux.NewRouter()

	if cfg.CORSDebug {
		r.Use(middleware.CORSDebugMiddleware(logger))
	}
	r.Use(middleware.RecoveryMiddleware(logger))
	r.Use(middleware.LoggingMiddleware(logger))
	r.Use(middleware.TracingMiddleware)
	r.Use(middleware.MetricsMiddleware(metrics))

	api := r.PathPrefix("/api/v1").Subrouter()
	h.Register(api)
	r.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Authorization",
			"Content-Type",
			"X-Requested-With",
			"Origin",
		},
		ExposedHeaders: []string{
			"Content-Length",
			"Content-Type",
			"Location",
			"X-Dashboard-Seed",
		},
		AllowCredentials: false,
		MaxAge:           86400,
	})
	return corsHandler.Handler(r)
}
