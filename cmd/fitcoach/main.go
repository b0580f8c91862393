package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/meltforce/fitcoach/internal/cache"
	"github.com/meltforce/fitcoach/internal/checkout"
	"github.com/meltforce/fitcoach/internal/config"
	fitmcp "github.com/meltforce/fitcoach/internal/mcp"
	"github.com/meltforce/fitcoach/internal/metrics"
	"github.com/meltforce/fitcoach/internal/server"
	"github.com/meltforce/fitcoach/internal/sqlitestore"
	"github.com/meltforce/fitcoach/internal/storage"
	"github.com/meltforce/fitcoach/internal/store"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"tailscale.com/tsnet"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	migrateOnly := flag.Bool("migrate-only", false, "run migrations and exit")
	flag.Parse()

	boot := bootLogger()

	cfg, err := config.Load(*configPath)
	if err != nil {
		boot.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	log, closeLog := newLogger(cfg.Logging, os.Stdout)
	defer closeLog()
	log.Info("FitCoach starting", "version", Version, "driver", cfg.Database.Driver)

	if err := run(cfg, *migrateOnly, log); err != nil {
		log.Error("fatal", "error", err)
		closeLog()
		os.Exit(1)
	}
}

func run(cfg *config.Config, migrateOnly bool, log *slog.Logger) error {
	ctx := context.Background()
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	st, collectors, err := openStore(ctx, cfg, migrateOnly, log)
	if err != nil {
		return err
	}
	if st == nil {
		log.Info("migrate-only: exiting")
		return nil
	}
	defer st.Close()

	registry := metrics.SetupPrometheus(collectors...)
	metricsManager := metrics.NewManager("fitcoach", "api", registry)
	metricsManager.GaugeLifeSignal.Set(0)

	// Program queries go through the cache; redis when configured, else in-process.
	var c cache.Cache
	var limiter server.RequestRateLimiter
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer func() { _ = rdb.Close() }()
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("pinging redis: %w", err)
		}
		log.Info("redis connected", "addr", cfg.Redis.Addr)
		c = cache.NewRedis(rdb)
		limiter = redis_rate.NewLimiter(rdb)
	} else {
		c = cache.NewLocal(cfg.Cache.SizeBytes)
		log.Info("using in-process cache", "size_bytes", cfg.Cache.SizeBytes)
	}
	programs := cache.NewProgramStore(st, c, cfg.Cache.TTL, log).WithObserver(metricsManager)

	var checkoutBuilder *checkout.Builder
	if len(cfg.Checkout.Links) > 0 {
		checkoutBuilder, err = checkout.NewBuilder(cfg.Checkout.Links)
		if err != nil {
			return fmt.Errorf("checkout links: %w", err)
		}
		log.Info("checkout enabled", "tiers", checkoutBuilder.Tiers())
	}

	mcpSource := struct {
		store.ProgramStore
		store.LogStore
	}{programs, st}

	srv := server.New(server.Deps{
		Store:          st,
		Programs:       programs,
		Checkout:       checkoutBuilder,
		Metrics:        metricsManager,
		Limiter:        limiter,
		WritesPerMin:   cfg.RateLimit.WritesPerMinute,
		DevUser:        server.UserInfo{Login: cfg.Auth.DevLogin, DisplayName: cfg.Auth.DevDisplayName},
		AllowedOrigins: cfg.Server.AllowedOrigins,
		MCP:            fitmcp.New(mcpSource, Version, log),
		MetricsHandler: promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}),
	}, log)

	// Start server, tsnet or plain HTTP
	var listener net.Listener
	if cfg.Tailscale.Enabled {
		tsServer := &tsnet.Server{
			Hostname: cfg.Tailscale.Hostname,
			Dir:      cfg.Tailscale.StateDir,
		}
		if err := tsServer.Start(); err != nil {
			return fmt.Errorf("tsnet start: %w", err)
		}
		defer tsServer.Close()

		lc, err := tsServer.LocalClient()
		if err != nil {
			return fmt.Errorf("tsnet local client: %w", err)
		}
		srv.SetTailscale(lc)

		listener, err = tsServer.Listen("tcp", ":80")
		if err != nil {
			return fmt.Errorf("tsnet listen: %w", err)
		}
		log.Info("tsnet server starting", "hostname", cfg.Tailscale.Hostname)
	} else {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		listener, err = net.Listen("tcp", addr)
		if err != nil {
			return fmt.Errorf("listen %s: %w", addr, err)
		}
		log.Info("server starting", "addr", addr, "mode", "dev (no tailscale)")
	}

	httpSrv := &http.Server{
		Handler:           otelhttp.NewHandler(srv, "fitcoach"),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		if err := httpSrv.Serve(listener); err != nil && err != http.ErrServerClosed {
			serveErr <- err
		}
	}()
	metricsManager.GaugeLifeSignal.Set(1)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-quit:
		log.Info("shutting down", "signal", sig)
	case err := <-serveErr:
		return fmt.Errorf("server error: %w", err)
	}
	metricsManager.GaugeLifeSignal.Set(0)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", "error", err)
	}
	log.Info("server stopped")
	return nil
}

// openStore opens the configured backend. Postgres runs migrations first and
// returns a nil store when migrateOnly is set.
func openStore(ctx context.Context, cfg *config.Config, migrateOnly bool, log *slog.Logger) (store.Store, []prometheus.Collector, error) {
	if cfg.Database.Driver == config.DriverSQLite {
		db, err := sqlitestore.Open(cfg.Database.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("opening sqlite: %w", err)
		}
		log.Info("sqlite database opened", "path", cfg.Database.Path)
		if migrateOnly {
			_ = db.Close()
			return nil, nil, nil
		}
		return db, nil, nil
	}

	dsn := cfg.Database.DSN()
	if err := storage.RunMigrations(dsn, cfg.Database.Migrations); err != nil {
		return nil, nil, fmt.Errorf("migration failed: %w", err)
	}
	log.Info("migrations applied")
	if migrateOnly {
		return nil, nil, nil
	}

	db, err := storage.New(ctx, dsn, storage.Options{Tracing: true})
	if err != nil {
		return nil, nil, fmt.Errorf("connecting database: %w", err)
	}
	log.Info("database connected")
	return db, []prometheus.Collector{db.Collector(cfg.Database.Name)}, nil
}
