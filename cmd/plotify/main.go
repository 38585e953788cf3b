package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/eargollo/plotify/internal/api"
	"github.com/eargollo/plotify/internal/config"
	"github.com/eargollo/plotify/internal/health"
	"github.com/eargollo/plotify/internal/scheduler"
	"github.com/eargollo/plotify/web"
)

// Injected at build time via -ldflags; defaults to "dev".
var version = "dev"

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	// ── Logging (initial — overridden below once config is loaded) ─────────
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// ── Config ─────────────────────────────────────────────────────────────
	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))
	slog.Info("plotify starting",
		"version", version,
		"log_level", cfg.LogLevel,
		"http_addr", cfg.HTTPAddr,
		"db_path", cfg.DBPath,
		"static_dir", cfg.StaticDir)

	// ── Store health ───────────────────────────────────────────────────────
	// The store itself is opened per request; this only reports whether it
	// is reachable.
	probe := health.NewProbe(cfg.DBPath)
	if res := probe.Run(context.Background()); !res.OK {
		slog.Warn("store not reachable at startup", "path", cfg.DBPath, "error", res.Error)
	}

	sched := scheduler.New()
	if err := sched.SetJob(cfg.HealthSchedule, func() {
		probe.Run(context.Background())
	}); err != nil {
		slog.Warn("invalid cron expression", "expr", cfg.HealthSchedule, "error", err)
	}
	sched.Start()
	defer sched.Stop()

	// ── HTTP server ────────────────────────────────────────────────────────
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := api.New(cfg.HTTPAddr, cfg.DBPath, probe, sched, version, web.Static(cfg.StaticDir))
	if err := srv.Run(ctx); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
	slog.Info("plotify stopped")
}

// parseLogLevel converts a config string ("debug", "info", "warn", "error")
// to its slog.Level equivalent. Unknown values default to Info.
func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
