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

	"github.com/Qadosh7/Fit-Flow/internal/app"
	"github.com/Qadosh7/Fit-Flow/internal/config"
	"github.com/Qadosh7/Fit-Flow/internal/generate"
	"github.com/Qadosh7/Fit-Flow/internal/localstore"
	"github.com/Qadosh7/Fit-Flow/internal/persist"
	"github.com/Qadosh7/Fit-Flow/internal/server"
	"github.com/Qadosh7/Fit-Flow/internal/storage"
	"tailscale.com/tsnet"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	migrateOnly := flag.Bool("migrate-only", false, "run migrations and exit")
	flag.Parse()

	// Load config
	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	log := cfg.Log.NewLogger(os.Stdout)
	log.Info("FitFlow starting", "version", Version)

	if *migrateOnly {
		if !cfg.Database.Configured() {
			log.Error("migrate-only requires database.host")
			os.Exit(1)
		}
		if err := storage.RunMigrations(cfg.Database.DSN(), "migrations"); err != nil {
			log.Error("migration failed", "error", err)
			os.Exit(1)
		}
		log.Info("migrate-only: exiting")
		return
	}

	// Local cache
	cache, err := localstore.Open(cfg.Cache.Path)
	if err != nil {
		log.Error("failed to open local cache", "path", cfg.Cache.Path, "error", err)
		os.Exit(1)
	}
	defer cache.Close()

	// Remote mirror, optional
	ctx := context.Background()
	var mirror persist.Mirror
	if db := connectMirror(ctx, cfg, log); db != nil {
		defer db.Close()
		mirror = db
	}
	facade := persist.New(cache, mirror, cfg.Remote.Timeout, log)

	// Generator
	var client generate.Client = generate.Disabled{}
	if cfg.Generator.Provider == "gemini" {
		if cfg.Generator.APIKey == "" {
			log.Warn("generator.api_key is empty; plan generation will fail")
		}
		client = generate.NewResilientClient(
			generate.NewGeminiClient(cfg.Generator.Model, cfg.Generator.APIKey),
			cfg.Generator.Timeout,
		)
	}
	gen := generate.NewService(client, log)

	// Controller
	ctrl, err := app.New(facade, gen, log, app.Options{RequireAuth: mirror != nil})
	if err != nil {
		log.Error("failed to build controller", "error", err)
		os.Exit(1)
	}
	if err := ctrl.Start(ctx, nil); err != nil {
		log.Warn("initial load incomplete", "error", err)
	}

	srv := server.New(ctrl, cfg.Auth.APIKey, log)

	// Listener: tsnet or plain HTTP
	var listener net.Listener
	var tsServer *tsnet.Server

	if cfg.Tailscale.Enabled {
		tsServer = &tsnet.Server{
			Hostname: cfg.Tailscale.Hostname,
			Dir:      cfg.Tailscale.StateDir,
		}
		if err := tsServer.Start(); err != nil {
			log.Error("tsnet start failed", "error", err)
			os.Exit(1)
		}
		defer tsServer.Close()

		lc, err := tsServer.LocalClient()
		if err != nil {
			log.Error("tsnet local client failed", "error", err)
			os.Exit(1)
		}
		srv.SetTailscale(lc)

		listener, err = tsServer.Listen("tcp", ":80")
		if err != nil {
			log.Error("tsnet listen failed", "error", err)
			os.Exit(1)
		}
		log.Info("tsnet server starting", "hostname", cfg.Tailscale.Hostname)
	} else {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		listener, err = net.Listen("tcp", addr)
		if err != nil {
			log.Error("listen failed", "addr", addr, "error", err)
			os.Exit(1)
		}
		log.Info("server starting", "addr", addr, "mode", "dev (no tailscale)")
	}

	httpSrv := &http.Server{Handler: srv, ReadHeaderTimeout: 10 * time.Second}

	go func() {
		if err := httpSrv.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Info("shutting down", "signal", sig)

	ctrl.StopRest()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", "error", err)
	}
	log.Info("server stopped")
}

// connectMirror migrates and connects the Postgres mirror. It returns nil
// when none is configured or it is unreachable; the app then runs local-only.
func connectMirror(ctx context.Context, cfg *config.Config, log *slog.Logger) *storage.DB {
	if !cfg.Database.Configured() {
		log.Info("no database configured, running local-only")
		return nil
	}
	dsn := cfg.Database.DSN()
	if err := storage.RunMigrations(dsn, "migrations"); err != nil {
		log.Warn("migration failed, running local-only", "error", err)
		return nil
	}
	log.Info("migrations applied")

	db, err := storage.New(ctx, dsn)
	if err != nil {
		log.Warn("database unreachable, running local-only", "error", err)
		return nil
	}
	log.Info("database connected")
	return db
}
