package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/Qadosh7/Fit-Flow/internal/config"
	"github.com/Qadosh7/Fit-Flow/internal/localstore"
	fitmcp "github.com/Qadosh7/Fit-Flow/internal/mcp"
	"github.com/Qadosh7/Fit-Flow/internal/models"
	"github.com/Qadosh7/Fit-Flow/internal/persist"
	"github.com/Qadosh7/Fit-Flow/internal/storage"
	"github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "", "path to config file (defaults and env when empty)")
	serverURL := flag.String("server", "", "FitFlow server URL; reads the local cache when empty")
	apiKey := flag.String("api-key", "", "API key for -server")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// stdout carries the protocol.
	log := cfg.Log.NewLogger(os.Stderr)

	identity := cfg.MCP.Identity
	if identity == "" {
		identity = models.GuestID
	}

	var ds fitmcp.DataSource
	if *serverURL != "" {
		key := *apiKey
		if key == "" {
			key = cfg.Auth.APIKey
		}
		ds = fitmcp.NewHTTPClient(*serverURL, key)
		log.Info("MCP remote mode", "server", *serverURL)
	} else {
		cache, err := localstore.Open(cfg.Cache.Path)
		if err != nil {
			log.Error("failed to open local cache", "path", cfg.Cache.Path, "error", err)
			os.Exit(1)
		}
		defer cache.Close()

		var mirror persist.Mirror
		if cfg.Database.Configured() {
			db, err := storage.New(context.Background(), cfg.Database.DSN())
			if err != nil {
				log.Warn("database unreachable, reading local cache only", "error", err)
			} else {
				defer db.Close()
				mirror = db
			}
		}
		ds = fitmcp.Local{Store: persist.New(fitmcp.ReadOnlyCache{Cache: cache}, mirror, cfg.Remote.Timeout, log)}
		log.Info("MCP local mode", "identity", identity, "cache", cfg.Cache.Path)
	}

	s := fitmcp.New(ds, identity, Version, log)
	if err := server.ServeStdio(s); err != nil {
		log.Error("mcp server error", "error", err)
		os.Exit(1)
	}
}
