package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/interview-prep/internal/config"
	"github.com/jonathan/interview-prep/internal/content"
	"github.com/jonathan/interview-prep/internal/logging"
	"github.com/jonathan/interview-prep/internal/rendering"
	"github.com/jonathan/interview-prep/internal/server"
	"github.com/jonathan/interview-prep/internal/server/ratelimit"
	"github.com/jonathan/interview-prep/internal/session"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	Long: `Start an HTTP server with the input view, the results view, and the JSON API.
Configuration is read from the environment (PORT, BASE_URL, LOG_MODE, SESSION_BACKEND,
SESSION_SECRET, SESSION_TTL, SESSION_COOKIE_SECURE, REDIS_ADDR, DATABASE_URL, RATE_LIMIT_*).`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	log, err := logging.New(cfg.LogMode)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer log.Sync()

	// Fail fast on a broken content table rather than on the first request.
	table, err := content.Default()
	if err != nil {
		return fmt.Errorf("failed to load interview content: %w", err)
	}

	renderer, err := rendering.NewRenderer(cfg.BaseURL)
	if err != nil {
		return fmt.Errorf("failed to load templates: %w", err)
	}

	limitCfg, err := ratelimit.LoadConfig()
	if err != nil {
		return err
	}

	store, err := session.Open(context.Background(), cfg, log)
	if err != nil {
		return fmt.Errorf("failed to open session store: %w", err)
	}
	log.Info("session store ready", "backend", cfg.SessionBackend)

	srv, err := server.New(cfg, server.Deps{
		Store:       store,
		Renderer:    renderer,
		Content:     table,
		RateLimiter: ratelimit.NewLimiter(limitCfg),
		Logger:      log,
	})
	if err != nil {
		_ = store.Close()
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
