package cmd

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/showupapp/showup/internal/config"
	"github.com/showupapp/showup/internal/digest"
	"github.com/showupapp/showup/internal/digest/resend"
	"github.com/showupapp/showup/internal/logger"
	"github.com/showupapp/showup/internal/server"
	"github.com/showupapp/showup/internal/storage"
	"github.com/showupapp/showup/internal/storage/bolt"
	"github.com/showupapp/showup/internal/storage/memory"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("error loading config file: %v", err)
		}
		return startServer(cfg)
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
}

func openStore(cfg *config.Config) (storage.Store, error) {
	if cfg.StoreBackend == "memory" {
		logger.Warn("Using the in-memory store, data will not survive a restart")
		return memory.New(), nil
	}
	return bolt.Open(cfg.DBPath)
}

func startServer(cfg *config.Config) error {
	if cfg.LogFormat == "json" {
		logger.InitJSON(logger.ParseLevel(cfg.LogLevel))
	} else {
		logger.Init(logger.ParseLevel(cfg.LogLevel))
	}

	store, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("error opening store: %v", err)
	}
	defer store.Close()

	if cfg.DigestSchedule != "" {
		stop, err := startDigestScheduler(cfg, store)
		if err != nil {
			return err
		}
		defer stop()
	}

	s := server.New(store, cfg)
	logger.Info("Starting server", "addr", cfg.ListenAddr, "backend", cfg.StoreBackend,
		"auth_enabled", cfg.AuthEnabled)
	return http.ListenAndServe(cfg.ListenAddr, s.Router())
}

func startDigestScheduler(cfg *config.Config, store storage.Store) (func(), error) {
	if cfg.ResendAPIKey == "" {
		return nil, fmt.Errorf("digest_schedule is set but no resend API key is configured")
	}

	q := &digest.StoreQuerier{Store: store}
	n := &resend.ResendNotifier{APIKey: cfg.ResendAPIKey, From: cfg.DigestFrom}

	c := cron.New()
	_, err := c.AddFunc(cfg.DigestSchedule, func() {
		results, err := digest.Run(context.Background(), q, n, time.Now().UTC())
		if err != nil {
			logger.Error("Digest run failed", "error", err)
			return
		}
		logger.Info("Digest run complete", "users", len(results))
	})
	if err != nil {
		return nil, fmt.Errorf("invalid digest schedule %q: %v", cfg.DigestSchedule, err)
	}
	c.Start()
	logger.Info("Digest scheduler started", "schedule", cfg.DigestSchedule)

	return func() { <-c.Stop().Done() }, nil
}
