package cmd

import (
	"fmt"
	"time"

	"github.com/showupapp/showup/internal/config"
	"github.com/showupapp/showup/internal/digest"
	"github.com/showupapp/showup/internal/digest/resend"
	"github.com/showupapp/showup/internal/logger"

	"github.com/spf13/cobra"
)

var remindCmd = &cobra.Command{
	Use:   "remind",
	Short: "Send one reminder digest to every user with pending resolutions",
	PreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("error loading config file: %v", err)
		}
		if cfg.ResendAPIKey == "" {
			return fmt.Errorf("no resend API key configured (set SHOWUP_RESEND_API_KEY)")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(cfg)
		if err != nil {
			return fmt.Errorf("error opening store: %v", err)
		}
		defer store.Close()

		q := &digest.StoreQuerier{Store: store}
		n := &resend.ResendNotifier{APIKey: cfg.ResendAPIKey, From: cfg.DigestFrom}

		results, err := digest.Run(cmd.Context(), q, n, time.Now().UTC())
		if err != nil {
			return err
		}
		for _, r := range results {
			if r.Err != nil {
				logger.Error("Digest failed", "user_id", r.UserID, "error", r.Err)
			}
			cmd.Printf("%s: %s\n", r.UserID, r.Status)
		}
		return nil
	},
}

var cfg *config.Config

func init() {
	rootCmd.AddCommand(remindCmd)
}
