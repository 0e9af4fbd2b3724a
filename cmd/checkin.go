package cmd

import (
	"fmt"
	"strings"

	"github.com/showupapp/showup/internal/apiclient"
	"github.com/showupapp/showup/internal/config"

	"github.com/spf13/cobra"
)

var (
	checkinDate   string
	checkinStatus string
)

var checkinCmd = &cobra.Command{
	Use:   "checkin <resolution-id>",
	Short: "Record a check-in for a resolution",
	Long: `The "checkin" command records DONE or MISSED for the current period of a
resolution. Checking in twice for the same period overwrites the earlier
status.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("error loading config file: %v", err)
		}

		client := apiclient.New(cfg.APIBaseURL, cfg.AuthToken)
		ci, err := client.CheckIn(cmd.Context(), args[0], checkinDate, strings.ToUpper(checkinStatus))
		if err != nil {
			return err
		}
		cmd.Printf("Recorded %s for period starting %s\n", ci.Status, ci.Date.Format("2006-01-02"))
		return nil
	},
}

func init() {
	checkinCmd.Flags().StringVar(&checkinDate, "date", "", "ISO-8601 timestamp to check in for (default now)")
	checkinCmd.Flags().StringVar(&checkinStatus, "status", "DONE", "DONE or MISSED")
	rootCmd.AddCommand(checkinCmd)
}
