package cmd

import (
	"fmt"

	"github.com/showupapp/showup/internal/apiclient"
	"github.com/showupapp/showup/internal/config"

	"github.com/spf13/cobra"
)

var listSummaries bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List resolutions",
	Long:  `The "list" command lists your resolutions, optionally with their streaks.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("error loading config file: %v", err)
		}

		client := apiclient.New(cfg.APIBaseURL, cfg.AuthToken)
		resolutions, err := client.ListResolutions(cmd.Context())
		if err != nil {
			return err
		}

		for _, res := range resolutions {
			if !listSummaries {
				cmd.Printf("%s  %-8s %s\n", res.ID, res.Cadence, res.Title)
				continue
			}
			summary, err := client.GetSummary(cmd.Context(), res.ID)
			if err != nil {
				return err
			}
			cmd.Printf("%s  %-8s %-30s streak=%d progress=%d%%\n",
				res.ID, res.Cadence, res.Title, summary.Streak, summary.ProgressPercent)
		}
		return nil
	},
}

func init() {
	listCmd.Flags().BoolVar(&listSummaries, "summaries", false, "include streak and progress per resolution")
	rootCmd.AddCommand(listCmd)
}
