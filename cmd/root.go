package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "showup",
	Short: "Track resolutions with the STAR method",
	Long: `
	ShowUp turns vague intentions into concrete goals: define a resolution with
	the STAR method (situation, task, action, result), check in daily or weekly,
	and watch your streaks, progress and focus score.`,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
