package cmd

import (
	"github.com/showupapp/showup/pkg/versioninfo"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("showup %s (built %s)\n", versioninfo.Version, versioninfo.BuildDate)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
