package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/good-yellow-bee/rollcall/pkg/config"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("rollcall %s\n", config.Version)
		fmt.Printf("  commit: %s\n", config.Commit)
		fmt.Printf("  built:  %s\n", config.BuildTime)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
