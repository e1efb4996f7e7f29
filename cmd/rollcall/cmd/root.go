// Package cmd contains the CLI commands for rollcall.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Used for flags
	verbose    bool
	output     string
	serviceURL string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "rollcall",
	Short: "Rollcall - school activity sign-up client",
	Long: `Rollcall is a client and web gateway for the Mergington High School
activity sign-up service. It renders the activity roster, manages
teacher sessions, and performs student signup and unregister
operations against the service.

Examples:
  # Run the activity page server
  rollcall serve --config rollcall.yaml

  # List activities from the command line
  rollcall activities --service http://localhost:8000

  # Sign a student up for an activity
  rollcall signup "Chess Club" daniel@mergington.edu --username ms.wilson`,
	// Run when no subcommand is specified
	Run: func(cmd *cobra.Command, args []string) {
		// Show help by default
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "table", "output format (table, json)")
	rootCmd.PersistentFlags().StringVarP(&serviceURL, "service", "s", "http://localhost:8000", "activity service base URL")
}

// PrintVerbose prints a message only if verbose mode is enabled.
func PrintVerbose(format string, args ...interface{}) {
	if verbose {
		fmt.Printf(format+"\n", args...)
	}
}

// PrintError prints an error message and exits if fatal is true.
func PrintError(msg string, fatal bool) {
	fmt.Fprintln(os.Stderr, "Error:", msg)
	if fatal {
		os.Exit(1)
	}
}
