package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/good-yellow-bee/rollcall/internal/roster"
	"github.com/good-yellow-bee/rollcall/internal/upstream"
)

// activitiesCmd lists the activity roster
var activitiesCmd = &cobra.Command{
	Use:   "activities",
	Short: "List activities and their rosters",
	Long: `List all activities from the sign-up service, with schedule,
remaining spots, and enrolled participants.

Examples:
  # Table output
  rollcall activities

  # JSON output
  rollcall activities -o json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client := upstream.NewClient(serviceURL, 0)

		activities, err := client.List(context.Background())
		if err != nil {
			return fmt.Errorf("list activities: %w", err)
		}

		if output == "json" {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(activities)
		}

		if len(activities) == 0 {
			fmt.Println("No activities found.")
			return nil
		}

		cards := roster.BuildCards(activities, false)

		fmt.Printf("\n%-24s  %-28s  %-10s  %s\n",
			"ACTIVITY", "SCHEDULE", "SPOTS LEFT", "PARTICIPANTS")
		fmt.Println(strings.Repeat("-", 100))

		for _, card := range cards {
			fmt.Printf("%-24s  %-28s  %-10d  %d\n",
				card.Name,
				card.Schedule,
				card.SpotsLeft,
				len(card.Participants),
			)
			if verbose {
				for _, p := range card.Participants {
					fmt.Printf("    %s\n", p.Email)
				}
			}
		}
		fmt.Printf("\nTotal: %d activit(ies)\n", len(cards))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(activitiesCmd)
}
