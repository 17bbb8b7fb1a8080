package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsJSON bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show video coverage of the sign inventory",
	Long: `Compare the rule table's base sign inventory against the loaded
video mapping and report which signs have no video yet.`,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "emit the statistics as JSON")
}

func runStats(cmd *cobra.Command, args []string) error {
	conv, err := newConverter()
	if err != nil {
		return err
	}

	stats := conv.Statistics()
	if statsJSON {
		return printJSON(stats)
	}

	fmt.Printf("Inventory signs: %d\n", stats.InventorySigns)
	fmt.Printf("Mapped videos:   %d\n", stats.MappedVideos)
	fmt.Printf("Covered:         %d\n", stats.Covered)
	if len(stats.MissingSigns) > 0 {
		fmt.Printf("Missing (%d):\n", len(stats.MissingSigns))
		for _, id := range stats.MissingSigns {
			fmt.Printf("  %s\n", id)
		}
	}
	return nil
}
