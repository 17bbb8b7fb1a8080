package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pathu11/fingerspell/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the sign inventory",
	Long: `Open the interactive browser on the sign inventory, showing which
signs have videos in the loaded mapping.`,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	conv, err := newConverter()
	if err != nil {
		return err
	}
	return tui.RunBrowse(conv)
}
