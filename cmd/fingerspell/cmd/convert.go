package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pathu11/fingerspell/internal/sign"
)

var convertJSON bool

var convertCmd = &cobra.Command{
	Use:   "convert <word>",
	Short: "Convert a Sinhala word into fingerspelling signs",
	Long: `Convert a Sinhala word into its fingerspelling sign sequence and
resolve each sign against the video library.

Example:
  fingerspell convert අම්මා
  fingerspell convert --json ක්‍යාත්`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().BoolVar(&convertJSON, "json", false, "emit the result as JSON")
}

func runConvert(cmd *cobra.Command, args []string) error {
	conv, err := newConverter()
	if err != nil {
		return err
	}

	for _, word := range args {
		result := conv.ConvertWord(word)
		if convertJSON {
			if err := printJSON(result); err != nil {
				return err
			}
			continue
		}
		printResult(result)
	}
	return nil
}

// printResult writes one conversion in the human-readable layout shared by
// the convert, number and batch commands.
func printResult(result sign.ConversionResult) {
	fmt.Printf("Input: %s\n", result.Input)

	for i, res := range result.Resolutions {
		status := "no video"
		if res.Found {
			status = res.Video
		}
		fmt.Printf("  %2d. %s  (%s)  %s\n", i+1, res.Sign.ID, res.Sign.Kind, status)
	}

	for _, f := range result.Flags {
		fmt.Printf("  !  %q at position %d: %s\n", f.Rune, f.Pos, f.Reason)
	}

	sum := result.Summary
	fmt.Printf("  %d signs, %d videos found, %d missing\n\n",
		sum.Signs, sum.VideosFound, sum.VideosMissing)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	return nil
}
