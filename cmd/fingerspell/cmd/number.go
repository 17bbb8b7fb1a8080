package cmd

import (
	"github.com/spf13/cobra"
)

var (
	numberJSON      bool
	numberComposite bool
)

var numberCmd = &cobra.Command{
	Use:   "number <digits>",
	Short: "Convert a number into fingerspelling signs",
	Long: `Convert a number into fingerspelling signs, one sign per digit.
Both ASCII and Sinhala digits are accepted.

With --composite, the number is broken into the largest components that
have dedicated sign videos (lakhs, thousands, hundreds, tens), falling
back to digit signs where no component video exists.

Example:
  fingerspell number 2024
  fingerspell number --composite 125000
  fingerspell number ෧෨෩`,
	Args: cobra.ExactArgs(1),
	RunE: runNumber,
}

func init() {
	rootCmd.AddCommand(numberCmd)
	numberCmd.Flags().BoolVar(&numberJSON, "json", false, "emit the result as JSON")
	numberCmd.Flags().BoolVar(&numberComposite, "composite", false, "use composite number signs where videos exist")
}

func runNumber(cmd *cobra.Command, args []string) error {
	conv, err := newConverter()
	if err != nil {
		return err
	}

	result := conv.ConvertNumber(args[0])
	if numberComposite {
		result = conv.ConvertNumberComposite(args[0])
	}

	if numberJSON {
		return printJSON(result)
	}
	printResult(result)
	return nil
}
