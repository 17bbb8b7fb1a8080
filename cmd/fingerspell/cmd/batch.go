package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	batchJSON bool
	batchFile string
)

var batchCmd = &cobra.Command{
	Use:   "batch [words...]",
	Short: "Convert several words in one run",
	Long: `Convert several Sinhala words. Each word is converted independently;
flags or missing videos in one word never affect the others.

Words come from the arguments, or one per line from a file with --file
(use '-' for stdin).

Example:
  fingerspell batch අම්මා තාත්තා
  fingerspell batch --file words.txt`,
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)
	batchCmd.Flags().BoolVar(&batchJSON, "json", false, "emit the results as JSON")
	batchCmd.Flags().StringVar(&batchFile, "file", "", "read words from a file, one per line")
}

func runBatch(cmd *cobra.Command, args []string) error {
	words := args
	if batchFile != "" {
		fileWords, err := readWords(batchFile)
		if err != nil {
			return err
		}
		words = append(words, fileWords...)
	}
	if len(words) == 0 {
		return fmt.Errorf("no words given; pass arguments or --file")
	}

	conv, err := newConverter()
	if err != nil {
		return err
	}

	results := conv.ConvertBatch(words)
	if batchJSON {
		return printJSON(results)
	}
	for _, result := range results {
		printResult(result)
	}
	return nil
}

// readWords reads one word per line, skipping blank lines.
func readWords(path string) ([]string, error) {
	var r *os.File
	if path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening word list: %w", err)
		}
		defer f.Close()
		r = f
	}

	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading word list: %w", err)
	}
	return words, nil
}
