package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pathu11/fingerspell/internal/rules"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config files",
	Long: `Create the config directory with the default rule table and a sample
video manifest. Existing files are left untouched.`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	configDir := getConfigDir()
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	rulesPath := filepath.Join(configDir, "rules.yaml")
	if _, err := os.Stat(rulesPath); os.IsNotExist(err) {
		if err := rules.SaveConfig(rulesPath, rules.Defaults()); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", rulesPath)
	}

	manifestPath := filepath.Join(configDir, "manifest.jsonl")
	if _, err := os.Stat(manifestPath); os.IsNotExist(err) {
		if err := os.WriteFile(manifestPath, []byte(sampleManifest), 0644); err != nil {
			return fmt.Errorf("writing sample manifest: %w", err)
		}
		fmt.Printf("wrote %s\n", manifestPath)
	}

	return nil
}

// sampleManifest seeds a manifest so the first run has something to resolve.
const sampleManifest = `{"sign": "අ", "video": "A001.MOV"}
{"sign": "ආ", "video": "A002.MOV"}
{"sign": "ක", "video": "K001.MOV"}
{"sign": "ක්", "video": "K002.MOV"}
{"sign": "0", "video": "N000.MOV"}
{"sign": "1", "video": "N001.MOV"}
`
