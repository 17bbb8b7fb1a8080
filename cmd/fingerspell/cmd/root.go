// Package cmd contains all CLI commands for the fingerspell tool.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pathu11/fingerspell/internal/convert"
	"github.com/pathu11/fingerspell/internal/rules"
	"github.com/pathu11/fingerspell/internal/tui"
	"github.com/pathu11/fingerspell/internal/videoindex"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "fingerspell",
	Short: "Sinhala fingerspelling converter",
	Long: `Fingerspell converts Sinhala text into sequences of fingerspelling
signs and resolves each sign against a sign-language video library.

The converter maps:
  - Consonant clusters (yansaya, rakaransaya) → one composite sign
  - Consonant + vowel modifier → one combined sign
  - Consonant + hal → one hal-form sign
  - Standalone vowels and digits → their own signs

Running 'fingerspell' without arguments launches the interactive TUI.`,
	RunE: runTUI,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config directory (default is $HOME/.config/fingerspell)")
	rootCmd.PersistentFlags().String("rules", "", "rule table YAML file (default is <config>/rules.yaml)")
	rootCmd.PersistentFlags().String("mapping", "", "sign-to-video mapping file (.jsonl, .csv or .db)")
	rootCmd.PersistentFlags().String("videos", "", "directory holding the video files")

	viper.BindPFlag("rules", rootCmd.PersistentFlags().Lookup("rules"))
	viper.BindPFlag("mapping", rootCmd.PersistentFlags().Lookup("mapping"))
	viper.BindPFlag("videos", rootCmd.PersistentFlags().Lookup("videos"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.Set("config_dir", cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error finding home directory:", err)
			os.Exit(1)
		}

		configDir := filepath.Join(home, ".config", "fingerspell")
		viper.Set("config_dir", configDir)
	}

	viper.SetEnvPrefix("FINGERSPELL")
	viper.AutomaticEnv()
}

// getConfigDir returns the configuration directory path.
func getConfigDir() string {
	return viper.GetString("config_dir")
}

// loadTable loads the rule table, falling back to the built-in defaults
// when no rules file exists.
func loadTable() (*rules.Table, error) {
	path := viper.GetString("rules")
	if path == "" {
		path = filepath.Join(getConfigDir(), "rules.yaml")
	}
	if _, err := os.Stat(path); err != nil {
		return rules.DefaultTable(), nil
	}
	table, err := rules.LoadTable(path)
	if err != nil {
		return nil, fmt.Errorf("loading rules from %s: %w", path, err)
	}
	return table, nil
}

// loadIndex loads the sign-to-video mapping. The format is picked by file
// extension. A missing mapping yields an empty index, not an error, so
// segmentation still works without a video library.
func loadIndex() (*videoindex.Index, error) {
	path := viper.GetString("mapping")
	if path == "" {
		candidates := []string{
			filepath.Join(getConfigDir(), "manifest.jsonl"),
			filepath.Join("data", "manifest.jsonl"),
		}
		for _, c := range candidates {
			if _, err := os.Stat(c); err == nil {
				path = c
				break
			}
		}
	}
	if path == "" {
		return videoindex.NewIndex(), nil
	}

	var (
		index *videoindex.Index
		err   error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite":
		index, err = videoindex.LoadSQLite(path)
	case ".csv":
		index, err = videoindex.LoadCSV(path)
	default:
		index, err = videoindex.LoadManifest(path)
	}
	if err != nil {
		return nil, fmt.Errorf("loading mapping from %s: %w", path, err)
	}
	return index, nil
}

// newConverter builds the full pipeline from the configured table and index.
func newConverter() (*convert.Converter, error) {
	table, err := loadTable()
	if err != nil {
		return nil, err
	}
	index, err := loadIndex()
	if err != nil {
		return nil, err
	}
	return convert.New(table, index), nil
}

// runTUI launches the interactive application.
func runTUI(cmd *cobra.Command, args []string) error {
	conv, err := newConverter()
	if err != nil {
		return err
	}
	return tui.Run(conv)
}
