package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pathu11/fingerspell/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the converter over a JSON API",
	Long: `Start an HTTP server exposing the converter:

  POST /api/convert         {"word": "..."}
  POST /api/convert-number  {"number": "...", "composite": true}
  POST /api/batch-convert   {"words": ["...", "..."]}
  GET  /api/statistics
  GET  /videos/<file>       (when a videos directory is configured)

Example:
  fingerspell serve --addr :8080 --videos ./videos`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", ":8080", "listen address")
	viper.BindPFlag("addr", serveCmd.Flags().Lookup("addr"))
}

func runServe(cmd *cobra.Command, args []string) error {
	conv, err := newConverter()
	if err != nil {
		return err
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	srv := server.New(conv, viper.GetString("videos"), log)
	return srv.ListenAndServe(viper.GetString("addr"))
}
