package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gtgfx/gtgraphics/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "gtgfx",
	Short: "gtgfx builds broadcast graphics packages",
	Long:  `gtgfx turns YAML scene manifests into packaged graphics documents ready for playout.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")
}

func newLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelInfo
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = slog.LevelDebug
	}
	return logging.New(level)
}
