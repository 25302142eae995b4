package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	gtgraphics "github.com/gtgfx/gtgraphics"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gtgfx",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gtgfx version %s\n", strings.TrimSpace(gtgraphics.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
