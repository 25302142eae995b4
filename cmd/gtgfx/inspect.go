package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	gtgraphics "github.com/gtgfx/gtgraphics"
	"github.com/gtgfx/gtgraphics/internal/manifest"
	"github.com/gtgfx/gtgraphics/internal/presentation/tui"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <manifest>",
	Short: "Print the document a manifest would produce",
	Long:  `Builds the scene and writes document.xml to stdout without packaging, for diffing and debugging.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInspect(cmd, args[0])
	},
	Args: cobra.ExactArgs(1),
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, manifestPath string) error {
	scene, err := manifest.Load(manifestPath)
	if err != nil {
		return err
	}

	proj, err := scene.Build(gtgraphics.WithLogger(newLogger(cmd)))
	if err != nil {
		return fmt.Errorf("build scene %q: %w", scene.Name, err)
	}

	// Banner only when a human is watching; piped output stays clean XML.
	if term.IsTerminal(int(os.Stdout.Fd())) {
		tui.PrintBanner(gtgraphics.Version)
	}
	return proj.WriteDocument(os.Stdout)
}
