package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	gtgraphics "github.com/gtgfx/gtgraphics"
	"github.com/gtgfx/gtgraphics/internal/manifest"
)

var buildCmd = &cobra.Command{
	Use:   "build <manifest>",
	Short: "Build a graphics package from a scene manifest",
	Long:  `Reads a YAML scene manifest, validates the resulting document, and writes the packaged archive.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")
		resources, _ := cmd.Flags().GetStringArray("resource")
		return runBuild(cmd, args[0], output, resources)
	},
}

func init() {
	buildCmd.Flags().StringP("output", "o", "", "Output path (default: the manifest's output field)")
	buildCmd.Flags().StringArray("resource", nil, "File to package next to the document (repeatable)")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, manifestPath, output string, resources []string) error {
	logger := newLogger(cmd)

	scene, err := manifest.Load(manifestPath)
	if err != nil {
		return err
	}

	proj, err := scene.Build(gtgraphics.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("build scene %q: %w", scene.Name, err)
	}

	for _, path := range resources {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read resource: %w", err)
		}
		proj.AddResource(filepath.Base(path), data)
	}

	if output == "" {
		return proj.SaveDefault()
	}
	return proj.Save(output)
}
