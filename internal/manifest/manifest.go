// Package manifest loads scene descriptions from YAML and builds projects
// from them. It is the declarative front door used by the CLI: a manifest
// names the canvas, its layers and objects, and the storyboards that animate
// them.
package manifest

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Scene is the root of a manifest file.
type Scene struct {
	Name   string  `yaml:"name"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Output string  `yaml:"output"`

	Layers      []LayerSpec      `yaml:"layers"`
	Storyboards []StoryboardSpec `yaml:"storyboards"`
}

// LayerSpec describes one layer and its objects.
type LayerSpec struct {
	Name    string           `yaml:"name"`
	Locked  bool             `yaml:"locked"`
	Objects []map[string]any `yaml:"objects"`
}

// StoryboardSpec describes one storyboard and its animations. Objects are
// referenced by name; targets must exist somewhere in the scene.
type StoryboardSpec struct {
	Type       string           `yaml:"type"`
	DataName   string           `yaml:"data_name"`
	Animations []map[string]any `yaml:"animations"`
}

// Load reads and parses a manifest file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	scene, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("manifest %q: %w", path, err)
	}
	return scene, nil
}

// Parse decodes manifest YAML. Object and animation entries stay as raw maps
// here; Build decodes them per kind so unknown keys are reported against the
// right kind.
func Parse(data []byte) (*Scene, error) {
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if s.Width <= 0 || s.Height <= 0 {
		return nil, fmt.Errorf("scene needs a positive width and height")
	}
	return &s, nil
}

// decodeSpec maps a raw manifest entry onto a typed spec, rejecting keys the
// kind does not declare.
func decodeSpec(m map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      out,
		ErrorUnused: true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(m)
}
