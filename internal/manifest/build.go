package manifest

import (
	"fmt"

	gtgraphics "github.com/gtgfx/gtgraphics"
	"github.com/gtgfx/gtgraphics/pkg/color"
	"github.com/gtgfx/gtgraphics/pkg/document"
)

// objectSpec carries the attributes shared by every object kind.
type objectSpec struct {
	Kind   string  `mapstructure:"kind"`
	Name   string  `mapstructure:"name"`
	X      float64 `mapstructure:"x"`
	Y      float64 `mapstructure:"y"`
	Width  float64 `mapstructure:"width"`
	Height float64 `mapstructure:"height"`

	Fill            string   `mapstructure:"fill"`
	Stroke          string   `mapstructure:"stroke"`
	StrokeThickness *float64 `mapstructure:"stroke_thickness"`
	Opacity         *float64 `mapstructure:"opacity"`
	Visible         *bool    `mapstructure:"visible"`
	DataFlags       string   `mapstructure:"data_flags"`
}

type rectangleSpec struct {
	objectSpec `mapstructure:",squash"`
	Radius     *float64 `mapstructure:"radius"`
}

type textSpec struct {
	objectSpec    `mapstructure:",squash"`
	Text          string   `mapstructure:"text"`
	FontFamily    string   `mapstructure:"font_family"`
	FontSize      *float64 `mapstructure:"font_size"`
	FontWeight    string   `mapstructure:"font_weight"`
	TextAlign     string   `mapstructure:"text_align"`
	VerticalAlign string   `mapstructure:"vertical_align"`
	AutoSize      string   `mapstructure:"auto_size"`
	WordWrapping  string   `mapstructure:"word_wrapping"`
}

type imageSpec struct {
	objectSpec `mapstructure:",squash"`
	Source     string `mapstructure:"source"`
}

type qrCodeSpec struct {
	objectSpec `mapstructure:",squash"`
	Text       string `mapstructure:"text"`
}

type tickerSpec struct {
	objectSpec `mapstructure:",squash"`
	Direction  string   `mapstructure:"direction"`
	Speed      *float64 `mapstructure:"speed"`
	FontFamily string   `mapstructure:"font_family"`
	FontSize   *float64 `mapstructure:"font_size"`
}

// animationSpec describes one animation entry of a storyboard.
type animationSpec struct {
	Kind          string   `mapstructure:"kind"`
	Object        string   `mapstructure:"object"`
	Duration      *float64 `mapstructure:"duration"`
	Delay         *float64 `mapstructure:"delay"`
	Speed         *float64 `mapstructure:"speed"`
	Interpolation string   `mapstructure:"interpolation"`
	Direction     string   `mapstructure:"direction"`
	Reverse       bool     `mapstructure:"reverse"`
	CenterAxis    string   `mapstructure:"center_axis"`
}

// Build turns the scene into a project: layers and objects first, then
// storyboards, whose animations reference objects by manifest name.
func (s *Scene) Build(opts ...gtgraphics.Option) (*gtgraphics.Project, error) {
	if s.Output != "" {
		opts = append(opts, gtgraphics.WithFilename(s.Output))
	}
	proj := gtgraphics.New(s.Width, s.Height, opts...)

	objects := map[string]document.Entity{}
	for _, ls := range s.Layers {
		layer := proj.CreateLayer(ls.Name)
		if ls.Locked {
			layer.SetLocked(true)
		}
		for i, raw := range ls.Objects {
			if err := buildObject(layer, raw, objects); err != nil {
				return nil, fmt.Errorf("layer %q object %d: %w", ls.Name, i, err)
			}
		}
	}

	var pages document.PageCounter
	for i, sb := range s.Storyboards {
		built, err := buildStoryboard(sb, objects, &pages)
		if err != nil {
			return nil, fmt.Errorf("storyboard %d: %w", i, err)
		}
		proj.AddStoryboard(built)
	}
	return proj, nil
}

func buildObject(layer *document.Layer, raw map[string]any, objects map[string]document.Entity) error {
	kind, _ := raw["kind"].(string)
	name, _ := raw["name"].(string)
	if kind == "" {
		return fmt.Errorf("object needs a kind")
	}
	if name == "" {
		return fmt.Errorf("object needs a name")
	}
	if _, dup := objects[name]; dup {
		return fmt.Errorf("object name %q already used", name)
	}

	entity, err := placeObject(layer, kind, raw)
	if err != nil {
		return err
	}
	objects[name] = entity
	return nil
}

func placeObject(layer *document.Layer, kind string, raw map[string]any) (document.Entity, error) {
	switch kind {
	case "rectangle":
		var spec rectangleSpec
		opts, err := decodeObject(raw, &spec, &spec.objectSpec)
		if err != nil {
			return nil, err
		}
		if spec.Radius != nil {
			opts = append(opts, document.WithRadius(*spec.Radius))
		}
		loc, dim := spec.frame()
		return layer.AddRectangle(spec.Name, loc, dim, opts...), nil

	case "ellipse":
		var spec objectSpec
		opts, err := decodeObject(raw, &spec, &spec)
		if err != nil {
			return nil, err
		}
		loc, dim := spec.frame()
		return layer.AddEllipse(spec.Name, loc, dim, opts...), nil

	case "triangle":
		var spec objectSpec
		opts, err := decodeObject(raw, &spec, &spec)
		if err != nil {
			return nil, err
		}
		loc, dim := spec.frame()
		return layer.AddTriangle(spec.Name, loc, dim, opts...), nil

	case "right_triangle":
		var spec objectSpec
		opts, err := decodeObject(raw, &spec, &spec)
		if err != nil {
			return nil, err
		}
		loc, dim := spec.frame()
		return layer.AddRightTriangle(spec.Name, loc, dim, opts...), nil

	case "text":
		var spec textSpec
		opts, err := decodeObject(raw, &spec, &spec.objectSpec)
		if err != nil {
			return nil, err
		}
		if spec.Text == "" {
			return nil, fmt.Errorf("text needs text")
		}
		if spec.FontFamily != "" {
			opts = append(opts, document.WithFontFamily(spec.FontFamily))
		}
		if spec.FontSize != nil {
			opts = append(opts, document.WithFontSize(*spec.FontSize))
		}
		if spec.FontWeight != "" {
			opts = append(opts, document.WithFontWeight(spec.FontWeight))
		}
		if spec.TextAlign != "" {
			opts = append(opts, document.WithTextAlign(document.TextAlign(spec.TextAlign)))
		}
		if spec.VerticalAlign != "" {
			opts = append(opts, document.WithVerticalAlign(document.VerticalAlign(spec.VerticalAlign)))
		}
		if spec.AutoSize != "" {
			opts = append(opts, document.WithAutoSize(document.AutoSize(spec.AutoSize)))
		}
		if spec.WordWrapping != "" {
			opts = append(opts, document.WithWordWrapping(document.WordWrapping(spec.WordWrapping)))
		}
		loc, dim := spec.frame()
		return layer.AddTextBlock(spec.Name, spec.Text, loc, dim, opts...), nil

	case "qrcode":
		var spec qrCodeSpec
		opts, err := decodeObject(raw, &spec, &spec.objectSpec)
		if err != nil {
			return nil, err
		}
		if spec.Text == "" {
			return nil, fmt.Errorf("qrcode needs text")
		}
		loc, dim := spec.frame()
		return layer.AddQRCode(spec.Name, spec.Text, loc, dim, opts...), nil

	case "image":
		var spec imageSpec
		opts, err := decodeObject(raw, &spec, &spec.objectSpec)
		if err != nil {
			return nil, err
		}
		if spec.Source == "" {
			return nil, fmt.Errorf("image needs a source")
		}
		loc, dim := spec.frame()
		return layer.AddImage(spec.Name, spec.Source, loc, dim, opts...), nil

	case "ticker":
		var spec tickerSpec
		opts, err := decodeObject(raw, &spec, &spec.objectSpec)
		if err != nil {
			return nil, err
		}
		if spec.Speed != nil {
			opts = append(opts, document.WithScrollSpeed(*spec.Speed))
		}
		if spec.FontFamily != "" {
			opts = append(opts, document.WithFontFamily(spec.FontFamily))
		}
		if spec.FontSize != nil {
			opts = append(opts, document.WithFontSize(*spec.FontSize))
		}
		loc, dim := spec.frame()
		return layer.AddTicker(spec.Name, loc, dim, spec.Direction, opts...), nil

	default:
		return nil, fmt.Errorf("unknown object kind %q", kind)
	}
}

// decodeObject decodes raw into spec and translates the shared object fields
// into options.
func decodeObject(raw map[string]any, spec any, shared *objectSpec) ([]document.Option, error) {
	if err := decodeSpec(raw, spec); err != nil {
		return nil, err
	}
	return shared.options()
}

func (o *objectSpec) frame() (document.Location, document.Dimensions) {
	return document.Loc(o.X, o.Y), document.Dim(o.Width, o.Height)
}

// options translates the shared fields into object options.
func (o *objectSpec) options() ([]document.Option, error) {
	var opts []document.Option
	if o.Fill != "" {
		c, err := color.FromHex(o.Fill)
		if err != nil {
			return nil, fmt.Errorf("fill: %w", err)
		}
		opts = append(opts, document.WithFill(document.SolidBrush(c)))
	}
	if o.Stroke != "" {
		c, err := color.FromHex(o.Stroke)
		if err != nil {
			return nil, fmt.Errorf("stroke: %w", err)
		}
		opts = append(opts, document.WithStroke(document.SolidBrush(c)))
	}
	if o.StrokeThickness != nil {
		opts = append(opts, document.WithStrokeThickness(*o.StrokeThickness))
	}
	if o.Opacity != nil {
		opts = append(opts, document.WithOpacity(*o.Opacity))
	}
	if o.Visible != nil {
		opts = append(opts, document.WithVisible(*o.Visible))
	}
	if o.DataFlags != "" {
		opts = append(opts, document.WithDataFlags(document.DataFlags(o.DataFlags)))
	}
	return opts, nil
}

func buildStoryboard(sb StoryboardSpec, objects map[string]document.Entity, pages *document.PageCounter) (*document.Storyboard, error) {
	anims := make([]*document.Animation, 0, len(sb.Animations))
	for i, raw := range sb.Animations {
		var spec animationSpec
		if err := decodeSpec(raw, &spec); err != nil {
			return nil, fmt.Errorf("animation %d: %w", i, err)
		}
		target, ok := objects[spec.Object]
		if !ok {
			return nil, fmt.Errorf("animation %d: unknown object %q", i, spec.Object)
		}
		anim, err := document.NewAnimation(spec.Kind, target, spec.options()...)
		if err != nil {
			return nil, fmt.Errorf("animation %d: %w", i, err)
		}
		anims = append(anims, anim)
	}

	switch sb.Type {
	case "TransitionIn":
		return document.TransitionIn(anims...), nil
	case "TransitionOut":
		return document.TransitionOut(anims...), nil
	case "Continuous":
		return document.Continuous(anims...), nil
	case "DataChangeIn":
		return document.DataChangeIn(sb.DataName, anims...), nil
	case "DataChangeOut":
		return document.DataChangeOut(sb.DataName, anims...), nil
	case "Page":
		return pages.Page(anims...), nil
	default:
		return nil, fmt.Errorf("unknown storyboard type %q", sb.Type)
	}
}

func (a *animationSpec) options() []document.AnimOption {
	var opts []document.AnimOption
	if a.Duration != nil {
		opts = append(opts, document.WithDuration(*a.Duration))
	}
	if a.Delay != nil {
		opts = append(opts, document.WithDelay(*a.Delay))
	}
	if a.Speed != nil {
		opts = append(opts, document.WithSpeed(*a.Speed))
	}
	if a.Interpolation != "" {
		opts = append(opts, document.WithInterpolation(document.Interpolation(a.Interpolation)))
	}
	if a.Direction != "" {
		opts = append(opts, document.WithDirection(document.Direction(a.Direction)))
	}
	if a.Reverse {
		opts = append(opts, document.WithReverse())
	}
	if a.CenterAxis != "" {
		opts = append(opts, document.WithCenterAxis(document.CenterAxis(a.CenterAxis)))
	}
	return opts
}
