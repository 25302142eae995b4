package document

import (
	"github.com/gtgfx/gtgraphics/pkg/color"
	"github.com/gtgfx/gtgraphics/pkg/markup"
)

// entity is the shared handle every concrete document component embeds.
type entity struct {
	n *markup.Node
}

// Node exposes the underlying markup node.
func (e entity) Node() *markup.Node { return e.n }

// Entity is any document component backed by a markup node.
type Entity interface {
	Node() *markup.Node
}

// BrushType selects how a brush paints.
type BrushType string

const (
	BrushSolid          BrushType = "Solid"
	BrushLinearGradient BrushType = "LinearGradient"
	BrushTransparent    BrushType = "Transparent"
	BrushBitmap         BrushType = "Bitmap"
)

var gradientStopType = markup.MustType("GradientStop", nil,
	markup.Attr{Name: "color", Type: markup.KindAny},
	markup.Attr{Name: "position", Type: markup.KindFloat},
)

// GradientStop is one color stop inside a gradient brush.
type GradientStop struct {
	entity
}

// NewGradientStop places a color without an explicit position; the renderer
// distributes positionless stops evenly.
func NewGradientStop(c color.Color) *GradientStop {
	return &GradientStop{entity{markup.MustNode(gradientStopType, markup.Values{"color": c})}}
}

// NewGradientStopAt places a color at a position in [0, 1].
func NewGradientStopAt(c color.Color, position float64) *GradientStop {
	return &GradientStop{entity{markup.MustNode(gradientStopType, markup.Values{
		"color":    c,
		"position": position,
	})}}
}

var brushType = markup.MustType("Brush", nil,
	markup.Attr{Name: "color", Type: markup.KindAny},
	markup.Attr{Name: "type", Type: markup.KindString},
	markup.Attr{Name: "start_point", Type: markup.KindString},
	markup.Attr{Name: "end_point", Type: markup.KindString},
	markup.Attr{Name: "stops", Type: markup.KindNodeList},
	markup.Attr{Name: "bitmap", Type: markup.KindNode},
)

// Brush paints an object's fill or stroke.
type Brush struct {
	entity
}

// SolidBrush paints a single color.
func SolidBrush(c color.Color) *Brush {
	return &Brush{entity{markup.MustNode(brushType, markup.Values{"color": c})}}
}

// LinearGradientBrush blends the given stops along the brush axis.
func LinearGradientBrush(stops ...*GradientStop) *Brush {
	b := &Brush{entity{markup.MustNode(brushType, markup.Values{
		"type": string(BrushLinearGradient),
	})}}
	b.AddStops(stops...)
	return b
}

// AddStops appends gradient stops in call order.
func (b *Brush) AddStops(stops ...*GradientStop) *Brush {
	for _, s := range stops {
		b.n.AppendList("stops", s.n)
	}
	return b
}

// SetAxis sets the gradient start and end points ("x,y" in unit space).
func (b *Brush) SetAxis(start, end string) *Brush {
	b.n.Set("start_point", start)
	b.n.Set("end_point", end)
	return b
}

var bitmapType = markup.MustType("Bitmap", nil,
	markup.Attr{Name: "source", Type: markup.KindString, Required: true},
)

// Bitmap names an image resource inside the package.
type Bitmap struct {
	entity
}

func NewBitmap(source string) *Bitmap {
	return &Bitmap{entity{markup.MustNode(bitmapType, markup.Values{"source": source})}}
}

var boundingType = markup.MustType("Bounding", nil,
	markup.Attr{Name: "object", Type: markup.KindRef, Required: true},
	markup.Attr{Name: "padding", Type: markup.KindAny},
)

// Bounding sizes an object to track another object's extent plus padding.
type Bounding struct {
	entity
}

func NewBounding(target Entity, padding Padding) *Bounding {
	return &Bounding{entity{markup.MustNode(boundingType, markup.Values{
		"object":  markup.NewRef(target.Node()),
		"padding": padding,
	})}}
}

var cropType = markup.MustType("Crop", nil,
	markup.Attr{Name: "range", Type: markup.KindAny},
	markup.Attr{Name: "feather", Type: markup.KindAny},
)

// Crop clips an object to a range, optionally feathering the edges.
type Crop struct {
	entity
}

func NewCrop(rng Range) *Crop {
	return &Crop{entity{markup.MustNode(cropType, markup.Values{"range": rng})}}
}

// WithFeather softens the crop edges and returns the crop for chaining.
func (c *Crop) WithFeather(f Feather) *Crop {
	c.n.Set("feather", f)
	return c
}

// EffectType selects a visual effect.
type EffectType string

const (
	EffectSkew   EffectType = "Skew"
	EffectShadow EffectType = "Shadow"
	EffectFlipX  EffectType = "FlipX"
	EffectFlipY  EffectType = "FlipY"
)

var effectType = markup.MustType("Effect", nil,
	markup.Attr{Name: "type", Type: markup.KindString, Required: true},
	markup.Attr{Name: "angle", Type: markup.KindString},
	markup.Attr{Name: "blur_amount", Type: markup.KindFloat},
	markup.Attr{Name: "mode", Type: markup.KindString},
)

// Effect is a visual effect applied to an object.
type Effect struct {
	entity
}

// SkewEffect shears an object by the given per-axis angles.
func SkewEffect(angleX, angleY float64) *Effect {
	return &Effect{entity{markup.MustNode(effectType, markup.Values{
		"type":  string(EffectSkew),
		"angle": num(angleX) + "," + num(angleY),
	})}}
}

// ShadowEffect draws a blurred shadow; mode is typically "Outer".
func ShadowEffect(blurAmount float64, mode string) *Effect {
	return &Effect{entity{markup.MustNode(effectType, markup.Values{
		"type":        string(EffectShadow),
		"blur_amount": blurAmount,
		"mode":        mode,
	})}}
}

// FlipXEffect mirrors an object horizontally.
func FlipXEffect() *Effect {
	return &Effect{entity{markup.MustNode(effectType, markup.Values{"type": string(EffectFlipX)})}}
}

// FlipYEffect mirrors an object vertically.
func FlipYEffect() *Effect {
	return &Effect{entity{markup.MustNode(effectType, markup.Values{"type": string(EffectFlipY)})}}
}

var geometryType = markup.MustType("Geometry", nil,
	markup.Attr{Name: "type", Type: markup.KindString},
)

// Geometry overrides an object's base shape.
type Geometry struct {
	entity
}

func NewGeometry(kind string) *Geometry {
	return &Geometry{entity{markup.MustNode(geometryType, markup.Values{"type": kind})}}
}

var maskType = markup.MustType("Mask", nil,
	markup.Attr{Name: "object", Type: markup.KindRef, Required: true},
)

// Mask clips an object to another object's silhouette.
type Mask struct {
	entity
}

func NewMask(target Entity) *Mask {
	return &Mask{entity{markup.MustNode(maskType, markup.Values{
		"object": markup.NewRef(target.Node()),
	})}}
}

var transformType = markup.MustType("Transform", nil,
	markup.Attr{Name: "rotate", Type: markup.KindAny},
)

// Transform applies a spatial transform to an object.
type Transform struct {
	entity
}

func NewTransform(rotate Rotate) *Transform {
	return &Transform{entity{markup.MustNode(transformType, markup.Values{"rotate": rotate})}}
}
