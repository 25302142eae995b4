package document

import "github.com/gtgfx/gtgraphics/pkg/markup"

// DataFlags controls an object's data-binding visibility.
type DataFlags string

const (
	DataFlagsHidden      DataFlags = "Hidden"
	DataFlagsShowVisible DataFlags = "ShowVisible"
	DataFlagsNone        DataFlags = "None"
)

// TextAlign is horizontal text alignment.
type TextAlign string

const (
	AlignLeft   TextAlign = "Left"
	AlignCenter TextAlign = "Center"
	AlignRight  TextAlign = "Right"
)

// VerticalAlign is vertical text alignment.
type VerticalAlign string

const (
	AlignTop    VerticalAlign = "Top"
	AlignMiddle VerticalAlign = "Center"
	AlignBottom VerticalAlign = "Bottom"
)

// WordWrapping controls text line breaking.
type WordWrapping string

const (
	NoWrap WordWrapping = "NoWrap"
	Wrap   WordWrapping = "Wrap"
)

// AutoSize lets a text block grow to fit its content.
type AutoSize string

const (
	AutoSizeFixed          AutoSize = "Fixed"
	AutoSizeWidth          AutoSize = "Width"
	AutoSizeHeight         AutoSize = "Height"
	AutoSizeWidthAndHeight AutoSize = "WidthAndHeight"
	AutoSizeShrink         AutoSize = "Shrink"
)

// Type hierarchy. Every named object inherits name; every placeable object
// adds location/dimensions/data_flags; content objects add paint and
// geometry attributes. The merge keeps inherited attributes leading, so
// Name/Location/Dimensions always emit first.
var (
	namedType = markup.MustType("Named", nil,
		markup.Attr{Name: "name", Type: markup.KindString, Required: true},
	)
	objectType = markup.MustType("Object", namedType,
		markup.Attr{Name: "location", Type: markup.KindAny, Required: true},
		markup.Attr{Name: "dimensions", Type: markup.KindAny, Required: true},
		markup.Attr{Name: "data_flags", Type: markup.KindString},
	)
	contentType = markup.MustType("Content", objectType,
		markup.Attr{Name: "opacity", Type: markup.KindFloat},
		markup.Attr{Name: "visible", Type: markup.KindBool},
		markup.Attr{Name: "fill", Type: markup.KindNode},
		markup.Attr{Name: "stroke", Type: markup.KindNode},
		markup.Attr{Name: "stroke_thickness", Type: markup.KindFloat},
		markup.Attr{Name: "transform", Type: markup.KindNode},
		markup.Attr{Name: "crop", Type: markup.KindNode},
		markup.Attr{Name: "mask", Type: markup.KindNode},
		markup.Attr{Name: "geometry", Type: markup.KindNode},
		markup.Attr{Name: "bounding", Type: markup.KindNode},
		markup.Attr{Name: "effects", Type: markup.KindNodeList},
	)

	rectangleType = markup.MustType("Rectangle", contentType,
		markup.Attr{Name: "radius", Type: markup.KindFloat},
		markup.Attr{Name: "style", Type: markup.KindString},
	)
	ellipseType       = markup.MustType("Ellipse", contentType)
	triangleType      = markup.MustType("Triangle", contentType)
	rightTriangleType = markup.MustType("RightTriangle", contentType)
	textBlockType     = markup.MustType("TextBlock", contentType,
		markup.Attr{Name: "text", Type: markup.KindString, Required: true},
		markup.Attr{Name: "font_family", Type: markup.KindString},
		markup.Attr{Name: "font_size", Type: markup.KindFloat},
		markup.Attr{Name: "font_weight", Type: markup.KindString},
		markup.Attr{Name: "text_align", Type: markup.KindString},
		markup.Attr{Name: "vertical_align", Type: markup.KindString},
		markup.Attr{Name: "text_word_wrapping", Type: markup.KindString},
		markup.Attr{Name: "ignore_overhang", Type: markup.KindBool},
		markup.Attr{Name: "line_spacing", Type: markup.KindFloat},
		markup.Attr{Name: "auto_size", Type: markup.KindString},
		markup.Attr{Name: "text_decorations", Type: markup.KindNodeList},
	)
	qrCodeType = markup.MustType("QRCode", objectType,
		markup.Attr{Name: "text", Type: markup.KindString, Required: true},
	)
	imageType = markup.MustType("Image", contentType,
		markup.Attr{Name: "bitmap", Type: markup.KindNode},
		markup.Attr{Name: "size_mode", Type: markup.KindString},
	)
	tickerType = markup.MustType("Ticker", contentType,
		markup.Attr{Name: "direction", Type: markup.KindString},
		markup.Attr{Name: "speed", Type: markup.KindFloat},
		markup.Attr{Name: "template", Type: markup.KindNode},
		markup.Attr{Name: "font_family", Type: markup.KindString},
		markup.Attr{Name: "font_size", Type: markup.KindFloat},
		markup.Attr{Name: "font_weight", Type: markup.KindString},
		markup.Attr{Name: "text_align", Type: markup.KindString},
		markup.Attr{Name: "vertical_align", Type: markup.KindString},
		markup.Attr{Name: "text_word_wrapping", Type: markup.KindString},
	)
)

// object is the embedded base for named, placeable scene objects.
type object struct {
	entity
}

// Name returns the object's current name.
func (o object) Name() string {
	name, _ := o.n.Get("name").(string)
	return name
}

// Rename changes the object's name. References held by animations, masks,
// and boundings resolve at serialization time and pick the new name up.
func (o *object) Rename(name string) {
	o.n.Set("name", name)
}

// SetDataFlags overrides the object's data-binding visibility.
func (o *object) SetDataFlags(f DataFlags) {
	o.n.Set("data_flags", string(f))
}

// content is the embedded base for paintable objects.
type content struct {
	object
}

// SetFill paints the object's interior.
func (c *content) SetFill(b *Brush) {
	c.n.Set("fill", b.n)
}

// SetStroke paints the object's outline.
func (c *content) SetStroke(b *Brush) {
	c.n.Set("stroke", b.n)
}

// SetBounding sizes the object to track target's extent plus padding.
func (c *content) SetBounding(target Entity, padding Padding) {
	c.n.Set("bounding", NewBounding(target, padding).n)
}

// AddEffects appends visual effects in call order.
func (c *content) AddEffects(effects ...*Effect) {
	for _, e := range effects {
		c.n.AppendList("effects", e.n)
	}
}

// Rectangle is a filled rectangle, optionally rounded via WithRadius.
type Rectangle struct {
	content
}

// Ellipse is a filled ellipse inscribed in its dimensions.
type Ellipse struct {
	content
}

// Triangle is an isoceles triangle pointing up.
type Triangle struct {
	content
}

// RightTriangle is a right triangle with the square corner bottom-left.
type RightTriangle struct {
	content
}

// TextBlock renders styled text.
type TextBlock struct {
	content
}

// SetText replaces the displayed text.
func (t *TextBlock) SetText(text string) {
	t.n.Set("text", text)
}

// QRCode renders its text as a QR code.
type QRCode struct {
	object
}

// Image places a bitmap resource.
type Image struct {
	content
}

// Ticker scrolls templated text across its area.
type Ticker struct {
	content
}

// Option adjusts an object at creation time.
type Option func(n *markup.Node)

// WithDataFlags sets the object's data-binding visibility.
func WithDataFlags(f DataFlags) Option {
	return func(n *markup.Node) { n.Set("data_flags", string(f)) }
}

// WithOpacity sets opacity in [0, 1].
func WithOpacity(v float64) Option {
	return func(n *markup.Node) { n.Set("opacity", v) }
}

// WithVisible sets initial visibility.
func WithVisible(v bool) Option {
	return func(n *markup.Node) { n.Set("visible", v) }
}

// WithFill paints the object's interior.
func WithFill(b *Brush) Option {
	return func(n *markup.Node) { n.Set("fill", b.n) }
}

// WithStroke paints the object's outline.
func WithStroke(b *Brush) Option {
	return func(n *markup.Node) { n.Set("stroke", b.n) }
}

// WithStrokeThickness sets the outline width.
func WithStrokeThickness(v float64) Option {
	return func(n *markup.Node) { n.Set("stroke_thickness", v) }
}

// WithTransform applies a spatial transform.
func WithTransform(t *Transform) Option {
	return func(n *markup.Node) { n.Set("transform", t.n) }
}

// WithCrop clips the object.
func WithCrop(c *Crop) Option {
	return func(n *markup.Node) { n.Set("crop", c.n) }
}

// WithMask clips the object to target's silhouette.
func WithMask(target Entity) Option {
	return func(n *markup.Node) { n.Set("mask", NewMask(target).n) }
}

// WithGeometry overrides the object's base shape.
func WithGeometry(g *Geometry) Option {
	return func(n *markup.Node) { n.Set("geometry", g.n) }
}

// WithBounding sizes the object to track target's extent plus padding.
func WithBounding(target Entity, padding Padding) Option {
	return func(n *markup.Node) { n.Set("bounding", NewBounding(target, padding).n) }
}

// WithEffects appends visual effects.
func WithEffects(effects ...*Effect) Option {
	return func(n *markup.Node) {
		for _, e := range effects {
			n.AppendList("effects", e.n)
		}
	}
}

// WithRadius rounds a rectangle's corners.
func WithRadius(v float64) Option {
	return func(n *markup.Node) { n.Set("radius", v) }
}

// WithFont sets the text font family and size.
func WithFont(family string, size float64) Option {
	return func(n *markup.Node) {
		n.Set("font_family", family)
		n.Set("font_size", size)
	}
}

// WithFontFamily sets the font family alone.
func WithFontFamily(family string) Option {
	return func(n *markup.Node) { n.Set("font_family", family) }
}

// WithFontSize sets the font size alone.
func WithFontSize(size float64) Option {
	return func(n *markup.Node) { n.Set("font_size", size) }
}

// WithFontWeight sets the font weight (e.g. "Bold").
func WithFontWeight(weight string) Option {
	return func(n *markup.Node) { n.Set("font_weight", weight) }
}

// WithTextAlign sets horizontal text alignment.
func WithTextAlign(a TextAlign) Option {
	return func(n *markup.Node) { n.Set("text_align", string(a)) }
}

// WithVerticalAlign sets vertical text alignment.
func WithVerticalAlign(a VerticalAlign) Option {
	return func(n *markup.Node) { n.Set("vertical_align", string(a)) }
}

// WithWordWrapping sets line breaking behavior.
func WithWordWrapping(w WordWrapping) Option {
	return func(n *markup.Node) { n.Set("text_word_wrapping", string(w)) }
}

// WithLineSpacing sets extra spacing between lines.
func WithLineSpacing(v float64) Option {
	return func(n *markup.Node) { n.Set("line_spacing", v) }
}

// WithAutoSize lets a text block grow to fit its content.
func WithAutoSize(a AutoSize) Option {
	return func(n *markup.Node) { n.Set("auto_size", string(a)) }
}

// WithIgnoreOverhang lets glyphs overhang the text block bounds.
func WithIgnoreOverhang(v bool) Option {
	return func(n *markup.Node) { n.Set("ignore_overhang", v) }
}

// WithScrollSpeed sets a ticker's scroll rate.
func WithScrollSpeed(v float64) Option {
	return func(n *markup.Node) { n.Set("speed", v) }
}

// WithLocked protects a layer from interactive edits.
func WithLocked() Option {
	return func(n *markup.Node) { n.Set("locked", true) }
}

// newObjectNode builds a node of type t with the common object attributes
// and applies the options.
func newObjectNode(t *markup.Type, name string, loc Location, dim Dimensions, extra markup.Values, opts []Option) *markup.Node {
	values := markup.Values{
		"name":       name,
		"location":   loc,
		"dimensions": dim,
	}
	for k, v := range extra {
		values[k] = v
	}
	n := markup.MustNode(t, values)
	for _, opt := range opts {
		opt(n)
	}
	return n
}
