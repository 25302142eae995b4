package document

import "github.com/gtgfx/gtgraphics/pkg/markup"

var compositionType = markup.MustType("Composition", nil,
	markup.Attr{Name: "width", Type: markup.KindFloat, Required: true},
	markup.Attr{Name: "height", Type: markup.KindFloat, Required: true},
)

// Composition is the root of a scene document: a canvas holding layers and
// storyboards. Layers nest their own inner composition, so Composition also
// appears inside every layer element.
type Composition struct {
	entity
}

// NewComposition creates a canvas of the given size.
func NewComposition(width, height float64) *Composition {
	return &Composition{entity{markup.MustNode(compositionType, markup.Values{
		"width":  width,
		"height": height,
	})}}
}

// Width returns the canvas width.
func (c *Composition) Width() float64 {
	w, _ := c.n.Get("width").(float64)
	return w
}

// Height returns the canvas height.
func (c *Composition) Height() float64 {
	h, _ := c.n.Get("height").(float64)
	return h
}

// AddLayer appends a layer covering the whole canvas.
func (c *Composition) AddLayer(name string, opts ...Option) *Layer {
	return c.AddLayerAt(name, Loc(0, 0), Dim(c.Width(), c.Height()), opts...)
}

// AddLayerAt appends a layer with an explicit position and size.
func (c *Composition) AddLayerAt(name string, loc Location, dim Dimensions, opts ...Option) *Layer {
	inner := NewComposition(dim.Width, dim.Height)
	n := newObjectNode(layerType, name, loc, dim, markup.Values{
		"composition": inner.n,
	}, opts)
	c.n.Append(n)
	return &Layer{object: object{entity{n}}, inner: inner}
}

// AddStoryboard appends a storyboard after the layers.
func (c *Composition) AddStoryboard(sb *Storyboard) {
	c.n.Append(sb.n)
}

var layerType = markup.MustType("Layer", objectType,
	markup.Attr{Name: "locked", Type: markup.KindBool, Default: false},
	markup.Attr{Name: "composition", Type: markup.KindNode},
)

// Layer groups objects inside its own nested composition. Objects added to
// the layer become children of the inner composition, which serializes under
// the Layer.Composition wrapper.
type Layer struct {
	object
	inner *Composition
}

// Composition returns the layer's inner canvas.
func (l *Layer) Composition() *Composition {
	return l.inner
}

// SetLocked protects the layer from interactive edits.
func (l *Layer) SetLocked(locked bool) {
	l.n.Set("locked", locked)
}

func (l *Layer) place(n *markup.Node) {
	l.inner.n.Append(n)
}

// AddRectangle appends a rectangle to the layer.
func (l *Layer) AddRectangle(name string, loc Location, dim Dimensions, opts ...Option) *Rectangle {
	n := newObjectNode(rectangleType, name, loc, dim, nil, opts)
	l.place(n)
	return &Rectangle{content{object{entity{n}}}}
}

// AddEllipse appends an ellipse to the layer.
func (l *Layer) AddEllipse(name string, loc Location, dim Dimensions, opts ...Option) *Ellipse {
	n := newObjectNode(ellipseType, name, loc, dim, nil, opts)
	l.place(n)
	return &Ellipse{content{object{entity{n}}}}
}

// AddTriangle appends a triangle to the layer.
func (l *Layer) AddTriangle(name string, loc Location, dim Dimensions, opts ...Option) *Triangle {
	n := newObjectNode(triangleType, name, loc, dim, nil, opts)
	l.place(n)
	return &Triangle{content{object{entity{n}}}}
}

// AddRightTriangle appends a right triangle to the layer.
func (l *Layer) AddRightTriangle(name string, loc Location, dim Dimensions, opts ...Option) *RightTriangle {
	n := newObjectNode(rightTriangleType, name, loc, dim, nil, opts)
	l.place(n)
	return &RightTriangle{content{object{entity{n}}}}
}

// AddTextBlock appends a text block to the layer.
func (l *Layer) AddTextBlock(name, text string, loc Location, dim Dimensions, opts ...Option) *TextBlock {
	n := newObjectNode(textBlockType, name, loc, dim, markup.Values{"text": text}, opts)
	l.place(n)
	return &TextBlock{content{object{entity{n}}}}
}

// AddQRCode appends a QR code rendering text.
func (l *Layer) AddQRCode(name, text string, loc Location, dim Dimensions, opts ...Option) *QRCode {
	n := newObjectNode(qrCodeType, name, loc, dim, markup.Values{"text": text}, opts)
	l.place(n)
	return &QRCode{object{entity{n}}}
}

// AddImage appends an image backed by a bitmap resource.
func (l *Layer) AddImage(name, source string, loc Location, dim Dimensions, opts ...Option) *Image {
	n := newObjectNode(imageType, name, loc, dim, markup.Values{
		"bitmap": NewBitmap(source).n,
	}, opts)
	l.place(n)
	return &Image{content{object{entity{n}}}}
}

// AddTicker appends a scrolling text ticker.
func (l *Layer) AddTicker(name string, loc Location, dim Dimensions, direction string, opts ...Option) *Ticker {
	n := newObjectNode(tickerType, name, loc, dim, markup.Values{
		"direction": direction,
	}, opts)
	l.place(n)
	return &Ticker{content{object{entity{n}}}}
}
