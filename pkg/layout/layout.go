// Package layout carves screen space for scene objects through simple
// rectangle slicing: pad a region, take strips off its sides, and hand the
// resulting coordinates to object builders. No coupling to the document
// model beyond plain numbers.
package layout

// Region is a mutable rectangle in composition coordinates.
type Region struct {
	X, Y, Width, Height float64
}

// New returns a region covering the given rectangle.
func New(x, y, width, height float64) *Region {
	return &Region{X: x, Y: y, Width: width, Height: height}
}

// Pad shrinks the region by amount on every side and returns it for chaining.
func (r *Region) Pad(amount float64) *Region {
	return r.PadXY(amount, amount)
}

// PadXY shrinks the region by x on the left/right sides and y on the
// top/bottom sides, and returns it for chaining.
func (r *Region) PadXY(x, y float64) *Region {
	r.X += x
	r.Y += y
	r.Width = max(r.Width-2*x, 0)
	r.Height = max(r.Height-2*y, 0)
	return r
}

// TakeFromTop removes a strip of the given height from the top of the
// region and returns the strip. The receiver keeps the remainder.
func (r *Region) TakeFromTop(height float64) *Region {
	height = min(height, r.Height)
	strip := &Region{X: r.X, Y: r.Y, Width: r.Width, Height: height}
	r.Y += height
	r.Height -= height
	return strip
}

// TakeFromBottom removes a strip from the bottom of the region.
func (r *Region) TakeFromBottom(height float64) *Region {
	height = min(height, r.Height)
	r.Height -= height
	return &Region{X: r.X, Y: r.Y + r.Height, Width: r.Width, Height: height}
}

// TakeFromLeft removes a strip of the given width from the left side.
func (r *Region) TakeFromLeft(width float64) *Region {
	width = min(width, r.Width)
	strip := &Region{X: r.X, Y: r.Y, Width: width, Height: r.Height}
	r.X += width
	r.Width -= width
	return strip
}

// TakeFromRight removes a strip from the right side.
func (r *Region) TakeFromRight(width float64) *Region {
	width = min(width, r.Width)
	r.Width -= width
	return &Region{X: r.X + r.Width, Y: r.Y, Width: width, Height: r.Height}
}
