package document

import "strconv"

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func triplet(x, y, z float64) string {
	return num(x) + "," + num(y) + "," + num(z)
}

func quad(top, right, bottom, left float64) string {
	return num(top) + "," + num(right) + "," + num(bottom) + "," + num(left)
}

// Location is an object's position in composition space, rendered "x,y,z".
type Location struct {
	X, Y, Z float64
}

// Loc is a two-dimensional Location with z = 0.
func Loc(x, y float64) Location {
	return Location{X: x, Y: y}
}

func (l Location) String() string {
	return triplet(l.X, l.Y, l.Z)
}

// Dimensions is an object's size, rendered "width,height,depth".
type Dimensions struct {
	Width, Height, Depth float64
}

// Dim is a two-dimensional Dimensions with depth = 0.
func Dim(width, height float64) Dimensions {
	return Dimensions{Width: width, Height: height}
}

func (d Dimensions) String() string {
	return triplet(d.Width, d.Height, d.Depth)
}

// Rotate holds per-axis rotation angles in degrees, rendered "x,y,z".
type Rotate struct {
	X, Y, Z float64
}

func (r Rotate) String() string {
	return triplet(r.X, r.Y, r.Z)
}

// Padding is per-side inner spacing, rendered "top,right,bottom,left".
type Padding struct {
	Top, Right, Bottom, Left float64
}

// Pad applies the same padding to all four sides.
func Pad(all float64) Padding {
	return Padding{Top: all, Right: all, Bottom: all, Left: all}
}

// PadXY pads the top/bottom sides with y and the left/right sides with x.
func PadXY(x, y float64) Padding {
	return Padding{Top: y, Right: x, Bottom: y, Left: x}
}

func (p Padding) String() string {
	return quad(p.Top, p.Right, p.Bottom, p.Left)
}

// Margin is per-side outer spacing, rendered like Padding.
type Margin struct {
	Top, Right, Bottom, Left float64
}

func (m Margin) String() string {
	return quad(m.Top, m.Right, m.Bottom, m.Left)
}

// Feather softens a crop edge per side.
type Feather struct {
	Top, Right, Bottom, Left float64
}

func (f Feather) String() string {
	return quad(f.Top, f.Right, f.Bottom, f.Left)
}

// Range delimits a crop area per side.
type Range struct {
	Top, Right, Bottom, Left float64
}

func (r Range) String() string {
	return quad(r.Top, r.Right, r.Bottom, r.Left)
}
