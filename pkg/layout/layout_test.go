package layout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gtgfx/gtgraphics/pkg/layout"
)

func TestPad(t *testing.T) {
	r := layout.New(0, 0, 1920, 1080).Pad(60)
	assert.Equal(t, &layout.Region{X: 60, Y: 60, Width: 1800, Height: 960}, r)
}

func TestPadNeverGoesNegative(t *testing.T) {
	r := layout.New(0, 0, 100, 40).Pad(30)
	assert.Equal(t, 40.0, r.Width)
	assert.Equal(t, 0.0, r.Height)
}

func TestTakeFromTop(t *testing.T) {
	r := layout.New(0, 0, 1920, 1080)
	strip := r.TakeFromTop(1000)

	assert.Equal(t, &layout.Region{X: 0, Y: 0, Width: 1920, Height: 1000}, strip)
	assert.Equal(t, &layout.Region{X: 0, Y: 1000, Width: 1920, Height: 80}, r)
}

func TestTakeFromBottom(t *testing.T) {
	r := layout.New(0, 0, 1920, 1080)
	strip := r.TakeFromBottom(80)

	assert.Equal(t, &layout.Region{X: 0, Y: 1000, Width: 1920, Height: 80}, strip)
	assert.Equal(t, 1000.0, r.Height)
}

func TestTakeFromSides(t *testing.T) {
	r := layout.New(0, 0, 1000, 500)
	left := r.TakeFromLeft(200)
	right := r.TakeFromRight(300)

	assert.Equal(t, &layout.Region{X: 0, Y: 0, Width: 200, Height: 500}, left)
	assert.Equal(t, &layout.Region{X: 700, Y: 0, Width: 300, Height: 500}, right)
	assert.Equal(t, &layout.Region{X: 200, Y: 0, Width: 500, Height: 500}, r)
}

func TestTakeClampsToAvailable(t *testing.T) {
	r := layout.New(0, 0, 100, 100)
	strip := r.TakeFromTop(500)

	assert.Equal(t, 100.0, strip.Height)
	assert.Equal(t, 0.0, r.Height)
}

func TestChaining(t *testing.T) {
	r := layout.New(0, 0, 1920, 1080)
	r.Pad(60)
	banner := r.TakeFromTop(100).Pad(16)

	assert.Equal(t, &layout.Region{X: 76, Y: 76, Width: 1768, Height: 68}, banner)
}
