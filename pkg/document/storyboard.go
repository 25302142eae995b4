package document

import (
	"fmt"

	"github.com/gtgfx/gtgraphics/pkg/markup"
)

// Interpolation selects an animation easing curve.
type Interpolation string

const (
	Linear           Interpolation = "Linear"
	CubicEasingIn    Interpolation = "CubicEasingIn"
	CubicEasingOut   Interpolation = "CubicEasingOut"
	CubicEasingInOut Interpolation = "CubicEasingInOut"
	BounceIn         Interpolation = "BounceIn"
	BounceOut        Interpolation = "BounceOut"
)

// Direction selects the movement direction of directional animations.
type Direction string

const (
	DirectionTop   Direction = "Top"
	DirectionDown  Direction = "Down"
	DirectionLeft  Direction = "Left"
	DirectionRight Direction = "Right"
)

// CenterAxis selects the axis a Reveal animation opens around.
type CenterAxis string

const (
	CenterAxisX CenterAxis = "X"
	CenterAxisY CenterAxis = "Y"
)

// animationType is the shared schema of every animation kind; concrete kinds
// differ only by tag.
var animationType = markup.MustType("Animation", nil,
	markup.Attr{Name: "object", Type: markup.KindRef, Required: true},
	markup.Attr{Name: "duration", Type: markup.KindFloat},
	markup.Attr{Name: "speed", Type: markup.KindFloat},
	markup.Attr{Name: "delay", Type: markup.KindFloat},
	markup.Attr{Name: "interpolation", Type: markup.KindString},
	markup.Attr{Name: "direction", Type: markup.KindString},
	markup.Attr{Name: "reverse", Type: markup.KindBool},
	markup.Attr{Name: "center_axis", Type: markup.KindString},
)

var animationKinds = map[string]*markup.Type{}

func animKind(tag string) *markup.Type {
	t := markup.MustType(tag, animationType)
	animationKinds[tag] = t
	return t
}

var (
	bounceType            = animKind("Bounce")
	expandType            = animKind("Expand")
	fadeType              = animKind("Fade")
	fillOffsetType        = animKind("FillOffset")
	flyType               = animKind("Fly")
	hiddenType            = animKind("Hidden")
	imageSequenceLoopType = animKind("ImageSequenceLoop")
	noneType              = animKind("None")
	revealType            = animKind("Reveal")
	rotateType            = animKind("Rotate")
	rotateContinuousType  = animKind("RotateContinuous")
	strokeOffsetType      = animKind("StrokeOffset")
	zoomType              = animKind("Zoom")
	zoomFadeType          = animKind("ZoomFade")
)

// Animation is one timed effect applied to a referenced object. The object
// reference resolves at serialization time, so renaming the target after
// wiring the animation is safe.
type Animation struct {
	entity
}

// AnimOption adjusts an animation at creation time.
type AnimOption func(n *markup.Node)

// WithDuration sets the animation length in seconds.
func WithDuration(seconds float64) AnimOption {
	return func(n *markup.Node) { n.Set("duration", seconds) }
}

// WithDelay postpones the animation start by seconds.
func WithDelay(seconds float64) AnimOption {
	return func(n *markup.Node) { n.Set("delay", seconds) }
}

// WithSpeed sets the rate of continuous animations.
func WithSpeed(v float64) AnimOption {
	return func(n *markup.Node) { n.Set("speed", v) }
}

// WithInterpolation sets the easing curve.
func WithInterpolation(i Interpolation) AnimOption {
	return func(n *markup.Node) { n.Set("interpolation", string(i)) }
}

// WithDirection sets the movement direction.
func WithDirection(d Direction) AnimOption {
	return func(n *markup.Node) { n.Set("direction", string(d)) }
}

// WithReverse plays the animation backwards.
func WithReverse() AnimOption {
	return func(n *markup.Node) { n.Set("reverse", true) }
}

// WithCenterAxis sets the axis a Reveal opens around.
func WithCenterAxis(a CenterAxis) AnimOption {
	return func(n *markup.Node) { n.Set("center_axis", string(a)) }
}

func newAnimation(t *markup.Type, target Entity, opts []AnimOption) *Animation {
	n := markup.MustNode(t, markup.Values{"object": markup.NewRef(target.Node())})
	for _, opt := range opts {
		opt(n)
	}
	return &Animation{entity{n}}
}

// NewAnimation creates an animation by kind tag (e.g. "Fade"). It fails on
// unknown kinds; the typed constructors below are the usual entry points.
func NewAnimation(kind string, target Entity, opts ...AnimOption) (*Animation, error) {
	t, ok := animationKinds[kind]
	if !ok {
		return nil, fmt.Errorf("unknown animation kind %q", kind)
	}
	return newAnimation(t, target, opts), nil
}

func NewBounce(target Entity, opts ...AnimOption) *Animation {
	return newAnimation(bounceType, target, opts)
}

func NewExpand(target Entity, opts ...AnimOption) *Animation {
	return newAnimation(expandType, target, opts)
}

func NewFade(target Entity, opts ...AnimOption) *Animation {
	return newAnimation(fadeType, target, opts)
}

func NewFillOffset(target Entity, opts ...AnimOption) *Animation {
	return newAnimation(fillOffsetType, target, opts)
}

func NewFly(target Entity, opts ...AnimOption) *Animation {
	return newAnimation(flyType, target, opts)
}

func NewHidden(target Entity, opts ...AnimOption) *Animation {
	return newAnimation(hiddenType, target, opts)
}

func NewImageSequenceLoop(target Entity, opts ...AnimOption) *Animation {
	return newAnimation(imageSequenceLoopType, target, opts)
}

// NewHold keeps the object static for the step ("None" on the wire).
func NewHold(target Entity, opts ...AnimOption) *Animation {
	return newAnimation(noneType, target, opts)
}

func NewReveal(target Entity, opts ...AnimOption) *Animation {
	return newAnimation(revealType, target, opts)
}

func NewRotate(target Entity, opts ...AnimOption) *Animation {
	return newAnimation(rotateType, target, opts)
}

func NewRotateContinuous(target Entity, opts ...AnimOption) *Animation {
	return newAnimation(rotateContinuousType, target, opts)
}

func NewStrokeOffset(target Entity, opts ...AnimOption) *Animation {
	return newAnimation(strokeOffsetType, target, opts)
}

func NewZoom(target Entity, opts ...AnimOption) *Animation {
	return newAnimation(zoomType, target, opts)
}

func NewZoomFade(target Entity, opts ...AnimOption) *Animation {
	return newAnimation(zoomFadeType, target, opts)
}

var storyboardType = markup.MustType("Storyboard", nil,
	markup.Attr{Name: "animations", Type: markup.KindNodeList},
	markup.Attr{Name: "data_name", Type: markup.KindString},
	markup.Attr{Name: "type", Type: markup.KindString, Required: true},
	markup.Attr{Name: "name", Type: markup.KindString},
)

// Storyboard groups animations under one trigger: a page step, a
// transition, or a data change.
type Storyboard struct {
	entity
}

func newStoryboard(kind string, values markup.Values, anims []*Animation) *Storyboard {
	if values == nil {
		values = markup.Values{}
	}
	values["type"] = kind
	sb := &Storyboard{entity{markup.MustNode(storyboardType, values)}}
	sb.Add(anims...)
	return sb
}

// Add appends animations in call order.
func (s *Storyboard) Add(anims ...*Animation) {
	for _, a := range anims {
		s.n.AppendList("animations", a.n)
	}
}

// TransitionIn plays when the composition enters.
func TransitionIn(anims ...*Animation) *Storyboard {
	return newStoryboard("TransitionIn", nil, anims)
}

// TransitionOut plays when the composition leaves.
func TransitionOut(anims ...*Animation) *Storyboard {
	return newStoryboard("TransitionOut", nil, anims)
}

// Continuous loops while the composition is on air.
// The wire value is "Continious"; the format expects this spelling.
func Continuous(anims ...*Animation) *Storyboard {
	return newStoryboard("Continious", nil, anims)
}

// DataChangeIn plays when the named data field receives a value.
func DataChangeIn(dataName string, anims ...*Animation) *Storyboard {
	return newStoryboard("DataChangeIn", markup.Values{"data_name": dataName}, anims)
}

// DataChangeOut plays when the named data field is cleared.
func DataChangeOut(dataName string, anims ...*Animation) *Storyboard {
	return newStoryboard("DataChangeOut", markup.Values{"data_name": dataName}, anims)
}

// PageCounter numbers page storyboards. The caller owns the counter; there
// is no package-global page state.
type PageCounter struct {
	next int
}

// Page creates the next "Page N" storyboard.
func (p *PageCounter) Page(anims ...*Animation) *Storyboard {
	sb := newStoryboard(fmt.Sprintf("Page %d", p.next), nil, anims)
	p.next++
	return sb
}
