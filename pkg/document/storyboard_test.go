package document_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gtgfx/gtgraphics/pkg/document"
)

func TestTransitionInWrapsAnimations(t *testing.T) {
	comp := document.NewComposition(800, 600)
	layer := comp.AddLayer("main")
	rect := layer.AddRectangle("Rect 1", document.Loc(0, 0), document.Dim(10, 10))

	sb := document.TransitionIn(
		document.NewBounce(rect, document.WithDuration(1), document.WithDelay(2)),
		document.NewFade(rect, document.WithDuration(0.5)),
	)

	assert.Equal(t,
		`<Storyboard Type="TransitionIn"><Storyboard.Animations>`+
			`<Bounce Object="Rect 1" Duration="1" Delay="2" />`+
			`<Fade Object="Rect 1" Duration="0.5" />`+
			`</Storyboard.Animations></Storyboard>`,
		render(t, sb))
}

func TestAnimationReferenceResolvesLate(t *testing.T) {
	comp := document.NewComposition(800, 600)
	layer := comp.AddLayer("main")
	rect := layer.AddRectangle("Rect 1", document.Loc(0, 0), document.Dim(10, 10))

	sb := document.TransitionOut(document.NewZoomFade(rect))
	rect.Rename("Badge")

	assert.Contains(t, render(t, sb), `<ZoomFade Object="Badge" />`)
}

func TestContinuousStoryboardSpelling(t *testing.T) {
	comp := document.NewComposition(800, 600)
	layer := comp.AddLayer("main")
	rect := layer.AddRectangle("Spinner", document.Loc(0, 0), document.Dim(10, 10))

	sb := document.Continuous(document.NewRotateContinuous(rect, document.WithSpeed(90)))

	assert.Contains(t, render(t, sb), `<Storyboard Type="Continious">`)
	assert.Contains(t, render(t, sb), `<RotateContinuous Object="Spinner" Speed="90" />`)
}

func TestDataChangeStoryboards(t *testing.T) {
	comp := document.NewComposition(800, 600)
	layer := comp.AddLayer("main")
	text := layer.AddTextBlock("Score", "0", document.Loc(0, 0), document.Dim(100, 40))

	in := document.DataChangeIn("score", document.NewFade(text))
	out := document.DataChangeOut("score", document.NewHidden(text))

	assert.Contains(t, render(t, in), `<Storyboard DataName="score" Type="DataChangeIn">`)
	assert.Contains(t, render(t, out), `<Storyboard DataName="score" Type="DataChangeOut">`)
}

func TestPageCounterNumbersSequentially(t *testing.T) {
	comp := document.NewComposition(800, 600)
	layer := comp.AddLayer("main")
	rect := layer.AddRectangle("Rect 1", document.Loc(0, 0), document.Dim(10, 10))

	var pages document.PageCounter
	first := pages.Page(document.NewHold(rect, document.WithDuration(3)))
	second := pages.Page(document.NewFade(rect))

	assert.Contains(t, render(t, first), `Type="Page 0"`)
	assert.Contains(t, render(t, second), `Type="Page 1"`)
}

func TestNewAnimationByKind(t *testing.T) {
	comp := document.NewComposition(800, 600)
	layer := comp.AddLayer("main")
	rect := layer.AddRectangle("Rect 1", document.Loc(0, 0), document.Dim(10, 10))

	anim, err := document.NewAnimation("Fly", rect,
		document.WithDirection(document.DirectionLeft),
		document.WithInterpolation(document.CubicEasingOut),
	)
	require.NoError(t, err)
	assert.Equal(t,
		`<Fly Object="Rect 1" Interpolation="CubicEasingOut" Direction="Left" />`,
		render(t, anim))

	_, err = document.NewAnimation("Teleport", rect)
	assert.ErrorContains(t, err, "unknown animation kind")
}

func TestRevealCenterAxisAndReverse(t *testing.T) {
	comp := document.NewComposition(800, 600)
	layer := comp.AddLayer("main")
	rect := layer.AddRectangle("Rect 1", document.Loc(0, 0), document.Dim(10, 10))

	anim := document.NewReveal(rect,
		document.WithDuration(1.5),
		document.WithReverse(),
		document.WithCenterAxis(document.CenterAxisY),
	)

	assert.Equal(t,
		`<Reveal Object="Rect 1" Duration="1.5" Reverse="True" CenterAxis="Y" />`,
		render(t, anim))
}

func TestStoryboardAttachesToComposition(t *testing.T) {
	comp := document.NewComposition(800, 600)
	layer := comp.AddLayer("main")
	rect := layer.AddRectangle("Rect 1", document.Loc(0, 0), document.Dim(10, 10))
	comp.AddStoryboard(document.TransitionIn(document.NewZoom(rect)))

	got := render(t, comp)
	assert.Contains(t, got, `</Layer><Storyboard Type="TransitionIn">`)
}
