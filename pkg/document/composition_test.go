package document_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gtgfx/gtgraphics/pkg/color"
	"github.com/gtgfx/gtgraphics/pkg/document"
	"github.com/gtgfx/gtgraphics/pkg/markup"
	"github.com/gtgfx/gtgraphics/pkg/markup/xmlenc"
)

func render(t *testing.T, e document.Entity) string {
	t.Helper()
	el, err := markup.Serialize(e.Node())
	require.NoError(t, err)
	s, err := xmlenc.String(el)
	require.NoError(t, err)
	return s
}

func TestLayerNestsInnerComposition(t *testing.T) {
	comp := document.NewComposition(1920, 1080)
	layer := comp.AddLayer("Layer one")
	layer.AddRectangle("Rect 1", document.Loc(150, 150), document.Dim(100, 100))
	layer.AddEllipse("Ellipse 1", document.Loc(100, 100), document.Dim(100, 100))

	assert.Equal(t,
		`<Composition Width="1920" Height="1080">`+
			`<Layer Name="Layer one" Location="0,0,0" Dimensions="1920,1080,0" Locked="False">`+
			`<Layer.Composition><Composition Width="1920" Height="1080">`+
			`<Rectangle Name="Rect 1" Location="150,150,0" Dimensions="100,100,0" />`+
			`<Ellipse Name="Ellipse 1" Location="100,100,0" Dimensions="100,100,0" />`+
			`</Composition></Layer.Composition></Layer></Composition>`,
		render(t, comp))
}

func TestRectangleFillAndStrokeWrapping(t *testing.T) {
	comp := document.NewComposition(800, 600)
	layer := comp.AddLayer("bg")
	rect := layer.AddRectangle("Rect 1", document.Loc(0, 0), document.Dim(80, 60),
		document.WithStroke(document.SolidBrush(color.Black)),
	)
	rect.SetFill(document.SolidBrush(color.Red))

	got := render(t, rect)
	assert.Equal(t,
		`<Rectangle Name="Rect 1" Location="0,0,0" Dimensions="80,60,0">`+
			`<Rectangle.Fill><Brush Color="#FFFF0000" /></Rectangle.Fill>`+
			`<Rectangle.Stroke><Brush Color="#FF000000" /></Rectangle.Stroke>`+
			`</Rectangle>`,
		got)
}

func TestBoundingTracksTargetRename(t *testing.T) {
	comp := document.NewComposition(800, 600)
	layer := comp.AddLayer("main")
	text := layer.AddTextBlock("Text 1", "HERE WE ARE", document.Loc(60, 60), document.Dim(600, 100))
	rect := layer.AddRectangle("Rect 1", document.Loc(40, 40), document.Dim(640, 140))
	rect.SetBounding(text, document.Pad(15))

	text.Rename("Headline")

	got := render(t, rect)
	assert.Contains(t, got,
		`<Rectangle.Bounding><Bounding Object="Headline" Padding="15,15,15,15" /></Rectangle.Bounding>`)
}

func TestTextBlockAttributes(t *testing.T) {
	comp := document.NewComposition(800, 600)
	layer := comp.AddLayer("main")
	text := layer.AddTextBlock("Text 1", "HERE WE ARE", document.Loc(60, 60), document.Dim(600, 100),
		document.WithFont("Century Gothic", 90),
		document.WithFontWeight("Bold"),
		document.WithAutoSize(document.AutoSizeWidthAndHeight),
		document.WithDataFlags(document.DataFlagsShowVisible),
	)

	got := render(t, text)
	assert.Equal(t,
		`<TextBlock Name="Text 1" Location="60,60,0" Dimensions="600,100,0" DataFlags="ShowVisible" `+
			`Text="HERE WE ARE" FontFamily="Century Gothic" FontSize="90" FontWeight="Bold" `+
			`AutoSize="WidthAndHeight" />`,
		got)
}

func TestQRCodeCarriesOnlyObjectAttributes(t *testing.T) {
	comp := document.NewComposition(800, 600)
	layer := comp.AddLayer("main")
	qr := layer.AddQRCode("QR 1", "https://example.com", document.Loc(10, 10), document.Dim(120, 120))

	assert.Equal(t,
		`<QRCode Name="QR 1" Location="10,10,0" Dimensions="120,120,0" Text="https://example.com" />`,
		render(t, qr))
}

func TestImageWrapsBitmap(t *testing.T) {
	comp := document.NewComposition(800, 600)
	layer := comp.AddLayer("main")
	img := layer.AddImage("Logo", "logo.png", document.Loc(0, 0), document.Dim(64, 64))

	assert.Equal(t,
		`<Image Name="Logo" Location="0,0,0" Dimensions="64,64,0">`+
			`<Image.Bitmap><Bitmap Source="logo.png" /></Image.Bitmap></Image>`,
		render(t, img))
}

func TestEffectsCollection(t *testing.T) {
	comp := document.NewComposition(800, 600)
	layer := comp.AddLayer("main")
	rect := layer.AddRectangle("Rect 1", document.Loc(0, 0), document.Dim(10, 10))
	rect.AddEffects(
		document.ShadowEffect(15, "Outer"),
		document.FlipXEffect(),
	)

	got := render(t, rect)
	assert.Contains(t, got,
		`<Rectangle.Effects>`+
			`<Effect Type="Shadow" BlurAmount="15" Mode="Outer" />`+
			`<Effect Type="FlipX" />`+
			`</Rectangle.Effects>`)
}

func TestLayerAtWithLocked(t *testing.T) {
	comp := document.NewComposition(1920, 1080)
	layer := comp.AddLayerAt("band", document.Loc(0, 900), document.Dim(1920, 180), document.WithLocked())

	got := render(t, layer)
	assert.Contains(t, got, `Locked="True"`)
	assert.Contains(t, got, `<Composition Width="1920" Height="180" />`)
}
