package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	stopType = MustType("GradientStop", nil,
		Attr{Name: "color", Type: KindString},
		Attr{Name: "position", Type: KindFloat},
	)
	brushType = MustType("Brush", nil,
		Attr{Name: "type", Type: KindString},
		Attr{Name: "stops", Type: KindNodeList},
	)
)

func TestSerializeScalarAttributes(t *testing.T) {
	stop := MustNode(stopType, Values{"color": "#FFFF0000"})

	el, err := Serialize(stop)
	require.NoError(t, err)

	assert.Equal(t, "GradientStop", el.Tag)
	require.Len(t, el.Attrs, 1)
	assert.Equal(t, Attribute{Name: "Color", Value: "#FFFF0000"}, el.Attrs[0])
	_, present := el.Attr("Position")
	assert.False(t, present, "absent omit-if-absent attribute must not be emitted")
}

func TestSerializeCollectionWrapping(t *testing.T) {
	first := MustNode(stopType, Values{"color": "#FFFF0000"})
	second := MustNode(stopType, Values{"color": "#FF0000FF", "position": 1.0})
	brush := MustNode(brushType, Values{
		"type":  "LinearGradient",
		"stops": []*Node{first, second},
	})

	el, err := Serialize(brush)
	require.NoError(t, err)

	typ, _ := el.Attr("Type")
	assert.Equal(t, "LinearGradient", typ)

	wrap := el.Find("Brush.Stops")
	require.NotNil(t, wrap, "collection attribute must be wrapped as {Tag}.{Attr}")
	assert.Empty(t, wrap.Attrs, "wrapper elements never carry attributes")
	require.Len(t, wrap.Children, 2, "items are direct siblings inside the wrapper")
	assert.Equal(t, "GradientStop", wrap.Children[0].Tag)
	pos, _ := wrap.Children[1].Attr("Position")
	assert.Equal(t, "1", pos)
}

func TestSerializeEmptyCollectionOmitsWrapper(t *testing.T) {
	brush := MustNode(brushType, Values{"type": "Solid"})

	el, err := Serialize(brush)
	require.NoError(t, err)
	assert.Nil(t, el.Find("Brush.Stops"))
}

func TestSerializeNestedNodeWrapping(t *testing.T) {
	inner := MustType("Bitmap", nil, Attr{Name: "source", Type: KindString, Required: true})
	outer := MustType("Image", nil, Attr{Name: "bitmap", Type: KindNode})

	img := MustNode(outer, Values{
		"bitmap": MustNode(inner, Values{"source": "logo.png"}),
	})

	el, err := Serialize(img)
	require.NoError(t, err)

	wrap := el.Find("Image.Bitmap")
	require.NotNil(t, wrap)
	require.Len(t, wrap.Children, 1, "nested node is the wrapper's sole child")
	assert.Equal(t, "Bitmap", wrap.Children[0].Tag, "nested node keeps its own tag")
}

func TestSerializeChildrenFollowSchemaOutput(t *testing.T) {
	holder := MustType("Holder", nil, Attr{Name: "extra", Type: KindNode})
	leaf := MustType("Leaf", nil)

	n := MustNode(holder, Values{"extra": MustNode(leaf, nil)})
	n.Append(MustNode(leaf, nil), MustNode(leaf, nil))

	el, err := Serialize(n)
	require.NoError(t, err)

	require.Len(t, el.Children, 3)
	assert.Equal(t, "Holder.Extra", el.Children[0].Tag, "wrapped attributes precede plain children")
	assert.Equal(t, "Leaf", el.Children[1].Tag)
	assert.Equal(t, "Leaf", el.Children[2].Tag)
}

func TestSerializeScalarForms(t *testing.T) {
	typ := MustType("Mixed", nil,
		Attr{Name: "locked", Type: KindBool},
		Attr{Name: "count", Type: KindInt},
		Attr{Name: "ratio", Type: KindFloat},
	)
	n := MustNode(typ, Values{"locked": false, "count": 12, "ratio": 0.5})

	el, err := Serialize(n)
	require.NoError(t, err)

	locked, _ := el.Attr("Locked")
	count, _ := el.Attr("Count")
	ratio, _ := el.Attr("Ratio")
	assert.Equal(t, "False", locked)
	assert.Equal(t, "12", count)
	assert.Equal(t, "0.5", ratio)
}

func TestSerializeEmitEmpty(t *testing.T) {
	typ := MustType("Strict", nil, Attr{Name: "slot", Type: KindString, EmitEmpty: true})
	n := MustNode(typ, nil)

	el, err := Serialize(n)
	require.NoError(t, err)
	slot, present := el.Attr("Slot")
	assert.True(t, present)
	assert.Equal(t, "", slot)
}

func TestSerializeReference(t *testing.T) {
	named := MustType("Named", nil, Attr{Name: "name", Type: KindString, Required: true})
	anim := MustType("Fade", nil, Attr{Name: "object", Type: KindRef, Required: true})

	target := MustNode(named, Values{"name": "Rect 1"})
	fade := MustNode(anim, Values{"object": NewRef(target)})

	// Rename after wiring; serialization must see the new name.
	target.Set("name", "Rect renamed")

	el, err := Serialize(fade)
	require.NoError(t, err)
	obj, _ := el.Attr("Object")
	assert.Equal(t, "Rect renamed", obj)
}

func TestSerializeUnresolvedReferenceFails(t *testing.T) {
	anim := MustType("Fade", nil, Attr{Name: "object", Type: KindRef, Required: true})
	anon := MustNode(MustType("Anon", nil), nil)

	fade := MustNode(anim, Values{"object": NewRef(anon)})
	_, err := Serialize(fade)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnresolvedRef)
}

func TestSerializeNilNodeValueFails(t *testing.T) {
	inner := MustType("Bitmap", nil)
	outer := MustType("Image", nil,
		Attr{Name: "bitmap", Type: KindNode},
		Attr{Name: "extras", Type: KindNodeList},
	)

	// Set bypasses construction checks, so the serializer must reject a nil
	// node value instead of dereferencing it.
	img := MustNode(outer, nil)
	img.Set("bitmap", (*Node)(nil))
	_, err := Serialize(img)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTypeMismatch)

	img = MustNode(outer, nil)
	img.Set("extras", []*Node{MustNode(inner, nil), nil})
	_, err = Serialize(img)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTypeMismatch)
}

func TestSerializeIdempotent(t *testing.T) {
	stop := MustNode(stopType, Values{"color": "#FFFF0000", "position": 0.25})
	brush := MustNode(brushType, Values{"type": "LinearGradient", "stops": []*Node{stop}})

	first, err := Serialize(brush)
	require.NoError(t, err)
	second, err := Serialize(brush)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
