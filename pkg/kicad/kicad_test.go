package kicad

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gomath "github.com/Faultbox/lcsc2kicad/pkg/math"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{-0.0000001, "0"},
		{1, "1"},
		{-2.5, "-2.5"},
		{0.1 + 0.2, "0.3"},
		{1.23456789, "1.234568"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatNumber(tt.in), "FormatNumber(%v)", tt.in)
	}
}

func TestAtom(t *testing.T) {
	assert.Equal(t, "REF**", Atom("REF**"))
	assert.Equal(t, `""`, Atom(""))
	assert.Equal(t, `"a b"`, Atom("a b"))
	assert.Equal(t, `"say \"hi\""`, Atom(`say "hi"`))
}

func TestArcEndAndBounds(t *testing.T) {
	a := &Arc{Center: gomath.Vec2{}, Start: gomath.Vec2{X: 1}, Angle: 90}
	end := a.End()
	assert.InDelta(t, 0, end.X, 1e-9)
	assert.InDelta(t, 1, end.Y, 1e-9)

	b := a.Bounds()
	assert.InDelta(t, 0, b.Min.X, 1e-9)
	assert.InDelta(t, 1, b.Max.X, 1e-9)
	assert.InDelta(t, 0, b.Min.Y, 1e-9)
	assert.InDelta(t, 1, b.Max.Y, 1e-9)

	// A half turn from the top crosses the right-hand extreme.
	half := &Arc{Center: gomath.Vec2{}, Start: gomath.Vec2{Y: -1}, Angle: 180}
	hb := half.Bounds()
	assert.InDelta(t, 1, hb.Max.X, 1e-9)
	assert.InDelta(t, -1, hb.Min.Y, 1e-9)
	assert.InDelta(t, 1, hb.Max.Y, 1e-9)
}

func TestPadBoundsRotation(t *testing.T) {
	p := &Pad{At: gomath.Vec2{X: 1, Y: 1}, Size: gomath.Vec2{X: 4, Y: 2}, Rotation: 90}
	b := p.Bounds()
	assert.InDelta(t, 0, b.Min.X, 1e-9)
	assert.InDelta(t, 2, b.Max.X, 1e-9)
	assert.InDelta(t, -1, b.Min.Y, 1e-9)
	assert.InDelta(t, 3, b.Max.Y, 1e-9)
}

func TestFootprintTranslate(t *testing.T) {
	f := NewFootprint("X")
	f.Add(
		&Line{Start: gomath.Vec2{X: 1, Y: 1}, End: gomath.Vec2{X: 2, Y: 2}},
		&Pad{At: gomath.Vec2{X: 3, Y: 3}},
	)
	f.Translate(-1, -1)

	l := f.Items[0].(*Line)
	assert.Equal(t, gomath.Vec2{}, l.Start)
	assert.Equal(t, gomath.Vec2{X: 1, Y: 1}, l.End)
	assert.Equal(t, gomath.Vec2{X: 2, Y: 2}, f.Items[1].(*Pad).At)
}

func TestFootprintWrite(t *testing.T) {
	f := NewFootprint("Resistor_0805")
	f.Annotations = []*Text{
		NewText(TextReference, "REF**", gomath.Vec2{X: 0, Y: -3}, LayerFSilkS),
	}
	f.Add(
		&Pad{Number: "1", Type: PadSMD, Shape: ShapeRect, At: gomath.Vec2{X: -1}, Size: gomath.Vec2{X: 1, Y: 1.2}, Layers: LayersSMDTop},
		&Line{Start: gomath.Vec2{X: -2, Y: -1}, End: gomath.Vec2{X: 2, Y: -1}, Layer: LayerFSilkS, Width: 0.254},
		&Pad{Number: "", Type: PadNPTH, Shape: ShapeCircle, Size: gomath.Vec2{X: 1, Y: 1}, Drill: Drill{Size: gomath.Vec2{X: 1, Y: 1}}, Layers: LayersTHT},
	)
	f.Models = []Model{{Path: "${KIPRJMOD}/r.wrl", Scale: gomath.Vec3{X: 1, Y: 1, Z: 1}}}

	var sb strings.Builder
	require.NoError(t, f.Write(&sb))

	want := `(module "Resistor_0805" (layer F.Cu) (tedit 0)
  (descr "Resistor_0805 footprint")
  (tags "Resistor_0805 footprint")
  (fp_text reference REF** (at 0 -3) (layer F.SilkS)
    (effects (font (size 1 1) (thickness 0.15)))
  )
  (fp_line (start -2 -1) (end 2 -1) (layer F.SilkS) (width 0.254))
  (pad 1 smd rect (at -1 0) (size 1 1.2) (layers F.Cu F.Paste F.Mask))
  (pad "" np_thru_hole circle (at 0 0) (size 1 1) (drill 1) (layers *.Cu *.Mask))
  (model ${KIPRJMOD}/r.wrl
    (at (xyz 0 0 0))
    (scale (xyz 1 1 1))
    (rotate (xyz 0 0 0))
  )
)
`
	assert.Equal(t, want, sb.String())
}

func TestCustomPadWrite(t *testing.T) {
	f := NewFootprint("P")
	f.Add(&Pad{
		Number:  "2",
		Type:    PadSMD,
		Shape:   ShapeCustom,
		At:      gomath.Vec2{X: 1, Y: 1},
		Size:    gomath.Vec2{X: 0.1, Y: 0.1},
		Layers:  LayersSMDTop,
		Outline: []gomath.Vec2{{X: -1, Y: -1}, {X: 1, Y: -1}, {X: 0, Y: 1}},
	})
	out := f.String()
	assert.Contains(t, out, "(pad 2 smd custom (at 1 1) (size 0.1 0.1) (layers F.Cu F.Paste F.Mask)\n")
	assert.Contains(t, out, "(gr_poly (pts (xy -1 -1) (xy 1 -1) (xy 0 1)) (width 0))")
	assert.Contains(t, out, "(options (clearance outline) (anchor circle))")
}

func TestQualifiedName(t *testing.T) {
	assert.Equal(t, "footprint:Resistor_0805", QualifiedName("footprint", "Resistor_0805"))
}
