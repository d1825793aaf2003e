package model3d

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/lcsc2kicad/pkg/formats"
	gomath "github.com/Faultbox/lcsc2kicad/pkg/math"
	"github.com/Faultbox/lcsc2kicad/pkg/units"
	"github.com/Faultbox/lcsc2kicad/pkg/vrml"
)

const testMesh = `newmtl mat_body
Kd 0.1 0.1 0.1
Ks 0.5 0.5 0.5
d 0
endmtl
newmtl mat_pin
Kd 0.8 0.8 0.8
Ks 0.9 0.9 0.9
d 0.25
endmtl
v 0 0 -2.54
v 2.54 0 0
v 2.54 2.54 0
v 0 2.54 5.08
v -2.54 -2.54 0
usemtl mat_body
f 1// 2// 3//
f 1// 3// 4//
usemtl mat_pin
f 5// 1// 2//
`

func verts(n int) []gomath.Vec3 {
	out := make([]gomath.Vec3, n)
	for i := range out {
		out[i] = gomath.Vec3{X: float64(i + 1)}
	}
	return out
}

func TestDedupe(t *testing.T) {
	vs := verts(7)
	g := Dedupe(formats.FaceGroup{Material: "m", Faces: [][]int{{5, 2, 5, 7}}}, vs)

	assert.Equal(t, "m", g.Material)
	assert.Equal(t, [][]int{{0, 1, 0, 2, -1}}, g.Rings)
	assert.Equal(t, []gomath.Vec3{vs[4], vs[1], vs[6]}, g.Points)
}

func TestDedupe_SharedAcrossFaces(t *testing.T) {
	vs := verts(7)
	g := Dedupe(formats.FaceGroup{Faces: [][]int{{3, 1, 2}, {2, 4, 3}, {7, 1, 4}}}, vs)

	assert.Equal(t, [][]int{{0, 1, 2, -1}, {2, 3, 0, -1}, {4, 1, 3, -1}}, g.Rings)
	require.Len(t, g.Points, 5)

	// Every local index resolves to the vertex it replaced.
	faces := [][]int{{3, 1, 2}, {2, 4, 3}, {7, 1, 4}}
	for fi, face := range faces {
		for i, global := range face {
			assert.Equal(t, vs[global-1], g.Points[g.Rings[fi][i]])
		}
	}

	// Each global index maps to exactly one local slot.
	seen := map[gomath.Vec3]bool{}
	for _, p := range g.Points {
		assert.False(t, seen[p], "duplicate point %v", p)
		seen[p] = true
	}
}

func TestSeamPoints(t *testing.T) {
	a, b, c := gomath.Vec3{X: 1}, gomath.Vec3{X: 2}, gomath.Vec3{X: 3}

	tests := []struct {
		name string
		in   []gomath.Vec3
		want []gomath.Vec3
	}{
		{"empty", nil, nil},
		{"single", []gomath.Vec3{a}, []gomath.Vec3{a, a}},
		{"three", []gomath.Vec3{a, b, c}, []gomath.Vec3{a, b, c, c}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SeamPoints(tt.in))
		})
	}
}

func TestSeamPoints_DoesNotAlias(t *testing.T) {
	in := []gomath.Vec3{{X: 1}, {X: 2}}
	out := SeamPoints(in)
	out[0].X = 9
	assert.Equal(t, 1.0, in[0].X)
}

func TestVerticalOffset(t *testing.T) {
	assert.Equal(t, 1.5, VerticalOffset(0.5, -1))
	assert.Equal(t, 2.0, VerticalOffset(2, 0))
}

func TestCompose(t *testing.T) {
	u := units.Default()
	mesh := &formats.Mesh{Vertices: []gomath.Vec3{{X: 0, Y: 0, Z: -1}, {X: 2, Y: 4, Z: 1}}}
	node := formats.ModelNode{
		AnchorX:  4100,
		AnchorY:  3200,
		AnchorZ:  3.937,
		Rotation: [3]float64{10, 0, 90},
	}

	p := Compose(node, gomath.Vec2{X: 4000, Y: 3000}, mesh, u)

	assert.InDelta(t, 1.1, p.Offset.X, 1e-12)
	assert.InDelta(t, -2.2, p.Offset.Y, 1e-12)
	assert.InDelta(t, (1+2.54)/25.4, p.Offset.Z, 1e-12)
	assert.Equal(t, gomath.Vec3{X: -10, Y: 0, Z: -90}, p.Rotation)

	m := p.Model("$(KIPRJMOD)/R.wrl")
	assert.Equal(t, "$(KIPRJMOD)/R.wrl", m.Path)
	assert.Equal(t, gomath.Vec3{X: 1, Y: 1, Z: 1}, m.Scale)
	assert.Equal(t, p.Offset, m.At)
}

func TestCompose_MeshAboveBoard(t *testing.T) {
	mesh := &formats.Mesh{Vertices: []gomath.Vec3{{Z: 1}, {Z: 3}}}
	p := Compose(formats.ModelNode{}, gomath.Vec2{}, mesh, units.Default())
	assert.Equal(t, 0.0, p.Offset.Z, "lowest Z is clamped at zero")
}

func TestConvert(t *testing.T) {
	node := formats.ModelNode{UUID: "mesh-1", AnchorX: 4000, AnchorY: 3000}
	scene, err := Convert(testMesh, node, gomath.Vec2{X: 4000, Y: 3000}, Options{Units: units.Default()})
	require.NoError(t, err)
	require.Len(t, scene.Shapes, 2)

	body := scene.Shapes[0]
	assert.Equal(t, []string{"0.1", "0.1", "0.1"}, body.Appearance.Diffuse)
	assert.Equal(t, "0", body.Appearance.Transparency)
	assert.Equal(t, [][]int{{0, 1, 2, -1}, {0, 2, 3, -1}}, body.Rings)
	assert.Len(t, body.Points, 5, "four vertices plus the seam point")

	pin := scene.Shapes[1]
	assert.Equal(t, "0.25", pin.Appearance.Transparency)
	assert.Equal(t, []gomath.Vec3{{X: -1, Y: -1}, {Z: -1}, {X: 1}, {X: 1}}, pin.Points)

	// Centroid (0, 0), lowest Z -1 in mesh units.
	assert.InDelta(t, 0, scene.Placement.Offset.X, 1e-12)
	assert.InDelta(t, 0, scene.Placement.Offset.Y, 1e-12)
	assert.InDelta(t, 0.1, scene.Placement.Offset.Z, 1e-12)

	var buf bytes.Buffer
	require.NoError(t, scene.Write(&buf))
	assert.True(t, strings.HasPrefix(buf.String(), vrml.Header))
	assert.Equal(t, 2, strings.Count(buf.String(), "\nShape{\n"))
}

func TestConvert_DropsEmptyGroups(t *testing.T) {
	text := strings.Replace(testMesh, "usemtl mat_pin\nf 5// 1// 2//\n", "usemtl mat_pin\n", 1)
	scene, err := Convert(text, formats.ModelNode{}, gomath.Vec2{}, Options{Units: units.Default()})
	require.NoError(t, err)
	assert.Len(t, scene.Shapes, 1)
}

func TestConvert_Errors(t *testing.T) {
	_, err := Convert("newmtl a\nendmtl\n", formats.ModelNode{UUID: "x"}, gomath.Vec2{}, Options{Units: units.Default()})
	assert.True(t, errors.Is(err, formats.ErrNoVertices))

	_, err = Convert("v 0 0 0\nusemtl nope\nf 1 1 1\n", formats.ModelNode{}, gomath.Vec2{}, Options{Units: units.Default()})
	assert.True(t, errors.Is(err, formats.ErrUnknownMaterial))
}
