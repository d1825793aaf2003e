package vrml

import (
	gomath "math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/lcsc2kicad/pkg/math"
)

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.0"},
		{gomath.Copysign(0, -1), "-0.0"},
		{1, "1.0"},
		{-3, "-3.0"},
		{0.3937, "0.3937"},
		{0.0001, "0.0001"},
		{0.00005, "5e-05"},
		{1.5e16, "1.5e+16"},
		{123.25, "123.25"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatFloat(tt.in))
		})
	}
}

func TestShapeString(t *testing.T) {
	s := Shape{
		Appearance: Appearance{
			Diffuse:      []string{"0.1", "0.2", "0.3"},
			Specular:     []string{"0.5", "0.5", "0.5"},
			Transparency: "0",
		},
		Points: []math.Vec3{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 1, Y: 1, Z: 0}},
		Rings:  [][]int{{0, 1, 2, -1}},
	}

	want := "\nShape{\n" +
		"\tappearance Appearance {\n" +
		"\t\tmaterial  Material \t{ \n" +
		"\t\t\tdiffuseColor 0.1 0.2 0.3 \n" +
		"\t\t\tspecularColor 0.5 0.5 0.5\n" +
		"\t\t\tambientIntensity 0.2\n" +
		"\t\t\ttransparency 0\n" +
		"\t\t\tshininess 0.5\n" +
		"\t\t}\n" +
		"\t}\n" +
		"\tgeometry IndexedFaceSet {\n" +
		"\t\tccw TRUE \n" +
		"\t\tsolid FALSE\n" +
		"\t\tcoord DEF co Coordinate {\n" +
		"\t\t\tpoint [\n" +
		"\t\t\t\t0.0 0.0 0.0, 1.0 0.0 0.0, 1.0 1.0 0.0, 1.0 1.0 0.0\n" +
		"\t\t\t]\n" +
		"\t\t}\n" +
		"\t\tcoordIndex [\n" +
		"\t\t\t0,1,2,-1,\n" +
		"\t\t]\n" +
		"\t}\n" +
		"}"
	assert.Equal(t, want, s.String())
}

func TestWriteStartsWithHeader(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, Write(&sb, []Shape{{}, {}}))

	out := sb.String()
	assert.True(t, strings.HasPrefix(out, "#VRML V2.0 utf8\n"))
	assert.Equal(t, 2, strings.Count(out, "\nShape{"))
}
