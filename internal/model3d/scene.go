package model3d

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/Faultbox/lcsc2kicad/pkg/formats"
	gomath "github.com/Faultbox/lcsc2kicad/pkg/math"
	"github.com/Faultbox/lcsc2kicad/pkg/units"
	"github.com/Faultbox/lcsc2kicad/pkg/vrml"
)

// ErrEmptyGroup is logged for face groups without faces; they are dropped.
var ErrEmptyGroup = errors.New("face group has no faces")

// Scene is a converted mesh ready to be written and referenced.
type Scene struct {
	Shapes    []vrml.Shape
	Placement Placement
}

// Options configures Convert.
type Options struct {
	Units  units.Config
	Logger *zap.Logger
}

// Convert parses mesh text and builds the scene for the model referenced by
// node. Structural mesh errors are returned unchanged.
func Convert(text string, node formats.ModelNode, origin gomath.Vec2, opts Options) (*Scene, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	mesh, err := formats.ParseMesh(text, opts.Units.MeshRatio)
	if err != nil {
		return nil, fmt.Errorf("mesh %s: %w", node.UUID, err)
	}

	shapes := Shapes(mesh, log)
	log.Debug("mesh converted",
		zap.String("mesh", node.UUID),
		zap.Int("vertices", len(mesh.Vertices)),
		zap.Int("groups", len(mesh.Groups)),
		zap.Int("shapes", len(shapes)))

	return &Scene{
		Shapes:    shapes,
		Placement: Compose(node, origin, mesh, opts.Units),
	}, nil
}

// Shapes builds one VRML shape per non-empty face group, in mesh order.
func Shapes(mesh *formats.Mesh, log *zap.Logger) []vrml.Shape {
	shapes := make([]vrml.Shape, 0, len(mesh.Groups))
	for _, fg := range mesh.Groups {
		if len(fg.Faces) == 0 {
			log.Warn("dropping face group", zap.String("material", fg.Material), zap.Error(ErrEmptyGroup))
			continue
		}
		g := Dedupe(fg, mesh.Vertices)
		mat := mesh.Materials[fg.Material]
		shapes = append(shapes, vrml.Shape{
			Appearance: vrml.Appearance{
				Diffuse:      mat.Diffuse,
				Specular:     mat.Specular,
				Transparency: mat.Transparency,
			},
			Points: SeamPoints(g.Points),
			Rings:  g.Rings,
		})
	}
	return shapes
}

// Write serialises the scene as a .wrl file.
func (s *Scene) Write(w io.Writer) error {
	return vrml.Write(w, s.Shapes)
}
