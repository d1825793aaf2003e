package model3d

import (
	"github.com/Faultbox/lcsc2kicad/pkg/formats"
	"github.com/Faultbox/lcsc2kicad/pkg/kicad"
	gomath "github.com/Faultbox/lcsc2kicad/pkg/math"
	"github.com/Faultbox/lcsc2kicad/pkg/units"
)

// Placement positions a model relative to its footprint origin.
type Placement struct {
	Offset   gomath.Vec3 // Inches, as KiCad 5 model offsets are
	Rotation gomath.Vec3 // Degrees per axis
}

// VerticalOffset lifts a model so its lowest point sits at the anchor height.
func VerticalOffset(anchorZ, lowestZ float64) float64 {
	return anchorZ - lowestZ
}

// Compose derives the model placement from the SVGNODE anchor, the footprint
// origin (both canvas units) and the converted mesh.
//
// X and Y combine the anchor offset from the origin with the mesh centroid;
// Y is flipped because footprint space grows downwards. Z puts the lowest
// vertex on the anchor height. Rotations are negated per axis.
func Compose(node formats.ModelNode, origin gomath.Vec2, mesh *formats.Mesh, u units.Config) Placement {
	center := mesh.Bounds().Center()
	lowest := u.TargetToMesh(mesh.LowestZ())

	dx := node.AnchorX - origin.X
	dy := node.AnchorY - origin.Y

	return Placement{
		Offset: gomath.Vec3{
			X: dx/u.AnchorDivisor + center.X/u.CentroidDivisor,
			Y: units.FlipY(dy/u.AnchorDivisor) - center.Y/u.CentroidDivisor,
			Z: u.MMToInch(VerticalOffset(u.ToMM(node.AnchorZ), lowest)),
		},
		Rotation: gomath.Vec3{
			X: -node.Rotation[0],
			Y: -node.Rotation[1],
			Z: -node.Rotation[2],
		},
	}
}

// Model returns the footprint model entry for a .wrl at path.
func (p Placement) Model(path string) kicad.Model {
	return kicad.Model{
		Path:   path,
		At:     p.Offset,
		Scale:  gomath.Vec3{X: 1, Y: 1, Z: 1},
		Rotate: p.Rotation,
	}
}
