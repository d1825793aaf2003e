// Package model3d converts a component mesh into VRML shapes and places the
// resulting model relative to its footprint.
package model3d

import (
	"github.com/Faultbox/lcsc2kicad/pkg/formats"
	gomath "github.com/Faultbox/lcsc2kicad/pkg/math"
)

// ringEnd terminates every face ring.
const ringEnd = -1

// Group is one face group rewritten to local vertex indices.
type Group struct {
	Material string
	Points   []gomath.Vec3 // Referenced vertices in first-seen order
	Rings    [][]int       // Local indices, each ring ends with -1
}

// Dedupe maps the global, 1-based indices of group onto a local buffer that
// holds each referenced vertex once. Indices must be in range, which
// formats.ParseMesh guarantees.
func Dedupe(group formats.FaceGroup, vertices []gomath.Vec3) Group {
	g := Group{Material: group.Material}
	local := make(map[int]int)

	for _, face := range group.Faces {
		ring := make([]int, 0, len(face)+1)
		for _, global := range face {
			idx, seen := local[global]
			if !seen {
				idx = len(g.Points)
				local[global] = idx
				g.Points = append(g.Points, vertices[global-1])
			}
			ring = append(ring, idx)
		}
		g.Rings = append(g.Rings, append(ring, ringEnd))
	}
	return g
}

// SeamPoints returns points with the last point repeated once before the
// final entry. Existing .wrl libraries carry this extra point and KiCad's
// importer is fine with it. Empty input is returned unchanged.
func SeamPoints(points []gomath.Vec3) []gomath.Vec3 {
	n := len(points)
	if n == 0 {
		return points
	}
	out := make([]gomath.Vec3, 0, n+1)
	out = append(out, points[:n-1]...)
	out = append(out, points[n-1], points[n-1])
	return out
}
