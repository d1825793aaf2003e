package math

import "math"

// Box3 is an axis-aligned 3D extent.
type Box3 struct {
	Min, Max Vec3
}

// NewBox3 returns an empty box.
func NewBox3() Box3 {
	inf := math.Inf(1)
	return Box3{
		Min: Vec3{inf, inf, inf},
		Max: Vec3{-inf, -inf, -inf},
	}
}

// Empty reports whether nothing has been observed yet.
func (b Box3) Empty() bool {
	return b.Min.X > b.Max.X
}

// Observe widens the box to include v.
func (b *Box3) Observe(v Vec3) {
	b.Min = Vec3{min(b.Min.X, v.X), min(b.Min.Y, v.Y), min(b.Min.Z, v.Z)}
	b.Max = Vec3{max(b.Max.X, v.X), max(b.Max.Y, v.Y), max(b.Max.Z, v.Z)}
}

// Center returns the midpoint of the extrema on every axis.
func (b Box3) Center() Vec3 {
	return Vec3{
		(b.Min.X + b.Max.X) / 2,
		(b.Min.Y + b.Max.Y) / 2,
		(b.Min.Z + b.Max.Z) / 2,
	}
}
