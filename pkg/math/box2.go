package math

// boxSentinel is large enough that any canvas coordinate replaces it.
const boxSentinel = 10000.0

// Box2 is a running axis-aligned extent. The zero value is not usable;
// call NewBox2 so the first observation replaces the sentinels.
type Box2 struct {
	Min, Max Vec2
}

// NewBox2 returns an empty box.
func NewBox2() Box2 {
	return Box2{
		Min: Vec2{boxSentinel, boxSentinel},
		Max: Vec2{-boxSentinel, -boxSentinel},
	}
}

// Empty reports whether nothing has been observed yet.
func (b Box2) Empty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y
}

// Observe widens the box to include (x, y).
func (b *Box2) Observe(x, y float64) {
	b.Min.X = min(b.Min.X, x)
	b.Min.Y = min(b.Min.Y, y)
	b.Max.X = max(b.Max.X, x)
	b.Max.Y = max(b.Max.Y, y)
}

// ObserveExtent widens the box to include another extent.
func (b *Box2) ObserveExtent(minX, minY, maxX, maxY float64) {
	b.Observe(minX, minY)
	b.Observe(maxX, maxY)
}

// Union widens the box to include other. Empty boxes are ignored.
func (b *Box2) Union(other Box2) {
	if other.Empty() {
		return
	}
	b.ObserveExtent(other.Min.X, other.Min.Y, other.Max.X, other.Max.Y)
}

// Translate shifts the box by (dx, dy).
func (b *Box2) Translate(dx, dy float64) {
	b.Min.X += dx
	b.Max.X += dx
	b.Min.Y += dy
	b.Max.Y += dy
}

// Center returns the midpoint of the box.
func (b Box2) Center() Vec2 {
	return Vec2{(b.Min.X + b.Max.X) / 2, (b.Min.Y + b.Max.Y) / 2}
}

// Contains reports whether (x, y) lies inside the box, within eps.
func (b Box2) Contains(x, y, eps float64) bool {
	return x >= b.Min.X-eps && x <= b.Max.X+eps && y >= b.Min.Y-eps && y <= b.Max.Y+eps
}

// PointsBox returns the extent of pts.
func PointsBox(pts ...Vec2) Box2 {
	b := NewBox2()
	for _, p := range pts {
		b.Observe(p.X, p.Y)
	}
	return b
}
