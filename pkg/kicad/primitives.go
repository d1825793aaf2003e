package kicad

import (
	"math"

	gomath "github.com/Faultbox/lcsc2kicad/pkg/math"
)

// Line is an fp_line.
type Line struct {
	Start, End gomath.Vec2
	Layer      string
	Width      float64
}

func (l *Line) Translate(dx, dy float64) {
	d := gomath.Vec2{X: dx, Y: dy}
	l.Start = l.Start.Add(d)
	l.End = l.End.Add(d)
}

func (l *Line) Bounds() gomath.Box2 { return gomath.PointsBox(l.Start, l.End) }
func (l *Line) kind() int           { return kindLine }

func (l *Line) write(w *writer) {
	w.linef("(fp_line (start %s) (end %s) (layer %s) (width %s))",
		xy(l.Start.X, l.Start.Y), xy(l.End.X, l.End.Y), l.Layer, FormatNumber(l.Width))
}

// Circle is an fp_circle.
type Circle struct {
	Center gomath.Vec2
	Radius float64
	Layer  string
	Width  float64
}

func (c *Circle) Translate(dx, dy float64) {
	c.Center = c.Center.Add(gomath.Vec2{X: dx, Y: dy})
}

func (c *Circle) Bounds() gomath.Box2 {
	r := gomath.Vec2{X: c.Radius, Y: c.Radius}
	return gomath.PointsBox(c.Center.Sub(r), c.Center.Add(r))
}

func (c *Circle) kind() int { return kindCircle }

func (c *Circle) write(w *writer) {
	w.linef("(fp_circle (center %s) (end %s) (layer %s) (width %s))",
		xy(c.Center.X, c.Center.Y), xy(c.Center.X+c.Radius, c.Center.Y), c.Layer, FormatNumber(c.Width))
}

// Arc is an fp_arc: it starts at Start and sweeps Angle degrees around
// Center, clockwise on screen for positive angles.
type Arc struct {
	Center gomath.Vec2
	Start  gomath.Vec2
	Angle  float64
	Layer  string
	Width  float64
}

func (a *Arc) Translate(dx, dy float64) {
	d := gomath.Vec2{X: dx, Y: dy}
	a.Center = a.Center.Add(d)
	a.Start = a.Start.Add(d)
}

// End returns the point where the arc stops.
func (a *Arc) End() gomath.Vec2 {
	return a.Center.Add(a.Start.Sub(a.Center).Rotate(a.Angle))
}

// Bounds covers both endpoints plus every axis extreme crossed by the sweep.
func (a *Arc) Bounds() gomath.Box2 {
	b := gomath.PointsBox(a.Start, a.End())
	r := a.Start.Distance(a.Center)
	startDeg := a.Start.Sub(a.Center).Angle() * 180 / math.Pi
	lo, hi := startDeg, startDeg+a.Angle
	if hi < lo {
		lo, hi = hi, lo
	}
	for k := math.Ceil(lo / 90); k*90 <= hi; k++ {
		p := gomath.Vec2{X: r, Y: 0}.Rotate(k * 90)
		b.Observe(a.Center.X+p.X, a.Center.Y+p.Y)
	}
	return b
}

func (a *Arc) kind() int { return kindArc }

func (a *Arc) write(w *writer) {
	w.linef("(fp_arc (start %s) (end %s) (angle %s) (layer %s) (width %s))",
		xy(a.Center.X, a.Center.Y), xy(a.Start.X, a.Start.Y), FormatNumber(a.Angle), a.Layer, FormatNumber(a.Width))
}

// Polygon is a filled fp_poly.
type Polygon struct {
	Points []gomath.Vec2
	Layer  string
	Width  float64
}

func (p *Polygon) Translate(dx, dy float64) {
	d := gomath.Vec2{X: dx, Y: dy}
	for i := range p.Points {
		p.Points[i] = p.Points[i].Add(d)
	}
}

func (p *Polygon) Bounds() gomath.Box2 { return gomath.PointsBox(p.Points...) }
func (p *Polygon) kind() int           { return kindPoly }

func (p *Polygon) write(w *writer) {
	w.linef("(fp_poly (pts %s) (layer %s) (width %s))", pts(p.Points), p.Layer, FormatNumber(p.Width))
}

// Text kinds.
const (
	TextReference = "reference"
	TextValue     = "value"
	TextUser      = "user"
)

// Text is an fp_text.
type Text struct {
	Kind      string
	Text      string
	At        gomath.Vec2
	Rotation  float64
	Layer     string
	Size      float64
	Thickness float64
	Mirror    bool
}

// NewText returns a text with the default 1 mm font.
func NewText(kind, text string, at gomath.Vec2, layer string) *Text {
	return &Text{Kind: kind, Text: text, At: at, Layer: layer, Size: 1, Thickness: 0.15}
}

func (t *Text) Translate(dx, dy float64) {
	t.At = t.At.Add(gomath.Vec2{X: dx, Y: dy})
}

func (t *Text) Bounds() gomath.Box2 { return gomath.PointsBox(t.At) }
func (t *Text) kind() int           { return kindText }

func (t *Text) write(w *writer) {
	at := xy(t.At.X, t.At.Y)
	if t.Rotation != 0 {
		at += " " + FormatNumber(t.Rotation)
	}
	w.linef("(fp_text %s %s (at %s) (layer %s)", t.Kind, Atom(t.Text), at, t.Layer)
	w.indent++
	effects := "(effects (font (size " + xy(t.Size, t.Size) + ") (thickness " + FormatNumber(t.Thickness) + "))"
	if t.Mirror {
		effects += " (justify mirror)"
	}
	w.linef("%s)", effects)
	w.indent--
	w.linef(")")
}

// PadType is the pad attribute.
type PadType string

// Pad types.
const (
	PadSMD  PadType = "smd"
	PadTHT  PadType = "thru_hole"
	PadNPTH PadType = "np_thru_hole"
)

// PadShape is the pad outline.
type PadShape string

// Pad shapes.
const (
	ShapeRect   PadShape = "rect"
	ShapeOval   PadShape = "oval"
	ShapeCircle PadShape = "circle"
	ShapeCustom PadShape = "custom"
)

// Drill describes a pad hole. A zero Size means no hole.
type Drill struct {
	Size gomath.Vec2
	Oval bool
}

// Pad is a footprint pad.
type Pad struct {
	Number   string
	Type     PadType
	Shape    PadShape
	At       gomath.Vec2
	Rotation float64
	Size     gomath.Vec2
	Drill    Drill
	Layers   []string
	// Outline is the custom pad polygon relative to At.
	Outline []gomath.Vec2
}

func (p *Pad) Translate(dx, dy float64) {
	p.At = p.At.Add(gomath.Vec2{X: dx, Y: dy})
}

func (p *Pad) Bounds() gomath.Box2 {
	if p.Shape == ShapeCustom && len(p.Outline) > 0 {
		b := gomath.PointsBox(p.Outline...)
		b.Translate(p.At.X, p.At.Y)
		return b
	}
	hw, hh := p.Size.X/2, p.Size.Y/2
	s, c := math.Sincos(p.Rotation * math.Pi / 180)
	ex := math.Abs(hw*c) + math.Abs(hh*s)
	ey := math.Abs(hw*s) + math.Abs(hh*c)
	return gomath.PointsBox(
		gomath.Vec2{X: p.At.X - ex, Y: p.At.Y - ey},
		gomath.Vec2{X: p.At.X + ex, Y: p.At.Y + ey},
	)
}

func (p *Pad) kind() int { return kindPad }

func (p *Pad) write(w *writer) {
	at := xy(p.At.X, p.At.Y)
	if p.Rotation != 0 {
		at += " " + FormatNumber(p.Rotation)
	}
	line := "(pad " + Atom(p.Number) + " " + string(p.Type) + " " + string(p.Shape) +
		" (at " + at + ") (size " + xy(p.Size.X, p.Size.Y) + ")"
	if p.Drill.Size.X > 0 {
		if p.Drill.Oval {
			line += " (drill oval " + xy(p.Drill.Size.X, p.Drill.Size.Y) + ")"
		} else {
			line += " (drill " + FormatNumber(p.Drill.Size.X) + ")"
		}
	}
	line += " (layers " + joinAtoms(p.Layers) + ")"

	if p.Shape != ShapeCustom {
		w.linef("%s)", line)
		return
	}
	w.linef("%s", line)
	w.indent++
	w.linef("(options (clearance outline) (anchor circle))")
	w.linef("(primitives")
	w.indent++
	w.linef("(gr_poly (pts %s) (width 0))", pts(p.Outline))
	w.indent--
	w.linef("))")
	w.indent--
}

// Model is a 3D model reference.
type Model struct {
	Path   string
	At     gomath.Vec3
	Scale  gomath.Vec3
	Rotate gomath.Vec3
}

func (m Model) write(w *writer) {
	w.linef("(model %s", Atom(m.Path))
	w.indent++
	w.linef("(at (xyz %s))", xyz(m.At))
	w.linef("(scale (xyz %s))", xyz(m.Scale))
	w.linef("(rotate (xyz %s))", xyz(m.Rotate))
	w.indent--
	w.linef(")")
}

func pts(points []gomath.Vec2) string {
	s := ""
	for i, p := range points {
		if i > 0 {
			s += " "
		}
		s += "(xy " + xy(p.X, p.Y) + ")"
	}
	return s
}

func xyz(v gomath.Vec3) string {
	return FormatNumber(v.X) + " " + FormatNumber(v.Y) + " " + FormatNumber(v.Z)
}

func joinAtoms(ss []string) string {
	s := ""
	for i, a := range ss {
		if i > 0 {
			s += " "
		}
		s += Atom(a)
	}
	return s
}
