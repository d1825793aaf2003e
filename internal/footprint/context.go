// Package footprint turns decoded shape records into a normalized KiCad
// footprint.
package footprint

import (
	"go.uber.org/zap"

	"github.com/Faultbox/lcsc2kicad/pkg/formats"
	"github.com/Faultbox/lcsc2kicad/pkg/kicad"
	gomath "github.com/Faultbox/lcsc2kicad/pkg/math"
	"github.com/Faultbox/lcsc2kicad/pkg/units"
)

// Context is the per-component state shared by every handler. It is owned
// by one conversion and never shared between goroutines.
type Context struct {
	Units     units.Config
	Origin    gomath.Vec2 // Declared origin, canvas units
	Footprint *kicad.Footprint
	Box       gomath.Box2         // Extent of contributing primitives, mm
	Models    []formats.ModelNode // 3D model references found in SVGNODE records
	Skipped   map[string]int      // Skipped records by tag
	Log       *zap.Logger

	// Set by Normalize.
	Translation gomath.Vec2
	Normalized  gomath.Box2
}

// NewContext returns a context for one footprint.
func NewContext(name string, origin gomath.Vec2, u units.Config, log *zap.Logger) *Context {
	if log == nil {
		log = zap.NewNop()
	}
	return &Context{
		Units:     u,
		Origin:    origin,
		Footprint: kicad.NewFootprint(name),
		Box:       gomath.NewBox2(),
		Skipped:   make(map[string]int),
		Log:       log,
	}
}

// Emit adds an item to the footprint. Items on extent layers widen the box.
func (c *Context) Emit(item kicad.Item, layer string) {
	c.Footprint.Add(item)
	if contributesExtent(layer) {
		c.Box.Union(item.Bounds())
	}
}

// EmitDecoration adds an item that never affects the extent.
func (c *Context) EmitDecoration(item kicad.Item) {
	c.Footprint.Add(item)
}

// mm converts a canvas value.
func (c *Context) mm(v float64) float64 {
	return c.Units.ToMM(v)
}

func (c *Context) point(x, y float64) gomath.Vec2 {
	mx, my := c.Units.PointToMM(x, y)
	return gomath.Vec2{X: mx, Y: my}
}
