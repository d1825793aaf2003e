package footprint

import (
	"github.com/Faultbox/lcsc2kicad/pkg/kicad"
	gomath "github.com/Faultbox/lcsc2kicad/pkg/math"
)

// Label offsets from the bounding box edges, mm.
const (
	referenceOffset = 2
	valueOffset     = 2
	userOffset      = 4
	annotationText  = "REF**"
)

// Normalize moves the footprint so the declared origin becomes (0, 0) and
// places the reference, user and value labels around the translated box.
// An empty box collapses to the origin.
func Normalize(ctx *Context) {
	origin := ctx.point(ctx.Origin.X, ctx.Origin.Y)
	shift := origin.Neg()
	ctx.Footprint.Translate(shift.X, shift.Y)

	box := ctx.Box
	if box.Empty() {
		box = gomath.PointsBox(origin)
	}
	box.Translate(shift.X, shift.Y)
	ctx.Translation = shift
	ctx.Normalized = box

	midX := box.Center().X
	ctx.Footprint.Annotations = []*kicad.Text{
		kicad.NewText(kicad.TextReference, annotationText,
			gomath.Vec2{X: midX, Y: box.Min.Y - referenceOffset}, kicad.LayerFSilkS),
		kicad.NewText(kicad.TextUser, annotationText,
			gomath.Vec2{X: midX, Y: box.Max.Y + userOffset}, kicad.LayerFFab),
		kicad.NewText(kicad.TextValue, ctx.Footprint.Name,
			gomath.Vec2{X: midX, Y: box.Max.Y + valueOffset}, kicad.LayerFFab),
	}
}
