package footprint

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/lcsc2kicad/pkg/formats"
	"github.com/Faultbox/lcsc2kicad/pkg/kicad"
	gomath "github.com/Faultbox/lcsc2kicad/pkg/math"
)

// Defaults for values the records may omit.
const (
	defaultRectWidth = 0.12 // mm
	customPadAnchor  = 0.01 // mm
)

var errUnknownPadShape = errors.New("unknown pad shape")

// handleTrack: TRACK width layer [net] points...
func handleTrack(fields []string, ctx *Context) error {
	r := &fieldReader{fields: fields}
	width := ctx.mm(r.num(0))
	layer := ctx.layerFor(r.str(1))
	pi := r.spaced(2)
	if r.err != nil {
		return r.err
	}
	nums, err := parseNumbers(fields[pi])
	if err != nil {
		return err
	}
	if len(nums) < 4 || len(nums)%2 != 0 {
		return fmt.Errorf("%w: track needs at least two points", errBadPath)
	}

	for i := 0; i+3 < len(nums); i += 2 {
		ctx.Emit(&kicad.Line{
			Start: ctx.point(nums[i], nums[i+1]),
			End:   ctx.point(nums[i+2], nums[i+3]),
			Layer: layer,
			Width: width,
		}, layer)
	}
	return nil
}

var padShapes = map[string]kicad.PadShape{
	"RECT":    kicad.ShapeRect,
	"OVAL":    kicad.ShapeOval,
	"ELLIPSE": kicad.ShapeCircle,
	"POLYGON": kicad.ShapeCustom,
}

// handlePad: PAD shape x y w h layer [net] number holeRadius [points] rotation id holeLength ...
func handlePad(fields []string, ctx *Context) error {
	r := &fieldReader{fields: fields}
	shape, ok := padShapes[r.str(0)]
	if !ok {
		return fmt.Errorf("%w: %q", errUnknownPadShape, r.str(0))
	}
	at := ctx.point(r.num(1), r.num(2))
	size := ctx.point(r.num(3), r.num(4))
	layerID := r.str(5)

	// The net name is optional and drops out with the empty tokens, so the
	// trailing fields are located from the point list when there is one.
	// Without a point list the net is assumed empty.
	var outline []float64
	numIdx, rotIdx := 6, 8
	for i := 8; i <= 9 && i < len(fields); i++ {
		if nums, err := parseNumbers(fields[i]); err == nil && len(nums) > 1 {
			outline = nums
			numIdx, rotIdx = i-2, i+1
			break
		}
	}
	number := r.str(numIdx)
	holeR := ctx.mm(r.optNum(numIdx+1, 0))
	rotation := r.optNum(rotIdx, 0)
	holeLen := ctx.mm(r.optNum(rotIdx+2, 0))
	if r.err != nil {
		return r.err
	}

	pad := &kicad.Pad{
		Number:   number,
		Shape:    shape,
		At:       at,
		Rotation: rotation,
		Size:     size,
	}
	layer := kicad.LayerFCu
	switch layerID {
	case "1":
		pad.Type, pad.Layers = kicad.PadSMD, kicad.LayersSMDTop
	case "2":
		pad.Type, pad.Layers = kicad.PadSMD, kicad.LayersSMDBottom
		layer = kicad.LayerBCu
	case "11":
		pad.Type, pad.Layers = kicad.PadTHT, kicad.LayersTHT
		pad.Drill = padDrill(holeR, holeLen, size)
	default:
		ctx.Log.Warn("unknown pad layer, using top SMD", zap.String("layer", layerID), zap.String("pad", number))
		pad.Type, pad.Layers = kicad.PadSMD, kicad.LayersSMDTop
	}

	if shape == kicad.ShapeCustom {
		if len(outline) < 6 || len(outline)%2 != 0 {
			return fmt.Errorf("%w: polygon pad needs at least three points", errBadPath)
		}
		// Published points are absolute and already rotated.
		pad.Rotation = 0
		pad.Size = gomath.Vec2{X: customPadAnchor, Y: customPadAnchor}
		for i := 0; i < len(outline); i += 2 {
			pad.Outline = append(pad.Outline, ctx.point(outline[i], outline[i+1]).Sub(at))
		}
	}

	ctx.Emit(pad, layer)
	return nil
}

// padDrill returns a round drill, or an oval slot along the pad's long axis.
func padDrill(holeR, holeLen float64, size gomath.Vec2) kicad.Drill {
	d := 2 * holeR
	if holeLen <= 0 {
		return kicad.Drill{Size: gomath.Vec2{X: d, Y: d}}
	}
	if size.X >= size.Y {
		return kicad.Drill{Size: gomath.Vec2{X: holeLen, Y: d}, Oval: true}
	}
	return kicad.Drill{Size: gomath.Vec2{X: d, Y: holeLen}, Oval: true}
}

// handleArc: ARC width layer [net] path ...
func handleArc(fields []string, ctx *Context) error {
	r := &fieldReader{fields: fields}
	width := ctx.mm(r.num(0))
	layer := ctx.layerFor(r.str(1))
	pi := r.spaced(2)
	if r.err != nil {
		return r.err
	}
	a, err := parseArcPath(fields[pi])
	if err != nil {
		return err
	}
	a.Start = ctx.point(a.Start.X, a.Start.Y)
	a.End = ctx.point(a.End.X, a.End.Y)
	a.Radius = ctx.mm(a.Radius)
	center, angle, err := a.center()
	if err != nil {
		return err
	}

	ctx.Emit(&kicad.Arc{
		Center: center,
		Start:  a.Start,
		Angle:  angle,
		Layer:  layer,
		Width:  width,
	}, layer)
	return nil
}

// handleCircle: CIRCLE cx cy r width layer ...
func handleCircle(fields []string, ctx *Context) error {
	r := &fieldReader{fields: fields}
	c := &kicad.Circle{
		Center: ctx.point(r.num(0), r.num(1)),
		Radius: ctx.mm(r.num(2)),
		Width:  ctx.mm(r.num(3)),
		Layer:  ctx.layerFor(r.str(4)),
	}
	if r.err != nil {
		return r.err
	}
	ctx.Emit(c, c.Layer)
	return nil
}

// handleRect: RECT x y w h layer id locked strokeWidth ...
func handleRect(fields []string, ctx *Context) error {
	r := &fieldReader{fields: fields}
	p0 := ctx.point(r.num(0), r.num(1))
	size := ctx.point(r.num(2), r.num(3))
	layer := ctx.layerFor(r.str(4))
	width := defaultRectWidth
	if sw := r.optNum(7, 0); sw > 0 {
		width = ctx.mm(sw)
	}
	if r.err != nil {
		return r.err
	}

	corners := []gomath.Vec2{
		p0,
		{X: p0.X + size.X, Y: p0.Y},
		p0.Add(size),
		{X: p0.X, Y: p0.Y + size.Y},
	}
	for i := range corners {
		ctx.Emit(&kicad.Line{
			Start: corners[i],
			End:   corners[(i+1)%len(corners)],
			Layer: layer,
			Width: width,
		}, layer)
	}
	return nil
}

// handleSolidRegion: SOLIDREGION layer [net] path kind ...
// On mask layers this is a solder-mask opening; "npth" regions are cut-outs.
func handleSolidRegion(fields []string, ctx *Context) error {
	r := &fieldReader{fields: fields}
	layer := ctx.layerFor(r.str(0))
	pi := r.spaced(1)
	if r.err != nil {
		return r.err
	}
	pts, _, err := parsePolyline(fields[pi])
	if err != nil {
		return err
	}
	for i := range pts {
		pts[i] = ctx.point(pts[i].X, pts[i].Y)
	}

	if r.str(pi+1) == "npth" {
		for i := range pts {
			ctx.Emit(&kicad.Line{
				Start: pts[i],
				End:   pts[(i+1)%len(pts)],
				Layer: kicad.LayerEdge,
				Width: defaultRectWidth,
			}, kicad.LayerEdge)
		}
		return nil
	}
	ctx.Emit(&kicad.Polygon{Points: pts, Layer: layer}, layer)
	return nil
}

// handleVia: VIA x y diameter [net] holeRadius ...
func handleVia(fields []string, ctx *Context) error {
	r := &fieldReader{fields: fields}
	at := ctx.point(r.num(0), r.num(1))
	d := ctx.mm(r.num(2))
	holeR := ctx.mm(r.firstNum(3))
	if r.err != nil {
		return r.err
	}
	ctx.Emit(&kicad.Pad{
		Type:   kicad.PadTHT,
		Shape:  kicad.ShapeCircle,
		At:     at,
		Size:   gomath.Vec2{X: d, Y: d},
		Drill:  kicad.Drill{Size: gomath.Vec2{X: 2 * holeR, Y: 2 * holeR}},
		Layers: kicad.LayersTHT,
	}, kicad.LayerFCu)
	return nil
}

// handleHole: HOLE x y radius ...
func handleHole(fields []string, ctx *Context) error {
	r := &fieldReader{fields: fields}
	at := ctx.point(r.num(0), r.num(1))
	d := 2 * ctx.mm(r.num(2))
	if r.err != nil {
		return r.err
	}
	ctx.Emit(&kicad.Pad{
		Type:   kicad.PadNPTH,
		Shape:  kicad.ShapeCircle,
		At:     at,
		Size:   gomath.Vec2{X: d, Y: d},
		Drill:  kicad.Drill{Size: gomath.Vec2{X: d, Y: d}},
		Layers: kicad.LayersTHT,
	}, kicad.LayerFCu)
	return nil
}

// handleText: TEXT type x y stroke rotation mirror layer [net] fontSize text ...
// Text never widens the extent.
func handleText(fields []string, ctx *Context) error {
	r := &fieldReader{fields: fields}
	at := ctx.point(r.num(1), r.num(2))
	stroke := ctx.mm(r.num(3))
	rotation := r.optNum(4, 0)
	layer := ctx.layerFor(r.str(6))
	size := ctx.mm(r.num(7))
	text := r.str(8)
	if r.err != nil {
		return r.err
	}
	if text == "" {
		return fmt.Errorf("%w: text", errMissingField)
	}

	t := kicad.NewText(kicad.TextUser, text, at, layer)
	t.Rotation = rotation
	t.Size = size
	t.Thickness = stroke
	t.Mirror = isBottom(layer)
	ctx.EmitDecoration(t)
	return nil
}

// handleSVGNode records the 3D model reference for the mesh converter.
func handleSVGNode(fields []string, ctx *Context) error {
	if len(fields) == 0 {
		return fmt.Errorf("%w: svg node body", errMissingField)
	}
	node, err := formats.ParseModelNode(fields[0])
	if err != nil {
		return err
	}
	ctx.Models = append(ctx.Models, node)
	return nil
}
