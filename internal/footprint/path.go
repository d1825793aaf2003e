package footprint

import (
	"errors"
	"fmt"
	"math"
	"strings"

	gomath "github.com/Faultbox/lcsc2kicad/pkg/math"
	"github.com/Faultbox/lcsc2kicad/pkg/units"
)

var (
	errBadPath       = errors.New("malformed path")
	errDegenerateArc = errors.New("degenerate arc")
)

// pathTokens splits an SVG path into commands and numbers.
func pathTokens(path string) []string {
	var b strings.Builder
	for _, r := range path {
		switch {
		case r == ',':
			b.WriteByte(' ')
		case strings.ContainsRune("MLAZmlaz", r):
			b.WriteByte(' ')
			b.WriteRune(r)
			b.WriteByte(' ')
		default:
			b.WriteRune(r)
		}
	}
	return strings.Fields(b.String())
}

// parseNumbers parses a space separated list of numbers.
func parseNumbers(s string) ([]float64, error) {
	toks := strings.Fields(strings.ReplaceAll(s, ",", " "))
	out := make([]float64, 0, len(toks))
	for _, t := range toks {
		v, err := units.ParseFloat(t)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", errBadPath, t)
		}
		out = append(out, v)
	}
	return out, nil
}

// parsePolyline reads an absolute "M x y L x y ... Z" path. Closed paths
// report closed=true; the closing point is not repeated.
func parsePolyline(path string) (pts []gomath.Vec2, closed bool, err error) {
	var nums []float64
	for _, tok := range pathTokens(path) {
		switch tok {
		case "M", "L":
		case "Z", "z":
			closed = true
		default:
			v, perr := units.ParseFloat(tok)
			if perr != nil {
				return nil, false, fmt.Errorf("%w: unsupported token %q", errBadPath, tok)
			}
			nums = append(nums, v)
		}
	}
	if len(nums)%2 != 0 || len(nums) < 4 {
		return nil, false, fmt.Errorf("%w: %d coordinates", errBadPath, len(nums))
	}
	for i := 0; i < len(nums); i += 2 {
		pts = append(pts, gomath.Vec2{X: nums[i], Y: nums[i+1]})
	}
	return pts, closed, nil
}

// svgArc is an absolute "M x y A rx ry rot large sweep x y" path.
type svgArc struct {
	Start, End gomath.Vec2
	Radius     float64
	Large      bool
	Sweep      bool
}

func parseArcPath(path string) (svgArc, error) {
	toks := pathTokens(path)
	if len(toks) != 11 || toks[0] != "M" || toks[3] != "A" {
		return svgArc{}, fmt.Errorf("%w: %q", errBadPath, path)
	}
	nums := make([]float64, 0, 9)
	for _, t := range append(toks[1:3:3], toks[4:]...) {
		v, err := units.ParseFloat(t)
		if err != nil {
			return svgArc{}, fmt.Errorf("%w: %q", errBadPath, t)
		}
		nums = append(nums, v)
	}
	return svgArc{
		Start:  gomath.Vec2{X: nums[0], Y: nums[1]},
		Radius: nums[2],
		Large:  nums[5] != 0,
		Sweep:  nums[6] != 0,
		End:    gomath.Vec2{X: nums[7], Y: nums[8]},
	}, nil
}

// center converts the endpoint form to a centre and a signed sweep in
// degrees. Positive sweeps turn clockwise on the Y-down canvas. An
// undersized radius is scaled up, as SVG renderers do.
func (a svgArc) center() (gomath.Vec2, float64, error) {
	half := a.Start.Sub(a.End).Scale(0.5)
	d2 := half.X*half.X + half.Y*half.Y
	if d2 == 0 {
		return gomath.Vec2{}, 0, errDegenerateArc
	}
	r := math.Abs(a.Radius)
	if r*r < d2 {
		r = math.Sqrt(d2)
	}

	coef := math.Sqrt(math.Max(0, (r*r-d2)/d2))
	if a.Large == a.Sweep {
		coef = -coef
	}
	mid := a.Start.Add(a.End).Scale(0.5)
	c := gomath.Vec2{X: coef*half.Y + mid.X, Y: -coef*half.X + mid.Y}

	t1 := a.Start.Sub(c).Angle()
	t2 := a.End.Sub(c).Angle()
	dt := t2 - t1
	if a.Sweep && dt < 0 {
		dt += 2 * math.Pi
	} else if !a.Sweep && dt > 0 {
		dt -= 2 * math.Pi
	}
	return c, dt * 180 / math.Pi, nil
}
