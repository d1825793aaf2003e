// Package vrml writes VRML 2.0 scenes in the layout KiCad footprint
// libraries expect for .wrl models.
package vrml

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	gomath "github.com/Faultbox/lcsc2kicad/pkg/math"
)

// Header is the fixed scene banner and attribution comment.
const Header = `#VRML V2.0 utf8
#created by JLC2KiCad_lib using the JLCPCB library
#for more info see https://github.com/TousstNicolas/JLC2KICAD_lib
`

// Appearance is the material part of a shape. Values are emitted verbatim.
type Appearance struct {
	Diffuse      []string
	Specular     []string
	Transparency string
}

// Shape is one indexed face set.
type Shape struct {
	Appearance Appearance
	Points     []gomath.Vec3
	// Rings are closed index rings, each terminated by -1.
	Rings [][]int
}

// Write serialises the header followed by every shape.
func Write(out io.Writer, shapes []Shape) error {
	w := bufio.NewWriter(out)
	if _, err := w.WriteString(Header); err != nil {
		return err
	}
	for _, s := range shapes {
		if _, err := w.WriteString(s.String()); err != nil {
			return err
		}
	}
	return w.Flush()
}

// String renders the shape block.
func (s Shape) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "\nShape{\n")
	fmt.Fprintf(&sb, "\tappearance Appearance {\n")
	fmt.Fprintf(&sb, "\t\tmaterial  Material \t{ \n")
	fmt.Fprintf(&sb, "\t\t\tdiffuseColor %s \n", strings.Join(s.Appearance.Diffuse, " "))
	fmt.Fprintf(&sb, "\t\t\tspecularColor %s\n", strings.Join(s.Appearance.Specular, " "))
	fmt.Fprintf(&sb, "\t\t\tambientIntensity 0.2\n")
	fmt.Fprintf(&sb, "\t\t\ttransparency %s\n", s.Appearance.Transparency)
	fmt.Fprintf(&sb, "\t\t\tshininess 0.5\n")
	fmt.Fprintf(&sb, "\t\t}\n")
	fmt.Fprintf(&sb, "\t}\n")
	fmt.Fprintf(&sb, "\tgeometry IndexedFaceSet {\n")
	fmt.Fprintf(&sb, "\t\tccw TRUE \n")
	fmt.Fprintf(&sb, "\t\tsolid FALSE\n")
	fmt.Fprintf(&sb, "\t\tcoord DEF co Coordinate {\n")
	fmt.Fprintf(&sb, "\t\t\tpoint [\n")
	fmt.Fprintf(&sb, "\t\t\t\t%s\n", points(s.Points))
	fmt.Fprintf(&sb, "\t\t\t]\n")
	fmt.Fprintf(&sb, "\t\t}\n")
	fmt.Fprintf(&sb, "\t\tcoordIndex [\n")
	fmt.Fprintf(&sb, "\t\t\t%s\n", rings(s.Rings))
	fmt.Fprintf(&sb, "\t\t]\n")
	fmt.Fprintf(&sb, "\t}\n")
	fmt.Fprintf(&sb, "}")
	return sb.String()
}

func points(pts []gomath.Vec3) string {
	parts := make([]string, len(pts))
	for i, p := range pts {
		parts[i] = FormatFloat(p.X) + " " + FormatFloat(p.Y) + " " + FormatFloat(p.Z)
	}
	return strings.Join(parts, ", ")
}

// rings renders "a,b,c,-1," for every ring, concatenated.
func rings(rs [][]int) string {
	var sb strings.Builder
	for _, r := range rs {
		for _, idx := range r {
			sb.WriteString(strconv.Itoa(idx))
			sb.WriteByte(',')
		}
	}
	return sb.String()
}

// FormatFloat renders v as the shortest round-trip decimal, keeping a
// trailing ".0" for integral values and switching to exponent form outside
// [1e-4, 1e16), the convention existing .wrl libraries were written with.
func FormatFloat(v float64) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	if v != 0 {
		exp := int(math.Floor(math.Log10(math.Abs(v))))
		if exp < -4 || exp >= 16 {
			return expForm(v)
		}
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".") {
		s += ".0"
	}
	return s
}

// expForm renders v as "1.5e-05" / "2e+16".
func expForm(v float64) string {
	s := strconv.FormatFloat(v, 'e', -1, 64)
	mant, exp, _ := strings.Cut(s, "e")
	sign := exp[0]
	digits := strings.TrimLeft(exp[1:], "0")
	if len(digits) < 2 {
		digits = strings.Repeat("0", 2-len(digits)) + digits
	}
	return mant + "e" + string(sign) + digits
}
