package formats

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	gomath "github.com/Faultbox/lcsc2kicad/pkg/math"
)

// Mesh text errors.
var (
	ErrNoVertices      = errors.New("mesh has no vertices")
	ErrInvalidVertex   = errors.New("invalid mesh vertex")
	ErrInvalidFace     = errors.New("invalid mesh face")
	ErrFaceIndex       = errors.New("mesh face index out of range")
	ErrUnknownMaterial = errors.New("mesh face group references unknown material")
)

// vertexPrecision is the number of decimals kept after unit conversion.
const vertexPrecision = 4

// Material is one newmtl...endmtl block. Colors keep the published tokens so
// they can be re-emitted verbatim.
type Material struct {
	Name         string
	Ambient      []string // Ka
	Diffuse      []string // Kd
	Specular     []string // Ks
	Transparency string   // d
}

// Default material values for blocks that omit a line.
var (
	defaultDiffuse      = []string{"0.8", "0.8", "0.8"}
	defaultSpecular     = []string{"0", "0", "0"}
	defaultTransparency = "0"
)

// FaceGroup is a run of faces sharing one material.
type FaceGroup struct {
	Material string
	Faces    [][]int // 1-based global vertex indices
}

// Mesh is a decoded mesh text.
type Mesh struct {
	Materials map[string]*Material
	Vertices  []gomath.Vec3 // Already divided by the mesh ratio and rounded
	Groups    []FaceGroup
}

// ParseMesh decodes the mesh text. Vertex coordinates are divided by ratio
// and rounded to four decimals at parse time.
func ParseMesh(text string, ratio float64) (*Mesh, error) {
	m := &Mesh{Materials: make(map[string]*Material)}
	lines := splitLines(text)

	// Materials and vertices may appear anywhere, faces reference both.
	var cur *Material
	for n, line := range lines {
		switch {
		case strings.HasPrefix(line, "newmtl"):
			f := strings.Fields(line)
			name := ""
			if len(f) > 1 {
				name = f[1]
			}
			cur = &Material{
				Name:         name,
				Diffuse:      defaultDiffuse,
				Specular:     defaultSpecular,
				Transparency: defaultTransparency,
			}
			m.Materials[name] = cur
		case strings.HasPrefix(line, "endmtl"):
			cur = nil
		case cur != nil:
			parseMaterialLine(cur, line)
		case strings.HasPrefix(line, "v "):
			v, err := parseVertex(line, ratio)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", n+1, err)
			}
			m.Vertices = append(m.Vertices, v)
		}
	}
	if len(m.Vertices) == 0 {
		return nil, ErrNoVertices
	}

	group := -1
	for n, line := range lines {
		switch {
		case strings.HasPrefix(line, "usemtl"):
			name := strings.ReplaceAll(strings.TrimPrefix(line, "usemtl"), " ", "")
			if _, ok := m.Materials[name]; !ok {
				return nil, fmt.Errorf("%w: %q", ErrUnknownMaterial, name)
			}
			m.Groups = append(m.Groups, FaceGroup{Material: name})
			group = len(m.Groups) - 1
		case group >= 0 && strings.HasPrefix(line, "f "):
			face, err := parseFace(line, len(m.Vertices))
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", n+1, err)
			}
			m.Groups[group].Faces = append(m.Groups[group].Faces, face)
		}
	}

	return m, nil
}

// Bounds returns the extent of all vertices.
func (m *Mesh) Bounds() gomath.Box3 {
	b := gomath.NewBox3()
	for _, v := range m.Vertices {
		b.Observe(v)
	}
	return b
}

// LowestZ returns the lowest vertex Z, never above zero.
func (m *Mesh) LowestZ() float64 {
	lowest := 0.0
	for _, v := range m.Vertices {
		lowest = min(lowest, v.Z)
	}
	return lowest
}

func parseMaterialLine(mat *Material, line string) {
	f := strings.Fields(line)
	if len(f) == 0 {
		return
	}
	switch {
	case strings.HasPrefix(line, "Ka"):
		mat.Ambient = f[1:]
	case strings.HasPrefix(line, "Kd"):
		mat.Diffuse = f[1:]
	case strings.HasPrefix(line, "Ks"):
		mat.Specular = f[1:]
	case line[0] == 'd' && len(f) > 1:
		mat.Transparency = f[1]
	}
}

func parseVertex(line string, ratio float64) (gomath.Vec3, error) {
	f := strings.Fields(line)[1:]
	if len(f) < 3 {
		return gomath.Vec3{}, fmt.Errorf("%w: %q", ErrInvalidVertex, line)
	}
	var c [3]float64
	for i := range c {
		v, err := strconv.ParseFloat(f[i], 64)
		if err != nil {
			return gomath.Vec3{}, fmt.Errorf("%w: %q", ErrInvalidVertex, line)
		}
		c[i] = roundTo(v/ratio, vertexPrecision)
	}
	return gomath.Vec3{X: c[0], Y: c[1], Z: c[2]}, nil
}

// parseFace reads "f a b c" where each token is vertex[/texture[/normal]].
// Only the vertex index is kept. Negative indices count back from the end.
func parseFace(line string, nverts int) ([]int, error) {
	toks := strings.Fields(line)[1:]
	if len(toks) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFace, line)
	}
	face := make([]int, 0, len(toks))
	for _, tok := range toks {
		head, _, _ := strings.Cut(tok, "/")
		idx, err := strconv.Atoi(head)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidFace, tok)
		}
		if idx < 0 {
			idx = nverts + 1 + idx
		}
		if idx < 1 || idx > nverts {
			return nil, fmt.Errorf("%w: %d of %d", ErrFaceIndex, idx, nverts)
		}
		face = append(face, idx)
	}
	return face, nil
}

func splitLines(text string) []string {
	var lines []string
	sc := bufio.NewScanner(strings.NewReader(text))
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r\t "))
	}
	return lines
}

// roundTo rounds the exact binary value half-to-even. Scaling by a power of
// ten first can itself round onto a half and flip the result.
func roundTo(v float64, decimals int) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', decimals, 64), 64)
	if err != nil {
		return v
	}
	return r
}
