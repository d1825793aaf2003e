// Package units converts between the unit systems found in EasyEDA payloads.
//
// Three linear units are involved: the EasyEDA canvas unit (10 mil), the KiCad
// footprint unit (mm) and the unit of the embedded OBJ mesh. The VRML output
// sits one more conversion away (the mesh unit divided by 2.54).
package units

import (
	"strconv"
	"strings"
)

// Config holds every ratio the pipeline uses. Zero values are not valid;
// start from Default.
type Config struct {
	// SourcePerMM is the number of EasyEDA canvas units in one millimetre.
	SourcePerMM float64 `yaml:"source_per_mm"`
	// MeshRatio divides OBJ coordinates into VRML coordinates.
	MeshRatio float64 `yaml:"mesh_ratio"`
	// AnchorDivisor converts an anchor offset in canvas units to VRML units.
	AnchorDivisor float64 `yaml:"anchor_divisor"`
	// CentroidDivisor scales the mesh centroid into the model offset.
	CentroidDivisor float64 `yaml:"centroid_divisor"`
	// InchDivisor converts millimetres into inches for the Z offset.
	InchDivisor float64 `yaml:"inch_divisor"`
}

// Default returns the ratios used by the EasyEDA library exports.
func Default() Config {
	return Config{
		SourcePerMM:     3.937,
		MeshRatio:       2.54,
		AnchorDivisor:   100,
		CentroidDivisor: 10,
		InchDivisor:     25.4,
	}
}

// ToMM converts a canvas value to millimetres.
func (c Config) ToMM(v float64) float64 {
	return v / c.SourcePerMM
}

// PointToMM converts a canvas point to millimetres.
func (c Config) PointToMM(x, y float64) (float64, float64) {
	return c.ToMM(x), c.ToMM(y)
}

// MeshToTarget converts an OBJ coordinate into a VRML coordinate.
func (c Config) MeshToTarget(v float64) float64 {
	return v / c.MeshRatio
}

// TargetToMesh is the inverse of MeshToTarget.
func (c Config) TargetToMesh(v float64) float64 {
	return v * c.MeshRatio
}

// MMToInch converts millimetres to inches.
func (c Config) MMToInch(v float64) float64 {
	return v / c.InchDivisor
}

// FlipY mirrors a Y coordinate. Footprint space grows downwards, mesh space upwards.
func FlipY(y float64) float64 {
	return -y
}

// ParseFloat parses a numeric record field, tolerating surrounding blanks.
func ParseFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

// MilToMM converts a canvas value using the default ratio.
func MilToMM(v float64) float64 {
	return Default().ToMM(v)
}
