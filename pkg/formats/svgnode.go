package formats

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// ErrInvalidModelNode is returned for SVGNODE records that do not describe a 3D model.
var ErrInvalidModelNode = errors.New("invalid 3D model node")

// ModelNode is the 3D model reference carried by an SVGNODE record.
type ModelNode struct {
	UUID     string     // Mesh identifier, distinct from the footprint uuid
	Title    string     // Model title
	AnchorX  float64    // Anchor in canvas units
	AnchorY  float64    //
	AnchorZ  float64    //
	Rotation [3]float64 // Rotation in degrees per axis, as published
}

type modelNodePayload struct {
	Attrs struct {
		UUID     string  `json:"uuid"`
		Title    string  `json:"title"`
		Origin   string  `json:"c_origin"`
		Z        *Number `json:"z"`
		Rotation string  `json:"c_rotation"`
	} `json:"attrs"`
}

// ParseModelNode decodes the JSON body of an SVGNODE record.
func ParseModelNode(body string) (ModelNode, error) {
	var p modelNodePayload
	if err := json.Unmarshal([]byte(body), &p); err != nil {
		return ModelNode{}, fmt.Errorf("%w: %v", ErrInvalidModelNode, err)
	}
	a := p.Attrs
	if a.UUID == "" {
		return ModelNode{}, fmt.Errorf("%w: no uuid", ErrInvalidModelNode)
	}

	origin, err := splitFloats(a.Origin, 2)
	if err != nil {
		return ModelNode{}, fmt.Errorf("%w: c_origin: %v", ErrInvalidModelNode, err)
	}
	node := ModelNode{
		UUID:    a.UUID,
		Title:   a.Title,
		AnchorX: origin[0],
		AnchorY: origin[1],
	}
	if a.Z != nil {
		node.AnchorZ = float64(*a.Z)
	}
	if a.Rotation != "" {
		rot, err := splitFloats(a.Rotation, 3)
		if err != nil {
			return ModelNode{}, fmt.Errorf("%w: c_rotation: %v", ErrInvalidModelNode, err)
		}
		copy(node.Rotation[:], rot)
	}
	return node, nil
}

// splitFloats parses exactly n comma separated numbers.
func splitFloats(s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("want %d values, got %q", n, s)
	}
	out := make([]float64, n)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
