// Package kicad models KiCad footprint files and writes them in the
// s-expression module format.
package kicad

import (
	gomath "github.com/Faultbox/lcsc2kicad/pkg/math"
)

// Common layer names.
const (
	LayerFCu     = "F.Cu"
	LayerBCu     = "B.Cu"
	LayerFSilkS  = "F.SilkS"
	LayerBSilkS  = "B.SilkS"
	LayerFPaste  = "F.Paste"
	LayerBPaste  = "B.Paste"
	LayerFMask   = "F.Mask"
	LayerBMask   = "B.Mask"
	LayerEdge    = "Edge.Cuts"
	LayerCmts    = "Cmts.User"
	LayerFFab    = "F.Fab"
	LayerBFab    = "B.Fab"
	LayerDwgs    = "Dwgs.User"
	LayerFCrtYd  = "F.CrtYd"
	LayerAllCu   = "*.Cu"
	LayerAllMask = "*.Mask"
)

// Pad layer sets.
var (
	LayersSMDTop    = []string{LayerFCu, LayerFPaste, LayerFMask}
	LayersSMDBottom = []string{LayerBCu, LayerBPaste, LayerBMask}
	LayersTHT       = []string{LayerAllCu, LayerAllMask}
)

// Item is a footprint primitive.
type Item interface {
	// Translate moves the item by (dx, dy) millimetres.
	Translate(dx, dy float64)
	// Bounds returns the item's extent.
	Bounds() gomath.Box2
	// kind orders items in the output file.
	kind() int
	write(w *writer)
}

// Item kinds in output order.
const (
	kindText = iota
	kindArc
	kindCircle
	kindLine
	kindPoly
	kindPad
)

// Footprint is a KiCad footprint.
type Footprint struct {
	Name        string
	Description string
	Tags        string
	// Annotations are the reference, value and user labels, written first.
	Annotations []*Text
	Items       []Item
	Models      []Model
}

// NewFootprint returns an empty footprint with the standard description.
func NewFootprint(name string) *Footprint {
	return &Footprint{
		Name:        name,
		Description: name + " footprint",
		Tags:        name + " footprint",
	}
}

// Add appends items.
func (f *Footprint) Add(items ...Item) {
	f.Items = append(f.Items, items...)
}

// Translate moves every item and annotation by (dx, dy).
func (f *Footprint) Translate(dx, dy float64) {
	for _, it := range f.Items {
		it.Translate(dx, dy)
	}
	for _, a := range f.Annotations {
		a.Translate(dx, dy)
	}
}

// QualifiedName returns "<lib>:<name>".
func QualifiedName(lib, name string) string {
	return lib + ":" + name
}
