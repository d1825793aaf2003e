package footprint

import (
	"go.uber.org/zap"

	"github.com/Faultbox/lcsc2kicad/pkg/kicad"
)

// layerMap maps EasyEDA layer ids to KiCad layer names.
var layerMap = map[string]string{
	"1":   kicad.LayerFCu,
	"2":   kicad.LayerBCu,
	"3":   kicad.LayerFSilkS,
	"4":   kicad.LayerBSilkS,
	"5":   kicad.LayerFPaste,
	"6":   kicad.LayerBPaste,
	"7":   kicad.LayerFMask,
	"8":   kicad.LayerBMask,
	"10":  kicad.LayerEdge,
	"11":  kicad.LayerEdge,
	"12":  kicad.LayerCmts,
	"13":  kicad.LayerFFab,
	"14":  kicad.LayerBFab,
	"15":  kicad.LayerDwgs,
	"99":  kicad.LayerFCrtYd,
	"100": kicad.LayerFFab,
	"101": kicad.LayerFSilkS,
}

// layerFor resolves a layer id, falling back to F.Fab.
func (c *Context) layerFor(id string) string {
	if l, ok := layerMap[id]; ok {
		return l
	}
	c.Log.Warn("unknown layer, using F.Fab", zap.String("layer", id))
	return kicad.LayerFFab
}

// contributesExtent reports whether primitives on layer widen the bounding box.
func contributesExtent(layer string) bool {
	return layer != kicad.LayerFCrtYd
}

// isBottom reports whether layer is on the back side.
func isBottom(layer string) bool {
	switch layer {
	case kicad.LayerBCu, kicad.LayerBSilkS, kicad.LayerBPaste, kicad.LayerBMask, kicad.LayerBFab:
		return true
	}
	return false
}
