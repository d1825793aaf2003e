package footprint

import (
	"go.uber.org/zap"

	"github.com/Faultbox/lcsc2kicad/pkg/formats"
	gomath "github.com/Faultbox/lcsc2kicad/pkg/math"
	"github.com/Faultbox/lcsc2kicad/pkg/units"
)

// Options configures Build.
type Options struct {
	Units     units.Config
	FixParens bool // Also replace ")" in names, see formats.FootprintName
	Logger    *zap.Logger
}

// Result is a decoded and normalized footprint.
type Result struct {
	*Context
	Name      string
	Datasheet string
}

// Build decodes a component payload into a normalized footprint.
func Build(comp *formats.Component, opts Options) *Result {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	name := formats.FootprintName(comp.Header.Title, opts.FixParens)
	if comp.Header.Title == "" {
		log.Warn("component has no title, using default name", zap.String("name", name))
	}
	if comp.Header.Datasheet == "" {
		log.Warn("component has no datasheet link", zap.String("name", name))
	}

	origin := gomath.Vec2{X: comp.Header.OriginX, Y: comp.Header.OriginY}
	ctx := NewContext(name, origin, opts.Units, log.With(zap.String("footprint", name)))
	Decode(formats.DecodeRecords(comp.Shape), ctx)
	Normalize(ctx)

	return &Result{
		Context:   ctx,
		Name:      name,
		Datasheet: comp.Header.Datasheet,
	}
}
