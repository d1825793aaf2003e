package footprint

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/lcsc2kicad/pkg/formats"
)

// Record level errors. Both are recovered by Decode.
var (
	ErrRecordSkipped = errors.New("shape record skipped")
	ErrUnknownTag    = errors.New("unknown primitive tag")
)

// Handler turns the fields of one record into zero or more primitives.
type Handler func(fields []string, ctx *Context) error

// Table maps primitive tags to handlers.
var Table = map[string]Handler{
	"TRACK":       handleTrack,
	"PAD":         handlePad,
	"ARC":         handleArc,
	"CIRCLE":      handleCircle,
	"RECT":        handleRect,
	"SOLIDREGION": handleSolidRegion,
	"VIA":         handleVia,
	"HOLE":        handleHole,
	"TEXT":        handleText,
	"SVGNODE":     handleSVGNode,
}

// Dispatch runs the handler for rec. Errors wrap ErrRecordSkipped.
func Dispatch(rec formats.ShapeRecord, ctx *Context) error {
	h, ok := Table[rec.Tag]
	if !ok {
		return fmt.Errorf("%w: %w: %s", ErrRecordSkipped, ErrUnknownTag, rec.Tag)
	}
	if err := h(rec.Fields, ctx); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrRecordSkipped, rec.Tag, err)
	}
	return nil
}

// Decode dispatches every record, logging and counting the ones skipped.
func Decode(records []formats.ShapeRecord, ctx *Context) {
	for _, rec := range records {
		ctx.Log.Debug("shape record", zap.String("tag", rec.Tag), zap.Strings("fields", rec.Fields))
		if err := Dispatch(rec, ctx); err != nil {
			ctx.Skipped[rec.Tag]++
			ctx.Log.Warn("skipping shape record",
				zap.Int("line", rec.Line),
				zap.String("tag", rec.Tag),
				zap.Error(err))
		}
	}
}
