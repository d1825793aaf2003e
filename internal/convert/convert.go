// Package convert drives the conversion of part numbers into footprint
// library files: payload lookup, footprint decoding, 3D model conversion
// and output.
package convert

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"

	"go.uber.org/zap"

	"github.com/Faultbox/lcsc2kicad/internal/config"
	"github.com/Faultbox/lcsc2kicad/internal/footprint"
	"github.com/Faultbox/lcsc2kicad/internal/metrics"
	"github.com/Faultbox/lcsc2kicad/internal/model3d"
	"github.com/Faultbox/lcsc2kicad/internal/source"
	"github.com/Faultbox/lcsc2kicad/pkg/formats"
	"github.com/Faultbox/lcsc2kicad/pkg/kicad"
	gomath "github.com/Faultbox/lcsc2kicad/pkg/math"
	"github.com/Faultbox/lcsc2kicad/pkg/units"
)

// ErrConversionAborted wraps structural payload errors. Only the affected
// component is dropped.
var ErrConversionAborted = errors.New("conversion aborted")

// File extensions of the written artifacts.
const (
	FootprintExt = ".kicad_mod"
	ModelExt     = ".wrl"
)

// Options configures a Converter.
type Options struct {
	Units             units.Config
	OutputDir         string
	FootprintLib      string
	ModelsDir         string // Inside the footprint library directory
	ModelBaseVariable string // "" references models by absolute path
	SkipExisting      bool
	Footprints        bool
	Models            bool
	FixParens         bool
}

// OptionsFromConfig maps the loaded configuration onto converter options.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Units:             cfg.Units,
		OutputDir:         cfg.Output.Dir,
		FootprintLib:      cfg.Library.FootprintLib,
		ModelsDir:         cfg.Library.ModelsDir,
		ModelBaseVariable: cfg.Library.ModelBaseVariable,
		SkipExisting:      cfg.Output.SkipExisting,
		Footprints:        cfg.Output.Footprints,
		Models:            cfg.Output.Models,
		FixParens:         cfg.Library.FixParens,
	}
}

// Result describes one converted part number.
type Result struct {
	ID            string
	Name          string // Footprint name, "" when footprints are disabled
	QualifiedName string // "<lib>:<name>"
	Datasheet     string
	FootprintPath string
	ModelPaths    []string
	Existing      bool           // Footprint was already on disk and kept
	Skipped       map[string]int // Skipped shape records by tag
	Err           error
}

// Converter converts part numbers. It is safe for concurrent use.
type Converter struct {
	src     source.Source
	opts    Options
	log     *zap.Logger
	metrics *metrics.Metrics
	locks   *pathLocks
}

// New returns a converter. A nil logger or metrics disables them.
func New(src source.Source, opts Options, log *zap.Logger, m *metrics.Metrics) *Converter {
	if log == nil {
		log = zap.NewNop()
	}
	if m == nil {
		m = metrics.New()
	}
	return &Converter{
		src:     src,
		opts:    opts,
		log:     log,
		metrics: m,
		locks:   newPathLocks(),
	}
}

// LibraryDir returns the directory footprints are written to.
func (c *Converter) LibraryDir() string {
	return filepath.Join(c.opts.OutputDir, c.opts.FootprintLib)
}

// ModelDir returns the directory 3D models are written to.
func (c *Converter) ModelDir() string {
	return filepath.Join(c.LibraryDir(), c.opts.ModelsDir)
}

// ConvertComponent converts one part number.
func (c *Converter) ConvertComponent(ctx context.Context, id string) (*Result, error) {
	timer := metrics.NewTimer()
	res, err := c.convert(ctx, id)

	status := metrics.StatusConverted
	switch {
	case err != nil:
		status = metrics.StatusFailed
		c.log.Error("component failed", zap.String("id", id), zap.Error(err))
	case res.Existing:
		status = metrics.StatusSkipped
	}
	c.metrics.RecordComponent(status, timer.Duration())
	if res != nil {
		c.metrics.RecordSkipped(res.Skipped)
	}
	return res, err
}

func (c *Converter) convert(ctx context.Context, id string) (*Result, error) {
	log := c.log.With(zap.String("id", id))
	res := &Result{ID: id}

	prod, err := c.src.Product(ctx, id)
	if err != nil {
		return res, fmt.Errorf("%s: resolve part: %w", id, err)
	}
	comp, err := c.src.Component(ctx, prod.Footprint)
	if err != nil {
		if errors.Is(err, formats.ErrNoOrigin) || errors.Is(err, formats.ErrInvalidPayload) {
			err = fmt.Errorf("%w: %w", ErrConversionAborted, err)
		}
		return res, fmt.Errorf("%s: footprint %s: %w", id, prod.Footprint, err)
	}

	fp := footprint.Build(comp, footprint.Options{
		Units:     c.opts.Units,
		FixParens: c.opts.FixParens,
		Logger:    log,
	})
	res.Datasheet = fp.Datasheet
	res.Skipped = fp.Skipped
	if !c.opts.Footprints {
		return res, nil
	}

	res.Name = fp.Name
	res.QualifiedName = kicad.QualifiedName(c.opts.FootprintLib, fp.Name)
	res.FootprintPath = filepath.Join(c.LibraryDir(), fp.Name+FootprintExt)

	if c.opts.SkipExisting && fileExists(res.FootprintPath) {
		log.Info("footprint already exists, skipping", zap.String("path", res.FootprintPath))
		res.Existing = true
		return res, nil
	}

	if c.opts.Models {
		origin := gomath.Vec2{X: comp.Header.OriginX, Y: comp.Header.OriginY}
		for i, node := range fp.Models {
			name := fp.Name
			if i > 0 {
				name += "_" + strconv.Itoa(i+1)
			}
			path, model, err := c.convertModel(ctx, node, origin, name, log)
			if err != nil {
				return res, fmt.Errorf("%s: %w", id, err)
			}
			if path == "" {
				continue
			}
			res.ModelPaths = append(res.ModelPaths, path)
			fp.Footprint.Models = append(fp.Footprint.Models, model)
		}
	}

	written, err := c.writeFile(res.FootprintPath, fp.Footprint.Write)
	if err != nil {
		return res, fmt.Errorf("%s: write footprint: %w", id, err)
	}
	res.Existing = !written
	log.Info("footprint written",
		zap.String("name", res.QualifiedName),
		zap.String("path", res.FootprintPath),
		zap.Int("items", len(fp.Footprint.Items)),
		zap.Int("models", len(res.ModelPaths)))
	return res, nil
}

// convertModel converts and writes one mesh. A missing mesh is logged and
// reported as an empty path; a structurally broken one aborts the component.
func (c *Converter) convertModel(ctx context.Context, node formats.ModelNode, origin gomath.Vec2, name string, log *zap.Logger) (string, kicad.Model, error) {
	text, err := c.src.Mesh(ctx, node.UUID)
	if errors.Is(err, source.ErrNotFound) {
		log.Warn("no 3D model found", zap.String("mesh", node.UUID))
		c.metrics.RecordModel(metrics.StatusSkipped)
		return "", kicad.Model{}, nil
	}
	if err != nil {
		c.metrics.RecordModel(metrics.StatusFailed)
		return "", kicad.Model{}, fmt.Errorf("load mesh %s: %w", node.UUID, err)
	}

	scene, err := model3d.Convert(text, node, origin, model3d.Options{Units: c.opts.Units, Logger: log})
	if err != nil {
		c.metrics.RecordModel(metrics.StatusFailed)
		return "", kicad.Model{}, fmt.Errorf("%w: %w", ErrConversionAborted, err)
	}

	path := filepath.Join(c.ModelDir(), name+ModelExt)
	if _, err := c.writeFile(path, scene.Write); err != nil {
		c.metrics.RecordModel(metrics.StatusFailed)
		return "", kicad.Model{}, fmt.Errorf("write model: %w", err)
	}
	c.metrics.RecordModel(metrics.StatusConverted)

	ref, err := c.modelReference(path, name)
	if err != nil {
		return "", kicad.Model{}, err
	}
	log.Info("3D model written", zap.String("path", path), zap.String("ref", ref))
	return path, scene.Placement.Model(ref), nil
}

// modelReference returns how the footprint points at its model: through the
// configured path variable, or by absolute path.
func (c *Converter) modelReference(path, name string) (string, error) {
	if c.opts.ModelBaseVariable != "" {
		return "$(" + c.opts.ModelBaseVariable + ")/" + name + ModelExt, nil
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("model path: %w", err)
	}
	return filepath.ToSlash(abs), nil
}
