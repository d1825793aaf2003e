// Package source loads component payloads. The converter only sees the
// Source interface; Dir reads payloads saved to disk.
package source

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Faultbox/lcsc2kicad/pkg/formats"
)

// ErrNotFound is returned when a payload is not available.
var ErrNotFound = errors.New("payload not found")

// Source resolves part numbers and loads their payloads.
type Source interface {
	// Product lists the component uuids of a part number.
	Product(ctx context.Context, id string) (*formats.Product, error)
	// Component loads a footprint component.
	Component(ctx context.Context, uuid string) (*formats.Component, error)
	// Mesh loads the mesh text of a 3D model.
	Mesh(ctx context.Context, uuid string) (string, error)
}

// Directory layout under Dir.Root.
const (
	ProductsDir   = "products"
	ComponentsDir = "components"
	ModelsDir     = "3dmodel"
)

// Dir reads payloads from a directory tree:
//
//	products/<id>.json
//	components/<uuid>.json
//	3dmodel/<uuid>.obj
type Dir struct {
	Root string
}

// NewDir returns a Source rooted at root.
func NewDir(root string) *Dir {
	return &Dir{Root: root}
}

func (d *Dir) Product(ctx context.Context, id string) (*formats.Product, error) {
	data, err := d.read(ctx, ProductsDir, id+".json")
	if err != nil {
		return nil, err
	}
	return decodeProduct(id, data)
}

func (d *Dir) Component(ctx context.Context, uuid string) (*formats.Component, error) {
	data, err := d.read(ctx, ComponentsDir, uuid+".json")
	if err != nil {
		return nil, err
	}
	return decodeComponent(uuid, data)
}

func (d *Dir) Mesh(ctx context.Context, uuid string) (string, error) {
	data, err := d.read(ctx, ModelsDir, uuid+".obj")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func decodeProduct(id string, data []byte) (*formats.Product, error) {
	p, err := formats.ParseProduct(data)
	if err != nil {
		return nil, fmt.Errorf("product %s: %w", id, err)
	}
	return p, nil
}

func decodeComponent(uuid string, data []byte) (*formats.Component, error) {
	c, err := formats.ParseComponent(data)
	if err != nil {
		return nil, fmt.Errorf("component %s: %w", uuid, err)
	}
	if c.UUID == "" {
		c.UUID = uuid
	}
	return c, nil
}

func (d *Dir) read(ctx context.Context, dir, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if name != filepath.Base(name) {
		return nil, fmt.Errorf("%w: invalid name %q", ErrNotFound, name)
	}
	path := filepath.Join(d.Root, dir, name)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}
