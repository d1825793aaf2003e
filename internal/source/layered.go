package source

import (
	"context"
	"errors"
	"fmt"
	"path"
	"sync"

	"github.com/Faultbox/lcsc2kicad/pkg/formats"
)

// Layered searches several payload directories and caches what it reads, so
// parts sharing a footprint or a model are read once per run.
// Directories are searched in reverse order (last added = highest priority).
type Layered struct {
	dirs  []*Dir
	cache *Cache
	mu    sync.RWMutex
}

// NewLayered returns a source over roots, the last one taking priority.
func NewLayered(roots ...string) *Layered {
	l := &Layered{cache: NewCache()}
	for _, r := range roots {
		l.AddDir(r)
	}
	return l
}

// AddDir adds a payload directory with the highest priority.
func (l *Layered) AddDir(root string) {
	l.mu.Lock()
	l.dirs = append(l.dirs, NewDir(root))
	l.mu.Unlock()
}

// Cache returns the payload cache.
func (l *Layered) Cache() *Cache {
	return l.cache
}

func (l *Layered) Product(ctx context.Context, id string) (*formats.Product, error) {
	data, err := l.load(ctx, ProductsDir, id+".json")
	if err != nil {
		return nil, err
	}
	return decodeProduct(id, data)
}

func (l *Layered) Component(ctx context.Context, uuid string) (*formats.Component, error) {
	data, err := l.load(ctx, ComponentsDir, uuid+".json")
	if err != nil {
		return nil, err
	}
	return decodeComponent(uuid, data)
}

func (l *Layered) Mesh(ctx context.Context, uuid string) (string, error) {
	data, err := l.load(ctx, ModelsDir, uuid+".obj")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// load returns the first payload found, checking the cache first.
func (l *Layered) load(ctx context.Context, dir, name string) ([]byte, error) {
	key := path.Join(dir, name)
	if data, ok := l.cache.Get(key); ok {
		return data, nil
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	for i := len(l.dirs) - 1; i >= 0; i-- {
		data, err := l.dirs[i].read(ctx, dir, name)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		l.cache.Set(key, data)
		return data, nil
	}
	return nil, fmt.Errorf("%w: %s in %d directories", ErrNotFound, key, len(l.dirs))
}

// Cache is an in-memory cache of raw payloads.
type Cache struct {
	data map[string][]byte
	mu   sync.Mutex

	// Stats
	hits   int
	misses int
}

// NewCache creates a new cache.
func NewCache() *Cache {
	return &Cache{
		data: make(map[string][]byte),
	}
}

// Get retrieves an item from cache.
func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, ok := c.data[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return data, ok
}

// Set stores an item in cache.
func (c *Cache) Set(key string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = data
}

// Stats returns cache statistics.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}
