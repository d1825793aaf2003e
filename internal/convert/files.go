package convert

import (
	"io"
	"os"
	"path/filepath"
	"sync"
)

// pathLocks serialises check-then-write sequences per target path. Two
// components that resolve to the same footprint name must not interleave.
type pathLocks struct {
	mu    sync.Mutex
	paths map[string]*sync.Mutex
}

func newPathLocks() *pathLocks {
	return &pathLocks{paths: make(map[string]*sync.Mutex)}
}

// lock locks path and returns the unlock function.
func (l *pathLocks) lock(path string) func() {
	l.mu.Lock()
	m, ok := l.paths[path]
	if !ok {
		m = &sync.Mutex{}
		l.paths[path] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}

// writeFile writes path through a temporary file in the same directory.
// With SkipExisting set, an existing file is kept and written is false.
func (c *Converter) writeFile(path string, write func(io.Writer) error) (written bool, err error) {
	unlock := c.locks.lock(path)
	defer unlock()

	if c.opts.SkipExisting && fileExists(path) {
		return false, nil
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return false, err
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return false, err
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = tmp.Chmod(0644); err != nil {
		return false, err
	}
	if err = write(tmp); err != nil {
		return false, err
	}
	if err = tmp.Close(); err != nil {
		return false, err
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return false, err
	}
	return true, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
