package kicad

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"
)

// writer is an indenting line writer.
type writer struct {
	w      *bufio.Writer
	indent int
	err    error
}

func (w *writer) linef(format string, args ...any) {
	if w.err != nil {
		return
	}
	_, w.err = fmt.Fprintf(w.w, "%s%s\n", strings.Repeat("  ", w.indent), fmt.Sprintf(format, args...))
}

// Write serialises the footprint in the KiCad module format.
func (f *Footprint) Write(out io.Writer) error {
	w := &writer{w: bufio.NewWriter(out)}

	w.linef("(module %s (layer F.Cu) (tedit 0)", Quote(f.Name))
	w.indent++
	w.linef("(descr %s)", Quote(f.Description))
	w.linef("(tags %s)", Quote(f.Tags))

	for _, a := range f.Annotations {
		a.write(w)
	}

	items := make([]Item, len(f.Items))
	copy(items, f.Items)
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].kind() < items[j].kind()
	})
	for _, it := range items {
		it.write(w)
	}

	for _, m := range f.Models {
		m.write(w)
	}
	w.indent--
	w.linef(")")

	if w.err != nil {
		return w.err
	}
	return w.w.Flush()
}

// String returns the serialised footprint.
func (f *Footprint) String() string {
	var sb strings.Builder
	_ = f.Write(&sb)
	return sb.String()
}
