package footprint

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Faultbox/lcsc2kicad/pkg/units"
)

var errMissingField = errors.New("missing field")

// fieldReader reads typed values from record fields and keeps the first error.
type fieldReader struct {
	fields []string
	err    error
}

func (r *fieldReader) str(i int) string {
	if i < 0 || i >= len(r.fields) {
		return ""
	}
	return r.fields[i]
}

// num parses field i. A missing or malformed field records an error.
func (r *fieldReader) num(i int) float64 {
	if i >= len(r.fields) {
		r.fail(fmt.Errorf("%w: %d", errMissingField, i))
		return 0
	}
	v, err := units.ParseFloat(r.fields[i])
	if err != nil {
		r.fail(fmt.Errorf("field %d: %w", i, err))
	}
	return v
}

// optNum parses field i, returning def when it is absent or not a number.
func (r *fieldReader) optNum(i int, def float64) float64 {
	if i >= len(r.fields) {
		return def
	}
	v, err := units.ParseFloat(r.fields[i])
	if err != nil {
		return def
	}
	return v
}

// firstNum returns the first numeric field at or after i.
func (r *fieldReader) firstNum(i int) float64 {
	for ; i < len(r.fields); i++ {
		if v, err := units.ParseFloat(r.fields[i]); err == nil {
			return v
		}
	}
	r.fail(fmt.Errorf("%w: no number after %d", errMissingField, i))
	return 0
}

// spaced returns the index of the first field at or after i that contains a
// space, which is how coordinate lists and paths look. Empty fields are
// dropped before handlers run, so these positions shift.
func (r *fieldReader) spaced(i int) int {
	for ; i < len(r.fields); i++ {
		if strings.Contains(strings.TrimSpace(r.fields[i]), " ") {
			return i
		}
	}
	r.fail(fmt.Errorf("%w: no coordinate list after %d", errMissingField, i))
	return -1
}

func (r *fieldReader) fail(err error) {
	if r.err == nil {
		r.err = err
	}
}
