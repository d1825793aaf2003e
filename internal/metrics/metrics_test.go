package metrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTextfile(t *testing.T) {
	m := New()
	m.RecordComponent(StatusConverted, 20*time.Millisecond)
	m.RecordComponent(StatusConverted, 30*time.Millisecond)
	m.RecordComponent(StatusFailed, time.Millisecond)
	m.RecordSkipped(map[string]int{"WIDGET": 2, "PAD": 1})
	m.RecordModel(StatusSkipped)

	path := filepath.Join(t.TempDir(), "lcsc2kicad.prom")
	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, `lcsc2kicad_components_total{status="converted"} 2`)
	assert.Contains(t, out, `lcsc2kicad_components_total{status="failed"} 1`)
	assert.Contains(t, out, `lcsc2kicad_records_skipped_total{tag="WIDGET"} 2`)
	assert.Contains(t, out, `lcsc2kicad_records_skipped_total{tag="PAD"} 1`)
	assert.Contains(t, out, `lcsc2kicad_models_total{status="skipped"} 1`)
	assert.Contains(t, out, "lcsc2kicad_conversion_duration_seconds_count 3")
}

func TestRegistriesAreIndependent(t *testing.T) {
	a, b := New(), New()
	a.RecordComponent(StatusConverted, 0)

	families, err := b.Registry.Gather()
	require.NoError(t, err)
	for _, f := range families {
		assert.NotEqual(t, "lcsc2kicad_components_total", f.GetName())
	}
}

func TestTimer(t *testing.T) {
	timer := NewTimer()
	assert.GreaterOrEqual(t, timer.Duration(), time.Duration(0))
}
