package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/san-kum/mitosim/internal/content"
	"github.com/san-kum/mitosim/internal/mitosis"
	"github.com/san-kum/mitosim/internal/navigator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, 3*time.Second, cfg.AutoplayPeriod())
	assert.Equal(t, content.Zh, cfg.Language())

	s, err := cfg.InitialState()
	require.NoError(t, err)
	assert.Equal(t, navigator.DefaultState(), s)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mitosim.yaml")
	data := []byte("cell_type: plant\ncomposition: triploid-6\nphase: anaphase\nautoplay_ms: 1500\nlang: en\nchart:\n  composition: 2n=6\n")
	require.NoError(t, os.WriteFile(path, data, 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	s, err := cfg.InitialState()
	require.NoError(t, err)
	assert.Equal(t, mitosis.Plant, s.CellType)
	assert.Equal(t, mitosis.Triploid6, s.Composition)
	assert.Equal(t, mitosis.Anaphase, s.Phase)
	assert.Equal(t, 1500*time.Millisecond, cfg.AutoplayPeriod())
	assert.Equal(t, content.En, cfg.Language())
	assert.Equal(t, mitosis.Diploid6, cfg.ChartComposition())
	assert.Equal(t, DefaultChartWidth, cfg.Chart.Width, "unset fields keep defaults")
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"composition not allowed for cell type", "cell_type: animal\ncomposition: 3n=6\n"},
		{"unknown phase", "phase: interphase\n"},
		{"unknown language", "lang: fr\n"},
		{"non-positive period", "autoplay_ms: 0\n"},
		{"bad chart composition", "chart:\n  composition: 4n=8\n"},
		{"bad log level", "log_level: loud\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0644))
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	cfg := GetPreset("classroom")
	require.NotNil(t, cfg)
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestPresets(t *testing.T) {
	assert.Equal(t, []string{"animal", "classroom", "plant", "triploid"}, ListPresets())

	for _, name := range ListPresets() {
		assert.NoError(t, GetPreset(name).Validate(), name)
	}

	p := GetPreset("plant")
	p.Phase = "telophase"
	assert.Equal(t, "prophase", Presets["plant"].Phase, "GetPreset returns a copy")

	assert.Nil(t, GetPreset("nonexistent"))
}
