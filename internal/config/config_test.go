package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reportkit/internal/errors"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, "Results", cfg.Results.Dir)
	assert.Equal(t, "msgpack", cfg.Results.Codec)
	assert.Equal(t, 1600, cfg.Figure.Width)
	assert.Equal(t, 400, cfg.Figure.PanelHeight)
	assert.Equal(t, 800, cfg.Figure.ComparisonWidth)
	assert.Equal(t, 600, cfg.Figure.ComparisonHeight)
	assert.Equal(t, "INFO", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Empty(t, cfg.Log.File)
}

func TestLoadFrom_Overrides(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{
		"REPORTKIT_RESULTS_DIR":  "/tmp/runs",
		"REPORTKIT_CODEC":        "JSON",
		"REPORTKIT_FIGURE_WIDTH": "1200",
		"LOG_FORMAT":             "json",
		"LOG_FILE":               "/tmp/reportkit.log",
	})
	require.NoError(t, err)

	assert.Equal(t, "/tmp/runs", cfg.Results.Dir)
	assert.Equal(t, "json", cfg.Results.Codec)
	assert.Equal(t, 1200, cfg.Figure.Width)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "/tmp/reportkit.log", cfg.Log.File)
}

func TestLoadFrom_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		environ map[string]string
	}{
		{"unknown codec", map[string]string{"REPORTKIT_CODEC": "yaml"}},
		{"zero width", map[string]string{"REPORTKIT_FIGURE_WIDTH": "0"}},
		{"negative comparison height", map[string]string{"REPORTKIT_COMPARISON_HEIGHT": "-5"}},
		{"not a number", map[string]string{"REPORTKIT_PANEL_HEIGHT": "tall"}},
		{"unknown log format", map[string]string{"LOG_FORMAT": "xml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFrom(tt.environ)
			require.Error(t, err)
			assert.True(t, errors.HasCode(err, errors.CodeConfigInvalid))
		})
	}
}
