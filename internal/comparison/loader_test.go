package comparison

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reportkit/adapters/codec"
	"reportkit/domain/report"
	"reportkit/internal/errors"
	"reportkit/ports"
)

func writeDump(t *testing.T, c ports.Codec, root, model, repeat string, rewards []float64) {
	t.Helper()
	dir := filepath.Join(root, model, repeat)
	require.NoError(t, os.MkdirAll(dir, 0755))
	data, err := c.Marshal(rewards)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "episode_reward."+c.Extension()), data, 0644))
}

func TestLoader_Load(t *testing.T) {
	root := t.TempDir()
	c := &codec.MsgpackCodec{}

	writeDump(t, c, root, "model B", "repeat_0", []float64{1, 2, 3})
	writeDump(t, c, root, "model A", "repeat_1", []float64{4, 5, 6})
	writeDump(t, c, root, "model A", "repeat_0", []float64{1, 1, 1})
	// figures and stray files next to the model directories are ignored
	require.NoError(t, os.WriteFile(filepath.Join(root, "comparison.png"), []byte{}, 0644))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "model C", "repeat_0"), 0755))

	loader := &Loader{Root: root, File: "episode_reward", Codec: c}
	datasets, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"model A", "model B"}, datasets.Order)
	assert.Equal(t, 2, datasets.Len())
	assert.Equal(t, report.Matrix{{1, 1, 1}, {4, 5, 6}}, datasets.Values["model A"])
	assert.Equal(t, report.Matrix{{1, 2, 3}}, datasets.Values["model B"])
}

func TestLoader_RaggedRepeats(t *testing.T) {
	root := t.TempDir()
	c := &codec.JSONCodec{}

	writeDump(t, c, root, "model A", "repeat_0", []float64{1, 2, 3})
	writeDump(t, c, root, "model A", "repeat_1", []float64{1, 2})

	_, err := (&Loader{Root: root, File: "episode_reward", Codec: c}).Load()
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.CodeShapeError))
}

func TestLoader_MissingRoot(t *testing.T) {
	loader := &Loader{Root: filepath.Join(t.TempDir(), "nope"), File: "episode_reward", Codec: &codec.JSONCodec{}}

	_, err := loader.Load()
	assert.True(t, errors.HasCode(err, errors.CodeExternalService))

	_, err = (&Loader{Root: t.TempDir()}).Load()
	assert.True(t, errors.HasCode(err, errors.CodeInternalError))
}

func TestCumulative(t *testing.T) {
	in := Datasets{
		Order: []string{"model A"},
		Values: map[string]report.Matrix{
			"model A": {{1, 2, 3}, {0.5, -0.5, 1}},
		},
	}

	out, err := Cumulative(in)
	require.NoError(t, err)

	assert.Equal(t, []string{"model A"}, out.Order)
	assert.Equal(t, report.Matrix{{1, 3, 6}, {0.5, 0, 1}}, out.Values["model A"])
	// input untouched
	assert.Equal(t, []float64{1, 2, 3}, in.Values["model A"][0])
}
