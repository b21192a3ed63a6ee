package fsutil

import (
	stderrors "errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteBytesAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "episode_reward.json")

	require.NoError(t, WriteBytesAtomic(path, []byte("[1,2]")))
	require.NoError(t, WriteBytesAtomic(path, []byte("[3]")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[3]", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWriteFileAtomic_FailureLeavesNothing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "comparison.png")

	err := WriteFileAtomic(path, func(w io.Writer) error {
		_, _ = w.Write([]byte("partial"))
		return stderrors.New("encoder failed")
	})
	require.Error(t, err)

	assert.NoFileExists(t, path)
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestWriteFileAtomic_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "figure.png")
	assert.Error(t, WriteBytesAtomic(path, []byte("x")))
}
