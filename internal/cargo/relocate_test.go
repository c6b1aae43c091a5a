package cargo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelocate(t *testing.T) {
	src := t.TempDir()
	a := filepath.Join(src, "parse-0a1b2c3d")
	b := filepath.Join(src, "render-9f8e7d6c")
	require.NoError(t, os.WriteFile(a, []byte("binary-a"), 0o755))
	require.NoError(t, os.WriteFile(b, []byte("binary-b"), 0o755))

	relocated, err := Relocate([]string{a, b})
	require.NoError(t, err)
	require.Len(t, relocated, 2)
	t.Cleanup(func() { os.RemoveAll(filepath.Dir(relocated[0])) })

	// File names survive; contents are identical; the new location is
	// outside the source directory.
	assert.Equal(t, "parse-0a1b2c3d", filepath.Base(relocated[0]))
	assert.Equal(t, "render-9f8e7d6c", filepath.Base(relocated[1]))
	assert.NotEqual(t, src, filepath.Dir(relocated[0]))

	data, err := os.ReadFile(relocated[0])
	require.NoError(t, err)
	assert.Equal(t, "binary-a", string(data))

	info, err := os.Stat(relocated[0])
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&0o100, "copy should stay executable")
}

func TestRelocate_MissingSource(t *testing.T) {
	_, err := Relocate([]string{"/does/not/exist"})
	require.Error(t, err)

	var copyErr *CopyError
	require.ErrorAs(t, err, &copyErr)
	assert.Equal(t, "/does/not/exist", copyErr.Path)
}
