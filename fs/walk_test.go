package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/docset"
	"github.com/fwojciec/docset/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalkSource(t *testing.T) {
	t.Parallel()

	t.Run("lists files with corpus-relative paths", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(root, "api-reference"), 0755))
		require.NoError(t, os.WriteFile(filepath.Join(root, "index.html"), []byte("<html></html>"), 0644))
		require.NoError(t, os.WriteFile(filepath.Join(root, "api-reference", "ai.html"), []byte("<html></html>"), 0644))
		require.NoError(t, os.WriteFile(filepath.Join(root, "logo.png"), []byte{0x89}, 0644))

		files, err := fs.WalkSource(root)
		require.NoError(t, err)
		require.Len(t, files, 3)

		// Lexical walk order.
		assert.Equal(t, "api-reference/ai.html", files[0].RelPath)
		assert.True(t, files[0].HTML)
		assert.Equal(t, "index.html", files[1].RelPath)
		assert.True(t, files[1].HTML)
		assert.Equal(t, "logo.png", files[2].RelPath)
		assert.False(t, files[2].HTML)
	})

	t.Run("returns ENOTFOUND for a missing root", func(t *testing.T) {
		t.Parallel()

		_, err := fs.WalkSource(filepath.Join(t.TempDir(), "missing"))
		require.Error(t, err)
		assert.Equal(t, docset.ENOTFOUND, docset.ErrorCode(err))
	})

	t.Run("returns EINVALID when root is a file", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		file := filepath.Join(root, "file.html")
		require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

		_, err := fs.WalkSource(file)
		require.Error(t, err)
		assert.Equal(t, docset.EINVALID, docset.ErrorCode(err))
	})
}
