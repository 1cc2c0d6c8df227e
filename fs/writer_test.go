package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/docset/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_Stage(t *testing.T) {
	t.Parallel()

	t.Run("creates the docset structure", func(t *testing.T) {
		t.Parallel()

		w := fs.NewWriter(t.TempDir(), "Raycast")
		require.NoError(t, w.Stage())

		info, err := os.Stat(w.DocumentsDir())
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("discards leftovers from an aborted run", func(t *testing.T) {
		t.Parallel()

		w := fs.NewWriter(t.TempDir(), "Raycast")
		require.NoError(t, w.Stage())
		require.NoError(t, w.WriteDocument("stale.html", []byte("old")))

		require.NoError(t, w.Stage())

		_, err := os.Stat(filepath.Join(w.DocumentsDir(), "stale.html"))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("fails when the output location is not creatable", func(t *testing.T) {
		t.Parallel()

		w := fs.NewWriter("/proc/nonexistent/output", "Raycast")
		assert.Error(t, w.Stage())
	})
}

func TestWriter_WriteDocument(t *testing.T) {
	t.Parallel()

	w := fs.NewWriter(t.TempDir(), "Raycast")
	require.NoError(t, w.Stage())

	require.NoError(t, w.WriteDocument("docs/api-reference/ai.html", []byte("<html></html>")))

	got, err := os.ReadFile(filepath.Join(w.DocumentsDir(), "docs", "api-reference", "ai.html"))
	require.NoError(t, err)
	assert.Equal(t, "<html></html>", string(got))
}

func TestWriter_CopyFile(t *testing.T) {
	t.Parallel()

	srcDir := t.TempDir()
	src := filepath.Join(srcDir, "logo.png")
	require.NoError(t, os.WriteFile(src, []byte{0x89, 'P', 'N', 'G'}, 0644))

	w := fs.NewWriter(t.TempDir(), "Raycast")
	require.NoError(t, w.Stage())

	require.NoError(t, w.CopyFile("assets/logo.png", src))

	got, err := os.ReadFile(filepath.Join(w.DocumentsDir(), "assets", "logo.png"))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, got)
}

func TestWriter_CommitAbort(t *testing.T) {
	t.Parallel()

	t.Run("commit promotes the staged bundle atomically", func(t *testing.T) {
		t.Parallel()

		w := fs.NewWriter(t.TempDir(), "Raycast")
		require.NoError(t, w.Stage())
		require.NoError(t, w.WriteDocument("index.html", []byte("<html></html>")))

		require.NoError(t, w.Commit())

		_, err := os.Stat(filepath.Join(w.DocsetDir(), "Contents", "Resources", "Documents", "index.html"))
		assert.NoError(t, err)
	})

	t.Run("commit replaces an existing bundle", func(t *testing.T) {
		t.Parallel()

		base := t.TempDir()

		w := fs.NewWriter(base, "Raycast")
		require.NoError(t, w.Stage())
		require.NoError(t, w.WriteDocument("old.html", []byte("old")))
		require.NoError(t, w.Commit())

		w = fs.NewWriter(base, "Raycast")
		require.NoError(t, w.Stage())
		require.NoError(t, w.WriteDocument("new.html", []byte("new")))
		require.NoError(t, w.Commit())

		_, err := os.Stat(filepath.Join(w.DocsetDir(), "Contents", "Resources", "Documents", "old.html"))
		assert.True(t, os.IsNotExist(err))
		_, err = os.Stat(filepath.Join(w.DocsetDir(), "Contents", "Resources", "Documents", "new.html"))
		assert.NoError(t, err)
	})

	t.Run("abort removes the staged bundle and keeps the old one", func(t *testing.T) {
		t.Parallel()

		base := t.TempDir()

		w := fs.NewWriter(base, "Raycast")
		require.NoError(t, w.Stage())
		require.NoError(t, w.WriteDocument("keep.html", []byte("keep")))
		require.NoError(t, w.Commit())

		w = fs.NewWriter(base, "Raycast")
		require.NoError(t, w.Stage())
		require.NoError(t, w.WriteDocument("discard.html", []byte("discard")))
		require.NoError(t, w.Abort())

		_, err := os.Stat(filepath.Join(w.DocsetDir(), "Contents", "Resources", "Documents", "keep.html"))
		assert.NoError(t, err)

		entries, err := os.ReadDir(base)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "Raycast.docset", entries[0].Name())
	})
}
