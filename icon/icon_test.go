package icon_test

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/docset"
	"github.com/fwojciec/docset/icon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTestImage writes a 64x64 PNG to use as an icon source.
func writeTestImage(t *testing.T) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 64, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 4), G: uint8(y * 4), B: 128, A: 255})
		}
	}

	path := filepath.Join(t.TempDir(), "source.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	return path
}

func decodeSize(t *testing.T, path string) (int, int) {
	t.Helper()

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	return cfg.Width, cfg.Height
}

func TestGenerate(t *testing.T) {
	t.Parallel()

	t.Run("writes both icon sizes", func(t *testing.T) {
		t.Parallel()

		src := writeTestImage(t)
		dir := t.TempDir()

		require.NoError(t, icon.Generate(src, dir))

		w, h := decodeSize(t, filepath.Join(dir, "icon.png"))
		assert.Equal(t, 16, w)
		assert.Equal(t, 16, h)

		w, h = decodeSize(t, filepath.Join(dir, "icon@2x.png"))
		assert.Equal(t, 32, w)
		assert.Equal(t, 32, h)
	})

	t.Run("returns ENOTFOUND for a missing source", func(t *testing.T) {
		t.Parallel()

		err := icon.Generate(filepath.Join(t.TempDir(), "missing.png"), t.TempDir())
		require.Error(t, err)
		assert.Equal(t, docset.ENOTFOUND, docset.ErrorCode(err))
	})

	t.Run("returns EINVALID for a non-image source", func(t *testing.T) {
		t.Parallel()

		src := filepath.Join(t.TempDir(), "not-an-image.png")
		require.NoError(t, os.WriteFile(src, []byte("plain text"), 0644))

		err := icon.Generate(src, t.TempDir())
		require.Error(t, err)
		assert.Equal(t, docset.EINVALID, docset.ErrorCode(err))
	})
}
