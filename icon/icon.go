// Package icon rasterizes docset icons from a source image.
package icon

import (
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"os"
	"path/filepath"

	"github.com/fwojciec/docset"
	"golang.org/x/image/draw"
)

// Viewer icon sizes: icon.png and icon@2x.png.
const (
	baseSize   = 16
	retinaSize = 32
)

// Generate reads the source image and writes icon.png (16x16) and
// icon@2x.png (32x32) into the docset root at docsetDir.
func Generate(srcPath, docsetDir string) error {
	f, err := os.Open(srcPath)
	if err != nil {
		return docset.Errorf(docset.ENOTFOUND, "icon source %q missing or unreadable: %v", srcPath, err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return docset.Errorf(docset.EINVALID, "failed to decode icon source %q: %v", srcPath, err)
	}

	if err := writeScaled(src, retinaSize, filepath.Join(docsetDir, "icon@2x.png")); err != nil {
		return err
	}
	return writeScaled(src, baseSize, filepath.Join(docsetDir, "icon.png"))
}

// writeScaled resamples src to a size x size PNG at path.
func writeScaled(src image.Image, size int, path string) error {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create icon file: %w", err)
	}

	if err := png.Encode(out, dst); err != nil {
		out.Close()
		return fmt.Errorf("failed to encode icon: %w", err)
	}
	return out.Close()
}
