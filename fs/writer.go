// Package fs provides the on-disk docset bundle layout with atomic
// update semantics.
package fs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fwojciec/docset"
)

// Ensure Writer implements docset.BundleWriter at compile time.
var _ docset.BundleWriter = (*Writer)(nil)

// Writer materializes the docset directory structure. Files are
// staged under <name>.docset.tmp inside baseDir and promoted
// atomically to <name>.docset on Commit, so a cancelled or failed run
// never leaves a half-written bundle behind.
type Writer struct {
	baseDir string
	name    string
}

// NewWriter creates a new Writer. baseDir is the output directory,
// name is the docset name (without the .docset extension).
func NewWriter(baseDir, name string) *Writer {
	return &Writer{baseDir: baseDir, name: name}
}

// DocsetDir returns the final bundle path: <baseDir>/<name>.docset.
func (w *Writer) DocsetDir() string {
	return filepath.Join(w.baseDir, w.name+".docset")
}

func (w *Writer) stageDir() string {
	return filepath.Join(w.baseDir, w.name+".docset.tmp")
}

// StageRoot returns the staged bundle root, where icons live.
func (w *Writer) StageRoot() string {
	return w.stageDir()
}

// ContentsDir returns the staged Contents directory.
func (w *Writer) ContentsDir() string {
	return filepath.Join(w.stageDir(), "Contents")
}

// DocumentsDir returns the staged Documents directory.
func (w *Writer) DocumentsDir() string {
	return filepath.Join(w.ContentsDir(), "Resources", "Documents")
}

// IndexPath returns the staged docSet.dsidx path.
func (w *Writer) IndexPath() string {
	return filepath.Join(w.ContentsDir(), "Resources", "docSet.dsidx")
}

// InfoPlistPath returns the staged Info.plist path.
func (w *Writer) InfoPlistPath() string {
	return filepath.Join(w.ContentsDir(), "Info.plist")
}

// Stage creates the staged directory structure, discarding any
// leftovers from an aborted run.
func (w *Writer) Stage() error {
	if err := os.RemoveAll(w.stageDir()); err != nil {
		return fmt.Errorf("failed to clear staging directory: %w", err)
	}
	if err := os.MkdirAll(w.DocumentsDir(), 0755); err != nil {
		return fmt.Errorf("failed to create output structure: %w", err)
	}
	return nil
}

// WriteDocument writes a transformed HTML page at the given
// corpus-relative path inside the Documents tree.
func (w *Writer) WriteDocument(relPath string, html []byte) error {
	fullPath := filepath.Join(w.DocumentsDir(), filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}
	return os.WriteFile(fullPath, html, 0644)
}

// CopyFile copies a non-HTML asset verbatim into the Documents tree.
func (w *Writer) CopyFile(relPath, srcPath string) error {
	fullPath := filepath.Join(w.DocumentsDir(), filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	src, err := os.Open(srcPath)
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(fullPath)
	if err != nil {
		return err
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return err
	}
	return dst.Close()
}

// Commit atomically replaces the final bundle with the staged one.
func (w *Writer) Commit() error {
	if err := os.RemoveAll(w.DocsetDir()); err != nil {
		return err
	}
	return os.Rename(w.stageDir(), w.DocsetDir())
}

// Abort discards the staged bundle.
func (w *Writer) Abort() error {
	return os.RemoveAll(w.stageDir())
}
