package mock

import "github.com/fwojciec/docset"

var _ docset.BundleWriter = (*BundleWriter)(nil)

// BundleWriter is a mock implementation of docset.BundleWriter.
type BundleWriter struct {
	WriteDocumentFn func(relPath string, html []byte) error
	CopyFileFn      func(relPath, srcPath string) error
}

func (w *BundleWriter) WriteDocument(relPath string, html []byte) error {
	return w.WriteDocumentFn(relPath, html)
}

func (w *BundleWriter) CopyFile(relPath, srcPath string) error {
	return w.CopyFileFn(relPath, srcPath)
}
