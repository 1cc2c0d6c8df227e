package docset

// Page represents one HTML documentation page from the fetched tree.
// Path is corpus-relative (mirrors the original site's path segments)
// and serves as the page's unique key. Pages are ephemeral: built,
// transformed, classified, and discarded.
type Page struct {
	Path string
	HTML []byte
}

// Transformer rewrites a page's HTML for offline viewing: strips
// navigation chrome and tracking fragments, injects TOC anchor
// markers into headings, and rewrites links for relocation depth.
// Implementations must be deterministic and must not mutate the
// input.
type Transformer interface {
	Transform(page *Page) ([]byte, error)
}

// Classifier maps a transformed page to its search-index entries.
// The returned slice is finite and may be empty; multiple internal
// rules may contribute entries for the same page.
type Classifier interface {
	Classify(path string, html []byte) ([]Entry, error)
}

// BundleWriter writes files into the docset's Documents tree.
type BundleWriter interface {
	// WriteDocument writes a (transformed) HTML page at the given
	// corpus-relative path.
	WriteDocument(relPath string, html []byte) error

	// CopyFile copies a non-HTML asset verbatim from srcPath to the
	// given corpus-relative path.
	CopyFile(relPath, srcPath string) error
}
