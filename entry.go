package docset

import "context"

// Entry type names used by the classification rules. The set is open:
// anchor replay recovers whatever type an anchor carries, and the
// store accepts any string.
const (
	TypeClass     = "Class"
	TypeComponent = "Component"
	TypeFunction  = "Function"
	TypeGuide     = "Guide"
	TypeProperty  = "Property"
	TypeSample    = "Sample"
	TypeSection   = "Section"
	TypeType      = "Type"
)

// Entry represents a single row of the docset search index: a named,
// typed, navigable documentation unit. Path is the page's
// corpus-relative path, optionally followed by "#<id>" for an in-page
// target. The triple (Name, Type, Path) is unique in the final store;
// on collision the first accepted write wins.
type Entry struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
	Path string `json:"path"`
}

// Validate returns an error if the entry contains invalid fields.
func (e *Entry) Validate() error {
	if e.Name == "" {
		return Errorf(EINVALID, "entry name required")
	}
	if e.Type == "" {
		return Errorf(EINVALID, "entry type required")
	}
	if e.Path == "" {
		return Errorf(EINVALID, "entry path required")
	}
	return nil
}

// IndexService manages the docset search index.
type IndexService interface {
	// CreateEntry inserts an entry. A (name, type, path) collision is
	// silently ignored; the stored row is never overwritten.
	CreateEntry(ctx context.Context, entry *Entry) error

	// CountEntries returns the number of entries persisted after
	// deduplication.
	CountEntries(ctx context.Context) (int, error)

	// FindEntries retrieves entries matching the filter, ordered by
	// name.
	FindEntries(ctx context.Context, filter EntryFilter) ([]*Entry, error)
}

// EntryFilter represents a filter for FindEntries.
type EntryFilter struct {
	Name       *string `json:"name"`
	Type       *string `json:"type"`
	PathPrefix *string `json:"pathPrefix"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
