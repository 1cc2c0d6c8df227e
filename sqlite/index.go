package sqlite

import (
	"context"
	"strings"

	"github.com/fwojciec/docset"
)

// Compile-time interface verification.
var _ docset.IndexService = (*IndexService)(nil)

// IndexService implements docset.IndexService using SQLite.
type IndexService struct {
	db *DB
}

// NewIndexService creates a new IndexService.
func NewIndexService(db *DB) *IndexService {
	return &IndexService{db: db}
}

// CreateEntry inserts an entry into the search index. A (name, type,
// path) collision is silently ignored: the first accepted write wins
// and the stored row is never overwritten. Dedup relies on the
// store's uniqueness constraint rather than a read-then-write check,
// so concurrent proposers of the same key cannot race.
func (s *IndexService) CreateEntry(ctx context.Context, entry *docset.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO searchIndex (name, type, path)
		VALUES (?, ?, ?)
	`, entry.Name, entry.Type, entry.Path)
	if err != nil {
		return err
	}

	// LastInsertId is stale when the insert was ignored, so only
	// assign it for accepted rows.
	if n, err := result.RowsAffected(); err == nil && n == 1 {
		if id, err := result.LastInsertId(); err == nil {
			entry.ID = id
		}
	}

	return nil
}

// CountEntries returns the number of entries persisted after
// deduplication.
func (s *IndexService) CountEntries(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM searchIndex`).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// FindEntries retrieves entries matching the filter, ordered by name.
func (s *IndexService) FindEntries(ctx context.Context, filter docset.EntryFilter) ([]*docset.Entry, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, name, type, path FROM searchIndex WHERE 1=1")

	if filter.Name != nil {
		query.WriteString(" AND name = ?")
		args = append(args, *filter.Name)
	}
	if filter.Type != nil {
		query.WriteString(" AND type = ?")
		args = append(args, *filter.Type)
	}
	if filter.PathPrefix != nil {
		query.WriteString(" AND path LIKE ? ESCAPE '\\'")
		args = append(args, escapeLike(*filter.PathPrefix)+"%")
	}

	query.WriteString(" ORDER BY name, type, path")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*docset.Entry
	for rows.Next() {
		var entry docset.Entry
		if err := rows.Scan(&entry.ID, &entry.Name, &entry.Type, &entry.Path); err != nil {
			return nil, err
		}
		entries = append(entries, &entry)
	}
	return entries, rows.Err()
}
