package slog

import (
	"context"
	"log/slog"

	"github.com/fwojciec/docset"
)

// Ensure LoggingIndexService implements docset.IndexService.
var _ docset.IndexService = (*LoggingIndexService)(nil)

// LoggingIndexService wraps an IndexService with debug logging for
// accepted entries. Key collisions are expected and stay silent.
type LoggingIndexService struct {
	next   docset.IndexService
	logger *slog.Logger
}

// NewLoggingIndexService creates a new LoggingIndexService.
func NewLoggingIndexService(next docset.IndexService, logger *slog.Logger) *LoggingIndexService {
	return &LoggingIndexService{next: next, logger: logger}
}

// CreateEntry delegates to the wrapped service and logs accepted
// entries at debug level.
func (s *LoggingIndexService) CreateEntry(ctx context.Context, entry *docset.Entry) error {
	if err := s.next.CreateEntry(ctx, entry); err != nil {
		return err
	}
	if entry.ID != 0 {
		s.logger.Debug("entry indexed",
			"name", entry.Name,
			"type", entry.Type,
			"path", entry.Path,
		)
	}
	return nil
}

// CountEntries delegates to the wrapped service.
func (s *LoggingIndexService) CountEntries(ctx context.Context) (int, error) {
	return s.next.CountEntries(ctx)
}

// FindEntries delegates to the wrapped service.
func (s *LoggingIndexService) FindEntries(ctx context.Context, filter docset.EntryFilter) ([]*docset.Entry, error) {
	return s.next.FindEntries(ctx, filter)
}
