package mock

import (
	"context"

	"github.com/fwojciec/docset"
)

var _ docset.IndexService = (*IndexService)(nil)

// IndexService is a mock implementation of docset.IndexService.
type IndexService struct {
	CreateEntryFn  func(ctx context.Context, entry *docset.Entry) error
	CountEntriesFn func(ctx context.Context) (int, error)
	FindEntriesFn  func(ctx context.Context, filter docset.EntryFilter) ([]*docset.Entry, error)
}

func (s *IndexService) CreateEntry(ctx context.Context, entry *docset.Entry) error {
	return s.CreateEntryFn(ctx, entry)
}

func (s *IndexService) CountEntries(ctx context.Context) (int, error) {
	return s.CountEntriesFn(ctx)
}

func (s *IndexService) FindEntries(ctx context.Context, filter docset.EntryFilter) ([]*docset.Entry, error) {
	return s.FindEntriesFn(ctx, filter)
}
