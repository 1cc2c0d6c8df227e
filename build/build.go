// Package build orchestrates docset generation. It fans page
// transformation and classification out over a bounded worker pool
// and fans the resulting entries into the single-writer search index.
package build

import (
	"context"
	"os"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/docset"
	"github.com/fwojciec/docset/fs"
	"golang.org/x/sync/errgroup"
)

// defaultConcurrency bounds the worker pool when no limit is set.
const defaultConcurrency = 8

// Builder coordinates the docset generation pipeline. Per-page work
// is a pure function of (path, content); the index service is the
// only shared state and is written from a single goroutine.
type Builder struct {
	Transformer docset.Transformer
	Classifier  docset.Classifier
	Index       docset.IndexService
	Writer      docset.BundleWriter
	Concurrency int
}

// Result holds the outcome of a build run.
type Result struct {
	// Pages is the number of HTML pages written to the bundle.
	Pages int

	// Assets is the number of non-HTML files copied verbatim.
	Assets int

	// Failed counts pages that fell back to a verbatim copy or files
	// that could not be written at all.
	Failed int

	// Entries is the number of index entries persisted after
	// deduplication.
	Entries int

	// Digest is an order-independent hash of every written document;
	// two runs over the same input produce the same digest.
	Digest uint64
}

// ProgressType indicates the type of progress event.
type ProgressType int

// Progress event types.
const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressEvent reports progress during a build run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Path      string
	Error     error
}

// ProgressFunc is a callback for reporting build progress.
type ProgressFunc func(event ProgressEvent)

// fileResult holds the outcome of processing a single source file.
type fileResult struct {
	path    string
	asset   bool
	entries []docset.Entry
	digest  uint64
	err     error
}

// Build processes every source file and assembles the search index.
// Page order is irrelevant to the result; only the set of stored keys
// matters. Per-page failures are non-fatal; a context cancellation
// stops the run early without invalidating entries already accepted.
func (b *Builder) Build(ctx context.Context, files []fs.SourceFile, progress ProgressFunc) (*Result, error) {
	concurrency := b.Concurrency
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}

	total := len(files)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	// Buffered so workers never block on a slow collector.
	resultCh := make(chan fileResult, total)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for _, file := range files {
			file := file
			g.Go(func() error {
				resultCh <- b.processFile(gctx, file)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Collect results. This loop is the only writer to the index, so
	// dedup can rely entirely on the store's uniqueness constraint.
	result := &Result{}
	completed := 0
	for r := range resultCh {
		completed++

		if r.err != nil {
			result.Failed++
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressFailed,
					Completed: completed,
					Total:     total,
					Path:      r.path,
					Error:     r.err,
				})
			}
		} else if progress != nil {
			progress(ProgressEvent{
				Type:      ProgressCompleted,
				Completed: completed,
				Total:     total,
				Path:      r.path,
			})
		}

		if r.asset {
			result.Assets++
		} else {
			result.Pages++
		}
		result.Digest ^= r.digest

		for i := range r.entries {
			// A failed insert must not abort the rest of the stream.
			_ = b.Index.CreateEntry(ctx, &r.entries[i])
		}
	}

	if err := ctx.Err(); err != nil {
		return result, err
	}

	entries, err := b.Index.CountEntries(ctx)
	if err != nil {
		return result, err
	}
	result.Entries = entries

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: completed, Total: total})
	}

	return result, nil
}

// processFile transforms, writes, and classifies one source file.
func (b *Builder) processFile(ctx context.Context, file fs.SourceFile) fileResult {
	if err := ctx.Err(); err != nil {
		return fileResult{path: file.RelPath, asset: !file.HTML, err: err}
	}

	if !file.HTML {
		if err := b.Writer.CopyFile(file.RelPath, file.AbsPath); err != nil {
			return fileResult{path: file.RelPath, asset: true, err: err}
		}
		return fileResult{path: file.RelPath, asset: true}
	}

	raw, err := os.ReadFile(file.AbsPath)
	if err != nil {
		return fileResult{path: file.RelPath, err: err}
	}

	content, transformErr := b.Transformer.Transform(&docset.Page{Path: file.RelPath, HTML: raw})
	if transformErr != nil {
		// Extraction is best-effort per page: fall back to a verbatim
		// copy and keep going.
		content = raw
	}

	if err := b.Writer.WriteDocument(file.RelPath, content); err != nil {
		return fileResult{path: file.RelPath, err: err}
	}

	// Classify whatever was written, transformed or verbatim.
	entries, err := b.Classifier.Classify(file.RelPath, content)
	if err != nil {
		entries = nil
	}

	return fileResult{
		path:    file.RelPath,
		entries: entries,
		digest:  documentDigest(file.RelPath, content),
		err:     transformErr,
	}
}

// documentDigest hashes one written document. Digests are combined
// with XOR so the total is independent of processing order.
func documentDigest(relPath string, content []byte) uint64 {
	h := xxhash.New()
	_, _ = h.WriteString(relPath)
	_, _ = h.Write([]byte{'\n'})
	_, _ = h.Write(content)
	return h.Sum64()
}
