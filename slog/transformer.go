// Package slog provides logging decorators for docset services.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/docset"
)

// Ensure LoggingTransformer implements docset.Transformer.
var _ docset.Transformer = (*LoggingTransformer)(nil)

// LoggingTransformer wraps a Transformer with per-page logging.
// Transformation failures are warnings: the build falls back to a
// verbatim copy instead of aborting.
type LoggingTransformer struct {
	next   docset.Transformer
	logger *slog.Logger
}

// NewLoggingTransformer creates a new LoggingTransformer.
func NewLoggingTransformer(next docset.Transformer, logger *slog.Logger) *LoggingTransformer {
	return &LoggingTransformer{next: next, logger: logger}
}

// Transform delegates to the wrapped transformer and logs the outcome.
func (t *LoggingTransformer) Transform(page *docset.Page) ([]byte, error) {
	begin := time.Now()
	out, err := t.next.Transform(page)
	if err != nil {
		t.logger.Warn("page transform failed, copying verbatim",
			"path", page.Path,
			"error", err,
		)
		return out, err
	}
	t.logger.Debug("page transformed",
		"path", page.Path,
		"bytes", len(out),
		"duration", time.Since(begin),
	)
	return out, nil
}
