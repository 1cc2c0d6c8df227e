package main

import (
	"fmt"
	stdslog "log/slog"
	"os"

	"github.com/fwojciec/docset"
	"github.com/fwojciec/docset/build"
	"github.com/fwojciec/docset/fs"
	"github.com/fwojciec/docset/goquery"
	"github.com/fwojciec/docset/icon"
	"github.com/fwojciec/docset/plist"
	docsetslog "github.com/fwojciec/docset/slog"
	"github.com/fwojciec/docset/sqlite"
)

// Run executes the build command.
func (c *BuildCmd) Run(deps *Dependencies) error {
	level := stdslog.LevelWarn
	if c.Verbose {
		level = stdslog.LevelDebug
	}
	logger := stdslog.New(stdslog.NewTextHandler(deps.Stderr, &stdslog.HandlerOptions{Level: level}))

	info := &docset.Info{
		Identifier:        c.Identifier,
		Name:              c.Name,
		PlatformFamily:    c.Identifier,
		IndexFilePath:     c.IndexFile,
		Keyword:           c.Keyword,
		FallbackURL:       c.FallbackURL,
		JavaScriptEnabled: c.JavaScript,
	}
	if err := info.Validate(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docset.ErrorMessage(err))
		return err
	}

	sources, err := fs.WalkSource(c.Source)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docset.ErrorMessage(err))
		return err
	}

	transformer := docsetslog.NewLoggingTransformer(goquery.NewTransformer(), logger)
	classifier := goquery.NewClassifier()

	// Dry-run mode: show entries without writing the docset
	if c.DryRun {
		return c.preview(deps, sources, transformer, classifier)
	}

	writer := fs.NewWriter(c.Output, c.Name)
	if err := writer.Stage(); err != nil {
		fmt.Fprintf(deps.Stderr, "Hint: the output directory %q must be creatable and writable\n", c.Output)
		return err
	}
	defer writer.Abort()

	db := sqlite.NewDB(writer.IndexPath())
	if err := db.Open(); err != nil {
		return fmt.Errorf("failed to open search index at %q: %w", writer.IndexPath(), err)
	}
	defer db.Close()

	builder := &build.Builder{
		Transformer: transformer,
		Classifier:  classifier,
		Index:       docsetslog.NewLoggingIndexService(sqlite.NewIndexService(db), logger),
		Writer:      writer,
		Concurrency: c.Concurrency,
	}

	progress := func(event build.ProgressEvent) {
		switch event.Type {
		case build.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Found %d files\n", event.Total)
		case build.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  %s: %v\n", event.Path, event.Error)
		}
	}

	result, err := builder.Build(deps.Ctx, sources, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docset.ErrorMessage(err))
		return err
	}

	if err := plist.Write(info, writer.InfoPlistPath()); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docset.ErrorMessage(err))
		return err
	}

	if c.Icon != "" {
		if err := icon.Generate(c.Icon, writer.StageRoot()); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", docset.ErrorMessage(err))
			return err
		}
	}

	// Flush the index before the staged bundle is promoted.
	if err := db.Close(); err != nil {
		return fmt.Errorf("failed to finalize search index: %w", err)
	}

	if err := writer.Commit(); err != nil {
		return fmt.Errorf("failed to finalize docset at %q: %w", writer.DocsetDir(), err)
	}

	fmt.Fprintf(deps.Stdout, "  Indexed %d entries (%d pages, %d assets, %d fell back to verbatim copies)\n",
		result.Entries, result.Pages, result.Assets, result.Failed)
	fmt.Fprintf(deps.Stdout, "Created %s\n", writer.DocsetDir())

	return nil
}

// preview classifies every page and prints the entries that a real run
// would index, deduplicated the same way the store would.
func (c *BuildCmd) preview(deps *Dependencies, sources []fs.SourceFile, transformer docset.Transformer, classifier docset.Classifier) error {
	type key struct{ name, entryType, path string }
	seen := make(map[key]bool)

	for _, file := range sources {
		if !file.HTML {
			continue
		}

		raw, err := os.ReadFile(file.AbsPath)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "  %s: %v\n", file.RelPath, err)
			continue
		}

		content, err := transformer.Transform(&docset.Page{Path: file.RelPath, HTML: raw})
		if err != nil {
			content = raw
		}

		entries, err := classifier.Classify(file.RelPath, content)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "  %s: %v\n", file.RelPath, err)
			continue
		}

		for _, entry := range entries {
			k := key{entry.Name, entry.Type, entry.Path}
			if seen[k] {
				continue
			}
			seen[k] = true
			fmt.Fprintf(deps.Stdout, "%s\t%s\t%s\n", entry.Name, entry.Type, entry.Path)
		}
	}

	fmt.Fprintf(deps.Stdout, "%d entries\n", len(seen))
	return nil
}
