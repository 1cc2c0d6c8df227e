package main

import (
	"context"
	"io"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Build BuildCmd `cmd:"" help:"Build a docset from a fetched documentation tree"`
}

// BuildCmd is the "build" subcommand.
type BuildCmd struct {
	Source      string `arg:"" help:"Directory with the fetched HTML documentation"`
	Output      string `short:"o" default:"output" help:"Directory the docset bundle is written to"`
	Name        string `default:"Raycast" help:"Docset name (without the .docset extension)"`
	Identifier  string `default:"raycast" help:"Bundle identifier and platform family"`
	Keyword     string `default:"raycast" help:"Search keyword prefix"`
	IndexFile   string `name:"index-file" default:"index.html" help:"Docset-relative path of the landing page"`
	FallbackURL string `name:"fallback-url" default:"https://developers.raycast.com/" help:"Online counterpart of the documentation"`
	Icon        string `help:"Source image for the docset icons"`
	JavaScript  bool   `negatable:"" help:"Set isJavaScriptEnabled in the Info.plist"`
	Concurrency int    `short:"c" default:"8" env:"DOCSET_CONCURRENCY" help:"Concurrent page limit"`
	DryRun      bool   `name:"dry-run" short:"n" help:"List the index entries without writing the docset"`
	Verbose     bool   `short:"v" help:"Enable debug logging"`
}
