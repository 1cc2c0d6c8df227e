// Package docset provides a generator for offline Dash docsets built
// from a previously fetched tree of HTML documentation pages. It
// rewrites each page for offline viewing, classifies pages and
// headings into typed search-index entries, and assembles the entries
// into the docset's SQLite search index.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., sqlite/,
// goquery/, fs/).
package docset
