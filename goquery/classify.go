package goquery

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docset"
)

// Rule maps a page to candidate index entries. Matches reports
// whether the rule claims the given corpus-relative path; Entries
// produces the rule's candidates from the transformed DOM. Rules are
// pure: no state survives a page.
type Rule interface {
	Matches(relPath string) bool
	Entries(relPath string, doc *goquery.Document) ([]docset.Entry, error)
}

// Ensure Classifier implements docset.Classifier at compile time.
var _ docset.Classifier = (*Classifier)(nil)

// Classifier runs a fixed, ordered list of classification rules over
// a transformed page. The anchor-replay rule runs on every page; the
// path-pattern rules run when their path predicate matches; the
// fallback rule runs only when no path-pattern rule claimed the page.
// All matching rules contribute entries; duplicates across rules are
// absorbed later by the store's uniqueness constraint.
type Classifier struct {
	replay   Rule
	rules    []Rule
	fallback Rule
}

// NewClassifier creates a Classifier with the default rule set.
func NewClassifier() *Classifier {
	return &Classifier{
		replay: &AnchorReplayRule{},
		rules: []Rule{
			&APIReferenceRule{},
			&UtilitiesRule{},
			&GuideRule{},
			&MiscRule{},
		},
		fallback: &FallbackRule{},
	}
}

// Classify parses the transformed HTML once and returns the
// concatenated entries of every matching rule. A failure inside one
// rule skips that rule's entries for this page only.
func (c *Classifier) Classify(relPath string, htmlContent []byte) ([]docset.Entry, error) {
	if !strings.HasSuffix(relPath, ".html") {
		return nil, nil
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(htmlContent))
	if err != nil {
		return nil, docset.Errorf(docset.EINVALID, "failed to parse HTML: %v", err)
	}

	var entries []docset.Entry

	if c.replay.Matches(relPath) {
		if found, err := c.replay.Entries(relPath, doc); err == nil {
			entries = append(entries, found...)
		}
	}

	claimed := false
	for _, rule := range c.rules {
		if !rule.Matches(relPath) {
			continue
		}
		claimed = true
		found, err := rule.Entries(relPath, doc)
		if err != nil {
			continue
		}
		entries = append(entries, found...)
	}

	if !claimed && c.fallback.Matches(relPath) {
		if found, err := c.fallback.Entries(relPath, doc); err == nil {
			entries = append(entries, found...)
		}
	}

	return entries, nil
}

// resolveTitle returns the page-level display name: the first h1's
// text, falling back to the document title split at the first " | "
// or " - " separator. Returns false when neither yields a non-empty
// name.
func resolveTitle(doc *goquery.Document) (string, bool) {
	if h1 := doc.Find("h1").First(); h1.Length() > 0 {
		if title := strings.TrimSpace(h1.Text()); title != "" {
			return title, true
		}
	}

	tag := doc.Find("title").First()
	if tag.Length() == 0 {
		return "", false
	}

	title := tag.Text()
	if left, _, ok := strings.Cut(title, " | "); ok {
		title = left
	} else if left, _, ok := strings.Cut(title, " - "); ok {
		title = left
	}
	title = strings.TrimSpace(title)
	return title, title != ""
}
