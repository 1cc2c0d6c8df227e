package goquery

import (
	"net/url"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docset"
)

// maxEntryNameLen caps replayed anchor names; longer names are
// truncated with an ellipsis.
const maxEntryNameLen = 80

// anchorRefPattern recovers kind and percent-encoded name from an
// injected dashAnchor. The namespace segment is optional so anchors
// written by other generators still replay.
var anchorRefPattern = regexp.MustCompile(`^//apple_ref/(?:cpp/)?(\w+)/(.+)$`)

// genericHeadingNames lists heading texts (lowercased) too generic to
// index as entries on their own.
var genericHeadingNames = map[string]bool{
	"example":    true,
	"examples":   true,
	"see also":   true,
	"signature":  true,
	"return":     true,
	"returns":    true,
	"parameters": true,
	"props":      true,
	"properties": true,
}

// rootPlaceholderTitles are landing-page titles that carry no
// information; the fallback rule suppresses them.
var rootPlaceholderTitles = map[string]bool{
	"Raycast API": true,
	"Raycast":     true,
}

// uiComponentWords mark user-interface page titles as components.
var uiComponentWords = []string{"list", "grid", "form", "detail", "action"}

// AnchorReplayRule re-scans dashAnchor markers injected by the
// transformer and turns them back into index entries. The in-page
// target comes from the marker's next element sibling when it carries
// an id.
type AnchorReplayRule struct{}

// Matches reports whether the path is an HTML page.
func (r *AnchorReplayRule) Matches(relPath string) bool {
	return strings.HasSuffix(relPath, ".html")
}

// Entries extracts entries from the page's dashAnchor markers.
func (r *AnchorReplayRule) Entries(relPath string, doc *goquery.Document) ([]docset.Entry, error) {
	var entries []docset.Entry

	doc.Find("a.dashAnchor").Each(func(_ int, sel *goquery.Selection) {
		ref, _ := sel.Attr("name")
		m := anchorRefPattern.FindStringSubmatch(ref)
		if m == nil {
			return
		}

		name, err := url.PathUnescape(m[2])
		if err != nil {
			return
		}
		if genericHeadingNames[strings.ToLower(name)] {
			return
		}

		target := relPath
		if id, ok := sel.Next().Attr("id"); ok && id != "" {
			target = relPath + "#" + id
		}

		if utf8.RuneCountInString(name) > maxEntryNameLen {
			name = string([]rune(name)[:maxEntryNameLen-3]) + "..."
		}

		entries = append(entries, docset.Entry{
			Name: name,
			Type: m[1],
			Path: target,
		})
	})

	return entries, nil
}

// APIReferenceRule indexes API reference pages: the page itself as a
// Class/Component/Function, and its member headings as namespaced
// functions, types, and properties.
type APIReferenceRule struct{}

// Matches reports whether the path is under the API reference.
func (r *APIReferenceRule) Matches(relPath string) bool {
	return strings.Contains(relPath, "api-reference/")
}

// Entries yields the page-level entry plus one entry per member
// heading.
func (r *APIReferenceRule) Entries(relPath string, doc *goquery.Document) ([]docset.Entry, error) {
	title, ok := resolveTitle(doc)
	if !ok {
		return nil, nil
	}

	entries := []docset.Entry{{
		Name: title,
		Type: pageType(title, relPath),
		Path: relPath,
	}}

	doc.Find("h2[id], h3[id], h4[id]").Each(func(_ int, sel *goquery.Selection) {
		id, _ := sel.Attr("id")
		text := strings.TrimSpace(sel.Text())
		if id == "" || text == "" {
			return
		}
		if genericHeadingNames[strings.ToLower(text)] {
			return
		}

		name, entryType := memberKind(text)

		// Members of a page namespace under its title; standalone
		// types and sections keep their bare name.
		if entryType == docset.TypeFunction || entryType == docset.TypeProperty {
			name = title + "." + name
		}

		entries = append(entries, docset.Entry{
			Name: name,
			Type: entryType,
			Path: relPath + "#" + id,
		})
	})

	return entries, nil
}

// pageType infers the API reference page's own entry type from
// lexical cues in its title and path.
func pageType(title, relPath string) string {
	if strings.Contains(relPath, "user-interface") {
		lower := strings.ToLower(title)
		for _, word := range uiComponentWords {
			if strings.Contains(lower, word) {
				return docset.TypeComponent
			}
		}
		return docset.TypeClass
	}

	// Hook naming convention.
	if strings.HasPrefix(title, "use") {
		return docset.TypeFunction
	}

	return docset.TypeClass
}

// memberKind infers a member heading's entry type and cleans up the
// display name. The single-token checks are best-effort lexical
// heuristics, not a language-aware parse.
func memberKind(text string) (string, string) {
	if strings.Contains(text, "(") && strings.Contains(text, ")") {
		name := strings.TrimSpace(text[:strings.Index(text, "(")])
		return name, docset.TypeFunction
	}

	if !strings.Contains(text, " ") {
		first, _ := utf8.DecodeRuneInString(text)
		if unicode.IsUpper(first) {
			return text, docset.TypeType
		}
		if unicode.IsLower(first) {
			return text, docset.TypeProperty
		}
	}

	return text, docset.TypeSection
}

// UtilitiesRule indexes utility pages (helper functions, react hooks,
// icons, oauth helpers).
type UtilitiesRule struct{}

// Matches reports whether the path is under the utilities docs.
func (r *UtilitiesRule) Matches(relPath string) bool {
	return strings.Contains(relPath, "utilities/")
}

// Entries yields one page-level entry.
func (r *UtilitiesRule) Entries(relPath string, doc *goquery.Document) ([]docset.Entry, error) {
	title, ok := resolveTitle(doc)
	if !ok {
		return nil, nil
	}

	entryType := docset.TypeFunction
	if strings.Contains(relPath, "oauth") {
		entryType = docset.TypeClass
	}

	return []docset.Entry{{Name: title, Type: entryType, Path: relPath}}, nil
}

// GuideRule indexes guide and tutorial pages.
type GuideRule struct{}

// guideSegments are the path segments that mark guide categories.
var guideSegments = []string{"basics/", "ai/", "teams/", "examples/", "information/"}

// Matches reports whether the path is under a guide category.
func (r *GuideRule) Matches(relPath string) bool {
	for _, segment := range guideSegments {
		if strings.Contains(relPath, segment) {
			return true
		}
	}
	return false
}

// Entries yields one page-level entry.
func (r *GuideRule) Entries(relPath string, doc *goquery.Document) ([]docset.Entry, error) {
	title, ok := resolveTitle(doc)
	if !ok {
		return nil, nil
	}

	entryType := docset.TypeGuide
	if strings.Contains(relPath, "examples/") {
		entryType = docset.TypeSample
	}

	return []docset.Entry{{Name: title, Type: entryType, Path: relPath}}, nil
}

// MiscRule indexes miscellaneous pages (changelog, migration guides,
// FAQ).
type MiscRule struct{}

// Matches reports whether the path is under the misc docs.
func (r *MiscRule) Matches(relPath string) bool {
	return strings.Contains(relPath, "misc/")
}

// Entries yields one page-level entry.
func (r *MiscRule) Entries(relPath string, doc *goquery.Document) ([]docset.Entry, error) {
	title, ok := resolveTitle(doc)
	if !ok {
		return nil, nil
	}

	entryType := docset.TypeGuide
	if strings.Contains(relPath, "changelog") {
		entryType = docset.TypeSection
	}

	return []docset.Entry{{Name: title, Type: entryType, Path: relPath}}, nil
}

// FallbackRule indexes any HTML page no path-pattern rule claimed so
// every page stays reachable from search. Root placeholder titles are
// suppressed.
type FallbackRule struct{}

// Matches reports whether the path is an HTML page.
func (r *FallbackRule) Matches(relPath string) bool {
	return strings.HasSuffix(relPath, ".html")
}

// Entries yields one generic Guide entry.
func (r *FallbackRule) Entries(relPath string, doc *goquery.Document) ([]docset.Entry, error) {
	title, ok := resolveTitle(doc)
	if !ok || rootPlaceholderTitles[title] {
		return nil, nil
	}

	return []docset.Entry{{Name: title, Type: docset.TypeGuide, Path: relPath}}, nil
}
