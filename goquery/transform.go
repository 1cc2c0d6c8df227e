// Package goquery implements HTML transformation and entry
// classification for docset generation using PuerkitoBio/goquery.
package goquery

import (
	"bytes"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docset"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// anchorNamespace is the prefix the target viewer expects on TOC
// anchor names.
const anchorNamespace = "//apple_ref/cpp"

// scrollMarginStyle compensates for the viewer's fixed top bar when
// scrolling to an anchor.
const scrollMarginStyle = "h1:has(.dashAnchor), h2:has(.dashAnchor), h3:has(.dashAnchor) { scroll-margin-top: 80px !important; }"

// anchorSkipTitles lists heading texts (lowercased) that never
// receive TOC anchors.
var anchorSkipTitles = map[string]bool{
	"see also": true,
	"example":  true,
	"examples": true,
}

// trackerPatterns match script and markup fragments that break or
// phone home from an offline bundle. Applied to the raw bytes before
// parsing, mirroring how the fragments appear in the fetched pages.
var trackerPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?is)<script[^>]*googletagmanager[^>]*>.*?</script>`),
	regexp.MustCompile(`(?is)<script[^>]*google-analytics[^>]*>.*?</script>`),
	regexp.MustCompile(`(?is)<script[^>]*gitbook[^>]*>.*?</script>`),
	regexp.MustCompile(`(?is)<script[^>]*>[^<]*cookie[^<]*</script>`),
	regexp.MustCompile(`(?is)<div[^>]*class="[^"]*cookie[^"]*"[^>]*>.*?</div>`),
}

// Ensure Transformer implements docset.Transformer at compile time.
var _ docset.Transformer = (*Transformer)(nil)

// Transformer rewrites a documentation page for offline viewing:
// strips navigation chrome and trackers, injects dashAnchor markers
// into headings, and rewrites root-relative references for the page's
// relocation depth.
type Transformer struct{}

// NewTransformer creates a new Transformer.
func NewTransformer() *Transformer {
	return &Transformer{}
}

// Transform returns the transformed HTML for the page. The input is
// never mutated and the output is deterministic for a given input.
func (t *Transformer) Transform(page *docset.Page) ([]byte, error) {
	raw := stripTrackers(page.HTML)

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(raw))
	if err != nil {
		return nil, docset.Errorf(docset.EINVALID, "failed to parse HTML: %v", err)
	}

	// Site navigation links point outside the offline bundle.
	doc.Find("header, nav, aside").Remove()

	rewriteReferences(doc, pathDepth(page.Path))
	injectAnchors(doc)
	injectStyle(doc)

	out, err := goquery.OuterHtml(doc.Selection)
	if err != nil {
		return nil, docset.Errorf(docset.EINTERNAL, "failed to render HTML: %v", err)
	}
	return []byte(out), nil
}

// stripTrackers removes tracking and cookie-consent fragments from
// the raw HTML.
func stripTrackers(raw []byte) []byte {
	out := raw
	for _, re := range trackerPatterns {
		out = re.ReplaceAll(out, nil)
	}
	return out
}

// pathDepth returns the number of directory levels between the page
// and the documents root.
func pathDepth(relPath string) int {
	return strings.Count(relPath, "/")
}

// rewriteReferences prefixes root-relative href/src values with one
// "../" per directory level so they resolve after relocation into the
// output tree. Protocol-relative ("//...") and already-relative
// references are left alone.
func rewriteReferences(doc *goquery.Document, depth int) {
	if depth == 0 {
		return
	}
	prefix := strings.Repeat("../", depth)

	for _, attr := range []string{"href", "src"} {
		doc.Find("[" + attr + "]").Each(func(_ int, sel *goquery.Selection) {
			val, _ := sel.Attr(attr)
			if !strings.HasPrefix(val, "/") || strings.HasPrefix(val, "//") {
				return
			}
			sel.SetAttr(attr, prefix+strings.TrimPrefix(val, "/"))
		})
	}
}

// injectAnchors inserts a dashAnchor element as the first child of
// every h1-h3 heading that has an id and visible text. The marker
// must nest inside the heading: a preceding sibling makes the viewer
// clip the heading under its fixed top bar on scroll-to-anchor.
func injectAnchors(doc *goquery.Document) {
	doc.Find("h1[id], h2[id], h3[id]").Each(func(_ int, sel *goquery.Selection) {
		id, _ := sel.Attr("id")
		text := strings.TrimSpace(sel.Text())
		if id == "" || text == "" {
			return
		}
		if anchorSkipTitles[strings.ToLower(text)] {
			return
		}

		kind := docset.TypeSection
		if goquery.NodeName(sel) == "h1" {
			kind = docset.TypeGuide
		}

		anchor := &html.Node{
			Type:     html.ElementNode,
			DataAtom: atom.A,
			Data:     "a",
			Attr: []html.Attribute{
				{Key: "name", Val: AnchorName(kind, text)},
				{Key: "class", Val: "dashAnchor"},
			},
		}

		heading := sel.Nodes[0]
		if heading.FirstChild != nil {
			heading.InsertBefore(anchor, heading.FirstChild)
		} else {
			heading.AppendChild(anchor)
		}
	})
}

// injectStyle appends the scroll-margin rule to the document head.
func injectStyle(doc *goquery.Document) {
	head := doc.Find("head")
	if head.Length() == 0 {
		return
	}
	head.First().AppendHtml("<style>" + scrollMarginStyle + "</style>")
}

// AnchorName builds the anchor string for a heading of the given kind:
// //apple_ref/cpp/<kind>/<percent-encoded-name>.
func AnchorName(kind, name string) string {
	return anchorNamespace + "/" + kind + "/" + url.PathEscape(name)
}
