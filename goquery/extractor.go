// Package goquery provides the heuristic content extractor. It removes
// boilerplate elements from a parsed DOM, selects a single main-content
// root by tag and class heuristics, and collects the visible text beneath
// it. The exclusion and selection rules are exposed as pure predicates so
// they can be tested without a browser.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mkarpinski/seoscan"
	"golang.org/x/net/html"
)

// Ensure Extractor implements seoscan.Extractor at compile time.
var _ seoscan.Extractor = (*Extractor)(nil)

// boilerplateTags are removed wholesale before content selection.
var boilerplateTags = map[string]bool{
	"nav":    true,
	"header": true,
	"footer": true,
	"aside":  true,
	"script": true,
	"style":  true,
	"form":   true,
	"button": true,
}

// contentClassTokens mark generic containers that may serve as the content
// root when no semantic main/article element exists.
var contentClassTokens = []string{"content", "main", "article"}

// IsBoilerplate reports whether an element should be dropped before content
// selection. tag is the lower-case element name; class is the raw class
// attribute. Class matching is case-insensitive substring matching.
func IsBoilerplate(tag, class string) bool {
	if boilerplateTags[tag] {
		return true
	}
	lower := strings.ToLower(class)
	return strings.Contains(lower, "footer") || strings.Contains(lower, "navbar")
}

// HasContentClass reports whether a class attribute marks a generic
// container as a content-root candidate ("content", "main", or "article"
// as a case-insensitive substring).
func HasContentClass(class string) bool {
	lower := strings.ToLower(class)
	for _, token := range contentClassTokens {
		if strings.Contains(lower, token) {
			return true
		}
	}
	return false
}

// Extractor extracts main content from HTML using boilerplate-removal
// heuristics. It is stateless and safe for concurrent use.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the visible text of the main
// content region. An empty Text with a nil error means no content region
// was found or the region held no visible text; empty input is shaped the
// same way, not treated as an error.
func (e *Extractor) Extract(rawHTML string) (*seoscan.ExtractResult, error) {
	if rawHTML == "" {
		return &seoscan.ExtractResult{}, nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, seoscan.Errorf(seoscan.EINVALID, "failed to parse HTML: %v", err)
	}

	result := &seoscan.ExtractResult{
		Title: strings.TrimSpace(doc.Find("title").First().Text()),
	}

	removeBoilerplate(doc)

	root := selectContentRoot(doc)
	if root == nil {
		// No recognizable content region. A valid outcome, not a failure.
		return result, nil
	}

	result.Text = visibleText(root)

	if contentHTML, err := goquery.OuterHtml(root); err == nil {
		result.ContentHTML = contentHTML
	}

	return result, nil
}

// removeBoilerplate destructively drops excluded subtrees and all their
// descendants before content selection.
func removeBoilerplate(doc *goquery.Document) {
	doc.Find("nav, header, footer, aside, script, style, form, button").Remove()

	doc.Find("[class]").Each(func(_ int, sel *goquery.Selection) {
		class, _ := sel.Attr("class")
		if IsBoilerplate(goquery.NodeName(sel), class) {
			sel.Remove()
		}
	})
}

// selectContentRoot picks the single subtree judged to hold the page's
// primary content, in strict priority order: the first <main>, the first
// <article>, then the first <div> with a content-like class. Returns nil
// when nothing matches.
func selectContentRoot(doc *goquery.Document) *goquery.Selection {
	if sel := doc.Find("main").First(); sel.Length() > 0 {
		return sel
	}
	if sel := doc.Find("article").First(); sel.Length() > 0 {
		return sel
	}

	var root *goquery.Selection
	doc.Find("div[class]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		class, _ := sel.Attr("class")
		if HasContentClass(class) {
			root = sel
			return false
		}
		return true
	})
	return root
}

// visibleText collects the trimmed text of every visible text node under
// the root, joined by single spaces. Empty or whitespace-only fragments
// are excluded before joining.
func visibleText(root *goquery.Selection) string {
	var fragments []string
	for _, node := range root.Nodes {
		collectText(node, &fragments)
	}
	return strings.Join(fragments, " ")
}

func collectText(n *html.Node, fragments *[]string) {
	// Step 1 already removed script/style subtrees; this keeps stray ones
	// out of the output regardless.
	if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
		return
	}

	if n.Type == html.TextNode {
		if hiddenByInlineStyle(n.Parent) {
			return
		}
		if text := strings.TrimSpace(n.Data); text != "" {
			*fragments = append(*fragments, text)
		}
		return
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, fragments)
	}
}

// hiddenByInlineStyle checks the immediate parent's inline style for
// display:none / visibility:hidden. Substring match, not CSS parsing; a
// known heuristic limitation shared with the selection rules above.
func hiddenByInlineStyle(n *html.Node) bool {
	if n == nil || n.Type != html.ElementNode {
		return false
	}
	for _, attr := range n.Attr {
		if attr.Key == "style" {
			return strings.Contains(attr.Val, "display: none") ||
				strings.Contains(attr.Val, "visibility: hidden")
		}
	}
	return false
}
