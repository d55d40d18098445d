// Package trafilatura provides an alternative extraction engine backed by
// go-trafilatura's statistical content detection.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/markusmobius/go-trafilatura"
	"github.com/mkarpinski/seoscan"
	"golang.org/x/net/html"
)

// Ensure Extractor implements seoscan.Extractor at compile time.
var _ seoscan.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content as plain text.
// Empty input yields an empty result, not an error.
func (e *Extractor) Extract(rawHTML string) (*seoscan.ExtractResult, error) {
	if rawHTML == "" {
		return &seoscan.ExtractResult{}, nil
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	return &seoscan.ExtractResult{
		Title:       result.Metadata.Title,
		Text:        strings.Join(strings.Fields(result.ContentText), " "),
		ContentHTML: contentHTML,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
