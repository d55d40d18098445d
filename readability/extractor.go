// Package readability provides an alternative extraction engine backed by
// go-readability, for pages where the class/tag heuristics come up empty.
package readability

import (
	"strings"

	"github.com/go-shiori/go-readability"
	"github.com/mkarpinski/seoscan"
)

// Ensure Extractor implements seoscan.Extractor at compile time.
var _ seoscan.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
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

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &seoscan.ExtractResult{
		Title:       article.Title,
		Text:        normalizeWhitespace(article.TextContent),
		ContentHTML: article.Content,
	}, nil
}

// normalizeWhitespace collapses runs of whitespace into single spaces so
// engine output matches the analyzer's single-space contract.
func normalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
