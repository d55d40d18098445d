package seoscan

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// URLReport holds the full analysis outcome for a single URL.
type URLReport struct {
	URL     string          `json:"url"`
	Title   string          `json:"title,omitempty"`
	Content string          `json:"content"`
	Summary AnalysisSummary `json:"summary"`
}

// BulkRow is one line of a bulk analysis report. Densities are keyed by
// position: Densities[i] corresponds to the i-th requested keyword.
type BulkRow struct {
	URL           string          `json:"url"`
	WordCount     int             `json:"wordCount"`
	SentenceCount int             `json:"sentenceCount"`
	Densities     []KeywordRecord `json:"densities"`
}

// ContentHash returns a stable hash of extracted text, used to flag URLs
// that render identical content within a bulk run.
func ContentHash(text string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(text))
}
