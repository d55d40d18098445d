package seoscan

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	// wordRe treats runs of letters/digits/underscore with internal
	// apostrophes and hyphens as a single word, so "well-known" and "it's"
	// each count once. Unicode classes rather than \w: RE2's \w and \b are
	// ASCII-only and would split "naïve" into two words. Tokens must start
	// and end on a word character, which mirrors the boundary behavior.
	wordRe = regexp.MustCompile(`[\p{L}\p{N}_]+(?:['-]+[\p{L}\p{N}_]+)*`)

	// sentenceRe counts maximal runs of terminators, so "..." and "?!"
	// each end one sentence.
	sentenceRe = regexp.MustCompile(`[.!?]+`)
)

// KeywordRecord holds the occurrence statistics for a single keyword.
type KeywordRecord struct {
	// Keyword as entered, surrounding whitespace trimmed, case preserved.
	Keyword string `json:"keyword"`

	// Instances is the number of non-overlapping case-insensitive
	// substring occurrences in the analyzed text.
	Instances int `json:"instances"`

	// Density is Instances / word count * 100. Zero when the text has no
	// words, regardless of Instances.
	Density float64 `json:"density"`
}

// DensityString renders the density for display, e.g. "40.00%".
func (r KeywordRecord) DensityString() string {
	return fmt.Sprintf("%.2f%%", r.Density)
}

// AnalysisSummary holds the result of analyzing one text.
type AnalysisSummary struct {
	WordCount     int             `json:"wordCount"`
	SentenceCount int             `json:"sentenceCount"`
	Keywords      []KeywordRecord `json:"keywords"`
}

// Analyze computes word count, sentence count, and per-keyword density for
// the given text. Keywords are matched case-insensitively as literal
// substrings, so multi-word phrases match as contiguous phrases. Records
// preserve the input order; duplicate keywords produce duplicate records.
//
// Analyze is pure and never fails: empty text yields zero counts, an empty
// keyword list yields no records.
func Analyze(text string, keywords []string) AnalysisSummary {
	summary := AnalysisSummary{
		WordCount:     len(wordRe.FindAllString(text, -1)),
		SentenceCount: len(sentenceRe.FindAllString(text, -1)),
	}

	if len(keywords) == 0 {
		return summary
	}

	lower := strings.ToLower(text)
	summary.Keywords = make([]KeywordRecord, 0, len(keywords))

	for _, keyword := range keywords {
		trimmed := strings.TrimSpace(keyword)

		// strings.Count returns len+1 for the empty substring.
		var instances int
		if trimmed != "" {
			instances = strings.Count(lower, strings.ToLower(trimmed))
		}

		var density float64
		if summary.WordCount > 0 {
			density = float64(instances) / float64(summary.WordCount) * 100
		}

		summary.Keywords = append(summary.Keywords, KeywordRecord{
			Keyword:   trimmed,
			Instances: instances,
			Density:   density,
		})
	}

	return summary
}

// SplitKeywords parses a comma-separated keyword list as entered on the
// command line, trimming surrounding whitespace and dropping entries that
// are empty after trimming.
func SplitKeywords(s string) []string {
	var keywords []string
	for _, k := range strings.Split(s, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keywords = append(keywords, k)
		}
	}
	return keywords
}
