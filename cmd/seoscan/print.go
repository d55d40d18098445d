package main

import (
	"fmt"
	"io"
	"net/url"
	"os"

	"github.com/mkarpinski/seoscan"
	"github.com/mkarpinski/seoscan/fs"
)

// printSummary renders the metrics and keyword table for one analysis.
func printSummary(w io.Writer, summary seoscan.AnalysisSummary) {
	fmt.Fprintf(w, "Words:     %d\n", summary.WordCount)
	fmt.Fprintf(w, "Sentences: %d\n", summary.SentenceCount)

	if len(summary.Keywords) == 0 {
		return
	}

	width := len("Keyword")
	for _, r := range summary.Keywords {
		if len(r.Keyword) > width {
			width = len(r.Keyword)
		}
	}

	fmt.Fprintf(w, "\n%-*s  %9s  %8s\n", width, "Keyword", "Instances", "Density")
	for _, r := range summary.Keywords {
		fmt.Fprintf(w, "%-*s  %9d  %8s\n", width, r.Keyword, r.Instances, r.DensityString())
	}
}

// writeKeywordReport saves a keyword analysis CSV to path.
func writeKeywordReport(path string, records []seoscan.KeywordRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := fs.WriteKeywordReport(f, records); err != nil {
		return err
	}
	return f.Close()
}

// writeBulkReport saves a bulk analysis CSV to path.
func writeBulkReport(path string, keywords []string, rows []seoscan.BulkRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := fs.WriteBulkReport(f, keywords, rows); err != nil {
		return err
	}
	return f.Close()
}

// truncateURL shortens a URL for progress display by showing only the path.
// This makes progress more useful when many URLs share the same host prefix.
func truncateURL(rawURL string, maxLen int) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		if len(rawURL) <= maxLen {
			return rawURL
		}
		return rawURL[:maxLen-3] + "..."
	}

	path := parsed.Path
	if path == "" {
		path = "/"
	}

	if len(path) <= maxLen {
		return path
	}

	// Truncate from the left to show the unique suffix
	return "..." + path[len(path)-maxLen+3:]
}
