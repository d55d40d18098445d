// Package fs produces the downloadable artifacts: cleaned content text
// files and CSV keyword/bulk reports.
package fs

import (
	"encoding/csv"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strconv"

	"github.com/mkarpinski/seoscan"
)

// contentSuffix is appended to the URL host to form the cleaned-content
// download filename.
const contentSuffix = "_cleaned_content.txt"

// ContentFilename derives the cleaned-content filename from a URL's host
// component, e.g. "example.com_cleaned_content.txt". Falls back to "page"
// when the URL has no usable host.
func ContentFilename(rawURL string) string {
	host := "page"
	if u, err := url.Parse(rawURL); err == nil && u.Host != "" {
		host = u.Host
	}
	return host + contentSuffix
}

// SaveContent writes extracted text to path, creating parent directories
// as needed.
func SaveContent(path, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, []byte(content), 0644)
}

// WriteKeywordReport writes a keyword analysis as CSV with columns
// Keyword, Instances, Density.
func WriteKeywordReport(w io.Writer, records []seoscan.KeywordRecord) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"Keyword", "Instances", "Density"}); err != nil {
		return err
	}
	for _, r := range records {
		if err := cw.Write([]string{r.Keyword, strconv.Itoa(r.Instances), r.DensityString()}); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteBulkReport writes a bulk analysis as CSV with columns URL,
// Word Count, Sentence Count, and one Density column per requested
// keyword in input order.
func WriteBulkReport(w io.Writer, keywords []string, rows []seoscan.BulkRow) error {
	cw := csv.NewWriter(w)

	header := []string{"URL", "Word Count", "Sentence Count"}
	for _, kw := range keywords {
		header = append(header, kw+" Density")
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, row := range rows {
		record := []string{row.URL, strconv.Itoa(row.WordCount), strconv.Itoa(row.SentenceCount)}
		for i := range keywords {
			density := "0.00%"
			if i < len(row.Densities) {
				density = row.Densities[i].DensityString()
			}
			record = append(record, density)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
