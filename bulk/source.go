// Package bulk provides URL-list loading and the sequential bulk analysis
// runner: one fetch, extract, analyze cycle at a time with per-URL error
// isolation and incremental progress reporting.
package bulk

import (
	"bufio"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"

	"github.com/mkarpinski/seoscan"
	"github.com/mkarpinski/seoscan/bloom"
	"github.com/xuri/excelize/v2"
)

// LoadURLs reads an ordered URL list from a bulk input file. Supported
// formats, by extension: .csv and .xlsx (first data column), .txt (one URL
// per line). Blank entries are dropped and duplicates removed, preserving
// first-occurrence order. Unsupported or unreadable files fail before any
// fetch happens.
func LoadURLs(path string) ([]string, error) {
	var (
		urls []string
		err  error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		urls, err = readCSV(path)
	case ".xlsx":
		urls, err = readXLSX(path)
	case ".txt":
		urls, err = readTXT(path)
	default:
		return nil, seoscan.Errorf(seoscan.EINVALID, "unsupported bulk input format %q (want .csv, .xlsx, or .txt)", filepath.Ext(path))
	}
	if err != nil {
		return nil, err
	}

	return Dedupe(urls), nil
}

// Dedupe removes duplicate URLs while preserving first-occurrence order.
func Dedupe(urls []string) []string {
	seen := bloom.NewFilter(uint(len(urls))+1, 0.001)
	out := make([]string, 0, len(urls))
	for _, u := range urls {
		if seen.Test(u) {
			continue
		}
		seen.Add(u)
		out = append(out, u)
	}
	return out
}

func readCSV(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, seoscan.Errorf(seoscan.EINVALID, "opening %s: %v", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // tolerate ragged rows

	records, err := r.ReadAll()
	if err != nil {
		return nil, seoscan.Errorf(seoscan.EINVALID, "reading %s: %v", path, err)
	}

	var urls []string
	for _, record := range records {
		if len(record) == 0 {
			continue
		}
		if cell := strings.TrimSpace(record[0]); cell != "" {
			urls = append(urls, cell)
		}
	}

	return dropHeader(urls), nil
}

func readXLSX(path string) ([]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, seoscan.Errorf(seoscan.EINVALID, "opening %s: %v", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, seoscan.Errorf(seoscan.EINVALID, "reading %s: %v", path, err)
	}

	var urls []string
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		if cell := strings.TrimSpace(row[0]); cell != "" {
			urls = append(urls, cell)
		}
	}

	return dropHeader(urls), nil
}

func readTXT(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, seoscan.Errorf(seoscan.EINVALID, "opening %s: %v", path, err)
	}
	defer f.Close()

	var urls []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			urls = append(urls, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, seoscan.Errorf(seoscan.EINVALID, "reading %s: %v", path, err)
	}

	return urls, nil
}

// dropHeader removes a leading header row from tabular input. Spreadsheet
// exports usually carry one; a first cell that doesn't look like a URL is
// treated as a column label.
func dropHeader(urls []string) []string {
	if len(urls) > 0 && !looksLikeURL(urls[0]) {
		return urls[1:]
	}
	return urls
}

func looksLikeURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
