package main

import (
	"fmt"

	"github.com/mkarpinski/seoscan"
	"github.com/mkarpinski/seoscan/bulk"
)

// Run executes the bulk command: load the URL list, analyze each URL in
// sequence, and render the combined report.
func (c *BulkCmd) Run(deps *Dependencies) error {
	keywords := seoscan.SplitKeywords(c.Keywords)
	if len(keywords) == 0 {
		return seoscan.Errorf(seoscan.EINVALID, "no keywords provided")
	}

	urls, err := c.loadURLs(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", seoscan.ErrorMessage(err))
		return err
	}
	if len(urls) == 0 {
		fmt.Fprintln(deps.Stdout, "No URLs to analyze")
		return nil
	}

	progress := func(e bulk.ProgressEvent) {
		switch e.Type {
		case bulk.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Found %d URLs\n", e.Total)
		case bulk.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "skip %s: %s\n", e.URL, seoscan.ErrorMessage(e.Err))
		case bulk.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "\r[%d/%d] %s", e.Completed, e.Total, truncateURL(e.URL, 40))
		case bulk.ProgressFinished:
			fmt.Fprintf(deps.Stdout, "\r%80s\r", "")
		}
	}

	result, err := deps.Runner.Run(deps.Ctx, urls, keywords, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	c.printRows(deps, keywords, result)

	for dup, first := range result.Duplicates {
		fmt.Fprintf(deps.Stderr, "warning: %s renders the same content as %s\n", dup, first)
	}

	fmt.Fprintf(deps.Stdout, "\nAnalyzed %d of %d URLs (%d skipped)\n",
		len(result.Rows), len(urls), len(result.Skipped))

	if c.ReportOut != "" {
		if err := writeBulkReport(c.ReportOut, keywords, result.Rows); err != nil {
			return err
		}
		fmt.Fprintf(deps.Stdout, "Saved bulk report to %s\n", c.ReportOut)
	}

	return nil
}

// loadURLs resolves the URL list from the sitemap flag or the input file.
func (c *BulkCmd) loadURLs(deps *Dependencies) ([]string, error) {
	if c.Sitemap != "" {
		urls, err := deps.Sitemaps.DiscoverURLs(deps.Ctx, c.Sitemap)
		if err != nil {
			return nil, err
		}
		return bulk.Dedupe(urls), nil
	}
	if c.File == "" {
		return nil, seoscan.Errorf(seoscan.EINVALID, "provide a URL list file or --sitemap")
	}
	return bulk.LoadURLs(c.File)
}

// printRows renders the per-URL result table.
func (c *BulkCmd) printRows(deps *Dependencies, keywords []string, result *bulk.Result) {
	width := len("URL")
	for _, row := range result.Rows {
		if len(row.URL) > width {
			width = len(row.URL)
		}
	}

	fmt.Fprintf(deps.Stdout, "%-*s  %6s  %9s", width, "URL", "Words", "Sentences")
	for _, kw := range keywords {
		fmt.Fprintf(deps.Stdout, "  %12s", kw+" %")
	}
	fmt.Fprintln(deps.Stdout)

	for _, row := range result.Rows {
		fmt.Fprintf(deps.Stdout, "%-*s  %6d  %9d", width, row.URL, row.WordCount, row.SentenceCount)
		for i := range keywords {
			density := "0.00%"
			if i < len(row.Densities) {
				density = row.Densities[i].DensityString()
			}
			fmt.Fprintf(deps.Stdout, "  %12s", density)
		}
		fmt.Fprintln(deps.Stdout)
	}
}
