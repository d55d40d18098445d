package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mkarpinski/seoscan"
)

// Run executes the text command: analyze raw text without any fetching or
// extraction.
func (c *TextCmd) Run(deps *Dependencies) error {
	keywords := seoscan.SplitKeywords(c.Keywords)
	if len(keywords) == 0 {
		return seoscan.Errorf(seoscan.EINVALID, "no keywords provided")
	}

	text, err := c.readText(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", seoscan.ErrorMessage(err))
		return err
	}

	summary := seoscan.Analyze(text, keywords)
	printSummary(deps.Stdout, summary)

	total := 0
	for _, r := range summary.Keywords {
		total += r.Instances
	}
	fmt.Fprintf(deps.Stdout, "\nTotal keyword instances: %d\n", total)

	if c.ReportOut != "" {
		if err := writeKeywordReport(c.ReportOut, summary.Keywords); err != nil {
			return err
		}
		fmt.Fprintf(deps.Stdout, "Saved keyword report to %s\n", c.ReportOut)
	}

	return nil
}

func (c *TextCmd) readText(deps *Dependencies) (string, error) {
	if c.File == "" {
		data, err := io.ReadAll(deps.Stdin)
		if err != nil {
			return "", seoscan.Errorf(seoscan.EINVALID, "reading stdin: %v", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(c.File)
	if err != nil {
		return "", seoscan.Errorf(seoscan.EINVALID, "reading %s: %v", c.File, err)
	}
	return string(data), nil
}
