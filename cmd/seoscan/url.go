package main

import (
	"fmt"
	"strings"

	"github.com/mkarpinski/seoscan"
	"github.com/mkarpinski/seoscan/fs"
)

// Run executes the url command: fetch, extract, analyze, render.
func (c *URLCmd) Run(deps *Dependencies) error {
	keywords := seoscan.SplitKeywords(c.Keywords)
	if len(keywords) == 0 {
		return seoscan.Errorf(seoscan.EINVALID, "no keywords provided")
	}

	html, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", seoscan.ErrorMessage(err))
		return err
	}

	extracted, err := deps.Extractor.Extract(html)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", seoscan.ErrorMessage(err))
		return err
	}

	if extracted.Text == "" {
		fmt.Fprintln(deps.Stdout, "No content found on the page. Please check the URL.")
		return nil
	}

	summary := seoscan.Analyze(extracted.Text, keywords)

	if extracted.Title != "" {
		fmt.Fprintf(deps.Stdout, "Title:     %s\n", extracted.Title)
	}
	printSummary(deps.Stdout, summary)

	if c.ShowContent {
		fmt.Fprintf(deps.Stdout, "\n%s\n", extracted.Text)
	}

	if path := c.contentPath(); path != "" {
		content := extracted.Text
		if c.Markdown {
			content, err = deps.Converter.Convert(extracted.ContentHTML)
			if err != nil {
				fmt.Fprintf(deps.Stderr, "error converting content: %s\n", seoscan.ErrorMessage(err))
				return err
			}
		}
		if err := fs.SaveContent(path, content); err != nil {
			return err
		}
		fmt.Fprintf(deps.Stdout, "\nSaved content to %s\n", path)
	}

	if c.ReportOut != "" {
		if err := writeKeywordReport(c.ReportOut, summary.Keywords); err != nil {
			return err
		}
		fmt.Fprintf(deps.Stdout, "Saved keyword report to %s\n", c.ReportOut)
	}

	return nil
}

// contentPath resolves where the cleaned content download goes, if anywhere.
func (c *URLCmd) contentPath() string {
	if c.ContentOut != "" {
		return c.ContentOut
	}
	if !c.SaveContent {
		return ""
	}
	name := fs.ContentFilename(c.URL)
	if c.Markdown {
		name = strings.TrimSuffix(name, ".txt") + ".md"
	}
	return name
}
