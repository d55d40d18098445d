package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/mkarpinski/seoscan"
	"github.com/mkarpinski/seoscan/bulk"
	"github.com/mkarpinski/seoscan/htmltomarkdown"
	seohttp "github.com/mkarpinski/seoscan/http"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Fetcher   seoscan.Fetcher
	Extractor seoscan.Extractor
	Converter *htmltomarkdown.Converter
	Sitemaps  *seohttp.SitemapService
	Runner    *bulk.Runner
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool   `short:"v" help:"Enable debug logging"`
	Engine  string `default:"heuristic" enum:"heuristic,readability,trafilatura" help:"Content extraction engine"`
	HTTP    bool   `name:"http" help:"Fetch with plain HTTP instead of a headless browser (static sites only)"`

	URL  URLCmd  `cmd:"" help:"Analyze a single URL"`
	Bulk BulkCmd `cmd:"" help:"Analyze a list of URLs from a file or sitemap"`
	Text TextCmd `cmd:"" help:"Analyze raw text from a file or stdin"`
}

// URLCmd is the "url" subcommand.
type URLCmd struct {
	URL         string        `arg:"" help:"Page URL to analyze"`
	Keywords    string        `short:"k" required:"" help:"Comma-separated keywords"`
	Timeout     time.Duration `short:"t" default:"30s" help:"Fetch timeout"`
	Wait        time.Duration `short:"w" default:"2s" help:"Extra wait after page load for dynamic content"`
	ShowContent bool          `help:"Print the extracted content after the results"`
	SaveContent bool          `help:"Write the cleaned content to a file named after the URL host"`
	ContentOut  string        `type:"path" help:"Write the cleaned content to this path instead"`
	Markdown    bool          `help:"Save content as markdown, preserving structure"`
	ReportOut   string        `type:"path" help:"Write the keyword analysis CSV to this path"`
}

// BulkCmd is the "bulk" subcommand.
type BulkCmd struct {
	File      string        `arg:"" optional:"" help:"URL list file (.csv, .xlsx, or .txt)"`
	Sitemap   string        `help:"Discover URLs from a sitemap.xml URL instead of a file"`
	Keywords  string        `short:"k" required:"" help:"Comma-separated keywords"`
	Timeout   time.Duration `short:"t" default:"30s" help:"Fetch timeout per page"`
	Wait      time.Duration `short:"w" default:"2s" help:"Extra wait after page load for dynamic content"`
	RPS       float64       `default:"1.0" help:"Max requests per second per host"`
	ReportOut string        `type:"path" help:"Write the bulk report CSV to this path"`
}

// TextCmd is the "text" subcommand.
type TextCmd struct {
	File      string `arg:"" optional:"" help:"Text file to analyze (reads stdin when omitted)"`
	Keywords  string `short:"k" required:"" help:"Comma-separated keywords"`
	ReportOut string `type:"path" help:"Write the keyword analysis CSV to this path"`
}
