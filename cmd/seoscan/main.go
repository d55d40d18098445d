package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/mkarpinski/seoscan"
	"github.com/mkarpinski/seoscan/bulk"
	"github.com/mkarpinski/seoscan/goquery"
	"github.com/mkarpinski/seoscan/htmltomarkdown"
	seohttp "github.com/mkarpinski/seoscan/http"
	"github.com/mkarpinski/seoscan/readability"
	"github.com/mkarpinski/seoscan/rod"
	"github.com/mkarpinski/seoscan/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// NewFetcher overrides browser fetcher construction, for tests that
	// must not launch Chrome. Nil means the real rod fetcher.
	NewFetcher func() (seoscan.Fetcher, error)
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("seoscan"),
		kong.Description("Analyze web page content for SEO keyword density"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'seoscan --help' to see available commands")
	}
	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	deps := &Dependencies{
		Ctx:       ctx,
		Stdin:     stdin,
		Stdout:    stdout,
		Stderr:    stderr,
		Logger:    logger,
		Extractor: newExtractor(cli.Engine),
		Converter: htmltomarkdown.NewConverter(),
		Sitemaps:  seohttp.NewSitemapService(nil),
	}

	// Only the URL-driven commands need a fetcher; launching a browser
	// for text analysis would be wasted work. Global flags may precede the
	// command, so the selection comes from the parse result, not args[0].
	cmd := strings.Fields(kongCtx.Command())[0]
	if cmd == "url" || cmd == "bulk" {
		fetcher, err := m.newFetcher(cli, cmd, stderr)
		if err != nil {
			return err
		}
		defer fetcher.Close()

		deps.Fetcher = rod.NewLoggingFetcher(fetcher, logger)
	}

	if cmd == "bulk" {
		deps.Runner = &bulk.Runner{
			Fetcher:   deps.Fetcher,
			Extractor: deps.Extractor,
			Limiter:   bulk.NewDomainLimiter(cli.Bulk.RPS),
			Logger:    logger,
		}
	}

	return kongCtx.Run(deps)
}

// newFetcher builds the page fetcher selected by the global flags.
func (m *Main) newFetcher(cli *CLI, cmd string, stderr io.Writer) (seoscan.Fetcher, error) {
	timeout, wait := cli.URL.Timeout, cli.URL.Wait
	if cmd == "bulk" {
		timeout, wait = cli.Bulk.Timeout, cli.Bulk.Wait
	}

	if cli.HTTP {
		return seohttp.NewFetcher(
			seohttp.WithTimeout(timeout),
			seohttp.WithUserAgent(rod.DefaultUserAgent),
		), nil
	}

	if m.NewFetcher != nil {
		return m.NewFetcher()
	}

	fetcher, err := rod.NewFetcher(
		rod.WithFetchTimeout(timeout),
		rod.WithSettleDelay(wait),
	)
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed, or pass --http for static sites")
		return nil, fmt.Errorf("failed to start browser: %w", err)
	}
	return fetcher, nil
}

// newExtractor returns the content extraction engine selected by --engine.
func newExtractor(engine string) seoscan.Extractor {
	switch engine {
	case "readability":
		return readability.NewExtractor()
	case "trafilatura":
		return trafilatura.NewExtractor()
	default:
		return goquery.NewExtractor()
	}
}
