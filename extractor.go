package seoscan

// ExtractResult holds the main content extracted from an HTML page.
type ExtractResult struct {
	// Title is the page title, when the engine can determine one.
	Title string

	// Text is the visible body text of the main content region with
	// boilerplate (nav, footer, sidebar, scripts) removed. Empty when no
	// content region was found; absence of content is a valid outcome,
	// not an error.
	Text string

	// ContentHTML is the markup of the selected content region, kept for
	// structured downloads (markdown conversion). May be empty.
	ContentHTML string
}

// Extractor extracts main content from rendered HTML, removing boilerplate.
type Extractor interface {
	// Extract processes raw HTML and returns the main content as plain
	// text. An empty Text with a nil error means the page had no
	// recognizable content region. Errors are reserved for unparseable
	// input.
	Extract(html string) (*ExtractResult, error)
}
