package bulk

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/mkarpinski/seoscan"
)

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressEvent reports progress after each item in a bulk run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Err       error
}

// ProgressFunc is a callback for reporting bulk progress.
type ProgressFunc func(event ProgressEvent)

// SkippedURL records a URL that produced no result row and why.
type SkippedURL struct {
	URL string
	Err error
}

// Result holds the outcome of a bulk run.
type Result struct {
	// RunID correlates log lines from one run.
	RunID string

	// Rows holds one entry per successfully analyzed URL, input order.
	Rows []seoscan.BulkRow

	// Skipped holds URLs that failed to fetch or yielded no content.
	Skipped []SkippedURL

	// Duplicates maps a URL to the earlier URL in the same run that
	// rendered byte-identical extracted text.
	Duplicates map[string]string
}

// Runner executes a bulk analysis: strictly sequential, one
// fetch-extract-analyze cycle at a time. Failures are isolated at the
// item boundary so one bad URL never stops the remaining batch; nothing
// is retried.
type Runner struct {
	Fetcher   seoscan.Fetcher
	Extractor seoscan.Extractor
	Limiter   *DomainLimiter
	Logger    *slog.Logger
}

// Run analyzes every URL in order against the given keywords. The progress
// callback, if provided, receives an event after each item. Run returns an
// error only when the context is canceled; per-URL failures are reported
// in Result.Skipped.
func (r *Runner) Run(ctx context.Context, urls, keywords []string, progress ProgressFunc) (*Result, error) {
	result := &Result{
		RunID:      uuid.NewString(),
		Duplicates: make(map[string]string),
	}

	logger := r.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	logger = logger.With("run_id", result.RunID)

	total := len(urls)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	contentSeen := make(map[string]string) // content hash -> first URL

	for i, url := range urls {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		err := r.processURL(ctx, url, keywords, result, contentSeen)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			result.Skipped = append(result.Skipped, SkippedURL{URL: url, Err: err})
			logger.Warn("skip", "url", url, "code", seoscan.ErrorCode(err), "err", seoscan.ErrorMessage(err))
			if progress != nil {
				progress(ProgressEvent{Type: ProgressFailed, Completed: i + 1, Total: total, URL: url, Err: err})
			}
			continue
		}

		logger.Debug("analyzed", "url", url)
		if progress != nil {
			progress(ProgressEvent{Type: ProgressCompleted, Completed: i + 1, Total: total, URL: url})
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	logger.Info("bulk run finished",
		"urls", total,
		"rows", len(result.Rows),
		"skipped", len(result.Skipped),
		"duplicates", len(result.Duplicates),
	)

	return result, nil
}

// processURL runs one fetch-extract-analyze cycle. Any returned error is
// recorded against this URL only.
func (r *Runner) processURL(ctx context.Context, url string, keywords []string, result *Result, contentSeen map[string]string) error {
	if r.Limiter != nil {
		if err := r.Limiter.Wait(ctx, url); err != nil {
			return err
		}
	}

	html, err := r.Fetcher.Fetch(ctx, url)
	if err != nil {
		return err
	}

	extracted, err := r.Extractor.Extract(html)
	if err != nil {
		return err
	}

	if extracted.Text == "" {
		return seoscan.Errorf(seoscan.EEMPTY, "no content found at %s", url)
	}

	hash := seoscan.ContentHash(extracted.Text)
	if first, ok := contentSeen[hash]; ok {
		result.Duplicates[url] = first
	} else {
		contentSeen[hash] = url
	}

	summary := seoscan.Analyze(extracted.Text, keywords)
	result.Rows = append(result.Rows, seoscan.BulkRow{
		URL:           url,
		WordCount:     summary.WordCount,
		SentenceCount: summary.SentenceCount,
		Densities:     summary.Keywords,
	})

	return nil
}
