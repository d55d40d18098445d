package rod_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/mkarpinski/seoscan"
	"github.com/mkarpinski/seoscan/mock"
	"github.com/mkarpinski/seoscan/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingFetcher(t *testing.T) {
	t.Parallel()

	t.Run("delegates and logs the fetch", func(t *testing.T) {
		t.Parallel()

		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<html></html>", nil
			},
			CloseFn: func() error { return nil },
		}

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		f := rod.NewLoggingFetcher(inner, logger)
		html, err := f.Fetch(context.Background(), "https://example.com")

		require.NoError(t, err)
		assert.Equal(t, "<html></html>", html)
		assert.Contains(t, buf.String(), "https://example.com")
		assert.Contains(t, buf.String(), "bytes=14")
	})

	t.Run("logs the error from the wrapped fetcher", func(t *testing.T) {
		t.Parallel()

		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", seoscan.Errorf(seoscan.EFETCH, "navigation timeout")
			},
		}

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		f := rod.NewLoggingFetcher(inner, logger)
		_, err := f.Fetch(context.Background(), "https://example.com")

		require.Error(t, err)
		assert.Equal(t, seoscan.EFETCH, seoscan.ErrorCode(err))
		assert.Contains(t, buf.String(), "navigation timeout")
	})

	t.Run("close delegates to the wrapped fetcher", func(t *testing.T) {
		t.Parallel()

		closed := false
		inner := &mock.Fetcher{
			CloseFn: func() error {
				closed = true
				return nil
			},
		}

		f := rod.NewLoggingFetcher(inner, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
		require.NoError(t, f.Close())
		assert.True(t, closed)
	})
}
