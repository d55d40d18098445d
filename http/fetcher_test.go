package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mkarpinski/seoscan"
	seohttp "github.com/mkarpinski/seoscan/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns body for a 200 response", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html><body>hello</body></html>"))
		}))
		defer srv.Close()

		f := seohttp.NewFetcher()
		defer f.Close()

		html, err := f.Fetch(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Equal(t, "<html><body>hello</body></html>", html)
	})

	t.Run("sends the configured user agent", func(t *testing.T) {
		t.Parallel()

		var gotUA string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUA = r.Header.Get("User-Agent")
		}))
		defer srv.Close()

		f := seohttp.NewFetcher(seohttp.WithUserAgent("seoscan-test/1.0"))
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Equal(t, "seoscan-test/1.0", gotUA)
	})

	t.Run("non-200 status is a fetch error", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		f := seohttp.NewFetcher()
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL)

		require.Error(t, err)
		assert.Equal(t, seoscan.EFETCH, seoscan.ErrorCode(err))
	})

	t.Run("network failure is a fetch error", func(t *testing.T) {
		t.Parallel()

		f := seohttp.NewFetcher(seohttp.WithTimeout(500 * time.Millisecond))
		defer f.Close()

		_, err := f.Fetch(context.Background(), "http://127.0.0.1:1")

		require.Error(t, err)
		assert.Equal(t, seoscan.EFETCH, seoscan.ErrorCode(err))
	})
}
