package bulk_test

import (
	"context"
	"testing"
	"time"

	"github.com/mkarpinski/seoscan/bulk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainLimiter(t *testing.T) {
	t.Parallel()

	t.Run("first request per host is immediate", func(t *testing.T) {
		t.Parallel()

		l := bulk.NewDomainLimiter(1.0)

		start := time.Now()
		require.NoError(t, l.Wait(context.Background(), "https://a.example/page"))
		require.NoError(t, l.Wait(context.Background(), "https://b.example/page"))

		assert.Less(t, time.Since(start), 500*time.Millisecond)
	})

	t.Run("second request to the same host waits", func(t *testing.T) {
		t.Parallel()

		l := bulk.NewDomainLimiter(10.0) // 100ms between requests

		require.NoError(t, l.Wait(context.Background(), "https://a.example/one"))

		start := time.Now()
		require.NoError(t, l.Wait(context.Background(), "https://a.example/two"))

		assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
	})

	t.Run("returns when the context is canceled", func(t *testing.T) {
		t.Parallel()

		l := bulk.NewDomainLimiter(0.001)

		require.NoError(t, l.Wait(context.Background(), "https://a.example/"))

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		err := l.Wait(ctx, "https://a.example/")
		require.Error(t, err)
	})
}
