package bloom_test

import (
	"testing"

	"github.com/mkarpinski/seoscan/bloom"
	"github.com/stretchr/testify/assert"
)

func TestFilter(t *testing.T) {
	t.Parallel()

	t.Run("added URLs test positive", func(t *testing.T) {
		t.Parallel()

		f := bloom.NewFilter(100, 0.01)
		f.Add("https://example.com/a")

		assert.True(t, f.Test("https://example.com/a"))
	})

	t.Run("unseen URLs test negative", func(t *testing.T) {
		t.Parallel()

		f := bloom.NewFilter(100, 0.01)
		f.Add("https://example.com/a")

		assert.False(t, f.Test("https://example.com/b"))
	})

	t.Run("estimates count of added items", func(t *testing.T) {
		t.Parallel()

		f := bloom.NewFilter(1000, 0.01)
		for _, u := range []string{"a", "b", "c"} {
			f.Add(u)
		}

		assert.InDelta(t, 3, float64(f.EstimatedCount()), 1)
	})
}
