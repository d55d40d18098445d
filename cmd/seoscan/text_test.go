package main_test

import (
	"os"
	"path/filepath"
	"testing"

	main "github.com/mkarpinski/seoscan/cmd/seoscan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCmdText(t *testing.T) {
	t.Parallel()

	t.Run("analyzes text from stdin", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := run(t, main.NewMain(),
			[]string{"text", "-k", "SEO"}, "SEO is great. SEO helps.")

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Words:     5")
		assert.Contains(t, stdout.String(), "Sentences: 2")
		assert.Contains(t, stdout.String(), "40.00%")
		assert.Contains(t, stdout.String(), "Total keyword instances: 2")
	})

	t.Run("analyzes text from a file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "copy.txt")
		require.NoError(t, os.WriteFile(path, []byte("Write once. Read twice. Think often."), 0o644))

		stdout, _, err := run(t, main.NewMain(),
			[]string{"text", path, "-k", "read,think"}, "")

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Words:     6")
		assert.Contains(t, stdout.String(), "Sentences: 3")
		assert.Contains(t, stdout.String(), "read")
		assert.Contains(t, stdout.String(), "think")
		assert.Contains(t, stdout.String(), "16.67%")
	})

	t.Run("missing file errors", func(t *testing.T) {
		t.Parallel()

		_, stderr, err := run(t, main.NewMain(),
			[]string{"text", filepath.Join(t.TempDir(), "nope.txt"), "-k", "seo"}, "")

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error:")
	})

	t.Run("writes the keyword report CSV", func(t *testing.T) {
		t.Parallel()

		reportPath := filepath.Join(t.TempDir(), "report.csv")
		_, _, err := run(t, main.NewMain(),
			[]string{"text", "-k", "SEO", "--report-out", reportPath}, "SEO is great. SEO helps.")

		require.NoError(t, err)

		data, err := os.ReadFile(reportPath)
		require.NoError(t, err)
		assert.Contains(t, string(data), "SEO,2,40.00%")
	})
}
