package bulk_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mkarpinski/seoscan"
	"github.com/mkarpinski/seoscan/bulk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadURLs(t *testing.T) {
	t.Parallel()

	t.Run("reads one URL per line from txt", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "urls.txt", "https://a.example\n\n  https://b.example  \n")

		urls, err := bulk.LoadURLs(path)

		require.NoError(t, err)
		assert.Equal(t, []string{"https://a.example", "https://b.example"}, urls)
	})

	t.Run("reads first column from csv and skips header row", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "urls.csv", "URL,Notes\nhttps://a.example,first\nhttps://b.example,second\n,blank row\n")

		urls, err := bulk.LoadURLs(path)

		require.NoError(t, err)
		assert.Equal(t, []string{"https://a.example", "https://b.example"}, urls)
	})

	t.Run("keeps first csv row when it is already a URL", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "urls.csv", "https://a.example\nhttps://b.example\n")

		urls, err := bulk.LoadURLs(path)

		require.NoError(t, err)
		assert.Equal(t, []string{"https://a.example", "https://b.example"}, urls)
	})

	t.Run("reads first column of the first sheet from xlsx", func(t *testing.T) {
		t.Parallel()

		f := excelize.NewFile()
		require.NoError(t, f.SetCellValue("Sheet1", "A1", "URL"))
		require.NoError(t, f.SetCellValue("Sheet1", "A2", "https://a.example"))
		require.NoError(t, f.SetCellValue("Sheet1", "B2", "ignored"))
		require.NoError(t, f.SetCellValue("Sheet1", "A3", "https://b.example"))

		path := filepath.Join(t.TempDir(), "urls.xlsx")
		require.NoError(t, f.SaveAs(path))
		require.NoError(t, f.Close())

		urls, err := bulk.LoadURLs(path)

		require.NoError(t, err)
		assert.Equal(t, []string{"https://a.example", "https://b.example"}, urls)
	})

	t.Run("removes duplicate URLs preserving order", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "urls.txt", "https://a.example\nhttps://b.example\nhttps://a.example\n")

		urls, err := bulk.LoadURLs(path)

		require.NoError(t, err)
		assert.Equal(t, []string{"https://a.example", "https://b.example"}, urls)
	})

	t.Run("unsupported extension is invalid", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "urls.json", `["https://a.example"]`)

		_, err := bulk.LoadURLs(path)

		require.Error(t, err)
		assert.Equal(t, seoscan.EINVALID, seoscan.ErrorCode(err))
	})

	t.Run("missing file is invalid", func(t *testing.T) {
		t.Parallel()

		_, err := bulk.LoadURLs(filepath.Join(t.TempDir(), "nope.txt"))

		require.Error(t, err)
		assert.Equal(t, seoscan.EINVALID, seoscan.ErrorCode(err))
	})
}

func TestDedupe(t *testing.T) {
	t.Parallel()

	got := bulk.Dedupe([]string{"a", "b", "a", "c", "b"})

	assert.Equal(t, []string{"a", "b", "c"}, got)
}
