package fs_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/mkarpinski/seoscan"
	"github.com/mkarpinski/seoscan/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentFilename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		url  string
		want string
	}{
		{"plain host", "https://example.com/page", "example.com_cleaned_content.txt"},
		{"host with port", "http://localhost:8080/x", "localhost:8080_cleaned_content.txt"},
		{"root url", "https://example.com", "example.com_cleaned_content.txt"},
		{"unusable url", "not a url", "page_cleaned_content.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, fs.ContentFilename(tt.url))
		})
	}
}

func TestSaveContent(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out", "example.com_cleaned_content.txt")

	require.NoError(t, fs.SaveContent(path, "cleaned text"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "cleaned text", string(data))
}

func TestWriteKeywordReport(t *testing.T) {
	t.Parallel()

	records := []seoscan.KeywordRecord{
		{Keyword: "SEO", Instances: 2, Density: 40},
		{Keyword: "content, analysis", Instances: 0, Density: 0},
	}

	var buf bytes.Buffer
	require.NoError(t, fs.WriteKeywordReport(&buf, records))

	got := buf.String()
	assert.Contains(t, got, "Keyword,Instances,Density\n")
	assert.Contains(t, got, "SEO,2,40.00%\n")
	// commas in keywords must be quoted
	assert.Contains(t, got, "\"content, analysis\",0,0.00%\n")
}

func TestWriteBulkReport(t *testing.T) {
	t.Parallel()

	keywords := []string{"seo", "ranking"}
	rows := []seoscan.BulkRow{
		{
			URL:           "https://a.example",
			WordCount:     100,
			SentenceCount: 8,
			Densities: []seoscan.KeywordRecord{
				{Keyword: "seo", Instances: 4, Density: 4},
				{Keyword: "ranking", Instances: 1, Density: 1},
			},
		},
		{
			URL:           "https://b.example",
			WordCount:     50,
			SentenceCount: 3,
			Densities: []seoscan.KeywordRecord{
				{Keyword: "seo", Instances: 0, Density: 0},
				{Keyword: "ranking", Instances: 2, Density: 4},
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, fs.WriteBulkReport(&buf, keywords, rows))

	got := buf.String()
	assert.Contains(t, got, "URL,Word Count,Sentence Count,seo Density,ranking Density\n")
	assert.Contains(t, got, "https://a.example,100,8,4.00%,1.00%\n")
	assert.Contains(t, got, "https://b.example,50,3,0.00%,4.00%\n")
}
