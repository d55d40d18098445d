package http

import (
	"context"
	"io"
	"net/http"

	"github.com/beevik/etree"
	"github.com/mkarpinski/seoscan"
)

// maxSitemapDepth bounds sitemap-index recursion.
const maxSitemapDepth = 3

// SitemapService discovers page URLs from sitemap.xml documents, the
// SEO-native way to feed a bulk analysis run.
type SitemapService struct {
	client *http.Client
}

// NewSitemapService creates a new SitemapService with the given HTTP client.
// If client is nil, http.DefaultClient is used.
func NewSitemapService(client *http.Client) *SitemapService {
	if client == nil {
		client = http.DefaultClient
	}
	return &SitemapService{client: client}
}

// DiscoverURLs fetches the sitemap at the given URL and returns the page
// URLs it lists, in document order with duplicates removed. Sitemap index
// documents are followed one level at a time up to a fixed depth.
func (s *SitemapService) DiscoverURLs(ctx context.Context, sitemapURL string) ([]string, error) {
	seen := make(map[string]bool)
	var urls []string

	if err := s.walk(ctx, sitemapURL, 0, seen, &urls); err != nil {
		return nil, err
	}

	return urls, nil
}

func (s *SitemapService) walk(ctx context.Context, sitemapURL string, depth int, seen map[string]bool, urls *[]string) error {
	if depth > maxSitemapDepth {
		return seoscan.Errorf(seoscan.EINVALID, "sitemap index nesting exceeds %d levels at %s", maxSitemapDepth, sitemapURL)
	}
	if seen[sitemapURL] {
		return nil
	}
	seen[sitemapURL] = true

	data, err := s.get(ctx, sitemapURL)
	if err != nil {
		return err
	}

	pageURLs, childSitemaps, err := ParseSitemap(data)
	if err != nil {
		return seoscan.Errorf(seoscan.EINVALID, "parsing sitemap %s: %v", sitemapURL, seoscan.ErrorMessage(err))
	}

	for _, u := range pageURLs {
		if !seen[u] {
			seen[u] = true
			*urls = append(*urls, u)
		}
	}

	for _, child := range childSitemaps {
		if err := s.walk(ctx, child, depth+1, seen, urls); err != nil {
			return err
		}
	}

	return nil
}

func (s *SitemapService) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, seoscan.Errorf(seoscan.EINVALID, "invalid sitemap URL %q: %v", url, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, seoscan.Errorf(seoscan.EFETCH, "fetching sitemap %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, seoscan.Errorf(seoscan.EFETCH, "HTTP %d for sitemap %s", resp.StatusCode, url)
	}

	return io.ReadAll(resp.Body)
}

// ParseSitemap parses a sitemap XML document. For a urlset it returns the
// page URLs; for a sitemap index it returns the child sitemap URLs.
func ParseSitemap(data []byte) (pageURLs, childSitemaps []string, err error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, nil, seoscan.Errorf(seoscan.EINVALID, "malformed XML: %v", err)
	}

	root := doc.Root()
	if root == nil {
		return nil, nil, seoscan.Errorf(seoscan.EINVALID, "sitemap has no root element")
	}

	switch root.Tag {
	case "urlset":
		for _, u := range root.SelectElements("url") {
			if loc := u.SelectElement("loc"); loc != nil {
				if text := loc.Text(); text != "" {
					pageURLs = append(pageURLs, text)
				}
			}
		}
		return pageURLs, nil, nil

	case "sitemapindex":
		for _, sm := range root.SelectElements("sitemap") {
			if loc := sm.SelectElement("loc"); loc != nil {
				if text := loc.Text(); text != "" {
					childSitemaps = append(childSitemaps, text)
				}
			}
		}
		return nil, childSitemaps, nil

	default:
		return nil, nil, seoscan.Errorf(seoscan.EINVALID, "unexpected root element %q", root.Tag)
	}
}
