package mock

import "github.com/mkarpinski/seoscan"

var _ seoscan.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of seoscan.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*seoscan.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*seoscan.ExtractResult, error) {
	return e.ExtractFn(html)
}
