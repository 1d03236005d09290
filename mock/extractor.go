package mock

import (
	"net/url"

	"github.com/fwojciec/apidoc"
)

var _ apidoc.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of apidoc.Extractor.
type Extractor struct {
	ExtractFn func(doc *apidoc.Element, base *url.URL) (*apidoc.Catalogue, error)
}

func (x *Extractor) Extract(doc *apidoc.Element, base *url.URL) (*apidoc.Catalogue, error) {
	return x.ExtractFn(doc, base)
}
