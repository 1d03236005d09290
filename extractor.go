package apidoc

import "net/url"

// Extractor builds the endpoint catalogue from a parsed documentation page.
type Extractor interface {
	// Extract walks doc and returns its catalogue. Relative documentation
	// links are resolved against base.
	// Returns ESTRUCTURE or ELOOKUP when the page violates the expected
	// markup; no partial catalogue is returned.
	Extract(doc *Element, base *url.URL) (*Catalogue, error)
}
