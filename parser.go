package apidoc

// Parser turns raw HTML into the typed document tree.
type Parser interface {
	// Parse returns the root <html> element of the document.
	Parse(html string) (*Element, error)
}
