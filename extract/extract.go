// Package extract implements the rules that turn a parsed documentation page
// into an apidoc.Catalogue. Structural roles are recognized purely from tag
// names and class tokens; any element the rules depend on that is missing
// fails the whole extraction.
package extract

import (
	"fmt"
	"net/url"

	"github.com/fwojciec/apidoc"
)

// Ensure Extractor implements apidoc.Extractor at compile time.
var _ apidoc.Extractor = (*Extractor)(nil)

// Extractor extracts the catalogue from a whole documentation page.
// It holds no state, so one Extractor may serve any number of pages.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract locates the navigation and content regions of doc, indexes the
// navigation links and extracts the catalogue from the content region.
func (x *Extractor) Extract(doc *apidoc.Element, base *url.URL) (*apidoc.Catalogue, error) {
	nav, err := apidoc.RequireElement(doc.Find(apidoc.ByTag(TagNav)), "navigation region <nav>")
	if err != nil {
		return nil, err
	}

	content, err := findContentRoot(doc)
	if err != nil {
		return nil, err
	}

	idx, err := BuildNavigationIndex(nav, base)
	if err != nil {
		return nil, err
	}

	return ExtractCatalogue(content, idx)
}

func findContentRoot(doc *apidoc.Element) (*apidoc.Element, error) {
	if content := doc.Find(apidoc.ByClass(ClassContent)); content != nil {
		return content, nil
	}
	return apidoc.RequireElement(doc.Find(apidoc.ByTag(TagMain)), "content region")
}

// ExtractCatalogue extracts every section under root in document order.
// A repeated section name replaces the earlier section.
func ExtractCatalogue(root *apidoc.Element, idx apidoc.NavigationIndex) (*apidoc.Catalogue, error) {
	catalogue := apidoc.NewCatalogue()
	for i, el := range root.FindAll(IsSection) {
		section, err := ExtractSection(el, idx)
		if err != nil {
			return nil, fmt.Errorf("section %d: %w", i+1, err)
		}
		catalogue.Set(section)
	}
	return catalogue, nil
}

// ExtractSection extracts a section's name from its group heading and its
// endpoints in document order. A repeated endpoint name replaces the
// earlier endpoint.
func ExtractSection(el *apidoc.Element, idx apidoc.NavigationIndex) (*apidoc.Section, error) {
	heading, err := apidoc.RequireElement(el.Find(IsGroupHeading), "section group heading")
	if err != nil {
		return nil, err
	}
	section := apidoc.NewSection(apidoc.Normalize(heading.Text()))

	for i, block := range el.FindAll(IsEndpoint) {
		ep, err := ExtractEndpoint(block, idx, section.Name)
		if err != nil {
			return nil, fmt.Errorf("section %q: endpoint %d: %w", section.Name, i+1, err)
		}
		section.Set(ep)
	}
	return section, nil
}

// ExtractEndpoint extracts one endpoint block. The block's first element
// child holds the name, the second holds the method and URI elements, and
// the rest make up the description. The documentation link is looked up in
// idx under section and the endpoint name.
//
// Returns ESTRUCTURE if the block or its method holder has too few element
// children, and ELOOKUP if the navigation has no link for the endpoint.
func ExtractEndpoint(block *apidoc.Element, idx apidoc.NavigationIndex, section string) (*apidoc.Endpoint, error) {
	children := block.Elements()
	if len(children) < 3 {
		return nil, apidoc.Errorf(apidoc.ESTRUCTURE, "insufficient endpoint structure: %d element children, need at least 3", len(children))
	}

	name := apidoc.Normalize(children[0].Text())

	request := children[1].Elements()
	if len(request) < 2 {
		return nil, apidoc.Errorf(apidoc.ESTRUCTURE, "insufficient endpoint structure: %q has no method and URI", name)
	}

	link, err := idx.Lookup(section, name)
	if err != nil {
		return nil, err
	}

	return &apidoc.Endpoint{
		Name:        name,
		Method:      apidoc.Normalize(request[0].Text()),
		URI:         apidoc.Normalize(request[1].Text()),
		Link:        link,
		Description: ExtractDescription(children[2:]),
	}, nil
}
