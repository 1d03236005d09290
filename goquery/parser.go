// Package goquery provides an implementation of apidoc.Parser backed by
// goquery and golang.org/x/net/html.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/apidoc"
	"golang.org/x/net/html"
)

// Ensure Parser implements apidoc.Parser at compile time.
var _ apidoc.Parser = (*Parser)(nil)

// noise matches elements whose text is never documentation content.
var noise = cascadia.MustCompile("script, style, noscript, template")

// Parser parses HTML documents into typed apidoc trees.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses html and returns its root <html> element. Script and style
// elements, comments and doctypes are dropped.
func (p *Parser) Parse(s string) (*apidoc.Element, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return nil, apidoc.Errorf(apidoc.EINVALID, "failed to parse HTML: %v", err)
	}

	doc.FindMatcher(noise).Remove()

	root := doc.Find("html")
	if root.Length() == 0 {
		return nil, apidoc.Errorf(apidoc.EINVALID, "failed to parse HTML: no <html> element")
	}

	el, ok := convert(root.Get(0)).(*apidoc.Element)
	if !ok {
		return nil, apidoc.Errorf(apidoc.EINTERNAL, "root is not an element")
	}
	return el, nil
}

// convert maps an x/net/html node to its typed counterpart, returning nil
// for node kinds the tree does not model.
func convert(n *html.Node) apidoc.Node {
	switch n.Type {
	case html.TextNode:
		return apidoc.NewText(n.Data)
	case html.ElementNode:
		el := &apidoc.Element{Tag: n.Data}
		for _, a := range n.Attr {
			el.Attrs = append(el.Attrs, apidoc.Attribute{Key: a.Key, Val: a.Val})
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if child := convert(c); child != nil {
				el.Children = append(el.Children, child)
			}
		}
		return el
	}
	return nil
}
