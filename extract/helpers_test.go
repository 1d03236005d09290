package extract_test

import (
	"fmt"
	"net/url"
	"strings"
	"testing"

	"github.com/fwojciec/apidoc"
	"github.com/stretchr/testify/require"
)

const testBaseURL = "https://apidocs.example.com/apidoc"

func el(tag, class string, children ...apidoc.Node) *apidoc.Element {
	return apidoc.NewElement(tag, class, children...)
}

func txt(s string) *apidoc.TextNode {
	return apidoc.NewText(s)
}

func link(class, href, text string) *apidoc.Element {
	a := el("a", class, txt(text))
	a.Attrs = append(a.Attrs, apidoc.Attribute{Key: "href", Val: href})
	return a
}

func mustBase(t *testing.T) *url.URL {
	t.Helper()
	u, err := url.Parse(testBaseURL)
	require.NoError(t, err)
	return u
}

// endpointBlock builds an endpoint block with interleaved whitespace the way
// a real page has it.
func endpointBlock(name, method, uri string, description ...apidoc.Node) *apidoc.Element {
	children := []apidoc.Node{
		txt("\n  "),
		el("div", "name", txt(name)),
		txt("\n  "),
		el("div", "request",
			el("span", "method", txt(method)),
			txt(" "),
			el("code", "uri", txt(uri)),
		),
	}
	for _, d := range description {
		children = append(children, txt("\n  "), d)
	}
	return el("div", "action", children...)
}

func anchor(section, endpoint string) string {
	slug := strings.ToLower(strings.ReplaceAll(section+"-"+endpoint, " ", "-"))
	return "#" + slug
}

// renderPage builds a documentation page tree for c, the inverse of the
// extraction. Every endpoint description is followed by a request example
// that extraction must drop.
func renderPage(c *apidoc.Catalogue) *apidoc.Element {
	nav := el("nav", "")
	content := el("div", "content")

	for _, s := range c.Sections() {
		var items []apidoc.Node
		var blocks []apidoc.Node
		for _, ep := range s.Endpoints() {
			items = append(items, el("li", "", link("rg-r-a-link", anchor(s.Name, ep.Name), ep.Name)))

			var desc []apidoc.Node
			for _, item := range ep.Description {
				desc = append(desc, renderItem(item))
			}
			desc = append(desc,
				el("h4", "", txt("Example URI")),
				el("div", "definition", el("p", "", txt(ep.Method+" "+ep.URI))),
			)
			blocks = append(blocks, endpointBlock(ep.Name, ep.Method, ep.URI, desc...))
		}

		nav.Children = append(nav.Children, el("div", "resource-group",
			el("div", "heading", link("rg-link", anchor(s.Name, ""), s.Name)),
			el("ul", "", items...),
		))

		section := el("section", "resource-group",
			el("h2", "group-heading", txt(s.Name+" "), link("permalink", anchor(s.Name, ""), apidoc.Pilcrow)),
		)
		section.Children = append(section.Children, el("div", "resource", blocks...))
		content.Children = append(content.Children, section)
	}

	return el("html", "", el("body", "", nav, content))
}

func renderItem(item apidoc.DescriptionItem) apidoc.Node {
	switch item := item.(type) {
	case apidoc.Paragraph:
		return el("p", "", txt(item.Text))
	case apidoc.Heading:
		return el("h4", "", txt(item.Text+" "), el("a", "permalink", txt(apidoc.Pilcrow)))
	case apidoc.Table:
		body := el("tbody", "")
		for _, row := range item.Rows {
			tr := el("tr", "")
			for _, cell := range row {
				tr.Children = append(tr.Children, txt("\n"), el("td", "", txt(cell)))
			}
			body.Children = append(body.Children, tr)
		}
		return el("table", "", body)
	case apidoc.Note:
		note := el("div", "note")
		for _, seg := range item.Segments {
			note.Children = append(note.Children, txt("\n"), el("p", "", txt(seg)))
		}
		return note
	}
	panic(fmt.Sprintf("unknown item %T", item))
}
