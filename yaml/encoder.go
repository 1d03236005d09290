// Package yaml encodes extraction results as YAML documents with the same
// shape as the JSON output: a "data" mapping on success, "error" and
// "traceback" on failure. Mappings keep document order.
package yaml

import (
	"io"

	"github.com/fwojciec/apidoc"
	"gopkg.in/yaml.v3"
)

// DefaultIndent is the number of spaces per nesting level.
const DefaultIndent = 2

// Ensure Encoder implements apidoc.Encoder at compile time.
var _ apidoc.Encoder = (*Encoder)(nil)

// Encoder writes results as YAML.
type Encoder struct {
	indent int
}

// NewEncoder creates a new Encoder.
func NewEncoder() *Encoder {
	return &Encoder{indent: DefaultIndent}
}

// Encode writes r to w as a single YAML document.
func (e *Encoder) Encode(w io.Writer, r *apidoc.Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(e.indent)
	if err := enc.Encode(Node(r)); err != nil {
		return err
	}
	return enc.Close()
}

// Node returns the YAML node tree of r.
func Node(r *apidoc.Result) *yaml.Node {
	if r.Failed() {
		return mapping(
			scalar("error"), scalar(r.Error),
			scalar("traceback"), literal(r.Trace),
		)
	}
	return mapping(scalar("data"), catalogue(r.Data))
}

func catalogue(c *apidoc.Catalogue) *yaml.Node {
	n := mapping()
	for _, s := range c.Sections() {
		n.Content = append(n.Content, scalar(s.Name), section(s))
	}
	return n
}

func section(s *apidoc.Section) *yaml.Node {
	n := mapping()
	for _, ep := range s.Endpoints() {
		n.Content = append(n.Content, scalar(ep.Name), endpoint(ep))
	}
	return n
}

func endpoint(ep *apidoc.Endpoint) *yaml.Node {
	items := sequence()
	for _, item := range ep.Description {
		items.Content = append(items.Content, descriptionItem(item))
	}
	return mapping(
		scalar("endpoint_link"), scalar(ep.Link),
		scalar("method"), scalar(ep.Method),
		scalar("uri"), scalar(ep.URI),
		scalar("description"), items,
	)
}

func descriptionItem(item apidoc.DescriptionItem) *yaml.Node {
	n := sequence(scalar(string(item.Kind())))
	switch item := item.(type) {
	case apidoc.Paragraph:
		n.Content = append(n.Content, scalar(item.Text))
	case apidoc.Heading:
		n.Content = append(n.Content, scalar(item.Text))
	case apidoc.Table:
		rows := sequence()
		for _, row := range item.Rows {
			cells := sequence()
			cells.Style = yaml.FlowStyle
			for _, cell := range row {
				cells.Content = append(cells.Content, scalar(cell))
			}
			rows.Content = append(rows.Content, cells)
		}
		n.Content = append(n.Content, rows)
	case apidoc.Note:
		for _, seg := range item.Segments {
			n.Content = append(n.Content, scalar(seg))
		}
	}
	return n
}

func mapping(content ...*yaml.Node) *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map", Content: content}
}

func sequence(content ...*yaml.Node) *yaml.Node {
	return &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Content: content}
}

func scalar(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}

func literal(value string) *yaml.Node {
	n := scalar(value)
	n.Style = yaml.LiteralStyle
	return n
}
