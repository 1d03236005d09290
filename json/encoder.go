// Package json encodes extraction results as JSON.
//
// A successful result is written as
//
//	{"data": {<section>: {<endpoint>: {"endpoint_link": ..., "method": ...,
//	  "uri": ..., "description": [...]}}}}
//
// and a failed one as {"error": ..., "traceback": ...}. Description items
// are arrays led by their kind: ["p", text], ["h4", text],
// ["table", [[cell, ...], ...]] and ["note", segment, ...].
// Sections and endpoints keep document order.
package json

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/fwojciec/apidoc"
)

// DefaultIndent is the indentation of each nesting level.
const DefaultIndent = "    "

// Ensure Encoder implements apidoc.Encoder at compile time.
var _ apidoc.Encoder = (*Encoder)(nil)

// Encoder writes results as indented JSON without escaping HTML characters
// or non-ASCII text.
type Encoder struct {
	indent string
}

// Option configures an Encoder.
type Option func(*Encoder)

// WithIndent sets the per-level indentation. An empty indent produces
// compact output.
func WithIndent(indent string) Option {
	return func(e *Encoder) {
		e.indent = indent
	}
}

// NewEncoder creates a new Encoder.
func NewEncoder(opts ...Option) *Encoder {
	e := &Encoder{indent: DefaultIndent}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Encode writes r to w followed by a newline.
func (e *Encoder) Encode(w io.Writer, r *apidoc.Result) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if e.indent != "" {
		enc.SetIndent("", e.indent)
	}
	return enc.Encode(result(r))
}

func result(r *apidoc.Result) object {
	if r.Failed() {
		return object{
			{"error", r.Error},
			{"traceback", r.Trace},
		}
	}
	return object{{"data", catalogue(r.Data)}}
}

func catalogue(c *apidoc.Catalogue) object {
	obj := make(object, 0, c.Len())
	for _, s := range c.Sections() {
		obj = append(obj, member{s.Name, section(s)})
	}
	return obj
}

func section(s *apidoc.Section) object {
	obj := make(object, 0, s.Len())
	for _, ep := range s.Endpoints() {
		obj = append(obj, member{ep.Name, endpoint(ep)})
	}
	return obj
}

func endpoint(ep *apidoc.Endpoint) object {
	items := make([]any, 0, len(ep.Description))
	for _, item := range ep.Description {
		items = append(items, descriptionItem(item))
	}
	return object{
		{"endpoint_link", ep.Link},
		{"method", ep.Method},
		{"uri", ep.URI},
		{"description", items},
	}
}

func descriptionItem(item apidoc.DescriptionItem) []any {
	switch item := item.(type) {
	case apidoc.Paragraph:
		return []any{apidoc.KindParagraph, item.Text}
	case apidoc.Heading:
		return []any{apidoc.KindHeading, item.Text}
	case apidoc.Table:
		rows := item.Rows
		if rows == nil {
			rows = [][]string{}
		}
		return []any{apidoc.KindTable, rows}
	case apidoc.Note:
		arr := []any{apidoc.KindNote}
		for _, seg := range item.Segments {
			arr = append(arr, seg)
		}
		return arr
	}
	return []any{item.Kind()}
}

// object is a JSON object that keeps its members in order.
type object []member

type member struct {
	key   string
	value any
}

// MarshalJSON implements json.Marshaler.
func (o object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, m := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := marshal(m.key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := marshal(m.value)
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// marshal is json.Marshal without HTML escaping.
func marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
