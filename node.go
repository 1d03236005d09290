package apidoc

import "strings"

// Node is a node of a parsed HTML document. It is either an *Element or a
// *TextNode; comments and doctypes are dropped by the parser.
type Node interface {
	// Text returns the concatenated text of the node and its descendants.
	Text() string

	node()
}

// TextNode is a run of character data.
type TextNode struct {
	Data string
}

// NewText returns a TextNode holding data.
func NewText(data string) *TextNode {
	return &TextNode{Data: data}
}

// Text returns the node's character data.
func (t *TextNode) Text() string { return t.Data }

func (t *TextNode) node() {}

// Attribute is a single element attribute.
type Attribute struct {
	Key string
	Val string
}

// Element is an HTML element with its attributes and children in document
// order. Elements are never mutated once the parser hands them over.
type Element struct {
	Tag      string
	Attrs    []Attribute
	Children []Node
}

// NewElement returns an element with the given tag, class attribute and
// children. An empty class adds no attribute.
func NewElement(tag, class string, children ...Node) *Element {
	e := &Element{Tag: tag, Children: children}
	if class != "" {
		e.Attrs = append(e.Attrs, Attribute{Key: "class", Val: class})
	}
	return e
}

func (e *Element) node() {}

// Attr returns the value of the named attribute.
func (e *Element) Attr(key string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// Classes returns the whitespace-separated tokens of the class attribute.
func (e *Element) Classes() []string {
	class, _ := e.Attr("class")
	return strings.Fields(class)
}

// HasClass reports whether token is one of the element's class tokens.
// Matching is by whole token, so "noted" does not match "note".
func (e *Element) HasClass(token string) bool {
	for _, c := range e.Classes() {
		if c == token {
			return true
		}
	}
	return false
}

// Text returns the concatenated text of all descendant text nodes.
func (e *Element) Text() string {
	var b strings.Builder
	e.writeText(&b)
	return b.String()
}

func (e *Element) writeText(b *strings.Builder) {
	for _, c := range e.Children {
		switch n := c.(type) {
		case *TextNode:
			b.WriteString(n.Data)
		case *Element:
			n.writeText(b)
		}
	}
}

// Elements returns the element children of e in document order.
func (e *Element) Elements() []*Element {
	return FilterElements(e.Children)
}

// Matcher reports whether an element plays some structural role.
type Matcher func(*Element) bool

// ByTag matches elements with the given tag name.
func ByTag(tag string) Matcher {
	return func(e *Element) bool { return e.Tag == tag }
}

// ByClass matches elements carrying the given class token.
func ByClass(token string) Matcher {
	return func(e *Element) bool { return e.HasClass(token) }
}

// Find returns the first descendant of e, in document order, accepted by
// match. The element itself is not considered. Returns nil if none match.
func (e *Element) Find(match Matcher) *Element {
	for _, c := range e.Elements() {
		if match(c) {
			return c
		}
		if found := c.Find(match); found != nil {
			return found
		}
	}
	return nil
}

// FindAll returns every descendant of e accepted by match, in document
// order. Matches nested inside other matches are included.
func (e *Element) FindAll(match Matcher) []*Element {
	var found []*Element
	e.findAll(match, &found)
	return found
}

func (e *Element) findAll(match Matcher, found *[]*Element) {
	for _, c := range e.Elements() {
		if match(c) {
			*found = append(*found, c)
		}
		c.findAll(match, found)
	}
}

// FilterElements keeps the element nodes of nodes, preserving order.
// Text nodes are dropped silently: whitespace between tags is not data.
func FilterElements(nodes []Node) []*Element {
	elems := make([]*Element, 0, len(nodes))
	for _, n := range nodes {
		if e, ok := n.(*Element); ok && e != nil {
			elems = append(elems, e)
		}
	}
	return elems
}

// RequireElement returns n as an element, or an ESTRUCTURE error naming what
// was expected when n is missing or is not an element.
func RequireElement(n Node, what string) (*Element, error) {
	e, ok := n.(*Element)
	if !ok || e == nil {
		return nil, Errorf(ESTRUCTURE, "missing %s", what)
	}
	return e, nil
}
