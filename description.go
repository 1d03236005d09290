package apidoc

// ItemKind discriminates the variants of DescriptionItem.
type ItemKind string

// ItemKind constants. The values are the tags used on the wire.
const (
	KindParagraph ItemKind = "p"
	KindHeading   ItemKind = "h4"
	KindTable     ItemKind = "table"
	KindNote      ItemKind = "note"
)

// DescriptionItem is one block of an endpoint's description. Consumers
// switch on Kind (or on the concrete type) before reading any content.
type DescriptionItem interface {
	Kind() ItemKind
}

// Paragraph is a normalized text paragraph.
type Paragraph struct {
	Text string
}

// Kind returns KindParagraph.
func (Paragraph) Kind() ItemKind { return KindParagraph }

// Heading is a sub-heading inside a description.
type Heading struct {
	Text string
}

// Kind returns KindHeading.
func (Heading) Kind() ItemKind { return KindHeading }

// Table holds cell texts row by row. Rows may differ in length.
type Table struct {
	Rows [][]string
}

// Kind returns KindTable.
func (Table) Kind() ItemKind { return KindTable }

// Note is a callout block; Segments are the non-empty texts of its direct
// children in order.
type Note struct {
	Segments []string
}

// Kind returns KindNote.
func (Note) Kind() ItemKind { return KindNote }
