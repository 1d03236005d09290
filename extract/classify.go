package extract

import "github.com/fwojciec/apidoc"

// Class tokens and tags of the documentation page's markup.
const (
	ClassContent       = "content"
	ClassResourceGroup = "resource-group"
	ClassGroupLink     = "rg-link"
	ClassActionLink    = "rg-r-a-link"
	ClassGroupHeading  = "group-heading"
	ClassAction        = "action"
	ClassNote          = "note"

	TagNav       = "nav"
	TagMain      = "main"
	TagParagraph = "p"
	TagHeading   = "h4"
	TagTable     = "table"
	TagHead      = "thead"
	TagBody      = "tbody"
	TagFoot      = "tfoot"
	TagRow       = "tr"
	TagHeadCell  = "th"
	TagDataCell  = "td"
)

// Structural role predicates.
var (
	IsNavigationGroup = apidoc.ByClass(ClassResourceGroup)
	IsGroupLink       = apidoc.ByClass(ClassGroupLink)
	IsActionLink      = apidoc.ByClass(ClassActionLink)
	IsSection         = apidoc.ByClass(ClassResourceGroup)
	IsGroupHeading    = apidoc.ByClass(ClassGroupHeading)
	IsEndpoint        = apidoc.ByClass(ClassAction)
	IsNote            = apidoc.ByClass(ClassNote)
	IsRow             = apidoc.ByTag(TagRow)
)

// IsCell matches header and data table cells.
func IsCell(e *apidoc.Element) bool {
	return e.Tag == TagHeadCell || e.Tag == TagDataCell
}

// Role is the part an element plays inside an endpoint description.
type Role int

// Role constants.
const (
	RoleOther Role = iota
	RoleParagraph
	RoleHeading
	RoleTable
	RoleNote
)

// Classify returns the description role of e. The note class wins over the
// tag, so <p class="note"> is a note.
func Classify(e *apidoc.Element) Role {
	if IsNote(e) {
		return RoleNote
	}
	switch e.Tag {
	case TagParagraph:
		return RoleParagraph
	case TagHeading:
		return RoleHeading
	case TagTable:
		return RoleTable
	}
	return RoleOther
}
