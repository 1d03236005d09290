package extract

import (
	"strings"

	"github.com/fwojciec/apidoc"
)

// StopMarker ends a description: a heading containing it introduces the
// request and response examples, which are not part of the catalogue.
const StopMarker = "URI"

// ExtractDescription converts the description elements of an endpoint into
// typed items in document order. The walk ends at the first heading whose
// text contains StopMarker. Elements with no description role are skipped.
func ExtractDescription(siblings []*apidoc.Element) []apidoc.DescriptionItem {
	items := make([]apidoc.DescriptionItem, 0, len(siblings))
	for _, el := range siblings {
		switch Classify(el) {
		case RoleParagraph:
			items = append(items, apidoc.Paragraph{Text: apidoc.Normalize(el.Text())})
		case RoleHeading:
			text := el.Text()
			if strings.Contains(text, StopMarker) {
				return items
			}
			items = append(items, apidoc.Heading{Text: apidoc.Normalize(text)})
		case RoleTable:
			items = append(items, extractTable(el))
		case RoleNote:
			items = append(items, extractNote(el))
		}
	}
	return items
}

func extractTable(table *apidoc.Element) apidoc.Table {
	rows := make([][]string, 0)
	for _, tr := range tableRows(table) {
		cells := make([]string, 0)
		for _, cell := range tr.Elements() {
			if IsCell(cell) {
				cells = append(cells, apidoc.Normalize(cell.Text()))
			}
		}
		rows = append(rows, cells)
	}
	return apidoc.Table{Rows: rows}
}

// tableRows returns the rows that belong to table itself: its direct tr
// children and those of its direct thead, tbody and tfoot. Rows of tables
// nested in cells are not included.
func tableRows(table *apidoc.Element) []*apidoc.Element {
	var rows []*apidoc.Element
	for _, child := range table.Elements() {
		switch child.Tag {
		case TagRow:
			rows = append(rows, child)
		case TagHead, TagBody, TagFoot:
			for _, tr := range child.Elements() {
				if IsRow(tr) {
					rows = append(rows, tr)
				}
			}
		}
	}
	return rows
}

func extractNote(note *apidoc.Element) apidoc.Note {
	segments := make([]string, 0, len(note.Children))
	for _, child := range note.Children {
		if text := apidoc.Normalize(child.Text()); text != "" {
			segments = append(segments, text)
		}
	}
	return apidoc.Note{Segments: segments}
}
