package apidoc

import "strings"

// Pilcrow is the decorative permalink marker the documentation site appends
// to headings.
const Pilcrow = "¶"

// Normalize collapses every whitespace run in s to a single space, trims the
// ends and removes all pilcrow markers. Normalize is idempotent.
func Normalize(s string) string {
	// Markers go first so a trailing marker cannot leave a trailing space.
	s = strings.ReplaceAll(s, Pilcrow, "")
	return strings.Join(strings.Fields(s), " ")
}
