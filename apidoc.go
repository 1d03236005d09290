// Package apidoc extracts a structured catalogue of API endpoints from a
// vendor's HTML API documentation page. For every documented endpoint it
// records the HTTP method, the URI template, a link back to the endpoint's
// documentation anchor and a typed rendition of its description, grouped by
// documentation section.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, rod/, yaml/).
// The extraction rules themselves live in extract/ and operate only on the
// typed tree defined here, so they never perform I/O.
package apidoc
