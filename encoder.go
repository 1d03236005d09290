package apidoc

import "io"

// Encoder serializes an extraction result.
type Encoder interface {
	Encode(w io.Writer, r *Result) error
}
