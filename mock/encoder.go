package mock

import (
	"io"

	"github.com/fwojciec/apidoc"
)

var _ apidoc.Encoder = (*Encoder)(nil)

// Encoder is a mock implementation of apidoc.Encoder.
type Encoder struct {
	EncodeFn func(w io.Writer, r *apidoc.Result) error
}

func (e *Encoder) Encode(w io.Writer, r *apidoc.Result) error {
	return e.EncodeFn(w, r)
}
