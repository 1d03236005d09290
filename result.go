package apidoc

// Result is the outcome of one extraction run: either Data or Error (with
// its Trace) is set, never both.
type Result struct {
	Data  *Catalogue
	Error string
	Trace string
}

// NewResult returns a successful result holding c.
func NewResult(c *Catalogue) *Result {
	return &Result{Data: c}
}

// NewErrorResult returns a failed result describing err.
func NewErrorResult(err error) *Result {
	return &Result{
		Error: err.Error(),
		Trace: ErrorTrace(err),
	}
}

// Failed reports whether the run failed.
func (r *Result) Failed() bool {
	return r.Data == nil
}
