package apidoc

import (
	"errors"
	"fmt"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

// Application error codes.
const (
	// ESTRUCTURE means the document tree lacks an element the extractor
	// requires, such as a section heading or an endpoint's method holder.
	ESTRUCTURE = "structure"

	// ELOOKUP means the navigation index has no entry for a section and
	// endpoint pair referenced by the content tree.
	ELOOKUP = "lookup"

	EINVALID   = "invalid"
	EFETCH     = "fetch"
	EFORBIDDEN = "forbidden"
	EINTERNAL  = "internal"
)

// Error represents an application-specific error.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Errorf is a helper function to return an Error with a given code and
// formatted message. The returned error records the stack at the call site.
func Errorf(code string, format string, args ...any) error {
	return pkgerrors.WithStack(&Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	})
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error.".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// ErrorTrace renders err for diagnostics: the full message chain followed
// by the innermost recorded stack trace, if any.
func ErrorTrace(err error) string {
	if err == nil {
		return ""
	}

	var st stackTracer
	for e := err; e != nil; e = errors.Unwrap(e) {
		if s, ok := e.(stackTracer); ok {
			st = s
		}
	}

	var b strings.Builder
	b.WriteString(err.Error())
	if st != nil {
		fmt.Fprintf(&b, "%+v", st.StackTrace())
	}
	return b.String()
}
