package fs

import (
	"os"
	"path/filepath"

	"github.com/fwojciec/apidoc"
)

// Writer writes encoded results to files with atomic replace semantics:
// the result is written to a temporary file in the target directory and
// renamed over the target only once encoding succeeded.
type Writer struct {
	encoder apidoc.Encoder
}

// NewWriter creates a new Writer using enc.
func NewWriter(enc apidoc.Encoder) *Writer {
	return &Writer{encoder: enc}
}

// WriteResult encodes r into the file at path, creating parent directories.
// On failure the previous content of path, if any, is left untouched.
func (w *Writer) WriteResult(path string, r *apidoc.Result) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if err := w.encoder.Encode(tmp, r); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}
