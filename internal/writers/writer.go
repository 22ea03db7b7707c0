// internal/writers/writer.go
package writers

import (
	"errors"
	"io"
	"os"
	"syscall"

	"examgen-core/exam"
)

// WriteDocument renders the exam to path, or to w when path is "-".
// File output is written whole or not at all from the caller's point
// of view: render errors surface before the status line is printed.
func WriteDocument(path string, w io.Writer, title string, qs []exam.Question) error {
	if path == "-" {
		return exam.Render(w, title, qs)
	}
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := exam.Render(fh, title, qs); err != nil {
		_ = fh.Close()
		return err
	}
	return fh.Close()
}

// IsBrokenPipe reports whether an error is a broken or closed pipe, so
// `examgen ... -o - | head` exits cleanly.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
