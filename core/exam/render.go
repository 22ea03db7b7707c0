// core/exam/render.go
package exam

import (
	"fmt"
	"io"
	"strings"
)

// Render writes the exam document: an optional "Title:" line, then one
// block per question separated by a single blank line. Trailing
// whitespace is trimmed and the document ends with exactly one newline.
func Render(w io.Writer, title string, qs []Question) error {
	var b strings.Builder
	if title != "" {
		fmt.Fprintf(&b, "Title: %s\n\n", title)
	}
	for i, q := range qs {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "Question %d: %s\n", q.Number, q.Headword)
		for j, opt := range q.Options {
			fmt.Fprintf(&b, "%c. %s\n", 'a'+j, opt)
		}
		fmt.Fprintf(&b, "Answer: %c\n", q.Answer)
	}
	doc := strings.TrimRight(b.String(), " \t\n") + "\n"
	_, err := io.WriteString(w, doc)
	return err
}
