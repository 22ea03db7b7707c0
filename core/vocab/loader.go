// core/vocab/loader.go
package vocab

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

// ParseFunc turns one raw input line into an Entry; ok=false skips the
// line. SplitLine and ParseTagged both satisfy it.
type ParseFunc func(line string) (Entry, bool)

// ErrNoEntries is returned when an input yields zero parseable entries.
var ErrNoEntries = errors.New("no valid vocab lines found in input")

// Load reads entries line by line in input order. One line failing to
// parse never affects its neighbours. With dedupe set, only the first
// occurrence of each headword (exact string match) is kept.
func Load(r io.Reader, parse ParseFunc, dedupe bool) ([]Entry, error) {
	var list []Entry
	seen := make(map[string]struct{})
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		e, ok := parse(sc.Text())
		if !ok {
			continue
		}
		if dedupe {
			if _, dup := seen[e.Headword]; dup {
				continue
			}
			seen[e.Headword] = struct{}{}
		}
		list = append(list, e)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, ErrNoEntries
	}
	return list, nil
}

// LoadFile opens path ("-" for stdin) and delegates to Load.
func LoadFile(path string, parse ParseFunc, dedupe bool) ([]Entry, error) {
	if path == "-" {
		return Load(os.Stdin, parse, dedupe)
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()

	list, err := Load(fh, parse, dedupe)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return list, nil
}
