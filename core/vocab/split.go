// core/vocab/split.go
package vocab

import (
	"regexp"
	"strings"
)

// separators are the split strategies for delimiter-separated lines,
// tried in priority order. The first one that cuts the line into two
// non-empty trimmed halves wins.
var separators = []*regexp.Regexp{
	regexp.MustCompile(`\t`),
	regexp.MustCompile(`\s*:\s*`),
	regexp.MustCompile(`\s*-\s*`),
	regexp.MustCompile(`\s{2,}`),
}

// SplitLine parses one delimiter-separated vocab line into an Entry.
// Blank lines, '#' comment lines, and lines no strategy can split
// report ok=false and are skipped by the loader. When every separator
// fails, the line is split once on the first single space.
func SplitLine(line string) (Entry, bool) {
	s := strings.TrimSpace(line)
	if s == "" || strings.HasPrefix(s, "#") {
		return Entry{}, false
	}
	for _, sep := range separators {
		loc := sep.FindStringIndex(s)
		if loc == nil {
			continue
		}
		left := strings.TrimSpace(s[:loc[0]])
		right := strings.TrimSpace(s[loc[1]:])
		if left != "" && right != "" {
			return Entry{Headword: left, Meaning: right}, true
		}
	}
	if i := strings.IndexByte(s, ' '); i >= 0 {
		left := strings.TrimSpace(s[:i])
		right := strings.TrimSpace(s[i+1:])
		if left != "" && right != "" {
			return Entry{Headword: left, Meaning: right}, true
		}
	}
	return Entry{}, false
}
