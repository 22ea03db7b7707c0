// core/vocab/tagged.go
package vocab

import (
	"slices"
	"strings"
)

// Categories is the closed part-of-speech vocabulary recognized in
// tagged lines. Matching is case-insensitive.
var Categories = map[string]bool{
	"noun":         true,
	"verb":         true,
	"adjective":    true,
	"adverb":       true,
	"preposition":  true,
	"conjunction":  true,
	"pronoun":      true,
	"interjection": true,
	"numeral":      true,
	"participle":   true,
}

// ParseTagged parses one POS-tagged vocab line, e.g.
//
//	corripio, corripere, corripui, correptum to seize, snatch verb 3-io
//
// The rightmost category token splits the line: everything after it is
// grammatical tags and is discarded; everything before it is headword
// plus meaning. Inside that head segment a literal "to" token starts
// the meaning; without one the first token alone is the headword.
// Lines with no category token, a category token in first position, or
// an empty meaning report ok=false.
func ParseTagged(line string) (Entry, bool) {
	tokens := strings.Fields(line)
	pos := -1
	for i := len(tokens) - 1; i >= 0; i-- {
		if Categories[strings.ToLower(tokens[i])] {
			pos = i
			break
		}
	}
	if pos <= 0 {
		return Entry{}, false
	}

	head := tokens[:pos]
	var hwTokens, glTokens []string
	if t := slices.Index(head, "to"); t >= 0 {
		hwTokens, glTokens = head[:t], head[t:]
	} else {
		hwTokens, glTokens = head[:1], head[1:]
		if len(glTokens) == 0 {
			return Entry{}, false
		}
	}

	hw := strings.TrimRight(strings.Join(hwTokens, " "), ",")
	gl := normalizeGloss(strings.Join(glTokens, " "))
	if hw == "" || gl == "" {
		return Entry{}, false
	}
	return Entry{
		Headword: strings.TrimSpace(hw),
		Meaning:  gl,
		Category: strings.ToLower(tokens[pos]),
	}, true
}

// normalizeGloss strips stray commas and fixes comma/space artifacts
// left by tokenization ("seize , snatch" -> "seize, snatch").
func normalizeGloss(s string) string {
	s = strings.Trim(s, ",")
	s = strings.ReplaceAll(s, " ,", ",")
	s = strings.ReplaceAll(s, "  ", " ")
	return strings.TrimSpace(s)
}
