// core/exam/assemble.go
package exam

import (
	"math/rand"

	"examgen-core/vocab"
)

// Picker supplies wrong answers for one question. Implemented by
// distractor.Selector.
type Picker interface {
	Pick(rng *rand.Rand, correct, category string, k int) []string
}

// Options controls assembly.
type Options struct {
	Shuffle bool // shuffle the options; otherwise the correct answer stays at 'a'
	Start   int  // number of the first question (values < 1 mean 1)
}

// Assemble builds one Question per entry, in entry order. Options are
// [correct] + distractors, shuffled through the shared rng; the answer
// letter tracks wherever the correct meaning lands.
func Assemble(rng *rand.Rand, entries []vocab.Entry, picker Picker, opts Options) []Question {
	n := opts.Start
	if n < 1 {
		n = 1
	}
	qs := make([]Question, 0, len(entries))
	for _, e := range entries {
		options := append([]string{e.Meaning},
			picker.Pick(rng, e.Meaning, e.Category, DistractorCount)...)
		if opts.Shuffle {
			rng.Shuffle(len(options), func(i, j int) {
				options[i], options[j] = options[j], options[i]
			})
		}
		correct := 0
		for i, opt := range options {
			if opt == e.Meaning {
				correct = i
				break
			}
		}
		qs = append(qs, Question{
			Number:   n,
			Headword: e.Headword,
			Options:  options,
			Answer:   byte('a' + correct),
		})
		n++
	}
	return qs
}
