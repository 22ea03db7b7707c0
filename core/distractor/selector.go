// core/distractor/selector.go
package distractor

import (
	"fmt"
	"math/rand"
	"strings"

	"examgen-core/vocab"
)

// FallbackVocabulary tops up pooled selection when the input file is
// too small to supply enough wrong answers. Consumed in fixed order.
var FallbackVocabulary = []string{
	"stone", "road", "bird", "forest", "spear", "island", "army",
	"table", "window", "river", "cloud", "field", "gate", "wall",
	"friend", "enemy", "ship", "harbor", "mountain", "city",
}

// Selector picks wrong-but-plausible answer options for one question.
// Selection is tiered: a primary pool, a cross-category backfill, the
// fixed fallback vocabulary, and finally synthetic padding, so it
// always yields exactly k distractors even from a one-entry file.
type Selector struct {
	meanings   []string            // every entry's meaning, input order
	unique     []string            // meanings deduplicated, first-seen order
	byCategory map[string][]string // meanings grouped by category, input order
	fallback   bool                // consult FallbackVocabulary before padding
	exact      bool                // exact-string exclusion of the correct meaning
}

// NewPooled builds a selector over the deduplicated global meaning
// pool with case-insensitive exclusion of the correct answer, plus the
// fallback vocabulary. Suited to plain delimiter-separated inputs.
func NewPooled(entries []vocab.Entry) *Selector {
	s := &Selector{fallback: true}
	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		s.meanings = append(s.meanings, e.Meaning)
		if _, dup := seen[e.Meaning]; dup {
			continue
		}
		seen[e.Meaning] = struct{}{}
		s.unique = append(s.unique, e.Meaning)
	}
	return s
}

// NewCategorized builds a selector that prefers meanings sharing the
// question's category, backfilling from the whole collection. The
// correct answer is excluded by exact string match. Suited to
// POS-tagged inputs.
func NewCategorized(entries []vocab.Entry) *Selector {
	s := &Selector{exact: true, byCategory: make(map[string][]string)}
	for _, e := range entries {
		s.meanings = append(s.meanings, e.Meaning)
		s.byCategory[e.Category] = append(s.byCategory[e.Category], e.Meaning)
	}
	return s
}

// Pick returns exactly k distractors for the given correct meaning,
// none equal to it, pairwise distinct whenever the pools allow. Every
// randomized draw advances rng, so a fixed seed reproduces the same
// distractor sets run after run.
func (s *Selector) Pick(rng *rand.Rand, correct, category string, k int) []string {
	chosen := make([]string, 0, k)

	if s.byCategory != nil {
		// Tier 1: same-category pool, randomized order.
		pool := s.filter(s.byCategory[category], chosen, correct)
		shuffle(rng, pool)
		chosen = appendDistinct(chosen, pool, k)

		// Tier 2: backfill from the whole collection.
		if len(chosen) < k {
			pool = s.filter(s.meanings, chosen, correct)
			shuffle(rng, pool)
			chosen = appendDistinct(chosen, pool, k)
		}
	} else {
		// Tier 1: global deduplicated pool. With enough candidates
		// this is a straight k-sample without replacement.
		pool := s.filter(s.unique, chosen, correct)
		if len(pool) >= k {
			return sample(rng, pool, k)
		}
		chosen = append(chosen, pool...)
	}

	// Tier 3: fixed fallback vocabulary, fixed order.
	if len(chosen) < k && s.fallback {
		chosen = appendDistinct(chosen, s.filter(FallbackVocabulary, chosen, correct), k)
	}

	// Tier 4: synthetic padding guarantees exactly k.
	for i := 1; len(chosen) < k; i++ {
		chosen = append(chosen, fmt.Sprintf("word%d", i))
	}
	return chosen
}

// filter copies pool minus the correct meaning and anything already
// chosen.
func (s *Selector) filter(pool, chosen []string, correct string) []string {
	out := make([]string, 0, len(pool))
	for _, m := range pool {
		if s.equal(m, correct) || contains(chosen, m) {
			continue
		}
		out = append(out, m)
	}
	return out
}

func (s *Selector) equal(a, b string) bool {
	if s.exact {
		return a == b
	}
	return strings.EqualFold(a, b)
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func shuffle(rng *rand.Rand, list []string) {
	rng.Shuffle(len(list), func(i, j int) { list[i], list[j] = list[j], list[i] })
}

// sample draws k elements from pool without replacement.
func sample(rng *rand.Rand, pool []string, k int) []string {
	out := make([]string, k)
	for i, j := range rng.Perm(len(pool))[:k] {
		out[i] = pool[j]
	}
	return out
}

// appendDistinct moves items from src to dst, skipping duplicates,
// until dst holds k elements.
func appendDistinct(dst, src []string, k int) []string {
	for _, m := range src {
		if len(dst) == k {
			break
		}
		if contains(dst, m) {
			continue
		}
		dst = append(dst, m)
	}
	return dst
}
