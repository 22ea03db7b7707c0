// core/distractor/selector_test.go
package distractor

import (
	"math/rand"
	"testing"

	"examgen-core/vocab"
)

func entriesA() []vocab.Entry {
	return []vocab.Entry{
		{Headword: "puella", Meaning: "girl"},
		{Headword: "puer", Meaning: "boy"},
		{Headword: "aqua", Meaning: "water"},
		{Headword: "ager", Meaning: "field"},
		{Headword: "via", Meaning: "road"},
	}
}

func TestPooledPickExcludesCorrect(t *testing.T) {
	s := NewPooled(entriesA())
	rng := rand.New(rand.NewSource(42))
	got := s.Pick(rng, "girl", "", 3)
	if len(got) != 3 {
		t.Fatalf("want 3 distractors, got %v", got)
	}
	seen := map[string]bool{}
	for _, d := range got {
		if d == "girl" {
			t.Errorf("correct meaning leaked into distractors: %v", got)
		}
		if seen[d] {
			t.Errorf("duplicate distractor %q in %v", d, got)
		}
		seen[d] = true
	}
}

func TestPooledPickCaseInsensitiveExclusion(t *testing.T) {
	s := NewPooled([]vocab.Entry{
		{Headword: "puella", Meaning: "girl"},
		{Headword: "femina", Meaning: "GIRL"},
	})
	rng := rand.New(rand.NewSource(1))
	for _, d := range s.Pick(rng, "girl", "", 3) {
		if d == "girl" || d == "GIRL" {
			t.Fatalf("case variant of correct meaning chosen: %v", d)
		}
	}
}

func TestPooledPickReproducible(t *testing.T) {
	s := NewPooled(entriesA())
	a := s.Pick(rand.New(rand.NewSource(7)), "girl", "", 3)
	b := s.Pick(rand.New(rand.NewSource(7)), "girl", "", 3)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed produced different picks: %v vs %v", a, b)
		}
	}
}

func TestPooledScarcityUsesFallback(t *testing.T) {
	s := NewPooled([]vocab.Entry{{Headword: "puella", Meaning: "girl"}})
	rng := rand.New(rand.NewSource(42))
	got := s.Pick(rng, "girl", "", 3)
	want := []string{"stone", "road", "bird"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("fallback order broken: got %v, want %v", got, want)
		}
	}
}

func TestPooledFallbackSkipsCorrect(t *testing.T) {
	s := NewPooled([]vocab.Entry{{Headword: "saxum", Meaning: "stone"}})
	rng := rand.New(rand.NewSource(42))
	got := s.Pick(rng, "stone", "", 3)
	want := []string{"road", "bird", "forest"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestCategorizedPrefersSameCategory(t *testing.T) {
	entries := []vocab.Entry{
		{Headword: "ago", Meaning: "to drive", Category: "verb"},
		{Headword: "amo", Meaning: "to love", Category: "verb"},
		{Headword: "duco", Meaning: "to lead", Category: "verb"},
		{Headword: "rego", Meaning: "to rule", Category: "verb"},
		{Headword: "circa", Meaning: "around", Category: "preposition"},
	}
	s := NewCategorized(entries)
	rng := rand.New(rand.NewSource(42))
	got := s.Pick(rng, "to drive", "verb", 3)
	verbs := map[string]bool{"to love": true, "to lead": true, "to rule": true}
	for _, d := range got {
		if !verbs[d] {
			t.Errorf("expected same-category distractor, got %q in %v", d, got)
		}
	}
}

func TestCategorizedBackfillsAcrossCategories(t *testing.T) {
	entries := []vocab.Entry{
		{Headword: "circa", Meaning: "around", Category: "preposition"},
		{Headword: "puella", Meaning: "girl", Category: "noun"},
		{Headword: "puer", Meaning: "boy", Category: "noun"},
		{Headword: "aqua", Meaning: "water", Category: "noun"},
	}
	s := NewCategorized(entries)
	rng := rand.New(rand.NewSource(42))
	got := s.Pick(rng, "around", "preposition", 3)
	if len(got) != 3 {
		t.Fatalf("want 3, got %v", got)
	}
	for _, d := range got {
		if d == "around" {
			t.Errorf("correct meaning leaked: %v", got)
		}
	}
}

func TestCategorizedPadsTinyInput(t *testing.T) {
	s := NewCategorized([]vocab.Entry{{Headword: "circa", Meaning: "around", Category: "preposition"}})
	rng := rand.New(rand.NewSource(42))
	got := s.Pick(rng, "around", "preposition", 3)
	want := []string{"word1", "word2", "word3"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("padding broken: got %v, want %v", got, want)
		}
	}
}
