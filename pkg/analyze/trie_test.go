package analyze

import (
	"strings"
	"testing"
)

func TestPrefixIndexInsertIsIdempotentAtSetLevel(t *testing.T) {
	px := NewPrefixIndex()
	px.Insert("word")
	px.Insert("word")
	px.Insert("word")

	if px.Len() != 1 {
		t.Errorf("Len after repeated inserts = %d, want 1", px.Len())
	}

	found := px.WordsWithPrefix("word")
	if len(found) != 1 {
		t.Fatalf("WordsWithPrefix returned %d entries, want 1", len(found))
	}
	if found[0].Frequency != 3 {
		t.Errorf("stored count = %d, want 3", found[0].Frequency)
	}
}

func TestPrefixIndexEmptyStringGuard(t *testing.T) {
	px := NewPrefixIndex()
	px.Insert("")

	if px.Len() != 0 {
		t.Errorf("Len after empty insert = %d, want 0", px.Len())
	}
	if px.Contains("") {
		t.Error("index reports containing the empty string")
	}
}

func TestPrefixIndexWordsWithPrefix(t *testing.T) {
	px := NewPrefixIndex()
	for _, w := range []string{"sat", "satin", "saturn", "sit"} {
		px.Insert(w)
	}

	found := px.WordsWithPrefix("sat")
	if len(found) != 3 {
		t.Fatalf("WordsWithPrefix(\"sat\") returned %d entries, want 3", len(found))
	}
	seen := make(map[string]bool)
	for _, s := range found {
		if !strings.HasPrefix(s.Word, "sat") {
			t.Errorf("result %q does not share the prefix", s.Word)
		}
		seen[s.Word] = true
	}
	// the prefix itself is an inserted word and must be part of the subtree
	if !seen["sat"] {
		t.Error("WordsWithPrefix(\"sat\") missing the prefix as a complete word")
	}

	if got := px.WordsWithPrefix("zebra"); len(got) != 0 {
		t.Errorf("WordsWithPrefix of unknown prefix = %v, want empty", got)
	}
}

func TestPrefixIndexTraversalIsStable(t *testing.T) {
	px := NewPrefixIndex()
	for _, w := range []string{"car", "cart", "carpet", "card", "care"} {
		px.Insert(w)
	}

	first := px.WordsWithPrefix("car")
	for i := 0; i < 5; i++ {
		again := px.WordsWithPrefix("car")
		if len(again) != len(first) {
			t.Fatalf("traversal length changed between queries")
		}
		for j := range again {
			if again[j] != first[j] {
				t.Fatalf("traversal order changed between identical queries: %v vs %v", again, first)
			}
		}
	}
}
