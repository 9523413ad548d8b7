package analyze

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/charmbracelet/log"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

func TestTokenize(t *testing.T) {
	testCases := []struct {
		input    string
		expected []string
	}{
		{"the cat sat", []string{"the", "cat", "sat"}},
		{"  The   CAT  ", []string{"the", "cat"}},
		{"\tHello\nWorld\r\n", []string{"hello", "world"}},
		{"", nil},
		{"    ", nil},
		{"one", []string{"one"}},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%q", tc.input), func(t *testing.T) {
			got := Tokenize(tc.input)
			if len(got) == 0 && len(tc.expected) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("Tokenize(%q) = %v, want %v", tc.input, got, tc.expected)
			}
		})
	}
}

func TestLastWord(t *testing.T) {
	testCases := []struct {
		input string
		word  string
		ok    bool
	}{
		{"the cat sat", "sat", true},
		{"  Hello  ", "hello", true},
		{"", "", false},
		{"   \t ", "", false},
	}

	for _, tc := range testCases {
		word, ok := LastWord(tc.input)
		if word != tc.word || ok != tc.ok {
			t.Errorf("LastWord(%q) = (%q, %v), want (%q, %v)", tc.input, word, ok, tc.word, tc.ok)
		}
	}
}

func TestIngestWhitespaceOnlyIsNoOp(t *testing.T) {
	engine := NewEngine()
	engine.Ingest("the cat sat")
	before := engine.Stats()

	if n := engine.Ingest("   \t  "); n != 0 {
		t.Errorf("Ingest of whitespace returned %d, want 0", n)
	}

	after := engine.Stats()
	if !reflect.DeepEqual(before, after) {
		t.Errorf("Whitespace ingest changed stats: before %v, after %v", before, after)
	}
}

func TestIngestTwiceDoublesCountsNotSets(t *testing.T) {
	engine := NewEngine()
	engine.Ingest("the cat sat")
	engine.Ingest("the cat sat")

	stats := engine.Stats()
	if stats["totalWords"] != 6 {
		t.Errorf("totalWords = %d, want 6", stats["totalWords"])
	}
	if stats["distinctWords"] != 3 {
		t.Errorf("distinctWords = %d, want 3", stats["distinctWords"])
	}
	if stats["distinctPairs"] != 2 {
		t.Errorf("distinctPairs = %d, want 2", stats["distinctPairs"])
	}
	if stats["edges"] != 2 {
		t.Errorf("edges = %d, want 2", stats["edges"])
	}

	top := engine.TopWords(10)
	for _, s := range top {
		if s.Frequency != 2 {
			t.Errorf("count for %q = %d, want 2 after double ingest", s.Word, s.Frequency)
		}
	}
}

func TestCompletionsExcludeQueriedWord(t *testing.T) {
	engine := NewEngine()
	engine.Ingest("car cart carpet car")

	for _, s := range engine.Completions("car", 0) {
		if s.Word == "car" {
			t.Error("Completions included the queried word itself")
		}
	}

	got := wordsOf(engine.Completions("car", 0))
	want := map[string]bool{"cart": true, "carpet": true}
	if len(got) != len(want) {
		t.Fatalf("Completions(\"car\") = %v, want cart and carpet", got)
	}
	for _, w := range got {
		if !want[w] {
			t.Errorf("unexpected completion %q", w)
		}
	}
}

func TestCompletionsPrefixRoundTrip(t *testing.T) {
	engine := NewEngine()
	words := []string{"sat", "satin", "saturn", "sit"}
	for _, w := range words {
		engine.Ingest(w)
	}

	// Every strict prefix of an inserted word must surface that word,
	// and never a word outside the prefix subtree.
	for _, w := range words {
		for i := 1; i < len(w); i++ {
			prefix := w[:i]
			found := false
			for _, s := range engine.Completions(prefix, 0) {
				if s.Word == w {
					found = true
				}
				if s.Word[:min(len(s.Word), len(prefix))] != prefix {
					t.Errorf("Completions(%q) returned %q outside the prefix", prefix, s.Word)
				}
			}
			if !found {
				t.Errorf("Completions(%q) missing inserted word %q", prefix, w)
			}
		}
	}
}

func TestCompletionsEmptyAndLimit(t *testing.T) {
	engine := NewEngine()
	engine.Ingest("alpha beta gamma")

	if got := engine.Completions("", 0); len(got) != 0 {
		t.Errorf("Completions of empty word = %v, want empty", got)
	}
	if got := engine.Completions("zz", 0); len(got) != 0 {
		t.Errorf("Completions of unknown prefix = %v, want empty", got)
	}

	engine.Ingest("ga gap gas gag")
	if got := engine.Completions("ga", 2); len(got) != 2 {
		t.Errorf("Completions with limit 2 returned %d results", len(got))
	}
}

func TestPredictNextPrefersHigherCount(t *testing.T) {
	engine := NewEngine()
	engine.Ingest("a b")
	engine.Ingest("a b")
	engine.Ingest("a c")

	next, ok := engine.PredictNext("a")
	if !ok || next != "b" {
		t.Errorf("PredictNext(\"a\") = (%q, %v), want (\"b\", true)", next, ok)
	}

	if _, ok := engine.PredictNext("c"); ok {
		t.Error("PredictNext for a word with no successors reported a result")
	}
}

func TestRelatedWordsFirstObservedOrder(t *testing.T) {
	engine := NewEngine()
	engine.Ingest("a b")
	engine.Ingest("a c")
	engine.Ingest("a b")

	got := engine.RelatedWords("a")
	want := []string{"b", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("RelatedWords(\"a\") = %v, want %v", got, want)
	}

	if got := engine.RelatedWords("never-seen"); len(got) != 0 {
		t.Errorf("RelatedWords for unknown word = %v, want empty", got)
	}
}

// TestChatScenario runs a full session: three sentences, then every query
// inspected against the exact expected corpus state.
func TestChatScenario(t *testing.T) {
	engine := NewEngine()
	for _, sentence := range []string{"the cat sat", "the cat ran", "the dog sat"} {
		engine.Ingest(sentence)
	}

	// the:3, cat:2, sat:2, ran:1, dog:1 -- cat/sat tie resolves to cat,
	// which entered the corpus first
	top := engine.TopWords(2)
	if got := wordsOf(top); !reflect.DeepEqual(got, []string{"the", "cat"}) {
		t.Errorf("TopWords(2) = %v, want [the cat]", got)
	}
	if top[0].Frequency != 3 || top[1].Frequency != 2 {
		t.Errorf("TopWords(2) counts = [%d %d], want [3 2]", top[0].Frequency, top[1].Frequency)
	}

	if got := wordsOf(engine.Completions("sa", 0)); !reflect.DeepEqual(got, []string{"sat"}) {
		t.Errorf("Completions(\"sa\") = %v, want [sat]", got)
	}

	if next, ok := engine.PredictNext("the"); !ok || next != "cat" {
		t.Errorf("PredictNext(\"the\") = (%q, %v), want (\"cat\", true)", next, ok)
	}

	if got := engine.RelatedWords("the"); !reflect.DeepEqual(got, []string{"cat", "dog"}) {
		t.Errorf("RelatedWords(\"the\") = %v, want [cat dog]", got)
	}
}

func TestSummarize(t *testing.T) {
	engine := NewEngine()

	if s := engine.Summarize("the", 5, 8); !s.Empty() {
		t.Errorf("Summary over empty corpus not empty: %+v", s)
	}

	engine.Ingest("the cat sat")
	engine.Ingest("the thermos broke")

	s := engine.Summarize("the", 5, 8)
	if s.Empty() {
		t.Fatal("Summary over populated corpus came back empty")
	}
	if s.Word != "the" {
		t.Errorf("Summary.Word = %q, want \"the\"", s.Word)
	}
	if !s.HasNext || s.Next != "cat" {
		t.Errorf("Summary.Next = (%q, %v), want (\"cat\", true)", s.Next, s.HasNext)
	}
	for _, c := range s.Completions {
		if c.Word == "the" {
			t.Error("Summary completions included the queried word")
		}
	}
}

func wordsOf(suggestions []Suggestion) []string {
	words := make([]string, len(suggestions))
	for i, s := range suggestions {
		words[i] = s.Word
	}
	return words
}
