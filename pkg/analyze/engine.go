package analyze

import (
	"sort"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// Suggestion pairs a word with its occurrence count
type Suggestion struct {
	Word      string
	Frequency int
}

// Summary bundles the four query results for one word, typically the last
// word of a just-ingested sentence.
type Summary struct {
	Word        string
	Top         []Suggestion
	Completions []Suggestion
	Next        string
	HasNext     bool
	Related     []string
}

// Empty reports whether every query in the summary came back with nothing
func (s Summary) Empty() bool {
	return len(s.Top) == 0 && len(s.Completions) == 0 && !s.HasNext && len(s.Related) == 0
}

// Engine composes the four corpus structures and keeps them in lockstep:
// every ingested sentence updates all of them from the same token sequence,
// so queries always see an identical view of the corpus.
//
// An RWMutex serializes writers, which lets the IPC server and CLI share an
// engine without external coordination. All counts are monotonic; nothing is
// ever removed for the lifetime of the engine.
type Engine struct {
	mu          sync.RWMutex
	index       *PrefixIndex
	transitions *TransitionCounter
	graph       *AdjacencyGraph
	freqs       *FrequencyTable
	sentences   int
}

// NewEngine initializes an empty engine
func NewEngine() *Engine {
	return &Engine{
		index:       NewPrefixIndex(),
		transitions: NewTransitionCounter(),
		graph:       NewAdjacencyGraph(),
		freqs:       NewFrequencyTable(),
	}
}

// Tokenize splits raw text on runs of whitespace, lowercases every token and
// drops empties. The same rule is used everywhere: ingestion, last-word
// derivation and the presentation layers.
func Tokenize(text string) []string {
	return strings.Fields(strings.ToLower(text))
}

// LastWord returns the final token of text under the ingestion tokenization
// rule, false when the text holds no tokens at all.
func LastWord(text string) (string, bool) {
	words := Tokenize(text)
	if len(words) == 0 {
		return "", false
	}
	return words[len(words)-1], true
}

// Ingest folds one sentence into the corpus. Whitespace-only text touches
// nothing. Returns the number of words ingested.
func (e *Engine) Ingest(text string) int {
	words := Tokenize(text)
	if len(words) == 0 {
		return 0
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	for _, w := range words {
		e.freqs.Increment(w)
		e.index.Insert(w)
	}
	e.transitions.Record(words)
	for i := 0; i+1 < len(words); i++ {
		e.graph.Record(words[i], words[i+1])
	}
	e.sentences++

	log.Debugf("Ingested %d words, corpus now holds %d distinct", len(words), e.freqs.Distinct())
	return len(words)
}

// TopWords returns up to n words ranked by occurrence count, ties broken by
// first-observed order
func (e *Engine) TopWords(n int) []Suggestion {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.freqs.TopN(n)
}

// Completions returns known words sharing word as prefix, ranked by
// occurrence count (ties keep trie traversal order, which is fixed for a
// given corpus). The queried word itself is never its own completion.
// limit <= 0 means unbounded.
func (e *Engine) Completions(word string, limit int) []Suggestion {
	if word == "" {
		return nil
	}

	e.mu.RLock()
	found := e.index.WordsWithPrefix(word)
	e.mu.RUnlock()

	completions := found[:0]
	for _, s := range found {
		if s.Word == word {
			continue
		}
		completions = append(completions, s)
	}

	sort.SliceStable(completions, func(i, j int) bool {
		return completions[i].Frequency > completions[j].Frequency
	})
	if limit > 0 && len(completions) > limit {
		completions = completions[:limit]
	}
	return completions
}

// PredictNext returns the most frequent successor of word, ties resolved to
// the successor observed first. False when word has no recorded successors.
func (e *Engine) PredictNext(word string) (string, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.transitions.MostLikelyNext(word)
}

// RelatedWords returns every distinct successor of word in first-observed
// order, empty when word was never a predecessor
func (e *Engine) RelatedWords(word string) []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.graph.SuccessorsOf(word)
}

// Summarize runs all four queries for word in one pass
func (e *Engine) Summarize(word string, topN, limit int) Summary {
	next, hasNext := e.PredictNext(word)
	return Summary{
		Word:        word,
		Top:         e.TopWords(topN),
		Completions: e.Completions(word, limit),
		Next:        next,
		HasNext:     hasNext,
		Related:     e.RelatedWords(word),
	}
}

// Stats returns counters about the accumulated corpus
func (e *Engine) Stats() map[string]int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return map[string]int{
		"sentences":     e.sentences,
		"totalWords":    e.freqs.Total(),
		"distinctWords": e.freqs.Distinct(),
		"distinctPairs": e.transitions.Pairs(),
		"edges":         e.graph.Edges(),
	}
}
