// Package analyze is the core, providing the prefix index, transition counts, adjacency sets and frequency ranking built from every ingested sentence.
package analyze

// IAnalyzer defines the interface for corpus analytics engines
type IAnalyzer interface {
	// Ingest tokenizes raw text and folds it into the corpus.
	// Returns the number of words ingested (0 for whitespace-only text)
	Ingest(text string) int

	// TopWords returns up to n words ranked by total occurrence count
	TopWords(n int) []Suggestion

	// Completions returns known words sharing the given prefix, the prefix itself excluded
	Completions(word string, limit int) []Suggestion

	// PredictNext returns the most frequent successor of word, false when none was ever observed
	PredictNext(word string) (string, bool)

	// RelatedWords returns every distinct successor of word in first-observed order
	RelatedWords(word string) []string

	// Summarize bundles all four queries for a single word
	Summarize(word string, topN, limit int) Summary

	// Stats returns counters about the corpus
	Stats() map[string]int
}
