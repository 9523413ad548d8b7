package analyze

import (
	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// PrefixIndex stores every distinct word seen in the corpus, keyed by its full
// character path, with the occurrence count kept as the trie item.
type PrefixIndex struct {
	trie  *patricia.Trie
	words int
}

// NewPrefixIndex initializes an empty index
func NewPrefixIndex() *PrefixIndex {
	return &PrefixIndex{trie: patricia.NewTrie()}
}

// Insert adds word to the index, bumping its stored count when already known.
// The empty string is rejected outright so the trie root never becomes a
// terminal; tokenization never emits it, the guard keeps the path safe anyway.
func (px *PrefixIndex) Insert(word string) {
	if word == "" {
		return
	}
	key := patricia.Prefix(word)
	if item := px.trie.Get(key); item != nil {
		px.trie.Set(key, item.(int)+1)
		return
	}
	px.trie.Insert(key, 1)
	px.words++
}

// Contains reports whether word was inserted as a complete word
func (px *PrefixIndex) Contains(word string) bool {
	return px.trie.Get(patricia.Prefix(word)) != nil
}

// Len returns the number of distinct words in the index
func (px *PrefixIndex) Len() int {
	return px.words
}

// WordsWithPrefix collects every inserted word starting with prefix, count
// riding along. A prefix with no subtree yields an empty result. Traversal
// order is fixed by the trie structure, so repeated queries over the same
// corpus return the same sequence.
func (px *PrefixIndex) WordsWithPrefix(prefix string) []Suggestion {
	var found []Suggestion

	err := px.trie.VisitSubtree(patricia.Prefix(prefix), func(p patricia.Prefix, item patricia.Item) error {
		count := 1
		if c, ok := item.(int); ok {
			count = c
		} else {
			log.Errorf("Unknown item type: %T for word %s", item, p)
		}
		found = append(found, Suggestion{
			Word:      string(p),
			Frequency: count,
		})
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting trie subtree: %v", err)
	}
	return found
}
