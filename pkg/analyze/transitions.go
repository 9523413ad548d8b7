package analyze

// TransitionCounter accumulates counts of word to next-word pairs observed
// within single sentences. Counts only ever grow; there is no removal.
type TransitionCounter struct {
	counts map[string]map[string]int
	order  map[string][]string
	pairs  int
}

// NewTransitionCounter initializes an empty bigram table
func NewTransitionCounter() *TransitionCounter {
	return &TransitionCounter{
		counts: make(map[string]map[string]int),
		order:  make(map[string][]string),
	}
}

// Record increments the pair count for every adjacent pair in words.
// Sequences shorter than two words leave the table untouched.
func (tc *TransitionCounter) Record(words []string) {
	for i := 0; i+1 < len(words); i++ {
		tc.add(words[i], words[i+1])
	}
}

func (tc *TransitionCounter) add(from, to string) {
	succ, ok := tc.counts[from]
	if !ok {
		succ = make(map[string]int)
		tc.counts[from] = succ
	}
	if _, seen := succ[to]; !seen {
		tc.order[from] = append(tc.order[from], to)
		tc.pairs++
	}
	succ[to]++
}

// MostLikelyNext returns the successor with the highest recorded count for
// word. The scan runs in first-observed order with a strict comparison, so a
// tie always resolves to the successor seen first and never depends on sort
// stability. The second return is false when word has no recorded successors.
func (tc *TransitionCounter) MostLikelyNext(word string) (string, bool) {
	succ := tc.counts[word]
	if len(succ) == 0 {
		return "", false
	}

	var best string
	bestCount := 0
	for _, w := range tc.order[word] {
		if c := succ[w]; c > bestCount {
			best = w
			bestCount = c
		}
	}
	return best, true
}

// Pairs returns the number of distinct adjacent pairs recorded
func (tc *TransitionCounter) Pairs() int {
	return tc.pairs
}
