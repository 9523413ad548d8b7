package analyze

import "sort"

// FrequencyTable tracks total occurrence counts per distinct word, counting
// every occurrence rather than just the first.
type FrequencyTable struct {
	counts map[string]int
	order  []string
	total  int
}

// NewFrequencyTable initializes an empty table
func NewFrequencyTable() *FrequencyTable {
	return &FrequencyTable{counts: make(map[string]int)}
}

// Increment adds one occurrence of word, creating the entry at count 1
func (ft *FrequencyTable) Increment(word string) {
	if _, ok := ft.counts[word]; !ok {
		ft.order = append(ft.order, word)
	}
	ft.counts[word]++
	ft.total++
}

// Count returns the occurrence count for word, 0 when never seen
func (ft *FrequencyTable) Count(word string) int {
	return ft.counts[word]
}

// TopN returns up to n words ordered by descending count. Candidates enter
// the sort in first-observed order and the sort is stable, so equal counts
// keep first-observed order. n <= 0 yields an empty result.
func (ft *FrequencyTable) TopN(n int) []Suggestion {
	if n <= 0 || len(ft.order) == 0 {
		return nil
	}

	ranked := make([]Suggestion, 0, len(ft.order))
	for _, w := range ft.order {
		ranked = append(ranked, Suggestion{
			Word:      w,
			Frequency: ft.counts[w],
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Frequency > ranked[j].Frequency
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// Distinct returns the number of distinct words counted
func (ft *FrequencyTable) Distinct() int {
	return len(ft.order)
}

// Total returns the total number of occurrences counted
func (ft *FrequencyTable) Total() int {
	return ft.total
}
