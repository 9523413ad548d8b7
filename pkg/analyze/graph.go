package analyze

// AdjacencyGraph records, for each word, the set of distinct words that have
// ever directly followed it in some sentence. Membership only, no counts.
type AdjacencyGraph struct {
	succ  map[string][]string
	seen  map[string]map[string]struct{}
	edges int
}

// NewAdjacencyGraph initializes an empty graph
func NewAdjacencyGraph() *AdjacencyGraph {
	return &AdjacencyGraph{
		succ: make(map[string][]string),
		seen: make(map[string]map[string]struct{}),
	}
}

// Record adds b to the successor set of a. Repeated pairs are no-ops, so the
// per-word lists stay in first-observed order with no duplicates.
func (g *AdjacencyGraph) Record(a, b string) {
	set, ok := g.seen[a]
	if !ok {
		set = make(map[string]struct{})
		g.seen[a] = set
	}
	if _, dup := set[b]; dup {
		return
	}
	set[b] = struct{}{}
	g.succ[a] = append(g.succ[a], b)
	g.edges++
}

// SuccessorsOf returns the distinct successors of word in first-observed
// order. A word never seen as a predecessor yields an empty slice.
func (g *AdjacencyGraph) SuccessorsOf(word string) []string {
	list := g.succ[word]
	if len(list) == 0 {
		return nil
	}
	out := make([]string, len(list))
	copy(out, list)
	return out
}

// Edges returns the number of distinct directed edges recorded
func (g *AdjacencyGraph) Edges() int {
	return g.edges
}
