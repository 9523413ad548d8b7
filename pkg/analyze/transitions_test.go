package analyze

import "testing"

func TestTransitionCounterShortSequences(t *testing.T) {
	tc := NewTransitionCounter()
	tc.Record(nil)
	tc.Record([]string{"alone"})

	if tc.Pairs() != 0 {
		t.Errorf("Pairs after short sequences = %d, want 0", tc.Pairs())
	}
	if _, ok := tc.MostLikelyNext("alone"); ok {
		t.Error("single-word sequence produced a successor entry")
	}
}

func TestTransitionCounterMostLikelyNext(t *testing.T) {
	tc := NewTransitionCounter()
	tc.Record([]string{"a", "b"})
	tc.Record([]string{"a", "b"})
	tc.Record([]string{"a", "c"})

	next, ok := tc.MostLikelyNext("a")
	if !ok || next != "b" {
		t.Errorf("MostLikelyNext(\"a\") = (%q, %v), want (\"b\", true)", next, ok)
	}

	if _, ok := tc.MostLikelyNext("b"); ok {
		t.Error("word with no successors reported a prediction")
	}
}

// A tie must always resolve to the successor observed first, regardless of
// how many times the query repeats.
func TestTransitionCounterTieIsFirstObserved(t *testing.T) {
	tc := NewTransitionCounter()
	tc.Record([]string{"go", "fast"})
	tc.Record([]string{"go", "slow"})
	tc.Record([]string{"go", "slow"})
	tc.Record([]string{"go", "fast"})

	for i := 0; i < 10; i++ {
		next, ok := tc.MostLikelyNext("go")
		if !ok || next != "fast" {
			t.Fatalf("query %d: MostLikelyNext(\"go\") = (%q, %v), want (\"fast\", true)", i, next, ok)
		}
	}
}

func TestTransitionCounterCountsAccumulate(t *testing.T) {
	tc := NewTransitionCounter()
	tc.Record([]string{"x", "y", "x", "y"})

	// pairs: x->y twice, y->x once
	if tc.Pairs() != 2 {
		t.Errorf("distinct pairs = %d, want 2", tc.Pairs())
	}
	if next, _ := tc.MostLikelyNext("x"); next != "y" {
		t.Errorf("MostLikelyNext(\"x\") = %q, want \"y\"", next)
	}
	if next, _ := tc.MostLikelyNext("y"); next != "x" {
		t.Errorf("MostLikelyNext(\"y\") = %q, want \"x\"", next)
	}
}
