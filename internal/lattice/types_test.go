package lattice

import "testing"

func TestNewPairNormalizes(t *testing.T) {
	if NewPair("b", "a") != NewPair("a", "b") {
		t.Fatal("pair order should not matter")
	}
	p := NewPair("q2", "q1")
	if p.A != "q1" || p.B != "q2" {
		t.Fatalf("expected normalized pair (q1, q2), got (%s, %s)", p.A, p.B)
	}
}

func TestCouplingStrengthTotalFunction(t *testing.T) {
	couplings := CouplingMap{
		NewPair("a", "b"): 0.8,
	}

	if got := couplings.Strength("b", "a"); got != 0.8 {
		t.Fatalf("expected 0.8 regardless of order, got %f", got)
	}
	if got := couplings.Strength("a", "c"); got != 0 {
		t.Fatalf("expected 0 for absent pair, got %f", got)
	}
}

func TestCoherenceDefaultsToZero(t *testing.T) {
	coherence := CoherenceMap{"a": 1.5}

	if got := coherence.Get("missing"); got != 0 {
		t.Fatalf("expected 0 for unmapped qubit, got %f", got)
	}
}

func TestSortedIDsStableOrder(t *testing.T) {
	layout := Layout{
		"q3": {3, 0},
		"q1": {1, 0},
		"q2": {2, 0},
	}

	ids := layout.SortedIDs()
	want := []QubitID{"q1", "q2", "q3"}
	for i, id := range ids {
		if id != want[i] {
			t.Fatalf("position %d: expected %s, got %s", i, want[i], id)
		}
	}
}

func TestGridCouplingsNeighborCount(t *testing.T) {
	// 2x2 grid has 4 nearest-neighbor edges
	couplings := GridCouplings(2, 2, 0.5)
	if len(couplings) != 4 {
		t.Fatalf("expected 4 couplings, got %d", len(couplings))
	}
	if got := couplings.Strength("q0_0", "q0_1"); got != 0.5 {
		t.Fatalf("expected 0.5 for adjacent pair, got %f", got)
	}
	if got := couplings.Strength("q0_0", "q1_1"); got != 0 {
		t.Fatalf("expected 0 for diagonal pair, got %f", got)
	}
}

func TestControlSetContains(t *testing.T) {
	s := NewControlSet("q1", "q2")
	if !s.Contains("q1") {
		t.Fatal("q1 should be a control")
	}
	if s.Contains("q3") {
		t.Fatal("q3 should not be a control")
	}
}
