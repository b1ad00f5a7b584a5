package lattice

import "sort"

// #region qubit-id
// QubitID is an opaque identifier for a single qubit in a lattice.
type QubitID string
// #endregion qubit-id

// #region coord
// Coord is a spatial coordinate vector. All coordinates in a layout
// share one dimensionality.
type Coord []float64
// #endregion coord

// #region layout
// Layout maps each qubit to its position on the chip.
type Layout map[QubitID]Coord

// SortedIDs returns the layout's qubit IDs in ascending order.
// Scoring passes iterate in this order so float summation is reproducible.
func (l Layout) SortedIDs() []QubitID {
	ids := make([]QubitID, 0, len(l))
	for id := range l {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
// #endregion layout

// #region coherence-map
// CoherenceMap maps each qubit to its coherence time. Treated as a total
// function: qubits without an entry have coherence 0.
type CoherenceMap map[QubitID]float64

// Get returns the coherence time for id, or 0 when absent.
func (c CoherenceMap) Get(id QubitID) float64 {
	return c[id]
}
// #endregion coherence-map

// #region pair
// Pair is an unordered pair of qubit IDs, normalized so that A <= B.
type Pair struct {
	A QubitID
	B QubitID
}

// NewPair builds a normalized Pair from two qubit IDs.
func NewPair(a, b QubitID) Pair {
	if b < a {
		a, b = b, a
	}
	return Pair{A: a, B: b}
}

// Contains reports whether id is either member of the pair.
func (p Pair) Contains(id QubitID) bool {
	return p.A == id || p.B == id
}
// #endregion pair

// #region coupling-map
// CouplingMap maps unordered qubit pairs to entanglement strength.
// Treated as a total function: absent pairs have strength 0.
type CouplingMap map[Pair]float64

// Strength returns the coupling strength between a and b, or 0 when the
// pair has no entry. Order of a and b does not matter.
func (c CouplingMap) Strength(a, b QubitID) float64 {
	return c[NewPair(a, b)]
}

// SortedPairs returns the coupling pairs in ascending (A, B) order.
func (c CouplingMap) SortedPairs() []Pair {
	pairs := make([]Pair, 0, len(c))
	for p := range c {
		pairs = append(pairs, p)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].A != pairs[j].A {
			return pairs[i].A < pairs[j].A
		}
		return pairs[i].B < pairs[j].B
	})
	return pairs
}
// #endregion coupling-map

// #region control-set
// ControlSet holds the qubits flagged as control nodes.
type ControlSet map[QubitID]struct{}

// NewControlSet builds a ControlSet from a list of qubit IDs.
func NewControlSet(ids ...QubitID) ControlSet {
	s := make(ControlSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Contains reports whether id is a control qubit.
func (s ControlSet) Contains(id QubitID) bool {
	_, ok := s[id]
	return ok
}
// #endregion control-set
