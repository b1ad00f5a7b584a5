// Package ranking orders qubits by their normalized weights for
// downstream selection.
package ranking

import (
	"sort"

	"github.com/danielpatrickdp/qubit-lattice/internal/lattice"
)

// #region types
// RankedQubit pairs a qubit with its normalized weight.
type RankedQubit struct {
	ID     lattice.QubitID `json:"qubit_id"`
	Weight float64         `json:"weight"`
}
// #endregion types

// #region rank

// Rank returns all qubits ordered by descending weight. Ties break on
// ascending qubit ID so the order is reproducible.
func Rank(weights map[lattice.QubitID]float64) []RankedQubit {
	ranked := make([]RankedQubit, 0, len(weights))
	for id, w := range weights {
		ranked = append(ranked, RankedQubit{ID: id, Weight: w})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Weight != ranked[j].Weight {
			return ranked[i].Weight > ranked[j].Weight
		}
		return ranked[i].ID < ranked[j].ID
	})
	return ranked
}

// TopK returns the k highest-weighted qubits. Returns all qubits when
// k exceeds the population.
func TopK(weights map[lattice.QubitID]float64, k int) []RankedQubit {
	ranked := Rank(weights)
	if k < 0 {
		k = 0
	}
	if k > len(ranked) {
		k = len(ranked)
	}
	return ranked[:k]
}

// AboveThreshold returns the qubits whose weight is >= min, ordered by
// descending weight.
func AboveThreshold(weights map[lattice.QubitID]float64, min float64) []RankedQubit {
	ranked := Rank(weights)
	cut := len(ranked)
	for i, r := range ranked {
		if r.Weight < min {
			cut = i
			break
		}
	}
	return ranked[:cut]
}

// #endregion rank
