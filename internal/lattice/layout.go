package lattice

import "fmt"

// #region grid

// GridLayout builds a rows x cols planar lattice with the given spacing
// between neighboring sites. Qubit IDs are "q<row>_<col>".
func GridLayout(rows, cols int, spacing float64) Layout {
	layout := make(Layout, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			id := QubitID(fmt.Sprintf("q%d_%d", r, c))
			layout[id] = Coord{float64(c) * spacing, float64(r) * spacing}
		}
	}
	return layout
}

// GridCouplings builds nearest-neighbor couplings for a rows x cols grid
// produced by GridLayout, all with the given strength.
func GridCouplings(rows, cols int, strength float64) CouplingMap {
	couplings := make(CouplingMap)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			id := QubitID(fmt.Sprintf("q%d_%d", r, c))
			if c+1 < cols {
				right := QubitID(fmt.Sprintf("q%d_%d", r, c+1))
				couplings[NewPair(id, right)] = strength
			}
			if r+1 < rows {
				down := QubitID(fmt.Sprintf("q%d_%d", r+1, c))
				couplings[NewPair(id, down)] = strength
			}
		}
	}
	return couplings
}

// #endregion grid
