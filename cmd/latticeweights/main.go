package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/danielpatrickdp/qubit-lattice/internal/check"
	"github.com/danielpatrickdp/qubit-lattice/internal/lattice"
	"github.com/danielpatrickdp/qubit-lattice/internal/passlog"
	"github.com/danielpatrickdp/qubit-lattice/internal/ranking"
	"github.com/danielpatrickdp/qubit-lattice/internal/weights"
)

// #region main

func main() {
	rows := flag.Int("rows", 4, "grid rows")
	cols := flag.Int("cols", 4, "grid columns")
	spacing := flag.Float64("spacing", 1.0, "grid spacing")
	coupling := flag.Float64("coupling", 0.5, "nearest-neighbor coupling strength")
	controls := flag.Int("controls", 2, "number of control qubits (picked from the top-left corner)")
	seed := flag.Int64("seed", 42, "seed for synthetic coherence times")
	top := flag.Int("top", 0, "show only the N highest-weighted qubits")
	jsonOut := flag.Bool("json", false, "output the full pass record as JSON")
	flag.Parse()

	if *rows < 1 || *cols < 1 {
		fmt.Fprintln(os.Stderr, "usage: latticeweights [--rows N] [--cols N] [--spacing F] [--coupling F] [--controls N] [--seed N] [--top N] [--json]")
		os.Exit(2)
	}

	model := buildModel(*rows, *cols, *spacing, *coupling, *controls, *seed)

	if err := model.UpdateWeights(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	res := model.LastPass()
	result := check.NewHarness(check.DefaultConfig()).Run(model.Layout(), model.Weights(), res.MaxRaw)
	if !result.Passed {
		fmt.Fprintf(os.Stderr, "error: %s\n", result.Reason)
		os.Exit(1)
	}

	if *jsonOut {
		if err := printRecord(res); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}
	printTable(model, *top)
}

// #endregion main

// #region build

// buildModel constructs a synthetic demo lattice: a planar grid with
// nearest-neighbor couplings, seeded coherence times in [0.5, 1.5), and
// the first N qubits (by sorted ID) flagged as controls.
func buildModel(rows, cols int, spacing, coupling float64, controls int, seed int64) *weights.Model {
	layout := lattice.GridLayout(rows, cols, spacing)
	couplings := lattice.GridCouplings(rows, cols, coupling)

	rng := rand.New(rand.NewSource(seed))
	coherence := make(lattice.CoherenceMap, len(layout))
	for _, id := range layout.SortedIDs() {
		coherence[id] = 0.5 + rng.Float64()
	}

	controlSet := lattice.ControlSet{}
	for i, id := range layout.SortedIDs() {
		if i >= controls {
			break
		}
		controlSet[id] = struct{}{}
	}

	return weights.NewModel(layout, coherence, couplings, controlSet, weights.DefaultConfig())
}

// #endregion build

// #region output

func printTable(model *weights.Model, top int) {
	ranked := ranking.Rank(model.Weights())
	if top > 0 {
		ranked = ranking.TopK(model.Weights(), top)
	}
	res := model.LastPass()

	fmt.Printf("%-10s  %8s  %10s  %12s  %10s  %6s\n",
		"Qubit", "Weight", "Proximity", "Entanglement", "Coherence", "Ctrl")
	fmt.Printf("%-10s+-%8s+-%10s+-%12s+-%10s+-%6s\n",
		"----------", "--------", "----------", "------------", "----------", "------")

	for _, r := range ranked {
		bd := res.Breakdowns[r.ID]
		ctrl := ""
		if bd.ControlBonus > 1 {
			ctrl = "*"
		}
		fmt.Printf("%-10s  %8.4f  %10.4f  %12.4f  %10.4f  %6s\n",
			r.ID, r.Weight, bd.Proximity, bd.Entanglement, bd.Coherence, ctrl)
	}

	fmt.Printf("\nMax raw score: %.4f  (normalized: %v)\n", res.MaxRaw, res.Normalized)
}

func printRecord(res *weights.PassResult) error {
	record := passlog.NewRecord(res)
	data, err := record.MarshalIndent()
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

// #endregion output
