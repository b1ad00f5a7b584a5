package weights

import (
	"fmt"
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/danielpatrickdp/qubit-lattice/internal/lattice"
)

// #region model

// Model computes normalized importance weights for the qubits of a lattice.
// Layout, coherence, couplings, and control roles are fixed at construction;
// the weights map is rebuilt in full by each UpdateWeights pass.
type Model struct {
	layout    lattice.Layout
	coherence lattice.CoherenceMap
	couplings lattice.CouplingMap
	controls  lattice.ControlSet
	config    Config

	weights  map[lattice.QubitID]float64
	lastPass *PassResult
}

// NewModel creates a weight model over the given inputs. Inputs are not
// validated here; geometry is checked at the start of each pass.
func NewModel(layout lattice.Layout, coherence lattice.CoherenceMap, couplings lattice.CouplingMap, controls lattice.ControlSet, config Config) *Model {
	return &Model{
		layout:    layout,
		coherence: coherence,
		couplings: couplings,
		controls:  controls,
		config:    config,
		weights:   map[lattice.QubitID]float64{},
	}
}

// #endregion model

// #region proximity

// Proximity returns the Euclidean distance between two qubits in the
// model's layout.
func (m *Model) Proximity(a, b lattice.QubitID) (float64, error) {
	return lattice.Distance(m.layout, a, b)
}

// #endregion proximity

// #region raw-score

// RawScore computes the unnormalized importance score for one qubit.
func (m *Model) RawScore(id lattice.QubitID) (float64, error) {
	bd, err := m.ScoreBreakdown(id)
	if err != nil {
		return 0, err
	}
	return bd.Raw, nil
}

// ScoreBreakdown computes the raw score for one qubit along with its
// components. Other qubits and coupling pairs are visited in sorted order
// so the float summation is reproducible.
func (m *Model) ScoreBreakdown(id lattice.QubitID) (Breakdown, error) {
	if _, ok := m.layout[id]; !ok {
		return Breakdown{}, fmt.Errorf("score %s: %w", id, lattice.ErrUnknownQubit)
	}

	var proximity float64
	for _, other := range m.layout.SortedIDs() {
		if other == id {
			continue
		}
		d, err := lattice.Distance(m.layout, id, other)
		if err != nil {
			return Breakdown{}, fmt.Errorf("score %s: %w", id, err)
		}
		if d == 0 {
			return Breakdown{}, fmt.Errorf("score %s: %w: coincident with %s", id, lattice.ErrCoincidentQubits, other)
		}
		proximity += 1 / d
	}

	var entanglement float64
	for _, pair := range m.couplings.SortedPairs() {
		if pair.Contains(id) {
			entanglement += m.couplings[pair]
		}
	}

	coherence := m.coherence.Get(id)
	bonus := 1.0
	if m.controls.Contains(id) {
		bonus = m.config.ControlBonus
	}

	return Breakdown{
		Proximity:    proximity,
		Entanglement: entanglement,
		Coherence:    coherence,
		ControlBonus: bonus,
		Raw:          (proximity + entanglement) * coherence * bonus,
	}, nil
}

// #endregion raw-score

// #region update-weights

// UpdateWeights recomputes raw scores for every qubit in the layout and
// normalizes them against the population maximum. When the maximum is
// strictly positive every weight is divided by it, so all weights land in
// [0, 1] with at least one exactly 1.0; when every raw score is zero the
// weights stay at their raw zero values.
//
// The new weights map is built completely before being swapped in, so a
// failed pass leaves the previous weights untouched and Weights never
// exposes a partially computed map.
func (m *Model) UpdateWeights() error {
	start := time.Now()

	if _, err := lattice.ValidateGeometry(m.layout); err != nil {
		return fmt.Errorf("update weights: %w", err)
	}

	ids := m.layout.SortedIDs()
	breakdowns := make(map[lattice.QubitID]Breakdown, len(ids))
	raw := make([]float64, 0, len(ids))
	for _, id := range ids {
		bd, err := m.ScoreBreakdown(id)
		if err != nil {
			return fmt.Errorf("update weights: %w", err)
		}
		breakdowns[id] = bd
		raw = append(raw, bd.Raw)
	}

	var maxRaw float64
	if len(raw) > 0 {
		maxRaw = floats.Max(raw)
	}

	next := make(map[lattice.QubitID]float64, len(ids))
	for _, id := range ids {
		score := breakdowns[id].Raw
		if maxRaw > 0 {
			score /= maxRaw
		}
		next[id] = score
	}

	m.weights = next
	m.lastPass = &PassResult{
		Breakdowns: breakdowns,
		Weights:    next,
		MaxRaw:     maxRaw,
		Normalized: maxRaw > 0,
		ElapsedMs:  time.Since(start).Milliseconds(),
	}
	return nil
}

// #endregion update-weights

// #region accessors

// Weights returns the weights from the last successful pass, or an empty
// map if no pass has run. Callers must treat the map as read-only.
func (m *Model) Weights() map[lattice.QubitID]float64 {
	return m.weights
}

// LastPass returns the full result of the last successful pass, or nil if
// no pass has run.
func (m *Model) LastPass() *PassResult {
	return m.lastPass
}

// Layout returns the model's layout.
func (m *Model) Layout() lattice.Layout {
	return m.layout
}

// #endregion accessors
