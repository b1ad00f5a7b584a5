package weights

import (
	"github.com/danielpatrickdp/qubit-lattice/internal/lattice"
)

// #region config
// Config holds scoring parameters for the weight model.
type Config struct {
	ControlBonus float64 // multiplier applied to control qubits
}

// DefaultConfig returns the standard scoring parameters.
func DefaultConfig() Config {
	return Config{
		ControlBonus: 1.5,
	}
}
// #endregion config

// #region breakdown
// Breakdown holds the score components for a single qubit, captured
// during a pass for provenance records.
type Breakdown struct {
	Proximity    float64 `json:"proximity"`     // sum of inverse distances to all other qubits
	Entanglement float64 `json:"entanglement"`  // sum of coupling strengths involving the qubit
	Coherence    float64 `json:"coherence"`     // coherence time, 0 when unmapped
	ControlBonus float64 `json:"control_bonus"` // 1.5 for control qubits, 1.0 otherwise
	Raw          float64 `json:"raw"`           // (proximity + entanglement) * coherence * bonus
}
// #endregion breakdown

// #region pass-result
// PassResult captures the outcome of one completed weight pass.
type PassResult struct {
	Breakdowns map[lattice.QubitID]Breakdown `json:"breakdowns"`
	Weights    map[lattice.QubitID]float64   `json:"weights"`
	MaxRaw     float64                       `json:"max_raw"`
	Normalized bool                          `json:"normalized"` // false when all raw scores were zero
	ElapsedMs  int64                         `json:"elapsed_ms"`
}
// #endregion pass-result
