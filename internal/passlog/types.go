package passlog

import "time"

// #region qubit-entry
// QubitEntry is the per-qubit row of a pass record.
type QubitEntry struct {
	QubitID      string  `json:"qubit_id"`
	Proximity    float64 `json:"proximity"`
	Entanglement float64 `json:"entanglement"`
	Coherence    float64 `json:"coherence"`
	ControlBonus float64 `json:"control_bonus"`
	Raw          float64 `json:"raw"`
	Weight       float64 `json:"weight"`
}
// #endregion qubit-entry

// #region pass-record
// PassRecord captures the complete inputs and outputs of one weight pass.
// Serialized as JSON so a pass can be inspected or diffed after the fact.
type PassRecord struct {
	PassID     string       `json:"pass_id"`
	Qubits     []QubitEntry `json:"qubits"` // sorted by qubit ID
	MaxRaw     float64      `json:"max_raw"`
	Normalized bool         `json:"normalized"`
	ElapsedMs  int64        `json:"elapsed_ms"`
	CreatedAt  time.Time    `json:"created_at"`
}
// #endregion pass-record
