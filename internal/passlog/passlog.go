package passlog

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/danielpatrickdp/qubit-lattice/internal/weights"
)

// #region record

// NewRecord builds a PassRecord from a completed pass result. Each record
// gets a fresh pass ID; qubit rows are sorted by ID.
func NewRecord(res *weights.PassResult) PassRecord {
	entries := make([]QubitEntry, 0, len(res.Breakdowns))
	for id, bd := range res.Breakdowns {
		entries = append(entries, QubitEntry{
			QubitID:      string(id),
			Proximity:    bd.Proximity,
			Entanglement: bd.Entanglement,
			Coherence:    bd.Coherence,
			ControlBonus: bd.ControlBonus,
			Raw:          bd.Raw,
			Weight:       res.Weights[id],
		})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].QubitID < entries[j].QubitID })

	return PassRecord{
		PassID:     uuid.New().String(),
		Qubits:     entries,
		MaxRaw:     res.MaxRaw,
		Normalized: res.Normalized,
		ElapsedMs:  res.ElapsedMs,
		CreatedAt:  time.Now().UTC(),
	}
}

// MarshalIndent renders the record as indented JSON.
func (r PassRecord) MarshalIndent() ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal pass record: %w", err)
	}
	return data, nil
}

// #endregion record
