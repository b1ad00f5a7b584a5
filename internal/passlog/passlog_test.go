package passlog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielpatrickdp/qubit-lattice/internal/lattice"
	"github.com/danielpatrickdp/qubit-lattice/internal/weights"
)

func samplePass(t *testing.T) *weights.PassResult {
	t.Helper()
	layout := lattice.Layout{
		"A": {0, 0},
		"B": {1, 0},
		"C": {0, 1},
	}
	coherence := lattice.CoherenceMap{"A": 1, "B": 1, "C": 1}
	m := weights.NewModel(layout, coherence, lattice.CouplingMap{}, lattice.NewControlSet("A"), weights.DefaultConfig())
	require.NoError(t, m.UpdateWeights())
	return m.LastPass()
}

func TestNewRecordSortsQubits(t *testing.T) {
	record := NewRecord(samplePass(t))

	require.Len(t, record.Qubits, 3)
	assert.Equal(t, "A", record.Qubits[0].QubitID)
	assert.Equal(t, "B", record.Qubits[1].QubitID)
	assert.Equal(t, "C", record.Qubits[2].QubitID)
}

func TestNewRecordCarriesBreakdowns(t *testing.T) {
	record := NewRecord(samplePass(t))

	a := record.Qubits[0]
	assert.Equal(t, 2.0, a.Proximity)
	assert.Equal(t, 1.5, a.ControlBonus)
	assert.Equal(t, 1.0, a.Weight)
	assert.True(t, record.Normalized)
	assert.Equal(t, 3.0, record.MaxRaw)
}

func TestNewRecordFreshPassIDs(t *testing.T) {
	res := samplePass(t)
	r1 := NewRecord(res)
	r2 := NewRecord(res)

	assert.NotEmpty(t, r1.PassID)
	assert.NotEqual(t, r1.PassID, r2.PassID)
}

func TestMarshalIndentRoundTrips(t *testing.T) {
	record := NewRecord(samplePass(t))

	data, err := record.MarshalIndent()
	require.NoError(t, err)

	var decoded PassRecord
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, record.PassID, decoded.PassID)
	assert.Len(t, decoded.Qubits, 3)
	assert.Equal(t, record.MaxRaw, decoded.MaxRaw)
}
