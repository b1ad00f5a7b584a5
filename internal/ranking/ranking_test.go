package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/danielpatrickdp/qubit-lattice/internal/lattice"
)

func sampleWeights() map[lattice.QubitID]float64 {
	return map[lattice.QubitID]float64{
		"q1": 0.25,
		"q2": 1.0,
		"q3": 0.5,
		"q4": 0.5,
	}
}

func TestRankDescendingWithIDTieBreak(t *testing.T) {
	ranked := Rank(sampleWeights())

	assert.Len(t, ranked, 4)
	assert.Equal(t, lattice.QubitID("q2"), ranked[0].ID)
	// q3 and q4 tie on weight, ID order decides
	assert.Equal(t, lattice.QubitID("q3"), ranked[1].ID)
	assert.Equal(t, lattice.QubitID("q4"), ranked[2].ID)
	assert.Equal(t, lattice.QubitID("q1"), ranked[3].ID)
}

func TestTopK(t *testing.T) {
	top := TopK(sampleWeights(), 2)

	assert.Len(t, top, 2)
	assert.Equal(t, lattice.QubitID("q2"), top[0].ID)
	assert.Equal(t, lattice.QubitID("q3"), top[1].ID)
}

func TestTopKClamps(t *testing.T) {
	assert.Len(t, TopK(sampleWeights(), 99), 4)
	assert.Empty(t, TopK(sampleWeights(), -1))
	assert.Empty(t, TopK(map[lattice.QubitID]float64{}, 3))
}

func TestAboveThreshold(t *testing.T) {
	kept := AboveThreshold(sampleWeights(), 0.5)

	assert.Len(t, kept, 3)
	for _, r := range kept {
		assert.GreaterOrEqual(t, r.Weight, 0.5)
	}
}

func TestAboveThresholdNoneMatch(t *testing.T) {
	assert.Empty(t, AboveThreshold(sampleWeights(), 1.5))
}
