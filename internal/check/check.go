package check

import (
	"fmt"
	"math"

	"github.com/danielpatrickdp/qubit-lattice/internal/lattice"
)

// #region harness
// Harness runs lightweight post-pass validation on a weights map.
type Harness struct {
	config Config
}

// NewHarness creates a harness with the given configuration.
func NewHarness(config Config) *Harness {
	return &Harness{config: config}
}

// Run validates the published weights of a completed pass against the
// layout they were computed from. maxRaw is the population maximum raw
// score observed during the pass.
func (h *Harness) Run(layout lattice.Layout, weights map[lattice.QubitID]float64, maxRaw float64) Result {
	var metrics []Metric
	passed := true
	var failReasons []string

	// 1. Key parity: every layout qubit has a weight and nothing else does
	parity := len(weights) == len(layout)
	if parity {
		for id := range layout {
			if _, ok := weights[id]; !ok {
				parity = false
				break
			}
		}
	}
	metrics = append(metrics, Metric{
		Name:  "key_parity",
		Value: float64(len(weights)),
		Pass:  parity,
	})
	if !parity {
		passed = false
		failReasons = append(failReasons, fmt.Sprintf("weights hold %d keys, layout holds %d", len(weights), len(layout)))
	}

	// 2. Range: all weights in [0, 1]
	rangePass := true
	var worst float64
	for id, w := range weights {
		if w < 0 || w > 1 || math.IsNaN(w) || math.IsInf(w, 0) {
			rangePass = false
			worst = w
			failReasons = append(failReasons, fmt.Sprintf("weight %.6f for %s outside [0, 1]", w, id))
			break
		}
		if w > worst {
			worst = w
		}
	}
	metrics = append(metrics, Metric{
		Name:  "weight_range",
		Value: worst,
		Pass:  rangePass,
	})
	if !rangePass {
		passed = false
	}

	// 3. Unit maximum: when the pass normalized, the top weight must be 1.0.
	// When every raw score was zero, all weights must be zero instead.
	var top float64
	for _, w := range weights {
		if w > top {
			top = w
		}
	}
	unitPass := true
	if maxRaw > 0 {
		unitPass = math.Abs(top-1.0) <= h.config.UnitMaxTolerance
		if !unitPass {
			failReasons = append(failReasons, fmt.Sprintf("top weight %.9f differs from 1.0 after normalization", top))
		}
	} else {
		unitPass = top == 0
		if !unitPass {
			failReasons = append(failReasons, fmt.Sprintf("top weight %.9f non-zero with zero max raw score", top))
		}
	}
	metrics = append(metrics, Metric{
		Name:  "unit_max",
		Value: top,
		Pass:  unitPass,
	})
	if !unitPass {
		passed = false
	}

	reason := "all checks passed"
	if !passed {
		reason = fmt.Sprintf("check failed: %s", failReasons[0])
		if len(failReasons) > 1 {
			reason = fmt.Sprintf("check failed: %d checks: %s", len(failReasons), failReasons[0])
		}
	}

	return Result{
		Passed:  passed,
		Metrics: metrics,
		Reason:  reason,
	}
}

// #endregion harness
