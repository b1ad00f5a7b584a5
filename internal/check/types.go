package check

// #region check-config
// Config holds tolerances for post-pass validation.
type Config struct {
	UnitMaxTolerance float64 // max allowed distance of the top weight from 1.0
}

// DefaultConfig returns the standard tolerances.
func DefaultConfig() Config {
	return Config{
		UnitMaxTolerance: 1e-9,
	}
}
// #endregion check-config

// #region check-metric
// Metric captures a single validation check result.
type Metric struct {
	Name  string
	Value float64
	Pass  bool
}
// #endregion check-metric

// #region check-result
// Result is the output of post-pass validation.
type Result struct {
	Passed  bool
	Metrics []Metric
	Reason  string
}
// #endregion check-result
