package lattice

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// #region errors

// ErrUnknownQubit is returned when a qubit ID has no layout entry.
var ErrUnknownQubit = errors.New("qubit not in layout")

// ErrCoincidentQubits is returned when two distinct qubits share identical
// coordinates. Coincident geometry is always a fatal input error: an inverse
// distance term would otherwise be infinite.
var ErrCoincidentQubits = errors.New("coincident qubit coordinates")

// ErrDimensionMismatch is returned when two coordinate vectors have
// different lengths.
var ErrDimensionMismatch = errors.New("coordinate dimension mismatch")

// #endregion errors

// #region distance

// Distance returns the Euclidean distance between qubits a and b in the
// layout. Both IDs must have layout entries with equal dimensionality.
func Distance(layout Layout, a, b QubitID) (float64, error) {
	pa, ok := layout[a]
	if !ok {
		return 0, fmt.Errorf("distance %s-%s: %w: %s", a, b, ErrUnknownQubit, a)
	}
	pb, ok := layout[b]
	if !ok {
		return 0, fmt.Errorf("distance %s-%s: %w: %s", a, b, ErrUnknownQubit, b)
	}
	if len(pa) != len(pb) {
		return 0, fmt.Errorf("distance %s-%s: %w: %d vs %d", a, b, ErrDimensionMismatch, len(pa), len(pb))
	}
	return floats.Distance(pa, pb, 2), nil
}

// #endregion distance

// #region validate

// GeometryIssueType enumerates layout validation failure categories.
type GeometryIssueType string

const (
	IssueCoincident GeometryIssueType = "coincident_coordinates"
	IssueDimension  GeometryIssueType = "dimension_mismatch"
)

// GeometryIssue records one detected layout defect.
type GeometryIssue struct {
	Type   GeometryIssueType
	Reason string
}

// ValidateGeometry scans the layout for coincident coordinate pairs and
// mismatched dimensions. Every pair of distinct qubits must be separated
// by a strictly positive distance before a scoring pass may run.
// Returns all detected issues; a non-empty result means the layout is
// unusable and the first issue is wrapped into the returned error.
func ValidateGeometry(layout Layout) ([]GeometryIssue, error) {
	ids := layout.SortedIDs()
	var issues []GeometryIssue

	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			a, b := ids[i], ids[j]
			pa, pb := layout[a], layout[b]
			if len(pa) != len(pb) {
				issues = append(issues, GeometryIssue{
					Type:   IssueDimension,
					Reason: fmt.Sprintf("%s has dim %d, %s has dim %d", a, len(pa), b, len(pb)),
				})
				continue
			}
			if floats.Distance(pa, pb, 2) == 0 {
				issues = append(issues, GeometryIssue{
					Type:   IssueCoincident,
					Reason: fmt.Sprintf("%s and %s occupy identical coordinates", a, b),
				})
			}
		}
	}

	if len(issues) > 0 {
		switch issues[0].Type {
		case IssueDimension:
			return issues, fmt.Errorf("validate geometry: %w: %s", ErrDimensionMismatch, issues[0].Reason)
		default:
			return issues, fmt.Errorf("validate geometry: %w: %s", ErrCoincidentQubits, issues[0].Reason)
		}
	}
	return nil, nil
}

// #endregion validate
