package compare

import (
	"fmt"
	"math"
)

// Significance is decided by interval overlap: each measurement is
// widened to [duration-error, duration+error], and a difference counts
// as significant only when the two intervals are disjoint.

// Significant reports whether the row's two measurements differ beyond
// their combined uncertainty. Rows measured on only one branch are
// never significant.
func (r Row) Significant() bool {
	if !r.Base.Present || !r.Changes.Present {
		return false
	}
	return isSignificant(r.Base.Duration, r.Base.Error, r.Changes.Duration, r.Changes.Error)
}

func isSignificant(base, baseErr, changes, changesErr float64) bool {
	if changes < base {
		return changes+changesErr < base-baseErr
	}
	return changes-changesErr > base+baseErr
}

// diffPercentage is positive when changes is slower than base and zero
// when the two are equal.
func diffPercentage(base, changes float64) float64 {
	return -(1 - changes/base) * 100
}

// significantDiffPercentage evaluates the difference at the nearest
// boundaries of the two uncertainty intervals and clamps it toward
// zero, so overlapping intervals always yield exactly 0.
func significantDiffPercentage(base, baseErr, changes, changesErr float64) float64 {
	if changes < base {
		return math.Min(0, diffPercentage(base-baseErr, changes+changesErr))
	}
	return math.Max(0, diffPercentage(base+baseErr, changes-changesErr))
}

// formatPercentage renders a sign-prefixed percentage with two
// decimals. Exactly zero renders as the empty string.
func formatPercentage(v float64) string {
	if v == 0 {
		return ""
	}
	return fmt.Sprintf("%+.2f%%", v)
}
