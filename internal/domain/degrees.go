package domain

import "math"

// NormalizeDegrees maps an angle onto the [0, 360) circle.
//
// Longitudes arriving from the ephemeris payload (and the sums and
// differences derived from them) may be negative or exceed a full turn;
// every calculator entry point normalizes once and computes on the result.
func NormalizeDegrees(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	// Tiny negative inputs can be absorbed to exactly 360.0 by the
	// addition above; fold that back so the range invariant holds.
	if d >= 360 {
		d -= 360
	}
	return d
}

// DegreesBetween returns the angular distance travelled from `from` to `to`
// moving forward around the circle, in [0, 360).
func DegreesBetween(from, to float64) float64 {
	return NormalizeDegrees(to - from)
}
