package pricing

import "math"

// round2 rounds a monetary amount to cents. Totals are rounded once at the
// edges of the engine so intermediate math stays exact.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
