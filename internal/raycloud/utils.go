package raycloud

import (
	"math"
	"strconv"
)

type Real = float64

func isFinite(x Real) bool { return !math.IsInf(x, 0) && !math.IsNaN(x) }

func imax(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// linspace returns n evenly spaced values from a to b inclusive.
// n == 1 yields [a]; n <= 0 yields nil.
func linspace(a, b Real, n int) []Real {
	if n <= 0 {
		return nil
	}
	out := make([]Real, n)
	if n == 1 {
		out[0] = a
		return out
	}
	step := (b - a) / Real(n-1)
	for i := 0; i < n; i++ {
		out[i] = a + Real(i)*step
	}
	out[n-1] = b
	return out
}

func formatReal(x Real) string { return strconv.FormatFloat(x, 'f', -1, 64) }
