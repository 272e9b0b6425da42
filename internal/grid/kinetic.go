package grid

import "math"

// Pair is an unordered dimension pair with A < B.
type Pair struct {
	A, B int
}

// Pairs enumerates unordered dimension pairs in combinatorial order:
// (0,1), (0,2), …, (0,n−1), (1,2), …
func Pairs(n int) []Pair {
	if n < 2 {
		return nil
	}
	out := make([]Pair, 0, n*(n-1)/2)
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			out = append(out, Pair{A: a, B: b})
		}
	}
	return out
}

// NumPairs returns n(n−1)/2.
func NumPairs(n int) int {
	if n < 2 {
		return 0
	}
	return n * (n - 1) / 2
}

// DefaultKDiag returns n coefficients of −1.
func DefaultKDiag(n int) []float64 {
	k := make([]float64, n)
	for i := range k {
		k[i] = -1
	}
	return k
}

// ScaleDiag returns kd[i]·(2π)²/L_i², mapping the canonical period onto each
// axis. kd is not modified.
func ScaleDiag(kd []float64, axes []Axis) []float64 {
	out := make([]float64, len(kd))
	for i, k := range kd {
		l := axes[i].Length()
		out[i] = k * 4 * math.Pi * math.Pi / (l * l)
	}
	return out
}

// ScaleCross returns kc[j]·(2π)²/(L_a·L_b) for pair j. Zero coefficients are
// left untouched. kc is not modified.
func ScaleCross(kc []float64, axes []Axis) []float64 {
	out := make([]float64, len(kc))
	pairs := Pairs(len(axes))
	for j, k := range kc {
		if k == 0 {
			continue
		}
		p := pairs[j]
		out[j] = k * 4 * math.Pi * math.Pi / axes[p.A].Length() / axes[p.B].Length()
	}
	return out
}
