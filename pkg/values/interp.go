package values

import "sort"

// Table is a sorted (x, y) lookup table used for linear interpolation, the
// same storage shape the polar lookup (pkg/polar) uses for a sectional
// (alpha, Cl)/(alpha, Cd)/(alpha, Cm) curve.
type Table struct {
	X []float64
	Y []float64
}

// NewTable builds a Table from parallel x/y slices, sorting by x if needed.
// x and y must have equal, non-zero length.
func NewTable(x, y []float64) *Table {
	n := len(x)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(i, j int) bool { return x[idx[i]] < x[idx[j]] })
	sx := make([]float64, n)
	sy := make([]float64, n)
	for i, k := range idx {
		sx[i] = x[k]
		sy[i] = y[k]
	}
	return &Table{X: sx, Y: sy}
}

// Interpolate performs binary-search-plus-linear interpolation. Queries
// outside [X[0], X[len-1]] are clamped to the nearest endpoint value, per
// spec.md's LookupOutOfRange recovery policy.
func (t *Table) Interpolate(x float64) float64 {
	n := len(t.X)
	if n == 0 {
		return 0
	}
	if n == 1 || x <= t.X[0] {
		return t.Y[0]
	}
	if x >= t.X[n-1] {
		return t.Y[n-1]
	}

	// binary search for the first index whose X is >= x
	lo, hi := 0, n-1
	for lo < hi {
		mid := (lo + hi) / 2
		if t.X[mid] < x {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	// t.X[lo] >= x, interpolate between lo-1 and lo
	i1 := lo
	i0 := lo - 1
	if i0 < 0 {
		return t.Y[0]
	}
	x0, x1 := t.X[i0], t.X[i1]
	y0, y1 := t.Y[i0], t.Y[i1]
	if x1 == x0 {
		return y0
	}
	frac := (x - x0) / (x1 - x0)
	return y0 + frac*(y1-y0)
}
