// Package polar implements the per-section airfoil polar lookup (spec.md
// C4): a sorted (alpha, Cl, Cd, Cm) table with binary-search-plus-linear
// interpolation and endpoint clamping.
package polar

import "github.com/windbem/bemcore/pkg/values"

// Point is one row of a polar table: angle of attack in radians, and the
// corresponding lift, drag, and moment coefficients.
type Point struct {
	Alpha float64
	Cl    float64
	Cd    float64
	Cm    float64
}

// Table is a sorted-by-alpha polar lookup for a single blade section. A
// single polar per section is used; Reynolds/Mach are informational context
// only and never select between polars (spec.md §4.4).
type Table struct {
	cl *values.Table
	cd *values.Table
	cm *values.Table
}

// NewTable builds a Table from an ordered (or unordered) sequence of points.
func NewTable(points []Point) *Table {
	alpha := make([]float64, len(points))
	cl := make([]float64, len(points))
	cd := make([]float64, len(points))
	cm := make([]float64, len(points))
	for i, p := range points {
		alpha[i] = p.Alpha
		cl[i] = p.Cl
		cd[i] = p.Cd
		cm[i] = p.Cm
	}
	return &Table{
		cl: values.NewTable(append([]float64{}, alpha...), cl),
		cd: values.NewTable(append([]float64{}, alpha...), cd),
		cm: values.NewTable(append([]float64{}, alpha...), cm),
	}
}

// Lookup returns (Cl, Cd, Cm) at the given angle of attack (radians),
// clamping to the table's endpoints when alpha falls outside its domain.
func (t *Table) Lookup(alpha float64) (cl, cd, cm float64) {
	return t.cl.Interpolate(alpha), t.cd.Interpolate(alpha), t.cm.Interpolate(alpha)
}

// ReynoldsNumber computes Re = |V_rel|*c/nu, context for the lookup but not
// used to select between polars in this core (spec.md §4.4).
func ReynoldsNumber(vRel, chord, kinematicViscosity float64) float64 {
	if kinematicViscosity == 0 {
		return 0
	}
	return absF(vRel) * chord / kinematicViscosity
}

// MachNumber computes M = |V_rel|/a_s.
func MachNumber(vRel, speedOfSound float64) float64 {
	if speedOfSound == 0 {
		return 0
	}
	return absF(vRel) / speedOfSound
}

func absF(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
