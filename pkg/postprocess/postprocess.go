// Package postprocess implements the BEM post-processor (spec.md C6): it
// maps a converged bem.Result plus the turbine geometry into per-section
// loads, rotor integrals, and cumulative tip-to-root blade beam loads.
package postprocess

import (
	"math"

	"github.com/windbem/bemcore/pkg/bem"
	"github.com/windbem/bemcore/pkg/geometry"
	"github.com/windbem/bemcore/pkg/simconfig"
)

// Result is the per-section and rotor-level output of a post-processed
// solve (spec.md's BEMPostprocessResult).
type Result struct {
	AlphaEff   []float64
	Cl, Cd, Cm []float64
	CpLoc      []float64
	CtLoc      []float64
	Dr         []float64
	DT, DQ     []float64
	DFy        []float64
	DMAirfoil  []float64

	// Cumulative tip-to-root prefix sums, index N-1 is the tip-most
	// section's own contribution and index 0 is the full blade-root
	// value (spec.md §4.6 step 5).
	CumDT, CumDFy []float64
	CumFlapMoment []float64 // prefix sum of r*dT
	CumEdgeMoment []float64
	CumMAirfoil   []float64

	T, Q, P    float64
	Cp, Ct, Cq float64
	SumFy      float64
	RootMx     float64 // flap moment at the root
	RootMy     float64 // edge moment at the root
	RootMz     float64 // torsional moment at the root

	success bool
}

// Success reports whether every section converged. Integrals are still
// computed over the converged subset even when it is false (spec.md §4.6,
// "Failure propagation").
func (r *Result) Success() bool { return r.success }

// Process runs the C6 pipeline for one converged (or partially converged)
// solver result, at free-stream speed vInf and rotor speed omega.
func Process(geo geometry.TurbineGeometry, sol *bem.Result, cfg simconfig.SimulationConfig, vInf, omega, pitch float64) *Result {
	n := geo.NumSections()

	r := &Result{
		AlphaEff:      make([]float64, n),
		Cl:            make([]float64, n),
		Cd:            make([]float64, n),
		Cm:            make([]float64, n),
		CpLoc:         make([]float64, n),
		CtLoc:         make([]float64, n),
		Dr:            elementLengths(geo),
		DT:            make([]float64, n),
		DQ:            make([]float64, n),
		DFy:           make([]float64, n),
		DMAirfoil:     make([]float64, n),
		CumDT:         make([]float64, n),
		CumDFy:        make([]float64, n),
		CumFlapMoment: make([]float64, n),
		CumEdgeMoment: make([]float64, n),
		CumMAirfoil:   make([]float64, n),
		success:       sol.Success,
	}

	rho := cfg.AirDensity()
	b := float64(geo.NumBlades())

	for i := 0; i < n; i++ {
		if !sol.Converged[i] {
			continue
		}
		chord := geo.Chord(i)
		radius := geo.Radius(i)
		twist := geo.Twist(i)
		r.Cl[i], r.Cd[i], r.Cm[i] = geo.Polar(i).Lookup(sol.Phi[i] - (twist + pitch))
		r.AlphaEff[i] = sol.Phi[i] - twist - pitch

		a := sol.AAxial[i]
		aPrime := sol.ARot[i]

		// vAxial/vTangential are re-derived from the induction factors
		// rather than re-queried from the flow field, since only
		// (phi, a, a') survive into the solver's Result (spec.md §4.6
		// step 2 works purely off the converged state).
		vTan := omega * radius
		vRel := math.Hypot(vInf*(1-a), vTan*(1+aPrime))

		q := 0.5 * rho * vRel * vRel
		dT := b * q * sol.Cn[i] * chord * r.Dr[i]
		dQ := b * q * sol.Ct[i] * chord * radius * r.Dr[i]
		dFy := b * q * sol.Ct[i] * chord * r.Dr[i]
		dM := q * r.Cm[i] * chord * chord * r.Dr[i]

		r.DT[i] = dT
		r.DQ[i] = dQ
		r.DFy[i] = dFy
		r.DMAirfoil[i] = dM

		r.CpLoc[i] = sol.Cn[i]
		r.CtLoc[i] = sol.Ct[i]

		r.T += dT
		r.Q += dQ
		r.SumFy += dFy
	}

	r.P = omega * r.Q

	area := math.Pi * (geo.RotorRadius()*geo.RotorRadius() - geo.HubRadius()*geo.HubRadius())
	if rho > 0 && vInf > 0 && area > 0 {
		r.Ct = r.T / (0.5 * rho * vInf * vInf * area)
		r.Cp = r.P / (0.5 * rho * vInf * vInf * vInf * area)
		r.Cq = r.Q / (0.5 * rho * vInf * vInf * area * geo.RotorRadius())
	}

	cumulateBladeLoads(geo, r)

	return r
}

// elementLengths computes dr_i as the distance between the midpoints
// bracketing section i, with the hub and tip radii as the outer bounds
// (spec.md §4.6 step 1).
func elementLengths(geo geometry.TurbineGeometry) []float64 {
	n := geo.NumSections()
	bounds := make([]float64, n+1)
	bounds[0] = geo.HubRadius()
	bounds[n] = geo.RotorRadius()
	for i := 1; i < n; i++ {
		bounds[i] = (geo.Radius(i-1) + geo.Radius(i)) / 2
	}
	dr := make([]float64, n)
	for i := 0; i < n; i++ {
		dr[i] = bounds[i+1] - bounds[i]
	}
	return dr
}

// cumulateBladeLoads builds the tip-to-root prefix sums and reads off the
// root-end values as the blade-root moments (spec.md §4.6 step 5).
func cumulateBladeLoads(geo geometry.TurbineGeometry, r *Result) {
	n := geo.NumSections()
	var cumDT, cumDFy, cumFlap, cumEdge, cumM float64
	for i := n - 1; i >= 0; i-- {
		radius := geo.Radius(i)
		cumDT += r.DT[i]
		cumDFy += r.DFy[i]
		cumFlap += radius * r.DT[i]
		cumEdge += radius * r.DFy[i]
		cumM += r.DMAirfoil[i]

		r.CumDT[i] = cumDT
		r.CumDFy[i] = cumDFy
		r.CumFlapMoment[i] = cumFlap
		r.CumEdgeMoment[i] = cumEdge
		r.CumMAirfoil[i] = cumM
	}
	if n > 0 {
		r.RootMx = r.CumFlapMoment[0]
		r.RootMy = r.CumEdgeMoment[0]
		r.RootMz = r.CumMAirfoil[0]
	}
}
