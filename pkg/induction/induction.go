// Package induction implements the Ning (2013) empirical wake induction
// model the BEM solver injects as a capability (spec.md C3).
package induction

import (
	"math"

	"github.com/windbem/bemcore/pkg/values"
)

// edgeEpsilon is the sin/cos-near-zero threshold below which a NumericEdge
// is declared and the corresponding induction is forced to zero, per
// spec.md §7.
const edgeEpsilon = 1e-12

// Input carries the per-section residual state needed to evaluate
// induction factors, per spec.md §4.3.
type Input struct {
	Phi            float64 // local inflow angle [rad]
	Cn             float64 // normal force coefficient
	Ct             float64 // tangential force coefficient
	Solidity       float64 // sigma = B*c/(2*pi*r)
	F              float64 // combined loss factor in [0,1]
	WakeTransition float64 // x_w in (0,1), the empirical-branch threshold on a
}

// Result is the induction solution for one section.
type Result struct {
	Axial      float64 // a
	Tangential float64 // a'
	Kappa      float64 // k, exposed so the solver can phrase the residual uniformly
	KappaPrime float64 // k'
	HighThrust bool    // true if the empirical branch was used
}

// Evaluate computes (a, a', k, k') from (phi, Cn, Ct, sigma, F, x_w), per
// spec.md §4.3. It never panics; sin/cos-near-zero inputs are handled as a
// NumericEdge by forcing the corresponding induction to zero.
func Evaluate(in Input) Result {
	sinPhi := math.Sin(in.Phi)
	cosPhi := math.Cos(in.Phi)

	var kappa float64
	axialEdge := math.Abs(sinPhi) < edgeEpsilon
	if !axialEdge {
		kappa = in.Solidity * in.Cn / (4 * in.F * sinPhi * sinPhi)
	}

	var kappaPrime float64
	tangentialEdge := math.Abs(sinPhi) < edgeEpsilon || math.Abs(cosPhi) < edgeEpsilon
	if !tangentialEdge {
		kappaPrime = in.Solidity * in.Ct / (4 * in.F * sinPhi * cosPhi)
	}

	res := Result{Kappa: kappa, KappaPrime: kappaPrime}

	if axialEdge {
		res.Axial = 0
	} else {
		aMomentum := kappa / (1 + kappa)
		if aMomentum <= in.WakeTransition {
			res.Axial = aMomentum
		} else {
			res.Axial = highThrustAxial(kappa, in.F)
			res.HighThrust = true
		}
	}

	if tangentialEdge {
		res.Tangential = 0
	} else {
		aPrime := kappaPrime / (1 - kappaPrime)
		res.Tangential = aPrime
	}

	return res
}

// highThrustAxial solves the Buhl/Ning empirical closure for a once the
// momentum-theory value would exceed the wake-transition threshold,
// generalising the classic CT = 8/9 + (4F-40/9)a + (50/9-4F)a^2 empirical
// CT(a) curve: solving that quadratic for a in terms of k = sigma*Cn/(4F
// sin^2 phi) gives gamma1, gamma2, gamma3 below (Ning 2013 Eq. 6).
func highThrustAxial(kappa, f float64) float64 {
	gamma1 := 2*f*kappa - (10.0/9 - f)
	gamma2 := 2*f*kappa - (4.0/3-f)*f
	gamma3 := 2*f*kappa - (25.0/9 - 2*f)

	var a float64
	if math.Abs(gamma3) < 1e-6 {
		a = 1 - 1/(2*math.Sqrt(gamma2))
	} else {
		a = (gamma1 - math.Sqrt(gamma2)) / gamma3
	}

	// Testable property 3 (spec.md §8): a <= 1-eps on the empirical branch.
	return values.Clip(a, 0, 1-1e-6)
}
