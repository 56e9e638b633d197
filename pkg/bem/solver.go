// Package bem implements the Ning (2013) single-variable BEM solver
// (spec.md C5): given a turbine geometry, a flow field, a pitch and a rotor
// speed, it finds the per-section inflow angle phi that zeroes the Ning
// residual and reports the resulting induction factors and force
// coefficients.
package bem

import (
	"math"

	"github.com/windbem/bemcore/pkg/flow"
	"github.com/windbem/bemcore/pkg/geometry"
	"github.com/windbem/bemcore/pkg/induction"
	"github.com/windbem/bemcore/pkg/loss"
	"github.com/windbem/bemcore/pkg/rootfind"
	"github.com/windbem/bemcore/pkg/simconfig"
)

const (
	branchEpsilon    = 1e-6
	numSubIntervals  = 20
	negativeBranchLo = -math.Pi / 4
)

// Solver owns borrowed geometry, flow, and config, plus the injected
// capabilities used to phrase and solve the residual (spec.md §9: "the
// solver owns borrows, not instances").
type Solver struct {
	Geometry geometry.TurbineGeometry
	Flow     flow.FlowCalculator
	Config   simconfig.SimulationConfig
	Loss     loss.Model
	Inductor Inductor
	RootFind RootFinder

	// Omega is the rotor angular speed [rad/s]; Pitch is the collective
	// pitch [rad].
	Omega float64
	Pitch float64

	// WindSpeed and Azimuth are recorded only for diagnostics on
	// ConvergenceFailure, per spec.md §7.
	WindSpeed float64
	Azimuth   float64
}

// NewSolver builds a Solver with the production defaults (Combined Prandtl
// loss, the Ning empirical inductor, and Brent's method) unless overridden
// on the returned value.
func NewSolver(geo geometry.TurbineGeometry, flowField flow.FlowCalculator, cfg simconfig.SimulationConfig, omega, pitch float64) *Solver {
	return &Solver{
		Geometry: geo,
		Flow:     flowField,
		Config:   cfg,
		Loss:     DefaultLossModel,
		Inductor: DefaultInductor,
		RootFind: rootfind.Brent,
		Omega:    omega,
		Pitch:    pitch,
	}
}

// sectionState is the full intermediate state the residual needs and the
// solver ultimately records.
type sectionState struct {
	phi    float64
	cn, ct float64
	aAxial float64
	aRot   float64
	f      float64
}

// Solve runs the per-section branch search for every section and assembles
// a Result. It never panics: domain violations return a *DomainError,
// per-section convergence failures are recorded in Result.Failures and set
// Result.Success false without aborting the other sections (spec.md §4.5,
// §7).
func (s *Solver) Solve() (*Result, error) {
	n := s.Geometry.NumSections()
	if n < 2 {
		return nil, &DomainError{Msg: "turbine geometry must have at least two sections"}
	}
	if s.Config.AirDensity() <= 0 {
		return nil, &DomainError{Msg: "air density must be positive"}
	}
	for i := 0; i < n; i++ {
		if s.Geometry.Polar(i) == nil {
			return nil, &DomainError{Msg: "section polar table must not be nil"}
		}
	}

	result := newResult(n)

	for i := 0; i < n; i++ {
		state, fsmState, convFail := s.solveSection(i)
		result.Phi[i] = state.phi
		result.AAxial[i] = state.aAxial
		result.ARot[i] = state.aRot
		result.Cn[i] = state.cn
		result.Ct[i] = state.ct
		result.State[i] = fsmState
		result.Converged[i] = fsmState == StateConverged

		if convFail != nil {
			result.Success = false
			result.Failures = append(result.Failures, convFail)
		}
	}

	return result, nil
}

// solveSection drives one section's state machine through
// Unsolved -> SearchingPositive -> [SearchingNegative] -> {Converged|Failed}.
func (s *Solver) solveSection(i int) (sectionState, string, *ConvergenceFailure) {
	sm := newSectionFSM()
	_ = sm.begin() // Unsolved -> SearchingPositive

	tol := s.Config.ConvergenceTolerance()

	if phi, ok := s.searchBracket(i, branchEpsilon, math.Pi/2-branchEpsilon, tol); ok {
		_ = sm.converge()
		return s.evaluateAt(i, phi), sm.Current(), nil
	}

	_ = sm.exhaustPositive() // SearchingPositive -> SearchingNegative

	if phi, ok := s.searchBracket(i, negativeBranchLo, -branchEpsilon, tol); ok {
		_ = sm.converge()
		return s.evaluateAt(i, phi), sm.Current(), nil
	}

	_ = sm.exhaustNegative() // SearchingNegative -> Failed

	failure := &ConvergenceFailure{
		Section:   i,
		WindSpeed: s.WindSpeed,
		Azimuth:   s.Azimuth,
		Cause:     rootfind.ErrNoBracket,
	}
	return sectionState{}, sm.Current(), failure
}

// searchBracket subdivides [lo, hi] into numSubIntervals equal pieces and
// invokes RootFind on every sub-interval where the residual changes sign,
// accepting the first root whose absolute residual is within tol
// (spec.md §4.5 branch selection, steps 1-2).
func (s *Solver) searchBracket(i int, lo, hi, tol float64) (float64, bool) {
	f := func(phi float64) float64 { return s.residual(i, phi).f }

	step := (hi - lo) / float64(numSubIntervals)
	prevX := lo
	prevF := f(lo)

	for k := 1; k <= numSubIntervals; k++ {
		x := lo + step*float64(k)
		fx := f(x)

		if prevF == 0 {
			return prevX, true
		}
		if fx == 0 {
			return x, true
		}

		if prevF*fx < 0 {
			root, err := s.RootFind(f, prevX, x, tol)
			if err == nil && math.Abs(f(root)) <= tol {
				return root, true
			}
		}

		prevX, prevF = x, fx
	}
	return 0, false
}

// residual evaluates the Ning (2013) Eq. 8 residual at a trial phi:
//
//	f(phi) = sin(phi)/(1-a) - (Vx/Vy)*cos(phi)/(1+a')
//
// where Vx, Vy are the section's axial and tangential inflow velocities.
func (s *Solver) residual(i int, phi float64) sectionState {
	st := s.evaluateAt(i, phi)

	vx := s.Flow.AxialVelocity(i)
	vy := s.Flow.TangentialVelocity(i)

	var f float64
	switch {
	case vx == 0:
		f = math.Sin(phi) / (1 - st.aAxial)
	default:
		f = math.Sin(phi)/(1-st.aAxial) - (vx/vy)*math.Cos(phi)/(1+st.aRot)
	}
	st.f = f
	return st
}

// evaluateAt computes (Cn, Ct, F, a, a') at a trial phi without touching
// solver-wide state, so it is safe to call repeatedly from inside the root
// search (spec.md §5: "The solver does not allocate inside the residual
// function").
func (s *Solver) evaluateAt(i int, phi float64) sectionState {
	twist := s.Geometry.Twist(i)
	alpha := phi - (twist + s.Pitch)

	cl, cd, _ := s.Geometry.Polar(i).Lookup(alpha)

	sinPhi, cosPhi := math.Sin(phi), math.Cos(phi)
	cn := cl*cosPhi + cd*sinPhi
	ct := cl*sinPhi - cd*cosPhi

	r := s.Geometry.Radius(i)
	chord := s.Geometry.Chord(i)
	sigma := float64(s.Geometry.NumBlades()) * chord / (2 * math.Pi * r)

	f := s.Loss.Evaluate(loss.Input{
		Radius:      r,
		RotorRadius: s.Geometry.RotorRadius(),
		HubRadius:   s.Geometry.HubRadius(),
		Phi:         phi,
		NumBlades:   s.Geometry.NumBlades(),
		Chord:       chord,
		TipAvoid:    s.Config.TipAvoidance(),
	})

	ind := s.Inductor.Evaluate(induction.Input{
		Phi:            phi,
		Cn:             cn,
		Ct:             ct,
		Solidity:       sigma,
		F:              f,
		WakeTransition: s.Config.WakeTransition(),
	})

	return sectionState{
		phi:    phi,
		cn:     cn,
		ct:     ct,
		aAxial: ind.Axial,
		aRot:   ind.Tangential,
		f:      f,
	}
}
