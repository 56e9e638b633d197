// Package driver implements the operating-point driver (spec.md C7): it
// sweeps wind speed, maps each speed to a controller setpoint, runs a
// Solver and PostProcessor per point, and assembles a power curve plus its
// annual energy production.
package driver

import (
	"math"
	"sort"
	"sync"

	"github.com/windbem/bemcore/pkg/bem"
	"github.com/windbem/bemcore/pkg/flow"
	"github.com/windbem/bemcore/pkg/geometry"
	"github.com/windbem/bemcore/pkg/postprocess"
	"github.com/windbem/bemcore/pkg/rootfind"
	"github.com/windbem/bemcore/pkg/simconfig"
	"github.com/windbem/bemcore/pkg/veer"
)

const (
	ratedSearchLoBound = 0.0
	ratedSearchHiBound = 30.0 * math.Pi / 180.0
	ratedSearchTol     = 1e-3
	ratedSearchIters   = 60
)

// PowerCurvePoint is one operating point's summary (spec.md's
// PowerCurvePoint).
type PowerCurvePoint struct {
	WindSpeed float64
	OmegaRPM  float64
	PitchRad  float64
	PAero     float64
	PElec     float64
	Cp        float64
	Ct        float64
	Thrust    float64
	Converged bool
	Failures  []*bem.ConvergenceFailure
}

// PowerCurve is a complete sweep result, sorted by wind speed, plus AEP.
type PowerCurve struct {
	Points  []PowerCurvePoint
	AEP     float64 // [kWh]
	Revenue float64
}

// defaultGeneratorEfficiency converts aerodynamic to electrical power when
// Driver.GeneratorEfficiency is left unset; the core does not model a
// drivetrain beyond this scalar.
const defaultGeneratorEfficiency = 0.94

// Driver owns a borrowed TurbineGeometry and SimulationConfig plus an
// optional wind-veer model, and runs the full wind-speed sweep (spec.md
// §4.7, §9 "Driver owns per-sweep Solver owns borrowed models"). Veer is
// passed to flow.NewUniform without section heights, so it does not change
// the inflow velocities.
type Driver struct {
	Geometry            geometry.TurbineGeometry
	Config              simconfig.SimulationConfig
	Veer                veer.Model
	GeneratorEfficiency float64
	Concurrency         int
}

// New builds a Driver with the default generator efficiency and no veer
// model.
func New(geo geometry.TurbineGeometry, cfg simconfig.SimulationConfig) *Driver {
	return &Driver{
		Geometry:            geo,
		Config:              cfg,
		GeneratorEfficiency: defaultGeneratorEfficiency,
		Concurrency:         4,
	}
}

// Run sweeps V_start..V_end..V_step, solving each operating point
// concurrently (spec.md §5: "the sweep is embarrassingly parallel"), then
// sorts the results by wind speed and integrates AEP.
func (d *Driver) Run() *PowerCurve {
	sweep := d.Config.WindSweep()
	speeds := windSpeeds(sweep)

	points := make([]PowerCurvePoint, len(speeds))

	var wg sync.WaitGroup
	sem := make(chan struct{}, concurrencyOrDefault(d.Concurrency))

	for idx, v := range speeds {
		wg.Add(1)
		sem <- struct{}{}
		go func(idx int, v float64) {
			defer wg.Done()
			defer func() { <-sem }()
			points[idx] = d.solveOnePoint(v)
		}(idx, v)
	}
	wg.Wait()

	sort.Slice(points, func(i, j int) bool { return points[i].WindSpeed < points[j].WindSpeed })

	curve := &PowerCurve{Points: points}
	curve.AEP, curve.Revenue = d.annualEnergy(points)
	return curve
}

func concurrencyOrDefault(n int) int {
	if n <= 0 {
		return 1
	}
	return n
}

func windSpeeds(sweep simconfig.WindSweep) []float64 {
	if sweep.Step <= 0 {
		return []float64{sweep.Start}
	}
	var speeds []float64
	for v := sweep.Start; v <= sweep.End+1e-9; v += sweep.Step {
		speeds = append(speeds, v)
	}
	return speeds
}

// solveOnePoint picks (Omega, pitch) from the controller map, builds a
// fresh FlowField and Solver local to this goroutine (no shared mutable
// state per spec.md §5), and post-processes the result.
func (d *Driver) solveOnePoint(vInf float64) PowerCurvePoint {
	omega, pitch := d.controllerSetpoint(vInf)

	radii := make([]float64, d.Geometry.NumSections())
	for i := range radii {
		radii[i] = d.Geometry.Radius(i)
	}
	ff := flow.NewUniform(vInf, omega, radii, d.Veer, nil)

	solver := bem.NewSolver(d.Geometry, ff, d.Config, omega, pitch)
	solver.WindSpeed = vInf
	result, err := solver.Solve()
	if err != nil {
		// A DomainError here means the geometry/config themselves are
		// invalid; the driver cannot recover a single wind speed from
		// that, so the point is recorded unconverged and the caller is
		// expected to have already validated inputs once up front.
		return PowerCurvePoint{WindSpeed: vInf, OmegaRPM: radPerSecToRPM(omega), PitchRad: pitch}
	}

	post := postprocess.Process(d.Geometry, result, d.Config, vInf, omega, pitch)

	pAero := post.P
	pElec := pAero * d.generatorEfficiency()

	return PowerCurvePoint{
		WindSpeed: vInf,
		OmegaRPM:  radPerSecToRPM(omega),
		PitchRad:  pitch,
		PAero:     pAero,
		PElec:     pElec,
		Cp:        post.Cp,
		Ct:        post.Ct,
		Thrust:    post.T,
		Converged: result.Success,
		Failures:  result.Failures,
	}
}

func (d *Driver) generatorEfficiency() float64 {
	if d.GeneratorEfficiency <= 0 {
		return defaultGeneratorEfficiency
	}
	return d.GeneratorEfficiency
}

// controllerSetpoint implements spec.md §4.7 step 1: below rated the rotor
// tracks the optimal tip-speed ratio with zero pitch; above rated the rotor
// holds rated speed and pitches to hold rated aerodynamic power.
func (d *Driver) controllerSetpoint(vInf float64) (omega, pitch float64) {
	nMin := d.Config.MinRPM() * 2 * math.Pi / 60
	nMax := d.Config.MaxRPM() * 2 * math.Pi / 60
	nRated := d.Config.RatedRPM() * 2 * math.Pi / 60

	belowRatedOmega := clipFloat(d.Config.OptimalTSR()*vInf/d.Geometry.RotorRadius(), nMin, nMax)

	pAeroAtBelowRated := d.aeroPowerAt(vInf, belowRatedOmega, 0)
	if pAeroAtBelowRated < d.Config.RatedPower() {
		return belowRatedOmega, 0
	}

	omega = nRated
	pitch = d.searchRatedPitch(vInf, omega)
	return omega, pitch
}

// aeroPowerAt is a cheap one-off solve used only to classify below/above
// rated regions and to drive the pitch search; it discards everything but
// P_aero.
func (d *Driver) aeroPowerAt(vInf, omega, pitch float64) float64 {
	radii := make([]float64, d.Geometry.NumSections())
	for i := range radii {
		radii[i] = d.Geometry.Radius(i)
	}
	ff := flow.NewUniform(vInf, omega, radii, d.Veer, nil)
	solver := bem.NewSolver(d.Geometry, ff, d.Config, omega, pitch)
	result, err := solver.Solve()
	if err != nil {
		return 0
	}
	post := postprocess.Process(d.Geometry, result, d.Config, vInf, omega, pitch)
	return post.P
}

// searchRatedPitch runs Brent's method over (0, 30deg) for the pitch at which
// P_aero is within ratedSearchTol of rated_power, relative to rated_power
// (spec.md §4.7 step 1, "Above rated"). The result is clipped to that pitch
// range only; MaxPowerSlope (dP/dOmega_max) is not applied.
func (d *Driver) searchRatedPitch(vInf, omega float64) float64 {
	target := d.Config.RatedPower()
	scale := target
	if scale <= 0 {
		scale = 1
	}
	residual := func(pitch float64) float64 {
		return (d.aeroPowerAt(vInf, omega, pitch) - target) / scale
	}

	lo, hi := ratedSearchLoBound, ratedSearchHiBound
	fLo, fHi := residual(lo), residual(hi)
	if fLo*fHi > 0 {
		// No sign change in the bracket: the turbine cannot reach rated
		// power even at full pitch (low wind edge) or is already well
		// past it at zero pitch; clip to whichever bound is closer.
		if math.Abs(fLo) < math.Abs(fHi) {
			return lo
		}
		return hi
	}

	pitch, err := rootfind.Brent(residual, lo, hi, ratedSearchTol)
	if err != nil {
		return hi
	}
	return clipFloat(pitch, lo, hi)
}

func clipFloat(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func radPerSecToRPM(omega float64) float64 {
	return omega * 60 / (2 * math.Pi)
}

// annualEnergy integrates AEP against a Weibull wind distribution using the
// bin-half-width convention documented in spec.md §9: dV = V_step/2, and
// each point's weight is the survival-function difference across its bin
// (spec.md §4.7, scenario S5).
func (d *Driver) annualEnergy(points []PowerCurvePoint) (aep, revenue float64) {
	wb := d.Config.Weibull()
	sweep := d.Config.WindSweep()
	if wb.MeanV <= 0 || wb.K <= 0 {
		return 0, 0
	}
	dV := sweep.Step / 2

	survival := func(v float64) float64 {
		if v <= 0 {
			return 1
		}
		return math.Exp(-math.Pow(v/wb.MeanV, wb.K))
	}

	var hours float64
	for _, p := range points {
		w := survival(p.WindSpeed-dV) - survival(p.WindSpeed+dV)
		hours += w * p.PElec
	}
	aep = 8760 * hours / 1000 // Wh -> kWh
	revenue = aep * wb.PricePerKWh
	return aep, revenue
}
