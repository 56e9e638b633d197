// Package simconfig defines the SimulationConfig collaborator interface
// (spec.md §3, §6): the immutable bundle of physics constants, solver
// numerics, controller limits, wind-sweep bounds and Weibull parameters the
// core consumes. Loading one from a file is an ambient, outer-layer concern
// (see internal/config); this package only defines the contract and a
// plain in-memory implementation for tests and library callers.
package simconfig

// PowerMode names the above-rated control mode carried in the
// configuration. The operating-point driver does not read it: every mode
// gets the same setpoints (rated speed, pitch searched toward rated power).
type PowerMode string

const (
	// ModeL0 is the "L0" mode value.
	ModeL0 PowerMode = "L0"
	// ModePower is the "POWER" mode value.
	ModePower PowerMode = "POWER"
)

// WindSweep describes the V_start..V_end..V_step sweep the driver iterates.
type WindSweep struct {
	Start float64
	End   float64
	Step  float64
}

// Weibull holds the wind-distribution shape/scale parameters used for AEP
// integration (spec.md §4.7).
type Weibull struct {
	K           float64 // shape
	MeanV       float64 // scale, <V>
	PricePerKWh float64
}

// SimulationConfig is the collaborator interface the core consumes for all
// physics constants and solver/controller numerics (spec.md §6).
type SimulationConfig interface {
	// Physics constants.
	KinematicViscosity() float64 // nu [m^2/s]
	SpeedOfSound() float64       // a_s [m/s]
	AirDensity() float64         // rho [kg/m^3]

	// Solver numerics.
	ConvergenceTolerance() float64 // epsilon_conv
	WakeTransition() float64       // x_wake in (0,1)
	TipAvoidance() float64        // Delta_tip [m]

	// Controller / rated operation.
	RatedPower() float64     // [W]
	RatedRPM() float64       // n_rated [rpm]
	MaxRPM() float64         // n_max [rpm]
	MinRPM() float64         // n_min [rpm]
	OptimalTSR() float64     // lambda_opt
	MaxPowerSlope() float64  // dP/dOmega_max
	PowerMode() PowerMode

	// Wind sweep and AEP.
	WindSweep() WindSweep
	Weibull() Weibull
}

// Static is a plain-struct implementation of SimulationConfig, suitable for
// tests and library callers; internal/config converts its viper-loaded
// Config into a Static.
type Static struct {
	Nu              float64
	SpeedOfSoundV   float64
	Rho             float64
	EpsConv         float64
	XWake           float64
	TipAvoid        float64
	Rated           float64
	NRated          float64
	NMax            float64
	NMin            float64
	LambdaOpt       float64
	DPowerDOmegaMax float64
	Mode            PowerMode
	Sweep           WindSweep
	Wind            Weibull
}

var _ SimulationConfig = (*Static)(nil)

func (c *Static) KinematicViscosity() float64 { return c.Nu }
func (c *Static) SpeedOfSound() float64 { return c.SpeedOfSoundV }
func (c *Static) AirDensity() float64 { return c.Rho }
func (c *Static) ConvergenceTolerance() float64 { return c.EpsConv }
func (c *Static) WakeTransition() float64 { return c.XWake }
func (c *Static) TipAvoidance() float64 { return c.TipAvoid }
func (c *Static) RatedPower() float64 { return c.Rated }
func (c *Static) RatedRPM() float64 { return c.NRated }
func (c *Static) MaxRPM() float64 { return c.NMax }
func (c *Static) MinRPM() float64 { return c.NMin }
func (c *Static) OptimalTSR() float64 { return c.LambdaOpt }
func (c *Static) MaxPowerSlope() float64 { return c.DPowerDOmegaMax }
func (c *Static) PowerMode() PowerMode { return c.Mode }
func (c *Static) WindSweep() WindSweep { return c.Sweep }
func (c *Static) Weibull() Weibull { return c.Wind }

// DefaultNREL5MW returns a Static config approximating the NREL 5MW
// reference turbine's physics and controller constants, used by scenario S1
// and as a sane default for the CLI.
func DefaultNREL5MW() *Static {
	return &Static{
		Nu:              1.5e-5,
		SpeedOfSoundV:   340.3,
		Rho:             1.225,
		EpsConv:         1e-6,
		XWake:           0.4,
		TipAvoid:        0.1,
		Rated:           5e6,
		NRated:          12.1,
		NMax:            12.1,
		NMin:            6.9,
		LambdaOpt:       7.55,
		DPowerDOmegaMax: 1e9,
		Mode:            ModeL0,
		Sweep:           WindSweep{Start: 4, End: 24, Step: 1},
		Wind:            Weibull{K: 2, MeanV: 8, PricePerKWh: 0.1},
	}
}
