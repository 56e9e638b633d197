package config

import "github.com/windbem/bemcore/pkg/simconfig"

// App and Logging are ambient sections every bemcore binary reads,
// independent of the physics payload below.
type App struct {
	Name    string `mapstructure:"name"`
	Version string `mapstructure:"version"`
}

type Logging struct {
	Level string `mapstructure:"level"`
}

// Physics mirrors simconfig.SimulationConfig's physics-constant getters.
type Physics struct {
	KinematicViscosity float64 `mapstructure:"kinematic_viscosity"`
	SpeedOfSound       float64 `mapstructure:"speed_of_sound"`
	AirDensity         float64 `mapstructure:"air_density"`
}

// Solver mirrors the solver-numerics getters.
type Solver struct {
	ConvergenceTolerance float64 `mapstructure:"convergence_tolerance"`
	WakeTransition       float64 `mapstructure:"wake_transition"`
	TipAvoidance         float64 `mapstructure:"tip_avoidance"`
}

// Controller mirrors the rated-operation getters.
type Controller struct {
	RatedPower    float64 `mapstructure:"rated_power"`
	RatedRPM      float64 `mapstructure:"rated_rpm"`
	MaxRPM        float64 `mapstructure:"max_rpm"`
	MinRPM        float64 `mapstructure:"min_rpm"`
	OptimalTSR    float64 `mapstructure:"optimal_tsr"`
	MaxPowerSlope float64 `mapstructure:"max_power_slope"`
	PowerMode     string  `mapstructure:"power_mode"`
}

type WindSweep struct {
	Start float64 `mapstructure:"start"`
	End   float64 `mapstructure:"end"`
	Step  float64 `mapstructure:"step"`
}

type Weibull struct {
	K           float64 `mapstructure:"k"`
	MeanV       float64 `mapstructure:"mean_v"`
	PricePerKWh float64 `mapstructure:"price_per_kwh"`
}

// Config is the full bemcore configuration file schema.
type Config struct {
	App        App        `mapstructure:"app"`
	Logging    Logging    `mapstructure:"logging"`
	Physics    Physics    `mapstructure:"physics"`
	Solver     Solver     `mapstructure:"solver"`
	Controller Controller `mapstructure:"controller"`
	WindSweep  WindSweep  `mapstructure:"wind_sweep"`
	Weibull    Weibull    `mapstructure:"weibull"`
}

// SimulationConfig converts the loaded file schema into the core's
// simconfig.SimulationConfig contract.
func (c *Config) SimulationConfig() *simconfig.Static {
	return &simconfig.Static{
		Nu:              c.Physics.KinematicViscosity,
		SpeedOfSoundV:   c.Physics.SpeedOfSound,
		Rho:             c.Physics.AirDensity,
		EpsConv:         c.Solver.ConvergenceTolerance,
		XWake:           c.Solver.WakeTransition,
		TipAvoid:        c.Solver.TipAvoidance,
		Rated:           c.Controller.RatedPower,
		NRated:          c.Controller.RatedRPM,
		NMax:            c.Controller.MaxRPM,
		NMin:            c.Controller.MinRPM,
		LambdaOpt:       c.Controller.OptimalTSR,
		DPowerDOmegaMax: c.Controller.MaxPowerSlope,
		Mode:            simconfig.PowerMode(c.Controller.PowerMode),
		Sweep:           simconfig.WindSweep(c.WindSweep),
		Wind:            simconfig.Weibull(c.Weibull),
	}
}
