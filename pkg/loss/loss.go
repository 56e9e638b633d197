// Package loss implements the Prandtl tip/hub loss factors and the no-loss
// and combined variants the BEM solver injects as a capability (spec.md C2).
package loss

import (
	"math"

	"github.com/windbem/bemcore/pkg/values"
)

// Input carries the per-section geometry and flow state a loss model needs
// to evaluate F, per spec.md §4.2.
type Input struct {
	Radius      float64 // r [m]
	RotorRadius float64 // R [m]
	HubRadius   float64 // R_h [m]
	Phi         float64 // local inflow angle [rad]
	NumBlades   int     // B
	Chord       float64 // c [m]
	TipAvoid    float64 // Delta_tip [m], singularity avoider
}

// Model evaluates the loss factor F in [0, 1] for a section.
type Model interface {
	Evaluate(in Input) float64
}

// NoLoss always returns F = 1.
type NoLoss struct{}

// Evaluate implements Model.
func (NoLoss) Evaluate(Input) float64 { return 1 }

// PrandtlTip implements the Prandtl tip-loss approximation.
type PrandtlTip struct{}

// Evaluate implements Model.
func (PrandtlTip) Evaluate(in Input) float64 {
	avoid := 0.01*in.Chord + in.TipAvoid
	sinPhi := math.Sin(in.Phi)
	if math.Abs(sinPhi) < 1e-12 {
		// NumericEdge: the tip-loss denominator would vanish; the section
		// is effectively edge-on to the rotor plane, so no loss applies.
		return 1
	}
	fT := (avoid + in.RotorRadius - in.Radius) / (in.Radius * math.Abs(sinPhi))
	arg := math.Exp(-0.5 * float64(in.NumBlades) * fT)
	return (2 / math.Pi) * math.Acos(values.Clip(arg, 0, 1))
}

// PrandtlHub implements the Prandtl hub-loss approximation.
type PrandtlHub struct{}

// Evaluate implements Model.
func (PrandtlHub) Evaluate(in Input) float64 {
	avoid := 0.01 * in.Chord
	sinPhi := math.Sin(in.Phi)
	if math.Abs(sinPhi) < 1e-12 || in.HubRadius <= 0 {
		return 1
	}
	fH := (avoid + in.Radius - in.HubRadius) / (in.HubRadius * math.Abs(sinPhi))
	arg := math.Exp(-0.5 * float64(in.NumBlades) * fH)
	return (2 / math.Pi) * math.Acos(values.Clip(arg, 0, 1))
}

// Combined multiplies a tip and a hub loss model: F = F_T * F_H.
type Combined struct {
	Tip Model
	Hub Model
}

// Evaluate implements Model.
func (c Combined) Evaluate(in Input) float64 {
	return c.Tip.Evaluate(in) * c.Hub.Evaluate(in)
}
