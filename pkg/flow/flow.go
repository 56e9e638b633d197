// Package flow defines the FlowCalculator collaborator interface (spec.md
// §3, §6): per-section axial and tangential inflow velocities for a given
// free-stream wind speed and azimuth, with an optional wind-veer hook.
package flow

import "github.com/windbem/bemcore/pkg/veer"

// FlowCalculator is the inflow collaborator the core consumes.
type FlowCalculator interface {
	AxialVelocity(i int) float64
	TangentialVelocity(i int) float64
}

// HeightProvider is an optional capability a FlowCalculator may also
// implement so a veer.Model can rotate velocities based on section height
// (spec.md §3).
type HeightProvider interface {
	Height(i int) float64
}

// Uniform is a FlowCalculator built from a steady free-stream wind speed and
// a rotor angular speed, ignoring shear and veer: V_axial = V_inf for every
// section, V_tangential = Omega*r. An optional veer.Model and per-section
// heights adjust both components before they are returned.
type Uniform struct {
	axial      []float64
	tangential []float64
	heights    []float64
}

// NewUniform builds a Uniform flow field for rotor speed omega [rad/s] over
// sections at the given radii, with free-stream speed vInf. If model is
// non-nil and heights is non-empty, each section's velocities are adjusted
// by model.Adjust(height, axial, tangential).
func NewUniform(vInf, omega float64, radii []float64, model veer.Model, heights []float64) *Uniform {
	n := len(radii)
	axial := make([]float64, n)
	tangential := make([]float64, n)
	for i, r := range radii {
		a := vInf
		t := omega * r
		if model != nil && i < len(heights) {
			a, t = model.Adjust(heights[i], a, t)
		}
		axial[i] = a
		tangential[i] = t
	}
	return &Uniform{axial: axial, tangential: tangential, heights: heights}
}

func (u *Uniform) AxialVelocity(i int) float64 { return u.axial[i] }
func (u *Uniform) TangentialVelocity(i int) float64 { return u.tangential[i] }
func (u *Uniform) Height(i int) float64 {
	if i < len(u.heights) {
		return u.heights[i]
	}
	return 0
}

var _ FlowCalculator = (*Uniform)(nil)
var _ HeightProvider = (*Uniform)(nil)
