// Package geometry defines the TurbineGeometry collaborator interface
// (spec.md §3, §6) and a minimal in-memory implementation. Full blade
// geometry interpolation and airfoil-file parsing are out of scope (spec.md
// §1); InMemory exists only so the core has something concrete to run
// against in tests and the CLI.
package geometry

import "github.com/windbem/bemcore/pkg/polar"

// Section is one radial blade station (spec.md's BladeSection entity).
type Section struct {
	Radius      float64 // r [m]
	Chord       float64 // c [m]
	Twist       float64 // theta_t [rad]
	AeroCentreX float64
	AeroCentreY float64
	Polar       *polar.Table
}

// TurbineGeometry is the geometry collaborator the core consumes.
type TurbineGeometry interface {
	NumSections() int
	Radius(i int) float64
	Chord(i int) float64
	Twist(i int) float64
	AeroCentreX(i int) float64
	AeroCentreY(i int) float64
	Polar(i int) *polar.Table
	RotorRadius() float64
	HubRadius() float64
	NumBlades() int
}

// InMemory is a TurbineGeometry backed by a literal slice of sections; it
// does not parse any file format. Sections must be supplied in strictly
// increasing radius order with hub_radius <= r_i <= rotor_radius, per
// spec.md's BladeSection invariant.
type InMemory struct {
	Sections     []Section
	RotorRadiusV float64
	HubRadiusV   float64
	NumBladesV   int
}

// NewInMemory validates and builds an InMemory geometry.
func NewInMemory(sections []Section, rotorRadius, hubRadius float64, numBlades int) (*InMemory, error) {
	g := &InMemory{Sections: sections, RotorRadiusV: rotorRadius, HubRadiusV: hubRadius, NumBladesV: numBlades}
	if err := g.validate(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *InMemory) validate() error {
	if len(g.Sections) < 2 {
		return &DomainError{Msg: "a turbine geometry needs at least two sections"}
	}
	if g.NumBladesV < 1 {
		return &DomainError{Msg: "num_blades must be >= 1"}
	}
	for i, s := range g.Sections {
		if s.Polar == nil {
			return &DomainError{Msg: "section polar table must not be nil"}
		}
		if s.Radius < g.HubRadiusV || s.Radius > g.RotorRadiusV {
			return &DomainError{Msg: "section radius out of [hub_radius, rotor_radius]"}
		}
		if i > 0 && s.Radius <= g.Sections[i-1].Radius {
			return &DomainError{Msg: "section radii must be strictly increasing"}
		}
	}
	return nil
}

// DomainError reports a geometry precondition violation (spec.md §7).
type DomainError struct{ Msg string }

func (e *DomainError) Error() string { return "geometry: " + e.Msg }

func (g *InMemory) NumSections() int { return len(g.Sections) }
func (g *InMemory) Radius(i int) float64 { return g.Sections[i].Radius }
func (g *InMemory) Chord(i int) float64 { return g.Sections[i].Chord }
func (g *InMemory) Twist(i int) float64 { return g.Sections[i].Twist }
func (g *InMemory) AeroCentreX(i int) float64 { return g.Sections[i].AeroCentreX }
func (g *InMemory) AeroCentreY(i int) float64 { return g.Sections[i].AeroCentreY }
func (g *InMemory) Polar(i int) *polar.Table { return g.Sections[i].Polar }
func (g *InMemory) RotorRadius() float64 { return g.RotorRadiusV }
func (g *InMemory) HubRadius() float64 { return g.HubRadiusV }
func (g *InMemory) NumBlades() int { return g.NumBladesV }
