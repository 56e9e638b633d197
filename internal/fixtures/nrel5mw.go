// Package fixtures provides small literal TurbineGeometry and polar data
// for the CLI's default run and for scenario-style tests, without any
// airfoil-file or geometry-file parsing (spec.md §1 lists both as external,
// out-of-scope collaborators).
package fixtures

import (
	"math"

	"github.com/windbem/bemcore/pkg/geometry"
	"github.com/windbem/bemcore/pkg/polar"
)

// genericPolar builds a thin-airfoil-like polar (Cl =
// 2*pi*sin(alpha)*exp(-|alpha|), constant drag) good enough to exercise the solver end to end; it is not a
// wind-tunnel-measured airfoil.
func genericPolar(cd float64) *polar.Table {
	points := make([]polar.Point, 0, 73)
	for deg := -180.0; deg <= 180.0; deg += 5 {
		alpha := deg * math.Pi / 180
		points = append(points, polar.Point{
			Alpha: alpha,
			Cl:    2 * math.Pi * math.Sin(alpha) * math.Exp(-math.Abs(alpha)),
			Cd:    cd,
			Cm:    -0.05 * math.Sin(alpha),
		})
	}
	return polar.NewTable(points)
}

// NREL5MW returns an approximation of the NREL 5MW reference rotor's blade
// planform: 8 radial stations spanning hub to tip, matching scenario S1's
// geometry scale (rotor radius 63 m, hub radius 1.5 m, 3 blades).
func NREL5MW() *geometry.InMemory {
	type station struct {
		radius, chord, twistDeg float64
	}
	stations := []station{
		{8.67, 3.542, 13.31},
		{15.85, 4.167, 11.48},
		{23.97, 4.557, 7.79},
		{32.25, 4.249, 4.98},
		{40.45, 3.664, 2.85},
		{48.65, 3.000, 1.25},
		{56.17, 2.313, 0.39},
		{62.50, 1.419, 0.11},
	}

	sections := make([]geometry.Section, len(stations))
	for i, s := range stations {
		sections[i] = geometry.Section{
			Radius: s.radius,
			Chord:  s.chord,
			Twist:  s.twistDeg * math.Pi / 180,
			Polar:  genericPolar(0.01),
		}
	}

	g, err := geometry.NewInMemory(sections, 63.0, 1.5, 3)
	if err != nil {
		// The literal station table above is constructed to satisfy
		// InMemory's invariants; a failure here means this fixture itself
		// is broken, not a runtime condition callers should handle.
		panic(err)
	}
	return g
}
