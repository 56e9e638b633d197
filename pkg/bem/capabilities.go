package bem

import (
	"github.com/windbem/bemcore/pkg/induction"
	"github.com/windbem/bemcore/pkg/loss"
	"github.com/windbem/bemcore/pkg/rootfind"
)

// RootFinder brackets and solves for a root of a continuous scalar function.
// Its signature matches pkg/rootfind.Brent exactly so that function can be
// assigned to it directly; tests may substitute a stub finder without
// pulling in the real bracketing search.
type RootFinder func(f rootfind.Func, lo, hi, tol float64) (float64, error)

// Inductor evaluates the induction model, the shape of
// pkg/induction.Evaluate. Injected per spec.md's "strategy injection"
// design note: loss, induction, and root-finder are capabilities, not an
// inheritance hierarchy.
type Inductor interface {
	Evaluate(in induction.Input) induction.Result
}

type defaultInductor struct{}

func (defaultInductor) Evaluate(in induction.Input) induction.Result {
	return induction.Evaluate(in)
}

// DefaultInductor is the Ning (2013) empirical wake model from pkg/induction.
var DefaultInductor Inductor = defaultInductor{}

// DefaultLossModel is Combined Prandtl tip and hub loss, the usual
// production default; NoLoss is available for the Betz-bound invariant
// check (spec.md §8 property 4).
var DefaultLossModel loss.Model = loss.Combined{Tip: loss.PrandtlTip{}, Hub: loss.PrandtlHub{}}
