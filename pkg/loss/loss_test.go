package loss_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/windbem/bemcore/pkg/loss"
)

func TestNoLoss_AlwaysOne(t *testing.T) {
	m := loss.NoLoss{}
	assert.Equal(t, 1.0, m.Evaluate(loss.Input{Radius: 30, RotorRadius: 63, Phi: 0.3, NumBlades: 3}))
}

// TestPrandtlTip_MidspanNearOne covers scenario S3: r=R/2, B=3, phi=0.2,
// c=0.1 should give F in (0.99, 1.00).
func TestPrandtlTip_MidspanNearOne(t *testing.T) {
	m := loss.PrandtlTip{}
	R := 10.0
	f := m.Evaluate(loss.Input{Radius: R / 2, RotorRadius: R, NumBlades: 3, Phi: 0.2, Chord: 0.1})
	assert.True(t, f > 0.99 && f <= 1.0, "expected F in (0.99, 1.00], got %v", f)
}

// TestPrandtlTip_NearTipDropsSharply covers scenario S4: r=0.99R should push
// F well below 0.5.
func TestPrandtlTip_NearTipDropsSharply(t *testing.T) {
	m := loss.PrandtlTip{}
	R := 10.0
	f := m.Evaluate(loss.Input{Radius: 0.99 * R, RotorRadius: R, NumBlades: 3, Phi: 0.2, Chord: 0.1})
	assert.Less(t, f, 0.5)
}

func TestPrandtlTip_Bounded(t *testing.T) {
	m := loss.PrandtlTip{}
	for _, r := range []float64{1, 5, 9, 9.9, 9.99} {
		f := m.Evaluate(loss.Input{Radius: r, RotorRadius: 10, NumBlades: 3, Phi: 0.3, Chord: 0.2})
		assert.GreaterOrEqual(t, f, 0.0)
		assert.LessOrEqual(t, f, 1.0)
	}
}

func TestPrandtlTip_ZeroSinPhiIsHandled(t *testing.T) {
	m := loss.PrandtlTip{}
	f := m.Evaluate(loss.Input{Radius: 5, RotorRadius: 10, NumBlades: 3, Phi: 0, Chord: 0.2})
	assert.Equal(t, 1.0, f)
}

func TestCombined_MultipliesTipAndHub(t *testing.T) {
	in := loss.Input{Radius: 5, RotorRadius: 10, HubRadius: 1, NumBlades: 3, Phi: 0.3, Chord: 0.2}
	tip := loss.PrandtlTip{}.Evaluate(in)
	hub := loss.PrandtlHub{}.Evaluate(in)

	c := loss.Combined{Tip: loss.PrandtlTip{}, Hub: loss.PrandtlHub{}}
	assert.InDelta(t, tip*hub, c.Evaluate(in), 1e-12)
}

func TestPrandtlHub_Bounded(t *testing.T) {
	m := loss.PrandtlHub{}
	for _, r := range []float64{1.01, 2, 5, 9} {
		f := m.Evaluate(loss.Input{Radius: r, RotorRadius: 10, HubRadius: 1, NumBlades: 3, Phi: 0.3, Chord: 0.2})
		assert.GreaterOrEqual(t, f, 0.0)
		assert.LessOrEqual(t, f, 1.0)
	}
}
