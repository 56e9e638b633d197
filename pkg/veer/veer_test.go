package veer_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/windbem/bemcore/pkg/veer"
)

func TestIdentity_PassesThrough(t *testing.T) {
	a, tgt := veer.Identity{}.Adjust(50, 8, 30)
	assert.Equal(t, 8.0, a)
	assert.Equal(t, 30.0, tgt)
}

func TestSinusoidal_PreservesMagnitude(t *testing.T) {
	m := veer.Sinusoidal{AmplitudeRad: 0.1, ReferenceHeight: 90}
	a, tgt := m.Adjust(45, 8, 30)
	before := math.Hypot(8, 30)
	after := math.Hypot(a, tgt)
	assert.InDelta(t, before, after, 1e-9)
}

func TestSinusoidal_ZeroReferenceHeightIsNoop(t *testing.T) {
	m := veer.Sinusoidal{AmplitudeRad: 0.1, ReferenceHeight: 0}
	a, tgt := m.Adjust(45, 8, 30)
	assert.Equal(t, 8.0, a)
	assert.Equal(t, 30.0, tgt)
}

func TestSinusoidal_ZeroHeightIsNoop(t *testing.T) {
	m := veer.Sinusoidal{AmplitudeRad: 0.2, ReferenceHeight: 90}
	a, tgt := m.Adjust(0, 8, 30)
	assert.InDelta(t, 8.0, a, 1e-12)
	assert.InDelta(t, 30.0, tgt, 1e-12)
}
