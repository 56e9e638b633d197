package rootfind_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/windbem/bemcore/pkg/rootfind"
)

// TestBrent_CubicPolynomial covers scenario S2: f(x)=x^3-2x-5 over [2,3],
// expected root x ~= 2.09455.
func TestBrent_CubicPolynomial(t *testing.T) {
	f := func(x float64) float64 { return x*x*x - 2*x - 5 }

	root, err := rootfind.Brent(f, 2, 3, 1e-10)
	require.NoError(t, err)
	assert.InDelta(t, 2.0945514815, root, 1e-4)
}

func TestBrent_LinearFunction(t *testing.T) {
	f := func(x float64) float64 { return x - 1.5 }
	root, err := rootfind.Brent(f, 0, 3, 1e-12)
	require.NoError(t, err)
	assert.InDelta(t, 1.5, root, 1e-9)
}

func TestBrent_NoBracket(t *testing.T) {
	f := func(x float64) float64 { return x*x + 1 }
	_, err := rootfind.Brent(f, -1, 1, 1e-6)
	require.Error(t, err)
	assert.True(t, errors.Is(err, rootfind.ErrNoBracket))
}

func TestBrent_ExactEndpointRoot(t *testing.T) {
	f := func(x float64) float64 { return x }
	root, err := rootfind.Brent(f, 0, 1, 1e-9)
	require.NoError(t, err)
	assert.Equal(t, 0.0, root)
}

func TestBrent_TrigFunction(t *testing.T) {
	f := func(x float64) float64 { return math.Sin(x) }
	root, err := rootfind.Brent(f, -1, 1, 1e-10)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, root, 1e-8)
}
