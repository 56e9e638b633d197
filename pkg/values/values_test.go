package values_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/windbem/bemcore/pkg/values"
)

func TestVector3_AddSubtract(t *testing.T) {
	a := values.Vector3{X: 1, Y: 2, Z: 3}
	b := values.Vector3{X: 0.5, Y: -1, Z: 2}

	assert.Equal(t, values.Vector3{X: 1.5, Y: 1, Z: 5}, a.Add(b))
	assert.Equal(t, values.Vector3{X: 0.5, Y: 3, Z: 1}, a.Subtract(b))
}

func TestVector3_Magnitude(t *testing.T) {
	v := values.Vector3{X: 3, Y: 4, Z: 0}
	assert.InDelta(t, 5.0, v.Magnitude(), 1e-12)
}

func TestRotateZ_PreservesMagnitude(t *testing.T) {
	v := values.Vector3{X: 2, Y: 0, Z: 1}
	r := values.RotateZ(v, math.Pi/3)
	assert.InDelta(t, v.Magnitude(), r.Magnitude(), 1e-9)
}

func TestMatrix_IdentityMultiplyVector(t *testing.T) {
	id := values.IdentityMatrix(3)
	out, err := id.MultiplyVector([]float64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, out)
}

func TestMatMult_DimensionMismatch(t *testing.T) {
	a := values.NewMatrix(2)
	b := values.NewMatrix(3)
	_, err := values.MatMult(a, b)
	assert.Error(t, err)
}

func TestMatrix_Transpose(t *testing.T) {
	m, err := values.NewMatrixFrom(2, []float64{1, 2, 3, 4})
	require.NoError(t, err)
	tr := m.Transpose()
	assert.Equal(t, 1.0, tr.At(0, 0))
	assert.Equal(t, 3.0, tr.At(0, 1))
	assert.Equal(t, 2.0, tr.At(1, 0))
	assert.Equal(t, 4.0, tr.At(1, 1))
}

func TestLinspace(t *testing.T) {
	xs := values.Linspace(4, 24, 21)
	require.Len(t, xs, 21)
	assert.InDelta(t, 4.0, xs[0], 1e-12)
	assert.InDelta(t, 24.0, xs[len(xs)-1], 1e-12)
	assert.InDelta(t, 14.0, xs[10], 1e-9)
}

func TestLinspace_SingleSample(t *testing.T) {
	assert.Equal(t, []float64{5}, values.Linspace(5, 50, 1))
}

func TestClip(t *testing.T) {
	assert.Equal(t, 0.0, values.Clip(-1, 0, 1))
	assert.Equal(t, 1.0, values.Clip(2, 0, 1))
	assert.Equal(t, 0.5, values.Clip(0.5, 0, 1))
}

func TestTable_InterpolateAndClamp(t *testing.T) {
	tbl := values.NewTable([]float64{-10, -5, 0, 5, 10}, []float64{-1, -0.5, 0, 0.5, 1})

	assert.InDelta(t, 0.25, tbl.Interpolate(2.5), 1e-12)
	assert.InDelta(t, -1, tbl.Interpolate(-100), 1e-12, "below-range query clamps to first endpoint")
	assert.InDelta(t, 1, tbl.Interpolate(100), 1e-12, "above-range query clamps to last endpoint")
}

func TestTable_UnsortedInputIsSorted(t *testing.T) {
	tbl := values.NewTable([]float64{5, 0, -5}, []float64{0.5, 0, -0.5})
	assert.Equal(t, []float64{-5, 0, 5}, tbl.X)
	assert.Equal(t, []float64{-0.5, 0, 0.5}, tbl.Y)
}

func TestGamma_KnownValues(t *testing.T) {
	// Gamma(n) = (n-1)! for positive integers.
	assert.InDelta(t, 1.0, values.Gamma(1), 1e-9)
	assert.InDelta(t, 1.0, values.Gamma(2), 1e-9)
	assert.InDelta(t, 2.0, values.Gamma(3), 1e-9)
	assert.InDelta(t, 6.0, values.Gamma(4), 1e-9)
	assert.InDelta(t, 24.0, values.Gamma(5), 1e-6)
	assert.InDelta(t, math.Sqrt(math.Pi), values.Gamma(0.5), 1e-6)
}

func TestGamma_LargeXUsesStirling(t *testing.T) {
	// Gamma(13) = 12!
	assert.InDelta(t, 479001600.0, values.Gamma(13), 1.0)
}

func TestLogGamma_MatchesLogOfGamma(t *testing.T) {
	for _, x := range []float64{0.5, 1, 2.5, 6, 15} {
		lg, err := values.LogGamma(x)
		require.NoError(t, err)
		assert.InDelta(t, math.Log(values.Gamma(x)), lg, 1e-6)
	}
}

func TestLogGamma_DomainError(t *testing.T) {
	_, err := values.LogGamma(0)
	require.Error(t, err)
	var domErr *values.DomainError
	assert.ErrorAs(t, err, &domErr)

	_, err = values.LogGamma(-3)
	assert.Error(t, err)
}
