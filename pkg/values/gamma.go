package values

import (
	"fmt"
	"math"
)

// DomainError reports an input outside the legal domain of a numeric routine.
type DomainError struct {
	Func string
	X    float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("values: %s domain error for x=%g", e.Func, e.X)
}

// lanczos g=7, n=9 coefficients, the standard minimax fit used for Gamma on
// the critical strip; combined with the reflection formula for x<0.5 and a
// Stirling-series fallback for large x this reproduces a full-range Gamma.
var lanczosCoeff = [9]float64{
	0.99999999999980993,
	676.5203681218851,
	-1259.1392167224028,
	771.32342877765313,
	-176.61502916214059,
	12.507343278686905,
	-0.13857109526572012,
	9.9843695780195716e-6,
	1.5056327351493116e-7,
}

// Gamma evaluates the Gamma function via the Lanczos approximation, falling
// back to the reflection formula for x < 0.5 and to Stirling's series for
// x > 12 where the Lanczos sum alone loses precision.
func Gamma(x float64) float64 {
	if x < 0.5 {
		return math.Pi / (math.Sin(math.Pi*x) * Gamma(1-x))
	}
	if x > 12 {
		return stirlingGamma(x)
	}
	x -= 1
	a := lanczosCoeff[0]
	t := x + 7.5
	for i := 1; i < 9; i++ {
		a += lanczosCoeff[i] / (x + float64(i))
	}
	return math.Sqrt(2*math.Pi) * math.Pow(t, x+0.5) * math.Exp(-t) * a
}

func stirlingGamma(x float64) float64 {
	return math.Sqrt(2*math.Pi/x) * math.Pow(x/math.E, x) *
		(1 + 1/(12*x) + 1/(288*x*x) - 139/(51840*x*x*x) -
			571/(2488320*x*x*x*x) + 163879/(209018880*x*x*x*x*x))
}

// LogGamma evaluates ln(Gamma(x)) for x > 0. It returns a *DomainError for
// x <= 0, per spec.md's C8 contract.
func LogGamma(x float64) (float64, error) {
	if x <= 0 {
		return 0, &DomainError{Func: "LogGamma", X: x}
	}
	if x > 12 {
		// ln of the Stirling series avoids overflow in Gamma(x) for large x.
		return x*math.Log(x) - x + 0.5*math.Log(2*math.Pi/x) +
			1/(12*x) - 1/(360*x*x*x), nil
	}
	g := Gamma(x)
	return math.Log(math.Abs(g)), nil
}
