// Package solver provides a small Newton-Raphson root finder. It knows
// nothing about rates or money; domain bounds are the caller's business.
package solver

import "math"

const (
	// diffStep is the half-width of the symmetric finite difference used
	// to estimate the derivative.
	diffStep = 1e-6
	// epsilon is the convergence tolerance on |f(x)|.
	epsilon = 1e-6
	// maxIterations bounds the search.
	maxIterations = 64
)

// FindRoot searches for x such that f(x) == 0, starting from x = 0.
// It returns false when the derivative estimate vanishes or the iteration
// cap is reached without convergence.
func FindRoot(f func(float64) float64) (float64, bool) {
	x := 0.0
	for i := 0; i < maxIterations; i++ {
		fx := f(x)
		if math.Abs(fx) < epsilon {
			return x, true
		}
		derivative := (f(x+diffStep) - f(x-diffStep)) / (2 * diffStep)
		if derivative == 0 || math.IsNaN(derivative) || math.IsInf(derivative, 0) {
			return 0, false
		}
		x -= fx / derivative
	}
	return 0, false
}
