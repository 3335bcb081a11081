// Package quadrature integrates scalar functions over single finite
// elements, including against the element's two local linear basis (hat)
// functions.  The 2-point Gauss-Legendre rule is the reference rule; it is
// exact for polynomials through degree 3, which covers a linear source
// weighted by a linear hat exactly.
package quadrature

import (
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

// Func evaluates a scalar integrand at a single point.  Non-finite values
// returned by a Func propagate through the quadrature sums untouched.
type Func func(x float64) float64

// Rule computes the definite integral of f over [x0, x1].
type Rule func(f Func, x0, x1 float64) float64

// Gauss integrates f over [x0, x1] with the 2-point Gauss-Legendre rule.
func Gauss(f Func, x0, x1 float64) float64 {
	return quad.Fixed(f, x0, x1, 2, quad.Legendre{}, 0)
}

// Fixed integrates f over [x0, x1] with an n-point Gauss-Legendre rule.
func Fixed(f Func, x0, x1 float64, n int) float64 {
	return quad.Fixed(f, x0, x1, n, quad.Legendre{}, 0)
}

// Trapezoid integrates f over [x0, x1] from the endpoint values alone.
func Trapezoid(f Func, x0, x1 float64) float64 {
	return 0.5 * (f(x0) + f(x1)) * (x1 - x0)
}

// Adaptive returns a Rule that doubles the Gauss-Legendre node count until
// two successive refinements agree within tol.
func Adaptive(tol float64) Rule {
	const maxNodes = 1 << 10
	return func(f Func, x0, x1 float64) float64 {
		prev := Fixed(f, x0, x1, 2)
		for n := 4; n <= maxNodes; n *= 2 {
			v := Fixed(f, x0, x1, n)
			if math.Abs(v-prev) <= tol {
				return v
			}
			prev = v
		}
		return prev
	}
}

// HatDown is the local basis function equal to 1 at x0, ramping to 0 at x1.
func HatDown(x, x0, x1 float64) float64 { return (x1 - x) / (x1 - x0) }

// HatUp is the local basis function equal to 0 at x0, ramping to 1 at x1.
func HatUp(x, x0, x1 float64) float64 { return (x - x0) / (x1 - x0) }

// Phi0 integrates f against the hat function peaking at the element's left
// node x0, using the given rule.
func Phi0(rule Rule, f Func, x0, x1 float64) float64 {
	return rule(func(x float64) float64 { return f(x) * HatDown(x, x0, x1) }, x0, x1)
}

// Phi1 integrates f against the hat function peaking at the element's right
// node x1, using the given rule.
func Phi1(rule Rule, f Func, x0, x1 float64) float64 {
	return rule(func(x float64) float64 { return f(x) * HatUp(x, x0, x1) }, x0, x1)
}
