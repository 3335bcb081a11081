package quadrature

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1.e-12 }

// integral is a definite integral with a known value.
type integral struct {
	name   string
	f      Func
	x0, x1 float64
	want   float64
}

func TestGaussPolynomialExactness(t *testing.T) {
	// The 2-point rule is exact through degree 3.
	tests := []integral{
		{"constant", func(x float64) float64 { return 3 }, -1, 2, 9},
		{"linear", func(x float64) float64 { return x }, -1, 2, 1.5},
		{"quadratic", func(x float64) float64 { return x * x }, -1, 2, 3},
		{"cubic", func(x float64) float64 { return x * x * x }, -1, 2, 15. / 4},
		{"shifted cubic", func(x float64) float64 { return (x - 1) * (x + 2) * x }, 0, 2, 8. / 3},
	}
	for _, test := range tests {
		got := Gauss(test.f, test.x0, test.x1)
		assert.True(t, near(got, test.want), "%v: got %v, want %v", test.name, got, test.want)
	}
}

func TestPhiIntegrals(t *testing.T) {
	id := func(x float64) float64 { return x }
	sq := func(x float64) float64 { return x * x }

	// Hand-computed against phi peaking at the left node (Phi0) and the
	// right node (Phi1).
	assert.True(t, near(Phi0(Gauss, id, 0, 1), 1./6))
	assert.True(t, near(Phi1(Gauss, id, 0, 1), 1./3))
	assert.True(t, near(Phi0(Gauss, sq, 0, 1), 1./12))
	assert.True(t, near(Phi1(Gauss, sq, 0, 1), 1./4))

	// Off-origin element: int_1^3 x*(3-x)/2 dx = 5/3.
	assert.True(t, near(Phi0(Gauss, id, 1, 3), 5./3))
}

func TestHatFunctions(t *testing.T) {
	assert.True(t, near(HatDown(1, 1, 3), 1))
	assert.True(t, near(HatDown(3, 1, 3), 0))
	assert.True(t, near(HatUp(1, 1, 3), 0))
	assert.True(t, near(HatUp(3, 1, 3), 1))
	assert.True(t, near(HatUp(2, 1, 3)+HatDown(2, 1, 3), 1))
}

func TestTrapezoid(t *testing.T) {
	id := func(x float64) float64 { return x }

	// Exact for linear integrands.
	assert.True(t, near(Trapezoid(id, 2, 5), 10.5))

	// Against a hat function only the peak endpoint survives.
	assert.True(t, near(Phi0(Trapezoid, id, 2, 5), 0.5*2*3))
	assert.True(t, near(Phi1(Trapezoid, id, 2, 5), 0.5*5*3))
}

func TestAdaptive(t *testing.T) {
	rule := Adaptive(1.e-10)

	got := rule(math.Sin, 0, math.Pi)
	assert.InDelta(t, 2, got, 1.e-9)

	// Polynomials converge at the first refinement.
	cubic := func(x float64) float64 { return x * x * x }
	assert.True(t, near(rule(cubic, -1, 2), 15./4))
}
