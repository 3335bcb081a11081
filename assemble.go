package fem1d

import (
	"fmt"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"

	"github.com/martinsw01/fem1d/quadrature"
)

// Coeffs holds the scalar coefficients of the differential operator
// -alpha*u'' + b*u' + c*u.
type Coeffs struct {
	// Alpha is the diffusion coefficient.
	Alpha float64
	// B is the advection coefficient.
	B float64
	// C is the reaction coefficient.
	C float64
}

// ElemStiffness returns the 2x2 bilinear form of the operator restricted to
// the two hat functions of one element of width h.  The matrix is symmetric
// iff B is zero.
func ElemStiffness(c Coeffs, h float64) *mat.Dense {
	a := c.Alpha
	return mat.NewDense(2, 2, []float64{
		a/h + c.B/2 + c.C*h/3, -a/h + c.B/2 + c.C*h/6,
		-a/h - c.B/2 + c.C*h/6, a/h - c.B/2 + c.C*h/3,
	})
}

// StiffnessMatrix assembles the M x M global stiffness matrix for the mesh:
// each element's local matrix is summed into the 2x2 block at rows/cols
// {k, k+1}, and the two boundary rows are then overwritten with identity
// rows for Dirichlet elimination.  The result is tridiagonal.
func StiffnessMatrix(c Coeffs, m *Mesh) (*mat.Dense, error) {
	if err := m.validate(); err != nil {
		return nil, err
	}
	A := mat.NewDense(m.NumNodes(), m.NumNodes(), nil)
	scatterStiffness(A, c, m)
	dirichletRows(A, m.NumNodes())
	return A, nil
}

// StiffnessMatrixCSR assembles the same operator as StiffnessMatrix into a
// compressed sparse row matrix.  The dense form is O(M^2) storage for a
// matrix with at most 3M nonzeros, so large meshes want this variant.
func StiffnessMatrixCSR(c Coeffs, m *Mesh) (*sparse.CSR, error) {
	if err := m.validate(); err != nil {
		return nil, err
	}
	A := sparse.NewDOK(m.NumNodes(), m.NumNodes())
	scatterStiffness(A, c, m)
	dirichletRows(A, m.NumNodes())
	return A.ToCSR(), nil
}

// scatterStiffness accumulates every element's local matrix into A.  Prior
// to the Dirichlet overwrite the result couples each node only to its mesh
// neighbors.
func scatterStiffness(A mat.Mutable, c Coeffs, m *Mesh) {
	for k, h := range m.H {
		Ak := ElemStiffness(c, h)
		for i := 0; i < 2; i++ {
			for j := 0; j < 2; j++ {
				A.Set(k+i, k+j, A.At(k+i, k+j)+Ak.At(i, j))
			}
		}
	}
}

// dirichletRows forces the two boundary rows to identity constraints.  The
// coupling to the single interior neighbor is zeroed explicitly so the rows
// come out one-hot regardless of what accumulated there.
func dirichletRows(A mat.Mutable, n int) {
	A.Set(0, 0, 1)
	A.Set(0, 1, 0)
	A.Set(n-1, n-1, 1)
	A.Set(n-1, n-2, 0)
}

// ElemLoadFunc computes one element's load contribution: l0 belongs to the
// element's left node and l1 to its right node.
type ElemLoadFunc func(f quadrature.Func, x0, x1 float64) (l0, l1 float64)

// GaussElemLoad integrates the source f against the element's two hat
// functions with the 2-point Gauss-Legendre rule.  It is the default
// elemental load used by LoadVector.
func GaussElemLoad(f quadrature.Func, x0, x1 float64) (l0, l1 float64) {
	l0 = quadrature.Phi0(quadrature.Gauss, f, x0, x1)
	l1 = quadrature.Phi1(quadrature.Gauss, f, x0, x1)
	return l0, l1
}

// NonSmoothElemLoad computes the elemental load for a problem whose solution
// u is known in closed form over the element.  The diffusive flux term
// integrates exactly to alpha*(u(x1)-u(x0))/h, so only the advection and
// reaction terms go through quadrature.
func NonSmoothElemLoad(c Coeffs, u quadrature.Func, x0, x1 float64) (l0, l1 float64) {
	h := x1 - x0
	a := c.Alpha * (u(x1) - u(x0)) / h
	l0 = quadrature.Gauss(func(x float64) float64 {
		return -c.B*u(x)/h + c.C*u(x)*quadrature.HatDown(x, x0, x1)
	}, x0, x1) + a
	l1 = quadrature.Gauss(func(x float64) float64 {
		return c.B*u(x)/h + c.C*u(x)*quadrature.HatUp(x, x0, x1)
	}, x0, x1) - a
	return l0, l1
}

// NonSmoothLoader adapts NonSmoothElemLoad to the ElemLoadFunc strategy
// slot.  The assembler's source argument is ignored in favor of the known
// solution u.
func NonSmoothLoader(c Coeffs, u quadrature.Func) ElemLoadFunc {
	return func(_ quadrature.Func, x0, x1 float64) (float64, float64) {
		return NonSmoothElemLoad(c, u, x0, x1)
	}
}

// LoadVector assembles the reduced global load vector for source f and
// Dirichlet boundary values g0 and g1 using the default Gauss elemental
// load.  The result has length M-2: the two boundary nodes are not free
// unknowns and their entries are dropped.
func LoadVector(f quadrature.Func, m *Mesh, g0, g1 float64) (*mat.VecDense, error) {
	return LoadVectorWith(GaussElemLoad, f, m, g0, g1)
}

// LoadVectorWith assembles the reduced load vector with an injected
// elemental load strategy.  Source-term integration runs over the interior
// elements only; the two elements touching the boundary contribute through
// the Dirichlet corrections g0/H[0] and g1/H[M-2] at the first and last
// interior unknowns.  The mesh must have at least 4 nodes for any interior
// unknowns to remain.
func LoadVectorWith(load ElemLoadFunc, f quadrature.Func, m *Mesh, g0, g1 float64) (*mat.VecDense, error) {
	if err := m.validate(); err != nil {
		return nil, err
	}
	n := m.NumNodes()
	if n < 4 {
		return nil, fmt.Errorf("%w: load assembly needs at least 4 nodes, got %v", ErrInvalidMesh, n)
	}

	F := make([]float64, n)
	for i := 1; i < n-2; i++ {
		l0, l1 := load(f, m.X[i], m.X[i+1])
		F[i] += l0
		F[i+1] += l1
	}
	F[1] += g0 / m.H[0]
	F[n-2] += g1 / m.H[m.NumElems()-1]

	return mat.NewVecDense(n-2, F[1:n-1]), nil
}
