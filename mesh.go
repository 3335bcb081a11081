package fem1d

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidMesh is returned when the grid points cannot support the
	// requested assembly: too few nodes or coordinates that are not
	// strictly increasing.
	ErrInvalidMesh = errors.New("fem1d: invalid mesh")
	// ErrDimensionMismatch is returned when the element widths disagree in
	// length with the node coordinates.
	ErrDimensionMismatch = errors.New("fem1d: dimension mismatch")
)

// Mesh is an ordered set of grid points partitioning a 1D interval into
// elements.  Element k spans [X[k], X[k+1]] and has width H[k].  A Mesh is
// immutable once built; the assemblers only read from it.
type Mesh struct {
	// X holds the node coordinates in strictly increasing order.
	X []float64
	// H holds the len(X)-1 element widths.
	H []float64
}

// NewMesh builds a mesh from the given node coordinates.  The coordinates
// must be strictly increasing and there must be at least two of them.
func NewMesh(xs []float64) (*Mesh, error) {
	if len(xs) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 nodes, got %v", ErrInvalidMesh, len(xs))
	}
	h := make([]float64, len(xs)-1)
	for i := range h {
		h[i] = xs[i+1] - xs[i]
		if h[i] <= 0 {
			return nil, fmt.Errorf("%w: nodes not strictly increasing at index %v", ErrInvalidMesh, i+1)
		}
	}
	return &Mesh{X: append([]float64{}, xs...), H: h}, nil
}

// NewUniformMesh builds a mesh of m evenly spaced nodes spanning [x0, x1].
func NewUniformMesh(x0, x1 float64, m int) (*Mesh, error) {
	if m < 2 {
		return nil, fmt.Errorf("%w: need at least 2 nodes, got %v", ErrInvalidMesh, m)
	}
	xs := make([]float64, m)
	for i := range xs {
		xs[i] = x0 + (x1-x0)*float64(i)/float64(m-1)
	}
	return NewMesh(xs)
}

// NumNodes returns the number of grid points M.
func (m *Mesh) NumNodes() int { return len(m.X) }

// NumElems returns the number of elements M-1.
func (m *Mesh) NumElems() int { return len(m.H) }

// validate re-checks the shape invariants for meshes built without NewMesh.
func (m *Mesh) validate() error {
	if len(m.X) < 2 {
		return fmt.Errorf("%w: need at least 2 nodes, got %v", ErrInvalidMesh, len(m.X))
	}
	if len(m.H) != len(m.X)-1 {
		return fmt.Errorf("%w: %v widths for %v nodes", ErrDimensionMismatch, len(m.H), len(m.X))
	}
	return nil
}
