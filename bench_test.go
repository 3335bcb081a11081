package fem1d

import (
	"math"
	"testing"
)

func BenchmarkStiffnessMatrix(b *testing.B) {
	mesh, err := NewUniformMesh(0, 1, 501)
	if err != nil {
		b.Fatal(err)
	}
	c := Coeffs{Alpha: 1, B: 0.5, C: 2}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := StiffnessMatrix(c, mesh); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkStiffnessMatrixCSR(b *testing.B) {
	mesh, err := NewUniformMesh(0, 1, 501)
	if err != nil {
		b.Fatal(err)
	}
	c := Coeffs{Alpha: 1, B: 0.5, C: 2}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := StiffnessMatrixCSR(c, mesh); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkLoadVector(b *testing.B) {
	mesh, err := NewUniformMesh(0, 1, 501)
	if err != nil {
		b.Fatal(err)
	}
	f := func(x float64) float64 { return math.Sin(math.Pi * x) }
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := LoadVector(f, mesh, 0, 0); err != nil {
			b.Fatal(err)
		}
	}
}
