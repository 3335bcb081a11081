// Command fem1d assembles the finite element system for the boundary value
// problem -alpha*u'' + b*u' + c*u = f on a uniform mesh and prints the
// stiffness matrix and reduced load vector for inspection.
package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/martinsw01/fem1d"
)

var rootCmd = &cobra.Command{
	Use:   "fem1d",
	Short: "Assemble the 1D FEM system for -alpha*u'' + b*u' + c*u = f",
	Long: `
Builds a uniform mesh over [left, right], assembles the global stiffness
matrix and the reduced load vector for a constant source term, and prints
both.  The system is left to an external solver.`,
	Run: func(cmd *cobra.Command, args []string) {
		nodes, _ := cmd.Flags().GetInt("nodes")
		left, _ := cmd.Flags().GetFloat64("left")
		right, _ := cmd.Flags().GetFloat64("right")
		alpha, _ := cmd.Flags().GetFloat64("alpha")
		b, _ := cmd.Flags().GetFloat64("b")
		c, _ := cmd.Flags().GetFloat64("c")
		g0, _ := cmd.Flags().GetFloat64("g0")
		g1, _ := cmd.Flags().GetFloat64("g1")
		src, _ := cmd.Flags().GetFloat64("source")
		useSparse, _ := cmd.Flags().GetBool("sparse")

		mesh, err := fem1d.NewUniformMesh(left, right, nodes)
		if err != nil {
			log.Fatal(err)
		}
		coeffs := fem1d.Coeffs{Alpha: alpha, B: b, C: c}

		if useSparse {
			A, err := fem1d.StiffnessMatrixCSR(coeffs, mesh)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Printf("A (%v nonzero) =\n%v\n", A.NNZ(), mat.Formatted(A, mat.Squeeze()))
		} else {
			A, err := fem1d.StiffnessMatrix(coeffs, mesh)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Printf("A =\n%v\n", mat.Formatted(A, mat.Squeeze()))
		}

		F, err := fem1d.LoadVector(func(x float64) float64 { return src }, mesh, g0, g1)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("F =\n%v\n", mat.Formatted(F.T(), mat.Squeeze()))
	},
}

func init() {
	rootCmd.Flags().IntP("nodes", "m", 11, "number of mesh nodes")
	rootCmd.Flags().Float64("left", 0, "left end of the domain")
	rootCmd.Flags().Float64("right", 1, "right end of the domain")
	rootCmd.Flags().Float64P("alpha", "a", 1, "diffusion coefficient")
	rootCmd.Flags().Float64P("b", "b", 0, "advection coefficient")
	rootCmd.Flags().Float64P("c", "c", 0, "reaction coefficient")
	rootCmd.Flags().Float64("g0", 0, "Dirichlet value at the left boundary")
	rootCmd.Flags().Float64("g1", 0, "Dirichlet value at the right boundary")
	rootCmd.Flags().Float64P("source", "f", 0, "constant source term value")
	rootCmd.Flags().Bool("sparse", false, "assemble the stiffness matrix in CSR form")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
