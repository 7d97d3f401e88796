package green_test

import (
	"fmt"

	"github.com/openkapitza/kapitza/cmatrix"
	"github.com/openkapitza/kapitza/fourier"
	"github.com/openkapitza/kapitza/green"
)

// ExampleSweep evaluates a decoupled single-atom lead at one frequency.
// With zero hopping the decimation stops after one step and the surface
// Green's function reduces to (Z − H0)⁻¹.
func ExampleSweep() {
	hsn := cmatrix.Scale(0.5, cmatrix.Identity(1))
	hop := cmatrix.New(1, 1) // zero hopping
	block := fourier.Block{Hsn: hsn, Hopping: hop}

	lead := green.Lead{
		Bulk:    []fourier.Block{block},
		Surface: []fourier.Block{block},
	}

	res, err := green.Sweep(lead, lead, 1.0, 1.0, 1, green.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	pt := res[0].Points[0]
	fmt.Printf("iterations=%d\n", pt.Iterations)
	fmt.Printf("Re(g)=%.4f\n", real(pt.Left.At(0, 0)))
	// Output:
	// iterations=1
	// Re(g)=2.0000
}
