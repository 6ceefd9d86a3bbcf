package arma

import (
	"fmt"
	"strings"
)

// Params is the ARMA parameter triple: AR coefficients phi (length p),
// MA coefficients theta (length q), and the location mu.
type Params struct {
	Phi   []float64
	Theta []float64
	Mu    float64
}

// Clone returns a deep copy of the parameters.
func (p Params) Clone() Params {
	phi := make([]float64, len(p.Phi))
	copy(phi, p.Phi)
	theta := make([]float64, len(p.Theta))
	copy(theta, p.Theta)
	return Params{Phi: phi, Theta: theta, Mu: p.Mu}
}

// Fit bundles an estimated parameter set with its model and result, plus
// the initial parameters and result for provenance. The Fit does not own
// the Model; the Model outlives every Fit derived from it.
type Fit struct {
	Model  *Model
	Params Params
	Result Result

	// InitialParams and InitialResult record the starting point handed to
	// the optimizer, when there was one.
	InitialParams *Params
	InitialResult *Result
}

// String renders the estimation summary in the library's stable
// human-readable format: method, convergence, final cost to four decimals,
// then the initial and final parameter vectors.
func (f Fit) String() string {
	var b strings.Builder
	b.WriteString("ARMA estimation summary\n\n")

	if f.InitialParams != nil {
		b.WriteString("Initial values\n\n")
		writeParams(&b, *f.InitialParams)
		b.WriteString("\n")
	}

	b.WriteString(f.Result.String())
	b.WriteString("\n")
	b.WriteString("Estimated parameters\n\n")
	writeParams(&b, f.Params)
	return b.String()
}

func writeParams(b *strings.Builder, p Params) {
	b.WriteString(fmt.Sprintf("%-8s", "phi"))
	for _, v := range p.Phi {
		fmt.Fprintf(b, "%8.4f ", v)
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%-8s", "theta"))
	for _, v := range p.Theta {
		fmt.Fprintf(b, "%8.4f ", v)
	}
	b.WriteString("\n")
	fmt.Fprintf(b, "%-8s%8.4f\n", "mu", p.Mu)
}
