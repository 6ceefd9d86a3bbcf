package arma

import (
	"fmt"
	"strings"
)

// Method identifies an estimation method.
type Method int

// Supported estimation methods.
const (
	MethodHR Method = iota
	MethodOLS
	MethodMLE
	MethodFTau
	MethodS
	MethodBS
	MethodMM
	MethodBMM
)

var methodNames = [...]string{"Hannan-Rissanen", "OLS", "MLE", "FTAU", "S", "BS", "MM", "BMM"}

// String returns the method name used in printed summaries.
func (m Method) String() string {
	if m < 0 || int(m) >= len(methodNames) {
		return "unknown"
	}
	return methodNames[m]
}

// Result stores the outcome of a single estimation stage.
type Result struct {
	// Method is the estimation method that produced the result.
	Method Method
	// Convergence is true only when the optimizer declared convergence,
	// not merely a usable solution. Closed-form stages report true.
	Convergence bool
	// FinalCost is the cost functional re-evaluated at the returned
	// parameters, never the optimizer's internal bookkeeping value.
	FinalCost float64
	// Report optionally carries the optimizer's termination summary.
	Report string
}

// String formats the result block of an estimation summary.
func (r Result) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-20s%-18s \n", "estimation method", r.Method)
	conv := "FALSE"
	if r.Convergence {
		conv = "TRUE"
	}
	fmt.Fprintf(&b, "%-20s%-18s \n", "convergence", conv)
	fmt.Fprintf(&b, "%-20s%-18.4f\n", "final cost", r.FinalCost)
	return b.String()
}
