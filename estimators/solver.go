package estimators

import (
	"fmt"
	"math"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/num/dual"
	"gonum.org/v1/gonum/optimize"

	"github.com/sartorproj/robarma/arma"
)

// cost is a scalar objective differentiable in (phi, theta, mu).
type cost interface {
	eval(phi, theta []dual.Number, mu dual.Number) dual.Number
}

// pack lays the three parameter blocks out as one vector of length p+q+1:
// phi, then theta, then mu. Zero-length blocks simply occupy no slots, so
// p=0 or q=0 never produces aliased or dangling storage.
func pack(p arma.Params) []float64 {
	x := make([]float64, 0, len(p.Phi)+len(p.Theta)+1)
	x = append(x, p.Phi...)
	x = append(x, p.Theta...)
	return append(x, p.Mu)
}

func unpack(m *arma.Model, x []float64) arma.Params {
	phi := make([]float64, m.P)
	copy(phi, x[:m.P])
	theta := make([]float64, m.Q)
	copy(theta, x[m.P:m.P+m.Q])
	return arma.Params{Phi: phi, Theta: theta, Mu: x[m.P+m.Q]}
}

// evalAt evaluates c at x. With seed >= 0 the derivative with respect to
// coordinate seed rides along on the dual part; with seed < 0 the result is
// a plain evaluation.
func evalAt(m *arma.Model, c cost, x []float64, seed int) dual.Number {
	d := make([]dual.Number, len(x))
	for i, v := range x {
		d[i] = dual.Number{Real: v}
	}
	if seed >= 0 {
		d[seed].Emag = 1
	}
	return c.eval(d[:m.P], d[m.P:m.P+m.Q], d[m.P+m.Q])
}

// solve runs the optimizer on c starting from the initial fit and bundles
// the outcome. plateau selects a pure line-search minimizer for the scale
// costs whose rho saturates, which leaves quasi-Newton trust steps stuck at
// the starting point. Convergence is classified strictly: only a true
// convergence status counts, and the reported cost is re-evaluated at the
// returned parameters rather than trusted from the optimizer.
func solve(m *arma.Model, initial arma.Fit, method arma.Method, c cost, plateau bool, o Options) arma.Fit {
	x0 := pack(initial.Params)

	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			v := evalAt(m, c, x, -1).Real
			if math.IsNaN(v) {
				return math.Inf(1)
			}
			return v
		},
		Grad: func(grad, x []float64) {
			for j := range x {
				g := evalAt(m, c, x, j).Emag
				if math.IsNaN(g) || math.IsInf(g, 0) {
					g = 0
				}
				grad[j] = g
			}
		},
	}

	var minimizer optimize.Method = &optimize.BFGS{}
	if plateau {
		minimizer = &optimize.GradientDescent{}
	}
	settings := &optimize.Settings{MajorIterations: o.maxIterations}

	res, err := optimize.Minimize(problem, x0, settings, minimizer)

	x := x0
	report := ""
	converged := false
	if res != nil {
		x = res.X
		converged = err == nil && convergedStatus(res.Status)
		report = fmt.Sprintf("status: %v, iterations: %d, evaluations: %d",
			res.Status, res.Stats.MajorIterations, res.Stats.FuncEvaluations)
	}
	if err != nil {
		report = fmt.Sprintf("%s, error: %v", report, err)
	}

	finalCost := evalAt(m, c, x, -1).Real
	params := unpack(m, x)

	o.logger.Debug("estimation finished",
		zap.Stringer("method", method),
		zap.Bool("convergence", converged),
		zap.Float64("final_cost", finalCost),
		zap.String("report", report),
	)

	initParams := initial.Params.Clone()
	initResult := initial.Result
	return arma.Fit{
		Model:         m,
		Params:        params,
		Result:        arma.Result{Method: method, Convergence: converged, FinalCost: finalCost, Report: report},
		InitialParams: &initParams,
		InitialResult: &initResult,
	}
}

// convergedStatus reports whether the optimizer actually declared
// convergence, as opposed to merely stopping at a usable point.
func convergedStatus(s optimize.Status) bool {
	switch s {
	case optimize.GradientThreshold,
		optimize.FunctionConvergence,
		optimize.StepConvergence,
		optimize.FunctionThreshold,
		optimize.MethodConverge:
		return true
	}
	return false
}
