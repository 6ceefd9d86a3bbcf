// Package robust provides the basic robust statistics used throughout
// robarma: median, median absolute deviation, the Huber psi-function, the
// Tukey bisquare rho-function, and the iterative M-scale.
//
// The differentiable pieces operate on dual numbers
// (gonum.org/v1/gonum/num/dual) so that estimator cost functionals built on
// top of them propagate exact first derivatives to the optimizer. Branches
// inside piecewise functions test only the primal part of their argument,
// which keeps derivative propagation intact across piece boundaries.
package robust
