package sim

import "math"

// LogisticParams parameterizes the generalized logistic curve used to map
// prevention spending (e.g. a hand-washing campaign budget) to a
// multiplicative contact-rate reduction.
type LogisticParams struct {
	A  float64 // lower asymptote
	B  float64 // growth steepness
	C  float64 // denominator offset, conventionally 1
	M  float64 // midpoint location
	K  float64 // upper asymptote, the maximum achievable reduction
	Q  float64 // horizontal shift
	Nu float64 // asymmetry of approach to the asymptotes
}

// NewLogisticParams returns params with the conventional defaults
// (A=0, C=1, Q=1, Nu=1); callers choose B, M, and K for their campaign.
func NewLogisticParams(b, m, k float64) LogisticParams {
	return LogisticParams{A: 0, B: b, C: 1, M: m, K: k, Q: 1, Nu: 1}
}

// Eval computes the generalized logistic function at x:
//
//	A + (K-A) / (C + Q*exp(-B*(x-M)))^(1/Nu)
func (p LogisticParams) Eval(x float64) float64 {
	exponent := math.Exp(-p.B * (x - p.M))
	return p.A + (p.K-p.A)/math.Pow(p.C+p.Q*exponent, 1/p.Nu)
}

// ReduceBeta applies the spending-dependent reduction to a contact rate:
// beta * (1 - factor), where factor is the curve evaluated at spending.
// With the defaults the factor lives in [A, K], so K < 1 keeps the reduced
// rate positive.
func (p LogisticParams) ReduceBeta(beta, spending float64) float64 {
	return beta * (1 - p.Eval(spending))
}
