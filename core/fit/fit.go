// core/fit/fit.go
// Small helpers shared by the analytic fits: blend weights, a+b*x^c terms
// and the coefficient-matrix products that expand log-metallicity polynomials.

package fit

import "math"

// SolarZ is the Tout et al. (1996) solar metallicity used to scale zeta.
const SolarZ = 0.02

// BlendWeight maps x from [a, b] onto [0, 1] (unclamped).
func BlendWeight(x, a, b float64) float64 {
	return (x - a) / (b - a)
}

// ApBXhC returns a + b*x^c.
func ApBXhC(x, a, b, c float64) float64 {
	return math.FMA(b, math.Pow(x, c), a)
}

// BXhC returns b*x^c.
func BXhC(x, b, c float64) float64 {
	return b * math.Pow(x, c)
}

// Lerp interpolates between a and b.
func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Zeta returns log10(Z/0.02).
func Zeta(z float64) float64 {
	return math.Log10(z / SolarZ)
}

// Powers returns [1, x, x^2, ..., x^(n-1)].
func Powers(n int, x float64) []float64 {
	out := make([]float64, n)
	p := 1.0
	for i := range out {
		out[i] = p
		p *= x
	}
	return out
}

// MulMatVec multiplies the row-major matrix m (len(m)/len(v) rows) by v.
func MulMatVec(m, v []float64) []float64 {
	n := len(v)
	rows := len(m) / n
	out := make([]float64, rows)
	for r := 0; r < rows; r++ {
		out[r] = InnerProduct(m[r*n:(r+1)*n], v)
	}
	return out
}

// InnerProduct returns sum(a[i]*b[i]) over the shorter operand.
func InnerProduct(a, b []float64) float64 {
	n := min(len(a), len(b))
	s := 0.0
	for i := 0; i < n; i++ {
		s = math.FMA(a[i], b[i], s)
	}
	return s
}

// ZetaCoefficients expands a row-major coefficient table against the first
// n powers of zeta. It is the common "a(Z) = sum_k c_k zeta^k" step.
func ZetaCoefficients(table []float64, n int, zeta float64) []float64 {
	return MulMatVec(table, Powers(n, zeta))
}
