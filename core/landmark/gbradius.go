// core/landmark/gbradius.go
package landmark

import (
	"math"

	"herd/core/fit"
	"herd/core/quantity"
)

// eq. 46 A(M) coefficients against zeta^0..zeta^5.
var giantRadiusTable = []float64{
	9.960283e-01, 8.164393e-01, 2.383830e+00, 2.223436e+00, 8.638115e-01, 1.231572e-01,
	2.561062e-01, 7.072646e-02, -5.444596e-02, -5.798167e-02, -1.349129e-02, 0,
	1.157338e+00, 1.467883e+00, 4.299661e+00, 3.130500e+00, 6.992080e-01, 1.640687e-02,
	4.022765e-01, 3.050010e-01, 9.962137e-01, 7.914079e-01, 1.728098e-01, 0,
}

// GiantBranchRadius is R_GB(M, L), the radius on the Hayashi track (eq. 46).
type GiantBranchRadius struct {
	b [7]float64
}

// NewGiantBranchRadius computes the giant-branch radius dependents for z.
func NewGiantBranchRadius(z float64) (*GiantBranchRadius, error) {
	zeta, err := metallicity(z)
	if err != nil {
		return nil, err
	}
	lz := math.Log10(z)
	g := &GiantBranchRadius{}
	g.b[0] = math.Max(math.Pow(10, -4.6739-0.9394*lz), -0.04167+55.67*z)
	g.b[0] = math.Min(g.b[0], 0.4771-9329.21*math.Pow(z, 2.94))
	g.b[1] = math.Min(0.54, 0.397+0.28826*zeta+0.5293*zeta*zeta)
	g.b[2] = math.Pow(10, math.Max(-0.1451, -2.2794-1.5175*lz-0.254*lz*lz))
	if z > 0.004 {
		g.b[2] = math.Max(g.b[2], 0.7307+14265.1*math.Pow(z, 3.395))
	}
	copy(g.b[3:], fit.ZetaCoefficients(giantRadiusTable, 6, zeta))
	return g, nil
}

// Compute returns R_GB for mass m and luminosity l.
func (g *GiantBranchRadius) Compute(m, l float64) (float64, error) {
	if err := quantity.NotPositive(m, "Mass"); err != nil {
		return 0, err
	}
	if err := quantity.NotPositive(l, "Luminosity"); err != nil {
		return 0, err
	}
	return g.radius(m, l), nil
}

func (g *GiantBranchRadius) radius(m, l float64) float64 {
	b := g.b
	a := math.Min(b[3]*math.Pow(m, -b[4]), b[5]*math.Pow(m, -b[6]))
	return a * (math.Pow(l, b[1]) + b[0]*math.Pow(l, b[2]))
}

// Rg is the radius a star of mass m and luminosity l would have on the giant
// branch. Naked helium stars use the helium giant branch 0.08 L^0.75.
func (g *GiantBranchRadius) Rg(m, l float64, heliumStar bool) (float64, error) {
	if heliumStar {
		if err := quantity.NotPositive(l, "Luminosity"); err != nil {
			return 0, err
		}
		return 0.08 * math.Pow(l, 0.75), nil
	}
	return g.Compute(m, l)
}
