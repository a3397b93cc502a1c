// core/landmark/bgb.go
package landmark

import (
	"math"

	"herd/core/fit"
	"herd/core/quantity"
)

var (
	// eq. 4, tBGB coefficients against zeta^0..zeta^3.
	bgbAgeTable = []float64{
		1.593890e+03, 2.053038e+03, 1.231226e+03, 2.327785e+02,
		2.706708e+03, 1.483131e+03, 5.772723e+02, 7.411230e+01,
		1.466143e+02, -1.048442e+02, -6.795374e+01, -1.391127e+01,
		4.141960e-02, 4.564888e-02, 2.958542e-02, 5.571483e-03,
		3.426349e-01, 0, 0, 0,
	}
	// eq. 10, LBGB coefficients against zeta^0..zeta^3.
	bgbLuminosityTable = []float64{
		9.511033e+01, 6.819618e+01, -1.045625e+01, -1.474939e+01,
		3.113458e+01, 1.012033e+01, -4.650511e+00, -2.463185e+00,
		1.413057e+00, 4.578814e-01, -6.850581e-02, -5.588658e-02,
		3.910862e+01, 5.196646e+01, 2.264970e+01, 2.873680e+00,
		4.597479e+00, -2.855179e-01, 2.709724e-01, 0,
		6.682518e+00, 2.827718e-01, -7.294429e-02, 0,
	}
)

// BaseOfGiantBranch is the start of the first giant branch.
type BaseOfGiantBranch struct {
	tc []float64 // 5
	lc []float64 // 8
	gb *GiantBranchRadius
}

// NewBaseOfGiantBranch computes the BGB metallicity dependents.
func NewBaseOfGiantBranch(z float64) (*BaseOfGiantBranch, error) {
	zeta, err := metallicity(z)
	if err != nil {
		return nil, err
	}
	gb, err := NewGiantBranchRadius(z)
	if err != nil {
		return nil, err
	}
	lc := fit.ZetaCoefficients(bgbLuminosityTable, 4, zeta)
	lc[2] = math.Pow(lc[2], lc[5])
	lc = append(lc, 4.637345, 9.301992)
	return &BaseOfGiantBranch{
		tc: fit.ZetaCoefficients(bgbAgeTable, 4, zeta),
		lc: lc,
		gb: gb,
	}, nil
}

// MassDependents evaluates tBGB, LBGB and R_GB(m, LBGB).
func (b *BaseOfGiantBranch) MassDependents(m float64) (Point, error) {
	if err := quantity.NotPositive(m, "Mass"); err != nil {
		return Point{}, err
	}
	l := b.luminosity(m)
	return finish("BaseOfGiantBranch", Point{
		Mass:       m,
		Age:        b.age(m),
		Luminosity: l,
		Radius:     b.gb.radius(m, l),
	})
}

func (b *BaseOfGiantBranch) Age(m float64) (float64, error)        { return ageOf(b, m) }
func (b *BaseOfGiantBranch) Luminosity(m float64) (float64, error) { return luminosityOf(b, m) }
func (b *BaseOfGiantBranch) Radius(m float64) (float64, error)     { return radiusOf(b, m) }

func (b *BaseOfGiantBranch) age(m float64) float64 {
	a := b.tc
	num := a[0] + a[1]*math.Pow(m, 4) + a[2]*math.Pow(m, 5.5) + math.Pow(m, 7)
	den := a[3]*m*m + a[4]*math.Pow(m, 7)
	return num / den
}

func (b *BaseOfGiantBranch) luminosity(m float64) float64 {
	c := b.lc
	num := c[0]*math.Pow(m, c[4]) + c[1]*math.Pow(m, c[7])
	den := c[2] + c[3]*math.Pow(m, c[6]) + math.Pow(m, c[5])
	return num / den
}
