// core/landmark/zams.go
package landmark

import (
	"math"

	"herd/core/fit"
	"herd/core/quantity"
)

// Tout et al. (1996) eqs. 3 and 4, rows are coefficients against zeta^0..zeta^4.
var (
	zamsLuminosityTable = []float64{
		3.970417e-01, -3.2913574e-01, 3.4776688e-01, 3.7470851e-01, 9.011915e-02,
		8.527626e+00, -2.441225973e+01, 5.643597107e+01, 3.706152575e+01, 5.4562406e+00,
		2.5546e-04, -1.23461e-03, -2.3246e-04, 4.5519e-04, 1.6176e-04,
		5.432889e+00, -8.62157806e+00, 1.344202049e+01, 1.451584135e+01, 3.39793084e+00,
		5.563579e+00, -1.032345224e+01, 1.944322980e+01, 1.897361347e+01, 4.16903097e+00,
		7.8866060e-01, -2.90870942e+00, 6.54713531e+00, 4.05606657e+00, 5.3287322e-01,
		5.86685e-03, -1.704237e-02, 3.872348e-02, 2.570041e-02, 3.83376e-03,
	}
	zamsRadiusTable = []float64{
		1.715359e+00, 6.2246212e-01, -9.2557761e-01, -1.16996966e+00, -3.0631491e-01,
		6.597788e+00, -4.2450044e-01, -1.213339427e+01, -1.073509484e+01, -2.51487077e+00,
		1.008855000e+01, -7.11727086e+00, -3.167119479e+01, -2.424848322e+01, -5.33608972e+00,
		1.012495e+00, 3.2699690e-01, -9.23418e-03, -3.876858e-02, -4.12750e-03,
		7.490166e-02, 2.410413e-02, 7.233664e-02, 3.040467e-02, 1.97741e-03,
		1.077422e-02, 0, 0, 0, 0,
		3.082234e+00, 9.447205e-01, -2.15200882e+00, -2.49219496e+00, -6.3848738e-01,
		1.784778e+01, -7.4534569e+00, -4.896066856e+01, -4.005386135e+01, -9.09331816e+00,
		2.2582e-04, -1.86899e-03, 3.88783e-03, 1.42402e-03, -7.671e-05,
	}
)

// ZeroAgeMainSequence holds the metallicity dependents of the ZAMS fits.
// Its age is 0 by definition.
type ZeroAgeMainSequence struct {
	z  float64
	lc []float64 // 7 luminosity coefficients
	rc []float64 // 9 radius coefficients
}

// NewZeroAgeMainSequence computes the ZAMS metallicity dependents.
func NewZeroAgeMainSequence(z float64) (*ZeroAgeMainSequence, error) {
	zeta, err := metallicity(z)
	if err != nil {
		return nil, err
	}
	return &ZeroAgeMainSequence{
		z:  z,
		lc: fit.ZetaCoefficients(zamsLuminosityTable, 5, zeta),
		rc: fit.ZetaCoefficients(zamsRadiusTable, 5, zeta),
	}, nil
}

// Metallicity returns the Z the dependents were computed for.
func (z *ZeroAgeMainSequence) Metallicity() float64 { return z.z }

// MassDependents evaluates the ZAMS luminosity and radius of mass m.
func (z *ZeroAgeMainSequence) MassDependents(m float64) (Point, error) {
	if err := quantity.NotPositive(m, "Mass"); err != nil {
		return Point{}, err
	}
	return finish("ZeroAgeMainSequence", Point{
		Mass:       m,
		Luminosity: z.luminosity(m),
		Radius:     z.radius(m),
	})
}

func (z *ZeroAgeMainSequence) Age(m float64) (float64, error)        { return ageOf(z, m) }
func (z *ZeroAgeMainSequence) Luminosity(m float64) (float64, error) { return luminosityOf(z, m) }
func (z *ZeroAgeMainSequence) Radius(m float64) (float64, error)     { return radiusOf(z, m) }

func (z *ZeroAgeMainSequence) luminosity(m float64) float64 {
	c := z.lc
	num := c[0]*math.Pow(m, 5.5) + c[1]*math.Pow(m, 11)
	den := c[2] + m*m*m + c[3]*math.Pow(m, 5) + c[4]*math.Pow(m, 7) +
		c[5]*math.Pow(m, 8) + c[6]*math.Pow(m, 9.5)
	return num / den
}

func (z *ZeroAgeMainSequence) radius(m float64) float64 {
	c := z.rc
	num := c[0]*math.Pow(m, 2.5) + c[1]*math.Pow(m, 6.5) + c[2]*math.Pow(m, 11) +
		c[3]*math.Pow(m, 19) + c[4]*math.Pow(m, 19.5)
	den := c[5] + c[6]*m*m + c[7]*math.Pow(m, 8.5) + math.Pow(m, 18.5) +
		c[8]*math.Pow(m, 19.5)
	return num / den
}
