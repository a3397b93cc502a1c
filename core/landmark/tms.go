// core/landmark/tms.go
package landmark

import (
	"math"

	"herd/core/fit"
	"herd/core/quantity"
)

var (
	// eq. 7, hook-time coefficients against zeta^0..zeta^3.
	hookAgeTable = []float64{
		1.949814e+01, 1.758178e+00, -6.008212e+00, -4.470533e+00,
		4.903830e+00, 0, 0, 0,
		5.212154e-02, 3.166411e-02, -2.750074e-03, -2.271549e-03,
		1.312179e+00, -3.294936e-01, 9.231860e-02, 2.610989e-02,
		8.073972e-01, 0, 0, 0,
	}
	// eq. 8, LTMS coefficients against zeta^0..zeta^4.
	tmsLuminosityTable = []float64{
		1.031538e+00, -2.434480e-01, 7.732821e+00, 6.460705e+00, 1.374484e+00,
		1.043715e+00, -1.577474e+00, -5.168234e+00, -5.596506e+00, -1.299394e+00,
		7.859573e+02, -8.542048e+00, -2.642511e+01, -9.585707e+00, 0,
		3.858911e+03, 2.459681e+03, -7.630093e+01, -3.486057e+02, -4.861703e+01,
		2.888720e+02, 2.952979e+02, 1.850341e+02, 3.797254e+01, 0,
		7.196580e+00, 5.613746e-01, 3.805871e-01, 8.398728e-02, 0,
	}
	// eq. 9, RTMS coefficients against zeta^0..zeta^4.
	tmsRadiusTable = []float64{
		2.187715e-01, -2.154437e+00, -3.768678e+00, -1.975518e+00, -3.021475e-01,
		1.466440e+00, 1.839725e+00, 6.442199e+00, 4.023635e+00, 6.957529e-01,
		2.652091e+01, 8.178458e+01, 1.156058e+02, 7.633811e+01, 1.950698e+01,
		1.472103e+00, -2.947609e+00, -3.312828e+00, -9.945065e-01, 0,
		3.071048e+00, -5.679941e+00, -9.745523e+00, -3.594543e+00, 0,
		-8.672073e-02, 0, 0, 0, 0,
		2.617890e+00, 1.019135e+00, -3.292551e-02, -7.445123e-02, 0,
		1.075567e-02, 1.773287e-02, 9.610479e-03, 1.732469e-03, 0,
		1.476246e+00, 1.899331e+00, 1.195010e+00, 3.035051e-01, 0,
		5.502535e+00, -6.601663e-02, 9.968707e-02, 3.599801e-02, 0,
	}
)

// TerminalMainSequence is the end of core hydrogen burning.
type TerminalMainSequence struct {
	z    float64
	x    float64 // tMS/tBGB floor factor
	a17  float64 // lower edge of the RTMS blend
	hc   []float64
	lc   []float64
	rc   []float64
	zams *ZeroAgeMainSequence
	bgb  *BaseOfGiantBranch
}

// NewTerminalMainSequence computes the TMS metallicity dependents.
func NewTerminalMainSequence(z float64) (*TerminalMainSequence, error) {
	zeta, err := metallicity(z)
	if err != nil {
		return nil, err
	}
	zams, err := NewZeroAgeMainSequence(z)
	if err != nil {
		return nil, err
	}
	bgb, err := NewBaseOfGiantBranch(z)
	if err != nil {
		return nil, err
	}
	lc := fit.ZetaCoefficients(tmsLuminosityTable, 5, zeta)
	lc[0] *= lc[3]
	lc[1] *= lc[3]
	rc := fit.ZetaCoefficients(tmsRadiusTable, 5, zeta)
	rc[0] *= rc[2]
	rc[1] *= rc[2]
	sigma := math.Log10(z)
	return &TerminalMainSequence{
		z: z,
		x: math.Max(0.95, math.Max(0.95-(10.0/3.0)*(z-0.01),
			math.Min(0.99, 0.98-(100.0/7.0)*(z-0.001)))),
		a17: math.Pow(10, math.Max(0.097-0.1072*(sigma+3),
			math.Max(0.097, math.Min(0.1461, 0.1461+0.1237*(sigma+2))))),
		hc:   fit.ZetaCoefficients(hookAgeTable, 4, zeta),
		lc:   lc,
		rc:   rc,
		zams: zams,
		bgb:  bgb,
	}, nil
}

// MassDependents evaluates tMS, LTMS and RTMS.
func (t *TerminalMainSequence) MassDependents(m float64) (Point, error) {
	if err := quantity.NotPositive(m, "Mass"); err != nil {
		return Point{}, err
	}
	tMS, _ := t.timescales(m)
	return finish("TerminalMainSequence", Point{
		Mass:       m,
		Age:        tMS,
		Luminosity: t.luminosity(m),
		Radius:     t.radius(m),
	})
}

func (t *TerminalMainSequence) Age(m float64) (float64, error)        { return ageOf(t, m) }
func (t *TerminalMainSequence) Luminosity(m float64) (float64, error) { return luminosityOf(t, m) }
func (t *TerminalMainSequence) Radius(m float64) (float64, error)     { return radiusOf(t, m) }

// Timescales returns the main-sequence lifetime and the hook age (Myr).
func (t *TerminalMainSequence) Timescales(m float64) (tMS, tHook float64, err error) {
	if err := quantity.NotPositive(m, "Mass"); err != nil {
		return 0, 0, err
	}
	tMS, tHook = t.timescales(m)
	if err := quantity.Finite(tMS, "TerminalMainSequence", "age"); err != nil {
		return 0, 0, err
	}
	return tMS, tHook, nil
}

func (t *TerminalMainSequence) timescales(m float64) (tMS, tHook float64) {
	a := t.hc
	tBGB := t.bgb.age(m)
	mu := math.Max(0.5, 1-0.01*math.Max(a[0]*math.Pow(m, -a[1]), a[2]+a[3]*math.Pow(m, -a[4])))
	tHook = mu * tBGB
	return math.Max(t.x*tBGB, tHook), tHook
}

func (t *TerminalMainSequence) luminosity(m float64) float64 {
	a := t.lc
	num := a[0]*m*m*m + a[1]*math.Pow(m, 4) + a[2]*math.Pow(m, a[5]+1.8)
	den := a[3] + a[4]*math.Pow(m, 5) + math.Pow(m, a[5])
	return num / den
}

// radius blends the low- and high-mass fits linearly over [a17, a17+0.1].
func (t *TerminalMainSequence) radius(m float64) float64 {
	switch {
	case m <= t.a17:
		return t.radiusLow(m)
	case m >= t.a17+0.1:
		return t.radiusHigh(m)
	}
	lo, hi := t.radiusLow(t.a17), t.radiusHigh(t.a17+0.1)
	return fit.Lerp(lo, hi, fit.BlendWeight(m, t.a17, t.a17+0.1))
}

func (t *TerminalMainSequence) radiusLow(m float64) float64 {
	a := t.rc
	r := (a[0] + a[1]*math.Pow(m, a[3])) / (a[2] + math.Pow(m, a[4]))
	return math.Max(1.5*t.zams.radius(m), r)
}

func (t *TerminalMainSequence) radiusHigh(m float64) float64 {
	a := t.rc
	num := a[5]*m*m*m + math.Pow(m, a[9])*(a[6]+a[7]*math.Pow(m, 1.5))
	return num / (a[8] + math.Pow(m, 5))
}
