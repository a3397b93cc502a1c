// core/landmark/hei.go
package landmark

import (
	"math"

	"herd/core/fit"
	"herd/core/giant"
	"herd/core/quantity"
)

// eq. 49, LHeI coefficients against zeta^0..zeta^2.
var heiLuminosityTable = []float64{
	2.751631e+03, 3.557098e+02, 0,
	-3.820831e-02, 5.872664e-02, 0,
	1.071738e+02, -8.970339e+01, -3.949739e+01,
	7.348793e+02, -1.531020e+02, -3.793700e+01,
	9.219293e+00, -2.005865e+00, -5.561309e-01,
}

// HeliumIgnition is the onset of core helium burning.
//
// Below MFGB helium ignites on the giant branch and the age follows from the
// giant-branch timing between LBGB and LHeI. At and above MFGB it ignites in
// the Hertzsprung gap at tBGB.
type HeliumIgnition struct {
	zeta     float64
	critical CriticalMasses
	lc       [7]float64
	bgb      *BaseOfGiantBranch
	gb       *GiantBranchRadius
}

// NewHeliumIgnition computes the helium-ignition metallicity dependents.
// The exponential term b3 is anchored so that both LHeI branches meet at MHeF.
func NewHeliumIgnition(z float64) (*HeliumIgnition, error) {
	zeta, err := metallicity(z)
	if err != nil {
		return nil, err
	}
	bgb, err := NewBaseOfGiantBranch(z)
	if err != nil {
		return nil, err
	}
	t := fit.ZetaCoefficients(heiLuminosityTable, 3, zeta)
	h := &HeliumIgnition{
		zeta:     zeta,
		critical: criticalMasses(z, zeta),
		lc:       [7]float64{t[0], t[1], 15, 0, t[2] * t[2], t[3], t[4] * t[4]},
		bgb:      bgb,
		gb:       bgb.gb,
	}
	mHeF := h.critical.MHeF
	l := h.luminosityHigh(mHeF)
	h.lc[3] = (h.lc[0]*math.Pow(mHeF, h.lc[1]) - l) / (l * math.Exp(mHeF*h.lc[2]))
	return h, nil
}

// MassDependents evaluates tHeI, LHeI and R_GB(m, LHeI).
func (h *HeliumIgnition) MassDependents(m float64) (Point, error) {
	if err := quantity.NotPositive(m, "Mass"); err != nil {
		return Point{}, err
	}
	l := h.luminosity(m)
	return finish("HeliumIgnition", Point{
		Mass:       m,
		Age:        h.age(m, l),
		Luminosity: l,
		Radius:     h.gb.radius(m, l),
	})
}

func (h *HeliumIgnition) Age(m float64) (float64, error)        { return ageOf(h, m) }
func (h *HeliumIgnition) Luminosity(m float64) (float64, error) { return luminosityOf(h, m) }
func (h *HeliumIgnition) Radius(m float64) (float64, error)     { return radiusOf(h, m) }

// CoreMass is the helium core mass at ignition (eq. 44 above MHeF).
func (h *HeliumIgnition) CoreMass(m float64) (float64, error) {
	if err := quantity.NotPositive(m, "Mass"); err != nil {
		return 0, err
	}
	return h.coreMass(m), nil
}

func (h *HeliumIgnition) coreMass(m float64) float64 {
	mHeF := h.critical.MHeF
	if m < mHeF {
		return giant.Hydrogen(m, h.zeta, mHeF).CoreMass(h.luminosity(m))
	}
	rel := giant.Hydrogen(mHeF, h.zeta, mHeF)
	return giant.ScaleAboveHeF(m, mHeF, rel.CoreMass(h.luminosity(mHeF)))
}

func (h *HeliumIgnition) luminosity(m float64) float64 {
	if m < h.critical.MHeF {
		b := h.lc
		return b[0] * math.Pow(m, b[1]) / (1 + b[3]*math.Exp(m*b[2]))
	}
	return h.luminosityHigh(m)
}

func (h *HeliumIgnition) luminosityHigh(m float64) float64 {
	b := h.lc
	return (b[4] + b[5]*math.Pow(m, 3.8)) / (b[6] + m*m)
}

func (h *HeliumIgnition) age(m, lHeI float64) float64 {
	tBGB, lBGB := h.bgb.age(m), h.bgb.luminosity(m)
	if m >= h.critical.MFGB || lHeI <= lBGB {
		return tBGB
	}
	rel := giant.Hydrogen(m, h.zeta, h.critical.MHeF)
	return rel.Timing(giant.HydrogenRate(m), tBGB, lBGB).AgeAtLuminosity(lHeI)
}
