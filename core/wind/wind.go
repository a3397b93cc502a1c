// core/wind/wind.go
// Stellar wind mass-loss prescriptions of Hurley, Pols & Tout (2000),
// section 7.1. All rates are in Msun/yr.

package wind

import (
	"math"

	"herd/core/fit"
	"herd/core/quantity"
	"herd/core/star"
)

// Params are the wind efficiencies. A zero RocheLobe disables the
// tidally enhanced (binary) term.
type Params struct {
	Eta        float64 // Reimers efficiency
	HeWind     float64 // Wolf-Rayet scaling for naked helium stars
	BinaryWind float64 // tidal enhancement factor
	RocheLobe  float64 // Rsun
}

// Validate rejects negative efficiencies.
func (p Params) Validate() error {
	for _, c := range []struct {
		v    float64
		name string
	}{
		{p.Eta, "Eta"},
		{p.HeWind, "HeWind"},
		{p.BinaryWind, "BinaryWind"},
		{p.RocheLobe, "RocheLobe"},
	} {
		if err := quantity.Negative(c.v, c.name); err != nil {
			return err
		}
	}
	return nil
}

// Compute returns the mass-loss rate of p.
// Competing mechanisms are alternatives: the largest wins. The LBV-like
// rate is added on top for post-main-sequence hydrogen-rich stars.
func Compute(p star.TrackPoint, w Params) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	for _, c := range []struct {
		v    float64
		name string
	}{{p.Mass, "Mass"}, {p.Luminosity, "Luminosity"}, {p.Radius, "Radius"}} {
		if err := quantity.NotPositive(c.v, c.name); err != nil {
			return 0, err
		}
	}
	if err := w.Validate(); err != nil {
		return 0, err
	}

	if p.Stage.IsRemnant() || p.Stage.IsMS() {
		return MassiveStar(p), nil
	}
	reimers := Reimers(p, w)
	wr := WolfRayet(p)
	if p.Stage.IsHeStar() {
		return math.Max(reimers, wr*w.HeWind), nil
	}
	var vw float64
	if p.Stage.IsAGB() {
		vw = Pulsation(p)
	}
	return math.Max(math.Max(reimers, vw), math.Max(MassiveStar(p), wr)) + LBV(p), nil
}

// Reimers is the giant-branch wind (Kudritzki & Reimers 1978), optionally
// enhanced by a binary companion (Tout & Eggleton 1988).
func Reimers(p star.TrackPoint, w Params) float64 {
	rate := 4e-13 * w.Eta * p.Radius * p.Luminosity / p.Mass
	if w.RocheLobe > 0 {
		rate *= 1 + w.BinaryWind*math.Pow(math.Min(0.5, p.Radius/w.RocheLobe), 6)
	}
	return rate
}

// Pulsation is the AGB superwind driven by Mira pulsations
// (Vassiliadis & Wood 1993).
func Pulsation(p star.TrackPoint) float64 {
	logP0 := -2.07 - 0.9*math.Log10(p.Mass) + 1.94*math.Log10(p.Radius)
	p0 := math.Min(2000, math.Pow(10, logP0))
	logRate := -11.4 + 0.0125*(p0-100*math.Max(p.Mass-2.5, 0))
	return math.Min(1.36e-9*p.Luminosity, math.Pow(10, logRate))
}

// MassiveStar is the Nieuwenhuijzen & de Jager (1990) rate for luminous
// stars, scaled by sqrt(Z/Zsun). It vanishes below 4000 Lsun.
func MassiveStar(p star.TrackPoint) float64 {
	if p.Luminosity <= 4000 {
		return 0
	}
	x := math.Min(1, (p.Luminosity-4000)/500)
	return 9.6e-15 * x * math.Pow(p.Radius, 0.81) * math.Pow(p.Luminosity, 1.24) *
		math.Pow(p.Mass, 0.16) * math.Sqrt(p.Metallicity/fit.SolarZ)
}

// WolfRayet is the Hamann, Koesterke & Wessolowski (1995) rate, reduced by
// the hydrogen envelope fraction mu for stars that still have one.
func WolfRayet(p star.TrackPoint) float64 {
	var mu float64
	if !p.Stage.IsHeStar() {
		mu = (p.Mass - p.CoreMass) / p.Mass *
			math.Min(5, math.Max(1.2, math.Sqrt(7e4/p.Luminosity)))
	}
	if mu > 1 {
		return 0
	}
	return 1e-13 * math.Pow(p.Luminosity, 1.5) * (1 - mu)
}

// LBV is the luminous-blue-variable eruption rate beyond the
// Humphreys-Davidson limit.
func LBV(p star.TrackPoint) float64 {
	if p.Luminosity <= 6e5 {
		return 0
	}
	x := 1e-5 * p.Radius * math.Sqrt(p.Luminosity)
	if x <= 1 {
		return 0
	}
	return 0.1 * math.Pow(x-1, 3) * (p.Luminosity/6e5 - 1)
}
