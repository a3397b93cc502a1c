// core/phase/remnant.go
package phase

import (
	"math"

	"herd/core/quantity"
	"herd/core/stage"
	"herd/core/star"
)

const (
	neutronStarRadius   = 1.4e-5  // Rsun, 10 km
	blackHoleRadius     = 4.24e-6 // Rsun per Msun, Schwarzschild
	blackHoleLuminosity = 1e-10
)

// remnant is a compact object or a massless remnant. Its clock is the
// cooling age and it never ends.
type remnant struct {
	m     *Model
	stage stage.Stage
}

func (p *remnant) Stage() stage.Stage { return p.stage }

func (p *remnant) Span(star.State) (float64, float64) { return 0, math.Inf(1) }

func (p *remnant) Compute(s star.State, target float64) (star.State, error) {
	s.Stage = p.stage
	if p.stage == stage.MSn {
		if err := quantity.Negative(target, "EffectiveAge"); err != nil {
			return s, err
		}
		s.EffectiveAge = target
		s.Mass, s.CoreMass, s.EnvelopeMass, s.COCoreMass = 0, 0, 0, 0
		s.Luminosity, s.Radius, s.Temperature = 0, 0, 0
		s.CoreRadius, s.EnvelopeRadius, s.Rg, s.K2 = 0, 0, 0, 0
		return s, nil
	}
	if err := checkTarget(p, s, target); err != nil {
		return s, err
	}
	s.EffectiveAge = target
	switch {
	case p.stage.IsWD():
		s.Luminosity = p.m.whiteDwarfLuminosity(p.stage, s.Mass, target)
		s.Radius = whiteDwarfRadius(s.Mass)
	case p.stage == stage.NS:
		s.Luminosity = 0.02 * math.Pow(s.Mass, 2.0/3.0) / math.Pow(math.Max(target, 0.1), 2)
		s.Radius = neutronStarRadius
	default:
		s.Luminosity = blackHoleLuminosity
		s.Radius = blackHoleRadius * s.Mass
	}
	s.CoreMass = s.Mass
	s.CoreRadius = s.Radius
	s.Rg = s.Radius
	return finish(s, "Remnant")
}

func (p *remnant) Done(star.State) bool { return false }

func (p *remnant) Next(s star.State) (star.State, Phase, error) {
	return s, nil, quantity.Runtimef("Remnant", "%s has no successor", p.stage)
}

// whiteDwarfLuminosity is Mestel cooling (Hurley et al. 2000, eq. 90) or its
// modified form with a steeper decline after 9 Gyr. Helium white dwarfs always
// cool by the plain Mestel law.
func (m *Model) whiteDwarfLuminosity(st stage.Stage, mass, age float64) float64 {
	a := 15.0
	switch st {
	case stage.HeWD:
		a = 4
	case stage.ONWD:
		a = 17
	}
	z := math.Pow(m.Set.Z, 0.4)
	x := a * (age + 0.1)
	switch {
	case st == stage.HeWD, !m.Options.UseModifiedMestel:
		return 635 * mass * z / math.Pow(x, 1.4)
	case age < 9000:
		return 300 * mass * z / math.Pow(x, 1.18)
	}
	return 300 * math.Pow(9000.1*a, 5.3) * mass * z / math.Pow(x, 6.48)
}
