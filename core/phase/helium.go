// core/phase/helium.go
package phase

import (
	"math"

	"herd/core/giant"
	"herd/core/quantity"
	"herd/core/stage"
	"herd/core/star"
)

// heliumMainSequence is core helium burning of a naked helium star. Like the
// hydrogen main sequence, the age already spent is rescaled when mass loss
// changes the lifetime.
type heliumMainSequence struct {
	m *Model
}

func (p *heliumMainSequence) Stage() stage.Stage { return stage.HeMS }

func (p *heliumMainSequence) Span(s star.State) (float64, float64) {
	return 0, s.THeMS
}

func (p *heliumMainSequence) Compute(s star.State, target float64) (star.State, error) {
	if err := checkTarget(p, s, target); err != nil {
		return s, err
	}
	tNew := giant.HeliumMSLifetime(s.Mass)
	dt := target - s.EffectiveAge
	eff := target
	if tNew != s.THeMS {
		eff = math.FMA(s.EffectiveAge, tNew/s.THeMS, dt)
	}
	if reached(eff, tNew) {
		eff = tNew
	}
	tau := eff / tNew

	s.Stage = stage.HeMS
	s.EffectiveAge = eff
	s.THeMS = tNew
	s.M0 = s.Mass
	s.Luminosity = giant.HeliumMSLuminosity(s.Mass, tau)
	s.Radius = giant.HeliumMSRadius(s.Mass, tau)
	s.RZAMS = giant.HeliumZAMSRadius(s.Mass)
	s.CoreMass, s.CoreRadius, s.COCoreMass = 0, 0, 0
	var err error
	if s.Rg, err = p.m.Set.GB.Rg(s.Mass, s.Luminosity, true); err != nil {
		return s, err
	}
	return finish(s, "HeliumMainSequence")
}

func (p *heliumMainSequence) Done(s star.State) bool {
	return reached(s.EffectiveAge, s.THeMS)
}

func (p *heliumMainSequence) Next(s star.State) (star.State, Phase, error) {
	s.Stage = stage.HeHG
	s.M0 = s.Mass
	s.StartAge = s.EffectiveAge
	s.StartLuminosity, s.StartRadius = s.Luminosity, s.Radius
	s.CoreMass = giant.Helium(s.M0).CoreMass(s.Luminosity)
	s.StartCoreMass = s.CoreMass
	return enter(s, p.m)
}

// heliumGiant covers the helium Hertzsprung gap and giant branch. Both share
// the CO core growth; the radius decides which of the two the star is on.
// M0 is the mass at the end of the helium main sequence.
type heliumGiant struct {
	m *Model
}

func (p *heliumGiant) Stage() stage.Stage { return stage.HeGB }

func (p *heliumGiant) timing(s star.State) giant.Timing {
	return giant.Helium(s.M0).Timing(giant.AHe, s.StartAge, s.StartLuminosity)
}

func (p *heliumGiant) Span(s star.State) (float64, float64) {
	mcSN := giant.CoreMassSN(s.M0)
	return s.StartAge, math.Max(s.StartAge, p.timing(s).AgeAtCoreMass(mcSN))
}

func (p *heliumGiant) Compute(s star.State, target float64) (star.State, error) {
	if err := checkTarget(p, s, target); err != nil {
		return s, err
	}
	if err := quantity.NotPositive(s.M0, "M0"); err != nil {
		return s, err
	}
	_, end := p.Span(s)
	mc := p.timing(s).CoreMass(target)
	if target >= end {
		mc = math.Max(giant.CoreMassSN(s.M0), s.StartCoreMass)
	}
	rel := giant.Helium(s.M0)
	s.EffectiveAge = target
	s.CoreMass = math.Max(s.CoreMass, mc)
	s.COCoreMass = s.CoreMass
	s.Luminosity = rel.Luminosity(s.CoreMass)
	lTHe := giant.HeliumMSLuminosity(s.M0, 1)
	r, onGiantBranch := giant.HeliumGiantRadius(s.Mass, s.Luminosity, lTHe)
	s.Radius = r
	s.Stage = stage.HeHG
	if onGiantBranch {
		s.Stage = stage.HeGB
	}
	s.RZAMS = giant.HeliumZAMSRadius(s.M0)
	s.CoreRadius = whiteDwarfRadius(math.Min(s.CoreMass, s.Mass))
	var err error
	if s.Rg, err = p.m.Set.GB.Rg(s.Mass, s.Luminosity, true); err != nil {
		return s, err
	}
	return finish(s, "HeliumGiant")
}

func (p *heliumGiant) Done(s star.State) bool {
	_, end := p.Span(s)
	return reached(s.EffectiveAge, end) || envelopeLost(s)
}

func (p *heliumGiant) Next(s star.State) (star.State, Phase, error) {
	if envelopeLost(s) {
		return whiteDwarf(s, p.m, s.M0)
	}
	return supernova(s, p.m, s.M0)
}
