// core/phase/agb.go
package phase

import (
	"math"

	"herd/core/giant"
	"herd/core/landmark"
	"herd/core/stage"
	"herd/core/star"
)

// Mc,BAGB thresholds for the fate of the core.
const (
	mcBAGBCarbon = 1.6  // below: CO core, above: ONe core
	mcBAGBSN     = 2.25 // from here the early AGB ends in core collapse
)

// earlyAGB grows the CO core inside the helium core by helium-shell burning.
// StartCoreMass holds Mc,BAGB throughout the AGB.
type earlyAGB struct {
	m  *Model
	tr landmark.Track
}

func (p *earlyAGB) Stage() stage.Stage { return stage.FAGB }

func (p *earlyAGB) timing(s star.State) giant.Timing {
	return p.tr.Relation.Timing(giant.AHe, s.StartAge, s.StartLuminosity)
}

func (p *earlyAGB) collapses(s star.State) bool {
	return s.StartCoreMass >= mcBAGBSN
}

// endCoreMass is the CO core mass that ends the phase: second dredge-up or
// the supernova core mass.
func (p *earlyAGB) endCoreMass(s star.State) float64 {
	if p.collapses(s) {
		return giant.CoreMassSN(s.StartCoreMass)
	}
	return giant.CoreMassDU(s.StartCoreMass)
}

func (p *earlyAGB) Span(s star.State) (float64, float64) {
	return s.StartAge, math.Max(s.StartAge, p.timing(s).AgeAtCoreMass(p.endCoreMass(s)))
}

func (p *earlyAGB) Compute(s star.State, target float64) (star.State, error) {
	if err := checkTarget(p, s, target); err != nil {
		return s, err
	}
	_, end := p.Span(s)
	t := p.timing(s)
	mcCO := t.CoreMass(target)
	if target >= end {
		mcCO = math.Max(p.endCoreMass(s), p.tr.Relation.CoreMass(s.StartLuminosity))
	}
	s.Stage = stage.FAGB
	s.EffectiveAge = target
	s.Luminosity = p.tr.Relation.Luminosity(mcCO)
	var err error
	if s.Radius, err = p.m.Set.Rg(s.Mass, s.Luminosity); err != nil {
		return s, err
	}
	s.Rg = s.Radius
	s.CoreMass = math.Max(s.CoreMass, s.StartCoreMass)
	s.COCoreMass = math.Min(mcCO, s.CoreMass)
	s.CoreRadius = whiteDwarfRadius(s.COCoreMass)
	setTrack(&s, p.tr)
	return finish(s, "EarlyAGB")
}

func (p *earlyAGB) Done(s star.State) bool {
	_, end := p.Span(s)
	return reached(s.EffectiveAge, end) || envelopeLost(s)
}

func (p *earlyAGB) Next(s star.State) (star.State, Phase, error) {
	switch {
	case envelopeLost(s):
		return exposeHeliumCore(s, p.m)
	case p.collapses(s):
		return supernova(s, p.m, s.StartCoreMass)
	}
	// Second dredge-up mixes the helium core down to the CO core.
	s.Stage = stage.SAGB
	s.CoreMass = math.Min(s.CoreMass, s.COCoreMass)
	s.StartAge = s.EffectiveAge
	s.StartLuminosity, s.StartRadius = s.Luminosity, s.Radius
	return enter(s, p.m)
}

// pulsingAGB is double-shell burning until the envelope is lost or the core
// reaches Mc,SN.
type pulsingAGB struct {
	m  *Model
	tr landmark.Track
}

func (p *pulsingAGB) Stage() stage.Stage { return stage.SAGB }

func (p *pulsingAGB) timing(s star.State) giant.Timing {
	return p.tr.Relation.Timing(giant.AHHe, s.StartAge, s.StartLuminosity)
}

func (p *pulsingAGB) Span(s star.State) (float64, float64) {
	mcSN := giant.CoreMassSN(s.StartCoreMass)
	return s.StartAge, math.Max(s.StartAge, p.timing(s).AgeAtCoreMass(mcSN))
}

func (p *pulsingAGB) Compute(s star.State, target float64) (star.State, error) {
	if err := checkTarget(p, s, target); err != nil {
		return s, err
	}
	_, end := p.Span(s)
	mc := p.timing(s).CoreMass(target)
	if target >= end {
		mc = giant.CoreMassSN(s.StartCoreMass)
	}
	s.Stage = stage.SAGB
	s.EffectiveAge = target
	s.CoreMass = math.Max(s.CoreMass, mc)
	s.COCoreMass = s.CoreMass
	s.Luminosity = p.tr.Relation.Luminosity(s.CoreMass)
	var err error
	if s.Radius, err = p.m.Set.Rg(s.Mass, s.Luminosity); err != nil {
		return s, err
	}
	s.Rg = s.Radius
	s.CoreRadius = whiteDwarfRadius(math.Min(s.CoreMass, s.Mass))
	setTrack(&s, p.tr)
	return finish(s, "PulsingAGB")
}

func (p *pulsingAGB) Done(s star.State) bool {
	_, end := p.Span(s)
	return reached(s.EffectiveAge, end) || envelopeLost(s)
}

func (p *pulsingAGB) Next(s star.State) (star.State, Phase, error) {
	if envelopeLost(s) {
		return whiteDwarf(s, p.m, s.StartCoreMass)
	}
	return supernova(s, p.m, s.StartCoreMass)
}
