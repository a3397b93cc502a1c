// core/phase/cheb.go
package phase

import (
	"math"

	"herd/core/giant"
	"herd/core/landmark"
	"herd/core/stage"
	"herd/core/star"
)

// maxHeliumBurningFraction bounds the core helium-burning lifetime in units
// of tBGB, the high-mass limit of Hurley et al. (2000) eq. 57. Small
// non-degenerate cores would otherwise burn for longer than the main sequence.
const maxHeliumBurningFraction = 0.2

// coreHeliumBurning runs for the helium main-sequence lifetime of the core at
// ignition. The star brightens geometrically to twice its starting
// luminosity while the core grows towards Mc,BAGB.
type coreHeliumBurning struct {
	m  *Model
	tr landmark.Track
}

func (p *coreHeliumBurning) Stage() stage.Stage { return stage.CHeB }

// lifetime is t_He of the track.
func (p *coreHeliumBurning) lifetime() float64 {
	return math.Min(giant.HeliumMSLifetime(p.tr.McHeI), maxHeliumBurningFraction*p.tr.TBGB)
}

func (p *coreHeliumBurning) Span(s star.State) (float64, float64) {
	return s.StartAge, s.StartAge + p.lifetime()
}

// endCoreMass is the helium core mass at the base of the AGB. Low-mass stars
// can ignite with a core already above Mc,BAGB.
func (p *coreHeliumBurning) endCoreMass(s star.State) float64 {
	return math.Max(p.tr.McBAGB, s.StartCoreMass)
}

func (p *coreHeliumBurning) Compute(s star.State, target float64) (star.State, error) {
	if err := checkTarget(p, s, target); err != nil {
		return s, err
	}
	start, end := p.Span(s)
	tau := fraction(target, start, end)
	lEnd := 2 * s.StartLuminosity
	rEnd, err := p.m.Set.Rg(s.Mass, lEnd)
	if err != nil {
		return s, err
	}
	s.Stage = stage.CHeB
	s.EffectiveAge = target
	s.Luminosity = s.StartLuminosity * math.Pow(lEnd/s.StartLuminosity, tau)
	s.Radius = s.StartRadius * math.Pow(rEnd/s.StartRadius, tau)
	if s.Rg, err = p.m.Set.Rg(s.Mass, s.Luminosity); err != nil {
		return s, err
	}
	s.CoreMass = math.Max(s.CoreMass, lerpCore(target, start, end, s.StartCoreMass, p.endCoreMass(s)))
	s.CoreRadius = giant.HeliumZAMSRadius(math.Min(s.CoreMass, s.Mass))
	setTrack(&s, p.tr)
	return finish(s, "CoreHeliumBurning")
}

func (p *coreHeliumBurning) Done(s star.State) bool {
	_, end := p.Span(s)
	return reached(s.EffectiveAge, end) || envelopeLost(s)
}

func (p *coreHeliumBurning) Next(s star.State) (star.State, Phase, error) {
	start, end := p.Span(s)
	if envelopeLost(s) {
		return strip(s, p.m, false, fraction(s.EffectiveAge, start, end))
	}
	s.Stage = stage.FAGB
	s.StartAge = end
	s.StartLuminosity, s.StartRadius = s.Luminosity, s.Radius
	s.StartCoreMass = s.CoreMass
	s.COCoreMass = math.Min(s.CoreMass, p.tr.Relation.CoreMass(s.Luminosity))
	return enter(s, p.m)
}

// igniteHelium starts core helium burning at luminosity l and radius r.
func igniteHelium(s star.State, m *Model, l, r float64) (star.State, Phase, error) {
	s.Stage = stage.CHeB
	s.StartAge = s.EffectiveAge
	s.StartLuminosity, s.StartRadius = l, r
	s.StartCoreMass = s.CoreMass
	return enter(s, m)
}

// zeroAgeHorizontalBranch is the luminosity after the helium flash of a star
// of mass m with core mass mc.
func (m *Model) zeroAgeHorizontalBranch(mass, mc float64) float64 {
	mc = math.Min(mc, mass)
	return giant.HeliumZAMSLuminosity(mc) * mass / mc
}
