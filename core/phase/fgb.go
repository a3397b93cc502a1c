// core/phase/fgb.go
package phase

import (
	"math"

	"herd/core/landmark"
	"herd/core/stage"
	"herd/core/star"
)

// giantBranch is the first giant branch, from the BGB to helium ignition.
// Degenerate cores follow the core-mass luminosity relation; above MHeF the
// core grows linearly between the BGB and HeI landmarks.
type giantBranch struct {
	m  *Model
	tr landmark.Track
}

func (p *giantBranch) Stage() stage.Stage { return stage.FGB }

func (p *giantBranch) Span(star.State) (float64, float64) {
	return p.tr.TBGB, p.tr.THeI
}

func (p *giantBranch) degenerate() bool {
	return p.tr.Mass < p.m.Set.Critical.MHeF
}

func (p *giantBranch) Compute(s star.State, target float64) (star.State, error) {
	if err := checkTarget(p, s, target); err != nil {
		return s, err
	}
	tr := p.tr
	mc := lerpCore(target, tr.TBGB, tr.THeI, tr.McBGB, tr.McHeI)
	if p.degenerate() {
		mc = tr.GB.CoreMass(target)
	}
	s.Stage = stage.FGB
	s.EffectiveAge = target
	s.Luminosity = tr.GB.Luminosity(target)
	if target >= tr.THeI && tr.THeI > tr.TBGB {
		s.Luminosity = tr.LHeI
	}
	var err error
	if s.Radius, err = p.m.Set.Rg(s.Mass, s.Luminosity); err != nil {
		return s, err
	}
	s.Rg = s.Radius
	s.CoreMass = math.Max(s.CoreMass, mc)
	s.CoreRadius = p.m.heliumCoreRadius(tr.Mass, s.CoreMass)
	setTrack(&s, tr)
	return finish(s, "GiantBranch")
}

func (p *giantBranch) Done(s star.State) bool {
	return reached(s.EffectiveAge, p.tr.THeI) || envelopeLost(s)
}

func (p *giantBranch) Next(s star.State) (star.State, Phase, error) {
	if envelopeLost(s) {
		return strip(s, p.m, p.degenerate(), 0)
	}
	if !p.degenerate() {
		return igniteHelium(s, p.m, s.Luminosity, s.Radius)
	}
	// Helium flash: the star settles on the zero-age horizontal branch.
	l := p.m.zeroAgeHorizontalBranch(s.Mass, s.CoreMass)
	r, err := p.m.Set.Rg(s.Mass, l)
	if err != nil {
		return s, nil, err
	}
	return igniteHelium(s, p.m, l, r)
}
