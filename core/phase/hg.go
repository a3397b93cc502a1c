// core/phase/hg.go
package phase

import (
	"math"

	"herd/core/fit"
	"herd/core/giant"
	"herd/core/landmark"
	"herd/core/stage"
	"herd/core/star"
)

// hertzsprungGap is the rapid crossing from the TMS to the giant branch, or
// straight to helium ignition for M0 >= MFGB.
type hertzsprungGap struct {
	m  *Model
	tr landmark.Track
}

func (p *hertzsprungGap) Stage() stage.Stage { return stage.HG }

func (p *hertzsprungGap) Span(star.State) (float64, float64) {
	return p.tr.TMS, p.tr.TBGB
}

// end is the luminosity and core mass at the end of the gap.
func (p *hertzsprungGap) end() (l, mc float64) {
	if p.tr.Mass < p.m.Set.Critical.MFGB {
		return p.tr.LBGB, p.tr.McBGB
	}
	return p.tr.LHeI, p.tr.McHeI
}

func (p *hertzsprungGap) Compute(s star.State, target float64) (star.State, error) {
	if err := checkTarget(p, s, target); err != nil {
		return s, err
	}
	tr := p.tr
	tau := fraction(target, tr.TMS, tr.TBGB)
	lEnd, mcEnd := p.end()
	rEnd, err := p.m.Set.Rg(s.Mass, lEnd)
	if err != nil {
		return s, err
	}
	rho := giant.CoreMassTMS(tr.Mass, 1)

	s.Stage = stage.HG
	s.EffectiveAge = target
	s.Luminosity = tr.LTMS * math.Pow(lEnd/tr.LTMS, tau)
	s.Radius = tr.RTMS * math.Pow(rEnd/tr.RTMS, tau)
	s.CoreMass = math.Max(s.CoreMass, ((1-tau)*rho+tau)*mcEnd)
	s.CoreRadius = p.m.heliumCoreRadius(tr.Mass, s.CoreMass)
	if s.Rg, err = p.m.Set.Rg(s.Mass, tr.LBGB); err != nil {
		return s, err
	}
	setTrack(&s, tr)
	return finish(s, "HertzsprungGap")
}

func (p *hertzsprungGap) Done(s star.State) bool {
	return reached(s.EffectiveAge, p.tr.TBGB) || envelopeLost(s)
}

func (p *hertzsprungGap) Next(s star.State) (star.State, Phase, error) {
	if envelopeLost(s) {
		return strip(s, p.m, p.tr.Mass < p.m.Set.Critical.MHeF, 0)
	}
	if p.tr.Mass < p.m.Set.Critical.MFGB {
		s.Stage = stage.FGB
		return enter(s, p.m)
	}
	s.EffectiveAge = p.tr.THeI
	return igniteHelium(s, p.m, s.Luminosity, s.Radius)
}

// setTrack copies the landmarks of tr that the envelope and wind models read.
func setTrack(s *star.State, tr landmark.Track) {
	s.TMS, s.LTMS, s.RTMS, s.RZAMS = tr.TMS, tr.LTMS, tr.RTMS, tr.RZAMS
	s.LBGB, s.LHeI, s.MCHeI = tr.LBGB, tr.LHeI, tr.McHeI
}

// heliumCoreRadius is the radius of the helium core of a hydrogen-rich star
// of initial mass m0: degenerate below MHeF.
func (m *Model) heliumCoreRadius(m0, mc float64) float64 {
	if mc <= 0 {
		return 0
	}
	if m0 < m.Set.Critical.MHeF {
		return whiteDwarfRadius(mc)
	}
	return nonDegenerateCoreRadius(mc)
}

// lerpCore interpolates a core mass linearly in effective age.
func lerpCore(t, t0, t1, mc0, mc1 float64) float64 {
	return fit.Lerp(mc0, mc1, fraction(t, t0, t1))
}
