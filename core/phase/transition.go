// core/phase/transition.go
package phase

import (
	"math"

	"herd/core/giant"
	"herd/core/stage"
	"herd/core/star"
)

// strip exposes the helium core of a hydrogen-rich star that lost its
// envelope. Degenerate cores become helium white dwarfs; the others become
// helium stars tau of the way through their main sequence.
func strip(s star.State, m *Model, degenerate bool, tau float64) (star.State, Phase, error) {
	if degenerate {
		return formRemnant(s, m, stage.HeWD, s.CoreMass)
	}
	s.Mass = math.Min(s.Mass, s.CoreMass)
	s.Stage = stage.HeMS
	s.MZHe, s.M0 = s.Mass, s.Mass
	s.THeMS = giant.HeliumMSLifetime(s.Mass)
	s.EffectiveAge = tau * s.THeMS
	return enter(s, m)
}

// exposeHeliumCore turns an early-AGB star without envelope into a helium
// giant with the same CO core.
func exposeHeliumCore(s star.State, m *Model) (star.State, Phase, error) {
	mcCO := s.COCoreMass
	s.Mass = math.Min(s.Mass, s.CoreMass)
	s.Stage = stage.HeHG
	s.MZHe, s.M0 = s.Mass, s.Mass
	s.THeMS = giant.HeliumMSLifetime(s.Mass)
	s.StartAge = s.THeMS
	s.StartLuminosity = giant.Helium(s.M0).Luminosity(mcCO)
	s.StartCoreMass = mcCO
	s.CoreMass = mcCO
	s.EffectiveAge = s.StartAge
	return enter(s, m)
}

// whiteDwarf leaves the core of a star whose envelope is gone.
func whiteDwarf(s star.State, m *Model, mcBAGB float64) (star.State, Phase, error) {
	st := stage.COWD
	if mcBAGB >= mcBAGBCarbon {
		st = stage.ONWD
	}
	return formRemnant(s, m, st, s.CoreMass)
}

// supernova ends a star whose core reached Mc,SN. A CO core explodes by
// carbon deflagration and leaves nothing.
func supernova(s star.State, m *Model, mcBAGB float64) (star.State, Phase, error) {
	if mcBAGB < mcBAGBCarbon {
		return formRemnant(s, m, stage.MSn, 0)
	}
	st, mass := compactRemnant(m.Options, s.Mass, s.COCoreMass)
	return formRemnant(s, m, st, mass)
}

// compactRemnant returns the stage and gravitational mass left by core
// collapse of a star of mass m with CO core mcCO.
func compactRemnant(opt Options, m, mcCO float64) (stage.Stage, float64) {
	if !opt.UseBelczynskiMass {
		mrem := 1.17 + 0.09*mcCO
		if mrem <= opt.MaxNSMass {
			return stage.NS, mrem
		}
		return stage.BH, mrem
	}
	// Belczynski et al. (2002): proto-compact core plus fallback.
	proto := 0.314154*mcCO + 0.686088
	if mcCO < 2.5 {
		proto = 0.161767*mcCO + 1.067055
	}
	baryonic := proto
	switch {
	case mcCO >= 7.6:
		baryonic = m
	case mcCO > 5:
		baryonic = proto + (mcCO-5)*(m-proto)/2.6
	}
	if baryonic <= opt.MaxNSMass {
		return stage.NS, (math.Sqrt(1+0.3*baryonic) - 1) / 0.15
	}
	return stage.BH, 0.9 * baryonic
}

// formRemnant replaces s by a newborn remnant of the given stage and mass.
func formRemnant(s star.State, m *Model, st stage.Stage, mass float64) (star.State, Phase, error) {
	s.Stage = st
	s.Mass = math.Min(mass, s.Mass)
	s.CoreMass = s.Mass
	s.EffectiveAge = 0
	return enter(s, m)
}
