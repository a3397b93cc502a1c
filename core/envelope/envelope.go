// core/envelope/envelope.go
// Convective envelope of non-degenerate stars (Hurley, Tout & Pols 2002,
// section 2.3): mass and depth of the convective envelope, radius of
// gyration and the apsidal-motion constant k2.

package envelope

import (
	"math"

	"herd/core/fit"
	"herd/core/physics"
	"herd/core/stage"
	"herd/core/star"
)

// Envelope describes the convective envelope. Remnants have none.
type Envelope struct {
	Mass             float64 // Msun
	Radius           float64 // depth of the convective zone, Rsun
	RadiusOfGyration float64
	K2               float64
}

// initial holds the coefficients that depend on the effective initial mass.
type initial struct {
	a, c   float64
	mCEZ   float64 // convective envelope mass fraction at ZAMS
	rCEZ   float64 // convective envelope radius fraction at ZAMS
	y      float64
	rgZAMS float64
	rgBGB  float64
}

func newInitial(m float64) initial {
	logM := math.Log10(m)
	x := fit.Clamp((0.1-logM)/0.55, 0, 1)
	x5 := math.Pow(x, 5)
	var in initial
	in.a = fit.Clamp(0.68+0.4*logM, 0.68, 0.81)
	in.c = fit.Clamp(-2.5+5*logM, -2.5, -1.5)
	in.mCEZ = 0.18*x + 0.82*x5
	in.rCEZ = 0.4*math.Pow(x, 0.25) + 0.6*x5*x5
	in.y = 2 + 8*x
	in.rgZAMS = math.Min(0.21, math.Max(0.09-0.27*logM, 0.037+0.033*logM))
	in.rgBGB = math.Min(0.15, math.Min(0.147+0.03*logM, 0.162-0.04*logM))
	if logM > 1.3 {
		in.rgZAMS -= 0.055 * (logM - 1.3) * (logM - 1.3)
	}
	return in
}

// Compute returns the envelope of s. The state must be valid.
func Compute(s star.State) (Envelope, error) {
	if err := s.Validate(); err != nil {
		return Envelope{}, err
	}
	if s.Stage.IsRemnant() {
		return Envelope{}, nil
	}
	in := newInitial(InitialMass(s))
	tauEnv := proximity(s, in)
	fm, fr := massAndRadius(s, in, tauEnv)
	// k2 follows the same fit as rg (Hurley et al. 2002, eqs. 105-109).
	rg := gyration(s, in, tauEnv)
	return Envelope{
		Mass:             math.Min(s.Mass-s.CoreMass, math.Max(1e-10, fm*(s.Mass-s.CoreMass))),
		Radius:           math.Max(1e-10, fr*(s.Radius-s.CoreRadius)),
		RadiusOfGyration: rg,
		K2:               rg,
	}, nil
}

// InitialMass is the mass the initial-mass fits are evaluated at: the current
// mass on the main sequences, the ZAMS mass for giants and the helium ZAMS
// mass for evolved helium stars.
func InitialMass(s star.State) float64 {
	switch st := s.Stage; {
	case st.IsMS() || st == stage.HeMS:
		return s.Mass
	case st == stage.HG:
		if s.CoreMass > s.MCHeI || s.MZAMS > s.MFGB {
			return s.MZAMS
		}
		return s.Mass
	case st == stage.FGB || st == stage.CHeB || st.IsAGB():
		return s.MZAMS
	}
	return s.MZHe
}

// proximity is tau_env: 0 far from the Hayashi track, 1 on it.
func proximity(s star.State, in initial) float64 {
	var x float64
	if s.Stage.IsPreFGB() {
		x = physics.EffectiveTemperature(s.LBGB, s.Rg) / s.Temperature
	} else {
		x = math.Sqrt(s.Radius / s.Rg)
	}
	return fit.Clamp(fit.BlendWeight(x, in.a, 1), 0, 1)
}

func shellBurning(st stage.Stage) bool {
	return st == stage.FGB || st == stage.CHeB || st.IsAGB()
}

// giantGyration is the radius of gyration of a star on the Hayashi track.
func giantGyration(s star.State, bgb float64) float64 {
	switch {
	case shellBurning(s.Stage):
		logM := math.Log10(s.Mass)
		f := 0.208 + 0.125*logM - 0.035*logM*logM
		m15 := s.Mass * math.Sqrt(s.Mass)
		x := math.Pow((s.Luminosity-s.LBGB)/(1e4*m15/(1+0.1*m15)), 2)
		y := (f-0.033*math.Log10(s.LBGB))/bgb - 1
		return (f - 0.033*math.Log10(s.Luminosity) + 0.4*x) /
			(1 + y*(s.LBGB/s.Luminosity) + x)
	case s.Stage == stage.HeGB:
		m15 := s.Mass * math.Sqrt(s.Mass)
		x := math.Pow(math.Max(0, s.Luminosity/(3e4*m15)-0.5), 2)
		return (bgb + 0.4*x) / (1 + 0.4*x)
	}
	return bgb
}

// gyration blends the compact-star value towards the giant value as the
// star approaches the Hayashi track. The same fit serves rg and k2.
func gyration(s star.State, in initial, tauEnv float64) float64 {
	rgg := giantGyration(s, in.rgBGB)
	if s.Radius >= s.Rg {
		return rgg
	}
	var rg float64
	switch st := s.Stage; {
	case st == stage.HeMS:
		rg = 0.08 - 0.03*s.EffectiveAge/s.THeMS
	case st.IsHeStar():
		rg = 0.08 * s.RZAMS / s.Radius
	default:
		ratio := s.Radius / s.RZAMS
		rg = (in.rgZAMS-0.025)*math.Pow(ratio, in.c) + 0.025*math.Pow(ratio, -0.1)
	}
	if tauEnv > 0 {
		w := tauEnv * tauEnv * tauEnv
		if s.Stage.IsMS() {
			w *= math.Pow(s.EffectiveAge/s.TMS, in.y)
		}
		rg += w * (rgg - rg)
	}
	return rg
}

// massAndRadius returns the convective envelope mass and depth as fractions
// of the whole envelope.
func massAndRadius(s star.State, in initial, tauEnv float64) (float64, float64) {
	mCEG, rCEG := 1.0, 1.0
	if s.Stage.IsPreFGB() {
		mCEG, rCEG = 0.5, 0.65
	}
	// Young giants have not yet developed a fully convective envelope.
	if s.Stage == stage.FGB && s.Luminosity < 3*s.LBGB {
		x := math.Min(3, s.LHeI/s.LBGB)
		tau := fit.Clamp(fit.BlendWeight(s.Luminosity/s.LBGB, x, 1), 0, 1)
		mCEG = 1 - 0.5*tau*tau
		rCEG = 1 - 0.35*tau*tau
	}
	if s.Radius >= s.Rg {
		return mCEG, rCEG
	}
	if tauEnv <= 0 {
		return 0, 0
	}
	massRel := func(tau float64) float64 { return mCEG * math.Pow(tau, 5) }
	radiusRel := func(tau float64) float64 { return rCEG * math.Pow(tau, 1.25) }
	mCE, rCE := massRel(tauEnv), radiusRel(tauEnv)
	if !s.Stage.IsMS() {
		return mCE, rCE
	}
	teBGB := physics.EffectiveTemperature(s.LBGB, s.Rg)
	teTMS := physics.EffectiveTemperature(s.LTMS, s.RTMS)
	tauTMS := fit.Clamp(fit.BlendWeight(teBGB/teTMS, in.a, 1), 0, 1)
	if tauTMS <= 0 {
		return 0, 0
	}
	tauY := math.Pow(s.EffectiveAge/s.TMS, in.y)
	mCE = in.mCEZ + tauY*mCE*(1-in.mCEZ/massRel(tauTMS))
	rCE = in.rCEZ + tauY*rCE*(1-in.rCEZ/radiusRel(tauTMS))
	return mCE, rCE
}
