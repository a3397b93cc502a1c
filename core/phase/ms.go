// core/phase/ms.go
package phase

import (
	"math"

	"herd/core/fit"
	"herd/core/landmark"
	"herd/core/quantity"
	"herd/core/stage"
	"herd/core/star"
)

// Main-sequence shape coefficients (Hurley et al. 2000, eqs. 19-24), rows
// against zeta^0..zeta^3 unless noted.
var (
	alphaLTable = []float64{
		2.321400e-01, 1.828075e-03, -2.232007e-02, -3.378734e-03,
		1.163659e-02, 3.427682e-03, 1.421393e-03, -3.710666e-03,
		1.048020e-02, -1.231921e-02, -1.686860e-02, -4.234354e-03,
		1.555590e+00, -3.223927e-01, -5.197429e-01, -1.066441e-01,
		0.0977, -0.231, -0.0753, 0,
		0.24, 0.18, 0.595, 0,
		0.33, 0.132, 0.218, 0,
		1.1064, 0.415, 0.18, 0,
		1.19, 0.377, 0.176, 0,
		0.306, 0.053, 0, 0,
		0.3625, 0.062, 0, 0,
	}
	// zeta^0..zeta^4
	betaLTable = []float64{
		3.855707e-01, -6.104166e-01, 5.676742e+00, 1.060894e+01, 5.284014e+00,
		3.579064e-01, -6.442936e-01, 5.494644e+00, 1.054952e+01, 5.280991e+00,
		9.587587e-01, 8.777464e-01, 2.017321e-01, 0, 0,
		1.5135, 0.3769, 0, 0, 0,
	}
	lHookTable = []float64{
		1.910302e-01, 1.158624e-01, 3.348990e-02, 2.599706e-03,
		3.931056e-01, 7.277637e-02, -1.366593e-01, -4.508946e-02,
		3.267776e-01, 1.204424e-01, 9.988332e-02, 2.455361e-02,
		5.990212e-01, 5.570264e-02, 6.207626e-02, 1.777283e-02,
		1.5135, 0.3769, 0, 0,
	}
	// zeta^0..zeta^4
	alphaRTable = []float64{
		4.907546e-01, -1.683928e-01, -3.108742e-01, -7.202918e-02, 0,
		4.537070e+00, -4.465455e+00, -1.612690e+00, -1.623246e+00, 0,
		1.796220e+00, 2.814020e-01, 1.423325e+00, 3.421036e-01, 0,
		2.256216e+00, 3.773400e-01, 1.537867e+00, 4.396373e-01, 0,
		1.564231e-03, 1.653042e-03, -4.439786e-03, -4.951011e-03, -1.216530e-03,
		5.210157e+00, -4.143695e+00, -2.120870e+00, 0, 0,
		1.116, 0.166, 0, 0, 0,
		1.477, 0.296, 0, 0, 0,
		-0.308, -1.046, 0, 0, 0,
		0.8, -2.0, 0, 0, 0,
		0.0843, -0.0475, -0.0352, 0, 0,
		0.0736, 0.0749, 0.04426, 0, 0,
		0.136, 0.0352, 0, 0, 0,
	}
	betaRTable = []float64{
		1.071489e+00, -1.164852e-01, -8.623831e-02, -1.582349e-02,
		7.108492e-01, 7.935927e-01, 3.926983e-01, 3.622146e-02,
		3.478514e+00, -2.585474e-02, -1.512955e-02, -2.833691e-03,
		3.969331e-03, 4.539076e-03, 1.720906e-03, 1.897857e-04,
		9.132108e-01, -1.653695e-01, 0, 3.636784e-02,
		1.6, 0.764, 0.3322, 0,
	}
	gammaRTable = []float64{
		1.192334e-02, 1.083057e-02, 1.230969e+00, 1.551656e+00,
		-1.668868e-01, 5.818123e-01, -1.105027e+01, -1.668070e+01,
		7.615495e-01, 1.068243e-01, -2.011333e-01, -9.371415e-02,
		-1.015564e-01, -2.161264e-01, -5.182516e-02, 0,
		-3.868776e-01, -5.457078e-01, -1.463472e-01, 0,
		9.409838e+00, 1.522928e+00, 0, 0,
		7.454, 9.046, 0, 0,
		-13.3, -18.6, 0, 0,
		2.493, 1.1475, 0, 0,
		0.8109, -0.6282, 0, 0,
		0.6355, -0.4192, 0, 0,
		-0.2711, -0.5756, -0.0838, 0,
	}
	rHookTable = []float64{
		7.330122e-01, 5.192827e-01, 2.316416e-01, 8.346941e-03,
		1.172768e+00, -1.209262e-01, -1.193023e-01, -2.859837e-02,
		3.982622e-01, -2.296279e-01, -2.262539e-01, -5.219837e-02,
		3.571038e+00, -2.223625e-02, -2.611794e-02, -6.359648e-03,
		1.9848, 1.1386, 0.3564, 0,
		0.063, 0.0481, 0.00984, 0,
		1.2, 2.45, 0, 0,
	}
)

// MainSequence is core hydrogen burning (stages MSLM and MS).
type MainSequence struct {
	m       *Model
	mHook   float64
	maxEta  float64
	alphaL  [10]float64
	betaL   [4]float64
	lHook   [5]float64
	alphaR  [12]float64
	betaR   [6]float64
	gammaR  [7]float64
	rHook   [7]float64
	lowMass float64 // 0.0258 (1+X)^(5/3), the degenerate radius scale
}

// MassDependents are the main-sequence shape parameters of one mass.
type MassDependents struct {
	landmark.Track

	AlphaL, BetaL, DeltaL, Eta    float64
	AlphaR, BetaR, GammaR, DeltaR float64
}

func newMainSequence(m *Model) *MainSequence {
	z, zeta := m.Set.Z, m.Set.Zeta
	ms := &MainSequence{m: m, mHook: m.Set.Critical.Mhook}

	t := fit.ZetaCoefficients(alphaLTable, 4, zeta)
	copy(ms.alphaL[:4], t[:4])
	ms.alphaL[4] = math.Max(0.9, t[7])
	ms.alphaL[5] = math.Max(1, t[8])
	if z > 0.01 {
		ms.alphaL[4] = math.Min(ms.alphaL[4], 1)
		ms.alphaL[5] = math.Min(ms.alphaL[5], 1.1)
	}
	ms.alphaL[6] = math.Max(0.145, t[4])
	ms.alphaL[7] = math.Min(t[5], t[9])
	ms.alphaL[8] = math.Min(t[6], t[10])
	ms.alphaL[9] = ms.alphaLHigh(2)

	lower := math.Max(0.6355-0.4192*zeta, 1.25)
	copy(ms.betaL[:], fit.ZetaCoefficients(betaLTable, 5, zeta))
	ms.betaL[3] = math.Max(lower, math.Min(1.4, ms.betaL[3]))
	copy(ms.lHook[:], fit.ZetaCoefficients(lHookTable, 4, zeta))
	ms.lHook[4] = math.Max(lower, math.Min(1.4, ms.lHook[4]))

	t = fit.ZetaCoefficients(alphaRTable, 5, zeta)
	a := &ms.alphaR
	copy(a[:5], t[:5])
	a[5] = fit.Clamp(t[6], 0.9, 1)
	a[6] = math.Max(t[7], math.Min(1.6, t[8]))
	a[6] = math.Max(0.8, math.Min(t[9], a[6]))
	a[7] = t[5]
	a[8] = math.Max(0.065, t[10])
	a[9] = t[11]
	if z < 0.004 {
		a[9] = math.Min(0.055, t[11])
	}
	a[10] = fit.Clamp(t[12], 0.091, 0.121)
	a[11] = a[0] * math.Pow(a[6], a[2]) / (a[1] + math.Pow(a[6], a[3]))
	if a[5] > a[6] {
		a[5] = a[6]
		a[10] = a[11]
	}

	copy(ms.betaR[:], fit.ZetaCoefficients(betaRTable, 4, zeta))
	if z > 0.01 {
		ms.betaR[4] = math.Max(0.95, ms.betaR[4])
	}
	ms.betaR[5] = fit.Clamp(ms.betaR[5], 1.4, 1.6)

	t = fit.ZetaCoefficients(gammaRTable, 4, zeta)
	g := &ms.gammaR
	g[0] = math.Max(t[0], t[3])
	g[1] = math.Max(t[4], math.Min(0, t[1]))
	g[2] = math.Max(0, math.Min(t[2], t[6]))
	g[3] = math.Min(t[5], math.Max(2, t[7]))
	g[4] = fit.Clamp(t[8], 0.4, 1.5)
	g[5] = math.Max(t[10], fit.Clamp(t[9], 1, 1.27))
	g[6] = math.Max(5.85542e-02, t[11])

	copy(ms.rHook[:], fit.ZetaCoefficients(rHookTable, 4, zeta))
	ms.rHook[4] = fit.Clamp(ms.rHook[4], 1.1, 1.25)
	ms.rHook[6] = fit.Clamp(ms.rHook[6], 0.45, 1.3)

	ms.maxEta = 10
	if z <= 0.0009 {
		ms.maxEta = 20
	}
	ms.lowMass = 0.0258 * math.Pow(1+0.76-3*z, 5.0/3.0)
	return ms
}

func (ms *MainSequence) Stage() stage.Stage { return stage.MS }

// Span is [0, tMS] with tMS as last evaluated for s.
func (ms *MainSequence) Span(s star.State) (float64, float64) {
	if s.TMS > 0 {
		return 0, s.TMS
	}
	tMS, _, err := ms.m.Set.TMS.Timescales(s.Mass)
	if err != nil {
		return 0, 0
	}
	return 0, tMS
}

// Timescales returns tMS and thook for mass m.
func (ms *MainSequence) Timescales(m float64) (tMS, tHook float64, err error) {
	return ms.m.Set.TMS.Timescales(m)
}

// MassDependents evaluates the landmarks and shape parameters of mass m.
func (ms *MainSequence) MassDependents(m float64) (MassDependents, error) {
	tr, err := ms.m.Set.Track(m)
	if err != nil {
		return MassDependents{}, err
	}
	md := MassDependents{Track: tr}
	md.AlphaL = ms.AlphaL(m)
	md.BetaL = ms.BetaL(m)
	md.DeltaL = ms.LHook(m)
	md.Eta = fit.Clamp(fit.Lerp(10, 20, (m-1)/0.1), 10, ms.maxEta)
	md.AlphaR = ms.AlphaR(m)
	md.BetaR = ms.BetaR(m)
	md.GammaR = ms.GammaR(m)
	md.DeltaR = ms.RHook(m)
	return md, nil
}

// Luminosity is eq. 12 at effective age t.
func (ms *MainSequence) Luminosity(md MassDependents, t float64) float64 {
	tau := t / md.TMS
	if !(tau > 0) {
		return md.LZAMS
	}
	tau1, tau2 := hookProgress(t, md.THook)
	x := md.AlphaL*tau + md.BetaL*math.Pow(tau, md.Eta) +
		(math.Log10(md.LTMS/md.LZAMS)-md.AlphaL-md.BetaL)*tau*tau -
		md.DeltaL*(tau1-tau2)*(tau1+tau2)
	return md.LZAMS * math.Pow(10, x)
}

// Radius is eq. 13 at effective age t, before the degenerate floor.
func (ms *MainSequence) Radius(md MassDependents, t float64) float64 {
	tau := t / md.TMS
	if !(tau > 0) {
		return md.RZAMS
	}
	tau1, tau2 := hookProgress(t, md.THook)
	tau3 := tau * tau * tau
	x := md.AlphaR*tau + md.BetaR*math.Pow(tau, 10) + md.GammaR*math.Pow(tau, 40) +
		(math.Log10(md.RTMS/md.RZAMS)-md.AlphaR-md.BetaR-md.GammaR)*tau3 -
		md.DeltaR*(tau1*tau1*tau1-tau2*tau2*tau2)
	return md.RZAMS * math.Pow(10, x)
}

// hookProgress returns tau1 and tau2 of eqs. 14-15.
func hookProgress(t, tHook float64) (float64, float64) {
	x := t / tHook
	return math.Min(1, x), fit.Clamp(100*x-99, 0, 1)
}

// Compute advances s to effective age target. If the mass changed since the
// last step the age already spent is rescaled by the ratio of lifetimes.
func (ms *MainSequence) Compute(s star.State, target float64) (star.State, error) {
	if err := quantity.Negative(s.EffectiveAge, "EffectiveAge"); err != nil {
		return s, err
	}
	if err := checkTarget(ms, s, target); err != nil {
		return s, err
	}
	md, err := ms.MassDependents(s.Mass)
	if err != nil {
		return s, err
	}
	tOld := s.TMS
	if s.Mass == s.MZAMS || tOld == 0 {
		tOld = md.TMS
	}
	dt := target - s.EffectiveAge
	eff := s.EffectiveAge + dt
	if md.TMS != tOld {
		eff = math.FMA(s.EffectiveAge, md.TMS/tOld, dt)
	}
	if reached(eff, md.TMS) {
		eff = md.TMS
	}

	s.Luminosity = ms.Luminosity(md, eff)
	s.Radius = ms.Radius(md, eff)
	s.Stage = stage.MS
	if ms.m.Set.Critical.BelowHook(s.Mass) {
		s.Stage = stage.MSLM
		s.Radius = math.Max(s.Radius, ms.lowMass/math.Cbrt(s.Mass))
	}
	s.Metallicity = ms.m.Set.Z
	s.CoreMass, s.CoreRadius = 0, 0
	s.EffectiveAge = eff
	s.M0 = s.Mass
	s.MFGB = ms.m.Set.Critical.MFGB
	s.MCHeI = md.McHeI
	s.TMS, s.LTMS, s.RTMS, s.RZAMS = md.TMS, md.LTMS, md.RTMS, md.RZAMS
	s.LBGB, s.LHeI = md.LBGB, md.LHeI
	s.Rg = md.RBGB
	return finish(s, "MainSequence")
}

func (ms *MainSequence) Done(s star.State) bool {
	return s.TMS > 0 && reached(s.EffectiveAge, s.TMS)
}

// Next enters the Hertzsprung gap with the landmarks frozen at the current
// mass.
func (ms *MainSequence) Next(s star.State) (star.State, Phase, error) {
	s.Stage = stage.HG
	s.M0 = s.Mass
	return enter(s, ms.m)
}

// AlphaL is alpha_L of eq. 19.
func (ms *MainSequence) AlphaL(m float64) float64 {
	a := &ms.alphaL
	switch {
	case m <= 0.5:
		return a[6]
	case m <= 0.7:
		return fit.Lerp(a[6], 0.3, fit.BlendWeight(m, 0.5, 0.7))
	case m <= a[4]:
		return fit.Lerp(0.3, a[7], fit.BlendWeight(m, 0.7, a[4]))
	case m <= a[5]:
		return fit.Lerp(a[7], a[8], fit.BlendWeight(m, a[4], a[5]))
	case m < 2:
		return fit.Lerp(a[8], a[9], fit.BlendWeight(m, a[5], 2))
	}
	return ms.alphaLHigh(m)
}

func (ms *MainSequence) alphaLHigh(m float64) float64 {
	a := &ms.alphaL
	return fit.ApBXhC(m, a[0], a[1], a[3]) / (math.Pow(m, 0.4) * (1 + a[2]*m*math.Sqrt(m)))
}

// BetaL is beta_L of eq. 20.
func (ms *MainSequence) BetaL(m float64) float64 {
	a := &ms.betaL
	b := fit.ApBXhC(m, a[0], -a[1], a[2])
	if m > a[3] && b > 0 {
		b = fit.ApBXhC(a[3], a[0], -a[1], a[2]) * (1 - 10*(m-a[3]))
	}
	return math.Max(0, b)
}

// LHook is the luminosity perturbation Delta_L of eq. 16.
func (ms *MainSequence) LHook(m float64) float64 {
	a := &ms.lHook
	if m <= ms.mHook {
		return 0
	}
	f := func(m float64) float64 {
		return math.Min(a[0]*math.Pow(m, -a[1]), a[2]*math.Pow(m, -a[3]))
	}
	if m >= a[4] {
		return f(m)
	}
	return f(a[4]) * math.Pow(fit.BlendWeight(m, ms.mHook, a[4]), 0.4)
}

// AlphaR is alpha_R of eq. 21.
func (ms *MainSequence) AlphaR(m float64) float64 {
	a := &ms.alphaR
	high := func(m float64) float64 {
		return a[0] * math.Pow(m, a[2]) / (a[1] + math.Pow(m, a[3]))
	}
	switch {
	case m <= 0.5:
		return a[8]
	case m <= 0.65:
		return fit.Lerp(a[8], a[9], fit.BlendWeight(m, 0.5, 0.65))
	case m <= a[5]:
		return fit.Lerp(a[9], a[10], fit.BlendWeight(m, 0.65, a[5]))
	case m < a[6]:
		return fit.Lerp(a[10], a[11], fit.BlendWeight(m, a[5], a[6]))
	case m <= a[7]:
		return high(m)
	}
	return high(a[7]) + a[4]*(m-a[7])
}

// BetaR is beta_R - 1 of eq. 22.
func (ms *MainSequence) BetaR(m float64) float64 {
	a := &ms.betaR
	var b float64
	switch {
	case m <= 1:
		b = 1.06
	case m <= a[5]:
		b = fit.Lerp(1.06, a[4], fit.BlendWeight(m, 1, a[5]))
	case m <= 2:
		at2 := 8 * math.Sqrt2 * a[0] / (a[1] + math.Pow(2, a[2]))
		b = fit.Lerp(a[4], at2, fit.BlendWeight(m, a[5], 2))
	case m <= 16:
		b = a[0] * m * m * m * math.Sqrt(m) / (a[1] + math.Pow(m, a[2]))
	default:
		b = 16384*a[0]/(a[1]+math.Pow(16, a[2])) + a[3]*(m-16)
	}
	return b - 1
}

// GammaR is gamma_R of eq. 23.
func (ms *MainSequence) GammaR(m float64) float64 {
	a := &ms.gammaR
	if m > a[5]+0.1 {
		return 0
	}
	var g float64
	if m <= 1 {
		g = fit.ApBXhC(math.Abs(m-a[2]), a[0], a[1], a[3])
	} else {
		at1 := math.Max(0, fit.ApBXhC(math.Abs(1-a[2]), a[0], a[1], a[3]))
		if m <= a[5] {
			g = fit.ApBXhC(fit.BlendWeight(m, 1, a[5]), at1, a[6]-at1, a[4])
		} else {
			c := at1
			if a[5] > 1 {
				c = a[6]
			}
			g = c - 10*c*(m-a[5])
		}
	}
	return math.Max(0, g)
}

// RHook is the radius perturbation Delta_R of eq. 17.
func (ms *MainSequence) RHook(m float64) float64 {
	a := &ms.rHook
	switch {
	case m <= ms.mHook:
		return 0
	case m <= a[4]:
		return a[5] * math.Sqrt(fit.BlendWeight(m, ms.mHook, a[4]))
	case m <= 2:
		at2 := (a[0] + 8*math.Sqrt2*a[1]) / (8*a[2] + math.Pow(2, a[3]))
		return fit.ApBXhC(fit.BlendWeight(m, a[4], 2), a[5], at2-1-a[5], a[6])
	}
	m3 := m * m * m
	return (a[0]+a[1]*m3*math.Sqrt(m))/(a[2]*m3+math.Pow(m, a[3])) - 1
}
