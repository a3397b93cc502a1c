// core/giant/relation.go
package giant

import (
	"math"

	"herd/core/fit"
)

// Growth-rate constants A (Msun Lsun^-1 Myr^-1) for the shell-burning phases.
const (
	AHe  = 7.66e-5 // helium shell burning (early AGB, helium giants)
	AHHe = 1.27e-5 // double-shell burning (thermally pulsing AGB)
)

// Relation is L = min(B Mc^q, D Mc^p). Below Mx the D branch applies.
type Relation struct {
	B, D float64
	P, Q float64
}

// Hydrogen returns the giant-branch relation of a star of mass m (eqs. 37-38).
func Hydrogen(m, zeta, mHeF float64) Relation {
	d0 := 5.37 + 0.135*zeta
	dHi := func(m float64) float64 {
		return math.Max(-1, math.Max(0.975*d0-0.18*m, 0.5*d0-0.06*m))
	}
	var logD float64
	switch {
	case m <= mHeF:
		logD = d0
	case m >= 2.5:
		logD = dHi(m)
	default:
		logD = fit.Lerp(d0, dHi(2.5), fit.BlendWeight(m, mHeF, 2.5))
	}
	return Relation{
		B: math.Max(3e4, 500+1.75e4*math.Pow(m, 0.6)),
		D: math.Pow(10, logD),
		P: 6,
		Q: 3,
	}
}

// HydrogenRate is A_H, the hydrogen-shell growth constant (eq. 43).
func HydrogenRate(m float64) float64 {
	return math.Pow(10, math.Max(-4.8, math.Min(-5.7+0.8*m, -4.1+0.14*m)))
}

// Helium returns the relation for naked helium giants of mass m (eq. 84).
func Helium(m float64) Relation {
	return Relation{B: 4.1e4, D: 5.5e4 / (1 + 0.4*math.Pow(m, 4)), P: 5, Q: 3}
}

// Mx is the core mass where both branches meet.
func (r Relation) Mx() float64 {
	return math.Pow(r.B/r.D, 1/(r.P-r.Q))
}

// Lx is the luminosity at Mx.
func (r Relation) Lx() float64 {
	return r.Luminosity(r.Mx())
}

func (r Relation) Luminosity(mc float64) float64 {
	return math.Min(r.B*math.Pow(mc, r.Q), r.D*math.Pow(mc, r.P))
}

// CoreMass inverts Luminosity.
func (r Relation) CoreMass(l float64) float64 {
	if l <= r.Lx() {
		return math.Pow(l/r.D, 1/r.P)
	}
	return math.Pow(l/r.B, 1/r.Q)
}

// Timing integrates dMc/dt = A L(Mc) from (T0, L0). TInf1 and TInf2 are the
// asymptotes of the D and B branches; Tx is when the core passes Mx.
type Timing struct {
	Relation
	A     float64
	T0    float64
	TInf1 float64
	Tx    float64
	TInf2 float64
}

// Timing anchors r at age t0 and luminosity l0 with growth constant a.
func (r Relation) Timing(a, t0, l0 float64) Timing {
	t := Timing{Relation: r, A: a, T0: t0}
	lx := r.Lx()
	if l0 <= lx {
		t.TInf1 = t0 + t.spanD(l0)
		t.Tx = t.TInf1 - (t.TInf1-t0)*math.Pow(l0/lx, (r.P-1)/r.P)
		t.TInf2 = t.Tx + t.spanB(lx)
	} else {
		// Already past Mx: the D branch is never used.
		t.TInf1 = math.Inf(-1)
		t.Tx = math.Inf(-1)
		t.TInf2 = t0 + t.spanB(l0)
	}
	return t
}

func (t Timing) spanD(l float64) float64 {
	return 1 / ((t.P - 1) * t.A * t.D) * math.Pow(t.D/l, (t.P-1)/t.P)
}

func (t Timing) spanB(l float64) float64 {
	return 1 / ((t.Q - 1) * t.A * t.B) * math.Pow(t.B/l, (t.Q-1)/t.Q)
}

// CoreMass returns Mc at age.
func (t Timing) CoreMass(age float64) float64 {
	if age <= t.Tx {
		return math.Pow((t.P-1)*t.A*t.D*(t.TInf1-age), 1/(1-t.P))
	}
	return math.Pow((t.Q-1)*t.A*t.B*(t.TInf2-age), 1/(1-t.Q))
}

// Luminosity returns L at age.
func (t Timing) Luminosity(age float64) float64 {
	return t.Relation.Luminosity(t.CoreMass(age))
}

// AgeAtLuminosity inverts Luminosity.
func (t Timing) AgeAtLuminosity(l float64) float64 {
	if l <= t.Lx() && !math.IsInf(t.Tx, -1) {
		return t.TInf1 - t.spanD(l)
	}
	return t.TInf2 - t.spanB(l)
}

// AgeAtCoreMass returns the age at which the core reaches mc.
func (t Timing) AgeAtCoreMass(mc float64) float64 {
	return t.AgeAtLuminosity(t.Relation.Luminosity(mc))
}
