// core/phase/phase.go
package phase

import (
	"math"

	"herd/core/envelope"
	"herd/core/giant"
	"herd/core/landmark"
	"herd/core/physics"
	"herd/core/quantity"
	"herd/core/stage"
	"herd/core/star"
)

// Phase is one evolutionary phase.
type Phase interface {
	// Stage is the nominal stage of the phase. Some phases report a
	// sub-stage on their states (MSLM, HeHG).
	Stage() stage.Stage
	// Span is the effective-age interval over which the phase is valid for s.
	Span(s star.State) (start, end float64)
	// Compute returns s advanced to the effective age target.
	Compute(s star.State, target float64) (star.State, error)
	// Done reports whether s has reached the end of the phase.
	Done(s star.State) bool
	// Next returns s at the start of the successor phase.
	Next(s star.State) (star.State, Phase, error)
}

// Options select remnant prescriptions.
type Options struct {
	UseModifiedMestel bool    // modified Mestel white-dwarf cooling
	UseBelczynskiMass bool    // Belczynski et al. (2002) NS/BH masses
	MaxNSMass         float64 // Msun
}

// DefaultOptions matches the SSE defaults.
func DefaultOptions() Options {
	return Options{UseModifiedMestel: true, UseBelczynskiMass: true, MaxNSMass: DefaultMaxNSMass(true)}
}

// DefaultMaxNSMass is the neutron-star mass limit that goes with the
// remnant-mass prescription.
func DefaultMaxNSMass(belczynski bool) float64 {
	if belczynski {
		return 3
	}
	return 1.8
}

// Model carries what every phase of one trajectory shares.
// It is read-only and safe for concurrent use.
type Model struct {
	Set     *landmark.Set
	Options Options
	ms      *MainSequence
}

// NewModel computes the metallicity dependents for z.
func NewModel(z float64, opt Options) (*Model, error) {
	if err := quantity.NotPositive(opt.MaxNSMass, "MaxNSMass"); err != nil {
		return nil, err
	}
	set, err := landmark.NewSet(z)
	if err != nil {
		return nil, err
	}
	m := &Model{Set: set, Options: opt}
	m.ms = newMainSequence(m)
	return m, nil
}

// MainSequence returns the main-sequence phase of the model.
func (m *Model) MainSequence() *MainSequence { return m.ms }

// For returns the phase a state belongs to.
func For(s star.State, m *Model) (Phase, error) {
	switch st := s.Stage; {
	case st.IsMS():
		return m.ms, nil
	case st == stage.HG || st == stage.FGB || st == stage.CHeB || st.IsAGB():
		tr, err := m.Set.Track(s.M0)
		if err != nil {
			return nil, err
		}
		switch st {
		case stage.HG:
			return &hertzsprungGap{m: m, tr: tr}, nil
		case stage.FGB:
			return &giantBranch{m: m, tr: tr}, nil
		case stage.CHeB:
			return &coreHeliumBurning{m: m, tr: tr}, nil
		case stage.FAGB:
			return &earlyAGB{m: m, tr: tr}, nil
		}
		return &pulsingAGB{m: m, tr: tr}, nil
	case st == stage.HeMS:
		return &heliumMainSequence{m: m}, nil
	case st == stage.HeHG || st == stage.HeGB:
		return &heliumGiant{m: m}, nil
	case st.IsRemnant():
		return &remnant{m: m, stage: st}, nil
	}
	return nil, &quantity.PreconditionError{Element: "Stage", Expected: "a defined stage", Actual: s.Stage.String()}
}

// relTol absorbs rounding when an effective age lands on a phase boundary.
const relTol = 1e-12

// checkTarget validates the inputs every Compute shares.
func checkTarget(p Phase, s star.State, target float64) error {
	if err := quantity.NotPositive(s.Mass, "Mass"); err != nil {
		return err
	}
	start, end := p.Span(s)
	tol := relTol * math.Max(math.Abs(start), math.Abs(end))
	if math.IsInf(end, 1) {
		tol = relTol * math.Abs(start)
	}
	if !(target >= start-tol && target <= end+tol) {
		return quantity.NewPreconditionError("EffectiveAge",
			quantity.NewClosed(start, end).String(), target)
	}
	return nil
}

// reached reports whether age has arrived at end.
func reached(age, end float64) bool {
	return age >= end-relTol*math.Abs(end)
}

// envelopeLost reports whether the core has grown into the whole star.
func envelopeLost(s star.State) bool {
	return s.Mass-s.CoreMass <= 1e-10*s.Mass
}

// fraction is (t - a) / (b - a) clamped to [0, 1]; 1 for empty intervals.
func fraction(t, a, b float64) float64 {
	if !(b > a) {
		return 1
	}
	return math.Max(0, math.Min(1, (t-a)/(b-a)))
}

// finish derives temperature and the convective envelope of a freshly
// computed state and checks it for consistency.
func finish(s star.State, component string) (star.State, error) {
	if err := quantity.Finite(s.Luminosity, component, "luminosity"); err != nil {
		return s, err
	}
	if err := quantity.Finite(s.Radius, component, "radius"); err != nil {
		return s, err
	}
	s.CoreMass = math.Min(s.CoreMass, s.Mass)
	s.CoreRadius = math.Min(s.CoreRadius, s.Radius)
	s.Temperature = physics.EffectiveTemperature(s.Luminosity, s.Radius)
	s.EnvelopeMass, s.EnvelopeRadius = 0, 0
	env, err := envelope.Compute(s)
	if err != nil {
		return s, err
	}
	s.EnvelopeMass, s.EnvelopeRadius, s.K2 = env.Mass, env.Radius, env.K2
	return s, nil
}

// enter moves s into the phase of its (already updated) stage and evaluates
// it at its effective age.
func enter(s star.State, m *Model) (star.State, Phase, error) {
	p, err := For(s, m)
	if err != nil {
		return s, nil, err
	}
	s, err = p.Compute(s, s.EffectiveAge)
	return s, p, err
}

// Core radii (Hurley, Tout & Pols 2002, section 2.3).

// whiteDwarfRadius is the radius of a degenerate object of mass m.
func whiteDwarfRadius(m float64) float64 {
	x := math.Pow(giant.MCh/m, 2.0/3.0) - math.Pow(m/giant.MCh, 2.0/3.0)
	return math.Max(neutronStarRadius, 0.0115*math.Sqrt(math.Max(1.48e-8, x)))
}

// nonDegenerateCoreRadius is the radius of a non-degenerate helium core.
func nonDegenerateCoreRadius(mc float64) float64 {
	return 0.2239 * math.Pow(mc, 0.62)
}
