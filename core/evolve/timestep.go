// core/evolve/timestep.go
package evolve

import (
	"math"

	"herd/core/phase"
	"herd/core/star"
)

const (
	maxRadiusChange     = 0.1
	maxMassChange       = 0.01
	maxRadiusIterations = 40
	minRelativeStep     = 1e-7
)

// ComputeTimestep returns the next step in Myr for s in phase ph, never
// going past the physical age until. The step is a fraction of the phase
// duration, shortened until the radius changes by at most 10%, the wind
// leaves the core intact and the mass changes by at most 1%.
func ComputeTimestep(ph phase.Phase, s star.State, p Parameters, until float64) (float64, error) {
	frac := p.Step.Fraction(s.Stage)
	var dt float64
	if s.Stage.IsRemnant() {
		dt = math.Max(p.Step.MinRemnantTimestep, frac*s.EffectiveAge)
	} else {
		start, end := ph.Span(s)
		remaining := end - s.EffectiveAge
		dt = frac * (end - start)
		var err error
		if dt, err = limitRadiusChange(ph, s, dt, end); err != nil {
			return 0, err
		}
		dt = math.Max(dt, minRelativeStep*s.EffectiveAge)
		dt = math.Min(dt, remaining)
		if rate := s.MassLossRate * 1e6; rate > 0 {
			if loss, core := rate*dt, s.Mass-s.CoreMass; loss > core {
				dt = core / rate
			}
		}
	}
	if rate := s.MassLossRate * 1e6; rate > 0 && rate*dt > maxMassChange*s.Mass {
		dt = maxMassChange * s.Mass / rate
	}
	return math.Min(dt, until-s.Age), nil
}

// limitRadiusChange shrinks dt until the radius at the end of the step is
// within 10% of the current one. A step that lands on the end of the phase
// is evaluated there exactly.
func limitRadiusChange(ph phase.Phase, s star.State, dt, end float64) (float64, error) {
	for i := 0; i < maxRadiusIterations; i++ {
		remaining := end - s.EffectiveAge
		atEnd := remaining-dt < 1e-10
		target := s.EffectiveAge + dt
		if atEnd {
			dt, target = remaining, end
		}
		trial, err := ph.Compute(s, target)
		if err != nil {
			return 0, err
		}
		dr := math.Abs(trial.Radius - s.Radius)
		if dr <= maxRadiusChange*s.Radius {
			return dt, nil
		}
		dt *= 0.9 * maxRadiusChange * math.Max(trial.Radius, s.Radius) / dr
		if i >= 20 {
			dt /= 2
		}
	}
	return dt, nil
}
