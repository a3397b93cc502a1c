// core/evolve/evolve.go
package evolve

import (
	"context"
	"errors"
	"fmt"
	"iter"

	"herd/core/phase"
	"herd/core/quantity"
	"herd/core/rotation"
	"herd/core/stage"
	"herd/core/star"
	"herd/core/wind"
)

// ErrStepLimit is returned when a trajectory needs more than MaxSteps steps.
// The points produced before it are valid.
var ErrStepLimit = errors.New("step limit reached")

// maxTransitions bounds the phase changes at one age; every stage has fewer
// successors than this.
const maxTransitions = int(stage.Undefined)

// evolution is one trajectory in progress.
type evolution struct {
	p     Parameters
	model *phase.Model
	ph    phase.Phase
	s     star.State
	steps int
}

// start validates p and places the star on the ZAMS.
func start(p Parameters) (*evolution, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	model, err := phase.NewModel(p.Metallicity, p.Remnant)
	if err != nil {
		return nil, err
	}
	var s star.State
	s.Stage = stage.MS
	s.Mass = p.Mass
	s.MZAMS = p.Mass
	s.Metallicity = p.Metallicity
	ms := model.MainSequence()
	if s, err = ms.Compute(s, 0); err != nil {
		return nil, fmt.Errorf("zams: %w", err)
	}
	if s, err = rotation.InitialiseAtZAMS(s, p.InitialSpin); err != nil {
		return nil, err
	}
	return &evolution{p: p, model: model, ph: ms, s: s}, nil
}

// finished reports whether the trajectory has reached its end.
func (e *evolution) finished() bool {
	return e.s.Stage.IsTerminal() || e.s.Mass <= 0 || e.s.Age >= e.p.MaxAge
}

// step advances the star by one timestep and hands it over to the next phase
// when the current one is done. ok is false once the trajectory is over.
func (e *evolution) step() (pt star.TrackPoint, ok bool, err error) {
	if e.finished() {
		return pt, false, nil
	}
	if e.steps >= e.p.Step.MaxSteps {
		return pt, false, ErrStepLimit
	}
	e.steps++
	s := e.s
	if s.MassLossRate, err = wind.Compute(s.Point(), e.p.Wind); err != nil {
		return pt, false, err
	}
	jdot, err := rotation.AngularMomentumLossRate(s)
	if err != nil {
		return pt, false, err
	}
	dt, err := ComputeTimestep(e.ph, s, e.p, e.p.MaxAge)
	if err != nil {
		return pt, false, err
	}
	if !(dt > 0) {
		return pt, false, quantity.Runtimef("evolve", "non-positive timestep %g for %s at %g Myr", dt, s.Stage, s.Age)
	}

	next := s
	next.DeltaT = dt
	next.Age = s.Age + dt
	if dt >= e.p.MaxAge-s.Age {
		next.Age = e.p.MaxAge
	}
	next.Mass = s.Mass - s.MassLossRate*1e6*dt
	next.AngularMomentum = rotation.Advance(s.AngularMomentum, jdot, dt)
	target := s.EffectiveAge + dt
	if _, end := e.ph.Span(s); target > end {
		target = end
	}
	if next, err = e.ph.Compute(next, target); err != nil {
		return pt, false, fmt.Errorf("%s at %g Myr: %w", s.Stage, next.Age, err)
	}
	if next.AngularVelocity, err = rotation.AngularVelocity(next); err != nil {
		return pt, false, err
	}
	e.s = next

	for i := 0; e.ph.Done(e.s); i++ {
		if i == maxTransitions {
			return pt, false, fmt.Errorf("%s at %g Myr: no stable successor phase", e.s.Stage, e.s.Age)
		}
		if err := e.transition(); err != nil {
			return pt, false, err
		}
	}
	return e.s.Point(), true, nil
}

// transition enters the successor phase. Spin carries over at constant
// angular velocity except for newborn neutron stars and black holes.
func (e *evolution) transition() error {
	omega := e.s.AngularVelocity
	s, ph, err := e.ph.Next(e.s)
	if err != nil {
		return fmt.Errorf("%s at %g Myr: %w", e.s.Stage, e.s.Age, err)
	}
	switch {
	case s.Stage == stage.NS || s.Stage == stage.BH:
		if s, err = rotation.InitialiseAtNSOrBH(s); err != nil {
			return err
		}
	default:
		s.AngularMomentum = rotation.MomentOfInertia(s) * omega
		s.AngularVelocity = omega
		if s.AngularMomentum == 0 {
			s.AngularVelocity = 0
		}
	}
	e.s, e.ph = s, ph
	return nil
}

// Run evolves p and calls emit for every track point in age order, starting
// with the ZAMS. It stops at MaxAge, at a terminal remnant, when emit fails or
// when ctx is cancelled.
func Run(ctx context.Context, p Parameters, emit func(star.TrackPoint) error) error {
	e, err := start(p)
	if err != nil {
		return err
	}
	if err := emit(e.s.Point()); err != nil {
		return err
	}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		pt, ok, err := e.step()
		if err != nil || !ok {
			return err
		}
		if err := emit(pt); err != nil {
			return err
		}
	}
}

// Trajectory returns the track points of p as a lazy sequence. On failure it
// yields a zero point with the error once and stops.
//
// An iteration cannot be resumed once it stops. Every new range over the
// sequence evolves the star again from the ZAMS and yields the same points.
func Trajectory(p Parameters) iter.Seq2[star.TrackPoint, error] {
	return func(yield func(star.TrackPoint, error) bool) {
		e, err := start(p)
		if err != nil {
			yield(star.TrackPoint{}, err)
			return
		}
		if !yield(e.s.Point(), nil) {
			return
		}
		for {
			pt, ok, err := e.step()
			if err != nil {
				yield(star.TrackPoint{}, err)
				return
			}
			if !ok || !yield(pt, nil) {
				return
			}
		}
	}
}

// Collect materialises the trajectory of p. On failure it returns the points
// produced so far together with the error.
func Collect(p Parameters) ([]star.TrackPoint, error) {
	var out []star.TrackPoint
	for pt, err := range Trajectory(p) {
		if err != nil {
			return out, err
		}
		out = append(out, pt)
	}
	return out, nil
}
