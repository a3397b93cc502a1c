// core/star/state.go
package star

import (
	"herd/core/quantity"
	"herd/core/stage"
)

// State is everything the driver carries from one step to the next.
// Phases receive it by value and return an updated copy.
//
// EffectiveAge runs on the clock of the current phase: for hydrogen-rich
// stars it is measured against the landmarks of M0, for naked helium stars
// it restarts at the helium ZAMS and for remnants it is the cooling age.
type State struct {
	TrackPoint

	EffectiveAge   float64
	DeltaT         float64
	MassLossRate   float64 // Msun/yr
	K2             float64 // envelope gyration constant
	CoreRadius     float64
	EnvelopeRadius float64
	Rg             float64 // radius the star would have on the giant branch

	MZAMS      float64 // initial mass
	M0         float64 // mass the current phase's landmarks are evaluated at
	MFGB       float64
	MCHeI      float64 // core mass at helium ignition
	MZHe       float64 // mass on the helium ZAMS
	COCoreMass float64

	TMS   float64
	THeMS float64
	LTMS  float64
	RTMS  float64
	RZAMS float64
	LBGB  float64
	LHeI  float64

	// Entry point of the current phase, for phases that evolve away from
	// where they started.
	StartAge        float64
	StartLuminosity float64
	StartRadius     float64
	StartCoreMass   float64
}

// Validate checks a state before it is handed to a physics component.
func (s State) Validate() error {
	if err := s.TrackPoint.Validate(); err != nil {
		return err
	}
	for _, c := range []struct {
		v    float64
		name string
	}{
		{s.EffectiveAge, "EffectiveAge"},
		{s.MassLossRate, "MassLossRate"},
		{s.K2, "K2"},
		{s.CoreRadius, "CoreRadius"},
		{s.DeltaT, "DeltaT"},
	} {
		if err := quantity.Negative(c.v, c.name); err != nil {
			return err
		}
	}
	if s.CoreRadius > s.Radius {
		return quantity.NewPreconditionError("CoreRadius", "<=Radius", s.CoreRadius)
	}
	if err := quantity.NotPositive(s.MZAMS, "MZAMS"); err != nil {
		return err
	}
	if s.Stage >= stage.HeMS && s.Stage <= stage.HeGB {
		if err := quantity.NotPositive(s.MZHe, "MZHe"); err != nil {
			return err
		}
		if err := quantity.NotPositive(s.THeMS, "THeMS"); err != nil {
			return err
		}
	}
	return nil
}

// Point returns the immutable sample of s.
func (s State) Point() TrackPoint { return s.TrackPoint }
