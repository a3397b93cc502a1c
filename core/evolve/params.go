// core/evolve/params.go
package evolve

import (
	"fmt"

	"herd/core/phase"
	"herd/core/quantity"
	"herd/core/stage"
	"herd/core/wind"
)

// Valid ranges of the fits.
var (
	MassRange        = quantity.NewClosed(0.1, 100)
	MetallicityRange = quantity.NewClosed(1e-4, 0.03)
)

// Parameters configure one trajectory.
type Parameters struct {
	Mass        float64 // ZAMS mass, Msun
	Metallicity float64
	InitialSpin float64 // yr^-1, 0 derives it from mass and radius
	MaxAge      float64 // Myr

	Wind    wind.Params
	Remnant phase.Options
	Step    StepPolicy
}

// StepPolicy controls the timestep.
type StepPolicy struct {
	// RelativeTimeStepSizes is the step as a fraction of the phase duration.
	// Stages without an entry use DefaultTimestep.
	RelativeTimeStepSizes map[stage.Stage]float64
	DefaultTimestep       float64
	MinRemnantTimestep    float64 // Myr
	MaxSteps              int
}

// DefaultStepPolicy returns the SSE step sizes.
func DefaultStepPolicy() StepPolicy {
	return StepPolicy{
		RelativeTimeStepSizes: map[stage.Stage]float64{
			stage.MSLM: 0.05,
			stage.MS:   0.05,
			stage.HG:   0.02,
			stage.FGB:  0.01,
			stage.CHeB: 0.01,
			stage.FAGB: 0.01,
			stage.SAGB: 0.01,
			stage.HeMS: 0.02,
			stage.HeGB: 0.01,
		},
		DefaultTimestep:    0.01,
		MinRemnantTimestep: 0.1,
		MaxSteps:           100000,
	}
}

// DefaultParameters returns a solar-metallicity 1 Msun star evolved for
// 13 Gyr with the default wind, remnant and step settings.
func DefaultParameters() Parameters {
	var p Parameters
	p.Mass = 1
	p.Metallicity = 0.02
	p.MaxAge = 13000
	p.Wind = wind.Params{Eta: 0.5, HeWind: 1}
	p.Remnant = phase.DefaultOptions()
	p.Step = DefaultStepPolicy()
	return p
}

// Fraction returns the relative step size for st.
func (sp StepPolicy) Fraction(st stage.Stage) float64 {
	if f, ok := sp.RelativeTimeStepSizes[st]; ok {
		return f
	}
	return sp.DefaultTimestep
}

// Validate checks the parameters before any phase computation.
func (p Parameters) Validate() error {
	if err := MassRange.Validate("Mass", p.Mass); err != nil {
		return err
	}
	if err := MetallicityRange.Validate("Metallicity", p.Metallicity); err != nil {
		return err
	}
	if err := quantity.NotPositive(p.MaxAge, "MaxAge"); err != nil {
		return err
	}
	if err := quantity.Negative(p.InitialSpin, "InitialSpin"); err != nil {
		return err
	}
	if err := p.Wind.Validate(); err != nil {
		return err
	}
	if err := quantity.NotPositive(p.Remnant.MaxNSMass, "MaxNSMass"); err != nil {
		return err
	}
	return p.Step.Validate()
}

// Validate checks that every step size is positive.
func (sp StepPolicy) Validate() error {
	for _, st := range stage.All() {
		if f, ok := sp.RelativeTimeStepSizes[st]; ok {
			if err := quantity.NotPositive(f, fmt.Sprintf("RelativeTimeStepSizes[%s]", st)); err != nil {
				return err
			}
		}
	}
	if err := quantity.NotPositive(sp.DefaultTimestep, "DefaultTimestep"); err != nil {
		return err
	}
	if err := quantity.NotPositive(sp.MinRemnantTimestep, "MinRemnantTimestep"); err != nil {
		return err
	}
	if sp.MaxSteps <= 0 {
		return quantity.NewPreconditionError("MaxSteps", ">0", float64(sp.MaxSteps))
	}
	return nil
}
