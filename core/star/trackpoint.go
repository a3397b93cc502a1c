// core/star/trackpoint.go
package star

import (
	"herd/core/quantity"
	"herd/core/stage"
)

// TrackPoint is one recorded sample of a star.
// Units: Msun, Rsun, Lsun, K, Myr; angular momentum in Msun Rsun^2 yr^-1,
// angular velocity in yr^-1.
type TrackPoint struct {
	Age             float64
	Stage           stage.Stage
	Mass            float64
	Metallicity     float64
	Luminosity      float64
	Radius          float64
	Temperature     float64
	CoreMass        float64
	EnvelopeMass    float64
	AngularMomentum float64
	AngularVelocity float64
}

// Validate checks the physical consistency of a track point.
// Core and envelope mass may sum to less than the total mass.
func (p TrackPoint) Validate() error {
	checks := []struct {
		v    float64
		name string
	}{
		{p.Mass, "Mass"},
		{p.Metallicity, "Metallicity"},
		{p.Luminosity, "Luminosity"},
		{p.Radius, "Radius"},
		{p.Temperature, "Temperature"},
		{p.Age, "Age"},
		{p.CoreMass, "CoreMass"},
		{p.EnvelopeMass, "EnvelopeMass"},
		{p.AngularMomentum, "AngularMomentum"},
		{p.AngularVelocity, "AngularVelocity"},
	}
	for _, c := range checks {
		if err := quantity.Negative(c.v, c.name); err != nil {
			return err
		}
	}
	if sum := p.CoreMass + p.EnvelopeMass; sum > p.Mass*(1+1e-12) {
		return quantity.NewPreconditionError("CoreMass + EnvelopeMass", "<=Mass", sum)
	}
	if p.Stage == stage.Undefined {
		return &quantity.PreconditionError{Element: "Stage", Expected: "valid stage", Actual: p.Stage.String()}
	}
	return nil
}
