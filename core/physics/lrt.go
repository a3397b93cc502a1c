// core/physics/lrt.go
// Stefan–Boltzmann conversions in solar units.
// L [Lsun] = R^2 [Rsun] * (T/Tsun)^4, T in K.

package physics

import (
	"math"

	"herd/core/quantity"
)

// Luminosity returns L for radius r and temperature t.
func Luminosity(r, t float64) (float64, error) {
	if err := quantity.NotPositive(r, "Radius"); err != nil {
		return 0, err
	}
	if err := quantity.NotPositive(t, "Temperature"); err != nil {
		return 0, err
	}
	x := t / SunTemperature
	x2 := x * x
	return r * r * x2 * x2, nil
}

// Radius returns R for luminosity l and temperature t.
func Radius(l, t float64) (float64, error) {
	if err := quantity.NotPositive(l, "Luminosity"); err != nil {
		return 0, err
	}
	if err := quantity.NotPositive(t, "Temperature"); err != nil {
		return 0, err
	}
	x := t / SunTemperature
	return math.Sqrt(l) / (x * x), nil
}

// Temperature returns the effective temperature for luminosity l and radius r.
func Temperature(l, r float64) (float64, error) {
	if err := quantity.NotPositive(l, "Luminosity"); err != nil {
		return 0, err
	}
	if err := quantity.NotPositive(r, "Radius"); err != nil {
		return 0, err
	}
	return math.Pow(l/(r*r), 0.25) * SunTemperature, nil
}

// EffectiveTemperature is the SSE-calibrated variant used by the evolution
// engine. Inputs must be positive; callers validate upstream.
func EffectiveTemperature(l, r float64) float64 {
	return math.Pow(l/(r*r), 0.25) * SunTemperatureSSE
}
