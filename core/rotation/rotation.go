// core/rotation/rotation.go
// Spin evolution of single stars (Hurley, Tout & Pols 2002, section 2.4).
// Angular momentum J is in Msun Rsun^2 yr^-1 and angular velocity in yr^-1.

package rotation

import (
	"math"

	"herd/core/quantity"
	"herd/core/stage"
	"herd/core/star"
)

// RemnantSpin is the birth angular velocity of neutron stars and black holes.
const RemnantSpin = 2e8

// InitialAngularVelocity is the ZAMS spin of a star of mass m and radius r
// from the Lang (1992) equatorial velocity fit (eqs. 107-108).
func InitialAngularVelocity(m, r float64) (float64, error) {
	if err := quantity.NotPositive(m, "Mass"); err != nil {
		return 0, err
	}
	if err := quantity.NotPositive(r, "Radius"); err != nil {
		return 0, err
	}
	v := 330 * math.Pow(m, 3.3) / (15 + math.Pow(m, 3.45)) // km/s
	return 45.35 * v / r, nil
}

// InitialiseAtZAMS sets the spin of a zero-age star. omega = 0 selects the
// mass-dependent default.
func InitialiseAtZAMS(s star.State, omega float64) (star.State, error) {
	if s.Age > 0 {
		return s, quantity.NewPreconditionError("Age", "0", s.Age)
	}
	if err := s.Validate(); err != nil {
		return s, err
	}
	if err := quantity.Negative(omega, "AngularVelocity"); err != nil {
		return s, err
	}
	if omega == 0 {
		var err error
		if omega, err = InitialAngularVelocity(s.Mass, s.Radius); err != nil {
			return s, err
		}
	}
	return spinUp(s, omega), nil
}

// InitialiseAtNSOrBH sets the birth spin of a compact remnant.
func InitialiseAtNSOrBH(s star.State) (star.State, error) {
	if err := s.Validate(); err != nil {
		return s, err
	}
	if s.Stage != stage.NS && s.Stage != stage.BH {
		return s, &quantity.PreconditionError{Element: "Stage", Expected: "NS or BH", Actual: s.Stage.String()}
	}
	return spinUp(s, RemnantSpin), nil
}

func spinUp(s star.State, omega float64) star.State {
	s.AngularVelocity = omega
	s.AngularMomentum = MomentOfInertia(s) * omega
	return s
}

// MomentOfInertia is k2 R^2 (M - Mc) + 0.21 Rc^2 Mc (eq. 109).
func MomentOfInertia(s star.State) float64 {
	return s.K2*s.Radius*s.Radius*(s.Mass-s.CoreMass) + 0.21*s.CoreRadius*s.CoreRadius*s.CoreMass
}

// StellarWindLoss is the angular momentum carried away by the wind (eq. 110).
func StellarWindLoss(s star.State) float64 {
	return 2.0 / 3.0 * s.MassLossRate * s.Radius * s.Radius * s.AngularVelocity
}

// MagneticBrakingLoss is the braking by a magnetised wind from a convective
// envelope (eq. 111). Remnants and stars of 0.35 Msun or less are exempt.
func MagneticBrakingLoss(p star.TrackPoint) float64 {
	if p.Stage.IsRemnant() || p.Mass <= 0.35 {
		return 0
	}
	return 5.83e-16 * p.EnvelopeMass / p.Mass * math.Pow(p.Radius*p.AngularVelocity, 3)
}

// AngularMomentumLossRate is dJ/dt in Msun Rsun^2 yr^-2.
func AngularMomentumLossRate(s star.State) (float64, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	return StellarWindLoss(s) + MagneticBrakingLoss(s.TrackPoint), nil
}

// AngularVelocity is J / I for the current structure of s.
func AngularVelocity(s star.State) (float64, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if s.AngularMomentum == 0 {
		return 0, nil
	}
	i := MomentOfInertia(s)
	if !(i > 0) {
		return 0, quantity.Runtimef("rotation", "moment of inertia %g is not positive", i)
	}
	return s.AngularMomentum / i, nil
}

// Advance integrates J explicitly over dt Myr at the loss rate jdot (per yr).
// J never becomes negative.
func Advance(j, jdot, dt float64) float64 {
	return math.Max(0, j-jdot*1e6*dt)
}
