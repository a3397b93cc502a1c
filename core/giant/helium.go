// core/giant/helium.go
package giant

import "math"

// HeliumMSLifetime is t_HeMS for a helium star of mass m (eq. 79), Myr.
func HeliumMSLifetime(m float64) float64 {
	return (0.4129 + 18.81*math.Pow(m, 4) + 1.853*math.Pow(m, 6)) / math.Pow(m, 6.5)
}

// HeliumZAMSLuminosity is L_ZHe (eq. 77).
func HeliumZAMSLuminosity(m float64) float64 {
	return 15262 * math.Pow(m, 10.25) /
		(math.Pow(m, 9) + 29.54*math.Pow(m, 7.5) + 31.18*math.Pow(m, 6) + 0.0469)
}

// HeliumZAMSRadius is R_ZHe (eq. 78).
func HeliumZAMSRadius(m float64) float64 {
	return 0.2391 * math.Pow(m, 4.6) / (math.Pow(m, 4) + 0.162*m*m*m + 0.0065)
}

// HeliumMSLuminosity is the helium main-sequence luminosity at tau (eq. 80).
func HeliumMSLuminosity(m, tau float64) float64 {
	alpha := math.Max(0, 0.85-0.08*m)
	return HeliumZAMSLuminosity(m) * (1 + 0.45*tau + alpha*tau*tau)
}

// HeliumMSRadius is the helium main-sequence radius at tau (eq. 81).
func HeliumMSRadius(m, tau float64) float64 {
	beta := math.Max(0, 0.4-0.22*math.Log10(m))
	return HeliumZAMSRadius(m) * (1 + beta*tau - beta*math.Pow(tau, 6))
}

// HeliumGiantRadius returns the radius of an evolved helium star of mass m
// and luminosity l, where lTHe is its luminosity at the end of the helium
// main sequence (eqs. 85-87). giant reports whether the convective giant
// solution applies.
func HeliumGiantRadius(m, l, lTHe float64) (r float64, giant bool) {
	lambda := 500 * (2 + math.Pow(m, 5)) / math.Pow(m, 2.5)
	r1 := HeliumZAMSRadius(m)*math.Pow(l/lTHe, 0.2) +
		0.02*(math.Exp(l/lambda)-math.Exp(lTHe/lambda))
	r2 := 0.08 * math.Pow(l, 0.75)
	if r2 < r1 {
		return r2, true
	}
	return r1, false
}
