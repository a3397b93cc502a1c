// core/landmark/critical.go
package landmark

import "herd/core/fit"

// CriticalMasses are the metallicity-dependent mass thresholds (Msun).
//
//	Mhook: lowest mass with a main-sequence hook
//	MHeF:  highest mass that ignites helium degenerately (helium flash)
//	MFGB:  highest mass that ignites helium on the giant branch
type CriticalMasses struct {
	Mhook float64
	MHeF  float64
	MFGB  float64
}

// ComputeCriticalMasses evaluates eqs. 1-3 of Hurley et al. (2000).
// The MFGB denominator uses 1e-4 in place of 0.0012, as the SSE reference code does.
func ComputeCriticalMasses(z float64) (CriticalMasses, error) {
	zeta, err := metallicity(z)
	if err != nil {
		return CriticalMasses{}, err
	}
	return criticalMasses(z, zeta), nil
}

func criticalMasses(z, zeta float64) CriticalMasses {
	zp := fit.Powers(3, zeta)
	rz := z / fit.SolarZ
	return CriticalMasses{
		Mhook: fit.InnerProduct([]float64{1.0185, 0.16015, 0.0892}, zp),
		MHeF:  fit.InnerProduct([]float64{1.995, 0.25, 0.087}, zp),
		MFGB:  fit.BXhC(rz, 13.048, 0.06) / fit.ApBXhC(rz, 1, 1e-4, -1.27),
	}
}

// BelowHook reports whether m evolves as a low-mass main-sequence star
// (fully or mostly convective, no hook).
func (c CriticalMasses) BelowHook(m float64) bool {
	return m < c.Mhook-0.3
}

