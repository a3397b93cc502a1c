// core/giant/cores.go
package giant

import "math"

// MCh is the Chandrasekhar mass.
const MCh = 1.44

// Scaling of the BGB and HeI core masses above MHeF (eq. 44).
const (
	c1 = 9.20925e-5
	c2 = 5.402216
)

// CoreMassBAGB is the helium core mass at the base of the AGB (eq. 66).
func CoreMassBAGB(m float64) float64 {
	return math.Pow(4.36e-4*math.Pow(m, 5.22)+6.84e-2, 0.25)
}

// CoreMassDU is the core mass after second dredge-up (eq. 69).
func CoreMassDU(mcBAGB float64) float64 {
	if mcBAGB <= 0.8 {
		return mcBAGB
	}
	return 0.44*mcBAGB + 0.448
}

// CoreMassSN is the core mass at which a supernova occurs (eq. 75).
func CoreMassSN(mcBAGB float64) float64 {
	return math.Max(MCh, 0.773*mcBAGB-0.35)
}

// ScaleAboveHeF extends a core-mass landmark above MHeF, anchored so that it
// is continuous with mcAtHeF at mHeF and capped by 0.95 Mc,BAGB.
func ScaleAboveHeF(m, mHeF, mcAtHeF float64) float64 {
	c := math.Pow(mcAtHeF, 4) - c1*math.Pow(mHeF, c2)
	return math.Min(0.95*CoreMassBAGB(m), math.Pow(c+c1*math.Pow(m, c2), 0.25))
}

// CoreMassTMS is the core mass at the end of the main sequence, a fraction
// of the BGB core mass (eq. 29).
func CoreMassTMS(m, mcBGB float64) float64 {
	m525 := math.Pow(m, 5.25)
	return (1.586 + m525) / (2.434 + 1.02*m525) * mcBGB
}
