// core/landmark/set.go
package landmark

import (
	"herd/core/giant"
	"herd/core/quantity"
)

// Set holds every landmark's metallicity dependents for one Z.
// It is read-only after construction and safe for concurrent use.
type Set struct {
	Z        float64
	Zeta     float64
	Critical CriticalMasses
	ZAMS     *ZeroAgeMainSequence
	TMS      *TerminalMainSequence
	BGB      *BaseOfGiantBranch
	HeI      *HeliumIgnition
	GB       *GiantBranchRadius
}

// NewSet computes the metallicity dependents of all landmarks.
func NewSet(z float64) (*Set, error) {
	zeta, err := metallicity(z)
	if err != nil {
		return nil, err
	}
	tms, err := NewTerminalMainSequence(z)
	if err != nil {
		return nil, err
	}
	hei, err := NewHeliumIgnition(z)
	if err != nil {
		return nil, err
	}
	return &Set{
		Z:        z,
		Zeta:     zeta,
		Critical: criticalMasses(z, zeta),
		ZAMS:     tms.zams,
		TMS:      tms,
		BGB:      tms.bgb,
		HeI:      hei,
		GB:       tms.bgb.gb,
	}, nil
}

// Track is every landmark of one mass.
type Track struct {
	Mass float64

	LZAMS, RZAMS float64

	THook, TMS, LTMS, RTMS float64
	TBGB, LBGB, RBGB       float64
	THeI, LHeI, RHeI       float64

	McTMS, McBGB, McHeI, McBAGB float64

	// Relation is the giant-branch relation of Mass, and GB its timing
	// anchored at the base of the giant branch.
	Relation giant.Relation
	GB       giant.Timing
}

// Track evaluates every landmark for mass m.
func (s *Set) Track(m float64) (Track, error) {
	if err := quantity.NotPositive(m, "Mass"); err != nil {
		return Track{}, err
	}
	zams, err := s.ZAMS.MassDependents(m)
	if err != nil {
		return Track{}, err
	}
	tms, err := s.TMS.MassDependents(m)
	if err != nil {
		return Track{}, err
	}
	bgb, err := s.BGB.MassDependents(m)
	if err != nil {
		return Track{}, err
	}
	hei, err := s.HeI.MassDependents(m)
	if err != nil {
		return Track{}, err
	}
	_, tHook := s.TMS.timescales(m)
	rel := giant.Hydrogen(m, s.Zeta, s.Critical.MHeF)
	tr := Track{
		Mass:     m,
		LZAMS:    zams.Luminosity,
		RZAMS:    zams.Radius,
		THook:    tHook,
		TMS:      tms.Age,
		LTMS:     tms.Luminosity,
		RTMS:     tms.Radius,
		TBGB:     bgb.Age,
		LBGB:     bgb.Luminosity,
		RBGB:     bgb.Radius,
		THeI:     hei.Age,
		LHeI:     hei.Luminosity,
		RHeI:     hei.Radius,
		McBGB:    s.coreMassBGB(m),
		McHeI:    s.HeI.coreMass(m),
		McBAGB:   giant.CoreMassBAGB(m),
		Relation: rel,
		GB:       rel.Timing(giant.HydrogenRate(m), bgb.Age, bgb.Luminosity),
	}
	tr.McTMS = giant.CoreMassTMS(m, tr.McBGB)
	return tr, nil
}

// coreMassBGB is the core mass at the base of the giant branch (eq. 44).
func (s *Set) coreMassBGB(m float64) float64 {
	mHeF := s.Critical.MHeF
	if m < mHeF {
		return giant.Hydrogen(m, s.Zeta, mHeF).CoreMass(s.BGB.luminosity(m))
	}
	rel := giant.Hydrogen(mHeF, s.Zeta, mHeF)
	return giant.ScaleAboveHeF(m, mHeF, rel.CoreMass(s.BGB.luminosity(mHeF)))
}

// Rg returns the giant-branch radius for mass m at luminosity l.
func (s *Set) Rg(m, l float64) (float64, error) {
	return s.GB.Compute(m, l)
}
