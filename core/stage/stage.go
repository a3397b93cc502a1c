// core/stage/stage.go
// Evolutionary stages in SSE order (Hurley et al. 2000, k = 0..15).
// The order is significant: comparisons such as s < FGB are used throughout.

package stage

import (
	"herd/core/quantity"
)

type Stage int

const (
	MSLM      Stage = iota // deeply or fully convective low-mass MS star
	MS                     // main sequence
	HG                     // Hertzsprung gap
	FGB                    // first giant branch
	CHeB                   // core helium burning
	FAGB                   // early asymptotic giant branch
	SAGB                   // thermally pulsing asymptotic giant branch
	HeMS                   // naked helium star main sequence
	HeHG                   // naked helium star Hertzsprung gap
	HeGB                   // naked helium star giant branch
	HeWD                   // helium white dwarf
	COWD                   // carbon/oxygen white dwarf
	ONWD                   // oxygen/neon white dwarf
	NS                     // neutron star
	BH                     // black hole
	MSn                    // massless remnant
	Undefined
)

var names = [...]string{
	MSLM: "MSLM", MS: "MS", HG: "HG", FGB: "FGB", CHeB: "CHeB",
	FAGB: "FAGB", SAGB: "SAGB", HeMS: "HeMS", HeHG: "HeHG", HeGB: "HeGB",
	HeWD: "HeWD", COWD: "COWD", ONWD: "ONWD", NS: "NS", BH: "BH", MSn: "MSn",
	Undefined: "Undefined",
}

func (s Stage) String() string {
	if s < 0 || s > Undefined {
		return "Undefined"
	}
	return names[s]
}

// Parse maps a stage name (as printed by String) back to a Stage.
func Parse(name string) (Stage, error) {
	for i, n := range names {
		if n == name {
			return Stage(i), nil
		}
	}
	return Undefined, &quantity.PreconditionError{Element: "stage", Expected: "a valid evolution stage", Actual: name}
}

// All lists every defined stage in order, excluding Undefined.
func All() []Stage {
	out := make([]Stage, 0, int(Undefined))
	for s := MSLM; s < Undefined; s++ {
		out = append(out, s)
	}
	return out
}

func (s Stage) IsMS() bool      { return s == MSLM || s == MS }
func (s Stage) IsPreFGB() bool  { return s < FGB }
func (s Stage) IsAGB() bool     { return s == FAGB || s == SAGB }
func (s Stage) IsHeStar() bool  { return s >= HeMS && s <= HeGB }
func (s Stage) IsRemnant() bool { return s >= HeWD && s <= MSn }
func (s Stage) IsWD() bool      { return s >= HeWD && s <= ONWD }

// IsTerminal reports stages after which nothing further evolves.
func (s Stage) IsTerminal() bool { return s == BH || s == MSn }

// MarshalText renders the stage name; used by the wire schema and configs.
func (s Stage) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *Stage) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
