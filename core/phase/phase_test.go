package phase

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"herd/core/quantity"
	"herd/core/stage"
	"herd/core/star"
)

func near(t *testing.T, what string, got, want, rel float64) {
	t.Helper()
	if math.Abs(got-want) > rel*math.Abs(want) {
		t.Errorf("%s = %.12g, want %.12g (rel %g)", what, got, want, rel)
	}
}

func mustModel(t *testing.T, z float64, opt Options) *Model {
	t.Helper()
	m, err := NewModel(z, opt)
	if err != nil {
		t.Fatalf("NewModel(%g): %v", z, err)
	}
	return m
}

func zams(t *testing.T, m *Model, mass float64) star.State {
	t.Helper()
	s := star.State{}
	s.Stage = stage.MS
	s.Mass = mass
	s.MZAMS = mass
	s.Metallicity = m.Set.Z
	s, err := m.MainSequence().Compute(s, 0)
	if err != nil {
		t.Fatalf("ZAMS of %g Msun: %v", mass, err)
	}
	return s
}

// transition is one phase change seen while walking a track.
type transition struct {
	from, to star.State
}

// walk evolves a star without mass loss by jumping to the end of every
// phase until it becomes a remnant.
func walk(t *testing.T, m *Model, mass float64) (star.State, []transition) {
	t.Helper()
	s := zams(t, m, mass)
	var ph Phase = m.MainSequence()
	var out []transition
	for i := 0; !s.Stage.IsRemnant(); i++ {
		if i > int(stage.Undefined) {
			t.Fatalf("%g Msun: too many phases", mass)
		}
		_, end := ph.Span(s)
		next, err := ph.Compute(s, end)
		if err != nil {
			t.Fatalf("%g Msun %s: %v", mass, s.Stage, err)
		}
		if !ph.Done(next) {
			t.Fatalf("%g Msun %s: not done at the end of its span", mass, next.Stage)
		}
		after, nph, err := ph.Next(next)
		if err != nil {
			t.Fatalf("%g Msun %s: Next: %v", mass, next.Stage, err)
		}
		out = append(out, transition{next, after})
		s, ph = after, nph
	}
	return s, out
}

func stages(tr []transition) []string {
	out := []string{tr[0].from.Stage.String()}
	for _, x := range tr {
		out = append(out, x.to.Stage.String())
	}
	return out
}

func TestNewModel_Preconditions(t *testing.T) {
	if _, err := NewModel(0, DefaultOptions()); err == nil {
		t.Error("z = 0 accepted")
	}
	opt := DefaultOptions()
	opt.MaxNSMass = 0
	_, err := NewModel(0.02, opt)
	var pe *quantity.PreconditionError
	if !errors.As(err, &pe) || pe.Element != "MaxNSMass" {
		t.Fatalf("MaxNSMass = 0: got %v", err)
	}
}

func TestDefaultMaxNSMass(t *testing.T) {
	if DefaultMaxNSMass(true) != 3 || DefaultMaxNSMass(false) != 1.8 {
		t.Errorf("DefaultMaxNSMass = %g/%g", DefaultMaxNSMass(true), DefaultMaxNSMass(false))
	}
	if got := DefaultOptions().MaxNSMass; got != 3 {
		t.Errorf("DefaultOptions().MaxNSMass = %g", got)
	}
}

func TestMainSequence_ZAMSAndTMS(t *testing.T) {
	m := mustModel(t, 0.02, DefaultOptions())
	s := zams(t, m, 1)
	if s.Stage != stage.MS {
		t.Errorf("1 Msun: stage %s, want MS", s.Stage)
	}
	near(t, "LZAMS", s.Luminosity, 0.6977165691, 1e-8)
	near(t, "RZAMS", s.Radius, 0.8882494503, 1e-8)
	near(t, "TZAMS", s.Temperature, 5622.401846, 1e-8)
	near(t, "TMS", s.TMS, 11003.13025, 1e-8)
	if s.CoreMass != 0 || s.EffectiveAge != 0 {
		t.Errorf("ZAMS core %g age %g", s.CoreMass, s.EffectiveAge)
	}
	if !(s.EnvelopeMass > 0 && s.EnvelopeMass <= s.Mass) {
		t.Errorf("envelope mass %g", s.EnvelopeMass)
	}

	end, err := m.MainSequence().Compute(s, s.TMS)
	if err != nil {
		t.Fatal(err)
	}
	near(t, "LTMS", end.Luminosity, 2.119699664, 1e-8)
	near(t, "RTMS", end.Radius, 1.623977642, 1e-8)
	if !m.MainSequence().Done(end) {
		t.Error("main sequence not done at tMS")
	}
	if m.MainSequence().Done(s) {
		t.Error("main sequence done at the ZAMS")
	}
}

func TestMainSequence_LowMassStage(t *testing.T) {
	m := mustModel(t, 0.02, DefaultOptions())
	// At Z = 0.02, Mhook = 1.0185 and the low-mass limit is Mhook - 0.3.
	tests := []struct {
		mass float64
		want stage.Stage
	}{
		{0.5, stage.MSLM},
		{0.718, stage.MSLM},
		{0.72, stage.MS},
		{1, stage.MS},
	}
	for _, tt := range tests {
		if got := zams(t, m, tt.mass).Stage; got != tt.want {
			t.Errorf("%g Msun: stage %s, want %s", tt.mass, got, tt.want)
		}
	}
}

func TestMainSequence_AboveHook(t *testing.T) {
	m := mustModel(t, 0.02, DefaultOptions())
	s := zams(t, m, 5)
	if s.Stage != stage.MS {
		t.Errorf("5 Msun stage %s, want MS", s.Stage)
	}
	near(t, "LZAMS", s.Luminosity, 530.1299617, 1e-8)
	near(t, "RZAMS", s.Radius, 2.635593059, 1e-8)
}

func TestMainSequence_TargetOutsideSpan(t *testing.T) {
	m := mustModel(t, 0.02, DefaultOptions())
	s := zams(t, m, 1)
	for _, target := range []float64{-1, s.TMS * 1.01} {
		_, err := m.MainSequence().Compute(s, target)
		var pe *quantity.PreconditionError
		if !errors.As(err, &pe) || pe.Element != "EffectiveAge" {
			t.Errorf("target %g: got %v", target, err)
		}
	}
}

func TestMainSequence_MassLossRescalesAge(t *testing.T) {
	m := mustModel(t, 0.02, DefaultOptions())
	s := zams(t, m, 5)
	half, err := m.MainSequence().Compute(s, s.TMS/2)
	if err != nil {
		t.Fatal(err)
	}
	lighter := half
	lighter.Mass = 4.5
	got, err := m.MainSequence().Compute(lighter, half.EffectiveAge)
	if err != nil {
		t.Fatal(err)
	}
	// The fraction of the lifetime already spent is preserved.
	near(t, "tau", got.EffectiveAge/got.TMS, half.EffectiveAge/half.TMS, 1e-12)
	if !(got.TMS > half.TMS) {
		t.Errorf("lifetime of 4.5 Msun %g not longer than of 5 Msun %g", got.TMS, half.TMS)
	}
}

func TestFor_UndefinedStage(t *testing.T) {
	m := mustModel(t, 0.02, DefaultOptions())
	s := zams(t, m, 1)
	s.Stage = stage.Undefined
	_, err := For(s, m)
	var pe *quantity.PreconditionError
	if !errors.As(err, &pe) || pe.Element != "Stage" {
		t.Fatalf("got %v", err)
	}
}

func TestFor_StageOfPhase(t *testing.T) {
	m := mustModel(t, 0.02, DefaultOptions())
	s := zams(t, m, 1)
	for _, st := range stage.All() {
		s.Stage = st
		s.M0 = 1
		p, err := For(s, m)
		if err != nil {
			t.Fatalf("%s: %v", st, err)
		}
		want := st
		switch st {
		case stage.MSLM:
			want = stage.MS
		case stage.HeHG:
			want = stage.HeGB
		}
		if p.Stage() != want {
			t.Errorf("For(%s).Stage() = %s, want %s", st, p.Stage(), want)
		}
	}
}

func TestWalk_Sequences(t *testing.T) {
	m := mustModel(t, 0.02, DefaultOptions())
	tests := []struct {
		mass  float64
		want  []string
		final stage.Stage
	}{
		{1, []string{"MS", "HG", "FGB", "CHeB", "FAGB", "SAGB", "COWD"}, stage.COWD},
		{5, []string{"MS", "HG", "FGB", "CHeB", "FAGB", "SAGB", "MSn"}, stage.MSn},
		{20, []string{"MS", "HG", "CHeB", "FAGB", "BH"}, stage.BH},
	}
	for _, tt := range tests {
		final, tr := walk(t, m, tt.mass)
		if diff := cmp.Diff(tt.want, stages(tr)); diff != "" {
			t.Errorf("%g Msun stages (-want +got):\n%s", tt.mass, diff)
		}
		if final.Stage != tt.final {
			t.Errorf("%g Msun ends as %s, want %s", tt.mass, final.Stage, tt.final)
		}
		if err := final.Validate(); err != nil && final.Stage != stage.MSn {
			t.Errorf("%g Msun final state: %v", tt.mass, err)
		}
	}
}

func TestWalk_Continuity(t *testing.T) {
	for _, z := range []float64{0.001, 0.02} {
		m := mustModel(t, z, DefaultOptions())
		for _, mass := range []float64{1, 3, 5, 20} {
			_, trs := walk(t, m, mass)
			for _, tr := range trs {
				from, to := tr.from, tr.to
				if to.Stage.IsRemnant() {
					continue
				}
				// The helium flash moves the star to the horizontal branch.
				if from.Stage == stage.FGB && from.M0 < m.Set.Critical.MHeF {
					continue
				}
				what := from.Stage.String() + "->" + to.Stage.String()
				near(t, what+" L", to.Luminosity, from.Luminosity, 1e-9)
				near(t, what+" R", to.Radius, from.Radius, 1e-9)
				if to.EffectiveAge < from.EffectiveAge && to.Stage < stage.HeMS {
					t.Errorf("%s: effective age went back from %g to %g", what, from.EffectiveAge, to.EffectiveAge)
				}
			}
		}
	}
}

func TestHeliumFlash_ZeroAgeHorizontalBranch(t *testing.T) {
	m := mustModel(t, 0.02, DefaultOptions())
	_, trs := walk(t, m, 1)
	for _, tr := range trs {
		if tr.from.Stage != stage.FGB {
			continue
		}
		want := m.zeroAgeHorizontalBranch(tr.from.Mass, tr.from.CoreMass)
		near(t, "L_ZAHB", tr.to.Luminosity, want, 1e-12)
		near(t, "L_ZAHB", want, 30.5275, 1e-5)
		if tr.to.Stage != stage.CHeB {
			t.Errorf("flash leads to %s", tr.to.Stage)
		}
		return
	}
	t.Fatal("no FGB exit")
}

func TestEnvelopeLoss_Strip(t *testing.T) {
	m := mustModel(t, 0.02, DefaultOptions())
	tests := []struct {
		name       string
		degenerate bool
		want       stage.Stage
	}{
		{"degenerate core", true, stage.HeWD},
		{"non-degenerate core", false, stage.HeMS},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := zams(t, m, 3)
			s.Stage = stage.HG
			s.CoreMass = 0.5
			s.Mass = 0.5
			got, p, err := strip(s, m, tt.degenerate, 0.5)
			if err != nil {
				t.Fatal(err)
			}
			if got.Stage != tt.want || p.Stage() != tt.want {
				t.Fatalf("stage %s / phase %s, want %s", got.Stage, p.Stage(), tt.want)
			}
			if tt.want == stage.HeMS {
				near(t, "MZHe", got.MZHe, 0.5, 1e-12)
				near(t, "tau", got.EffectiveAge/got.THeMS, 0.5, 1e-12)
			}
		})
	}
}

func TestCompactRemnant(t *testing.T) {
	hurley := Options{MaxNSMass: 1.8}
	belczynski := Options{UseBelczynskiMass: true, MaxNSMass: 3}
	tests := []struct {
		name    string
		opt     Options
		m, mcCO float64
		stage   stage.Stage
		mass    float64
	}{
		{"Hurley NS", hurley, 20, 5, stage.NS, 1.62},
		{"Hurley BH", hurley, 20, 10, stage.BH, 2.07},
		{"Belczynski NS", belczynski, 20, 2, stage.NS, 1.2696820599903922},
		{"Belczynski fallback BH", belczynski, 15, 6, stage.BH, 6.6162528},
		{"Belczynski direct collapse", belczynski, 20, 10, stage.BH, 18},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, mass := compactRemnant(tt.opt, tt.m, tt.mcCO)
			if st != tt.stage {
				t.Errorf("stage %s, want %s", st, tt.stage)
			}
			near(t, "mass", mass, tt.mass, 1e-9)
		})
	}
}

func TestWhiteDwarfCooling(t *testing.T) {
	mestel := mustModel(t, 0.02, Options{MaxNSMass: 1.8})
	modified := mustModel(t, 0.02, DefaultOptions())
	near(t, "Mestel COWD", mestel.whiteDwarfLuminosity(stage.COWD, 0.6, 1000), 0.00011343534939761888, 1e-9)
	near(t, "modified COWD", modified.whiteDwarfLuminosity(stage.COWD, 0.6, 1000), 0.00044447319351533616, 1e-9)
	// Helium white dwarfs keep plain Mestel cooling under either option.
	near(t, "Mestel HeWD", mestel.whiteDwarfLuminosity(stage.HeWD, 0.4, 100), 0.01207129931252022, 1e-9)
	near(t, "modified HeWD", modified.whiteDwarfLuminosity(stage.HeWD, 0.4, 100), 0.01207129931252022, 1e-9)
	near(t, "modified ONWD late", modified.whiteDwarfLuminosity(stage.ONWD, 1.2, 10000), 2.8991287627870002e-05, 1e-9)

	// Cooling is monotone across the 9 Gyr switch.
	prev := math.Inf(1)
	for age := 8000.0; age <= 10000; age += 250 {
		l := modified.whiteDwarfLuminosity(stage.COWD, 0.6, age)
		if !(l < prev) {
			t.Fatalf("L(%g) = %g not below %g", age, l, prev)
		}
		prev = l
	}
}

func TestWhiteDwarfRadius(t *testing.T) {
	near(t, "R(0.6)", whiteDwarfRadius(0.6), 0.012778467098439529, 1e-12)
	if got := whiteDwarfRadius(1.44); got != neutronStarRadius {
		t.Errorf("R(MCh) = %g, want the neutron-star floor %g", got, neutronStarRadius)
	}
	if !(whiteDwarfRadius(0.4) > whiteDwarfRadius(1.0)) {
		t.Error("heavier white dwarfs must be smaller")
	}
}

func TestRemnant_Compute(t *testing.T) {
	m := mustModel(t, 0.02, DefaultOptions())
	base := zams(t, m, 1)

	t.Run("neutron star", func(t *testing.T) {
		s := base
		s.Stage, s.Mass = stage.NS, 1.3
		got, err := (&remnant{m: m, stage: stage.NS}).Compute(s, 1)
		if err != nil {
			t.Fatal(err)
		}
		near(t, "L", got.Luminosity, 0.023822768503928657, 1e-12)
		near(t, "R", got.Radius, neutronStarRadius, 0)
		if got.CoreMass != got.Mass || got.EnvelopeMass != 0 {
			t.Errorf("core %g envelope %g of mass %g", got.CoreMass, got.EnvelopeMass, got.Mass)
		}
	})

	t.Run("black hole", func(t *testing.T) {
		s := base
		s.Stage, s.Mass = stage.BH, 10
		got, err := (&remnant{m: m, stage: stage.BH}).Compute(s, 5)
		if err != nil {
			t.Fatal(err)
		}
		near(t, "R", got.Radius, 10*blackHoleRadius, 1e-12)
		near(t, "L", got.Luminosity, blackHoleLuminosity, 0)
	})

	t.Run("massless remnant", func(t *testing.T) {
		s := base
		s.Stage = stage.MSn
		got, err := (&remnant{m: m, stage: stage.MSn}).Compute(s, 3)
		if err != nil {
			t.Fatal(err)
		}
		if got.Mass != 0 || got.Luminosity != 0 || got.Radius != 0 || got.EffectiveAge != 3 {
			t.Errorf("MSn not empty: %+v", got.TrackPoint)
		}
	})

	t.Run("negative cooling age", func(t *testing.T) {
		s := base
		s.Stage, s.Mass = stage.COWD, 0.6
		_, err := (&remnant{m: m, stage: stage.COWD}).Compute(s, -1)
		var pe *quantity.PreconditionError
		if !errors.As(err, &pe) {
			t.Fatalf("got %v", err)
		}
	})

	t.Run("no successor", func(t *testing.T) {
		p := &remnant{m: m, stage: stage.COWD}
		if p.Done(base) {
			t.Error("remnant phases never end")
		}
		_, _, err := p.Next(base)
		var re *quantity.RuntimeError
		if !errors.As(err, &re) {
			t.Fatalf("got %v", err)
		}
	})
}
