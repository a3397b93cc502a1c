package landmark

import (
	"errors"
	"math"
	"testing"

	"herd/core/quantity"
)

func near(t *testing.T, what string, got, want, rel float64) {
	t.Helper()
	if math.Abs(got-want) > rel*math.Abs(want) {
		t.Errorf("%s = %.10g, want %.10g (rel %g)", what, got, want, rel)
	}
}

func mustSet(t *testing.T, z float64) *Set {
	t.Helper()
	s, err := NewSet(z)
	if err != nil {
		t.Fatalf("NewSet(%g): %v", z, err)
	}
	return s
}

func TestCriticalMasses_Solar(t *testing.T) {
	c, err := ComputeCriticalMasses(0.02)
	if err != nil {
		t.Fatal(err)
	}
	near(t, "Mhook", c.Mhook, 1.0185, 1e-12)
	near(t, "MHeF", c.MHeF, 1.995, 1e-12)
	near(t, "MFGB", c.MFGB, 13.046695330466953, 1e-9)
	if !c.BelowHook(0.7) || c.BelowHook(0.75) {
		t.Errorf("BelowHook threshold wrong for Mhook=%g", c.Mhook)
	}
}

func TestTrack_ReferenceValues(t *testing.T) {
	tests := []struct {
		z, m                                float64
		lz, rz, tms, thook, tbgb, ltms, rtms float64
		lbgb, lhei, thei, mcBGB, mcHeI      float64
	}{
		{0.02, 1, 0.6977165691, 0.8882494503, 11003.13025, 9323.920533, 11582.24236, 2.119699664, 1.623977642,
			2.515427406, 2751.621903, 12325.10852, 0.1485144227, 0.4767215593},
		{0.02, 5, 530.1299617, 2.635593059, 104.0161573, 104.0161573, 104.4443024, 1508.863838, 6.141332831,
			860.6607814, 3130.833838, 104.669029, 0.8603521938, 0.8635940841},
		{0.02, 20, 42845.23355, 5.998954816, 8.675435042, 8.675435042, 8.690116912, 123278.7186, 16.13164812,
			73395.5551, 133189.3938, 8.690116912, 5.599730425, 5.599742249},
		{0.001, 1, 1.456201854, 0.8945383651, 6177.65722, 5239.293272, 6303.731857, 6.953104703, 2.530098575,
			7.624952217, 2288.766968, 6617.309813, 0.1911228865, 0.4945460883},
		{0.001, 20, 40939.6702, 4.454247399, 9.96297358, 9.96297358, 9.980445433, 119706.1426, 10.76241377,
			167471.0821, 147474.8282, 9.980445433, 5.599736232, 5.59975039},
	}
	const rel = 1e-7
	for _, tt := range tests {
		s := mustSet(t, tt.z)
		tr, err := s.Track(tt.m)
		if err != nil {
			t.Fatalf("Track(%g): %v", tt.m, err)
		}
		near(t, "LZAMS", tr.LZAMS, tt.lz, rel)
		near(t, "RZAMS", tr.RZAMS, tt.rz, rel)
		near(t, "TMS", tr.TMS, tt.tms, rel)
		near(t, "THook", tr.THook, tt.thook, rel)
		near(t, "TBGB", tr.TBGB, tt.tbgb, rel)
		near(t, "LTMS", tr.LTMS, tt.ltms, rel)
		near(t, "RTMS", tr.RTMS, tt.rtms, rel)
		near(t, "LBGB", tr.LBGB, tt.lbgb, rel)
		near(t, "LHeI", tr.LHeI, tt.lhei, rel)
		near(t, "THeI", tr.THeI, tt.thei, 1e-6)
		near(t, "McBGB", tr.McBGB, tt.mcBGB, 1e-6)
		near(t, "McHeI", tr.McHeI, tt.mcHeI, 1e-6)
	}
}

func TestTrack_AgesIncreasing(t *testing.T) {
	for _, z := range []float64{1e-4, 1e-3, 0.004, 0.01, 0.02, 0.03} {
		s := mustSet(t, z)
		for m := 0.1; m <= 100; m *= 1.2 {
			tr, err := s.Track(m)
			if err != nil {
				t.Fatalf("z=%g m=%g: %v", z, m, err)
			}
			if !(0 < tr.TMS && tr.TMS < tr.TBGB && tr.TBGB <= tr.THeI) {
				t.Errorf("z=%g m=%g: ages not ordered: tMS=%g tBGB=%g tHeI=%g", z, m, tr.TMS, tr.TBGB, tr.THeI)
			}
			if tr.THook > tr.TMS {
				t.Errorf("z=%g m=%g: thook %g > tMS %g", z, m, tr.THook, tr.TMS)
			}
		}
	}
}

func TestHeliumIgnition_ContinuousAtMHeF(t *testing.T) {
	s := mustSet(t, 0.02)
	mHeF := s.Critical.MHeF
	lo, err := s.HeI.Luminosity(mHeF * (1 - 1e-9))
	if err != nil {
		t.Fatal(err)
	}
	hi, err := s.HeI.Luminosity(mHeF)
	if err != nil {
		t.Fatal(err)
	}
	near(t, "LHeI across MHeF", lo, hi, 1e-6)
}

func TestTerminalMainSequence_RadiusBlendContinuous(t *testing.T) {
	tms, err := NewTerminalMainSequence(0.02)
	if err != nil {
		t.Fatal(err)
	}
	for _, edge := range []float64{tms.a17, tms.a17 + 0.1} {
		below, above := tms.radius(edge*(1-1e-10)), tms.radius(edge*(1+1e-10))
		near(t, "RTMS at blend edge", below, above, 1e-6)
	}
}

func TestPreconditions(t *testing.T) {
	if _, err := NewSet(0); err == nil {
		t.Fatal("Z=0 accepted")
	}
	if _, err := NewZeroAgeMainSequence(-0.01); err == nil {
		t.Fatal("negative Z accepted")
	}
	s := mustSet(t, 0.02)
	checks := []struct {
		name string
		call func() error
	}{
		{"ZAMS", func() error { _, err := s.ZAMS.Luminosity(0); return err }},
		{"TMS", func() error { _, err := s.TMS.Age(-1); return err }},
		{"BGB", func() error { _, err := s.BGB.Radius(0); return err }},
		{"HeI", func() error { _, err := s.HeI.Age(0); return err }},
		{"Track", func() error { _, err := s.Track(0); return err }},
		{"GB", func() error { _, err := s.GB.Compute(1, 0); return err }},
	}
	for _, c := range checks {
		t.Run(c.name, func(t *testing.T) {
			var pe *quantity.PreconditionError
			if err := c.call(); !errors.As(err, &pe) {
				t.Fatalf("want PreconditionError, got %v", err)
			}
		})
	}
}

func TestZAMSAgeIsZero(t *testing.T) {
	s := mustSet(t, 0.02)
	if a, err := s.ZAMS.Age(3); err != nil || a != 0 {
		t.Fatalf("ZAMS age = %v, %v", a, err)
	}
}
