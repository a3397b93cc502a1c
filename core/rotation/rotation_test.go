package rotation

import (
	"errors"
	"math"
	"strings"
	"testing"

	"herd/core/quantity"
	"herd/core/stage"
	"herd/core/star"
)

func zams() star.State {
	s := star.State{MZAMS: 1, K2: 0.1}
	s.Stage = stage.MS
	s.Mass, s.Metallicity, s.Luminosity, s.Radius, s.Temperature = 1, 0.02, 0.7, 0.9, 5600
	s.EnvelopeMass = 0.03
	return s
}

func TestInitialAngularVelocity(t *testing.T) {
	got, err := InitialAngularVelocity(1, 0.9)
	if err != nil {
		t.Fatal(err)
	}
	want := 45.35 * (330.0 / 16) / 0.9
	if math.Abs(got-want) > 1e-12*want {
		t.Fatalf("omega = %g, want %g", got, want)
	}
	if _, err := InitialAngularVelocity(0, 1); err == nil {
		t.Fatal("zero mass accepted")
	}
}

func TestInitialiseAtZAMS(t *testing.T) {
	s, err := InitialiseAtZAMS(zams(), 0)
	if err != nil {
		t.Fatal(err)
	}
	if w, _ := InitialAngularVelocity(1, 0.9); s.AngularVelocity != w {
		t.Errorf("default spin = %g, want %g", s.AngularVelocity, w)
	}
	if want := 0.1 * 0.81 * s.AngularVelocity; math.Abs(s.AngularMomentum-want) > 1e-12*want {
		t.Errorf("J = %g, want %g", s.AngularMomentum, want)
	}
	if w, err := AngularVelocity(s); err != nil || math.Abs(w-s.AngularVelocity) > 1e-9*w {
		t.Errorf("J/I = %g, %v", w, err)
	}

	custom, err := InitialiseAtZAMS(zams(), 5)
	if err != nil || custom.AngularVelocity != 5 {
		t.Fatalf("custom spin: %g, %v", custom.AngularVelocity, err)
	}

	old := zams()
	old.Age = 1
	_, err = InitialiseAtZAMS(old, 0)
	var pe *quantity.PreconditionError
	if !errors.As(err, &pe) || pe.Element != "Age" {
		t.Fatalf("age > 0: %v", err)
	}
}

func TestInitialiseAtNSOrBH(t *testing.T) {
	s := star.State{MZAMS: 20, CoreRadius: 1.4e-5}
	s.Stage, s.Mass, s.CoreMass, s.Luminosity, s.Radius, s.Temperature = stage.NS, 1.4, 1.4, 0.02, 1.4e-5, 1e6
	ns, err := InitialiseAtNSOrBH(s)
	if err != nil {
		t.Fatal(err)
	}
	if ns.AngularVelocity != RemnantSpin || ns.AngularMomentum <= 0 {
		t.Fatalf("NS spin %g J %g", ns.AngularVelocity, ns.AngularMomentum)
	}
	s.Stage = stage.COWD
	if _, err := InitialiseAtNSOrBH(s); err == nil || !strings.Contains(err.Error(), "NS or BH") {
		t.Fatalf("white dwarf accepted: %v", err)
	}
}

func TestLossRates(t *testing.T) {
	s := zams()
	s.AngularVelocity, s.MassLossRate = 100, 1e-9
	if got, want := StellarWindLoss(s), 2.0/3.0*1e-9*0.81*100; math.Abs(got-want) > 1e-20 {
		t.Errorf("wind loss = %g, want %g", got, want)
	}
	wantMB := 5.83e-16 * 0.03 * math.Pow(90, 3)
	if got := MagneticBrakingLoss(s.TrackPoint); math.Abs(got-wantMB) > 1e-12*wantMB {
		t.Errorf("magnetic braking = %g, want %g", got, wantMB)
	}
	low := s.TrackPoint
	low.Mass = 0.3
	if MagneticBrakingLoss(low) != 0 {
		t.Error("no braking expected at 0.3 Msun")
	}
	total, err := AngularMomentumLossRate(s)
	if err != nil || math.Abs(total-(StellarWindLoss(s)+wantMB)) > 1e-12*total {
		t.Errorf("total = %g, %v", total, err)
	}
}

func TestAdvance(t *testing.T) {
	if got := Advance(1, 1e-7, 1); math.Abs(got-0.9) > 1e-12 {
		t.Errorf("Advance = %g", got)
	}
	if got := Advance(1, 1, 10); got != 0 {
		t.Errorf("J went negative: %g", got)
	}
}
