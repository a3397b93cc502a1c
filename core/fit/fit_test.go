package fit

import (
	"math"
	"testing"
)

func TestBlendWeight(t *testing.T) {
	if w := BlendWeight(0.6, 0.5, 0.7); math.Abs(w-0.5) > 1e-12 {
		t.Fatalf("BlendWeight = %v", w)
	}
	if w := BlendWeight(1, 0, 2); w != 0.5 {
		t.Fatalf("BlendWeight = %v", w)
	}
}

func TestApBXhC(t *testing.T) {
	if v := ApBXhC(2, 1, 3, 2); v != 13 {
		t.Fatalf("ApBXhC = %v, want 13", v)
	}
	if v := BXhC(4, 2, 0.5); v != 4 {
		t.Fatalf("BXhC = %v, want 4", v)
	}
}

func TestPowersAndMatVec(t *testing.T) {
	p := Powers(4, 2)
	want := []float64{1, 2, 4, 8}
	for i := range want {
		if p[i] != want[i] {
			t.Fatalf("Powers = %v", p)
		}
	}
	m := []float64{
		1, 0, 0, 0,
		0, 1, 1, 1,
	}
	got := MulMatVec(m, p)
	if len(got) != 2 || got[0] != 1 || got[1] != 14 {
		t.Fatalf("MulMatVec = %v", got)
	}
}

func TestZeta(t *testing.T) {
	if z := Zeta(0.02); z != 0 {
		t.Fatalf("Zeta(0.02) = %v", z)
	}
	if z := Zeta(0.002); math.Abs(z+1) > 1e-12 {
		t.Fatalf("Zeta(0.002) = %v", z)
	}
}

func TestClampLerp(t *testing.T) {
	if Clamp(5, 0, 1) != 1 || Clamp(-1, 0, 1) != 0 || Clamp(0.5, 0, 1) != 0.5 {
		t.Fatal("Clamp")
	}
	if Lerp(10, 20, 0.25) != 12.5 {
		t.Fatal("Lerp")
	}
}
