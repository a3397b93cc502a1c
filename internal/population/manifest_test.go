package population

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"herd/core/evolve"
)

const tomlManifest = `
[defaults]
metallicity = 0.001
max_age = 500.0

[[star]]
id = "sun"
mass = 1.0
metallicity = 0.02

[[star]]
mass = 20.0
spin = 5.0

[[star]]
id = "grid"
masses = [2.0, 4.0]
`

const yamlManifest = `
defaults:
  metallicity: 0.001
  max_age: 500
stars:
  - id: sun
    mass: 1
    metallicity: 0.02
  - mass: 20
    spin: 5
  - id: grid
    masses: [2, 4]
`

type flat struct {
	ID                    string
	Mass, Z, MaxAge, Spin float64
}

func flatten(t *testing.T, m Manifest) []flat {
	t.Helper()
	stars, err := m.Expand(evolve.DefaultParameters())
	if err != nil {
		t.Fatalf("Stars: %v", err)
	}
	var out []flat
	for _, s := range stars {
		p := s.Params
		out = append(out, flat{s.ID, p.Mass, p.Metallicity, p.MaxAge, p.InitialSpin})
	}
	return out
}

func TestDecode_TOMLAndYAMLAgree(t *testing.T) {
	mt, err := DecodeTOML([]byte(tomlManifest))
	if err != nil {
		t.Fatal(err)
	}
	my, err := DecodeYAML([]byte(yamlManifest))
	if err != nil {
		t.Fatal(err)
	}
	want := []flat{
		{"sun", 1, 0.02, 500, 0},
		{"star-2", 20, 0.001, 500, 5},
		{"grid/2", 2, 0.001, 500, 0},
		{"grid/4", 4, 0.001, 500, 0},
	}
	if diff := cmp.Diff(want, flatten(t, mt)); diff != "" {
		t.Errorf("toml (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, flatten(t, my)); diff != "" {
		t.Errorf("yaml (-want +got):\n%s", diff)
	}
}

func TestDecode_UnknownFieldsRejected(t *testing.T) {
	if _, err := DecodeTOML([]byte("[[star]]\nmas = 1.0\n")); err == nil {
		t.Error("toml: want error for unknown key")
	}
	if _, err := DecodeYAML([]byte("stars:\n  - mas: 1\n")); err == nil {
		t.Error("yaml: want error for unknown key")
	}
}

func TestStars_Errors(t *testing.T) {
	tests := []struct {
		name string
		m    Manifest
		want string
	}{
		{"empty", Manifest{}, "no stars"},
		{"duplicate", Manifest{Stars: []Entry{{ID: "a", Mass: 1}, {ID: "a", Mass: 2}}}, "duplicate star id"},
		{"mass and masses", Manifest{Stars: []Entry{{Mass: 1, Masses: []float64{2}}}}, "both mass and masses"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.m.Expand(evolve.DefaultParameters())
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("want %q, got %v", tt.want, err)
			}
		})
	}
}

func TestStars_InvalidMassIsDeferred(t *testing.T) {
	stars, err := Manifest{Stars: []Entry{{ID: "big", Mass: 1000}}}.Expand(evolve.DefaultParameters())
	if err != nil || len(stars) != 1 {
		t.Fatalf("stars=%v err=%v", stars, err)
	}
	if stars[0].Params.Validate() == nil {
		t.Fatal("1000 Msun must fail validation when evolved")
	}
}

func TestLoad_ByExtension(t *testing.T) {
	dir := t.TempDir()
	write := func(name, data string) string {
		p := filepath.Join(dir, name)
		if err := os.WriteFile(p, []byte(data), 0o644); err != nil {
			t.Fatal(err)
		}
		return p
	}
	for _, p := range []string{write("m.toml", tomlManifest), write("m.yml", yamlManifest)} {
		m, err := Load(p)
		if err != nil {
			t.Fatalf("%s: %v", p, err)
		}
		if len(m.Stars) != 3 {
			t.Fatalf("%s: entries = %d", p, len(m.Stars))
		}
	}
	if _, err := Load(write("m.json", "{}")); err == nil || !strings.Contains(err.Error(), "unsupported extension") {
		t.Fatalf("json manifest: %v", err)
	}
	if _, err := Load(filepath.Join(dir, "missing.toml")); err == nil {
		t.Fatal("want error for missing file")
	}
}
