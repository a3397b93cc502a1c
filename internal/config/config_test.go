package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"

	"herd/core/evolve"
	"herd/core/quantity"
	"herd/core/stage"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(viper.New())
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"Mass", cfg.Mass, 1.0},
		{"Metallicity", cfg.Metallicity, 0.02},
		{"MaxAge", cfg.MaxAge, 13000.0},
		{"Spin", cfg.Spin, 0.0},
		{"Wind.Eta", cfg.Wind.Eta, 0.5},
		{"Wind.HeWind", cfg.Wind.HeWind, 1.0},
		{"Remnant.ModifiedMestel", cfg.Remnant.ModifiedMestel, true},
		{"Remnant.Belczynski", cfg.Remnant.Belczynski, true},
		{"Step.MaxSteps", cfg.Step.MaxSteps, 100000},
		{"Output", cfg.Output, "text"},
		{"Threads", cfg.Threads, 0},
		{"Quiet", cfg.Quiet, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	tests := []struct {
		name   string
		envKey string
		envVal string
		field  func(Config) any
		want   any
	}{
		{"mass", "HERD_MASS", "2.5", func(c Config) any { return c.Mass }, 2.5},
		{"wind.eta", "HERD_WIND_ETA", "0.3", func(c Config) any { return c.Wind.Eta }, 0.3},
		{"remnant.belczynski", "HERD_REMNANT_BELCZYNSKI", "false", func(c Config) any { return c.Remnant.Belczynski }, false},
		{"output", "HERD_OUTPUT", "jsonl", func(c Config) any { return c.Output }, "jsonl"},
		{"step.max_steps", "HERD_STEP_MAX_STEPS", "42", func(c Config) any { return c.Step.MaxSteps }, 42},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.envKey, tt.envVal)
			v := viper.New()
			if err := Init(v, ""); err != nil {
				t.Fatal(err)
			}
			cfg, err := Load(v)
			if err != nil {
				t.Fatal(err)
			}
			if got := tt.field(cfg); got != tt.want {
				t.Errorf("%s = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestInit_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	tomlPath := filepath.Join(dir, "run.toml")
	if err := os.WriteFile(tomlPath, []byte(`
mass = 5.0
metallicity = 0.001
output = "json"

[remnant]
belczynski = false

[step.fractions]
HG = 0.005
`), 0o644); err != nil {
		t.Fatal(err)
	}
	yamlPath := filepath.Join(dir, "run.yaml")
	if err := os.WriteFile(yamlPath, []byte("mass: 5.0\nmetallicity: 0.001\noutput: json\nremnant:\n  belczynski: false\nstep:\n  fractions:\n    HG: 0.005\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	for _, path := range []string{tomlPath, yamlPath} {
		t.Run(filepath.Ext(path), func(t *testing.T) {
			v := viper.New()
			if err := Init(v, path); err != nil {
				t.Fatal(err)
			}
			cfg, err := Load(v)
			if err != nil {
				t.Fatal(err)
			}
			if cfg.Mass != 5 || cfg.Metallicity != 0.001 || cfg.Output != "json" || cfg.Remnant.Belczynski {
				t.Fatalf("unexpected config: %+v", cfg)
			}
			p, err := cfg.Parameters()
			if err != nil {
				t.Fatal(err)
			}
			if p.Remnant.MaxNSMass != 1.8 {
				t.Errorf("MaxNSMass = %g, want 1.8 for Hurley remnants", p.Remnant.MaxNSMass)
			}
			if f := p.Step.Fraction(stage.HG); f != 0.005 {
				t.Errorf("HG fraction = %g, want 0.005", f)
			}
		})
	}
}

func TestInit_MissingExplicitFile(t *testing.T) {
	err := Init(viper.New(), filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Fatal("want error for a missing --config file")
	}
}

func TestLoad_RejectsUnknownOutput(t *testing.T) {
	v := viper.New()
	v.Set("output", "fasta")
	if _, err := Load(v); err == nil {
		t.Fatal("want error for unsupported output")
	}
}

func TestParameters_DefaultsMatchEvolve(t *testing.T) {
	cfg, err := Load(viper.New())
	if err != nil {
		t.Fatal(err)
	}
	p, err := cfg.Parameters()
	if err != nil {
		t.Fatal(err)
	}
	d := evolve.DefaultParameters()
	if p.Mass != d.Mass || p.Metallicity != d.Metallicity || p.MaxAge != d.MaxAge ||
		p.Wind != d.Wind || p.Remnant != d.Remnant || p.Step.MaxSteps != d.Step.MaxSteps {
		t.Fatalf("defaults drifted:\n got  %+v\n want %+v", p, d)
	}
}

func TestParameters_Preconditions(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		val     any
		element string
	}{
		{"zero metallicity", "metallicity", 0.0, "Metallicity"},
		{"negative mass", "mass", -1.0, "Mass"},
		{"negative eta", "wind.eta", -0.1, "Eta"},
		{"bad stage", "step.fractions", map[string]float64{"xx": 0.1}, "step.fractions"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			v.Set(tt.key, tt.val)
			cfg, err := Load(v)
			if err != nil {
				t.Fatal(err)
			}
			_, err = cfg.Parameters()
			var pe *quantity.PreconditionError
			if !errors.As(err, &pe) || pe.Element != tt.element {
				t.Fatalf("want precondition on %s, got %v", tt.element, err)
			}
		})
	}
}
