// Package config layers run settings from defaults, an optional .herd.toml or
// .herd.yaml file, HERD_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/viper"

	"herd/core/evolve"
	"herd/core/phase"
	"herd/core/quantity"
	"herd/core/stage"
	"herd/internal/output"
)

// WindConfig holds the mass-loss parameters.
type WindConfig struct {
	Eta        float64 `mapstructure:"eta"`
	HeWind     float64 `mapstructure:"he_wind"`
	BinaryWind float64 `mapstructure:"binary_wind"`
	RocheLobe  float64 `mapstructure:"roche_lobe"`
}

// RemnantConfig selects the remnant prescriptions. MaxNSMass 0 means the
// default for the selected NS/BH mass prescription.
type RemnantConfig struct {
	ModifiedMestel bool    `mapstructure:"modified_mestel"`
	Belczynski     bool    `mapstructure:"belczynski"`
	MaxNSMass      float64 `mapstructure:"max_ns_mass"`
}

// StepConfig overrides the timestep policy. Fractions maps stage names
// (any case) to the step as a fraction of the phase duration.
type StepConfig struct {
	MaxSteps        int                `mapstructure:"max_steps"`
	DefaultTimestep float64            `mapstructure:"default"`
	MinRemnant      float64            `mapstructure:"min_remnant"`
	Fractions       map[string]float64 `mapstructure:"fractions"`
}

// Config holds all runtime configuration for a herd invocation.
type Config struct {
	Mass        float64 `mapstructure:"mass"`
	Metallicity float64 `mapstructure:"metallicity"`
	MaxAge      float64 `mapstructure:"max_age"`
	Spin        float64 `mapstructure:"spin"`

	Wind    WindConfig    `mapstructure:"wind"`
	Remnant RemnantConfig `mapstructure:"remnant"`
	Step    StepConfig    `mapstructure:"step"`

	Output      string `mapstructure:"output"`
	Header      bool   `mapstructure:"header"`
	Threads     int    `mapstructure:"threads"`
	Quiet       bool   `mapstructure:"quiet"`
	FinalOnly   bool   `mapstructure:"final_only"`
	Transitions bool   `mapstructure:"transitions"`
}

// EnvPrefix is prepended to every environment override (HERD_WIND_ETA, ...).
const EnvPrefix = "HERD"

// Init points v at the config file (or searches for .herd.* in the working
// and home directories) and enables environment overrides. A missing
// config file is not an error.
func Init(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(".herd")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// SetDefaults registers the built-in defaults on v.
func SetDefaults(v *viper.Viper) {
	d := evolve.DefaultParameters()
	v.SetDefault("mass", d.Mass)
	v.SetDefault("metallicity", d.Metallicity)
	v.SetDefault("max_age", d.MaxAge)
	v.SetDefault("spin", 0.0)
	v.SetDefault("wind.eta", d.Wind.Eta)
	v.SetDefault("wind.he_wind", d.Wind.HeWind)
	v.SetDefault("wind.binary_wind", 0.0)
	v.SetDefault("wind.roche_lobe", 0.0)
	v.SetDefault("remnant.modified_mestel", d.Remnant.UseModifiedMestel)
	v.SetDefault("remnant.belczynski", d.Remnant.UseBelczynskiMass)
	v.SetDefault("remnant.max_ns_mass", 0.0)
	v.SetDefault("step.max_steps", d.Step.MaxSteps)
	v.SetDefault("step.default", d.Step.DefaultTimestep)
	v.SetDefault("step.min_remnant", d.Step.MinRemnantTimestep)
	v.SetDefault("output", output.FormatText)
	v.SetDefault("header", false)
	v.SetDefault("threads", 0)
	v.SetDefault("quiet", false)
	v.SetDefault("final_only", false)
	v.SetDefault("transitions", false)
}

var formats = []string{output.FormatText, output.FormatJSON, output.FormatJSONL, output.FormatPretty}

// Load applies the defaults and unmarshals v.
func Load(v *viper.Viper) (Config, error) {
	SetDefaults(v)
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if !slices.Contains(formats, cfg.Output) {
		return Config{}, fmt.Errorf("config: unsupported output %q (want one of %s)", cfg.Output, strings.Join(formats, ", "))
	}
	if cfg.Threads < 0 {
		return Config{}, fmt.Errorf("config: threads must be >= 0, got %d", cfg.Threads)
	}
	return cfg, nil
}

// Parameters converts the configuration into validated evolution parameters.
func (c Config) Parameters() (evolve.Parameters, error) {
	p := evolve.DefaultParameters()
	p.Mass = c.Mass
	p.Metallicity = c.Metallicity
	p.MaxAge = c.MaxAge
	p.InitialSpin = c.Spin
	p.Wind.Eta = c.Wind.Eta
	p.Wind.HeWind = c.Wind.HeWind
	p.Wind.BinaryWind = c.Wind.BinaryWind
	p.Wind.RocheLobe = c.Wind.RocheLobe

	p.Remnant = phase.Options{
		UseModifiedMestel: c.Remnant.ModifiedMestel,
		UseBelczynskiMass: c.Remnant.Belczynski,
		MaxNSMass:         c.Remnant.MaxNSMass,
	}
	if p.Remnant.MaxNSMass == 0 {
		p.Remnant.MaxNSMass = phase.DefaultMaxNSMass(c.Remnant.Belczynski)
	}

	p.Step.MaxSteps = c.Step.MaxSteps
	p.Step.DefaultTimestep = c.Step.DefaultTimestep
	p.Step.MinRemnantTimestep = c.Step.MinRemnant
	for name, f := range c.Step.Fractions {
		st, err := parseStage(name)
		if err != nil {
			return evolve.Parameters{}, err
		}
		p.Step.RelativeTimeStepSizes[st] = f
	}

	if err := p.Validate(); err != nil {
		return evolve.Parameters{}, err
	}
	return p, nil
}

// parseStage matches a stage name case-insensitively; viper lowercases keys.
func parseStage(name string) (stage.Stage, error) {
	for _, st := range stage.All() {
		if strings.EqualFold(st.String(), name) {
			return st, nil
		}
	}
	return stage.Undefined, &quantity.PreconditionError{Element: "step.fractions", Expected: "a valid evolution stage", Actual: name}
}
