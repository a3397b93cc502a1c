// internal/app/evolve.go
package app

import (
	"github.com/spf13/cobra"

	"herd/core/evolve"
	"herd/internal/appcore"
	"herd/internal/config"
	"herd/internal/output"
	"herd/internal/pipeline"
	"herd/internal/pretty"
	"herd/internal/visitors"
)

// starBindings map the single-star flags to config keys.
var starBindings = map[string]string{
	"mass":        "mass",
	"metallicity": "metallicity",
	"max_age":     "max-age",
	"spin":        "spin",
}

// physicsBindings map the wind, remnant and step flags to config keys.
var physicsBindings = map[string]string{
	"wind.eta":                "eta",
	"wind.he_wind":            "he-wind",
	"wind.binary_wind":        "binary-wind",
	"wind.roche_lobe":         "roche-lobe",
	"remnant.belczynski":      "belczynski",
	"remnant.modified_mestel": "modified-mestel",
	"remnant.max_ns_mass":     "max-ns-mass",
	"step.max_steps":          "max-steps",
	"final_only":              "final-only",
	"transitions":             "transitions",
}

func addStarFlags(cmd *cobra.Command) {
	d := evolve.DefaultParameters()
	f := cmd.Flags()
	f.Float64P("mass", "m", d.Mass, "ZAMS mass in Msun "+evolve.MassRange.String())
	f.Float64P("metallicity", "z", d.Metallicity, "metallicity Z "+evolve.MetallicityRange.String())
	f.Float64("max-age", d.MaxAge, "stop at this age (Myr)")
	f.Float64("spin", 0, "initial angular velocity (yr^-1, 0 = from mass and radius)")
}

func addPhysicsFlags(cmd *cobra.Command) {
	d := evolve.DefaultParameters()
	f := cmd.Flags()
	f.Float64("eta", d.Wind.Eta, "Reimers mass-loss efficiency")
	f.Float64("he-wind", d.Wind.HeWind, "Wolf-Rayet wind scaling for helium stars")
	f.Float64("binary-wind", 0, "tidally enhanced wind factor")
	f.Float64("roche-lobe", 0, "Roche-lobe radius in Rsun (0 = isolated)")
	f.Bool("belczynski", d.Remnant.UseBelczynskiMass, "Belczynski et al. (2002) NS/BH masses")
	f.Bool("modified-mestel", d.Remnant.UseModifiedMestel, "modified Mestel white-dwarf cooling")
	f.Float64("max-ns-mass", 0, "maximum neutron-star mass (0 = prescription default)")
	f.Int("max-steps", d.Step.MaxSteps, "step bound per star")
	f.Bool("final-only", false, "print one summary row per star instead of every point")
	f.Bool("transitions", false, "print only the first point of each stage and the last point")
}

func newEvolveCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "evolve",
		Short: "Evolve one star and print its trajectory",
		Example: `  herd evolve --mass 1 --metallicity 0.02 --max-age 13000
  herd evolve -m 20 -z 0.001 --output pretty
  herd evolve -m 5 --final-only --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, _ := cmd.Flags().GetString("id")
			cfg, err := s.load(cmd, merge(outputBindings, starBindings, physicsBindings))
			if err != nil {
				return err
			}
			p, err := cfg.Parameters()
			if err != nil {
				return err
			}
			s.code = s.evolve(cmd, cfg, []pipeline.Star{{ID: id, Params: p}})
			return nil
		},
	}
	cmd.Flags().String("id", "star", "star id used in the output")
	addStarFlags(cmd)
	addPhysicsFlags(cmd)
	return cmd
}

// evolve streams stars through the writer selected by cfg.
func (s *session) evolve(cmd *cobra.Command, cfg config.Config, stars []pipeline.Star) int {
	opts := appcore.Options{Threads: cfg.Threads, Quiet: cfg.Quiet}
	if cfg.FinalOnly {
		wf := appcore.NewSummaryWriterFactory(cfg.Output, cfg.Header, pretty.DefaultOptions)
		return appcore.Run[output.Summary](cmd.Context(), s.stdout, s.stderr, opts, stars, visitors.Final{}.Visit, wf)
	}
	wf := appcore.NewTrackWriterFactory(cfg.Output, cfg.Header, pretty.DefaultOptions)
	v := visitors.Track{TransitionsOnly: cfg.Transitions}
	return appcore.Run[output.Row](cmd.Context(), s.stdout, s.stderr, opts, stars, v.Visit, wf)
}
