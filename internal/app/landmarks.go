// internal/app/landmarks.go
package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"herd/core/evolve"
	"herd/core/landmark"
	"herd/internal/appcore"
	"herd/internal/output"
)

func newLandmarksCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "landmarks",
		Short:   "Print the critical masses and landmark ages, luminosities and radii of one mass",
		Example: `  herd landmarks --mass 2 --metallicity 0.004 --output json`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := s.load(cmd, merge(outputBindings, map[string]string{
				"mass":        "mass",
				"metallicity": "metallicity",
			}))
			if err != nil {
				return err
			}
			if err := evolve.MassRange.Validate("Mass", cfg.Mass); err != nil {
				return err
			}
			if err := evolve.MetallicityRange.Validate("Metallicity", cfg.Metallicity); err != nil {
				return err
			}
			set, err := landmark.NewSet(cfg.Metallicity)
			if err != nil {
				return err
			}
			tr, err := set.Track(cfg.Mass)
			if err != nil {
				s.code = appcore.ExitCode(err)
				fmt.Fprintln(s.stderr, err)
				return nil
			}

			v := output.ToAPILandmarks(set, tr)
			out := cmd.OutOrStdout()
			switch cfg.Output {
			case output.FormatText:
				err = output.WriteLandmarksText(out, v, cfg.Header)
			case output.FormatJSON:
				err = output.WriteLandmarksJSON(out, v)
			case output.FormatJSONL:
				err = output.WriteLandmarksJSONL(out, v)
			default:
				return fmt.Errorf("landmarks: unsupported output %q (want text, json or jsonl)", cfg.Output)
			}
			if err != nil {
				fmt.Fprintln(s.stderr, err)
				s.code = appcore.ExitRuntime
			}
			return nil
		},
	}
	d := evolve.DefaultParameters()
	cmd.Flags().Float64P("mass", "m", d.Mass, "mass in Msun "+evolve.MassRange.String())
	cmd.Flags().Float64P("metallicity", "z", d.Metallicity, "metallicity Z "+evolve.MetallicityRange.String())
	return cmd
}
