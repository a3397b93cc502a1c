// internal/app/population.go
package app

import (
	"errors"

	"github.com/spf13/cobra"

	"herd/internal/population"
)

func newPopulationCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "population [manifest]",
		Short: "Evolve every star of a TOML or YAML manifest in parallel",
		Long: `Evolve every star listed in a manifest. Output order follows the manifest
regardless of --threads. The --metallicity, --max-age and physics flags set
the base parameters; manifest defaults and entries override them.`,
		Example: `  herd population stars.toml --final-only --output pretty
  herd population --manifest grid.yaml --threads 8 --output jsonl`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("manifest")
			if len(args) == 1 {
				if path != "" {
					return errors.New("give the manifest either as an argument or with --manifest, not both")
				}
				path = args[0]
			}
			if path == "" {
				return errors.New("population needs a manifest")
			}

			cfg, err := s.load(cmd, merge(outputBindings, starBindings, physicsBindings))
			if err != nil {
				return err
			}
			base, err := cfg.Parameters()
			if err != nil {
				return err
			}
			m, err := population.Load(path)
			if err != nil {
				return err
			}
			stars, err := m.Expand(base)
			if err != nil {
				return err
			}
			s.code = s.evolve(cmd, cfg, stars)
			return nil
		},
	}
	cmd.Flags().String("manifest", "", "star manifest (.toml, .yaml or .yml)")
	addStarFlags(cmd)
	addPhysicsFlags(cmd)
	return cmd
}
