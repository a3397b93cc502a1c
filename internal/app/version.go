package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"herd/internal/version"
)

func newVersionCmd(_ *session) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the herd version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "herd version %s\n", version.Version)
			return err
		},
	}
}
