package cli

import (
	"github.com/spf13/cobra"
	"github.com/xy-planning-network/hackathons/ranger"
)

func (a *app) serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the web front until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rng, err := ranger.New(
				ranger.WithConfig(a.cfg),
				ranger.WithContext(cmd.Context()),
			)
			if err != nil {
				return err
			}

			return rng.Guide()
		},
	}
}
