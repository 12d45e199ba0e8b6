package main

import (
	"github.com/spf13/cobra"

	"github.com/promptwire/elicit/derive"
	"github.com/promptwire/elicit/seedwire"
)

func newGenCmd(cfg *config) *cobra.Command {
	var seed uint64
	var count int
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "generate server profiles from a deterministic seed",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := sessionContext(cmd.Context(), "gen")
			for i := 0; i < count; i++ {
				tr := seedwire.New(seed+uint64(i),
					seedwire.WithMaxContinuations(cfg.MaxContinuations))
				profile, err := derive.Elicit[serverProfile](ctx, tr)
				if err != nil {
					return err
				}
				if err := printYAML(cmd, profile); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().Uint64Var(&seed, "seed", 0, "generator seed (defaults to the configured seed)")
	cmd.Flags().IntVar(&count, "count", 1, "how many profiles to generate, advancing the seed each time")
	cmd.PreRun = func(*cobra.Command, []string) {
		if !cmd.Flags().Changed("seed") {
			seed = cfg.Seed
		}
	}
	return cmd
}
