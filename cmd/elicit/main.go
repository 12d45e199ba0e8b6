// Command elicit drives example elicitations from the terminal: an
// interactive demo, a scripted replay, and a seeded generator. It
// exists to exercise the library end to end; the library itself never
// depends on it.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgPath string
	cfg := &config{}

	root := &cobra.Command{
		Use:           "elicit",
		Short:         "drive structured elicitations over different transports",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := cfg.load(cfgPath); err != nil {
				return err
			}
			return setupLogging(cfg)
		},
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "path to a TOML config file")

	root.AddCommand(newDemoCmd(cfg))
	root.AddCommand(newReplayCmd(cfg))
	root.AddCommand(newGenCmd(cfg))
	return root
}
