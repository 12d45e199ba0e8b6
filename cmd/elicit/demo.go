package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/promptwire/elicit"
	"github.com/promptwire/elicit/derive"
	"github.com/promptwire/elicit/stdiowire"
)

// serverProfile is the demo shape: it exercises text, numbers,
// booleans, an enum selection, a variable-length list, and an optional
// nested struct.
type serverProfile struct {
	Hostname string   `json:"hostname" yaml:"hostname" jsonschema:"description=Hostname of the server"`
	Port     uint16   `json:"port" yaml:"port" jsonschema:"description=Listen port"`
	TLS      bool     `json:"tls" yaml:"tls" jsonschema:"description=Terminate TLS on this server?"`
	Mode     string   `json:"mode" yaml:"mode" jsonschema:"description=Operating mode,enum=fast,enum=safe"`
	Tags     []string `json:"tags" yaml:"tags"`
	Replica  *replica `json:"replica" yaml:"replica,omitempty"`
}

type replica struct {
	Addr string  `json:"addr" yaml:"addr" jsonschema:"description=Replica address"`
	Lag  float64 `json:"lag" yaml:"lag" jsonschema:"description=Maximum acceptable replication lag in seconds"`
}

func newDemoCmd(_ *config) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "interactively elicit a server profile at the terminal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := sessionContext(cmd.Context(), "demo")
			tr := stdiowire.New(os.Stdin, os.Stderr)
			profile, err := derive.Elicit[serverProfile](ctx, tr)
			if err != nil {
				return err
			}
			return printYAML(cmd, profile)
		},
	}
}

func printYAML(cmd *cobra.Command, v any) error {
	out, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("render result: %w", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), string(out))
	return nil
}

// profileStep is the combinator rendition of the same shape, used by
// replay so scenarios exercise the hand-built path rather than the
// derived one.
func profileStep() elicit.Func[serverProfile] {
	return func(ctx context.Context, tr elicit.Transport) (serverProfile, error) {
		var p serverProfile
		var err error
		if p.Hostname, err = elicit.Text("Hostname of the server")(ctx, tr); err != nil {
			return p, err
		}
		if p.Port, err = elicit.Number[uint16]("Listen port")(ctx, tr); err != nil {
			return p, err
		}
		if p.TLS, err = elicit.Bool("Terminate TLS on this server?")(ctx, tr); err != nil {
			return p, err
		}
		if p.Mode, err = elicit.Select("Operating mode",
			elicit.Variant[string]{Name: "fast", Func: elicit.Just("fast")},
			elicit.Variant[string]{Name: "safe", Func: elicit.Just("safe")},
		)(ctx, tr); err != nil {
			return p, err
		}
		if p.Tags, err = elicit.Slice("Add another tag?", elicit.Text("Tag"))(ctx, tr); err != nil {
			return p, err
		}
		if p.Replica, err = elicit.Optional("Provide a replica?", replicaStep())(ctx, tr); err != nil {
			return p, err
		}
		return p, nil
	}
}

func replicaStep() elicit.Func[replica] {
	return func(ctx context.Context, tr elicit.Transport) (replica, error) {
		var r replica
		var err error
		if r.Addr, err = elicit.Text("Replica address")(ctx, tr); err != nil {
			return r, err
		}
		if r.Lag, err = elicit.Number[float64]("Maximum acceptable replication lag in seconds")(ctx, tr); err != nil {
			return r, err
		}
		return r, nil
	}
}
