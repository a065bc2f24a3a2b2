package cmd

import (
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	navskema "github.com/reoring/navskema"
	"github.com/reoring/navskema/adapter"
)

func newFindCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "find NAME",
		Short: "Locate a node by name (first depth-first match)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, ok := e.schema.Lookup(args[0])
			if !ok {
				return errors.Wrap(adapter.ErrConfigurationMissing, args[0])
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n", navskema.Describe(p.Node))
			fmt.Fprintf(out, "path: %s\n", strings.Join(p.Names(), " > "))
			if g, ok := p.Node.(*navskema.Group); ok {
				if r := g.InitialRouteName(); r != "" {
					fmt.Fprintf(out, "initialRouteName: %s\n", r)
				}
				fmt.Fprintf(out, "children: %d\n", len(g.Children()))
			}
			return nil
		},
	}
}

func newResolveCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve NAME",
		Short: "Print the effective options of a node",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, ok := e.schema.Lookup(args[0])
			if !ok {
				return errors.Wrap(adapter.ErrConfigurationMissing, args[0])
			}
			b, err := json.MarshalIndent(p.Resolve().Map(), "", "  ")
			if err != nil {
				return errors.Wrap(err, "encode options")
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return nil
		},
	}
}
