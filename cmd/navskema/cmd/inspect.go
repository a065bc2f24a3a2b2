package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	json "github.com/goccy/go-json"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	navskema "github.com/reoring/navskema"
	"github.com/reoring/navskema/jsonschema"
)

func newValidateCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Report dangling initial routes, shadowed names and a missing Root stack",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			iss := e.schema.Validate()
			if len(iss) == 0 {
				fmt.Fprintln(out, color.GreenString("ok"))
				return nil
			}
			code := color.New(color.FgRed, color.Bold).SprintFunc()
			path := color.New(color.FgCyan).SprintFunc()
			for _, it := range iss {
				fmt.Fprintf(out, "%s %s %s\n", code(it.Code), path(it.Path), it.Message)
			}
			return errors.Errorf("%d issue(s) found", len(iss))
		},
	}
}

func newDumpCmd(e *env) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print the schema in its wire form (json, yaml or toml)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("format") {
				format = e.cfg.Format
			}
			out := cmd.OutOrStdout()
			var err error
			switch strings.ToLower(format) {
			case "json":
				err = navskema.EncodeJSON(out, e.schema, true)
			case "yaml", "yml":
				err = navskema.EncodeYAML(out, e.schema)
			case "toml":
				err = navskema.EncodeTOML(out, e.schema)
			default:
				return errors.Errorf("unsupported format %q", format)
			}
			return errors.Wrapf(err, "encode %s", format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json, yaml, toml")
	return cmd
}

func newTreeCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "tree",
		Short: "List every node with its kind, depth and initial route",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"name", "kind", "depth", "initial route", "link", "hidden", "wire path"})
			e.schema.Walk(func(n navskema.Node, ancestors []*navskema.Group, p navskema.PathRef) bool {
				name := strings.Repeat("  ", len(ancestors)) + n.Name()
				var initial, link string
				switch n.Kind() {
				case navskema.KindScreen:
					link = n.(*navskema.Screen).Link()
				case navskema.KindTabs, navskema.KindDrawer, navskema.KindStack:
					initial = n.(*navskema.Group).InitialRouteName()
				}
				hidden := navskema.ResolveOptions(n, ancestors).IsHiddenFromMenu()
				table.Append([]string{name, n.Kind().String(), strconv.Itoa(len(ancestors)), initial, link, strconv.FormatBool(hidden), p.Pointer()})
				return true
			})
			table.Render()
			return nil
		},
	}
}

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of the wire format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := json.MarshalIndent(jsonschema.Wire(), "", "  ")
			if err != nil {
				return errors.Wrap(err, "encode json schema")
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return nil
		},
	}
}
