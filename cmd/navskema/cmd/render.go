package cmd

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	json "github.com/goccy/go-json"
	"github.com/hashicorp/go-multierror"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	navskema "github.com/reoring/navskema"
	"github.com/reoring/navskema/adapter"
	"github.com/reoring/navskema/adapter/native"
	"github.com/reoring/navskema/adapter/web"
)

func newRenderCmd(e *env) *cobra.Command {
	var platform string
	cmd := &cobra.Command{
		Use:   "render [NAME]",
		Short: "Show how an adapter binds a navigator (the Root stack by default)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			out := cmd.OutOrStdout()
			table := tablewriter.NewWriter(out)
			var header string
			switch platform {
			case native.Platform:
				r := native.New(e.schema).Render(name)
				if r.Placeholder {
					return errors.New(r.Message)
				}
				header = describeNavigator(r.Navigator)
				table.SetHeader([]string{"item", "kind", "label", "component", "props"})
				for _, s := range r.Screens {
					component := "(navigator)"
					if s.Component != nil {
						component = fmt.Sprint(s.Component)
					}
					table.Append([]string{s.Name, s.Kind.String(), s.Label, component, propsString(s.Props)})
				}
			case web.Platform:
				r := web.New(e.schema).Render(name)
				if r.Placeholder {
					return errors.New(r.Message)
				}
				header = describeNavigator(r.Navigator)
				table.SetHeader([]string{"item", "kind", "label", "href", "props"})
				for _, p := range r.Pages {
					table.Append([]string{p.Name, p.Kind.String(), p.Label, p.Href, propsString(p.Props)})
				}
			default:
				return errors.Errorf("unsupported platform %q, expected %s or %s", platform, native.Platform, web.Platform)
			}
			fmt.Fprintln(out, header)
			table.Render()
			return nil
		},
	}
	cmd.Flags().StringVarP(&platform, "platform", "p", native.Platform, "adapter to use: native or web")
	return cmd
}

func describeNavigator(n *adapter.Navigator) string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "%s %s", n.Kind, strings.Join(n.Path, " > "))
	if n.InitialRoute != "" {
		fmt.Fprintf(b, " (initial %s)", n.InitialRoute)
	}
	if !n.Chrome.IsZero() {
		fmt.Fprintf(b, " chrome=%s", propsString(n.Chrome.Map()))
	}
	return b.String()
}

func propsString(m map[string]any) string {
	b, err := json.Marshal(m)
	if err != nil {
		return fmt.Sprint(m)
	}
	return string(b)
}

func newCheckCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Bind every navigator through both adapters and report divergences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := checkAdapters(cmd.Context(), e.schema)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d navigators bind identically (%s)\n", len(names), strings.Join(names, ", "))
			return nil
		},
	}
}

// checkAdapters binds every group with the native and web adapters
// concurrently and compares the results.
func checkAdapters(ctx context.Context, s *navskema.Schema) ([]string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	var names []string
	s.Walk(func(n navskema.Node, _ []*navskema.Group, _ navskema.PathRef) bool {
		if n.Kind().IsGroup() {
			names = append(names, n.Name())
		}
		return true
	})

	na, wa := native.New(s), web.New(s)
	var (
		mu     sync.Mutex
		result *multierror.Error
	)
	g, gctx := errgroup.WithContext(ctx)
	for _, name := range names {
		name := name
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			nr, wr := na.Render(name), wa.Render(name)
			var err error
			switch {
			case nr.Placeholder || wr.Placeholder:
				err = errors.Errorf("%s: placeholder rendered (native: %q, web: %q)", name, nr.Message, wr.Message)
			default:
				err = adapter.Compare(nr.Navigator, wr.Navigator)
			}
			if err != nil {
				mu.Lock()
				result = multierror.Append(result, err)
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}
