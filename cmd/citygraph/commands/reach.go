package commands

import (
	"github.com/katalvlaran/citygraph/bfs"
	"github.com/katalvlaran/citygraph/internal/render"
	"github.com/spf13/cobra"
)

func newReachCmd(s *session) *cobra.Command {
	var maxHops int
	cmd := &cobra.Command{
		Use:   "reach FROM",
		Short: "List cities reachable from FROM, by number of connections",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := bfs.BFS(s.graph, args[0],
				bfs.WithContext(cmd.Context()),
				bfs.WithMaxHops(maxHops),
			)
			if err != nil {
				return err
			}

			view := render.ReachView{From: args[0], MaxHops: maxHops, Cities: make([]render.HopsView, len(res.Order))}
			for i, name := range res.Order {
				view.Cities[i] = render.HopsView{Name: name, Hops: res.Hops[name]}
			}

			return s.out.Reach(view)
		},
	}
	cmd.Flags().IntVar(&maxHops, "max-hops", 0, "stop after this many connections (0 = no limit)")

	return cmd
}

func newComponentsCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "components",
		Short: "Group cities into connected regions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			comps, err := bfs.Components(s.graph)
			if err != nil {
				return err
			}
			if len(comps) > 1 {
				s.log.WithField("components", len(comps)).Info("graph is disconnected")
			}

			return s.out.Components(render.ComponentsView{Components: comps})
		},
	}
}
