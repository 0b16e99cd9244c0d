package commands

import (
	"errors"
	"time"

	"github.com/katalvlaran/citygraph/dijkstra"
	"github.com/katalvlaran/citygraph/internal/render"
	"github.com/spf13/cobra"
)

func newVerticesCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "vertices",
		Short: "List every city, sorted by name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return s.out.Vertices(s.graph.Vertices())
		},
	}
}

func newEdgesCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "edges",
		Short: "List every connection in insertion order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return s.out.Edges(render.EdgeViews(s.graph.Edges()))
		},
	}
}

func newDistanceCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "distance FROM TO",
		Short: "Show the direct distance between two cities",
		Long: `Show the weight of the direct connection FROM,TO (or TO,FROM).
Only direct connections count; use "route" for multi-hop paths.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()
			km, ok := s.graph.Distance(args[0], args[1])
			s.rec.RecordQuery(cmd.Context(), "distance", ok, time.Since(start))

			return s.out.Distance(render.NewDistanceView(args[0], args[1], km, ok))
		},
	}
}

func newRouteCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "route FROM TO",
		Short: "Show the shortest multi-hop route between two cities",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to := args[0], args[1]
			start := time.Now()
			p, err := dijkstra.ShortestPath(s.graph, from, to)
			found := err == nil
			s.rec.RecordQuery(cmd.Context(), "route", found, time.Since(start))

			view := render.RouteView{From: from, To: to, Found: found}
			switch {
			case found:
				view.Vertices = p.Vertices
				view.Edges = render.EdgeViews(p.Edges)
				view.TotalKm = p.Total
			case errors.Is(err, dijkstra.ErrNoPath):
				s.log.WithField("from", from).WithField("to", to).Debug("no route")
			default:
				return err
			}

			return s.out.Route(view)
		},
	}
}
