package commands

import (
	"time"

	"github.com/katalvlaran/citygraph/internal/render"
	"github.com/katalvlaran/citygraph/prim_kruskal"
	"github.com/spf13/cobra"
)

func newMSTCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mst",
		Short: "Compute a minimum spanning tree",
		Long: `Compute a minimum spanning tree of the loaded graph.

Prim grows from --root, or from the first city loaded, and reports a
partial tree with a warning when the graph is disconnected. Kruskal
fails on a disconnected graph.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := s.cfg.MSTOptions()
			start := time.Now()
			mst, total, err := prim_kruskal.Compute(s.graph, opts)
			if err != nil {
				return err
			}
			spanning := prim_kruskal.Spanning(s.graph.VertexCount(), mst)
			s.rec.RecordMST(cmd.Context(), opts.Method, len(mst), spanning, time.Since(start))
			if !spanning {
				s.log.WithField("edges", len(mst)).
					WithField("vertices", s.graph.VertexCount()).
					Info("spanning tree is partial")
			}

			return s.out.MST(render.MSTView{
				Method:   opts.Method,
				Edges:    render.EdgeViews(mst),
				TotalKm:  total,
				Vertices: s.graph.VertexCount(),
				Spanning: spanning,
			})
		},
	}

	cmd.Flags().String("method", prim_kruskal.MethodPrim, "prim or kruskal")
	cmd.Flags().String("root", "", "start city for prim (default: first city loaded)")

	return cmd
}
