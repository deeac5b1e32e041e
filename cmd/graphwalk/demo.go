package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"k8s.io/utils/clock"

	"github.com/katalvlaran/graphwalk/builder"
	"github.com/katalvlaran/graphwalk/core"
	"github.com/katalvlaran/graphwalk/dijkstra"
	"github.com/katalvlaran/graphwalk/internal/config"
	"github.com/katalvlaran/graphwalk/internal/logging"
	"github.com/katalvlaran/graphwalk/internal/render"
	"github.com/katalvlaran/graphwalk/internal/telemetry"
	"github.com/katalvlaran/graphwalk/prim_kruskal"
	"github.com/katalvlaran/graphwalk/session"
)

// shapes maps a demo shape name to its constructor for size n.
var shapes = map[string]func(n int, p float64) builder.Constructor{
	"cycle":    func(n int, _ float64) builder.Constructor { return builder.Cycle(n) },
	"path":     func(n int, _ float64) builder.Constructor { return builder.Path(n) },
	"star":     func(n int, _ float64) builder.Constructor { return builder.Star(n) },
	"wheel":    func(n int, _ float64) builder.Constructor { return builder.Wheel(n) },
	"complete": func(n int, _ float64) builder.Constructor { return builder.Complete(n) },
	"grid":     func(n int, _ float64) builder.Constructor { return builder.Grid(n, n) },
	"random":   builder.RandomSparse,
}

func shapeNames() string {
	names := make([]string, 0, len(shapes))
	for n := range shapes {
		names = append(names, n)
	}
	sort.Strings(names)

	return strings.Join(names, ", ")
}

func newDemoCmd(st *cliState) *cobra.Command {
	var (
		size      int
		prob      float64
		seed      int64
		maxWeight int64
		maxDist   int64
		algorithm string
	)

	cmd := &cobra.Command{
		Use:   "demo <shape>",
		Short: "Generate a graph and play one algorithm on it",
		Long:  "Generate a graph of the given shape (" + shapeNames() + ") and play an algorithm from its first vertex.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mk, ok := shapes[strings.ToLower(args[0])]
			if !ok {
				return fmt.Errorf("unknown shape %q (want one of %s)", args[0], shapeNames())
			}
			alg, err := session.ParseAlgorithm(algorithm)
			if err != nil {
				return err
			}
			if maxWeight < 1 {
				return fmt.Errorf("--max-weight must be at least 1, got %d", maxWeight)
			}
			if maxDist < 0 {
				return fmt.Errorf("--max-distance must not be negative, got %d", maxDist)
			}
			cfg, err := config.Load(st.v, st.configPath)
			if err != nil {
				return err
			}
			logger, err := logging.New(cmd.ErrOrStderr(), logging.Config{
				Level:   cfg.LogLevel,
				Format:  logging.Format(cfg.LogFormat),
				Service: "graphwalk",
			})
			if err != nil {
				return err
			}
			rec, err := telemetry.New(telemetry.Config{Enabled: cfg.TelemetryEnabled})
			if err != nil {
				return fmt.Errorf("telemetry: %w", err)
			}

			g, err := builder.BuildGraph(
				[]builder.BuilderOption{builder.WithSeed(seed), builder.WithWeightFn(builder.UniformWeightFn(1, maxWeight))},
				mk(size, prob),
			)
			if err != nil {
				return err
			}

			styles := render.DefaultStyles()
			if st.noColor {
				styles = render.PlainStyles()
			}
			printer := render.NewPrinter(cmd.OutOrStdout(), styles, !st.noColor)
			printer.Snapshot(g.Snapshot())

			sopts := []session.Option{
				session.WithClock(clock.RealClock{}),
				session.WithInterval(cfg.PlaybackInterval),
				session.WithLogger(logger),
				session.WithTelemetry(rec),
			}
			if maxDist > 0 {
				sopts = append(sopts, session.WithDijkstraOptions(dijkstra.WithMaxDistance(maxDist)))
			}
			sess := session.New(g, sopts...)
			defer sess.Close()

			return playDemo(cmd, sess, alg, printer)
		},
	}
	flags := cmd.Flags()
	flags.IntVarP(&size, "size", "n", 6, "number of vertices (grid side length for grid)")
	flags.Float64VarP(&prob, "probability", "p", 0.4, "edge probability for random")
	flags.Int64Var(&seed, "seed", 1, "random seed for topology and weights")
	flags.Int64Var(&maxWeight, "max-weight", 9, "weights are drawn uniformly from [1, max-weight]")
	flags.Int64Var(&maxDist, "max-distance", 0, "dijkstra: ignore vertices farther than this (0 means no cap)")
	flags.StringVarP(&algorithm, "algorithm", "a", "dfs", "algorithm to play: dfs, bfs, dijkstra, prim")

	return cmd
}

func playDemo(cmd *cobra.Command, sess *session.Session, alg session.Algorithm, printer *render.Printer) error {
	evs, err := sess.StartAlgorithm(alg)
	if err != nil {
		return err
	}
	for _, ev := range evs {
		printer.Event(ev)
	}

	var start core.VertexID
	if vs := sess.Graph().Vertices(); len(vs) > 0 {
		start = vs[0]
	}
	evs, err = sess.PickStart(cmd.Context(), start)
	if err != nil {
		return err
	}
	for _, ev := range evs {
		printer.Event(ev)
	}
	run := sess.Current()
	for ev := range run.Events() {
		printer.Event(ev)
	}
	printer.Snapshot(sess.Graph().Snapshot())
	if alg == session.SpanningTree && run.State() == session.StateTerminated {
		fmt.Fprintln(cmd.OutOrStdout(), mstCheck(sess.Graph(), start))
	}

	return cmd.Context().Err()
}

// mstCheck recomputes the tree with Prim and Kruskal and reports both totals.
func mstCheck(g *core.Graph, root core.VertexID) string {
	_, prim, err := prim_kruskal.Compute(g, prim_kruskal.WithMethod(prim_kruskal.MethodPrim), prim_kruskal.WithRoot(root))
	if err != nil {
		return "mst check: " + err.Error()
	}
	_, kruskal, err := prim_kruskal.Compute(g, prim_kruskal.WithMethod(prim_kruskal.MethodKruskal))
	if err != nil {
		return fmt.Sprintf("mst check: prim total %d, kruskal: %v", prim, err)
	}

	return fmt.Sprintf("mst check: prim total %d, kruskal total %d", prim, kruskal)
}
