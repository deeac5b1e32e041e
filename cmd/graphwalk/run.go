package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"k8s.io/utils/clock"

	"github.com/katalvlaran/graphwalk/core"
	"github.com/katalvlaran/graphwalk/internal/config"
	"github.com/katalvlaran/graphwalk/internal/logging"
	"github.com/katalvlaran/graphwalk/internal/render"
	"github.com/katalvlaran/graphwalk/internal/script"
	"github.com/katalvlaran/graphwalk/internal/telemetry"
	"github.com/katalvlaran/graphwalk/session"
)

func newRunCmd(st *cliState) *cobra.Command {
	var showGraph bool

	cmd := &cobra.Command{
		Use:   "run <script>",
		Short: "Apply a YAML or HCL script and play its runs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
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

			sc, err := script.Load(args[0])
			if err != nil {
				return err
			}

			styles := render.DefaultStyles()
			if st.noColor {
				styles = render.PlainStyles()
			}
			printer := render.NewPrinter(cmd.OutOrStdout(), styles, !st.noColor)

			sess := session.New(core.NewGraph(),
				session.WithClock(clock.RealClock{}),
				session.WithInterval(cfg.PlaybackInterval),
				session.WithLogger(logger),
				session.WithTelemetry(rec),
			)
			defer sess.Close()

			ctx := logging.WithLogger(cmd.Context(), logger)
			logger.Info("applying script", "path", args[0], "steps", len(sc.Steps))
			if err := script.Apply(ctx, sess, sc, printer.Event); err != nil {
				return err
			}
			if showGraph {
				printer.Snapshot(sess.Graph().Snapshot())
			}

			return nil
		},
	}
	cmd.Flags().BoolVar(&showGraph, "graph", true, "print the graph with run highlights after the script")

	return cmd
}
