package main

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/graphwalk/internal/config"
	"github.com/katalvlaran/graphwalk/internal/render"
)

// cliState is shared by the subcommands of one root command.
type cliState struct {
	v          *viper.Viper
	configPath string
	noColor    bool
}

func newRootCmd() *cobra.Command {
	st := &cliState{v: config.NewViper()}

	rootCmd := &cobra.Command{
		Use:           "graphwalk",
		Short:         "Graphwalk animates graph algorithms step by step",
		Long:          `Graphwalk builds an undirected weighted graph from a script and plays DFS, BFS, Dijkstra and Prim runs one discovery step at a time.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&st.configPath, "config", "c", "", "config file (YAML)")
	flags.String("log-level", "", "log level: debug, info, warn, error")
	flags.String("log-format", "", "log format: text or json")
	flags.Duration("interval", 0, "delay between played steps")
	flags.BoolVar(&st.noColor, "no-color", false, "disable colored output")

	// Unchanged flags fall through to env, file and defaults.
	_ = st.v.BindPFlag(config.OptionLogLevel, flags.Lookup("log-level"))
	_ = st.v.BindPFlag(config.OptionLogFormat, flags.Lookup("log-format"))
	_ = st.v.BindPFlag(config.OptionPlaybackInterval, flags.Lookup("interval"))

	rootCmd.AddCommand(
		newRunCmd(st),
		newDemoCmd(st),
		newAlgorithmsCmd(),
	)

	return rootCmd
}

// execute runs cmd and reports a failure on its error stream. Cobra's own
// error printing is silenced so every failure is reported exactly once.
func execute(ctx context.Context, cmd *cobra.Command) error {
	err := cmd.ExecuteContext(ctx)
	if err != nil {
		render.NewPrinter(cmd.ErrOrStderr(), render.DefaultStyles(), false).Error(err)
	}

	return err
}
