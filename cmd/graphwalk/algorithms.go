package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphwalk/session"
)

func newAlgorithmsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List the algorithms a script can start",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, a := range session.Algorithms() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-9s %s\n", a.Tag(), a.String())
			}

			return nil
		},
	}
}
