// Command graphwalk replays graph-editing scripts and animates DFS, BFS,
// Dijkstra and Prim runs in the terminal.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := execute(ctx, newRootCmd()); err != nil {
		stop()
		os.Exit(1)
	}
}
