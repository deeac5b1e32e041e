// SPDX-License-Identifier: MIT
// Package: graphwalk/builder
//
// impl_cycle.go - Cycle, Path and Wheel constructors.
//
// Contract:
//   • Vertices are added in index order, edges in ascending i.
//   • Complexity O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphwalk/core"
)

const (
	methodCycle = "Cycle"
	methodPath  = "Path"
	methodWheel = "Wheel"

	minCycleNodes = 3
	minPathNodes  = 2
	minWheelNodes = 4
)

// Cycle builds the simple cycle C_n: i–(i+1)%n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		ids := addVertices(g, cfg, n)
		for i := 0; i < n; i++ {
			if err := link(g, cfg, methodCycle, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Path builds the simple path P_n: i–(i+1).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		ids := addVertices(g, cfg, n)
		for i := 0; i+1 < n; i++ {
			if err := link(g, cfg, methodPath, ids[i], ids[i+1]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Wheel builds W_n: vertex 0 is the hub, vertices 1..n-1 form a rim cycle and
// each rim vertex is joined to the hub. Rim edges come first.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		ids := addVertices(g, cfg, n)
		rim := ids[1:]
		for i := range rim {
			if err := link(g, cfg, methodWheel, rim[i], rim[(i+1)%len(rim)]); err != nil {
				return err
			}
		}
		for _, v := range rim {
			if err := link(g, cfg, methodWheel, ids[0], v); err != nil {
				return err
			}
		}

		return nil
	}
}
