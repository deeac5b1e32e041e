// SPDX-License-Identifier: MIT
// Package: graphwalk/builder
//
// impl_grid.go - Grid(rows, cols) constructor.
//
// Contract:
//   • rows, cols ≥ 1.
//   • Vertices are added row-major; vertex (r,c) has index r*cols+c.
//   • For each cell in row-major order, the right edge precedes the down edge.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphwalk/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid builds a rows×cols 4-neighbor lattice.
// Complexity: O(rows·cols).
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		ids := addVertices(g, cfg, rows*cols)
		at := func(r, c int) core.VertexID { return ids[r*cols+c] }

		var r, c int
		for r = 0; r < rows; r++ {
			for c = 0; c < cols; c++ {
				if c+1 < cols {
					if err := link(g, cfg, methodGrid, at(r, c), at(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(g, cfg, methodGrid, at(r, c), at(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
