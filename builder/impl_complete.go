// SPDX-License-Identifier: MIT
// Package: graphwalk/builder
//
// impl_complete.go - Complete and Star constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphwalk/core"
)

const (
	methodComplete = "Complete"
	methodStar     = "Star"

	minCompleteNodes = 1
	minStarNodes     = 2
)

// Complete builds K_n with edges in lexicographic (i<j) order.
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		ids := addVertices(g, cfg, n)
		var i, j int
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if err := link(g, cfg, methodComplete, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Star builds S_n: vertex 0 is the center joined to 1..n-1.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		ids := addVertices(g, cfg, n)
		for _, v := range ids[1:] {
			if err := link(g, cfg, methodStar, ids[0], v); err != nil {
				return err
			}
		}

		return nil
	}
}
