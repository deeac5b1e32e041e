// SPDX-License-Identifier: MIT
// Package: graphwalk/builder
//
// impl_random_sparse.go - Erdős–Rényi G(n, p) constructor.
//
// Contract:
//   • n ≥ 1, p ∈ [0,1].
//   • p ∈ (0,1) requires an RNG (ErrNeedRandSource); p = 0 or 1 is exact.
//   • Pairs are considered in lexicographic (i<j) order, one draw per pair.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphwalk/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse builds G(n, p): each unordered pair is joined with
// probability p.
// Complexity: O(n²) draws.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		ids := addVertices(g, cfg, n)
		var (
			i, j int
			keep bool
		)
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				switch p {
				case probMin:
					keep = false
				case probMax:
					keep = true
				default:
					keep = cfg.rng.Float64() < p
				}
				if !keep {
					continue
				}
				if err := link(g, cfg, methodRandomSparse, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
