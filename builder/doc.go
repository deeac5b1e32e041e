// Package builder assembles deterministic graph fixtures on top of core.Graph
// using functional options.
//
// A fixture is described by one or more Constructors applied in order by
// BuildGraph. Each constructor adds its own vertices, so composing several of
// them yields disjoint components:
//
//	g, err := builder.BuildGraph(
//		[]builder.BuilderOption{builder.WithSeed(7), builder.WithWeightFn(builder.UniformWeightFn(1, 9))},
//		builder.Grid(3, 3),
//	)
//
// Vertex labels come from the ID scheme (SymbolIDFn by default: A..Z, a..z,
// 0..9, then decimal indices). Edge weights come from the weight function
// (constant 1 by default).
//
// Option constructors panic on meaningless input; constructors return
// sentinel errors (ErrTooFewVertices, ErrInvalidProbability,
// ErrNeedRandSource, ErrConstructFailed) wrapped with method context.
package builder
