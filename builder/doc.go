// Package builder provides deterministic pathgraph.Graph fixtures used by
// tests and by the CLI's `fixture` subcommand: Path, Cycle, Complete, and
// Grid.
//
// The package offers the following key components:
//
//   - Constructor: a closure appending edges to a *pathgraph.Builder in a
//     stable, documented order.
//   - BuildGraph: runs any number of Constructors in order and freezes the
//     result into a *pathgraph.Graph.
//   - Topology factories: Cycle, Path, Complete, Grid.
//
// Guarantees:
//
//   - Deterministic: the same factory and parameters always produce
//     byte-identical vertex numbering and edge order. No randomness is
//     used anywhere in this package — unlike the generator this was
//     adapted from, none of these fixtures needs a seed.
//   - Fast-fail on invalid sizes via sentinel errors (errors.Is), never
//     panics at runtime.
//
// See individual function documentation for contracts and complexity.
package builder
