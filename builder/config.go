// Package builder provides internal configuration types and functional
// options for graph-fixture constructors. Unlike the generator this was
// adapted from, these topologies are never randomized or given alternate ID
// schemes — the one configurable knob is Offset, which shifts every vertex
// number a constructor emits. BuildGraph applies one offset to all of its
// constructors, so it does not give different fixtures disjoint numbering.
//
// Complexity: newBuilderConfig applies N options in O(N) time, O(1) space.
package builder

// BuilderOption customizes the behavior of a graph constructor.
type BuilderOption func(cfg *builderConfig)

// builderConfig holds the configurable parameters for graph builders.
type builderConfig struct {
	offset int // added to every 1-indexed vertex number a constructor emits
}

// newBuilderConfig returns a builderConfig initialized with defaults, then
// applies each provided BuilderOption in order.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{offset: 0}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithOffset shifts all vertex numbers a constructor emits by n; vertex 1
// becomes n+1. Negative offsets are a no-op (vertex numbering is 1-indexed).
func WithOffset(n int) BuilderOption {
	return func(cfg *builderConfig) {
		if n >= 0 {
			cfg.offset = n
		}
	}
}
