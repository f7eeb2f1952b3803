// Package adjtext parses the adjacency-list text format the frontier
// construction algorithm's reference implementation reads from stdin: line
// i (1-based) lists the neighbours of vertex i as whitespace-separated
// integers. Each undirected edge is canonicalised to (min,max); duplicates
// and self-loops are discarded silently, matching the reference parser's
// leniency. The vertex count n is the larger of the line count and the
// largest integer encountered anywhere in the input, so a trailing blank
// line for an otherwise-isolated highest-numbered vertex still registers it.
package adjtext

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/frontierpath/pathgraph"
)

// DefaultMaxEdges mirrors the reference C/C++ implementations'
// MAX_GRAPH_EDGE_LIST_SIZE cap; Parse rejects input producing more accepted
// edges than this, returning ErrTooManyEdges.
const DefaultMaxEdges = 1024

// ErrTooManyEdges indicates the input would produce more accepted edges
// than the configured cap.
var ErrTooManyEdges = errors.New("adjtext: edge count exceeds implementation cap")

// ErrMalformedLine indicates a line contained a token that is not a
// positive integer.
var ErrMalformedLine = errors.New("adjtext: malformed adjacency line")

// Option configures Parse.
type Option func(*options)

type options struct {
	maxEdges int
}

// WithMaxEdges overrides DefaultMaxEdges. A non-positive value disables the
// cap entirely — use with care on untrusted input.
func WithMaxEdges(n int) Option {
	return func(o *options) { o.maxEdges = n }
}

// Parse reads the adjacency-list text format from r and returns the
// resulting pathgraph.Graph.
func Parse(r io.Reader, opts ...Option) (*pathgraph.Graph, error) {
	cfg := options{maxEdges: DefaultMaxEdges}
	for _, opt := range opts {
		opt(&cfg)
	}

	b := pathgraph.NewBuilder()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	accepted := 0
	for lineNo := 1; sc.Scan(); lineNo++ {
		line := sc.Text()
		if err := b.Touch(lineNo); err != nil {
			return nil, fmt.Errorf("adjtext: line %d: %w", lineNo, err)
		}

		fields := strings.Fields(line)
		for _, tok := range fields {
			nbr, err := strconv.Atoi(tok)
			if err != nil || nbr < 1 {
				return nil, fmt.Errorf("adjtext: line %d: %w: %q", lineNo, ErrMalformedLine, tok)
			}

			ok, err := b.AddEdge(lineNo, nbr)
			if err != nil {
				return nil, fmt.Errorf("adjtext: line %d: %w", lineNo, err)
			}
			if ok {
				accepted++
				if cfg.maxEdges > 0 && accepted > cfg.maxEdges {
					return nil, fmt.Errorf("%w: limit %d", ErrTooManyEdges, cfg.maxEdges)
				}
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("adjtext: %w", err)
	}

	return b.Build(), nil
}
