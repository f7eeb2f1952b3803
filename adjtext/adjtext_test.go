package adjtext_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/frontierpath/adjtext"
	"github.com/katalvlaran/frontierpath/pathgraph"
)

func TestParse_SimpleTriangle(t *testing.T) {
	t.Parallel()

	// line i lists vertex i's neighbours
	input := "2 3\n1 3\n1 2\n"
	g, err := adjtext.Parse(strings.NewReader(input))
	require.NoError(t, err)

	require.Equal(t, 3, g.N)
	require.ElementsMatch(t, []pathgraph.Edge{{U: 1, V: 2}, {U: 1, V: 3}, {U: 2, V: 3}}, g.Edges)
}

func TestParse_DiscardsSelfLoopsAndDuplicates(t *testing.T) {
	t.Parallel()

	input := "1 2\n1\n"
	g, err := adjtext.Parse(strings.NewReader(input))
	require.NoError(t, err)

	require.Equal(t, 2, g.N)
	require.Equal(t, []pathgraph.Edge{{U: 1, V: 2}}, g.Edges)
}

func TestParse_TrailingBlankLineRegistersIsolatedVertex(t *testing.T) {
	t.Parallel()

	input := "2\n1\n\n"
	g, err := adjtext.Parse(strings.NewReader(input))
	require.NoError(t, err)

	require.Equal(t, 3, g.N)
	require.Equal(t, []pathgraph.Edge{{U: 1, V: 2}}, g.Edges)
}

func TestParse_RejectsMalformedToken(t *testing.T) {
	t.Parallel()

	_, err := adjtext.Parse(strings.NewReader("2 abc\n1\n"))
	require.ErrorIs(t, err, adjtext.ErrMalformedLine)
}

func TestParse_RejectsTooManyEdges(t *testing.T) {
	t.Parallel()

	// A 4-vertex complete-graph adjacency list has 6 edges.
	input := "2 3 4\n1 3 4\n1 2 4\n1 2 3\n"
	_, err := adjtext.Parse(strings.NewReader(input), adjtext.WithMaxEdges(2))
	require.ErrorIs(t, err, adjtext.ErrTooManyEdges)
}

func TestParse_ZeroMaxEdgesDisablesCap(t *testing.T) {
	t.Parallel()

	input := "2 3 4\n1 3 4\n1 2 4\n1 2 3\n"
	g, err := adjtext.Parse(strings.NewReader(input), adjtext.WithMaxEdges(0))
	require.NoError(t, err)
	require.Len(t, g.Edges, 6)
}
