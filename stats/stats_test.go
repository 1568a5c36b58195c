package stats_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/stats"
)

// corner builds the reference fixture:
// A-B(5,2,acc), B-D(3,1,acc), A-C(10,5,non-acc), C-D(2,1,non-acc).
func corner(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, name := range []string{"A", "B", "C", "D"} {
		require.NoError(t, g.AddNode(name, 0, 0, 1))
	}
	add := func(u, v string, dist, dur float64, acc bool) {
		_, err := g.AddEdge(u, v, dist, dur, acc)
		require.NoError(t, err)
	}
	add("A", "B", 5, 2, true)
	add("B", "D", 3, 1, true)
	add("A", "C", 10, 5, false)
	add("C", "D", 2, 1, false)

	return g
}

func TestSummarize_AccessibleRoute(t *testing.T) {
	g := corner(t)

	s, err := stats.Summarize(g, []string{"A", "B", "D"})
	require.NoError(t, err)
	require.Equal(t, stats.Stats{
		TotalDistance: 8,
		TotalTime:     3,
		Hops:          2,
		AllAccessible: true,
	}, s)
}

func TestSummarize_InaccessibleRoute(t *testing.T) {
	g := corner(t)

	s, err := stats.Summarize(g, []string{"A", "C", "D"})
	require.NoError(t, err)
	require.Equal(t, 12.0, s.TotalDistance)
	require.Equal(t, 6.0, s.TotalTime)
	require.Equal(t, 2, s.Hops)
	require.False(t, s.AllAccessible)
}

func TestSummarize_Errors(t *testing.T) {
	g := corner(t)

	_, err := stats.Summarize(nil, []string{"A", "B"})
	require.ErrorIs(t, err, stats.ErrGraphNil)

	_, err = stats.Summarize(g, nil)
	require.ErrorIs(t, err, stats.ErrShortPath)

	_, err = stats.Summarize(g, []string{"A"})
	require.ErrorIs(t, err, stats.ErrShortPath)

	// A-D has no direct edge: the route is not walkable as given.
	_, err = stats.Summarize(g, []string{"A", "D"})
	require.ErrorIs(t, err, stats.ErrEdgeMissing)
	require.ErrorIs(t, err, core.ErrEdgeNotFound)
}

// TestSummarize_ReflectsLaterEdits verifies attributes are read fresh from
// the store, so toggles and weight edits after the search show up, and a
// deleted edge turns the stale route into ErrEdgeMissing.
func TestSummarize_ReflectsLaterEdits(t *testing.T) {
	g := corner(t)
	path := []string{"A", "B", "D"}

	_, err := g.ToggleAccessible("B", "D")
	require.NoError(t, err)
	require.NoError(t, g.SetEdgeWeights("A", "B", 50, 7))

	s, err := stats.Summarize(g, path)
	require.NoError(t, err)
	require.Equal(t, 53.0, s.TotalDistance)
	require.Equal(t, 8.0, s.TotalTime)
	require.False(t, s.AllAccessible)

	require.NoError(t, g.RemoveEdge("B", "D"))
	_, err = stats.Summarize(g, path)
	require.ErrorIs(t, err, stats.ErrEdgeMissing)
}
