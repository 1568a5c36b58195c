// Package stats derives summary statistics for a reconstructed route:
// total distance, total walking time, hop count, and whether every pathway
// on the route is accessible.
//
// Edge attributes are looked up fresh from the store at Summarize time, not
// cached from the search, so the numbers reflect any toggles or weight
// randomization since the route was computed.
package stats

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/campusnav/core"
)

// Sentinel errors for route summarization.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("stats: graph is nil")

	// ErrShortPath is returned for a route with fewer than two buildings.
	ErrShortPath = errors.New("stats: path needs at least two nodes")

	// ErrEdgeMissing is returned when a consecutive pair on the route has no
	// edge in the store — the route is stale relative to later edits.
	ErrEdgeMissing = errors.New("stats: path edge missing from graph")
)

// Stats summarizes one route for the output panel.
type Stats struct {
	// TotalDistance sums Distance over the route's pathways.
	TotalDistance float64

	// TotalTime sums Time over the route's pathways.
	TotalTime float64

	// Hops is the number of pathways on the route: len(path) - 1.
	Hops int

	// AllAccessible is true iff every pathway on the route is accessible.
	AllAccessible bool
}

// Summarize computes Stats for the route described by path, an ordered
// sequence of building names. Each consecutive pair is resolved against g
// at call time.
// Returns ErrGraphNil for a nil graph, ErrShortPath when len(path) < 2, and
// ErrEdgeMissing (wrapping the store's lookup error) when the route no
// longer matches the graph.
// Complexity: O(len(path)).
func Summarize(g *core.Graph, path []string) (Stats, error) {
	if g == nil {
		return Stats{}, ErrGraphNil
	}
	if len(path) < 2 {
		return Stats{}, fmt.Errorf("%w: got %d", ErrShortPath, len(path))
	}

	s := Stats{Hops: len(path) - 1, AllAccessible: true}
	for i := 0; i+1 < len(path); i++ {
		e, err := g.Edge(path[i], path[i+1])
		if err != nil {
			return Stats{}, fmt.Errorf("%w: %s-%s: %w", ErrEdgeMissing, path[i], path[i+1], err)
		}
		s.TotalDistance += e.Distance
		s.TotalTime += e.Time
		if !e.Accessible {
			s.AllAccessible = false
		}
	}

	return s, nil
}
