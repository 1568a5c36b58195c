package traverse_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/stats"
	"github.com/katalvlaran/campusnav/traverse"
)

// ExampleFindPath builds a small map, finds a route with BFS, and
// summarizes it — the same sequence the UI runs on "Find Path".
func ExampleFindPath() {
	g := core.NewGraph()
	for _, name := range []string{"Library", "Gym", "Theater", "Arts Center"} {
		g.AddNode(name, 0, 0, 1.0)
	}
	g.AddEdge("Library", "Gym", 180, 2.5, true)
	g.AddEdge("Gym", "Arts Center", 220, 3.5, true)
	g.AddEdge("Library", "Theater", 150, 2.0, false)
	g.AddEdge("Theater", "Arts Center", 120, 2.0, false)

	res, err := traverse.FindPath(g, "Library", "Arts Center", traverse.BFS,
		traverse.WithAccessibleOnly(true))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("route:", strings.Join(res.Path, " -> "))
	s, _ := stats.Summarize(g, res.Path)
	fmt.Printf("distance: %gm, time: %g min, hops: %d\n", s.TotalDistance, s.TotalTime, s.Hops)

	// Output:
	// route: Library -> Gym -> Arts Center
	// distance: 400m, time: 6 min, hops: 2
}
