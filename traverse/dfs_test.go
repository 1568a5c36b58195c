package traverse_test

import (
	"reflect"
	"testing"

	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/traverse"
)

// TestDFS_CornerScenario follows the first branch all the way down: with
// edges created A-B, B-D, A-C, C-D, the search dives A→B→D without ever
// entering C.
func TestDFS_CornerScenario(t *testing.T) {
	g := buildCorner(t)
	res, err := traverse.FindPath(g, "A", "D", traverse.DFS)
	if err != nil {
		t.Fatalf("FindPath: %v", err)
	}
	if !res.Found {
		t.Fatal("path not found")
	}
	if want := []string{"A", "B", "D"}; !reflect.DeepEqual(res.Path, want) {
		t.Errorf("Path = %v; want %v", res.Path, want)
	}
	if want := []string{"A", "B", "D"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
}

// TestDFS_Backtrack verifies Backtrack events on a dead-end branch.
// A connects to dead-end B first and to the goal C second.
func TestDFS_Backtrack(t *testing.T) {
	g := core.NewGraph()
	for _, name := range []string{"A", "B", "C"} {
		g.AddNode(name, 0, 0, 1)
	}
	g.AddEdge("A", "B", 1, 1, true) // e1, explored first, dead end
	g.AddEdge("A", "C", 1, 1, true) // e2, goal branch

	res, err := traverse.FindPath(g, "A", "C", traverse.DFS)
	if err != nil {
		t.Fatalf("FindPath: %v", err)
	}

	want := []traverse.Event{
		{Kind: traverse.Visit, Node: "A"},
		{Kind: traverse.Examine, Node: "A", Edge: "e1"},
		{Kind: traverse.Visit, Node: "B"},
		{Kind: traverse.Examine, Node: "B", Edge: "e1"}, // back-edge to visited A
		{Kind: traverse.Backtrack, Node: "B"},
		{Kind: traverse.Examine, Node: "A", Edge: "e2"},
		{Kind: traverse.Visit, Node: "C"},
	}
	if !reflect.DeepEqual(res.Trace, want) {
		t.Errorf("Trace = %v; want %v", res.Trace, want)
	}
	if wantPath := []string{"A", "C"}; !reflect.DeepEqual(res.Path, wantPath) {
		t.Errorf("Path = %v; want %v", res.Path, wantPath)
	}
}

// TestDFS_CycleTermination verifies the visited-set discipline on a cyclic
// map with an unreachable goal: every node is entered exactly once and the
// search ends.
func TestDFS_CycleTermination(t *testing.T) {
	g := core.NewGraph()
	ring := []string{"A", "B", "C", "D"}
	for _, name := range ring {
		g.AddNode(name, 0, 0, 1)
	}
	for i := range ring {
		g.AddEdge(ring[i], ring[(i+1)%len(ring)], 1, 1, true)
	}
	g.AddNode("Island", 0, 0, 1)

	res, err := traverse.FindPath(g, "A", "Island", traverse.DFS)
	if err != nil {
		t.Fatalf("FindPath: %v", err)
	}
	if res.Found {
		t.Errorf("unreachable goal reported found, Path = %v", res.Path)
	}

	seen := make(map[string]int)
	for _, id := range res.Order {
		seen[id]++
	}
	for id, n := range seen {
		if n != 1 {
			t.Errorf("node %s entered %d times; want 1", id, n)
		}
	}
	if len(res.Order) != len(ring) {
		t.Errorf("visited %d nodes; want %d (the whole ring)", len(res.Order), len(ring))
	}
}

// TestDFS_FilterConsistency verifies the route never uses closed or
// inaccessible edges in accessible-only mode.
func TestDFS_FilterConsistency(t *testing.T) {
	g := buildCorner(t)
	if _, err := g.ToggleClosed("A", "B"); err != nil {
		t.Fatalf("ToggleClosed: %v", err)
	}

	// Full mode: only route left is A-C-D.
	res, err := traverse.FindPath(g, "A", "D", traverse.DFS)
	if err != nil {
		t.Fatalf("FindPath: %v", err)
	}
	if want := []string{"A", "C", "D"}; !reflect.DeepEqual(res.Path, want) {
		t.Errorf("Path = %v; want %v", res.Path, want)
	}
	for i := 0; i+1 < len(res.Path); i++ {
		e, err := g.Edge(res.Path[i], res.Path[i+1])
		if err != nil {
			t.Fatalf("path uses missing edge %s-%s", res.Path[i], res.Path[i+1])
		}
		if e.Closed {
			t.Errorf("path uses closed edge %s", e.ID)
		}
	}

	// Accessible-only: A is sealed off.
	res, err = traverse.FindPath(g, "A", "D", traverse.DFS, traverse.WithAccessibleOnly(true))
	if err != nil {
		t.Fatalf("FindPath accessible-only: %v", err)
	}
	if res.Found {
		t.Errorf("accessible-only: Found = true, Path = %v; want no path", res.Path)
	}
	for _, ev := range res.Trace {
		if ev.Edge != "" {
			t.Errorf("sealed start examined edge %s", ev.Edge)
		}
	}
}

// TestDFS_Determinism verifies identical runs yield identical results.
func TestDFS_Determinism(t *testing.T) {
	g := buildCorner(t)
	first, err := traverse.FindPath(g, "A", "D", traverse.DFS)
	if err != nil {
		t.Fatalf("FindPath: %v", err)
	}
	second, err := traverse.FindPath(g, "A", "D", traverse.DFS)
	if err != nil {
		t.Fatalf("FindPath: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("identical runs produced different results")
	}
}
