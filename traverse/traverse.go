// Package traverse implements route finding over a core.Graph.
//
// FindPath runs BFS or DFS from a start building toward a goal, honoring
// the store's closed-edge exclusion and an optional accessible-only filter,
// and records a replayable event trace. Filtering happens at the source:
// both algorithms read core.Neighbors, so a filtered edge never appears in
// the trace, the visit order, or the path.
package traverse

import (
	"fmt"

	"github.com/katalvlaran/campusnav/core"
)

// walker encapsulates mutable search state shared by both algorithms.
type walker struct {
	graph   *core.Graph
	opts    Options
	goal    string
	visited map[string]bool
	res     *Result
	found   bool
}

// FindPath searches for a route from start to goal using the chosen
// algorithm, applying any number of functional Options.
// Returns ErrGraphNil, ErrStartNotFound, ErrGoalNotFound, or
// ErrUnknownAlgorithm for invalid input, and the context's error on
// cancellation. An unreachable goal is not an error: the Result comes back
// with Found == false and the complete trace.
//
// The search never mutates the graph. With an unchanged graph and the same
// arguments, the Result is identical run to run (deterministic neighbor
// order in core).
// Complexity: O(V + E) time, O(V) space.
func FindPath(g *core.Graph, start, goal string, algo Algorithm, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartNotFound, start)
	}
	if !g.HasNode(goal) {
		return nil, fmt.Errorf("%w: %q", ErrGoalNotFound, goal)
	}

	n := g.NodeCount()
	w := &walker{
		graph:   g,
		opts:    o,
		goal:    goal,
		visited: make(map[string]bool, n),
		res: &Result{
			Order:  make([]string, 0, n),
			Parent: make(map[string]string, n),
			Trace:  make([]Event, 0, n),
		},
	}

	var err error
	switch algo {
	case BFS:
		err = w.bfs(start)
	case DFS:
		err = w.dfs(start)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, algo)
	}
	if err != nil {
		return nil, err
	}

	if w.found {
		w.res.Found = true
		w.res.Path = buildPath(w.res.Parent, start, goal)
	}

	return w.res, nil
}

// record appends an event to the trace and streams it to OnEvent if set.
func (w *walker) record(ev Event) {
	w.res.Trace = append(w.res.Trace, ev)
	if w.opts.OnEvent != nil {
		w.opts.OnEvent(ev)
	}
}

// neighbors reads the current node's open pathways under the active filter.
func (w *walker) neighbors(id string) ([]core.Neighbor, error) {
	nbrs, err := w.graph.Neighbors(id, w.opts.AccessibleOnly)
	if err != nil {
		return nil, fmt.Errorf("traverse: neighbors of %q: %w", id, err)
	}

	return nbrs, nil
}

// cancelled reports the context error, if any.
func (w *walker) cancelled() error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
		return nil
	}
}

// buildPath walks parent links from goal back to start, then reverses.
// Returns nil if the chain does not reach start.
func buildPath(parent map[string]string, start, goal string) []string {
	path := []string{goal}
	for cur := goal; cur != start; {
		prev, ok := parent[cur]
		if !ok {
			return nil
		}
		cur = prev
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
