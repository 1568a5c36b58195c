// Package traverse: depth-first search.
//
// DFS uses an explicit frame stack rather than recursion, so stack depth is
// bounded predictably on large maps and partial states are inspectable in
// tests. Neighbor order is identical to BFS, and the visited-set discipline
// guarantees termination on cyclic maps: no node is entered twice.

package traverse

import "github.com/katalvlaran/campusnav/core"

// dfsFrame is one explicit-stack entry: a node plus a cursor into its
// neighbor list.
type dfsFrame struct {
	id   string
	nbrs []core.Neighbor
	next int
}

// dfs runs the LIFO search from start on the walker's graph.
//
// The trace records a Visit event when a node is first entered, an Examine
// event for every edge considered from it, and a Backtrack event when its
// neighbor list is exhausted. The search stops as soon as the goal is
// entered; no Backtrack events follow a successful entry.
func (w *walker) dfs(start string) error {
	stack := make([]dfsFrame, 0, w.graph.NodeCount())

	if err := w.dfsEnter(&stack, start); err != nil || w.found {
		return err
	}

	for len(stack) > 0 {
		if err := w.cancelled(); err != nil {
			return err
		}

		top := &stack[len(stack)-1]
		descended := false
		for top.next < len(top.nbrs) {
			nb := top.nbrs[top.next]
			top.next++
			w.record(Event{Kind: Examine, Node: top.id, Edge: nb.Edge.ID})
			if w.visited[nb.ID] {
				continue
			}
			w.res.Parent[nb.ID] = top.id
			if err := w.dfsEnter(&stack, nb.ID); err != nil {
				return err
			}
			if w.found {
				return nil
			}
			descended = true
			break
		}
		if !descended {
			w.record(Event{Kind: Backtrack, Node: top.id})
			stack = stack[:len(stack)-1]
		}
	}

	return nil
}

// dfsEnter marks id visited, records its Visit event, checks the goal, and
// pushes its frame with the neighbor list fetched once.
func (w *walker) dfsEnter(stack *[]dfsFrame, id string) error {
	w.visited[id] = true
	w.res.Order = append(w.res.Order, id)
	w.record(Event{Kind: Visit, Node: id})

	if id == w.goal {
		w.found = true
		return nil
	}

	nbrs, err := w.neighbors(id)
	if err != nil {
		return err
	}
	*stack = append(*stack, dfsFrame{id: id, nbrs: nbrs})

	return nil
}
