// Package traverse: breadth-first search.
//
// BFS explores buildings in increasing hop distance from the start, so the
// reconstructed path has the minimum number of edges among all routes that
// respect the closed/accessible filters.

package traverse

// bfs runs the FIFO search from start on the walker's graph.
//
// The trace records a Visit event on every dequeue and an Examine event for
// every edge considered while expanding the dequeued node. The search stops
// when the goal is dequeued, so the goal's Visit is the final trace event of
// a successful run. Nodes queued ahead of the goal are still expanded before
// the stop; that extra exploration is the cost of the stop-on-dequeue rule.
func (w *walker) bfs(start string) error {
	queue := make([]string, 0, w.graph.NodeCount())
	// Seed the frontier; visited is marked at enqueue time.
	w.visited[start] = true
	queue = append(queue, start)

	for len(queue) > 0 {
		if err := w.cancelled(); err != nil {
			return err
		}

		cur := queue[0]
		queue = queue[1:]
		w.res.Order = append(w.res.Order, cur)
		w.record(Event{Kind: Visit, Node: cur})

		if cur == w.goal {
			w.found = true
			return nil
		}

		nbrs, err := w.neighbors(cur)
		if err != nil {
			return err
		}
		for _, nb := range nbrs {
			w.record(Event{Kind: Examine, Node: cur, Edge: nb.Edge.ID})
			if w.visited[nb.ID] {
				continue
			}
			w.visited[nb.ID] = true
			w.res.Parent[nb.ID] = cur
			queue = append(queue, nb.ID)
		}
	}

	return nil
}
