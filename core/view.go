// Package core: non-mutating graph views.
//
// Clone produces a fully independent deep copy under read locks; the UI can
// hand a snapshot to a background consumer without freezing edits.

package core

// Clone returns a deep copy of the Graph: nodes, edges, adjacency, and the
// edge ID counter, so IDs created on the clone never collide with copied
// ones. The source graph is not mutated.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := NewGraph()
	out.nextEdgeSeq = g.nextEdgeSeq

	for name, n := range g.nodes {
		cp := *n
		out.nodes[name] = &cp
	}
	for eid, entry := range g.edges {
		cp := *entry
		out.edges[eid] = &cp
	}
	for key, eid := range g.pairs {
		out.pairs[key] = eid
	}
	for name, ids := range g.adjacency {
		out.adjacency[name] = append([]string(nil), ids...)
	}

	return out
}
