// Package core: Graph method implementations.
//
// This file provides thread-safe operations for node and edge management
// on the Graph type defined in types.go. A single RWMutex guards all state;
// every mutation either fully succeeds or leaves the graph unchanged.
// Adjacency is stored as per-node slices of edge IDs in creation order,
// which makes Neighbors deterministic and traversal traces reproducible.

package core

import (
	"fmt"
	"sort"
	"strings"
)

const edgeIDPrefix = "e"

// AddNode inserts a new building with the given name, canvas position,
// and display weight.
// Returns ErrEmptyName if name is empty or blank, ErrDuplicateName if the
// name is already taken, ErrBadWeight if weight < 0.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(name string, x, y, weight float64) error {
	// Validate input before touching state
	if isBlank(name) {
		return ErrEmptyName
	}
	if weight < 0 {
		return fmt.Errorf("%w: node weight %g is negative", ErrBadWeight, weight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.nodes[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}
	g.nodes[name] = &Node{Name: name, X: x, Y: y, Weight: weight}
	// Adjacency starts empty; a nil slice is fine until the first edge.

	return nil
}

// HasNode reports whether a building with the given name exists.
// Complexity: O(1).
func (g *Graph) HasNode(name string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, exists := g.nodes[name]

	return exists
}

// Node returns a copy of the named building's record.
// Returns ErrNodeNotFound if absent.
// Complexity: O(1).
func (g *Graph) Node(name string) (Node, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[name]
	if !ok {
		return Node{}, fmt.Errorf("%w: %q", ErrNodeNotFound, name)
	}

	return *n, nil
}

// RemoveNode deletes the building and every pathway incident to it, as one
// atomic operation. Returns the number of edges removed by the cascade.
// Returns ErrNodeNotFound if the node does not exist.
// Complexity: O(deg(v) · d) where d is the degree of the far endpoints.
func (g *Graph) RemoveNode(name string) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.nodes[name]; !exists {
		return 0, fmt.Errorf("%w: %q", ErrNodeNotFound, name)
	}

	// Cascade: drop every incident edge from all three indexes.
	incident := g.adjacency[name]
	for _, eid := range incident {
		entry := g.edges[eid]
		delete(g.edges, eid)
		delete(g.pairs, newPairKey(entry.e.From, entry.e.To))
		// Unlink from the far endpoint's adjacency slice.
		other := entry.e.From
		if other == name {
			other = entry.e.To
		}
		g.adjacency[other] = removeEdgeID(g.adjacency[other], eid)
	}
	removed := len(incident)

	delete(g.adjacency, name)
	delete(g.nodes, name)

	return removed, nil
}

// AddEdge creates a new open pathway between two distinct existing buildings
// and returns its unique Edge.ID.
// Returns ErrEmptyName, ErrSelfLoop, ErrNodeNotFound (either endpoint),
// ErrDuplicateEdge (pair already connected), or ErrBadWeight
// (distance <= 0 or time <= 0).
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v string, distance, time float64, accessible bool) (string, error) {
	// 1) Input validation, cheapest checks first
	if isBlank(u) || isBlank(v) {
		return "", ErrEmptyName
	}
	if u == v {
		return "", fmt.Errorf("%w: %q", ErrSelfLoop, u)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 2) Both endpoints must exist
	if _, ok := g.nodes[u]; !ok {
		return "", fmt.Errorf("%w: %q", ErrNodeNotFound, u)
	}
	if _, ok := g.nodes[v]; !ok {
		return "", fmt.Errorf("%w: %q", ErrNodeNotFound, v)
	}

	// 3) At most one edge per unordered pair
	key := newPairKey(u, v)
	if _, dup := g.pairs[key]; dup {
		return "", fmt.Errorf("%w: %s-%s", ErrDuplicateEdge, u, v)
	}

	// 4) Positive attribute constraint
	if distance <= 0 || time <= 0 {
		return "", fmt.Errorf("%w: distance=%g time=%g", ErrBadWeight, distance, time)
	}

	// 5) Create and index; new edges are open
	g.nextEdgeSeq++
	eid := fmt.Sprintf("%s%d", edgeIDPrefix, g.nextEdgeSeq)
	g.edges[eid] = &edgeEntry{
		e:   Edge{ID: eid, From: u, To: v, Distance: distance, Time: time, Accessible: accessible},
		seq: g.nextEdgeSeq,
	}
	g.pairs[key] = eid
	g.adjacency[u] = append(g.adjacency[u], eid)
	g.adjacency[v] = append(g.adjacency[v], eid)

	return eid, nil
}

// RemoveEdge deletes the pathway between the given pair.
// Returns ErrEdgeNotFound if no such edge exists.
// Complexity: O(deg(u) + deg(v)).
func (g *Graph) RemoveEdge(u, v string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	key := newPairKey(u, v)
	eid, ok := g.pairs[key]
	if !ok {
		return fmt.Errorf("%w: %s-%s", ErrEdgeNotFound, u, v)
	}
	entry := g.edges[eid]
	delete(g.edges, eid)
	delete(g.pairs, key)
	g.adjacency[entry.e.From] = removeEdgeID(g.adjacency[entry.e.From], eid)
	g.adjacency[entry.e.To] = removeEdgeID(g.adjacency[entry.e.To], eid)

	return nil
}

// HasEdge reports whether a pathway connects the given pair.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, exists := g.pairs[newPairKey(u, v)]

	return exists
}

// Edge returns a copy of the pathway between the given pair.
// Returns ErrEdgeNotFound if absent.
// Complexity: O(1).
func (g *Graph) Edge(u, v string) (Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	eid, ok := g.pairs[newPairKey(u, v)]
	if !ok {
		return Edge{}, fmt.Errorf("%w: %s-%s", ErrEdgeNotFound, u, v)
	}

	return g.edges[eid].e, nil
}

// ToggleClosed flips the pathway's closed flag and returns the new value.
// A closed edge is excluded from traversal but stays in the store.
// Returns ErrEdgeNotFound if absent.
// Complexity: O(1).
func (g *Graph) ToggleClosed(u, v string) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	eid, ok := g.pairs[newPairKey(u, v)]
	if !ok {
		return false, fmt.Errorf("%w: %s-%s", ErrEdgeNotFound, u, v)
	}
	entry := g.edges[eid]
	entry.e.Closed = !entry.e.Closed

	return entry.e.Closed, nil
}

// ToggleAccessible flips the pathway's accessible flag and returns the new value.
// Returns ErrEdgeNotFound if absent.
// Complexity: O(1).
func (g *Graph) ToggleAccessible(u, v string) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	eid, ok := g.pairs[newPairKey(u, v)]
	if !ok {
		return false, fmt.Errorf("%w: %s-%s", ErrEdgeNotFound, u, v)
	}
	entry := g.edges[eid]
	entry.e.Accessible = !entry.e.Accessible

	return entry.e.Accessible, nil
}

// SetEdgeWeights replaces the pathway's distance and time attributes.
// Returns ErrEdgeNotFound if absent, ErrBadWeight unless both are positive.
// Complexity: O(1).
func (g *Graph) SetEdgeWeights(u, v string, distance, time float64) error {
	if distance <= 0 || time <= 0 {
		return fmt.Errorf("%w: distance=%g time=%g", ErrBadWeight, distance, time)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	eid, ok := g.pairs[newPairKey(u, v)]
	if !ok {
		return fmt.Errorf("%w: %s-%s", ErrEdgeNotFound, u, v)
	}
	entry := g.edges[eid]
	entry.e.Distance = distance
	entry.e.Time = time

	return nil
}

// Neighbors returns the open pathways incident to the named building, in
// edge-creation order. Closed edges are always excluded; when accessibleOnly
// is true, non-accessible edges are excluded as well. The fixed order makes
// traversal traces reproducible.
// Returns ErrNodeNotFound if the node does not exist.
// Complexity: O(deg(v)).
func (g *Graph) Neighbors(name string, accessibleOnly bool) ([]Neighbor, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.nodes[name]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, name)
	}

	incident := g.adjacency[name]
	out := make([]Neighbor, 0, len(incident))
	for _, eid := range incident {
		entry := g.edges[eid]
		if entry.e.Closed {
			continue
		}
		if accessibleOnly && !entry.e.Accessible {
			continue
		}
		other := entry.e.From
		if other == name {
			other = entry.e.To
		}
		out = append(out, Neighbor{ID: other, Edge: entry.e})
	}

	return out, nil
}

// Nodes returns copies of all buildings, sorted by name.
// Complexity: O(V log V).
func (g *Graph) Nodes() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		out = append(out, *n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out
}

// Edges returns copies of all pathways in creation order, so UI edge lists
// stay stable across redraws.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgesBySeq()
}

// NodeCount returns the number of buildings. O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// EdgeCount returns the number of pathways. O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Clear resets the graph to the empty state.
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.nodes = make(map[string]*Node)
	g.edges = make(map[string]*edgeEntry)
	g.pairs = make(map[pairKey]string)
	g.adjacency = make(map[string][]string)
	g.nextEdgeSeq = 0
}

// Internal helpers:
////////////////////

// edgesBySeq collects edge copies sorted by creation sequence.
// Caller must hold at least a read lock.
func (g *Graph) edgesBySeq() []Edge {
	entries := make([]*edgeEntry, 0, len(g.edges))
	for _, entry := range g.edges {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].seq < entries[j].seq })

	out := make([]Edge, len(entries))
	for i, entry := range entries {
		out[i] = entry.e
	}

	return out
}

// removeEdgeID drops eid from the slice, preserving the order of the rest.
func removeEdgeID(ids []string, eid string) []string {
	for i, id := range ids {
		if id == eid {
			return append(ids[:i], ids[i+1:]...)
		}
	}

	return ids
}

// isBlank reports whether the name is empty or whitespace-only.
func isBlank(name string) bool {
	return strings.TrimSpace(name) == ""
}
