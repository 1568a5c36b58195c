// Package core provides a thread-safe in-memory campus map: a simple
// undirected Graph of named buildings (nodes) and attributed pathways
// (edges), with a minimal, deterministic API surface.
//
// The Graph G = (V,E) enforces the map's structural invariants:
//
//   - Unique, non-empty building names (AddNode rejects duplicates)
//   - No self-loops and at most one pathway per unordered pair
//   - Positive Distance and Time on every pathway, including after
//     randomization
//   - Cascading deletion — RemoveNode atomically drops every incident
//     pathway, so no edge can ever reference a missing node
//
// Why use core.Graph?
//
//   - Deterministic iteration — Neighbors() and Edges() follow edge-creation
//     order, Nodes() is sorted by name, so traversal traces and UI lists are
//     reproducible.
//   - Exclusive ownership — every accessor returns copies; the only way to
//     change the map is through its mutation methods, each of which fully
//     succeeds or leaves the graph untouched.
//   - Snapshot support — Clone() deep-copies the map under read locks.
//   - Injected randomness — RandomizeEdgeWeights/RandomizeNodeWeights take a
//     *rand.Rand, so seeded runs reproduce exactly.
//
// Core methods:
//
//	// Node lifecycle
//	AddNode(name string, x, y, weight float64) error  // O(1)
//	HasNode(name string) bool                         // O(1)
//	Node(name string) (Node, error)                   // O(1)
//	RemoveNode(name string) (removedEdges int, err error)
//
//	// Edge lifecycle
//	AddEdge(u, v string, distance, time float64, accessible bool) (edgeID string, err error)
//	RemoveEdge(u, v string) error
//	ToggleClosed(u, v string) (bool, error)
//	ToggleAccessible(u, v string) (bool, error)
//	SetEdgeWeights(u, v string, distance, time float64) error
//
//	// Queries
//	Neighbors(name string, accessibleOnly bool) ([]Neighbor, error)
//	HasEdge(u, v string) bool
//	Edge(u, v string) (Edge, error)
//	Nodes() []Node
//	Edges() []Edge
//	NodeCount() int
//	EdgeCount() int
//
//	// Bulk
//	RandomizeEdgeWeights(rng *rand.Rand, distance, duration Range) error
//	RandomizeNodeWeights(rng *rand.Rand, weight Range) error
//	Clone() *Graph
//	Clear()
//
// Errors are package-level sentinels; match them with errors.Is.
//
// Concurrency: a single sync.RWMutex guards all state. The intended host is
// a single-threaded UI loop, but the lock keeps a concurrent host from
// observing a torn graph mid-edit.
package core
