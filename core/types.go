// Package core defines the central Graph, Node, and Edge types for the
// campus map, and provides thread-safe primitives for building, querying,
// and cloning the map.
//
// All core APIs share a single sync.RWMutex, so the store can be mutated
// from a concurrent host without observing a torn graph mid-edit.
//
// This file declares Node, Edge, Neighbor, Range, Graph, sentinel errors,
// and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyName     - node name is the empty string.
//	ErrDuplicateName - a node with that name already exists.
//	ErrNodeNotFound  - requested node does not exist.
//	ErrEdgeNotFound  - requested edge does not exist.
//	ErrSelfLoop      - edge endpoints are the same node.
//	ErrDuplicateEdge - an edge already connects the pair.
//	ErrBadWeight     - non-positive distance/time, or negative node weight.
//	ErrBadRange      - randomization range violates its bounds.
//	ErrNilRand       - randomization invoked without a rand source.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyName indicates that a node name is empty or blank.
	ErrEmptyName = errors.New("core: node name is empty")

	// ErrDuplicateName indicates an AddNode with a name already in use.
	ErrDuplicateName = errors.New("core: duplicate node name")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrSelfLoop indicates an edge from a node to itself was attempted.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrDuplicateEdge indicates a second edge between the same pair was attempted.
	ErrDuplicateEdge = errors.New("core: edge already exists between pair")

	// ErrBadWeight indicates a non-positive edge distance/time or a negative node weight.
	ErrBadWeight = errors.New("core: bad weight")

	// ErrBadRange indicates a randomization Range with Min > Max or out-of-domain bounds.
	ErrBadRange = errors.New("core: bad randomization range")

	// ErrNilRand indicates a randomization call without an injected rand source.
	ErrNilRand = errors.New("core: rand source is required")
)

// Node represents a building on the campus map.
//
// Name uniquely identifies this Node within its Graph.
// X and Y are layout coordinates for the canvas; traversal ignores them.
// Weight is a display attribute (importance, capacity, traffic) with no
// effect on pathfinding; it is never negative.
type Node struct {
	// Name is the unique identifier for this Node.
	Name string

	// X and Y position the node on the canvas.
	X, Y float64

	// Weight scales the node's visual size. Display-only.
	Weight float64
}

// Edge represents an undirected pathway between two buildings.
//
// Each Edge has a unique ID, endpoints From/To (both traversable directions),
// positive Distance and Time costs, and two state flags: Accessible marks a
// step-free pathway, Closed excludes the edge from traversal without
// deleting it.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string

	// From and To are the endpoint node names. Order carries no meaning.
	From, To string

	// Distance is the pathway length; always > 0.
	Distance float64

	// Time is the walking time; always > 0.
	Time float64

	// Accessible reports whether the pathway is step-free.
	Accessible bool

	// Closed excludes the edge from traversal while keeping it in the store.
	Closed bool
}

// Neighbor is one adjacency entry: the neighboring node's name plus a copy
// of the connecting edge. Returned by Graph.Neighbors.
type Neighbor struct {
	// ID is the neighboring node's name.
	ID string

	// Edge is a copy of the connecting edge record.
	Edge Edge
}

// Range is a closed interval [Min, Max] for weight randomization.
type Range struct {
	Min, Max float64
}

// edgeEntry pairs a stored Edge with its creation sequence number,
// which fixes the deterministic neighbor and listing order.
type edgeEntry struct {
	e   Edge
	seq uint64
}

// Graph is the in-memory campus map: a simple undirected graph of named
// buildings and attributed pathways.
//
// A single mu guards all state; every accessor returns copies, never
// pointers into the store, so the Graph retains exclusive ownership of its
// records. nextEdgeSeq generates unique Edge.IDs and the insertion order
// that Neighbors and Edges preserve.
type Graph struct {
	mu sync.RWMutex

	nextEdgeSeq uint64                // edge ID / ordering counter
	nodes       map[string]*Node      // node name → Node
	edges       map[string]*edgeEntry // edge ID → entry
	pairs       map[pairKey]string    // normalized endpoint pair → edge ID
	adjacency   map[string][]string   // node name → incident edge IDs, creation order
}

// pairKey is the normalized unordered endpoint pair used to key edges.
type pairKey [2]string

// newPairKey sorts the two endpoint names so direction never matters.
func newPairKey(u, v string) pairKey {
	if u > v {
		u, v = v, u
	}

	return pairKey{u, v}
}

// NewGraph creates an empty campus Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		nodes:     make(map[string]*Node),
		edges:     make(map[string]*edgeEntry),
		pairs:     make(map[pairKey]string),
		adjacency: make(map[string][]string),
	}
}
