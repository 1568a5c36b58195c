// Package traverse defines types and options for route finding over a
// core.Graph: algorithm selection, trace events, functional options, and
// the Result record consumed by the animation layer.
package traverse

import (
	"context"
	"errors"
)

// Sentinel errors for route finding.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("traverse: graph is nil")

	// ErrStartNotFound is returned when the start building is absent.
	ErrStartNotFound = errors.New("traverse: start node not found")

	// ErrGoalNotFound is returned when the goal building is absent.
	ErrGoalNotFound = errors.New("traverse: goal node not found")

	// ErrUnknownAlgorithm is returned for an Algorithm value outside {BFS, DFS}.
	ErrUnknownAlgorithm = errors.New("traverse: unknown algorithm")
)

// Algorithm selects the search strategy for FindPath.
type Algorithm int

const (
	// BFS explores level by level and guarantees a minimal-hop path.
	BFS Algorithm = iota

	// DFS follows one branch as deep as possible before backtracking;
	// it finds a valid path, not necessarily the shortest.
	DFS
)

// String returns the conventional name of the algorithm.
func (a Algorithm) String() string {
	switch a {
	case BFS:
		return "BFS"
	case DFS:
		return "DFS"
	default:
		return "unknown"
	}
}

// EventKind classifies one step of a traversal trace.
type EventKind int

const (
	// Visit marks a node entering the explored set: a BFS dequeue or a DFS
	// first entry.
	Visit EventKind = iota

	// Examine marks one edge being considered from the current node.
	Examine

	// Backtrack marks DFS retreating from a fully explored node.
	Backtrack
)

// String returns the lowercase event kind name.
func (k EventKind) String() string {
	switch k {
	case Visit:
		return "visit"
	case Examine:
		return "examine"
	case Backtrack:
		return "backtrack"
	default:
		return "unknown"
	}
}

// Event is one discrete step of the search, sufficient for an external
// animator to replay the traversal without recomputing anything.
// Edge is set only for Examine events.
type Event struct {
	Kind EventKind
	Node string
	Edge string
}

// Option configures FindPath behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks customizing a FindPath run.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// AccessibleOnly restricts the search to step-free pathways.
	AccessibleOnly bool

	// OnEvent, if non-nil, streams each trace event as it is recorded,
	// letting an animator follow the search live instead of replaying
	// the finished trace.
	OnEvent func(Event)
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - all open pathways allowed (AccessibleOnly == false)
//   - no event streaming.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		AccessibleOnly: false,
		OnEvent:        nil,
	}
}

// WithContext sets a custom context for cancellation.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithAccessibleOnly restricts the search to accessible pathways when on
// is true.
func WithAccessibleOnly(on bool) Option {
	return func(o *Options) {
		o.AccessibleOnly = on
	}
}

// WithOnEvent registers a callback streaming each trace event in order.
func WithOnEvent(fn func(Event)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEvent = fn
		}
	}
}

// Result captures the outcome of a FindPath run.
type Result struct {
	// Found reports whether a filter-respecting route to the goal exists.
	Found bool

	// Path is the reconstructed route start → goal; nil when Found is false.
	Path []string

	// Order records buildings in visit sequence, for the results panel.
	Order []string

	// Parent maps each visited building to the building it was first
	// discovered from. The start building does not appear as a key.
	Parent map[string]string

	// Trace is the full ordered event sequence for animation replay.
	Trace []Event
}
