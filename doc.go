// Package campusnav is the model and pathfinding engine behind an
// interactive campus map editor: buildings are nodes, pathways are edges
// carrying distance, walking time, accessibility, and an open/closed flag.
//
// What lives here:
//
//   - Graph store: named buildings with canvas positions, attributed
//     pathways, cascading deletion, toggles, seeded weight randomization
//   - Route finding: BFS (minimal-hop) and DFS behind one FindPath entry
//     point, with a replayable Visit/Examine/Backtrack trace for animation
//   - Route statistics: distance/time totals, hop count, accessibility check
//
// Why campusnav?
//
//   - Deterministic everywhere - fixed neighbor order, injected rand sources,
//     identical inputs give identical traces
//   - Rock-solid invariants - no dangling edges, no self-loops or duplicate
//     pathways, atomic mutations under a single lock
//   - Pure Go - no cgo, no hidden deps
//   - UI-agnostic - the canvas, animation loop and widgets consume the core's
//     data; the core never calls back into them
//
// Everything is organized under four subpackages:
//
//	core/     - Graph, Node, Edge types and thread-safe mutation primitives
//	traverse/ - BFS/DFS route finding with event traces
//	stats/    - route summary statistics
//	builder/  - sample campus fixtures
//
// Quick ASCII example:
//
//	    Gym────Sports Complex
//	     │          │
//	    Student    Library────Engineering
//	    Center───────┘
//
//	a slice of the sample campus built by builder.Campus().
//
// See each package's doc.go for contracts, complexity notes, and errors.
//
//	go get github.com/katalvlaran/campusnav
package campusnav
