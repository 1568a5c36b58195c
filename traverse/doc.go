// Package traverse implements route finding between campus buildings over a
// core.Graph, with a replayable trace for animation.
//
// Key features:
//   - FindPath(g, start, goal, algo, opts...): BFS or DFS behind one entry point
//   - Filters: closed pathways are always skipped; WithAccessibleOnly(true)
//     additionally skips non-accessible ones, enforced at the adjacency read
//     so filtered edges never appear anywhere in the Result
//   - Trace: ordered Visit/Examine/Backtrack events, plus a live WithOnEvent
//     streaming hook
//   - Cancellation via context.Context (WithContext)
//
// Guarantees:
//
//   - BFS returns a path with the minimum number of edges among all routes
//     respecting the active filters. It stops when the goal is dequeued.
//   - DFS returns a valid path whenever one exists under the filters, with
//     no shortest-path guarantee, and terminates on cyclic maps.
//   - Determinism: neighbor order is the store's edge-creation order, so an
//     unchanged graph and identical arguments yield an identical Result.
//   - Read-only: a FindPath run never mutates the graph.
//
// Complexity:
//
//   - Time:   O(V + E) for either algorithm.
//   - Memory: O(V) for the frontier, visited set, and parent links.
//
// Errors:
//
//   - ErrGraphNil            if g is nil.
//   - ErrStartNotFound       if the start building is missing.
//   - ErrGoalNotFound        if the goal building is missing.
//   - ErrUnknownAlgorithm    for an out-of-range Algorithm value.
//   - context.Canceled       if ctx is done.
//
// An unreachable goal is not an error: Result.Found is false and the trace
// still covers the whole explored region.
package traverse
