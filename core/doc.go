// Package core provides the fundamental Graph, Vertex, and Edge types:
// an in-memory multigraph that supports directed and undirected edges,
// integer weights, parallel edges, self-loops, and per-edge directedness
// overrides (mixed mode).
//
// Beyond storage, core is a change-notification source. Every structural
// edit — edge added, edge removed, vertex added, vertex removed — is
// delivered synchronously, in edit order, to every registered Listener
// before the mutating call returns. Removing a vertex first removes its
// incident edges and emits one EdgeRemoved event per edge, then emits
// VertexRemoved; subscribers may rely on that ordering.
//
// Incident-list queries (PredecessorListOf, SuccessorListOf,
// NeighborListOf) return one entry per incident edge, so parallel edges
// produce repeated entries. Callers that want deduplicated sets kept
// current across edits should use the neighborcache package instead of
// re-walking these lists.
//
// Concurrency: the vertex catalog is guarded by one RWMutex and the edge
// catalog plus adjacency by another, so independent readers do not
// contend. Events are emitted outside the locks, on the mutating
// goroutine; listeners observing strict edit order require a single
// logical writer.
//
// Errors are strict sentinels (ErrVertexNotFound, ErrEdgeNotFound, ...);
// check them with errors.Is.
package core
