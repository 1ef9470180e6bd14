// Package neighborcache maintains an incremental per-vertex cache of
// predecessor, successor, and neighbor sets over a mutable core.Graph.
//
// Incident lists can always be obtained from the model directly
// (core.PredecessorListOf and friends), but they are recomputed on every
// invocation by walking the vertex's incident edges, which becomes
// inordinately expensive when performed often. The cache computes each
// vertex's sets at most once — lazily, on first access — and afterwards
// patches only the already-computed sets from the model's edit events, so
// no incident-edge list is ever walked twice for the same vertex.
//
// Three guarantees hold after every edit:
//
//   - A computed set is never stale.
//   - NeighborsOf(v) equals the union of PredecessorsOf(v) and
//     SuccessorsOf(v) for every v whose directional sets are computed.
//   - Parallel edges are counted, not conflated: removing one of several
//     parallel edges between a pair leaves the adjacency in place until
//     the last one goes.
//
// "Absent" and "empty" are different states: a set that has never been
// requested is absent and costs nothing to keep current, while a computed
// set with no members is empty and is patched incrementally like any
// other.
//
// The cache is not safe for concurrent mutation. It assumes a single
// logical writer — the graph's edit path — delivering events synchronously
// and in edit order, and queries must not interleave with edits. This is a
// precondition, not an enforced property.
package neighborcache
