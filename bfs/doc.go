// Package bfs implements breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit
// order.
//
// BFS explores vertices in increasing distance from a start vertex, with
// optional hooks, depth limiting, and neighbor filtering. Frontier
// expansion goes through a neighborcache.Cache rather than re-walking
// incident-edge lists: each vertex's successor set is computed at most
// once per cache lifetime, which matters when the same graph is searched
// repeatedly. Pass a long-lived cache with WithCache to share that work
// across runs; otherwise BFS builds and disposes a private one.
//
// Frontier ordering is deterministic: neighbors are expanded in
// lexicographic order.
package bfs
