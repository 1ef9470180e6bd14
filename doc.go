// Package edgewise is an in-memory graph toolkit built around one idea:
// adjacency queries should stay cheap while the graph keeps changing.
//
// Everything is organized under three subpackages:
//
//	core/          — the mutable multigraph model: vertices and edges
//	                 (directed, undirected, weighted, parallel, self-loops),
//	                 plus a synchronous change-notification stream that
//	                 delivers every structural edit, in edit order, to
//	                 registered listeners.
//	neighborcache/ — an incremental per-vertex cache of predecessor,
//	                 successor and neighbor sets. Sets are computed lazily
//	                 on first access and then patched in place from the
//	                 core's edit events, so no vertex's incident-edge list
//	                 is ever walked twice.
//	bfs/           — breadth-first traversal, a representative client that
//	                 expands frontiers through the cache instead of
//	                 rescanning incident edges on every visit.
//
// Quick example:
//
//	g := core.NewGraph(core.WithDirected(true), core.WithMultiEdges())
//	g.AddEdge("a", "b", 0)
//
//	cache, _ := neighborcache.New(g)
//	defer cache.Close()
//
//	succ, _ := cache.SuccessorsOf("a") // computed once, from the model
//	g.AddEdge("a", "c", 0)             // cache patched incrementally
//	succ, _ = cache.SuccessorsOf("a")  // {b c}, no recomputation
//
// edgewise is pure Go with no runtime dependencies.
//
//	go get github.com/edgewiselabs/edgewise
package edgewise
