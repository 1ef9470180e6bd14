// File: adjacency.go
// Role: Incident-list queries (PredecessorListOf, SuccessorListOf,
//       NeighborListOf) and the adjacency-index maintenance helpers.
// Determinism:
//   - All three list queries return entries sorted lexicographically.
// Multiplicity:
//   - Lists carry one entry per incident edge; parallel edges repeat.

package core

import "sort"

// PredecessorListOf returns the sources of all edges leading into v:
// incoming directed edges plus the far endpoint of every incident
// undirected edge. Parallel edges contribute one entry each.
//
// Complexity: O(deg(v) log deg(v)).
// Concurrency: read locks on muVert and muEdgeAdj.
func (g *Graph) PredecessorListOf(v string) ([]string, error) {
	return g.incidentList(v, func(e *Edge) bool { return e.To == v || !e.Directed })
}

// SuccessorListOf returns the targets of all edges leading out of v:
// outgoing directed edges plus the far endpoint of every incident
// undirected edge. Parallel edges contribute one entry each.
//
// Complexity: O(deg(v) log deg(v)).
// Concurrency: read locks on muVert and muEdgeAdj.
func (g *Graph) SuccessorListOf(v string) ([]string, error) {
	return g.incidentList(v, func(e *Edge) bool { return e.From == v || !e.Directed })
}

// NeighborListOf returns the opposite endpoint of every edge incident to
// v, regardless of direction. Parallel edges contribute one entry each;
// a self-loop contributes v itself once per loop edge.
//
// Complexity: O(deg(v) log deg(v)).
// Concurrency: read locks on muVert and muEdgeAdj.
func (g *Graph) NeighborListOf(v string) ([]string, error) {
	return g.incidentList(v, func(*Edge) bool { return true })
}

// incidentList scans v's adjacency buckets and collects the opposite
// endpoint of each incident edge accepted by the policy predicate.
func (g *Graph) incidentList(v string, accept func(*Edge) bool) ([]string, error) {
	if v == "" {
		return nil, ErrEmptyVertexID
	}

	// Lock order matches mutators (muVert -> muEdgeAdj) so the vertex
	// cannot vanish between the membership check and the scan.
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[v]; !ok {
		return nil, ErrVertexNotFound
	}

	var out []string
	for _, edgeSet := range g.adjacency[v] {
		for eid := range edgeSet {
			e := g.edges[eid]
			if e == nil || !accept(e) {
				continue
			}
			out = append(out, opposite(v, e))
		}
	}
	sort.Strings(out)

	return out, nil
}

// opposite returns the endpoint of e that is not v; for a self-loop it
// returns v itself.
func opposite(v string, e *Edge) string {
	if e.From == v {
		return e.To
	}

	return e.From
}

// ensureAdjacency guarantees adjacency[from][to] is initialized.
// Caller must hold muEdgeAdj for writing.
func ensureAdjacency(g *Graph, from, to string) {
	if g.adjacency[from] == nil {
		g.adjacency[from] = make(map[string]map[string]struct{})
	}
	if g.adjacency[from][to] == nil {
		g.adjacency[from][to] = make(map[string]struct{})
	}
}

// removeAdjacency unlinks e.ID from the buckets under both endpoints,
// pruning buckets that become empty. Caller must hold muEdgeAdj for
// writing.
func removeAdjacency(g *Graph, e *Edge) {
	unlink := func(a, b string) {
		if m := g.adjacency[a][b]; m != nil {
			delete(m, e.ID)
			if len(m) == 0 {
				delete(g.adjacency[a], b)
			}
		}
	}
	unlink(e.From, e.To)
	if e.From != e.To {
		unlink(e.To, e.From)
	}
}

// cleanupAdjacency prunes empty nested buckets after bulk removals.
// Caller must hold muEdgeAdj for writing.
func cleanupAdjacency(g *Graph) {
	for u, toMap := range g.adjacency {
		for v, edgeSet := range toMap {
			if len(edgeSet) == 0 {
				delete(toMap, v)
			}
		}
		if len(toMap) == 0 {
			delete(g.adjacency, u)
		}
	}
}
