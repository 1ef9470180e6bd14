// File: edges.go
// Role: Edge lifecycle and queries: AddEdge, RemoveEdge, HasEdge, GetEdge,
//       Edges, EdgeCount, plus nextEdgeID().
// Determinism:
//   - Edges() returns edges sorted by Edge.ID ascending.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).

package core

import (
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is the textual prefix for generated edge identifiers,
// yielding stable human-readable IDs like "e1", "e2", ...
const edgeIDPrefix = 'e'

// AddEdge creates a new edge from→to with the given weight and returns its
// generated ID. Missing endpoints are created implicitly (each emitting a
// VertexAdded event); the EdgeAdded event fires last.
//
// Constraints:
//   - Unweighted graphs reject non-zero weights (ErrBadWeight).
//   - Self-loops require WithLoops (ErrLoopNotAllowed).
//   - Parallel edges require WithMultiEdges (ErrMultiEdgeNotAllowed).
//   - Per-edge options require WithMixedEdges (ErrMixedEdgesNotAllowed).
//
// Complexity: O(1) amortized.
// Concurrency: write lock on muEdgeAdj for the insert; the event fires
// after it is released.
func (g *Graph) AddEdge(from, to string, weight int64, opts ...EdgeOption) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if !g.weighted && weight != 0 {
		return "", ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}
	// Per-edge overrides are only legal in mixed graphs.
	if len(opts) > 0 && !g.allowMixed {
		return "", ErrMixedEdgesNotAllowed
	}

	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	e, err := g.insertEdge(from, to, weight, opts)
	if err != nil {
		return "", err
	}

	g.emitEdgeAdded(EdgeEvent{Edge: e.ID, From: e.From, To: e.To, Directed: e.Directed})

	return e.ID, nil
}

// insertEdge performs the locked part of AddEdge.
func (g *Graph) insertEdge(from, to string, weight int64, opts []EdgeOption) (*Edge, error) {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	e := &Edge{From: from, To: to, Weight: weight, Directed: g.directed}
	for _, opt := range opts {
		opt(e)
	}

	if !g.allowMulti && g.connectsLocked(from, to, e.Directed) {
		return nil, ErrMultiEdgeNotAllowed
	}

	e.ID = nextEdgeID(g)
	g.edges[e.ID] = e

	// Every edge is indexed under both endpoints; direction policy is
	// applied by the queries, not by the index.
	ensureAdjacency(g, from, to)
	g.adjacency[from][to][e.ID] = struct{}{}
	if from != to {
		ensureAdjacency(g, to, from)
		g.adjacency[to][from][e.ID] = struct{}{}
	}

	return e, nil
}

// RemoveEdge deletes one edge by ID. Removing an absent edge returns
// ErrEdgeNotFound (no silent ignore). The EdgeRemoved event carries the
// endpoints directly, since the edge is no longer resolvable afterwards.
//
// Complexity: O(1) removal + bucket cleanup.
// Concurrency: write lock on muEdgeAdj; the event fires after release.
func (g *Graph) RemoveEdge(eid string) error {
	g.muEdgeAdj.Lock()
	e, ok := g.edges[eid]
	if !ok {
		g.muEdgeAdj.Unlock()

		return ErrEdgeNotFound
	}
	delete(g.edges, eid)
	removeAdjacency(g, e)
	g.muEdgeAdj.Unlock()

	g.emitEdgeRemoved(EdgeEvent{Edge: eid, From: e.From, To: e.To, Directed: e.Directed})

	return nil
}

// HasEdge reports whether at least one edge connects from→to in the
// traversable sense: a directed edge from→to, or any undirected edge
// between the pair.
//
// Complexity: O(parallel edges between the pair).
// Concurrency: read lock on muEdgeAdj.
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	for eid := range g.adjacency[from][to] {
		e := g.edges[eid]
		if e == nil {
			continue
		}
		if !e.Directed || e.From == from {
			return true
		}
	}

	return false
}

// connectsLocked reports whether an edge already connects from→to under
// the same policy as HasEdge. Caller must hold muEdgeAdj.
func (g *Graph) connectsLocked(from, to string, directed bool) bool {
	for eid := range g.adjacency[from][to] {
		e := g.edges[eid]
		if e == nil {
			continue
		}
		// A directed edge in the opposite direction does not conflict with
		// a new directed from→to edge.
		if e.Directed && directed && e.From != from {
			continue
		}

		return true
	}

	return false
}

// GetEdge returns the Edge with the given ID, or ErrEdgeNotFound. The
// returned *Edge is read-only by convention.
//
// Complexity: O(1).
// Concurrency: read lock on muEdgeAdj.
func (g *Graph) GetEdge(eid string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	e, ok := g.edges[eid]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// Edges returns all edges sorted by Edge.ID ascending.
//
// Complexity: O(E log E).
// Concurrency: read lock on muEdgeAdj.
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// EdgeCount returns the total number of edges.
//
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// nextEdgeID returns a new unique textual edge ID ("e1", "e2", ...).
// Avoids fmt to keep the mutation hot path allocation-light.
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 1+20) // "e" + up to 20 digits
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}
