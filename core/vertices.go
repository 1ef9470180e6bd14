// File: vertices.go
// Role: Vertex lifecycle and queries: AddVertex, HasVertex, RemoveVertex,
//       Vertices, VertexCount.
// Determinism:
//   - Vertices() returns IDs sorted lexicographically ascending.
//   - RemoveVertex emits incident EdgeRemoved events sorted by edge ID.

package core

import "sort"

// AddVertex inserts a vertex if missing (idempotent). A VertexAdded event
// is emitted only when the vertex is actually created.
//
// Complexity: O(1) amortized.
// Concurrency: write lock on muVert.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	if _, exists := g.vertices[id]; exists {
		g.muVert.Unlock()

		return nil // no-op for existing vertex
	}
	g.vertices[id] = &Vertex{ID: id, Metadata: make(map[string]interface{})}
	g.muVert.Unlock()

	g.emitVertexAdded(VertexEvent{ID: id})

	return nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
//
// Complexity: O(1).
// Concurrency: read lock on muVert.
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// RemoveVertex deletes a vertex and all incident edges.
//
// Event contract: one EdgeRemoved per incident edge is emitted first
// (sorted by edge ID), then VertexRemoved. Subscribers that mirror
// adjacency can therefore clean up edge state before the vertex
// disappears.
//
// Complexity: O(E) for the incident-edge scan.
// Concurrency: write locks on muVert and muEdgeAdj; events fire after
// both are released.
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	removed, err := g.detachVertex(id)
	if err != nil {
		return err
	}

	for _, ev := range removed {
		g.emitEdgeRemoved(ev)
	}
	g.emitVertexRemoved(VertexEvent{ID: id})

	return nil
}

// detachVertex performs the locked part of RemoveVertex and returns the
// EdgeRemoved events to emit, sorted by edge ID.
func (g *Graph) detachVertex(id string) ([]EdgeEvent, error) {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, exists := g.vertices[id]; !exists {
		return nil, ErrVertexNotFound
	}

	var removed []EdgeEvent
	for eid, e := range g.edges {
		if e.From == id || e.To == id {
			removeAdjacency(g, e)
			delete(g.edges, eid)
			removed = append(removed, EdgeEvent{Edge: eid, From: e.From, To: e.To, Directed: e.Directed})
		}
	}
	sort.Slice(removed, func(i, j int) bool { return removed[i].Edge < removed[j].Edge })

	delete(g.vertices, id)
	delete(g.adjacency, id)
	cleanupAdjacency(g)

	return removed, nil
}

// Vertices returns all vertex IDs sorted lexicographically ascending.
//
// Complexity: O(V log V).
// Concurrency: read lock on muVert.
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	out := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// VertexCount returns the number of vertices.
//
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}
