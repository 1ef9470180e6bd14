// File: cache.go
// Role: The Cache itself: lazy population of the three per-vertex maps and
//       the event handlers that keep computed sets current.
// Laziness policy:
//   - Queries populate; events never do. An event touching a vertex whose
//     set was never requested leaves the slot absent, to be computed
//     correctly on first future access.

package neighborcache

import (
	"errors"

	"github.com/edgewiselabs/edgewise/core"
)

// ErrNilGraph is returned by New when the graph model is nil.
var ErrNilGraph = errors.New("neighborcache: graph is nil")

// Model is the read-only surface of the graph the cache consults: edge
// endpoint resolution, the three incident-list computations used on cache
// miss, and listener registration. *core.Graph satisfies Model.
type Model interface {
	GetEdge(eid string) (*core.Edge, error)
	PredecessorListOf(v string) ([]string, error)
	SuccessorListOf(v string) ([]string, error)
	NeighborListOf(v string) ([]string, error)
	Subscribe(core.Listener) int
	Unsubscribe(int)
}

// Cache maintains per-vertex predecessor, successor, and neighbor sets
// over a Model, computed lazily and patched incrementally from the
// model's edit events.
//
// A Cache is tied 1:1 to the model it was constructed with. It holds a
// non-owning reference: vertex and edge identities belong to the model.
// Not safe for concurrent mutation; see the package documentation for the
// single-writer precondition.
type Cache struct {
	model Model
	sub   int

	predecessors map[string]*neighborSet
	successors   map[string]*neighborSet
	neighbors    map[string]*neighborSet
}

// New creates a Cache over model and registers it as a listener. A nil
// model is a fatal precondition violation and fails immediately with
// ErrNilGraph. Call Close to detach the cache from the event stream.
func New(model Model) (*Cache, error) {
	if model == nil {
		return nil, ErrNilGraph
	}
	c := &Cache{
		model:        model,
		predecessors: make(map[string]*neighborSet),
		successors:   make(map[string]*neighborSet),
		neighbors:    make(map[string]*neighborSet),
	}
	c.sub = model.Subscribe(c)

	return c, nil
}

// Close detaches the cache from the model's event stream. Computed sets
// remain readable but are no longer kept current.
func (c *Cache) Close() {
	c.model.Unsubscribe(c.sub)
}

// PredecessorsOf returns the deduplicated set of vertices with an edge
// into v. The set is computed from the model on first call and served
// from the cache afterwards in O(1). Unknown vertices surface the model's
// own error (core.ErrVertexNotFound for *core.Graph).
func (c *Cache) PredecessorsOf(v string) (VertexSet, error) {
	return c.fetch(v, c.predecessors, c.model.PredecessorListOf)
}

// SuccessorsOf returns the deduplicated set of vertices reachable over
// one edge out of v. Same contract as PredecessorsOf.
func (c *Cache) SuccessorsOf(v string) (VertexSet, error) {
	return c.fetch(v, c.successors, c.model.SuccessorListOf)
}

// NeighborsOf returns the deduplicated set of vertices adjacent to v,
// directionless. For any v whose directional sets are also computed,
// NeighborsOf(v) equals PredecessorsOf(v) ∪ SuccessorsOf(v) after every
// edit. Same contract as PredecessorsOf.
func (c *Cache) NeighborsOf(v string) (VertexSet, error) {
	return c.fetch(v, c.neighbors, c.model.NeighborListOf)
}

// fetch returns the cached set for v, seeding it from the model's
// incident-list query on first access. The seed honors multiplicities:
// one entry per parallel edge.
func (c *Cache) fetch(v string, m map[string]*neighborSet, list func(string) ([]string, error)) (VertexSet, error) {
	if ns, ok := m[v]; ok {
		return ns.view(), nil
	}
	seed, err := list(v)
	if err != nil {
		return nil, err
	}
	ns := newNeighborSet(seed)
	m[v] = ns

	return ns.view(), nil
}

// EdgeAdded patches already-computed sets with the new edge. Endpoints
// and directedness are resolved through the model by edge ID; a dangling
// edge ID (malformed upstream sequence) is tolerated as a no-op.
func (c *Cache) EdgeAdded(ev core.EdgeEvent) {
	e, err := c.model.GetEdge(ev.Edge)
	if err != nil {
		return
	}
	c.patch(e.From, e.To, e.Directed, (*neighborSet).add)
}

// EdgeRemoved mirrors EdgeAdded using the endpoints carried in the event,
// since the edge is no longer resolvable from the model. Removing one of
// several parallel edges only decrements the occurrence count; the
// adjacency survives until the last parallel edge goes.
func (c *Cache) EdgeRemoved(ev core.EdgeEvent) {
	c.patch(ev.From, ev.To, ev.Directed, (*neighborSet).remove)
}

// VertexAdded is intentionally a no-op: there is nothing to cache until
// the vertex has incident edges, and first access lazily yields empty
// sets.
func (c *Cache) VertexAdded(core.VertexEvent) {}

// VertexRemoved purges the vertex's entries from all three maps. Other
// vertices' sets are not touched here: the model removes all incident
// edges (emitting EdgeRemoved for each) before the VertexRemoved event,
// so those cleanups have already happened through EdgeRemoved. That
// ordering is the model's contract, not something the cache enforces.
func (c *Cache) VertexRemoved(ev core.VertexEvent) {
	delete(c.predecessors, ev.ID)
	delete(c.successors, ev.ID)
	delete(c.neighbors, ev.ID)
}

// patch applies op for one edge between from and to, touching only sets
// that are already computed. An undirected edge makes each endpoint both
// predecessor and successor of the other; a self-loop touches each role
// exactly once per edge, matching the incident-list seeds.
func (c *Cache) patch(from, to string, directed bool, op func(*neighborSet, string)) {
	touch := func(m map[string]*neighborSet, owner, adjacent string) {
		if ns, ok := m[owner]; ok {
			op(ns, adjacent)
		}
	}

	touch(c.successors, from, to)
	touch(c.predecessors, to, from)
	touch(c.neighbors, from, to)
	if from == to {
		return
	}
	touch(c.neighbors, to, from)
	if !directed {
		touch(c.successors, to, from)
		touch(c.predecessors, from, to)
	}
}
