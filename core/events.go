// File: events.go
// Role: Change-notification surface: event payloads, the Listener
//       interface, and the subscribe/emit machinery.
// Ordering:
//   - Events are emitted synchronously on the mutating goroutine, after
//     the corresponding state change is committed and locks are released,
//     before the mutating method returns.
//   - Listeners are invoked in registration order.
// Concurrency:
//   - The registry is guarded by muListen; emission snapshots the registry
//     so a listener may Unsubscribe itself from inside a callback.
//   - Strict edit-order delivery presumes a single logical writer.

package core

// EdgeEvent describes a single edge mutation.
//
// For EdgeAdded the edge is live: Edge can be resolved through GetEdge for
// endpoints and attributes. For EdgeRemoved the edge is already gone from
// the catalog, so From, To and Directed carry the endpoint information
// directly.
type EdgeEvent struct {
	Edge     string // edge ID
	From     string // source vertex ID
	To       string // target vertex ID
	Directed bool
}

// VertexEvent describes a single vertex mutation.
type VertexEvent struct {
	ID string // vertex ID
}

// Listener receives structural edit events from a Graph.
//
// Callbacks run synchronously on the mutating goroutine and must not
// mutate the graph (the mutation path would re-enter itself). Reading is
// fine: by the time a callback runs, all locks have been released.
type Listener interface {
	EdgeAdded(EdgeEvent)
	EdgeRemoved(EdgeEvent)
	VertexAdded(VertexEvent)
	VertexRemoved(VertexEvent)
}

// subscription pairs a Listener with the token returned by Subscribe.
type subscription struct {
	id int
	l  Listener
}

// Subscribe registers l to receive all subsequent edit events and returns
// a token for Unsubscribe. Registration order is delivery order.
//
// Complexity: O(1).
func (g *Graph) Subscribe(l Listener) int {
	g.muListen.Lock()
	defer g.muListen.Unlock()

	g.nextSubID++
	g.listeners = append(g.listeners, subscription{id: g.nextSubID, l: l})

	return g.nextSubID
}

// Unsubscribe removes the listener registered under id. Unknown tokens are
// a no-op.
//
// Complexity: O(listeners).
func (g *Graph) Unsubscribe(id int) {
	g.muListen.Lock()
	defer g.muListen.Unlock()

	for i, sub := range g.listeners {
		if sub.id == id {
			g.listeners = append(g.listeners[:i], g.listeners[i+1:]...)

			return
		}
	}
}

// snapshotListeners copies the registry so callbacks run lock-free.
func (g *Graph) snapshotListeners() []subscription {
	g.muListen.RLock()
	defer g.muListen.RUnlock()

	if len(g.listeners) == 0 {
		return nil
	}
	out := make([]subscription, len(g.listeners))
	copy(out, g.listeners)

	return out
}

func (g *Graph) emitEdgeAdded(ev EdgeEvent) {
	for _, sub := range g.snapshotListeners() {
		sub.l.EdgeAdded(ev)
	}
}

func (g *Graph) emitEdgeRemoved(ev EdgeEvent) {
	for _, sub := range g.snapshotListeners() {
		sub.l.EdgeRemoved(ev)
	}
}

func (g *Graph) emitVertexAdded(ev VertexEvent) {
	for _, sub := range g.snapshotListeners() {
		sub.l.VertexAdded(ev)
	}
}

func (g *Graph) emitVertexRemoved(ev VertexEvent) {
	for _, sub := range g.snapshotListeners() {
		sub.l.VertexRemoved(ev)
	}
}
