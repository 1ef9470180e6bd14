// File: neighborset.go
// Role: Multiplicity-aware per-vertex adjacency set: occurrence counts per
//       adjacent vertex plus the deduplicated view handed to callers.

package neighborcache

import "sort"

// VertexSet is a deduplicated set of vertex IDs.
//
// Sets returned by the cache are live views backed by cache state: they
// reflect later edits without re-querying, and callers must treat them as
// read-only. Copy before mutating.
type VertexSet map[string]struct{}

// Contains reports whether id is a member of the set.
func (s VertexSet) Contains(id string) bool {
	_, ok := s[id]

	return ok
}

// Sorted returns the members as a fresh slice, sorted lexicographically
// ascending.
func (s VertexSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// neighborSet tracks, for each adjacent vertex, how many parallel edges
// currently realize the adjacency, and keeps the deduplicated view in
// step with the counts.
//
// Invariant: a vertex is a key of counts iff its count is >= 1, and the
// key set of counts equals the key set of set at all times.
type neighborSet struct {
	counts map[string]int
	set    VertexSet
}

// newNeighborSet bulk-initializes a set from an incident list. The seed
// may repeat a vertex once per parallel edge; repeats raise the count
// rather than being deduplicated away.
func newNeighborSet(seed []string) *neighborSet {
	ns := &neighborSet{
		counts: make(map[string]int, len(seed)),
		set:    make(VertexSet, len(seed)),
	}
	for _, v := range seed {
		ns.add(v)
	}

	return ns
}

// add records one more edge realizing the adjacency to v.
func (ns *neighborSet) add(v string) {
	ns.counts[v]++
	ns.set[v] = struct{}{}
}

// remove records the loss of one edge realizing the adjacency to v; the
// vertex leaves the view only when its last parallel edge goes.
//
// Removing a vertex that is not present indicates a malformed upstream
// notification; it is tolerated as a best-effort no-op rather than a
// panic, since the cache cannot verify upstream correctness.
func (ns *neighborSet) remove(v string) {
	c, ok := ns.counts[v]
	if !ok {
		return
	}
	if c <= 1 {
		delete(ns.counts, v)
		delete(ns.set, v)

		return
	}
	ns.counts[v] = c - 1
}

// view returns the deduplicated vertex set in O(1). The returned set is
// backed by the neighborSet and must not be mutated by the caller.
func (ns *neighborSet) view() VertexSet {
	return ns.set
}
