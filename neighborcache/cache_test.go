package neighborcache_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/edgewiselabs/edgewise/core"
	"github.com/edgewiselabs/edgewise/neighborcache"
)

// countingModel wraps a *core.Graph and counts incident-list computations,
// making "no recomputation" observable.
type countingModel struct {
	*core.Graph
	lists int
}

func (m *countingModel) PredecessorListOf(v string) ([]string, error) {
	m.lists++

	return m.Graph.PredecessorListOf(v)
}

func (m *countingModel) SuccessorListOf(v string) ([]string, error) {
	m.lists++

	return m.Graph.SuccessorListOf(v)
}

func (m *countingModel) NeighborListOf(v string) ([]string, error) {
	m.lists++

	return m.Graph.NeighborListOf(v)
}

// CacheSuite exercises the cache against directed multigraphs unless a
// test builds its own graph.
type CacheSuite struct {
	suite.Suite

	graph *countingModel
	cache *neighborcache.Cache
}

func (s *CacheSuite) SetupTest() {
	s.graph = &countingModel{
		Graph: core.NewGraph(core.WithDirected(true), core.WithMultiEdges(), core.WithLoops()),
	}
	var err error
	s.cache, err = neighborcache.New(s.graph)
	require.NoError(s.T(), err)
}

func (s *CacheSuite) TearDownTest() {
	s.cache.Close()
}

// TestNilModel: constructing over a nil model fails immediately.
func (s *CacheSuite) TestNilModel() {
	_, err := neighborcache.New(nil)
	require.ErrorIs(s.T(), err, neighborcache.ErrNilGraph)
}

// TestUnknownVertex: the model's own error surfaces unmasked.
func (s *CacheSuite) TestUnknownVertex() {
	_, err := s.cache.SuccessorsOf("ghost")
	require.ErrorIs(s.T(), err, core.ErrVertexNotFound)
	_, err = s.cache.PredecessorsOf("ghost")
	require.ErrorIs(s.T(), err, core.ErrVertexNotFound)
	_, err = s.cache.NeighborsOf("ghost")
	require.ErrorIs(s.T(), err, core.ErrVertexNotFound)
}

// TestLazySeed: first query computes from the model, second serves the
// cache without recomputation and returns an equal set.
func (s *CacheSuite) TestLazySeed() {
	s.graph.AddEdge("1", "2", 0)
	s.graph.AddEdge("1", "3", 0)

	first, err := s.cache.SuccessorsOf("1")
	require.NoError(s.T(), err)
	require.ElementsMatch(s.T(), []string{"2", "3"}, first.Sorted())
	require.Equal(s.T(), 1, s.graph.lists)

	second, err := s.cache.SuccessorsOf("1")
	require.NoError(s.T(), err)
	require.Equal(s.T(), first.Sorted(), second.Sorted())
	require.Equal(s.T(), 1, s.graph.lists, "second query must not recompute")
}

// TestParallelEdges is the multigraph scenario: two parallel (1→2) edges
// and one (1→3). Removing one parallel edge must keep 2 in the set;
// removing the second must drop it.
func (s *CacheSuite) TestParallelEdges() {
	e1, _ := s.graph.AddEdge("1", "2", 0)
	e2, _ := s.graph.AddEdge("1", "2", 0)
	s.graph.AddEdge("1", "3", 0)

	succ, err := s.cache.SuccessorsOf("1")
	require.NoError(s.T(), err)
	require.Equal(s.T(), []string{"2", "3"}, succ.Sorted())

	require.NoError(s.T(), s.graph.RemoveEdge(e1))
	require.Equal(s.T(), []string{"2", "3"}, succ.Sorted(), "one parallel edge remains")

	require.NoError(s.T(), s.graph.RemoveEdge(e2))
	require.Equal(s.T(), []string{"3"}, succ.Sorted(), "last parallel edge gone")
}

// TestEmptyButPopulated: querying a vertex with no incident edges yields
// an empty, populated set that later edge events patch incrementally.
func (s *CacheSuite) TestEmptyButPopulated() {
	s.graph.AddVertex("5")

	succ, err := s.cache.SuccessorsOf("5")
	require.NoError(s.T(), err)
	require.Empty(s.T(), succ)
	require.Equal(s.T(), 1, s.graph.lists)

	s.graph.AddEdge("5", "6", 0)

	succ, err = s.cache.SuccessorsOf("5")
	require.NoError(s.T(), err)
	require.Equal(s.T(), []string{"6"}, succ.Sorted())
	require.Equal(s.T(), 1, s.graph.lists, "edge event must patch, not recompute")
}

// TestAbsentStaysAbsent: events touching a never-queried vertex must not
// materialize a partial set; the eventual first query computes in full.
func (s *CacheSuite) TestAbsentStaysAbsent() {
	s.graph.AddEdge("1", "2", 0)
	s.graph.AddEdge("3", "2", 0)
	require.Zero(s.T(), s.graph.lists, "no query yet, no computation")

	// First touch after several edits must still see everything.
	pred, err := s.cache.PredecessorsOf("2")
	require.NoError(s.T(), err)
	require.Equal(s.T(), []string{"1", "3"}, pred.Sorted())
	require.Equal(s.T(), 1, s.graph.lists)
}

// TestUnionInvariant: neighbors == predecessors ∪ successors for every
// vertex with all three sets populated, after every edit.
func (s *CacheSuite) TestUnionInvariant() {
	vertices := []string{"a", "b", "c", "d"}
	for _, v := range vertices {
		s.graph.AddVertex(v)
		_, err := s.cache.PredecessorsOf(v)
		require.NoError(s.T(), err)
		_, err = s.cache.SuccessorsOf(v)
		require.NoError(s.T(), err)
		_, err = s.cache.NeighborsOf(v)
		require.NoError(s.T(), err)
	}

	checkUnion := func() {
		for _, v := range vertices {
			pred, _ := s.cache.PredecessorsOf(v)
			succ, _ := s.cache.SuccessorsOf(v)
			nbrs, _ := s.cache.NeighborsOf(v)

			union := make(map[string]struct{}, len(pred)+len(succ))
			for id := range pred {
				union[id] = struct{}{}
			}
			for id := range succ {
				union[id] = struct{}{}
			}
			require.Len(s.T(), nbrs, len(union), "vertex %s", v)
			for id := range union {
				require.True(s.T(), nbrs.Contains(id), "vertex %s missing neighbor %s", v, id)
			}
		}
	}

	e1, _ := s.graph.AddEdge("a", "b", 0)
	checkUnion()
	s.graph.AddEdge("b", "a", 0)
	checkUnion()
	e3, _ := s.graph.AddEdge("a", "b", 0) // parallel
	checkUnion()
	s.graph.AddEdge("c", "c", 0) // self-loop
	checkUnion()
	s.graph.AddEdge("d", "a", 0)
	checkUnion()
	require.NoError(s.T(), s.graph.RemoveEdge(e1))
	checkUnion()
	require.NoError(s.T(), s.graph.RemoveEdge(e3))
	checkUnion()
}

// TestVertexRemoved: all three entries are purged; the next query
// recomputes from scratch as if never cached.
func (s *CacheSuite) TestVertexRemoved() {
	s.graph.AddEdge("1", "2", 0)

	_, err := s.cache.SuccessorsOf("1")
	require.NoError(s.T(), err)
	_, err = s.cache.PredecessorsOf("1")
	require.NoError(s.T(), err)
	_, err = s.cache.NeighborsOf("1")
	require.NoError(s.T(), err)
	require.Equal(s.T(), 3, s.graph.lists)

	require.NoError(s.T(), s.graph.RemoveVertex("1"))

	// unknown to the model now: error, not a stale hit
	_, err = s.cache.SuccessorsOf("1")
	require.ErrorIs(s.T(), err, core.ErrVertexNotFound)

	// re-added: full recomputation, no leftovers
	s.graph.AddEdge("1", "3", 0)
	succ, err := s.cache.SuccessorsOf("1")
	require.NoError(s.T(), err)
	require.Equal(s.T(), []string{"3"}, succ.Sorted())
	require.Equal(s.T(), 5, s.graph.lists, "one failed and one fresh computation expected")
}

// TestVertexRemovalCleansPeers: removing a vertex first removes its
// incident edges, so populated peer sets shed it through edge events.
func (s *CacheSuite) TestVertexRemovalCleansPeers() {
	s.graph.AddEdge("1", "2", 0)
	s.graph.AddEdge("3", "2", 0)

	succ1, err := s.cache.SuccessorsOf("1")
	require.NoError(s.T(), err)
	require.True(s.T(), succ1.Contains("2"))

	require.NoError(s.T(), s.graph.RemoveVertex("2"))
	require.False(s.T(), succ1.Contains("2"), "peer set must shed the removed vertex")
	require.Empty(s.T(), succ1)
}

// TestAsymmetricPopulation: one role populated, the others absent. Edits
// patch the populated role and leave the rest to lazy computation.
func (s *CacheSuite) TestAsymmetricPopulation() {
	s.graph.AddVertex("x")
	s.graph.AddVertex("y")

	succ, err := s.cache.SuccessorsOf("x")
	require.NoError(s.T(), err)

	eid, _ := s.graph.AddEdge("x", "y", 0)
	require.True(s.T(), succ.Contains("y"))

	require.NoError(s.T(), s.graph.RemoveEdge(eid))
	require.Empty(s.T(), succ)

	// predecessors of y were never populated; first query computes fresh
	pred, err := s.cache.PredecessorsOf("y")
	require.NoError(s.T(), err)
	require.Empty(s.T(), pred)
}

// TestUndirectedSymmetry: an undirected edge makes each endpoint both
// predecessor and successor of the other, in seeds and in patches alike.
func (s *CacheSuite) TestUndirectedSymmetry() {
	g := core.NewGraph()
	cache, err := neighborcache.New(g)
	require.NoError(s.T(), err)
	defer cache.Close()

	g.AddVertex("a")
	g.AddVertex("b")

	// populate before the edge: exercises the patch path
	succA, _ := cache.SuccessorsOf("a")
	predA, _ := cache.PredecessorsOf("a")

	g.AddEdge("a", "b", 0)

	require.True(s.T(), succA.Contains("b"))
	require.True(s.T(), predA.Contains("b"))

	// populate after the edge: exercises the seed path
	succB, _ := cache.SuccessorsOf("b")
	predB, _ := cache.PredecessorsOf("b")
	require.True(s.T(), succB.Contains("a"))
	require.True(s.T(), predB.Contains("a"))
}

// TestMixedGraphPatching: per-edge directedness overrides must steer the
// patch path. A directed override touches only succ(from)/pred(to); an
// undirected override touches both orientations. Patched sets must match
// fresh seeds of the same graph.
func (s *CacheSuite) TestMixedGraphPatching() {
	g := core.NewGraph(core.WithMixedEdges(), core.WithMultiEdges())
	cache, err := neighborcache.New(g)
	require.NoError(s.T(), err)
	defer cache.Close()

	g.AddVertex("a")
	g.AddVertex("b")

	// populate every role first so the edges below go through patching
	succA, _ := cache.SuccessorsOf("a")
	predA, _ := cache.PredecessorsOf("a")
	succB, _ := cache.SuccessorsOf("b")
	predB, _ := cache.PredecessorsOf("b")

	g.AddEdge("a", "b", 0, core.WithEdgeDirected(true))

	require.True(s.T(), succA.Contains("b"))
	require.True(s.T(), predB.Contains("a"))
	require.Empty(s.T(), predA, "directed a→b must not make b a predecessor of a")
	require.Empty(s.T(), succB, "directed a→b must not make a a successor of b")

	g.AddEdge("a", "b", 0, core.WithEdgeDirected(false))

	require.True(s.T(), predA.Contains("b"))
	require.True(s.T(), succB.Contains("a"))

	// patched sets agree with fresh seeds over the same graph
	fresh, err := neighborcache.New(g)
	require.NoError(s.T(), err)
	defer fresh.Close()
	for v, got := range map[string]neighborcache.VertexSet{"a": succA, "b": succB} {
		want, err := fresh.SuccessorsOf(v)
		require.NoError(s.T(), err)
		require.Equal(s.T(), want.Sorted(), got.Sorted(), "successors of %s", v)
	}
	for v, got := range map[string]neighborcache.VertexSet{"a": predA, "b": predB} {
		want, err := fresh.PredecessorsOf(v)
		require.NoError(s.T(), err)
		require.Equal(s.T(), want.Sorted(), got.Sorted(), "predecessors of %s", v)
	}

	// removing the directed edge leaves the undirected adjacency intact
	var directedID string
	for _, e := range g.Edges() {
		if e.Directed {
			directedID = e.ID
		}
	}
	require.NoError(s.T(), g.RemoveEdge(directedID))
	require.True(s.T(), succA.Contains("b"), "undirected edge still connects a→b")
	require.True(s.T(), predB.Contains("a"))
}

// TestSelfLoop: a loop adds the vertex to its own sets once per loop
// edge, and removal is symmetric.
func (s *CacheSuite) TestSelfLoop() {
	s.graph.AddVertex("a")
	nbrs, err := s.cache.NeighborsOf("a")
	require.NoError(s.T(), err)

	eid, _ := s.graph.AddEdge("a", "a", 0)
	require.True(s.T(), nbrs.Contains("a"))

	require.NoError(s.T(), s.graph.RemoveEdge(eid))
	require.False(s.T(), nbrs.Contains("a"))
}

// TestClose: a detached cache no longer tracks edits.
func (s *CacheSuite) TestClose() {
	s.graph.AddEdge("1", "2", 0)
	succ, err := s.cache.SuccessorsOf("1")
	require.NoError(s.T(), err)

	s.cache.Close()
	s.graph.AddEdge("1", "3", 0)
	require.Equal(s.T(), []string{"2"}, succ.Sorted(), "closed cache must not observe edits")

	// re-attach a fresh cache for TearDownTest symmetry
	s.cache, err = neighborcache.New(s.graph)
	require.NoError(s.T(), err)
}

func TestCacheSuite(t *testing.T) {
	suite.Run(t, new(CacheSuite))
}
