package core_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/volcanium/core"
)

func TestGraph_AddVertex(t *testing.T) {
	g := core.NewGraph()

	require.NoError(t, g.AddVertex("AA", 0))
	require.NoError(t, g.AddVertex("BB", 13))
	assert.True(t, g.HasVertex("AA"))
	assert.False(t, g.HasVertex(""))
	assert.False(t, g.HasVertex("ZZ"))

	err := g.AddVertex("BB", 7)
	assert.ErrorIs(t, err, core.ErrVertexExists)
	assert.Equal(t, 13, g.Rate("BB"), "rejected duplicate must not overwrite rate")

	assert.ErrorIs(t, g.AddVertex("", 1), core.ErrEmptyVertexID)
	assert.ErrorIs(t, g.AddVertex("CC", -1), core.ErrNegativeRate)
	assert.Equal(t, 2, g.VertexCount())
}

func TestGraph_AddEdgeCreatesPlaceholders(t *testing.T) {
	g := core.NewGraph()

	require.NoError(t, g.AddEdge("AA", "BB"))
	assert.True(t, g.HasVertex("BB"))
	assert.Equal(t, 0, g.Rate("BB"))

	// A later declaration fills in the placeholder once.
	require.NoError(t, g.AddVertex("BB", 13))
	assert.Equal(t, 13, g.Rate("BB"))
	assert.ErrorIs(t, g.AddVertex("BB", 13), core.ErrVertexExists)
}

func TestGraph_AddEdgeUndirectedAndIdempotent(t *testing.T) {
	g := core.NewGraph()

	require.NoError(t, g.AddEdge("AA", "BB"))
	require.NoError(t, g.AddEdge("BB", "AA"))
	require.NoError(t, g.AddEdge("AA", "CC"))

	assert.True(t, g.HasEdge("AA", "BB"))
	assert.True(t, g.HasEdge("BB", "AA"))
	assert.False(t, g.HasEdge("BB", "CC"))
	assert.Equal(t, 2, g.EdgeCount())

	nbs, err := g.NeighborIDs("AA")
	require.NoError(t, err)
	assert.Equal(t, []string{"BB", "CC"}, nbs)
}

func TestGraph_AddEdgeErrors(t *testing.T) {
	g := core.NewGraph()

	assert.ErrorIs(t, g.AddEdge("", "AA"), core.ErrEmptyVertexID)
	assert.ErrorIs(t, g.AddEdge("AA", ""), core.ErrEmptyVertexID)
	assert.ErrorIs(t, g.AddEdge("AA", "AA"), core.ErrLoopNotAllowed)
	assert.Equal(t, 0, g.EdgeCount())
}

func TestGraph_Queries(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("DD", 20))
	require.NoError(t, g.AddVertex("AA", 0))
	require.NoError(t, g.AddVertex("BB", 13))
	require.NoError(t, g.AddEdge("AA", "BB"))

	assert.Equal(t, []string{"AA", "BB", "DD"}, g.Vertices())
	assert.Equal(t, []string{"BB", "DD"}, g.RatedVertices())

	v, err := g.Vertex("DD")
	require.NoError(t, err)
	assert.Equal(t, core.Vertex{ID: "DD", Rate: 20}, v)

	_, err = g.Vertex("QQ")
	assert.True(t, errors.Is(err, core.ErrVertexNotFound))
	_, err = g.Vertex("")
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)

	_, err = g.NeighborIDs("QQ")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	nbs, err := g.NeighborIDs("DD")
	require.NoError(t, err)
	assert.Empty(t, nbs)

	assert.Equal(t, 0, g.Rate("QQ"))
}

func TestGraph_ConcurrentReads(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("AA", 0))
	require.NoError(t, g.AddVertex("BB", 5))
	require.NoError(t, g.AddEdge("AA", "BB"))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = g.Vertices()
				_, _ = g.NeighborIDs("AA")
				_ = g.Rate("BB")
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, g.EdgeCount())
}
