// File: methods_edges.go
// Role: Tunnel lifecycle & queries: AddEdge/HasEdge/NeighborIDs/EdgeCount.
// Determinism:
//   - NeighborIDs() returns IDs sorted ascending.
// Concurrency:
//   - Mutations under muAdj write lock.
//   - Read queries under muAdj read lock.

package core

import (
	"fmt"
	"sort"
)

// AddEdge joins from and to with an undirected tunnel.
//
// Steps:
//  1. Validate IDs and reject loops.
//  2. Ensure endpoints exist (undeclared endpoints get rate 0).
//  3. Lock muAdj; if the tunnel already exists this is a no-op.
//  4. Link adjacency in both directions.
//
// Reports list every tunnel from both ends, so a repeated AddEdge(b, a) after
// AddEdge(a, b) is expected and ignored.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if from == to {
		return fmt.Errorf("%w: %s", ErrLoopNotAllowed, from)
	}

	g.ensureVertex(from)
	g.ensureVertex(to)

	g.muAdj.Lock()
	defer g.muAdj.Unlock()

	ensureAdjacency(g, from)
	ensureAdjacency(g, to)
	if _, ok := g.adjacency[from][to]; ok {
		return nil
	}
	g.adjacency[from][to] = struct{}{}
	g.adjacency[to][from] = struct{}{}
	g.edges++

	return nil
}

// HasEdge reports whether a tunnel joins from and to.
func (g *Graph) HasEdge(from, to string) bool {
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()

	_, ok := g.adjacency[from][to]

	return ok
}

// NeighborIDs returns the IDs directly reachable from id, sorted ascending.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
// Complexity: O(d log d) for d neighbors.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	if !g.HasVertex(id) {
		return nil, fmt.Errorf("%w: %s", ErrVertexNotFound, id)
	}

	g.muAdj.RLock()
	defer g.muAdj.RUnlock()

	bucket := g.adjacency[id]
	ids := make([]string, 0, len(bucket))
	for nb := range bucket {
		ids = append(ids, nb)
	}
	sort.Strings(ids)

	return ids, nil
}

// EdgeCount returns the number of distinct tunnels.
func (g *Graph) EdgeCount() int {
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()

	return g.edges
}

// ensureAdjacency allocates the adjacency bucket for id.
// Caller must hold muAdj write lock.
func ensureAdjacency(g *Graph, id string) {
	if g.adjacency[id] == nil {
		g.adjacency[id] = make(map[string]struct{})
	}
}
