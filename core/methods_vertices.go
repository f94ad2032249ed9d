// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() and RatedVertices() return IDs sorted lexicographically ascending.
//
// Concurrency:
//   - Vertex catalog protected by muVert.
//   - Adjacency bootstrap under muAdj.
package core

import (
	"fmt"
	"sort"
)

// AddVertex registers a valve with its flow rate.
//
// Implementation:
//   - Stage 1: Validate non-empty ID and non-negative rate.
//   - Stage 2: Under muVert, reject a duplicate registration, else store the vertex.
//   - Stage 3: Under muAdj, bootstrap the adjacency bucket.
//
// AddEdge creates missing endpoints as undeclared placeholders with rate 0;
// AddVertex may later declare such a placeholder exactly once. Declaring the
// same ID twice is rejected: a report that names one valve twice is ambiguous.
//
// Errors: ErrEmptyVertexID, ErrNegativeRate, ErrVertexExists.
// Complexity: O(1).
func (g *Graph) AddVertex(id string, rate int) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if rate < 0 {
		return fmt.Errorf("%w: %s rate=%d", ErrNegativeRate, id, rate)
	}

	g.muVert.Lock()
	v, exists := g.vertices[id]
	switch {
	case exists && v.declared:
		g.muVert.Unlock()
		return fmt.Errorf("%w: %s", ErrVertexExists, id)
	case exists:
		// Placeholder created by an earlier AddEdge; the declaration fills it in.
		v.Rate, v.declared = rate, true
		g.muVert.Unlock()
		return nil
	}
	g.vertices[id] = &vertexRecord{Vertex: Vertex{ID: id, Rate: rate}, declared: true}
	g.muVert.Unlock()

	g.muAdj.Lock()
	ensureAdjacency(g, id)
	g.muAdj.Unlock()

	return nil
}

// ensureVertex creates a placeholder vertex with rate 0 if id is unknown.
// Reports whether a new vertex was created.
func (g *Graph) ensureVertex(id string) bool {
	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.vertices[id]; exists {
		return false
	}
	g.vertices[id] = &vertexRecord{Vertex: Vertex{ID: id}}

	return true
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertex returns a copy of the vertex record.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
func (g *Graph) Vertex(id string) (Vertex, error) {
	if id == "" {
		return Vertex{}, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	v, ok := g.vertices[id]
	if !ok {
		return Vertex{}, fmt.Errorf("%w: %s", ErrVertexNotFound, id)
	}

	return v.Vertex, nil
}

// Rate returns the flow rate of id, or 0 if the vertex is unknown.
// Convenience for hot loops that have already validated membership.
func (g *Graph) Rate(id string) int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	if v, ok := g.vertices[id]; ok {
		return v.Rate
	}

	return 0
}

// Vertices returns all vertex IDs sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// RatedVertices returns the IDs of vertices with a positive flow rate, sorted ascending.
// These are the only valves worth opening.
func (g *Graph) RatedVertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	for id, v := range g.vertices {
		if v.Rate > 0 {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns the current number of vertices in the graph.
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}
