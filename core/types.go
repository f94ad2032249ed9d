// Package core defines the valve Graph: vertices carrying a flow rate,
// joined by undirected unit-length tunnels.
//
// All core APIs use separate sync.RWMutex locks internally (muVert for vertices,
// muAdj for adjacency), so a parsed graph can be shared read-only between
// goroutines running independent solves.
//
// Errors:
//
//	ErrEmptyVertexID   - vertex ID is the empty string.
//	ErrVertexNotFound  - requested vertex does not exist.
//	ErrVertexExists    - AddVertex called twice for the same ID.
//	ErrNegativeRate    - vertex flow rate below zero.
//	ErrLoopNotAllowed  - tunnel from a vertex to itself.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrVertexExists indicates AddVertex was called for an ID that is already registered.
	ErrVertexExists = errors.New("core: vertex already exists")

	// ErrNegativeRate indicates a vertex flow rate below zero.
	ErrNegativeRate = errors.New("core: negative flow rate")

	// ErrLoopNotAllowed indicates a self-loop tunnel was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Vertex is one valve room.
//
// ID uniquely identifies the Vertex within its Graph.
// Rate is the pressure released per minute once the valve is opened.
type Vertex struct {
	ID   string
	Rate int
}

// vertexRecord tracks whether a vertex was declared by AddVertex or only
// referenced as a tunnel endpoint.
type vertexRecord struct {
	Vertex
	declared bool
}

// Graph is the in-memory valve network.
//
// Tunnels are undirected and unweighted: every edge counts as one minute of travel.
// muVert protects vertices; muAdj protects adjacency and the tunnel counter.
type Graph struct {
	muVert sync.RWMutex // guards vertices
	muAdj  sync.RWMutex // guards adjacency, edges

	vertices map[string]*vertexRecord // vertex ID → record

	// adjacency[a][b] exists iff a tunnel joins a and b; always mirrored.
	adjacency map[string]map[string]struct{}
	edges     int
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		vertices:  make(map[string]*vertexRecord),
		adjacency: make(map[string]map[string]struct{}),
	}
}
