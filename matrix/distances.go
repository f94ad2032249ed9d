// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Hop-count distance table over a core.Graph: every tunnel weighs 1 in
//     both directions, closed with FloydWarshall, frozen into ints.
//
// Determinism:
//   - Vertex indices follow core.Graph.Vertices() (ID ascending).

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/volcanium/core"
)

const opBuildDistances = "BuildDistances"

// Unreachable is reported by At for pairs with no connecting path.
// It exceeds any time budget a solver accepts, so it never survives a range check.
const Unreachable = math.MaxInt32

// Distances is a read-only all-pairs hop-count table.
//
// Invariants: At(i,i)==0; At(i,j)==At(j,i); At(i,k) <= At(i,j)+At(j,k)
// whenever the right-hand side is finite.
type Distances struct {
	ids   []string       // index → vertex ID
	index map[string]int // vertex ID → index
	hops  []int          // row-major n×n, Unreachable for no path
}

// BuildDistances computes the hop-count table for g.
//
// Implementation:
//   - Stage 1: Index vertices in Vertices() order.
//   - Stage 2: Seed a Dense with 0 on the diagonal, 1 per tunnel, +Inf elsewhere.
//   - Stage 3: FloydWarshall in place.
//   - Stage 4: Freeze to ints, mapping +Inf to Unreachable.
//
// An empty graph yields an empty table.
//
// Errors: ErrGraphNil.
// Complexity: O(V³) time, O(V²) space.
func BuildDistances(g *core.Graph) (*Distances, error) {
	if g == nil {
		return nil, matrixErrorf(opBuildDistances, ErrGraphNil)
	}

	ids := g.Vertices()
	n := len(ids)
	d := &Distances{
		ids:   ids,
		index: make(map[string]int, n),
		hops:  make([]int, n*n),
	}
	for i, id := range ids {
		d.index[id] = i
	}
	if n == 0 {
		return d, nil
	}

	m, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opBuildDistances, err)
	}
	m.Fill(math.Inf(1))

	for i, id := range ids {
		m.data[i*n+i] = 0
		nbs, err := g.NeighborIDs(id)
		if err != nil {
			return nil, matrixErrorf(opBuildDistances, fmt.Errorf("neighbors of %q: %w", id, err))
		}
		for _, nb := range nbs {
			j := d.index[nb]
			m.data[i*n+j] = 1
			m.data[j*n+i] = 1
		}
	}

	if err = FloydWarshall(m); err != nil {
		return nil, matrixErrorf(opBuildDistances, err)
	}

	for i, v := range m.data {
		if math.IsInf(v, 1) {
			d.hops[i] = Unreachable
			continue
		}
		d.hops[i] = int(v)
	}

	return d, nil
}

// Len returns the number of indexed vertices.
func (d *Distances) Len() int { return len(d.ids) }

// IDs returns a copy of the index → ID mapping.
func (d *Distances) IDs() []string {
	out := make([]string, len(d.ids))
	copy(out, d.ids)

	return out
}

// Index returns the table index of id.
func (d *Distances) Index(id string) (int, bool) {
	i, ok := d.index[id]

	return i, ok
}

// At returns the hop count between indices i and j, or Unreachable.
// Indices must be in [0, Len()).
func (d *Distances) At(i, j int) int {
	return d.hops[i*len(d.ids)+j]
}

// Distance returns the hop count between two vertex IDs.
// ok is false if either ID is unknown or no path joins them.
func (d *Distances) Distance(from, to string) (int, bool) {
	i, ok := d.index[from]
	if !ok {
		return 0, false
	}
	j, ok := d.index[to]
	if !ok {
		return 0, false
	}
	h := d.At(i, j)
	if h == Unreachable {
		return 0, false
	}

	return h, true
}
