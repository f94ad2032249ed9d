// Package matrix provides the dense distance machinery behind the valve solver:
// a row-major Dense matrix, an in-place Floyd–Warshall closure, and the
// Distances hop-count table built from a core.Graph.
//
// Distance policy:
//
//   - Every tunnel weighs exactly 1 in both directions.
//   - +Inf in a Dense means "no path"; Distances freezes it to Unreachable.
//   - Diagonal entries are always 0.
//
// Floyd–Warshall runs with a fixed k → i → j loop order and relaxes only on
// strict improvement, so results are bit-for-bit reproducible.
//
// Complexity:
//
//   - BuildDistances: O(V³) time, O(V²) space.
//   - Distances.At / Distance: O(1).
//
// Example:
//
//	d, err := matrix.BuildDistances(g)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	hops, ok := d.Distance("AA", "HH")
package matrix
