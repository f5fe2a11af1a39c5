package triangle

// MaxPathIterative — bottom-up rolling-row fold
//
// Description:
//
//	The production form: walk the triangle from the base upward, keeping a
//	single working row of "best achievable sum from this cell downward"
//	values. Each step adds the current row to the adjacent pair of
//	best-values below it and collapses the pair by max, shrinking the
//	working row by one, until only the apex value remains.
//
// Algorithm Outline:
//  1. Seed best[] with a copy of the base row (the fold of the base row
//     against a zero baseline).
//  2. For i = n-2 down to 0, for j = 0..i:
//     best[j] = tri[i][j] + max(best[j], best[j+1])
//     Ascending j is safe: slot j is overwritten only after it is read, and
//     slot j+1 still holds the row-below value.
//  3. Answer is best[0]. A height-1 triangle runs the loop zero times and
//     returns the apex directly.
//
// Complexity:
//
//	Time   = O(n²)
//	Memory = O(n) — one working row, no recursion, no memo table
//
// Errors:
//   - ErrEmptyTriangle / ErrRaggedRow — malformed input.
func MaxPathIterative(tri Triangle) (int, error) {
	if err := Validate(tri); err != nil {
		return 0, err
	}

	base := tri[len(tri)-1]
	best := make(Row, len(base))
	copy(best, base)

	for i := len(tri) - 2; i >= 0; i-- {
		row := tri[i]
		for j := range row {
			best[j] = row[j] + max(best[j], best[j+1])
		}
	}

	return best[0], nil
}

// maxPathTable runs the same bottom-up recurrence with a full per-row table
// instead of a rolling row, then backtracks the apex-to-base column choices.
// Solve uses it when Options.ReturnPath is set; the extra O(n²) memory is the
// price of recovering the path, exactly as with full-matrix DP elsewhere.
//
// The backtrack prefers the left child on ties, so the returned path is
// deterministic. Callers pass a validated triangle.
func maxPathTable(tri Triangle) (sum int, path []int) {
	n := len(tri)

	best := make([][]int, n)
	best[n-1] = make(Row, n)
	copy(best[n-1], tri[n-1])
	for i := n - 2; i >= 0; i-- {
		best[i] = make(Row, i+1)
		for j := range best[i] {
			best[i][j] = tri[i][j] + max(best[i+1][j], best[i+1][j+1])
		}
	}

	path = make([]int, n)
	j := 0
	for i := 0; i < n-1; i++ {
		path[i] = j
		if best[i+1][j+1] > best[i+1][j] {
			j++
		}
	}
	path[n-1] = j

	return best[0][0], path
}
