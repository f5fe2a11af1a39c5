package triangle

// MaxPath — naive divide-and-conquer baseline
//
// Description:
//
//	The direct reading of the puzzle: a height-1 triangle is worth its only
//	cell; otherwise the answer is the apex plus the better of the two
//	subtriangles produced by Split.
//
// Recurrence:
//
//	best(T) = T[0][0]                                 if height(T) == 1
//	best(T) = T[0][0] + max(best(left), best(right))  otherwise
//
// Instead of materializing subtriangle copies at every level, the recursion
// descends over (row, col) offsets into the original storage: the subtriangle
// rooted at cell (i, j) has its left child at (i+1, j) and its right child at
// (i+1, j+1), which is exactly what Split's left/right copies address.
//
// Complexity:
//
//	Time   = O(2ⁿ) — every level branches twice and overlapping subproblems
//	         are recomputed from scratch. Intentional: this is the baseline
//	         that MaxPathCached and MaxPathIterative are measured against.
//	Memory = O(n) recursion depth
//
// Errors:
//   - ErrEmptyTriangle / ErrRaggedRow — malformed input.
func MaxPath(tri Triangle) (int, error) {
	if err := Validate(tri); err != nil {
		return 0, err
	}

	return maxPathFrom(tri, 0, 0), nil
}

// maxPathFrom returns the best achievable sum from cell (i, j) down to the
// base row. No caching: identical (i, j) pairs are recomputed on purpose.
func maxPathFrom(tri Triangle, i, j int) int {
	if i == len(tri)-1 {
		return tri[i][j]
	}

	left := maxPathFrom(tri, i+1, j)
	right := maxPathFrom(tri, i+1, j+1)

	return tri[i][j] + max(left, right)
}
