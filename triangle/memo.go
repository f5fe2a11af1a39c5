package triangle

// MaxPathCached — top-down memoized recursion
//
// Description:
//
//	Same recurrence as MaxPath, but addressed by coordinates into the
//	original triangle and memoized per (row, col), so each of the O(n²)
//	cells is computed exactly once.
//
// Recurrence:
//
//	value(i, j) = tri[i][j]                                     if i == n-1
//	value(i, j) = tri[i][j] + max(value(i+1,j), value(i+1,j+1)) otherwise
//
//	result = value(0, 0)
//
// The memo lives for a single top-level call and is discarded on return.
// Sharing a (row, col)-keyed cache across calls would be unsound: two
// triangles of equal dimensions but different values collide on every key.
//
// Complexity:
//
//	Time   = O(n²)
//	Memory = O(n²) memo + O(n) recursion depth
//
// Errors:
//   - ErrEmptyTriangle / ErrRaggedRow — malformed input.
func MaxPathCached(tri Triangle) (int, error) {
	if err := Validate(tri); err != nil {
		return 0, err
	}

	last := len(tri) - 1

	// Fresh per-call memo, triangular like the input. Cell values may be
	// negative, so a parallel seen table marks computed entries instead of a
	// zero sentinel.
	memo := make([][]int, len(tri))
	seen := make([][]bool, len(tri))
	for i := range tri {
		memo[i] = make([]int, i+1)
		seen[i] = make([]bool, i+1)
	}

	var value func(i, j int) int
	value = func(i, j int) int {
		if i == last {
			return tri[i][j]
		}
		if seen[i][j] {
			return memo[i][j]
		}

		v := tri[i][j] + max(value(i+1, j), value(i+1, j+1))
		memo[i][j] = v
		seen[i][j] = true

		return v
	}

	return value(0, 0), nil
}
