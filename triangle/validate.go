// Package triangle - shape validation shared by every entry point.
//
// Design principles:
//   - Deterministic, side-effect free checks.
//   - No logging, no panics on user input - only sentinel errors from types.go.
//   - O(n) worst-case where n is the triangle height; no allocations.
package triangle

// Validate verifies the triangle invariant: at least one row, and row i
// (0-indexed) holding exactly i+1 cells.
//
// Every exported operation runs Validate before doing any work, so all of
// them report the same sentinel for the same malformed input.
//
// Complexity: O(n) time, zero allocations.
func Validate(tri Triangle) error {
	if len(tri) == 0 {
		return ErrEmptyTriangle
	}
	for i, row := range tri {
		if len(row) != i+1 {
			return ErrRaggedRow
		}
	}

	return nil
}
