// Package triangle computes the maximum apex-to-base path sum of a numeric
// triangle, with three interchangeable solving strategies and optional
// recovery of the winning path.
//
// 🚀 What is the hell triangle?
//
//	A triangle of integers where row i holds exactly i+1 cells.  A path
//	starts at the apex and descends one row per step, moving to one of the
//	two cells directly below the current cell.  The puzzle asks for the
//	maximum sum over all such paths.  It is the textbook warm-up for:
//	  • Recursion vs. memoization vs. bottom-up dynamic programming
//	  • Overlapping-subproblem analysis
//	  • Rolling-array space optimization
//
// ✨ Key features:
//   - MaxPath          — naive split recursion, the exponential baseline
//   - MaxPathCached    — top-down memoized recursion, O(n²) time
//   - MaxPathIterative — bottom-up rolling-row fold, O(n²) time, O(n) memory
//   - Split            — left/right subtriangle derivation used by the baseline
//   - Solve            — strategy dispatcher with on-demand path recovery
//
// All three solvers are pure functions over the same contract and return
// identical sums for identical inputs; every entry point rejects malformed
// triangles with the same sentinel errors before doing any work.
//
// ⚙️ Usage:
//
//	import "github.com/mkoval/helltriangle/triangle"
//
//	tri := triangle.Triangle{
//	  {6},
//	  {3, 5},
//	  {9, 7, 1},
//	  {4, 6, 8, 4},
//	}
//
//	opts := triangle.DefaultOptions()
//	opts.ReturnPath = true
//
//	res, err := triangle.Solve(tri, opts)
//	// res.Sum == 26, res.Path == [0 1 1 2]
//
// Performance:
//
//   - MaxPath:          O(2ⁿ) time — use only as a reference baseline
//   - MaxPathCached:    O(n²) time, O(n²) memory
//   - MaxPathIterative: O(n²) time, O(n) memory (O(n²) when ReturnPath)
//
// See examples in example_test.go for detailed walkthroughs.
package triangle
