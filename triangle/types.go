// Package triangle - core types, options, and sentinel errors shared by the
// Split operation and the three path-sum solvers.
package triangle

import "errors"

// Sentinel errors for triangle operations.
var (
	// ErrEmptyTriangle indicates the input has no rows.
	ErrEmptyTriangle = errors.New("triangle: input must have at least one row")
	// ErrRaggedRow indicates some row i does not contain exactly i+1 cells.
	ErrRaggedRow = errors.New("triangle: row i must contain exactly i+1 cells")
	// ErrSingleRowSplit indicates Split was called on a height-1 triangle.
	ErrSingleRowSplit = errors.New("triangle: cannot split a single-row triangle")
	// ErrUnknownStrategy indicates Options.Strategy is not a defined constant.
	ErrUnknownStrategy = errors.New("triangle: unknown solving strategy")
	// ErrPathNeedsIterative indicates ReturnPath was requested with a strategy
	// that cannot reconstruct the winning path.
	ErrPathNeedsIterative = errors.New("triangle: ReturnPath requires Strategy=Iterative")
)

// Row is a single horizontal slice of a triangle, read-only during solving.
type Row = []int

// Triangle is an apex-down numeric triangle: row i holds exactly i+1 cells
// and the triangle has at least one row. It is never mutated by this package;
// each solver call allocates its own working state and discards it on return.
type Triangle [][]int

// Height returns the number of rows.
func (t Triangle) Height() int { return len(t) }

// Strategy selects which solver Solve routes to.
//
//   - Naive     — recursive divide-and-conquer over left/right subtriangles.
//     Exponential time; the reference baseline, not a production choice.
//   - Memoized  — top-down recursion over (row, col) with a per-call memo.
//     O(n²) time, O(n²) memory.
//   - Iterative — bottom-up fold over a single rolling row.
//     O(n²) time, O(n) memory; the recommended default.
type Strategy int

const (
	// Naive mode: exponential split recursion, no sharing of subproblems.
	Naive Strategy = iota
	// Memoized mode: top-down recursion, each (row, col) computed once.
	Memoized
	// Iterative mode: bottom-up rolling-row dynamic programming.
	Iterative
)

// Options configures Solve.
//
// Fields:
//   - Strategy   — which of the three solvers to run.
//   - ReturnPath — if true, Solve also reconstructs the winning path.
//     Requires Strategy=Iterative, which switches to a full
//     per-row table internally to support the backtrack.
type Options struct {
	Strategy   Strategy
	ReturnPath bool
}

// DefaultOptions returns the recommended configuration:
// Strategy=Iterative (best time/space trade-off), ReturnPath=false.
func DefaultOptions() Options {
	return Options{
		Strategy:   Iterative,
		ReturnPath: false,
	}
}

// Result holds the outcome of Solve.
type Result struct {
	// Sum is the maximum achievable apex-to-base path sum.
	Sum int

	// Path lists the column chosen in each row, apex first: Path[0]==0 and
	// each following entry equals the previous one or the previous one plus
	// one. Nil unless Options.ReturnPath was set.
	Path []int
}
