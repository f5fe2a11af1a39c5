// Package triangle - unified dispatcher for the path-sum solvers.
//
// This file provides the canonical entry point:
//
//   - Solve: validate the triangle, route to the solver selected by
//     Options.Strategy, and optionally reconstruct the winning path.
//
// Design principles:
//   - Deterministic: same input and options, same Result, every time.
//   - Strict sentinels: only errors from types.go; no fmt.Errorf where a
//     sentinel suffices.
//   - No shared state: each call allocates and discards its own working
//     storage, so concurrent calls never interfere.
package triangle

// Solve validates tri and routes to the solver selected by opts.Strategy.
//
// Contracts:
//   - tri must satisfy Validate; all strategies reject the same malformed
//     inputs with the same sentinels.
//   - opts.ReturnPath requires Strategy=Iterative, which switches to a full
//     per-row table internally to support the backtrack. Other strategies
//     return ErrPathNeedsIterative.
//
// Complexity: per chosen strategy (see MaxPath, MaxPathCached,
// MaxPathIterative).
func Solve(tri Triangle, opts Options) (Result, error) {
	if err := Validate(tri); err != nil {
		return Result{}, err
	}
	if opts.ReturnPath && opts.Strategy != Iterative {
		return Result{}, ErrPathNeedsIterative
	}

	var (
		sum int
		err error
	)
	switch opts.Strategy {
	case Naive:
		sum, err = MaxPath(tri)
	case Memoized:
		sum, err = MaxPathCached(tri)
	case Iterative:
		if opts.ReturnPath {
			total, path := maxPathTable(tri)
			return Result{Sum: total, Path: path}, nil
		}
		sum, err = MaxPathIterative(tri)
	default:
		return Result{}, ErrUnknownStrategy
	}
	if err != nil {
		return Result{}, err
	}

	return Result{Sum: sum}, nil
}
