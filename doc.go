// Package helltriangle is a compact playground for the classic "hell
// triangle" puzzle: find the maximum-sum path from the apex to the base of a
// numeric triangle, where each step moves to one of the two cells below.
//
// 🚀 What is helltriangle?
//
//	A pure-Go library that implements the same path-sum contract three ways:
//		• Naive       — recursive divide-and-conquer over left/right subtriangles
//		• Memoized    — top-down recursion with a per-call (row, col) memo
//		• Iterative   — bottom-up fold over a single rolling row
//
// ✨ Why three solvers?
//
//   - The naive split recursion is the readable baseline (exponential time)
//   - The memoized and iterative forms are the O(n²) production choices
//   - All three are verified equivalent on every input, which makes the
//     package a worked example of turning a recurrence into dynamic
//     programming step by step
//
// Everything lives under one subpackage:
//
//	triangle/ — the Triangle type, shape validation, Split, the three
//	            solvers, and the Solve dispatcher with optional path recovery
//
// Quick ASCII example:
//
//	      6
//	     3 5
//	    9 7 1
//	   4 6 8 4
//
//	best path 6→3→9→8, sum 26.
//
// Dive into triangle/doc.go for the per-solver contracts and complexity,
// and examples/ for runnable scenarios.
//
//	go get github.com/mkoval/helltriangle/triangle
package helltriangle
