package triangle

// Split — left/right subtriangle derivation
//
// Description:
//
//	Given a triangle of height n ≥ 2, Split derives the two height-(n-1)
//	subtriangles reachable from the apex: descend left and every row loses
//	its last cell, descend right and every row loses its first cell.
//
// Algorithm Outline:
//  1. Validate the shape; reject height < 2 with ErrSingleRowSplit.
//  2. For each row k = 1..n-1 of the input:
//     left[k-1]  = tri[k][:k]   (all cells except the last)
//     right[k-1] = tri[k][1:]   (all cells except the first)
//  3. Both results are fresh copies; the input is never aliased or mutated.
//
// Complexity:
//
//	Time   = O(n²)
//	Memory = O(n²) for the two returned triangles
//
// Errors:
//   - ErrEmptyTriangle / ErrRaggedRow — malformed input.
//   - ErrSingleRowSplit              — height-1 input has nothing to split.
func Split(tri Triangle) (left, right Triangle, err error) {
	if err = Validate(tri); err != nil {
		return nil, nil, err
	}
	if len(tri) < 2 {
		return nil, nil, ErrSingleRowSplit
	}

	h := len(tri) - 1
	left = make(Triangle, h)
	right = make(Triangle, h)
	for k := 1; k <= h; k++ {
		src := tri[k]
		l := make(Row, k)
		r := make(Row, k)
		copy(l, src[:k])
		copy(r, src[1:])
		left[k-1] = l
		right[k-1] = r
	}

	return left, right, nil
}
