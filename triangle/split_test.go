package triangle_test

import (
	"testing"

	"github.com/mkoval/helltriangle/triangle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSplit_Fixture pins the exact left/right derivation on tri1.
func TestSplit_Fixture(t *testing.T) {
	left, right, err := triangle.Split(tri1)
	require.NoError(t, err)

	assert.Equal(t, triangle.Triangle{{3}, {9, 7}, {4, 6, 8}}, left, "left subtriangle")
	assert.Equal(t, triangle.Triangle{{5}, {7, 1}, {6, 8, 4}}, right, "right subtriangle")
}

// TestSplit_Shape verifies the structural contract on a taller input: both
// results are one row shorter, left[k] drops tri[k+1]'s last cell and
// right[k] drops its first.
func TestSplit_Shape(t *testing.T) {
	left, right, err := triangle.Split(tri2)
	require.NoError(t, err)

	require.Equal(t, tri2.Height()-1, left.Height())
	require.Equal(t, tri2.Height()-1, right.Height())

	for k := 0; k < left.Height(); k++ {
		src := tri2[k+1]
		assert.Equal(t, triangle.Row(src[:len(src)-1]), left[k], "left row %d", k)
		assert.Equal(t, triangle.Row(src[1:]), right[k], "right row %d", k)
	}

	assert.NoError(t, triangle.Validate(left), "left must be a valid triangle")
	assert.NoError(t, triangle.Validate(right), "right must be a valid triangle")
}

// TestSplit_SingleRow verifies the precondition error: a height-1 triangle is
// well-formed but has nothing to split.
func TestSplit_SingleRow(t *testing.T) {
	_, _, err := triangle.Split(triangle.Triangle{{6}})
	assert.ErrorIs(t, err, triangle.ErrSingleRowSplit)
}

// TestSplit_Malformed verifies that shape errors win over the precondition.
func TestSplit_Malformed(t *testing.T) {
	_, _, err := triangle.Split(nil)
	assert.ErrorIs(t, err, triangle.ErrEmptyTriangle)

	_, _, err = triangle.Split(triangle.Triangle{{1}, {2, 3, 4}})
	assert.ErrorIs(t, err, triangle.ErrRaggedRow)
}

// TestSplit_NoAliasing verifies the results are copies: writing into them
// must not leak into the source triangle.
func TestSplit_NoAliasing(t *testing.T) {
	src := cloneTriangle(tri1)
	left, right, err := triangle.Split(src)
	require.NoError(t, err)

	left[0][0] = -999
	right[2][1] = -999

	assert.Equal(t, tri1, src, "Split must not alias the input's storage")
}
