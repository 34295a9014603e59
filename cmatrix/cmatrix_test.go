package cmatrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantforge/qdecomp/cmatrix"
)

// TestNew_RejectsBadShape verifies that non-positive dimensions are
// rejected with ErrBadShape.
func TestNew_RejectsBadShape(t *testing.T) {
	_, err := cmatrix.New(0, 3)
	assert.ErrorIs(t, err, cmatrix.ErrBadShape, "zero rows must error")

	_, err = cmatrix.New(2, -1)
	assert.ErrorIs(t, err, cmatrix.ErrBadShape, "negative cols must error")
}

// TestNewFromRows_RejectsRagged verifies ragged input is rejected.
func TestNewFromRows_RejectsRagged(t *testing.T) {
	_, err := cmatrix.NewFromRows([][]complex128{{1, 0}, {0}})
	assert.ErrorIs(t, err, cmatrix.ErrBadShape, "ragged rows must error")

	_, err = cmatrix.NewFromRows(nil)
	assert.ErrorIs(t, err, cmatrix.ErrBadShape, "empty input must error")
}

// TestIdentity_Shape checks the identity constructor.
func TestIdentity_Shape(t *testing.T) {
	id := cmatrix.Identity(4)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			want := complex128(0)
			if i == j {
				want = 1
			}
			assert.Equal(t, want, id.At(i, j))
		}
	}
}

// TestMul_DimensionMismatch verifies incompatible operands error.
func TestMul_DimensionMismatch(t *testing.T) {
	a, err := cmatrix.New(2, 3)
	require.NoError(t, err)
	b, err := cmatrix.New(2, 2)
	require.NoError(t, err)

	_, err = cmatrix.Mul(a, b)
	assert.ErrorIs(t, err, cmatrix.ErrDimensionMismatch)
}

// TestMul_KnownProduct multiplies two fixed 2×2 matrices.
func TestMul_KnownProduct(t *testing.T) {
	x, err := cmatrix.NewFromRows([][]complex128{{0, 1}, {1, 0}})
	require.NoError(t, err)
	z, err := cmatrix.NewFromRows([][]complex128{{1, 0}, {0, -1}})
	require.NoError(t, err)

	// X·Z = [[0,−1],[1,0]]
	xz, err := cmatrix.Mul(x, z)
	require.NoError(t, err)
	want, _ := cmatrix.NewFromRows([][]complex128{{0, -1}, {1, 0}})
	assert.True(t, cmatrix.AllClose(xz, want, cmatrix.DefaultEpsilon))
}

// TestMulChain_ApplicationOrder verifies that MulChain multiplies
// right-to-left: the first list element is applied first.
func TestMulChain_ApplicationOrder(t *testing.T) {
	x, _ := cmatrix.NewFromRows([][]complex128{{0, 1}, {1, 0}})
	z, _ := cmatrix.NewFromRows([][]complex128{{1, 0}, {0, -1}})

	// Applying X first then Z equals the matrix product Z·X.
	got, err := cmatrix.MulChain(2, []*cmatrix.Dense{x, z})
	require.NoError(t, err)
	want, err := cmatrix.Mul(z, x)
	require.NoError(t, err)
	assert.True(t, cmatrix.AllClose(got, want, cmatrix.DefaultEpsilon))
}

// TestConjTranspose_Values checks conjugation and transposition together.
func TestConjTranspose_Values(t *testing.T) {
	m, _ := cmatrix.NewFromRows([][]complex128{
		{1 + 2i, 3},
		{-1i, 2 - 1i},
	})
	h := cmatrix.ConjTranspose(m)

	assert.Equal(t, complex128(1-2i), h.At(0, 0))
	assert.Equal(t, complex128(1i), h.At(0, 1))
	assert.Equal(t, complex128(3), h.At(1, 0))
	assert.Equal(t, complex128(2+1i), h.At(1, 1))
}

// TestKron_PauliXX verifies the Kronecker product on X⊗X.
func TestKron_PauliXX(t *testing.T) {
	x, _ := cmatrix.NewFromRows([][]complex128{{0, 1}, {1, 0}})
	xx := cmatrix.Kron(x, x)

	require.Equal(t, 4, xx.Rows())
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			want := complex128(0)
			if i == 3-j {
				want = 1
			}
			assert.Equal(t, want, xx.At(i, j), "entry (%d,%d)", i, j)
		}
	}
}

// TestIsUnitary_Classification checks both sides of the unitarity test.
func TestIsUnitary_Classification(t *testing.T) {
	h := complex(1/math.Sqrt2, 0)
	had, _ := cmatrix.NewFromRows([][]complex128{{h, h}, {h, -h}})
	assert.True(t, cmatrix.IsUnitary(had, cmatrix.DefaultEpsilon), "Hadamard is unitary")

	bad, _ := cmatrix.NewFromRows([][]complex128{{1, 1}, {0, 1}})
	assert.False(t, cmatrix.IsUnitary(bad, cmatrix.DefaultEpsilon), "shear is not unitary")
}

// TestValidateUnitary_Sentinels walks the error taxonomy in priority
// order: shape, then power-of-two, then unitarity.
func TestValidateUnitary_Sentinels(t *testing.T) {
	rect, _ := cmatrix.New(2, 4)
	assert.ErrorIs(t, cmatrix.ValidateUnitary(rect, 1e-9), cmatrix.ErrNonSquare)

	three := cmatrix.Identity(3)
	assert.ErrorIs(t, cmatrix.ValidateUnitary(three, 1e-9), cmatrix.ErrNotPowerOfTwo)

	bad, _ := cmatrix.NewFromRows([][]complex128{{1, 1}, {0, 1}})
	assert.ErrorIs(t, cmatrix.ValidateUnitary(bad, 1e-9), cmatrix.ErrNonUnitary)

	assert.NoError(t, cmatrix.ValidateUnitary(cmatrix.Identity(4), 1e-9))
}

// TestApplyTwoLevelRight_MatchesFullMultiply cross-checks the in-place
// column update against an explicit full-matrix product.
func TestApplyTwoLevelRight_MatchesFullMultiply(t *testing.T) {
	m, _ := cmatrix.NewFromRows([][]complex128{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{2i, 0, 1, 1i},
		{0, 1i, 2, 3},
	})
	e, _ := cmatrix.NewFromRows([][]complex128{
		{complex(math.Cos(0.3), 0), complex(-math.Sin(0.3), 0)},
		{complex(math.Sin(0.3), 0), complex(math.Cos(0.3), 0)},
	})

	full := cmatrix.Identity(4)
	full.Set(1, 1, e.At(0, 0))
	full.Set(1, 3, e.At(0, 1))
	full.Set(3, 1, e.At(1, 0))
	full.Set(3, 3, e.At(1, 1))
	want, err := cmatrix.Mul(m, full)
	require.NoError(t, err)

	got := m.Clone()
	got.ApplyTwoLevelRight(e, 1, 3)
	assert.True(t, cmatrix.AllClose(got, want, 1e-12))
}

// TestCloseScalar_RelativeFloor exercises the |a−b| ≤ eps·max(1,|a|,|b|)
// comparison on both small and large magnitudes.
func TestCloseScalar_RelativeFloor(t *testing.T) {
	assert.True(t, cmatrix.CloseScalar(1, 1+1e-12, 1e-9))
	assert.True(t, cmatrix.CloseScalar(1e6, 1e6+0.5e-3, 1e-9), "relative scaling kicks in above 1")
	assert.False(t, cmatrix.CloseScalar(0, 1e-6, 1e-9))
}

// TestIsPowerOfTwo_Boundaries covers the helper's edges.
func TestIsPowerOfTwo_Boundaries(t *testing.T) {
	assert.True(t, cmatrix.IsPowerOfTwo(1))
	assert.True(t, cmatrix.IsPowerOfTwo(16))
	assert.False(t, cmatrix.IsPowerOfTwo(0))
	assert.False(t, cmatrix.IsPowerOfTwo(12))
	assert.Equal(t, 4, cmatrix.Log2(16))
}
