// SPDX-License-Identifier: MIT

package cmatrix

import (
	"math"
	"math/bits"
	"math/cmplx"
)

// DefaultEpsilon is the tolerance used by structural checks (unitarity,
// near-equality, zero tests) throughout the synthesis pipeline.
const DefaultEpsilon = 1e-9

// Dense is a row-major matrix of complex128 values.
// r is rows, c is columns, data holds r*c elements in row-major order.
type Dense struct {
	r, c int
	data []complex128
}

// New creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Dense or ErrBadShape.
// Complexity: O(r*c) time and memory.
func New(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}

	return &Dense{r: rows, c: cols, data: make([]complex128, rows*cols)}, nil
}

// NewFromRows builds a Dense from a rectangular slice of rows.
// Returns ErrBadShape when rows is empty or ragged.
func NewFromRows(rows [][]complex128) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrBadShape
	}
	c := len(rows[0])
	m := &Dense{r: len(rows), c: c, data: make([]complex128, len(rows)*c)}
	for i, row := range rows {
		if len(row) != c {
			return nil, ErrBadShape
		}
		copy(m.data[i*c:(i+1)*c], row)
	}

	return m, nil
}

// Identity returns the n×n identity matrix.
// Complexity: O(n^2) zeroing plus O(n) diagonal writes.
func Identity(n int) *Dense {
	m := &Dense{r: n, c: n, data: make([]complex128, n*n)}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// At returns the element at (row, col). Panics when the index is out of
// range; indexing errors are programmer errors, not runtime conditions.
func (m *Dense) At(row, col int) complex128 {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		panic("cmatrix: index out of range")
	}

	return m.data[row*m.c+col]
}

// Set stores v at (row, col). Panics when the index is out of range.
func (m *Dense) Set(row, col int, v complex128) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		panic("cmatrix: index out of range")
	}
	m.data[row*m.c+col] = v
}

// Clone returns a deep copy of m.
func (m *Dense) Clone() *Dense {
	data := make([]complex128, len(m.data))
	copy(data, m.data)

	return &Dense{r: m.r, c: m.c, data: data}
}

// Mul returns the matrix product a×b.
// Deterministic i→k→j loop order over flat slices.
// Complexity: O(r·n·c).
func Mul(a, b *Dense) (*Dense, error) {
	if a.c != b.r {
		return nil, ErrDimensionMismatch
	}
	out := &Dense{r: a.r, c: b.c, data: make([]complex128, a.r*b.c)}
	for i := 0; i < a.r; i++ {
		for k := 0; k < a.c; k++ {
			aik := a.data[i*a.c+k]
			if aik == 0 {
				continue
			}
			for j := 0; j < b.c; j++ {
				out.data[i*b.c+j] += aik * b.data[k*b.c+j]
			}
		}
	}

	return out, nil
}

// MulChain multiplies matrices right-to-left in application order:
// given [g1, g2, g3] it returns g3·g2·g1, the matrix of applying g1 first.
// Returns the identity of size d for an empty chain.
func MulChain(d int, ms []*Dense) (*Dense, error) {
	acc := Identity(d)
	var err error
	for _, m := range ms {
		if acc, err = Mul(m, acc); err != nil {
			return nil, err
		}
	}

	return acc, nil
}

// ConjTranspose returns the conjugate transpose m*.
// Complexity: O(r·c).
func ConjTranspose(m *Dense) *Dense {
	out := &Dense{r: m.c, c: m.r, data: make([]complex128, len(m.data))}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			out.data[j*m.r+i] = cmplx.Conj(m.data[i*m.c+j])
		}
	}

	return out
}

// Transpose returns the plain transpose mᵀ without conjugation.
func Transpose(m *Dense) *Dense {
	out := &Dense{r: m.c, c: m.r, data: make([]complex128, len(m.data))}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			out.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}

	return out
}

// Sub returns a − b.
func Sub(a, b *Dense) (*Dense, error) {
	if a.r != b.r || a.c != b.c {
		return nil, ErrDimensionMismatch
	}
	out := &Dense{r: a.r, c: a.c, data: make([]complex128, len(a.data))}
	for i := range a.data {
		out.data[i] = a.data[i] - b.data[i]
	}

	return out, nil
}

// Scale returns alpha·m.
func Scale(alpha complex128, m *Dense) *Dense {
	out := &Dense{r: m.r, c: m.c, data: make([]complex128, len(m.data))}
	for i := range m.data {
		out.data[i] = alpha * m.data[i]
	}

	return out
}

// Kron returns the Kronecker product a ⊗ b.
// Complexity: O(ra·ca·rb·cb).
func Kron(a, b *Dense) *Dense {
	out := &Dense{r: a.r * b.r, c: a.c * b.c, data: make([]complex128, a.r*b.r*a.c*b.c)}
	for i := 0; i < a.r; i++ {
		for j := 0; j < a.c; j++ {
			aij := a.data[i*a.c+j]
			if aij == 0 {
				continue
			}
			for k := 0; k < b.r; k++ {
				for l := 0; l < b.c; l++ {
					out.data[(i*b.r+k)*out.c+(j*b.c+l)] = aij * b.data[k*b.c+l]
				}
			}
		}
	}

	return out
}

// FrobeniusNorm returns ‖m‖_F = sqrt(Σ |m_ij|²).
func FrobeniusNorm(m *Dense) float64 {
	sum := 0.0
	for _, v := range m.data {
		sum += real(v)*real(v) + imag(v)*imag(v)
	}

	return math.Sqrt(sum)
}

// AllClose reports whether a and b have identical shape and every entry pair
// satisfies |a_ij − b_ij| ≤ eps·max(1, |a_ij|, |b_ij|).
func AllClose(a, b *Dense, eps float64) bool {
	if a.r != b.r || a.c != b.c {
		return false
	}
	for i := range a.data {
		if !CloseScalar(a.data[i], b.data[i], eps) {
			return false
		}
	}

	return true
}

// CloseScalar reports |a − b| ≤ eps·max(1, |a|, |b|), the relative-with-floor
// comparison mandated by the numeric policy. Never use == on floats.
func CloseScalar(a, b complex128, eps float64) bool {
	scale := math.Max(1, math.Max(cmplx.Abs(a), cmplx.Abs(b)))

	return cmplx.Abs(a-b) <= eps*scale
}

// IsUnitary reports whether m·m* is the identity within eps.
// Only square matrices can be unitary.
func IsUnitary(m *Dense, eps float64) bool {
	if m.r != m.c {
		return false
	}
	p, _ := Mul(m, ConjTranspose(m))

	return AllClose(p, Identity(m.r), eps)
}

// IsPowerOfTwo reports whether n is a positive power of two (1 counts).
func IsPowerOfTwo(n int) bool {
	return n > 0 && bits.OnesCount(uint(n)) == 1
}

// Log2 returns log2(n) for a power-of-two n.
func Log2(n int) int {
	return bits.Len(uint(n)) - 1
}

// ValidateUnitary checks the entry-point invariants on a register unitary:
// square shape, power-of-two side, and unitarity within eps. It reports the
// first violated invariant as a sentinel error.
func ValidateUnitary(m *Dense, eps float64) error {
	if m == nil || m.r < 2 {
		return ErrBadShape
	}
	if m.r != m.c {
		return ErrNonSquare
	}
	if !IsPowerOfTwo(m.r) {
		return ErrNotPowerOfTwo
	}
	if !IsUnitary(m, eps) {
		return ErrNonUnitary
	}

	return nil
}

// ApplyTwoLevelRight multiplies m from the right by a two-level unitary that
// acts on columns (i, j) with the 2×2 block e, in place:
//
//	col_i ← col_i·e00 + col_j·e10
//	col_j ← col_i·e01 + col_j·e11
//
// This is the elimination step of the two-level sweep; m is mutated.
func (m *Dense) ApplyTwoLevelRight(e *Dense, i, j int) {
	e00, e01 := e.data[0], e.data[1]
	e10, e11 := e.data[2], e.data[3]
	for row := 0; row < m.r; row++ {
		vi := m.data[row*m.c+i]
		vj := m.data[row*m.c+j]
		m.data[row*m.c+i] = vi*e00 + vj*e10
		m.data[row*m.c+j] = vi*e01 + vj*e11
	}
}
