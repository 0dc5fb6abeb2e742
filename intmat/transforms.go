package intmat

import (
	"context"
	"fmt"
	"math/big"
)

// Transpose relocates every cell in place, swapping the row and column
// dimensions. It returns the receiver to allow chaining.
func (m *Matrix) Transpose() *Matrix {
	ns := m.st.newSame(m.rows * m.cols)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			ns.copyCell(j*m.rows+i, m.st, i*m.cols+j)
		}
	}
	m.st = ns
	m.rows, m.cols = m.cols, m.rows
	return m
}

// SwapRows exchanges rows r1 and r2.
func (m *Matrix) SwapRows(r1, r2 int) error {
	if r1 < 0 || r1 >= m.rows || r2 < 0 || r2 >= m.rows {
		return fmt.Errorf("intmat: swap rows (%d,%d) outside [0,%d): %w", r1, r2, m.rows, ErrIndex)
	}
	if r1 == r2 {
		return nil
	}
	a, b := r1*m.cols, r2*m.cols
	for j := 0; j < m.cols; j++ {
		m.st.swap(a+j, b+j)
	}
	return nil
}

func (m *Matrix) checkRowRange(first, last int) error {
	if first < 0 || last >= m.rows || last < first {
		return fmt.Errorf("intmat: row range [%d,%d] outside [0,%d): %w", first, last, m.rows, ErrIndex)
	}
	return nil
}

// reverseCells reverses the flat cell range [a,b).
func (m *Matrix) reverseCells(a, b int) {
	for a < b-1 {
		m.st.swap(a, b-1)
		a++
		b--
	}
}

// rotateCells left-rotates the flat cell range [a,c) so that the cell at b
// becomes the first, by the classical three-reversal identity.
func (m *Matrix) rotateCells(a, b, c int) {
	m.reverseCells(a, b)
	m.reverseCells(b, c)
	m.reverseCells(a, c)
}

// Rotate cyclically permutes the inclusive row range [first,last] so that the
// row at middle becomes the new first row, preserving relative order.
func (m *Matrix) Rotate(first, middle, last int) error {
	if err := m.checkRowRange(first, last); err != nil {
		return err
	}
	if middle < first || middle > last {
		return fmt.Errorf("intmat: rotation pivot %d outside [%d,%d]: %w", middle, first, last, ErrIndex)
	}
	m.rotateCells(first*m.cols, middle*m.cols, (last+1)*m.cols)
	return nil
}

// RotateLeft moves row first to position last, shifting the rows between up
// by one. A single-row range is a no-op.
func (m *Matrix) RotateLeft(first, last int) error {
	if err := m.checkRowRange(first, last); err != nil {
		return err
	}
	if first == last {
		return nil
	}
	return m.Rotate(first, first+1, last)
}

// RotateRight moves row last to position first, shifting the rows between
// down by one.
func (m *Matrix) RotateRight(first, last int) error {
	if err := m.checkRowRange(first, last); err != nil {
		return err
	}
	return m.Rotate(first, last, last)
}

// gramSigma returns the permutation mapping new row indices to old ones for a
// basis rotation over [first,last]; identity outside the range.
func gramSigma(first, last int, left bool) func(int) int {
	return func(i int) int {
		if i < first || i > last {
			return i
		}
		if left {
			if i == last {
				return first
			}
			return i + 1
		}
		if i == first {
			return last
		}
		return i - 1
	}
}

func (m *Matrix) rotateGram(first, last, nValid int, left bool) error {
	if m.rows != m.cols {
		return fmt.Errorf("intmat: gram rotation on %dx%d matrix: %w", m.rows, m.cols, ErrUnsupported)
	}
	if nValid < 0 || nValid > m.rows {
		return fmt.Errorf("intmat: %d valid gram rows outside [0,%d]: %w", nValid, m.rows, ErrIndex)
	}
	if first < 0 || last < first || last >= nValid {
		return fmt.Errorf("intmat: gram row range [%d,%d] outside [0,%d): %w", first, last, nValid, ErrIndex)
	}
	sigma := gramSigma(first, last, left)
	snap := m.st.clone()
	// Only the lower triangle of the first nValid rows is meaningful; the
	// symmetric entry G[a][b] lives at (max,min).
	for i := 0; i < nValid; i++ {
		si := sigma(i)
		for j := 0; j <= i; j++ {
			sj := sigma(j)
			if si == i && sj == j {
				continue
			}
			a, b := si, sj
			if a < b {
				a, b = b, a
			}
			m.st.copyCell(i*m.cols+j, snap, a*m.cols+b)
		}
	}
	return nil
}

// RotateGramLeft applies to a lower-triangular Gram matrix, truncated to
// nValid valid rows and columns, the permutation equivalent to RotateLeft on
// the basis rows [first,last]. Entries at or beyond nValid are untouched.
func (m *Matrix) RotateGramLeft(first, last, nValid int) error {
	return m.rotateGram(first, last, nValid, true)
}

// RotateGramRight is the inverse permutation of RotateGramLeft.
func (m *Matrix) RotateGramRight(first, last, nValid int) error {
	return m.rotateGram(first, last, nValid, false)
}

// Submatrix copies the half-open block [r0,r1) x [c0,c1) into a new,
// independently owned matrix. Negative r1 or c1 are interpreted modulo the
// respective dimension.
func (m *Matrix) Submatrix(r0, r1, c0, c1 int) (*Matrix, error) {
	if r1 < 0 {
		r1 += m.rows
	}
	if c1 < 0 {
		c1 += m.cols
	}
	if r1 < r0 || c1 < c0 {
		return nil, fmt.Errorf("intmat: inverted block [%d,%d)x[%d,%d): %w", r0, r1, c0, c1, ErrShape)
	}
	if r0 < 0 || r1 > m.rows || c0 < 0 || c1 > m.cols {
		return nil, fmt.Errorf("intmat: block [%d,%d)x[%d,%d) outside %dx%d: %w", r0, r1, c0, c1, m.rows, m.cols, ErrIndex)
	}
	out := &Matrix{rows: r1 - r0, cols: c1 - c0, st: m.st.newSame((r1 - r0) * (c1 - c0))}
	for i := r0; i < r1; i++ {
		for j := c0; j < c1; j++ {
			out.st.copyCell((i-r0)*out.cols+(j-c0), m.st, i*m.cols+j)
		}
	}
	return out, nil
}

// SubmatrixIndices gathers the given rows and columns, in the order listed,
// into a new len(rows) x len(cols) matrix. Indices need not be contiguous,
// sorted or distinct.
func (m *Matrix) SubmatrixIndices(rows, cols []int) (*Matrix, error) {
	for _, i := range rows {
		if i < 0 || i >= m.rows {
			return nil, fmt.Errorf("intmat: gathered row %d outside [0,%d): %w", i, m.rows, ErrIndex)
		}
	}
	for _, j := range cols {
		if j < 0 || j >= m.cols {
			return nil, fmt.Errorf("intmat: gathered column %d outside [0,%d): %w", j, m.cols, ErrIndex)
		}
	}
	out := &Matrix{rows: len(rows), cols: len(cols), st: m.st.newSame(len(rows) * len(cols))}
	for a, i := range rows {
		for b, j := range cols {
			out.st.copyCell(a*out.cols+b, m.st, i*m.cols+j)
		}
	}
	return out, nil
}

// MulRowVector returns v . B where B is the sub-block of len(v) rows starting
// at startRow. The result is a plain length-cols sequence of exact integers,
// independent of the backend.
func (m *Matrix) MulRowVector(v []*big.Int, startRow int) ([]*big.Int, error) {
	if startRow < 0 || startRow+len(v) > m.rows {
		return nil, fmt.Errorf("intmat: row block [%d,%d) outside [0,%d): %w", startRow, startRow+len(v), m.rows, ErrIndex)
	}
	out := make([]*big.Int, m.cols)
	for j := range out {
		out[j] = new(big.Int)
	}
	tmp := new(big.Int)
	for i, x := range v {
		if x.Sign() == 0 {
			continue
		}
		off := (startRow + i) * m.cols
		for j := 0; j < m.cols; j++ {
			tmp.Mul(x, m.st.big(off+j))
			out[j].Add(out[j], tmp)
		}
	}
	return out, nil
}

// ApplyTransform replaces the rows [startRow, startRow+U.Rows()) with U times
// that block, applying a unimodular-style row transformation in place. U must
// be square and share the receiver's backend.
func (m *Matrix) ApplyTransform(ctx context.Context, u *Matrix, startRow int) error {
	if u.rows != u.cols {
		return fmt.Errorf("intmat: transform is %dx%d, want square: %w", u.rows, u.cols, ErrShape)
	}
	if startRow < 0 || startRow+u.rows > m.rows {
		return fmt.Errorf("intmat: transformed rows [%d,%d) outside [0,%d): %w", startRow, startRow+u.rows, m.rows, ErrIndex)
	}
	if u.Backend() != m.Backend() {
		return fmt.Errorf("intmat: transform backend %s, matrix backend %s: %w", u.Backend(), m.Backend(), ErrMixedBackend)
	}
	block, err := m.Submatrix(startRow, startRow+u.rows, 0, m.cols)
	if err != nil {
		return err
	}
	prod, err := Mul(ctx, u, block)
	if err != nil {
		return err
	}
	for i := 0; i < prod.rows; i++ {
		for j := 0; j < prod.cols; j++ {
			m.st.copyCell((startRow+i)*m.cols+j, prod.st, i*prod.cols+j)
		}
	}
	return nil
}
