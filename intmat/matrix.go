// Package intmat implements the dense integer matrix used as a lattice-basis
// representation. A matrix owns a rows x cols grid of exact integer cells in
// one of two backends chosen at construction: arbitrary precision (big.Int)
// or fixed width (int64, wrapping on overflow). All operations behave
// identically across backends up to fixed-width overflow.
//
// Matrices are not safe for concurrent mutation; the caller serializes access.
package intmat

import (
	"fmt"
	"math/big"
)

// Matrix is a dense rows x cols grid of integer cells. The zero value is not
// usable; construct with New or one of the From helpers.
type Matrix struct {
	rows int
	cols int
	st   store
}

// New returns a zero-filled rows x cols matrix in the given backend.
func New(rows, cols int, b Backend) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("intmat: negative dimensions %dx%d: %w", rows, cols, ErrShape)
	}
	return &Matrix{rows: rows, cols: cols, st: newStore(b, rows*cols)}, nil
}

// NewCopy returns an independent deep copy of src, same shape and backend.
func NewCopy(src *Matrix) *Matrix {
	return &Matrix{rows: src.rows, cols: src.cols, st: src.st.clone()}
}

// Identity returns the n x n identity matrix.
func Identity(n int, b Backend) (*Matrix, error) {
	m, err := New(n, n, b)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.st.setInt64(i*n+i, 1)
	}
	return m, nil
}

// FromInt64 builds a matrix from dense rows. All rows must share one length.
func FromInt64(values [][]int64, b Backend) (*Matrix, error) {
	rows := len(values)
	cols := 0
	if rows > 0 {
		cols = len(values[0])
	}
	m, err := New(rows, cols, b)
	if err != nil {
		return nil, err
	}
	for i, row := range values {
		if len(row) != cols {
			return nil, fmt.Errorf("intmat: row %d has %d entries, want %d: %w", i, len(row), cols, ErrShape)
		}
		for j, v := range row {
			m.st.setInt64(i*cols+j, v)
		}
	}
	return m, nil
}

// FromBig builds a matrix from dense rows of big integers.
func FromBig(values [][]*big.Int, b Backend) (*Matrix, error) {
	rows := len(values)
	cols := 0
	if rows > 0 {
		cols = len(values[0])
	}
	m, err := New(rows, cols, b)
	if err != nil {
		return nil, err
	}
	for i, row := range values {
		if len(row) != cols {
			return nil, fmt.Errorf("intmat: row %d has %d entries, want %d: %w", i, len(row), cols, ErrShape)
		}
		for j, v := range row {
			if err := m.st.setBig(i*cols+j, v); err != nil {
				return nil, err
			}
		}
	}
	return m, nil
}

// Rows returns the current row count.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the current column count.
func (m *Matrix) Cols() int { return m.cols }

// Backend reports which integer representation the matrix uses.
func (m *Matrix) Backend() Backend { return m.st.backend() }

// IsEmpty reports whether the matrix has no cells.
func (m *Matrix) IsEmpty() bool { return m.rows == 0 || m.cols == 0 }

func (m *Matrix) index(i, j int) (int, error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return 0, fmt.Errorf("intmat: entry (%d,%d) outside %dx%d: %w", i, j, m.rows, m.cols, ErrIndex)
	}
	return i*m.cols + j, nil
}

// At returns a fresh copy of entry (i,j).
func (m *Matrix) At(i, j int) (*big.Int, error) {
	idx, err := m.index(i, j)
	if err != nil {
		return nil, err
	}
	return m.st.big(idx), nil
}

// Set stores v at (i,j). For the fixed-width backend a value outside the
// int64 range is rejected with ErrDomain and the matrix is unchanged.
func (m *Matrix) Set(i, j int, v *big.Int) error {
	idx, err := m.index(i, j)
	if err != nil {
		return err
	}
	return m.st.setBig(idx, v)
}

// SetInt64 stores v at (i,j).
func (m *Matrix) SetInt64(i, j int, v int64) error {
	idx, err := m.index(i, j)
	if err != nil {
		return err
	}
	return m.st.setInt64(idx, v)
}

// ImportFlat fills the grid row-major from values. A source shorter than
// rows*cols is rejected with ErrShortSource before any cell is written;
// trailing excess values are ignored.
func (m *Matrix) ImportFlat(values []*big.Int) error {
	n := m.rows * m.cols
	if len(values) < n {
		return fmt.Errorf("intmat: flat source has %d values, need %d: %w", len(values), n, ErrShortSource)
	}
	if fixed := m.Backend() == FixedWidth; fixed {
		// Validate before the first write so a rejected import leaves the
		// matrix unchanged.
		for i := 0; i < n; i++ {
			if !values[i].IsInt64() {
				return fmt.Errorf("intmat: flat source value %d (%s) outside fixed-width range: %w", i, values[i], ErrDomain)
			}
		}
	}
	for i := 0; i < n; i++ {
		m.st.setBig(i, values[i])
	}
	return nil
}

// ImportFlatInt64 is ImportFlat for host int64 values.
func (m *Matrix) ImportFlatInt64(values []int64) error {
	n := m.rows * m.cols
	if len(values) < n {
		return fmt.Errorf("intmat: flat source has %d values, need %d: %w", len(values), n, ErrShortSource)
	}
	for i := 0; i < n; i++ {
		m.st.setInt64(i, values[i])
	}
	return nil
}

// ImportDense fills the grid from a row-indexed source, row-major. Rows
// shorter than cols, or fewer rows than the matrix has, are rejected with
// ErrShortSource; excess rows or entries are ignored.
func (m *Matrix) ImportDense(values [][]*big.Int) error {
	if len(values) < m.rows {
		return fmt.Errorf("intmat: dense source has %d rows, need %d: %w", len(values), m.rows, ErrShortSource)
	}
	fixed := m.Backend() == FixedWidth
	for i := 0; i < m.rows; i++ {
		if len(values[i]) < m.cols {
			return fmt.Errorf("intmat: dense source row %d has %d values, need %d: %w", i, len(values[i]), m.cols, ErrShortSource)
		}
		if fixed {
			for j := 0; j < m.cols; j++ {
				if !values[i][j].IsInt64() {
					return fmt.Errorf("intmat: dense source value (%d,%d) (%s) outside fixed-width range: %w", i, j, values[i][j], ErrDomain)
				}
			}
		}
	}
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			m.st.setBig(i*m.cols+j, values[i][j])
		}
	}
	return nil
}

// ExportDense writes every cell into the caller-supplied sink, which must
// have at least rows slices of at least cols entries each. Nil sink entries
// are allocated.
func (m *Matrix) ExportDense(dst [][]*big.Int) error {
	if len(dst) < m.rows {
		return fmt.Errorf("intmat: export sink has %d rows, need %d: %w", len(dst), m.rows, ErrShape)
	}
	for i := 0; i < m.rows; i++ {
		if len(dst[i]) < m.cols {
			return fmt.Errorf("intmat: export sink row %d has %d slots, need %d: %w", i, len(dst[i]), m.cols, ErrShape)
		}
	}
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			v := m.st.big(i*m.cols + j)
			if dst[i][j] == nil {
				dst[i][j] = v
			} else {
				dst[i][j].Set(v)
			}
		}
	}
	return nil
}

// ExportFlat returns all cells row-major as fresh big integers.
func (m *Matrix) ExportFlat() []*big.Int {
	n := m.rows * m.cols
	out := make([]*big.Int, n)
	for i := 0; i < n; i++ {
		out[i] = m.st.big(i)
	}
	return out
}

// Equal reports whether the matrices have the same shape and every pair of
// cells compares equal. The backends need not match.
func (m *Matrix) Equal(o *Matrix) bool {
	if o == nil || m.rows != o.rows || m.cols != o.cols {
		return false
	}
	n := m.rows * m.cols
	for i := 0; i < n; i++ {
		if m.st.cmp(i, o.st, i) != 0 {
			return false
		}
	}
	return true
}

// MaxBitLen returns the bit length of the largest-magnitude entry, 0 for an
// all-zero or empty matrix. Reduction algorithms use it to bound working
// precision.
func (m *Matrix) MaxBitLen() int {
	max := 0
	n := m.rows * m.cols
	for i := 0; i < n; i++ {
		if b := m.st.bitLen(i); b > max {
			max = b
		}
	}
	return max
}

// Resize grows or shrinks the grid to rows x cols. New cells are zero;
// truncated cells are discarded. The backend never changes.
func (m *Matrix) Resize(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return fmt.Errorf("intmat: negative dimensions %dx%d: %w", rows, cols, ErrShape)
	}
	if rows == m.rows && cols == m.cols {
		return nil
	}
	if cols == m.cols {
		// Row count changes keep the row-major layout intact.
		ns := m.st.newSame(rows * cols)
		keep := rows
		if m.rows < keep {
			keep = m.rows
		}
		for i := 0; i < keep*cols; i++ {
			ns.copyCell(i, m.st, i)
		}
		m.st, m.rows = ns, rows
		return nil
	}
	ns := m.st.newSame(rows * cols)
	keepR, keepC := m.rows, m.cols
	if rows < keepR {
		keepR = rows
	}
	if cols < keepC {
		keepC = cols
	}
	for i := 0; i < keepR; i++ {
		for j := 0; j < keepC; j++ {
			ns.copyCell(i*cols+j, m.st, i*m.cols+j)
		}
	}
	m.st, m.rows, m.cols = ns, rows, cols
	return nil
}

// SetRowCount resizes the row dimension only.
func (m *Matrix) SetRowCount(rows int) error { return m.Resize(rows, m.cols) }

// SetColCount resizes the column dimension only.
func (m *Matrix) SetColCount(cols int) error { return m.Resize(m.rows, cols) }

// Clear releases all cells and sets the shape to 0x0.
func (m *Matrix) Clear() {
	m.st = m.st.newSame(0)
	m.rows, m.cols = 0, 0
}
