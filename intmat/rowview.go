package intmat

import (
	"fmt"
	"math/big"
)

// RowView is a non-owning handle onto one row of a matrix. It stores only the
// owner and the row index and revalidates the index against the owner's
// current shape on every access, so a view left dangling by a resize fails
// with ErrIndex instead of touching relocated storage.
//
// A view cannot replace its row wholesale; mutation happens only through the
// element and vector operations below, all of which route through the owner.
type RowView struct {
	m   *Matrix
	idx int
}

// Row returns a view onto row i.
func (m *Matrix) Row(i int) (RowView, error) {
	if i < 0 || i >= m.rows {
		return RowView{}, fmt.Errorf("intmat: row %d outside %dx%d: %w", i, m.rows, m.cols, ErrIndex)
	}
	return RowView{m: m, idx: i}, nil
}

func (v RowView) check() error {
	if v.m == nil || v.idx < 0 || v.idx >= v.m.rows {
		return fmt.Errorf("intmat: stale row view (row %d): %w", v.idx, ErrIndex)
	}
	return nil
}

// Index returns the row index the view was created with.
func (v RowView) Index() int { return v.idx }

// Len returns the number of columns of the owning matrix.
func (v RowView) Len() int {
	if v.m == nil {
		return 0
	}
	return v.m.cols
}

// Get returns a fresh copy of entry j.
func (v RowView) Get(j int) (*big.Int, error) {
	if err := v.check(); err != nil {
		return nil, err
	}
	return v.m.At(v.idx, j)
}

// checkPair validates both views and their compatibility for element-wise
// arithmetic: equal lengths and one shared backend.
func (v RowView) checkPair(o RowView) error {
	if err := v.check(); err != nil {
		return err
	}
	if err := o.check(); err != nil {
		return err
	}
	if v.m.cols != o.m.cols {
		return fmt.Errorf("intmat: row lengths %d and %d differ: %w", v.m.cols, o.m.cols, ErrShape)
	}
	if v.m.Backend() != o.m.Backend() {
		return fmt.Errorf("intmat: row backends %s and %s differ: %w", v.m.Backend(), o.m.Backend(), ErrMixedBackend)
	}
	return nil
}

// AddRow adds o element-wise into the view's row. The rows may belong to
// different matrices but must share length and backend.
func (v RowView) AddRow(o RowView) error {
	if err := v.checkPair(o); err != nil {
		return err
	}
	v.m.st.addRange(v.idx*v.m.cols, o.m.st, o.idx*o.m.cols, v.m.cols)
	return nil
}

// SubRow subtracts o element-wise from the view's row.
func (v RowView) SubRow(o RowView) error {
	if err := v.checkPair(o); err != nil {
		return err
	}
	v.m.st.subRange(v.idx*v.m.cols, o.m.st, o.idx*o.m.cols, v.m.cols)
	return nil
}

// AddMulRow accumulates o * mul * 2^exp into the view's row, exactly, using a
// single scratch cell.
func (v RowView) AddMulRow(o RowView, mul *big.Int, exp uint) error {
	if err := v.checkPair(o); err != nil {
		return err
	}
	return v.m.st.addMulRange(v.idx*v.m.cols, o.m.st, o.idx*o.m.cols, v.m.cols, mul, exp)
}

// Norm returns the Euclidean norm of the row. The sum of squares is exact;
// only the final square root is floating.
func (v RowView) Norm() (float64, error) {
	if err := v.check(); err != nil {
		return 0, err
	}
	sq := v.m.st.normSq(v.idx*v.m.cols, v.m.cols)
	f := new(big.Float).SetInt(sq)
	f.Sqrt(f)
	out, _ := f.Float64()
	return out, nil
}

// IsZero reports whether every entry from column from onward is zero.
func (v RowView) IsZero(from int) (bool, error) {
	if err := v.check(); err != nil {
		return false, err
	}
	if from < 0 {
		return false, fmt.Errorf("intmat: column %d outside [0,%d): %w", from, v.m.cols, ErrIndex)
	}
	off := v.idx * v.m.cols
	for j := from; j < v.m.cols; j++ {
		if !v.m.st.isZero(off + j) {
			return false, nil
		}
	}
	return true, nil
}

// NonZeroLen returns one past the index of the last non-zero entry, scanning
// from the end, or 0 for an all-zero row.
func (v RowView) NonZeroLen() (int, error) {
	if err := v.check(); err != nil {
		return 0, err
	}
	off := v.idx * v.m.cols
	for j := v.m.cols - 1; j >= 0; j-- {
		if !v.m.st.isZero(off + j) {
			return j + 1, nil
		}
	}
	return 0, nil
}
