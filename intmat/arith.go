package intmat

import (
	"context"
	"fmt"
	"math/big"
)

// Mul returns the exact product A x B in a new matrix of A's backend. The
// context is polled at every output row; on cancellation the partial result
// is discarded and the operands are untouched.
func Mul(ctx context.Context, a, b *Matrix) (*Matrix, error) {
	if a.cols != b.rows {
		return nil, fmt.Errorf("intmat: product dimensions %dx%d times %dx%d: %w", a.rows, a.cols, b.rows, b.cols, ErrShape)
	}
	if a.Backend() != b.Backend() {
		return nil, fmt.Errorf("intmat: product backends %s and %s: %w", a.Backend(), b.Backend(), ErrMixedBackend)
	}
	c := &Matrix{rows: a.rows, cols: b.cols, st: a.st.newSame(a.rows * b.cols)}
	for i := 0; i < a.rows; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		c.st.mulRowInto(i*c.cols, a.st, i*a.cols, a.cols, b.st, b.cols)
	}
	return c, nil
}

// ReduceModSym replaces every entry with its symmetric residue modulo q: the
// representative in (-q/2, q/2], with the boundary q/2 taken by floor
// division. q must be positive and, for the fixed-width backend,
// representable as an int64.
func (m *Matrix) ReduceModSym(ctx context.Context, q *big.Int) error {
	return m.ReduceModSymBlock(ctx, q, 0, m.rows, 0, m.cols)
}

// ReduceModSymBlock is ReduceModSym restricted to the half-open block
// [r0,r1) x [c0,c1); cells outside it are untouched. The context is polled at
// every row boundary; an interrupted reduction leaves a structurally valid,
// partially reduced matrix.
func (m *Matrix) ReduceModSymBlock(ctx context.Context, q *big.Int, r0, r1, c0, c1 int) error {
	if q == nil || q.Sign() <= 0 {
		return fmt.Errorf("intmat: modulus must be positive: %w", ErrShape)
	}
	if r1 < r0 || c1 < c0 {
		return fmt.Errorf("intmat: inverted block [%d,%d)x[%d,%d): %w", r0, r1, c0, c1, ErrShape)
	}
	if r0 < 0 || r1 > m.rows || c0 < 0 || c1 > m.cols {
		return fmt.Errorf("intmat: block [%d,%d)x[%d,%d) outside %dx%d: %w", r0, r1, c0, c1, m.rows, m.cols, ErrIndex)
	}
	if m.Backend() == FixedWidth && !q.IsInt64() {
		return fmt.Errorf("intmat: modulus %s outside fixed-width range: %w", q, ErrDomain)
	}
	for i := r0; i < r1; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := m.st.reduceSymRange(i*m.cols+c0, c1-c0, q); err != nil {
			return err
		}
	}
	return nil
}
