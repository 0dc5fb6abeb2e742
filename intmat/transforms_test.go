package intmat

import (
	"context"
	"errors"
	"testing"
)

func TestTransposeInvolution(t *testing.T) {
	m := mustFromInt64(t, [][]int64{{1, 2, 3}, {4, 5, 6}}, ArbitraryPrecision)
	orig := NewCopy(m)
	ret := m.Transpose()
	if ret != m {
		t.Fatal("Transpose must return its receiver")
	}
	if m.Rows() != 3 || m.Cols() != 2 {
		t.Fatalf("transposed shape %dx%d, want 3x2", m.Rows(), m.Cols())
	}
	v, _ := m.At(2, 1)
	if v.Int64() != 6 {
		t.Fatalf("transposed (2,1) = %s, want 6", v)
	}
	if !m.Transpose().Equal(orig) {
		t.Fatal("double transpose must restore the matrix")
	}
}

func TestSwapRows(t *testing.T) {
	m := mustFromInt64(t, [][]int64{{0, 2}, {3, 4}}, ArbitraryPrecision)
	if err := m.SwapRows(0, 1); err != nil {
		t.Fatalf("SwapRows: %v", err)
	}
	want := mustFromInt64(t, [][]int64{{3, 4}, {0, 2}}, ArbitraryPrecision)
	if !m.Equal(want) {
		t.Fatalf("got %s, want %s", m, want)
	}
	if err := m.SwapRows(0, 2); !errors.Is(err, ErrIndex) {
		t.Fatalf("SwapRows(0,2): got %v, want ErrIndex", err)
	}
}

func TestRotateSemantics(t *testing.T) {
	rows := [][]int64{{0}, {1}, {2}, {3}, {4}}
	m := mustFromInt64(t, rows, FixedWidth)
	// Bring row 3 to the front of [1,4], preserving relative order.
	if err := m.Rotate(1, 3, 4); err != nil {
		t.Fatalf("Rotate: %v", err)
	}
	want := mustFromInt64(t, [][]int64{{0}, {3}, {4}, {1}, {2}}, FixedWidth)
	if !m.Equal(want) {
		t.Fatalf("after rotate:\n%s\nwant:\n%s", m, want)
	}
	// The inverse rotation restores the original order.
	if err := m.Rotate(1, 1+(4-3+1), 4); err != nil {
		t.Fatalf("inverse Rotate: %v", err)
	}
	if !m.Equal(mustFromInt64(t, rows, FixedWidth)) {
		t.Fatal("inverse rotation did not restore row order")
	}
}

func TestRotateLeftRight(t *testing.T) {
	rows := [][]int64{{0}, {1}, {2}, {3}}
	m := mustFromInt64(t, rows, ArbitraryPrecision)
	if err := m.RotateLeft(0, 3); err != nil {
		t.Fatalf("RotateLeft: %v", err)
	}
	if !m.Equal(mustFromInt64(t, [][]int64{{1}, {2}, {3}, {0}}, ArbitraryPrecision)) {
		t.Fatalf("after RotateLeft:\n%s", m)
	}
	if err := m.RotateRight(0, 3); err != nil {
		t.Fatalf("RotateRight: %v", err)
	}
	if !m.Equal(mustFromInt64(t, rows, ArbitraryPrecision)) {
		t.Fatal("RotateRight did not undo RotateLeft")
	}
}

func TestRotateSingleRowRange(t *testing.T) {
	rows := [][]int64{{0}, {1}, {2}}
	m := mustFromInt64(t, rows, ArbitraryPrecision)
	// A range of one row is valid and leaves the matrix unchanged.
	if err := m.RotateLeft(1, 1); err != nil {
		t.Fatalf("RotateLeft(1,1): %v", err)
	}
	if err := m.RotateRight(1, 1); err != nil {
		t.Fatalf("RotateRight(1,1): %v", err)
	}
	if err := m.Rotate(1, 1, 1); err != nil {
		t.Fatalf("Rotate(1,1,1): %v", err)
	}
	if !m.Equal(mustFromInt64(t, rows, ArbitraryPrecision)) {
		t.Fatalf("degenerate rotations changed the matrix:\n%s", m)
	}
}

func TestRotateBadRanges(t *testing.T) {
	m := mustFromInt64(t, [][]int64{{0}, {1}, {2}}, ArbitraryPrecision)
	if err := m.Rotate(2, 2, 1); !errors.Is(err, ErrIndex) {
		t.Fatalf("last<first: got %v, want ErrIndex", err)
	}
	if err := m.Rotate(0, 3, 2); !errors.Is(err, ErrIndex) {
		t.Fatalf("middle outside: got %v, want ErrIndex", err)
	}
	if err := m.RotateLeft(0, 3); !errors.Is(err, ErrIndex) {
		t.Fatalf("last out of rows: got %v, want ErrIndex", err)
	}
}

// gramOf returns the lower-triangular Gram matrix of basis b.
func gramOf(t *testing.T, b *Matrix) *Matrix {
	t.Helper()
	bt := NewCopy(b).Transpose()
	g, err := Mul(context.Background(), b, bt)
	if err != nil {
		t.Fatalf("gram: %v", err)
	}
	// Drop the upper triangle; only the lower half is meaningful.
	for i := 0; i < g.Rows(); i++ {
		for j := i + 1; j < g.Cols(); j++ {
			g.SetInt64(i, j, 0)
		}
	}
	return g
}

func TestRotateGramMatchesBasisRotation(t *testing.T) {
	basis := mustFromInt64(t, [][]int64{
		{2, 0, 1},
		{1, 3, 0},
		{0, 1, 4},
	}, ArbitraryPrecision)

	g := gramOf(t, basis)
	if err := g.RotateGramLeft(0, 2, 3); err != nil {
		t.Fatalf("RotateGramLeft: %v", err)
	}
	rotated := NewCopy(basis)
	if err := rotated.RotateLeft(0, 2); err != nil {
		t.Fatal(err)
	}
	if !g.Equal(gramOf(t, rotated)) {
		t.Fatalf("gram rotation disagrees with basis rotation:\n%s\nwant:\n%s", g, gramOf(t, rotated))
	}

	if err := g.RotateGramRight(0, 2, 3); err != nil {
		t.Fatalf("RotateGramRight: %v", err)
	}
	if !g.Equal(gramOf(t, basis)) {
		t.Fatal("RotateGramRight did not undo RotateGramLeft")
	}
}

func TestRotateGramTruncated(t *testing.T) {
	g := mustFromInt64(t, [][]int64{
		{1, 0, 0},
		{2, 3, 0},
		{7, 8, 9},
	}, ArbitraryPrecision)
	// Row 2 is beyond the valid prefix and must stay untouched.
	if err := g.RotateGramLeft(0, 1, 2); err != nil {
		t.Fatalf("RotateGramLeft: %v", err)
	}
	want := mustFromInt64(t, [][]int64{
		{3, 0, 0},
		{2, 1, 0},
		{7, 8, 9},
	}, ArbitraryPrecision)
	if !g.Equal(want) {
		t.Fatalf("got:\n%s\nwant:\n%s", g, want)
	}
}

func TestRotateGramChecks(t *testing.T) {
	g := mustFromInt64(t, [][]int64{{1, 0}, {2, 3}}, ArbitraryPrecision)
	if err := g.RotateGramLeft(0, 2, 2); !errors.Is(err, ErrIndex) {
		t.Fatalf("last >= nValid: got %v, want ErrIndex", err)
	}
	rect := mustFromInt64(t, [][]int64{{1, 0, 0}}, ArbitraryPrecision)
	if err := rect.RotateGramLeft(0, 0, 1); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("non-square gram: got %v, want ErrUnsupported", err)
	}
}

func TestSubmatrixRanges(t *testing.T) {
	m := mustFromInt64(t, [][]int64{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	}, ArbitraryPrecision)
	s, err := m.Submatrix(0, 2, 1, 3)
	if err != nil {
		t.Fatalf("Submatrix: %v", err)
	}
	want := mustFromInt64(t, [][]int64{{2, 3}, {5, 6}}, ArbitraryPrecision)
	if !s.Equal(want) {
		t.Fatalf("got %s, want %s", s, want)
	}
	// Extraction copies: mutating the block never aliases the source.
	s.SetInt64(0, 0, 99)
	v, _ := m.At(0, 1)
	if v.Int64() != 2 {
		t.Fatal("submatrix aliases its source")
	}

	neg, err := m.Submatrix(1, -1, 0, -1)
	if err != nil {
		t.Fatalf("negative ends: %v", err)
	}
	want = mustFromInt64(t, [][]int64{{4, 5}}, ArbitraryPrecision)
	if !neg.Equal(want) {
		t.Fatalf("negative ends: got %s, want %s", neg, want)
	}

	if _, err := m.Submatrix(2, 1, 0, 3); !errors.Is(err, ErrShape) {
		t.Fatalf("inverted range: got %v, want ErrShape", err)
	}
	if _, err := m.Submatrix(0, 4, 0, 3); !errors.Is(err, ErrIndex) {
		t.Fatalf("out of bounds: got %v, want ErrIndex", err)
	}
}

func TestSubmatrixIndices(t *testing.T) {
	m := mustFromInt64(t, [][]int64{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	}, FixedWidth)
	s, err := m.SubmatrixIndices([]int{2, 0}, []int{1, 1, 0})
	if err != nil {
		t.Fatalf("SubmatrixIndices: %v", err)
	}
	want := mustFromInt64(t, [][]int64{{8, 8, 7}, {2, 2, 1}}, FixedWidth)
	if !s.Equal(want) {
		t.Fatalf("got %s, want %s", s, want)
	}
	if _, err := m.SubmatrixIndices([]int{3}, []int{0}); !errors.Is(err, ErrIndex) {
		t.Fatalf("bad row index: got %v, want ErrIndex", err)
	}
}
