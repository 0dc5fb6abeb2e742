package intmat

import (
	"errors"
	"math"
	"math/big"
	"testing"
)

func TestRowViewGet(t *testing.T) {
	m := mustFromInt64(t, [][]int64{{1, 2, 3}, {4, 5, 6}}, ArbitraryPrecision)
	r, err := m.Row(1)
	if err != nil {
		t.Fatalf("Row(1): %v", err)
	}
	if r.Len() != 3 {
		t.Fatalf("Len = %d, want 3", r.Len())
	}
	v, err := r.Get(2)
	if err != nil {
		t.Fatalf("Get(2): %v", err)
	}
	if v.Int64() != 6 {
		t.Fatalf("Get(2) = %s, want 6", v)
	}
	if _, err := r.Get(3); !errors.Is(err, ErrIndex) {
		t.Fatalf("Get(3): got %v, want ErrIndex", err)
	}
	if _, err := m.Row(2); !errors.Is(err, ErrIndex) {
		t.Fatalf("Row(2): got %v, want ErrIndex", err)
	}
}

func TestRowViewStaleAfterShrink(t *testing.T) {
	m := mustFromInt64(t, [][]int64{{1}, {2}, {3}}, ArbitraryPrecision)
	r, _ := m.Row(2)
	if err := m.SetRowCount(2); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Get(0); !errors.Is(err, ErrIndex) {
		t.Fatalf("stale view access: got %v, want ErrIndex", err)
	}
}

func TestRowAddSub(t *testing.T) {
	for _, b := range []Backend{ArbitraryPrecision, FixedWidth} {
		m := mustFromInt64(t, [][]int64{{1, 2}, {10, 20}}, b)
		r0, _ := m.Row(0)
		r1, _ := m.Row(1)
		if err := r0.AddRow(r1); err != nil {
			t.Fatalf("AddRow(%s): %v", b, err)
		}
		want := mustFromInt64(t, [][]int64{{11, 22}, {10, 20}}, b)
		if !m.Equal(want) {
			t.Fatalf("backend %s after add:\n%s\nwant:\n%s", b, m, want)
		}
		if err := r0.SubRow(r1); err != nil {
			t.Fatalf("SubRow(%s): %v", b, err)
		}
		want = mustFromInt64(t, [][]int64{{1, 2}, {10, 20}}, b)
		if !m.Equal(want) {
			t.Fatalf("backend %s after sub:\n%s\nwant:\n%s", b, m, want)
		}
	}
}

func TestRowAddAcrossMatrices(t *testing.T) {
	a := mustFromInt64(t, [][]int64{{1, 1}}, ArbitraryPrecision)
	b := mustFromInt64(t, [][]int64{{-3, 4}}, ArbitraryPrecision)
	ra, _ := a.Row(0)
	rb, _ := b.Row(0)
	if err := ra.AddRow(rb); err != nil {
		t.Fatalf("AddRow: %v", err)
	}
	want := mustFromInt64(t, [][]int64{{-2, 5}}, ArbitraryPrecision)
	if !a.Equal(want) {
		t.Fatalf("got %s, want %s", a, want)
	}
}

func TestRowArithmeticRejectsMismatch(t *testing.T) {
	a := mustFromInt64(t, [][]int64{{1, 2}}, ArbitraryPrecision)
	b := mustFromInt64(t, [][]int64{{1, 2, 3}}, ArbitraryPrecision)
	c := mustFromInt64(t, [][]int64{{1, 2}}, FixedWidth)
	ra, _ := a.Row(0)
	rb, _ := b.Row(0)
	rc, _ := c.Row(0)
	if err := ra.AddRow(rb); !errors.Is(err, ErrShape) {
		t.Fatalf("length mismatch: got %v, want ErrShape", err)
	}
	if err := ra.AddRow(rc); !errors.Is(err, ErrMixedBackend) {
		t.Fatalf("backend mismatch: got %v, want ErrMixedBackend", err)
	}
	if err := ra.AddMulRow(rc, big.NewInt(2), 0); !errors.Is(err, ErrMixedBackend) {
		t.Fatalf("AddMulRow backend mismatch: got %v, want ErrMixedBackend", err)
	}
}

func TestAddMulRow(t *testing.T) {
	// row0 += row1 * (-3) * 2^2
	m := mustFromInt64(t, [][]int64{{100, 200}, {1, 2}}, ArbitraryPrecision)
	r0, _ := m.Row(0)
	r1, _ := m.Row(1)
	if err := r0.AddMulRow(r1, big.NewInt(-3), 2); err != nil {
		t.Fatalf("AddMulRow: %v", err)
	}
	want := mustFromInt64(t, [][]int64{{88, 176}, {1, 2}}, ArbitraryPrecision)
	if !m.Equal(want) {
		t.Fatalf("got %s, want %s", m, want)
	}
}

func TestAddMulRowSelf(t *testing.T) {
	m := mustFromInt64(t, [][]int64{{3, -4}}, FixedWidth)
	r, _ := m.Row(0)
	if err := r.AddMulRow(r, big.NewInt(1), 0); err != nil {
		t.Fatalf("AddMulRow self: %v", err)
	}
	want := mustFromInt64(t, [][]int64{{6, -8}}, FixedWidth)
	if !m.Equal(want) {
		t.Fatalf("got %s, want %s", m, want)
	}
}

func TestRowNorm(t *testing.T) {
	m := mustFromInt64(t, [][]int64{{3, 4}}, ArbitraryPrecision)
	r, _ := m.Row(0)
	n, err := r.Norm()
	if err != nil {
		t.Fatalf("Norm: %v", err)
	}
	if math.Abs(n-5) > 1e-12 {
		t.Fatalf("Norm = %v, want 5", n)
	}

	// Large entries must stay exact until the final square root.
	big1 := new(big.Int).Lsh(big.NewInt(1), 200)
	h, _ := New(1, 1, ArbitraryPrecision)
	h.Set(0, 0, big1)
	hr, _ := h.Row(0)
	n, err = hr.Norm()
	if err != nil {
		t.Fatalf("Norm: %v", err)
	}
	if math.Abs(n/math.Ldexp(1, 200)-1) > 1e-12 {
		t.Fatalf("Norm of 2^200 = %v", n)
	}
}

func TestRowZeroQueries(t *testing.T) {
	m := mustFromInt64(t, [][]int64{{0, 7, 0, 0}, {0, 0, 0, 0}}, FixedWidth)
	r0, _ := m.Row(0)
	r1, _ := m.Row(1)

	if z, _ := r0.IsZero(0); z {
		t.Fatal("row0 is not zero")
	}
	if z, _ := r0.IsZero(2); !z {
		t.Fatal("row0 from column 2 is zero")
	}
	if z, _ := r1.IsZero(0); !z {
		t.Fatal("row1 is zero")
	}
	if _, err := r0.IsZero(-1); !errors.Is(err, ErrIndex) {
		t.Fatalf("IsZero(-1): got %v, want ErrIndex", err)
	}

	if n, _ := r0.NonZeroLen(); n != 2 {
		t.Fatalf("row0 NonZeroLen = %d, want 2", n)
	}
	if n, _ := r1.NonZeroLen(); n != 0 {
		t.Fatalf("row1 NonZeroLen = %d, want 0", n)
	}
}
