package intmat

import (
	"strings"
	"testing"
)

func TestStringScenario(t *testing.T) {
	m := mustFromInt64(t, [][]int64{{1, 2, 3}, {4, 5, 6}}, ArbitraryPrecision)
	want := "[ 1 2 3 ]\n[ 4 5 6 ]"
	if got := m.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestStringAlignsColumns(t *testing.T) {
	m := mustFromInt64(t, [][]int64{{-12, 3}, {4, -567}}, FixedWidth)
	want := "[ -12    3 ]\n[   4 -567 ]"
	if got := m.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestStringPowerOfTenSlot(t *testing.T) {
	m := mustFromInt64(t, [][]int64{{100}, {99}}, ArbitraryPrecision)
	got := m.String()
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("String() = %q", got)
	}
	// The power-of-ten entry reserves one extra slot in its column.
	if lines[0] != "[  100 ]" || lines[1] != "[   99 ]" {
		t.Fatalf("String() = %q", got)
	}
}

func TestStringEmpty(t *testing.T) {
	m, _ := New(0, 3, ArbitraryPrecision)
	if got := m.String(); got != "" {
		t.Fatalf("empty String() = %q", got)
	}
}
