package intmat

import (
	"fmt"
	"math/big"
	"math/bits"
	"strconv"
)

// Backend selects the integer representation of every cell in a matrix. It is
// fixed at construction and never changes, even across resizes.
type Backend int

const (
	// ArbitraryPrecision stores each cell as a big.Int. Arithmetic never
	// overflows; this is the backend for cryptographic-size entries.
	ArbitraryPrecision Backend = iota

	// FixedWidth stores each cell as an int64. Arithmetic wraps silently on
	// overflow; the caller chooses this backend accepting that trade.
	FixedWidth
)

func (b Backend) String() string {
	switch b {
	case ArbitraryPrecision:
		return "arbitrary-precision"
	case FixedWidth:
		return "fixed-width"
	}
	return fmt.Sprintf("backend(%d)", int(b))
}

// ParseBackend maps a serialized tag back to a Backend.
func ParseBackend(tag string) (Backend, error) {
	switch tag {
	case ArbitraryPrecision.String():
		return ArbitraryPrecision, nil
	case FixedWidth.String():
		return FixedWidth, nil
	}
	return 0, fmt.Errorf("intmat: unknown backend tag %q: %w", tag, ErrUnsupported)
}

// store is the flat row-major cell grid of one matrix. There is one
// implementation per backend; every matrix algorithm is written once against
// this interface, so a cell type the engine does not understand cannot reach
// an operation at runtime.
//
// Range methods and copyCell require both operands to share a concrete type;
// public entry points enforce that before dispatching, so a violation here is
// a programmer error and panics.
type store interface {
	backend() Backend
	size() int
	newSame(n int) store
	clone() store

	// big returns a fresh copy of cell i; setBig imports a host integer,
	// returning ErrDomain when the backend cannot represent it exactly.
	big(i int) *big.Int
	setBig(i int, v *big.Int) error
	setInt64(i int, v int64) error

	isZero(i int) bool
	bitLen(i int) int
	cmp(i int, o store, j int) int
	text(i int) string

	swap(i, j int)
	copyCell(dst int, src store, j int)

	addRange(dst int, o store, src, n int)
	subRange(dst int, o store, src, n int)
	addMulRange(dst int, o store, src, n int, mul *big.Int, exp uint) error
	normSq(off, n int) *big.Int
	reduceSymRange(off, n int, q *big.Int) error

	// mulRowInto accumulates one output row of a matrix product:
	// recv[cOff:cOff+n) += a[aOff:aOff+k) x b, where b is a k x n row-major
	// block starting at index 0 of o.
	mulRowInto(cOff int, a store, aOff, k int, b store, n int)
}

func newStore(b Backend, n int) store {
	if b == FixedWidth {
		return make(wordStore, n)
	}
	return newBigStore(n)
}

// bigStore backs ArbitraryPrecision matrices.
type bigStore []*big.Int

func newBigStore(n int) bigStore {
	s := make(bigStore, n)
	for i := range s {
		s[i] = new(big.Int)
	}
	return s
}

func (s bigStore) backend() Backend { return ArbitraryPrecision }
func (s bigStore) size() int        { return len(s) }

func (s bigStore) newSame(n int) store { return newBigStore(n) }

func (s bigStore) clone() store {
	c := make(bigStore, len(s))
	for i, v := range s {
		c[i] = new(big.Int).Set(v)
	}
	return c
}

func (s bigStore) big(i int) *big.Int { return new(big.Int).Set(s[i]) }

func (s bigStore) setBig(i int, v *big.Int) error {
	s[i].Set(v)
	return nil
}

func (s bigStore) setInt64(i int, v int64) error {
	s[i].SetInt64(v)
	return nil
}

func (s bigStore) isZero(i int) bool { return s[i].Sign() == 0 }
func (s bigStore) bitLen(i int) int  { return s[i].BitLen() }
func (s bigStore) text(i int) string { return s[i].String() }

func (s bigStore) cmp(i int, o store, j int) int {
	if t, ok := o.(bigStore); ok {
		return s[i].Cmp(t[j])
	}
	return s[i].Cmp(o.big(j))
}

func (s bigStore) swap(i, j int) { s[i], s[j] = s[j], s[i] }

func (s bigStore) copyCell(dst int, src store, j int) {
	s[dst].Set(src.(bigStore)[j])
}

func (s bigStore) addRange(dst int, o store, src, n int) {
	t := o.(bigStore)
	for i := 0; i < n; i++ {
		s[dst+i].Add(s[dst+i], t[src+i])
	}
}

func (s bigStore) subRange(dst int, o store, src, n int) {
	t := o.(bigStore)
	for i := 0; i < n; i++ {
		s[dst+i].Sub(s[dst+i], t[src+i])
	}
}

func (s bigStore) addMulRange(dst int, o store, src, n int, mul *big.Int, exp uint) error {
	t := o.(bigStore)
	scaled := new(big.Int).Lsh(mul, exp)
	tmp := new(big.Int)
	for i := 0; i < n; i++ {
		tmp.Mul(t[src+i], scaled)
		s[dst+i].Add(s[dst+i], tmp)
	}
	return nil
}

func (s bigStore) normSq(off, n int) *big.Int {
	acc := new(big.Int)
	tmp := new(big.Int)
	for i := 0; i < n; i++ {
		tmp.Mul(s[off+i], s[off+i])
		acc.Add(acc, tmp)
	}
	return acc
}

func (s bigStore) reduceSymRange(off, n int, q *big.Int) error {
	half := new(big.Int).Rsh(q, 1)
	for i := 0; i < n; i++ {
		v := s[off+i]
		v.Mod(v, q)
		if v.Cmp(half) > 0 {
			v.Sub(v, q)
		}
	}
	return nil
}

func (s bigStore) mulRowInto(cOff int, a store, aOff, k int, b store, n int) {
	ra := a.(bigStore)
	rb := b.(bigStore)
	tmp := new(big.Int)
	for l := 0; l < k; l++ {
		x := ra[aOff+l]
		if x.Sign() == 0 {
			continue
		}
		row := l * n
		for j := 0; j < n; j++ {
			tmp.Mul(x, rb[row+j])
			s[cOff+j].Add(s[cOff+j], tmp)
		}
	}
}

// wordStore backs FixedWidth matrices. Arithmetic wraps on overflow.
type wordStore []int64

func (s wordStore) backend() Backend { return FixedWidth }
func (s wordStore) size() int        { return len(s) }

func (s wordStore) newSame(n int) store { return make(wordStore, n) }

func (s wordStore) clone() store {
	c := make(wordStore, len(s))
	copy(c, s)
	return c
}

func (s wordStore) big(i int) *big.Int { return big.NewInt(s[i]) }

func (s wordStore) setBig(i int, v *big.Int) error {
	if !v.IsInt64() {
		return fmt.Errorf("intmat: %s does not fit the fixed-width backend: %w", v, ErrDomain)
	}
	s[i] = v.Int64()
	return nil
}

func (s wordStore) setInt64(i int, v int64) error {
	s[i] = v
	return nil
}

func (s wordStore) isZero(i int) bool { return s[i] == 0 }

func (s wordStore) bitLen(i int) int {
	v := s[i]
	if v < 0 {
		// MinInt64 has no positive counterpart; its magnitude is 2^63.
		if v == -1<<63 {
			return 64
		}
		v = -v
	}
	return bits.Len64(uint64(v))
}

func (s wordStore) text(i int) string { return strconv.FormatInt(s[i], 10) }

func (s wordStore) cmp(i int, o store, j int) int {
	if t, ok := o.(wordStore); ok {
		switch {
		case s[i] < t[j]:
			return -1
		case s[i] > t[j]:
			return 1
		}
		return 0
	}
	return big.NewInt(s[i]).Cmp(o.big(j))
}

func (s wordStore) swap(i, j int) { s[i], s[j] = s[j], s[i] }

func (s wordStore) copyCell(dst int, src store, j int) {
	s[dst] = src.(wordStore)[j]
}

func (s wordStore) addRange(dst int, o store, src, n int) {
	t := o.(wordStore)
	for i := 0; i < n; i++ {
		s[dst+i] += t[src+i]
	}
}

func (s wordStore) subRange(dst int, o store, src, n int) {
	t := o.(wordStore)
	for i := 0; i < n; i++ {
		s[dst+i] -= t[src+i]
	}
}

func (s wordStore) addMulRange(dst int, o store, src, n int, mul *big.Int, exp uint) error {
	scaled := new(big.Int).Lsh(mul, exp)
	if !scaled.IsInt64() {
		return fmt.Errorf("intmat: multiplier %s*2^%d does not fit the fixed-width backend: %w", mul, exp, ErrDomain)
	}
	m := scaled.Int64()
	t := o.(wordStore)
	for i := 0; i < n; i++ {
		s[dst+i] += t[src+i] * m
	}
	return nil
}

func (s wordStore) normSq(off, n int) *big.Int {
	// Squares are accumulated exactly; only the caller's final square root
	// is floating.
	acc := new(big.Int)
	tmp := new(big.Int)
	for i := 0; i < n; i++ {
		tmp.SetInt64(s[off+i])
		tmp.Mul(tmp, tmp)
		acc.Add(acc, tmp)
	}
	return acc
}

func (s wordStore) reduceSymRange(off, n int, q *big.Int) error {
	if !q.IsInt64() {
		return fmt.Errorf("intmat: modulus %s does not fit the fixed-width backend: %w", q, ErrDomain)
	}
	qq := q.Int64()
	half := qq / 2
	for i := 0; i < n; i++ {
		r := s[off+i] % qq
		if r < 0 {
			r += qq
		}
		if r > half {
			r -= qq
		}
		s[off+i] = r
	}
	return nil
}

func (s wordStore) mulRowInto(cOff int, a store, aOff, k int, b store, n int) {
	ra := a.(wordStore)
	rb := b.(wordStore)
	for l := 0; l < k; l++ {
		x := ra[aOff+l]
		if x == 0 {
			continue
		}
		row := l * n
		for j := 0; j < n; j++ {
			s[cOff+j] += x * rb[row+j]
		}
	}
}
