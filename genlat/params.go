package genlat

import (
	"context"
	"fmt"
	"math/big"

	"github.com/krishnacharya/fpylll/intmat"
)

// Generator sizes and populates one structured random lattice basis. Each
// algorithm has its own parameter struct; parameters are validated before any
// matrix is allocated.
type Generator interface {
	// Name is the algorithm's short name, as accepted by the CLI.
	Name() string
	// Dims returns the shape the algorithm requires for its parameters.
	Dims() (rows, cols int)
	// Validate rejects malformed parameter sets.
	Validate() error
	// Fill populates a freshly sized matrix. The context is polled at each
	// row; an aborted fill leaves a rectangular, legally valued grid.
	Fill(ctx context.Context, m *intmat.Matrix, rng *RNG) error
}

// Modulus supplies the modulus q of the q-ary and NTRU-like constructions:
// either an explicit value, or a bit length from which a uniform prime is
// sampled. Exactly one of the two must be set.
type Modulus struct {
	Q    *big.Int
	Bits int
}

func (ms Modulus) validate() error {
	switch {
	case ms.Q != nil && ms.Bits != 0:
		return fmt.Errorf("genlat: both explicit modulus and bit length given: %w", intmat.ErrShape)
	case ms.Q == nil && ms.Bits == 0:
		return fmt.Errorf("genlat: neither explicit modulus nor bit length given: %w", intmat.ErrShape)
	case ms.Q != nil && ms.Q.Sign() <= 0:
		return fmt.Errorf("genlat: modulus %s is not positive: %w", ms.Q, intmat.ErrShape)
	case ms.Q == nil && ms.Bits < 2:
		return fmt.Errorf("genlat: modulus bit length %d below 2: %w", ms.Bits, intmat.ErrShape)
	}
	return nil
}

func (ms Modulus) resolve(rng *RNG) (*big.Int, error) {
	if ms.Q != nil {
		return new(big.Int).Set(ms.Q), nil
	}
	return rng.Prime(ms.Bits)
}

// IntRel parameterizes the knapsack-style relation lattice: d rows of a
// random Bits-bit integer followed by the i-th unit vector.
type IntRel struct {
	D    int
	Bits int
}

// SimDioph parameterizes the simultaneous-Diophantine approximation lattice:
// the first row carries a Bits2-bit integer and d-1 Bits-bit integers, every
// later row i is 2^Bits times the i-th unit vector.
type SimDioph struct {
	D     int
	Bits  int
	Bits2 int
}

// Uniform parameterizes the dense lattice of independent Bits-bit entries.
type Uniform struct {
	D    int
	Bits int
}

// NTRULike parameterizes the block basis [[I, Rot(h)], [0, qI]] with h
// uniform in the size-D cyclic convolution ring mod q.
//
// The construction is not a cryptographically faithful NTRU instance: it does
// not guarantee the presence of an unusually short vector.
type NTRULike struct {
	D       int
	Modulus Modulus
}

// NTRULike2 parameterizes the transposed-flavor block basis
// [[qI, 0], [Rot(h), I]]. The same short-vector caveat as NTRULike applies.
type NTRULike2 struct {
	D       int
	Modulus Modulus
}

// QAry parameterizes the q-ary lattice basis [[q·I_k, 0], [H, I_{d-k}]] with
// H uniform mod q, whose determinant is q^k.
type QAry struct {
	D       int
	K       int
	Modulus Modulus
}

// Triangular parameterizes the skewed lower-triangular basis: row i carries
// the diagonal 2^round((D-i)^Alpha) and uniform sub-diagonal entries centered
// around zero, in (-diag/2, diag/2] for the diagonal of their column.
type Triangular struct {
	D     int
	Alpha float64
}

func checkDim(name string, d int) error {
	if d < 1 {
		return fmt.Errorf("genlat: %s dimension %d below 1: %w", name, d, intmat.ErrShape)
	}
	return nil
}

func checkBits(name, what string, bits int) error {
	if bits < 1 {
		return fmt.Errorf("genlat: %s %s %d below 1: %w", name, what, bits, intmat.ErrShape)
	}
	return nil
}

func (g IntRel) Name() string     { return "intrel" }
func (g IntRel) Dims() (int, int) { return g.D, g.D + 1 }
func (g IntRel) Validate() error {
	if err := checkDim(g.Name(), g.D); err != nil {
		return err
	}
	return checkBits(g.Name(), "bit length", g.Bits)
}

func (g SimDioph) Name() string     { return "simdioph" }
func (g SimDioph) Dims() (int, int) { return g.D, g.D }
func (g SimDioph) Validate() error {
	if err := checkDim(g.Name(), g.D); err != nil {
		return err
	}
	if err := checkBits(g.Name(), "bit length", g.Bits); err != nil {
		return err
	}
	return checkBits(g.Name(), "second bit length", g.Bits2)
}

func (g Uniform) Name() string     { return "uniform" }
func (g Uniform) Dims() (int, int) { return g.D, g.D }
func (g Uniform) Validate() error {
	if err := checkDim(g.Name(), g.D); err != nil {
		return err
	}
	return checkBits(g.Name(), "bit length", g.Bits)
}

func (g NTRULike) Name() string     { return "ntrulike" }
func (g NTRULike) Dims() (int, int) { return 2 * g.D, 2 * g.D }
func (g NTRULike) Validate() error {
	if err := checkDim(g.Name(), g.D); err != nil {
		return err
	}
	return g.Modulus.validate()
}

func (g NTRULike2) Name() string     { return "ntrulike2" }
func (g NTRULike2) Dims() (int, int) { return 2 * g.D, 2 * g.D }
func (g NTRULike2) Validate() error {
	if err := checkDim(g.Name(), g.D); err != nil {
		return err
	}
	return g.Modulus.validate()
}

func (g QAry) Name() string     { return "qary" }
func (g QAry) Dims() (int, int) { return g.D, g.D }
func (g QAry) Validate() error {
	if err := checkDim(g.Name(), g.D); err != nil {
		return err
	}
	if g.K < 0 || g.K > g.D {
		return fmt.Errorf("genlat: qary rank %d outside [0,%d]: %w", g.K, g.D, intmat.ErrShape)
	}
	return g.Modulus.validate()
}

func (g Triangular) Name() string     { return "trg" }
func (g Triangular) Dims() (int, int) { return g.D, g.D }
func (g Triangular) Validate() error {
	if err := checkDim(g.Name(), g.D); err != nil {
		return err
	}
	if g.Alpha <= 0 {
		return fmt.Errorf("genlat: trg skew exponent %v not positive: %w", g.Alpha, intmat.ErrShape)
	}
	return nil
}
