// Package genlat builds structured random lattice bases: knapsack relation,
// simultaneous-Diophantine, dense uniform, NTRU-like, q-ary and skewed
// triangular constructions. Each generator computes its required shape from a
// small parameter set, then populates a fresh intmat.Matrix from a seedable
// uniform randomness source.
package genlat

import (
	"context"
	"fmt"
	"math"
	"math/big"

	"github.com/krishnacharya/fpylll/intmat"
)

// Generate validates g, allocates the matrix shape it requires in the given
// backend, and fills it from rng.
func Generate(ctx context.Context, g Generator, b intmat.Backend, rng *RNG) (*intmat.Matrix, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	rows, cols := g.Dims()
	m, err := intmat.New(rows, cols, b)
	if err != nil {
		return nil, err
	}
	if err := g.Fill(ctx, m, rng); err != nil {
		return nil, err
	}
	return m, nil
}

// Fill writes, per row i, a uniform Bits-bit integer followed by the i-th
// unit vector of length D.
func (g IntRel) Fill(ctx context.Context, m *intmat.Matrix, rng *RNG) error {
	for i := 0; i < g.D; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		v, err := rng.BigBits(g.Bits)
		if err != nil {
			return err
		}
		if err := m.Set(i, 0, v); err != nil {
			return err
		}
		if err := m.SetInt64(i, i+1, 1); err != nil {
			return err
		}
	}
	return nil
}

// Fill writes the Diophantine row [r2, r1 ... r1] followed by the scaled
// identity rows 2^Bits * e_i.
func (g SimDioph) Fill(ctx context.Context, m *intmat.Matrix, rng *RNG) error {
	v, err := rng.BigBits(g.Bits2)
	if err != nil {
		return err
	}
	if err := m.Set(0, 0, v); err != nil {
		return err
	}
	for j := 1; j < g.D; j++ {
		if v, err = rng.BigBits(g.Bits); err != nil {
			return err
		}
		if err := m.Set(0, j, v); err != nil {
			return err
		}
	}
	scale := new(big.Int).Lsh(big.NewInt(1), uint(g.Bits))
	for i := 1; i < g.D; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := m.Set(i, i, scale); err != nil {
			return err
		}
	}
	return nil
}

// Fill writes an independent uniform Bits-bit integer into every cell.
func (g Uniform) Fill(ctx context.Context, m *intmat.Matrix, rng *RNG) error {
	for i := 0; i < g.D; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		for j := 0; j < g.D; j++ {
			v, err := rng.BigBits(g.Bits)
			if err != nil {
				return err
			}
			if err := m.Set(i, j, v); err != nil {
				return err
			}
		}
	}
	return nil
}

// sampleRing draws the d coefficients of h, uniform mod q.
func sampleRing(d int, q *big.Int, rng *RNG) ([]*big.Int, error) {
	h := make([]*big.Int, d)
	for i := range h {
		v, err := rng.BigMod(q)
		if err != nil {
			return nil, err
		}
		h[i] = v
	}
	return h, nil
}

// fillCirculant writes Rot(h) into the block at (row0,col0): row i of the
// block is h cyclically right-shifted i positions.
func fillCirculant(m *intmat.Matrix, row0, col0 int, h []*big.Int) error {
	d := len(h)
	for i := 0; i < d; i++ {
		for j := 0; j < d; j++ {
			if err := m.Set(row0+i, col0+j, h[((j-i)%d+d)%d]); err != nil {
				return err
			}
		}
	}
	return nil
}

// Fill writes the block basis [[I, Rot(h)], [0, qI]].
func (g NTRULike) Fill(ctx context.Context, m *intmat.Matrix, rng *RNG) error {
	q, err := g.Modulus.resolve(rng)
	if err != nil {
		return err
	}
	h, err := sampleRing(g.D, q, rng)
	if err != nil {
		return err
	}
	for i := 0; i < g.D; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := m.SetInt64(i, i, 1); err != nil {
			return err
		}
		if err := m.Set(g.D+i, g.D+i, q); err != nil {
			return err
		}
	}
	return fillCirculant(m, 0, g.D, h)
}

// Fill writes the block basis [[qI, 0], [Rot(h), I]].
func (g NTRULike2) Fill(ctx context.Context, m *intmat.Matrix, rng *RNG) error {
	q, err := g.Modulus.resolve(rng)
	if err != nil {
		return err
	}
	h, err := sampleRing(g.D, q, rng)
	if err != nil {
		return err
	}
	for i := 0; i < g.D; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := m.Set(i, i, q); err != nil {
			return err
		}
		if err := m.SetInt64(g.D+i, g.D+i, 1); err != nil {
			return err
		}
	}
	return fillCirculant(m, g.D, 0, h)
}

// Fill writes the q-ary basis: q on the first K diagonal entries, then rows
// of K uniform residues followed by the unit diagonal. The determinant is
// q^K by construction.
func (g QAry) Fill(ctx context.Context, m *intmat.Matrix, rng *RNG) error {
	q, err := g.Modulus.resolve(rng)
	if err != nil {
		return err
	}
	for i := 0; i < g.K; i++ {
		if err := m.Set(i, i, q); err != nil {
			return err
		}
	}
	for i := g.K; i < g.D; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		for j := 0; j < g.K; j++ {
			v, err := rng.BigMod(q)
			if err != nil {
				return err
			}
			if err := m.Set(i, j, v); err != nil {
				return err
			}
		}
		if err := m.SetInt64(i, i, 1); err != nil {
			return err
		}
	}
	return nil
}

// triangularExponent returns the diagonal exponent of row i (0-based):
// (D-i)^Alpha rounded to the nearest integer, floored at 1.
func (g Triangular) triangularExponent(i int) uint {
	e := int(math.Round(math.Pow(float64(g.D-i), g.Alpha)))
	if e < 1 {
		e = 1
	}
	return uint(e)
}

// Fill writes the skewed lower-triangular basis: diagonal 2^((D-i)^Alpha),
// sub-diagonal entries uniform mod the column's diagonal, centered into
// (-diag/2, diag/2]. The upper boundary is reachable; the interval is
// half-open so every residue class keeps exactly one representative.
func (g Triangular) Fill(ctx context.Context, m *intmat.Matrix, rng *RNG) error {
	one := big.NewInt(1)
	diag := make([]*big.Int, g.D)
	for i := 0; i < g.D; i++ {
		diag[i] = new(big.Int).Lsh(one, g.triangularExponent(i))
	}
	for i := 0; i < g.D; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := m.Set(i, i, diag[i]); err != nil {
			return err
		}
		for j := 0; j < i; j++ {
			v, err := rng.BigMod(diag[j])
			if err != nil {
				return err
			}
			half := new(big.Int).Rsh(diag[j], 1)
			if v.Cmp(half) > 0 {
				v.Sub(v, diag[j])
			}
			if err := m.Set(i, j, v); err != nil {
				return err
			}
		}
	}
	return nil
}

// FromName returns the generator for an algorithm name using the given
// parameters; unknown names are rejected.
func FromName(name string, d, k, bits, bits2 int, mod Modulus, alpha float64) (Generator, error) {
	switch name {
	case "intrel":
		return IntRel{D: d, Bits: bits}, nil
	case "simdioph":
		return SimDioph{D: d, Bits: bits, Bits2: bits2}, nil
	case "uniform":
		return Uniform{D: d, Bits: bits}, nil
	case "ntrulike":
		return NTRULike{D: d, Modulus: mod}, nil
	case "ntrulike2":
		return NTRULike2{D: d, Modulus: mod}, nil
	case "qary":
		return QAry{D: d, K: k, Modulus: mod}, nil
	case "trg":
		return Triangular{D: d, Alpha: alpha}, nil
	}
	return nil, fmt.Errorf("genlat: unknown algorithm %q: %w", name, intmat.ErrUnsupported)
}
