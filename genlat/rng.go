package genlat

import (
	crand "crypto/rand"
	"fmt"
	"math/big"

	"github.com/tuneinsight/lattigo/v4/utils"
	"golang.org/x/crypto/blake2b"

	"github.com/krishnacharya/fpylll/intmat"
)

// RNG is the uniform randomness source the generators draw from. Seeded
// instances are deterministic: the seed is normalized through blake2b into
// the key of a keyed PRNG, so equal seeds reproduce equal bases regardless of
// seed length.
type RNG struct {
	prng utils.PRNG
}

// NewRNG returns a deterministic RNG keyed by seed.
func NewRNG(seed []byte) (*RNG, error) {
	key := blake2b.Sum512(seed)
	prng, err := utils.NewKeyedPRNG(key[:])
	if err != nil {
		return nil, fmt.Errorf("genlat: keyed prng: %w", err)
	}
	return &RNG{prng: prng}, nil
}

// NewSystemRNG returns an RNG keyed from the system entropy source.
func NewSystemRNG() (*RNG, error) {
	prng, err := utils.NewPRNG()
	if err != nil {
		return nil, fmt.Errorf("genlat: system prng: %w", err)
	}
	return &RNG{prng: prng}, nil
}

// Read implements io.Reader over the underlying PRNG stream.
func (r *RNG) Read(p []byte) (int, error) {
	return r.prng.Read(p)
}

// BigBits returns a uniform integer in [0, 2^bits).
func (r *RNG) BigBits(bits int) (*big.Int, error) {
	if bits <= 0 {
		return new(big.Int), nil
	}
	buf := make([]byte, (bits+7)/8)
	if _, err := r.prng.Read(buf); err != nil {
		return nil, fmt.Errorf("genlat: prng read: %w", err)
	}
	if pad := len(buf)*8 - bits; pad > 0 {
		buf[0] &= 0xff >> pad
	}
	return new(big.Int).SetBytes(buf), nil
}

// Int64Bits returns a uniform integer in [0, 2^bits) as a host int64, for
// callers filling fixed-width matrices. bits above 63 cannot fit and are
// rejected.
func (r *RNG) Int64Bits(bits int) (int64, error) {
	if bits > 63 {
		return 0, fmt.Errorf("genlat: %d-bit draw exceeds int64: %w", bits, intmat.ErrDomain)
	}
	v, err := r.BigBits(bits)
	if err != nil {
		return 0, err
	}
	return v.Int64(), nil
}

// BigMod returns a uniform integer in [0, q).
func (r *RNG) BigMod(q *big.Int) (*big.Int, error) {
	v, err := crand.Int(r, q)
	if err != nil {
		return nil, fmt.Errorf("genlat: uniform mod %s: %w", q, err)
	}
	return v, nil
}

// Prime returns a uniform prime of exactly the given bit length.
func (r *RNG) Prime(bits int) (*big.Int, error) {
	p, err := crand.Prime(r, bits)
	if err != nil {
		return nil, fmt.Errorf("genlat: %d-bit prime: %w", bits, err)
	}
	return p, nil
}
