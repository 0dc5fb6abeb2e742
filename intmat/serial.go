package intmat

import (
	"fmt"
	"math/big"
)

// Serialized is the stable exchange form of a matrix: shape, row-major cell
// values as decimal strings, and the backend tag. Decimal strings keep the
// arbitrary-precision round-trip exact and JSON-safe.
type Serialized struct {
	Rows    int      `json:"rows"`
	Cols    int      `json:"cols"`
	Values  []string `json:"values"`
	Backend string   `json:"backend"`
}

// Serialize exports the matrix into its exchange form.
func (m *Matrix) Serialize() *Serialized {
	n := m.rows * m.cols
	values := make([]string, n)
	for i := 0; i < n; i++ {
		values[i] = m.st.text(i)
	}
	return &Serialized{
		Rows:    m.rows,
		Cols:    m.cols,
		Values:  values,
		Backend: m.Backend().String(),
	}
}

// FromSerialized reconstructs a matrix by replaying the flat values row-major
// into a freshly sized grid of the tagged backend.
func FromSerialized(s *Serialized) (*Matrix, error) {
	b, err := ParseBackend(s.Backend)
	if err != nil {
		return nil, err
	}
	m, err := New(s.Rows, s.Cols, b)
	if err != nil {
		return nil, err
	}
	n := s.Rows * s.Cols
	if len(s.Values) < n {
		return nil, fmt.Errorf("intmat: serialized form has %d values, need %d: %w", len(s.Values), n, ErrShortSource)
	}
	flat := make([]*big.Int, n)
	for i := 0; i < n; i++ {
		v, ok := new(big.Int).SetString(s.Values[i], 10)
		if !ok {
			return nil, fmt.Errorf("intmat: serialized value %d (%q) is not a decimal integer: %w", i, s.Values[i], ErrShape)
		}
		flat[i] = v
	}
	if err := m.ImportFlat(flat); err != nil {
		return nil, err
	}
	return m, nil
}
