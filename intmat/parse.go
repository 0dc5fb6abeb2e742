package intmat

import (
	"bufio"
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"
)

// parseRowLine extracts the integers of one "[ v1 ... vn ]" line. The second
// return is false when the line does not match the row format and should be
// skipped.
func parseRowLine(line string) ([]*big.Int, bool) {
	s := strings.TrimSpace(line)
	if len(s) < 2 || s[0] != '[' || s[len(s)-1] != ']' {
		return nil, false
	}
	fields := strings.Fields(s[1 : len(s)-1])
	row := make([]*big.Int, 0, len(fields))
	for _, f := range fields {
		v, ok := new(big.Int).SetString(f, 10)
		if !ok {
			return nil, false
		}
		row = append(row, v)
	}
	return row, true
}

// Read parses the textual basis format from r: one bracketed row of
// whitespace-separated decimal integers per line. Lines that do not match the
// format are skipped. The column count is fixed by the first parsed row; a
// later row with a different count is rejected with ErrJaggedRows.
func Read(r io.Reader, b Backend) (*Matrix, error) {
	var rows [][]*big.Int
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<24)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		row, ok := parseRowLine(sc.Text())
		if !ok {
			continue
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, fmt.Errorf("intmat: line %d has %d entries, want %d: %w", lineNo, len(row), len(rows[0]), ErrJaggedRows)
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return FromBig(rows, b)
}

// ReadFile parses the textual basis format from the named file.
func ReadFile(path string, b Backend) (*Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f, b)
}

// WriteFile writes the matrix in the textual basis format, terminated by a
// newline, so that ReadFile round-trips it.
func (m *Matrix) WriteFile(path string) error {
	return os.WriteFile(path, []byte(m.String()+"\n"), 0o644)
}
